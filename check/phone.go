package check

import (
	"regexp"

	"github.com/optimode/contactkit/internal/parse"
	"github.com/optimode/contactkit/types"
)

// phoneRules holds the offline format rule per region, applied to the
// digits-only form of the input.
var phoneRules = map[string]*regexp.Regexp{
	// landline 02/03/04/08/09 with 7 or 8 subscriber digits, mobile 05x/07x
	"IL": regexp.MustCompile(`^(?:0[23489][0-9]{7,8}|0[57][0-9]{8})$`),
	"US": regexp.MustCompile(`^[2-9][0-9]{9}$`),
	"CA": regexp.MustCompile(`^[2-9][0-9]{9}$`),
	"GB": regexp.MustCompile(`^(?:07[0-9]{9}|7[0-9]{9})$`),
	"AU": regexp.MustCompile(`^0[23478][0-9]{8}$`),
}

// SupportedPhoneRegion reports whether region has an offline format rule.
func SupportedPhoneRegion(region string) bool {
	_, ok := phoneRules[parse.Region(region)]
	return ok
}

// CheckPhoneSyntax validates a phone number against the format rule of
// region. Everything except digits is ignored. Regions without a rule
// report KeyPhoneUnsupportedRegion.
func CheckPhoneSyntax(value, region string) types.CheckResult {
	region = parse.Region(region)
	rule, ok := phoneRules[region]
	if !ok {
		return types.CheckResult{
			Level:   types.LevelPhone,
			Passed:  false,
			Key:     types.KeyPhoneUnsupportedRegion,
			Details: "no format rule for region " + region,
		}
	}

	if !rule.MatchString(parse.Digits(value)) {
		return types.CheckResult{
			Level:   types.LevelPhone,
			Passed:  false,
			Key:     types.KeyPhoneInvalidFormat,
			Details: "does not match the " + region + " format",
		}
	}
	return types.CheckResult{
		Level:   types.LevelPhone,
		Passed:  true,
		Key:     types.KeyPhoneValidFormat,
		Details: "matches the " + region + " format",
	}
}
