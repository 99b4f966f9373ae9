package check

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/optimode/contactkit/internal/parse"
)

// LibPhoneNumber is the NumberLibrary backed by the libphonenumber
// metadata in github.com/nyaruka/phonenumbers.
type LibPhoneNumber struct{}

// Lookup parses number with region as the default region.
func (LibPhoneNumber) Lookup(number, region string) (Number, error) {
	num, err := phonenumbers.Parse(number, region)
	if err != nil {
		return Number{}, err
	}
	if !phonenumbers.IsValidNumber(num) {
		return Number{Region: phonenumbers.GetRegionCodeForNumber(num)}, nil
	}
	return Number{
		Valid:          true,
		International:  phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		E164:           phonenumbers.Format(num, phonenumbers.E164),
		NationalDigits: parse.Digits(phonenumbers.Format(num, phonenumbers.NATIONAL)),
		LineType:       lineTypes[phonenumbers.GetNumberType(num)],
		Region:         phonenumbers.GetRegionCodeForNumber(num),
	}, nil
}

var lineTypes = map[phonenumbers.PhoneNumberType]string{
	phonenumbers.FIXED_LINE:           "fixed-line",
	phonenumbers.MOBILE:               "mobile",
	phonenumbers.FIXED_LINE_OR_MOBILE: "fixed-line-or-mobile",
	phonenumbers.TOLL_FREE:            "toll-free",
	phonenumbers.PREMIUM_RATE:         "premium-rate",
	phonenumbers.SHARED_COST:          "shared-cost",
	phonenumbers.VOIP:                 "voip",
	phonenumbers.PERSONAL_NUMBER:      "personal",
	phonenumbers.PAGER:                "pager",
	phonenumbers.UAN:                  "uan",
	phonenumbers.VOICEMAIL:            "voicemail",
	phonenumbers.UNKNOWN:              "unknown",
}
