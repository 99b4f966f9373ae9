package check

import (
	"strings"

	"go.uber.org/zap"

	"github.com/optimode/contactkit/internal/carrier"
	"github.com/optimode/contactkit/internal/parse"
	"github.com/optimode/contactkit/types"
)

// Number is what a NumberLibrary knows about a parsed phone number.
type Number struct {
	Valid bool
	// International is the human-readable international form,
	// e.g. "+972 54-123-4567".
	International string
	E164          string
	// NationalDigits is the national format reduced to digits, trunk
	// prefix included, e.g. "0541234567".
	NationalDigits string
	LineType       string
	// Region is the region the number belongs to, which may differ from
	// the region it was parsed against.
	Region string
}

// NumberLibrary parses and validates phone numbers against numbering-plan
// metadata. LibPhoneNumber is the default implementation.
type NumberLibrary interface {
	Lookup(number, region string) (Number, error)
}

// trunkPrefixes maps regions whose national numbers start with a trunk
// "0" to their country calling code.
var trunkPrefixes = map[string]string{
	"IL": "972",
	"GB": "44",
	"AU": "61",
	"FR": "33",
	"DE": "49",
}

// PhoneReport is the outcome of parsing a phone number.
type PhoneReport struct {
	Valid     bool             `json:"valid"`
	Key       types.MessageKey `json:"key"`
	Formatted string           `json:"formatted,omitempty"`
	E164      string           `json:"e164,omitempty"`
	Carrier   string           `json:"carrier,omitempty"`
	Region    string           `json:"region"`
	LineType  string           `json:"lineType,omitempty"`
	Details   string           `json:"details,omitempty"`
}

// PhoneParser validates, formats and annotates phone numbers.
type PhoneParser struct {
	lib    NumberLibrary
	logger *zap.Logger
}

// NewPhoneParser creates a parser. A nil lib uses LibPhoneNumber.
func NewPhoneParser(lib NumberLibrary, logger *zap.Logger) *PhoneParser {
	if lib == nil {
		lib = LibPhoneNumber{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhoneParser{lib: lib, logger: logger}
}

// Parse cleans value, rewrites a national trunk prefix to the country
// code for regions that use one, and asks the number library for a
// verdict. Valid numbers come back formatted with carrier and line type.
func (p *PhoneParser) Parse(value, region string) PhoneReport {
	region = parse.Region(region)
	dialable := parse.Dialable(value)
	report := PhoneReport{Region: region}

	// "00" (and AU's "0011") dials out of the country; the library
	// strips it itself.
	international := strings.HasPrefix(dialable, "+") || strings.HasPrefix(dialable, "00")

	number := dialable
	if cc, ok := trunkPrefixes[region]; ok && !international && strings.HasPrefix(dialable, "0") {
		number = "+" + cc + dialable[1:]
	}

	n, err := p.lib.Lookup(number, region)
	if err != nil {
		p.logger.Debug("phone parse failed", zap.String("region", region), zap.Error(err))
		report.Key = types.KeyPhoneParseFailed
		report.Details = err.Error()
		return report
	}
	if !n.Valid {
		report.Key = types.KeyPhoneInvalidNumber
		report.Details = "not a valid number for region " + region
		return report
	}

	report.Valid = true
	report.Key = types.KeyPhoneValid
	report.Formatted = n.International
	report.E164 = n.E164
	report.LineType = n.LineType
	report.Carrier = lookupCarrier(region, dialable, international, n)
	return report
}

// lookupCarrier tries the digits as entered when they were dialed
// nationally in region, then the national form in the number's own
// region. Internationally dialed digits carry a country code and are
// never matched against region's table.
func lookupCarrier(region, dialable string, international bool, n Number) string {
	numberRegion := n.Region
	if numberRegion == "" {
		numberRegion = region
	}
	if !international && numberRegion == region {
		if name := carrier.Lookup(region, dialable); name != carrier.Unknown {
			return name
		}
	}
	return carrier.Lookup(numberRegion, n.NationalDigits)
}

// Check converts the report into the phone level CheckResult.
func (r PhoneReport) Check() types.CheckResult {
	cr := types.CheckResult{
		Level:   types.LevelPhone,
		Passed:  r.Valid,
		Key:     r.Key,
		Details: r.Details,
	}
	if r.Valid {
		cr.Details = r.E164
	}
	return cr
}
