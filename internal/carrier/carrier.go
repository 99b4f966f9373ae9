// Package carrier infers a mobile carrier from the leading digits of a
// national number. Numbers ported between carriers keep their original
// prefix, so the answer is a hint, never a correctness signal.
package carrier

// Unknown is returned when no prefix matches.
const Unknown = "Unknown"

// Table maps a national prefix (trunk digit included) to a carrier name.
type Table map[string]string

// tables holds one Table per region.
var tables = map[string]Table{
	"IL": israel,
	"US": unitedStates,
	"CA": unitedStates,
	"GB": unitedKingdom,
	"AU": australia,
	"FR": france,
	"DE": germany,
}

// maxPrefix is the longest prefix any table uses.
const maxPrefix = 5

// Lookup returns the carrier for digits in region, preferring the longest
// matching prefix. Unsupported regions and unmatched prefixes yield Unknown.
func Lookup(region, digits string) string {
	t, ok := tables[region]
	if !ok {
		return Unknown
	}
	for n := min(maxPrefix, len(digits)); n >= 2; n-- {
		if name, ok := t[digits[:n]]; ok {
			return name
		}
	}
	return Unknown
}

// Regions lists the regions that have a prefix table.
func Regions() []string {
	out := make([]string, 0, len(tables))
	for r := range tables {
		out = append(out, r)
	}
	return out
}
