package parse

import "strings"

// Digits strips every non-digit from raw.
func Digits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Dialable strips everything except digits and a single leading '+'.
// A '+' anywhere other than the first non-space position is dropped.
func Dialable(raw string) string {
	raw = strings.TrimSpace(raw)
	digits := Digits(raw)
	if strings.HasPrefix(raw, "+") {
		return "+" + digits
	}
	return digits
}

// Region upper-cases and trims a region code.
func Region(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}
