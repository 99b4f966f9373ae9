// Package parse normalizes raw form input into the shapes the checkers
// and network probes work with.
package parse

import (
	"strings"

	"golang.org/x/net/idna"
)

// Email is a split email address. The check/ packages receive it after
// syntax checking has accepted the raw value.
type Email struct {
	Raw           string // the original, trimmed input
	Local         string // the part before @
	Domain        string // lower-cased ASCII form, used for DNS and SMTP
	DomainUnicode string // display form, used for typo detection
	Valid         bool   // false if Raw has no usable local@domain split
}

// NewEmail splits raw on its last @ and normalizes the domain.
// Punycode domains (xn--...) keep their ASCII form in Domain and are
// decoded for DomainUnicode.
func NewEmail(raw string) Email {
	raw = strings.TrimSpace(raw)

	at := strings.LastIndex(raw, "@")
	if at < 1 || at >= len(raw)-1 {
		return Email{Raw: raw}
	}
	local, domain := raw[:at], strings.ToLower(raw[at+1:])

	ascii, unicode, ok := convertDomain(domain)
	if !ok {
		return Email{Raw: raw}
	}

	return Email{
		Raw:           raw,
		Local:         local,
		Domain:        ascii,
		DomainUnicode: unicode,
		Valid:         true,
	}
}

// convertDomain returns the ASCII and Unicode forms of domain.
// ok is false if a non-ASCII domain fails IDNA2008 validation.
func convertDomain(domain string) (ascii, unicode string, ok bool) {
	for _, r := range domain {
		if r > 127 {
			a, err := idna.Lookup.ToASCII(domain)
			if err != nil {
				return "", "", false
			}
			return a, domain, true
		}
	}

	u, err := idna.Display.ToUnicode(domain)
	if err != nil {
		u = domain
	}
	return domain, u, true
}
