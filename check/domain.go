package check

import (
	"strings"

	"github.com/optimode/contactkit/internal/levenshtein"
	"github.com/optimode/contactkit/internal/parse"
)

// DefaultTypoThreshold is the largest edit distance treated as a typo.
const DefaultTypoThreshold = 2

// defaultKnownProviders is the list of major email providers typo
// detection compares against.
var defaultKnownProviders = []string{
	"gmail.com", "googlemail.com",
	"yahoo.com", "yahoo.co.uk", "yahoo.fr", "yahoo.de",
	"outlook.com", "hotmail.com", "hotmail.co.uk", "live.com",
	"icloud.com", "me.com", "mac.com",
	"protonmail.com", "proton.me",
	"aol.com",
	"zoho.com",
	"yandex.com", "yandex.ru",
	"mail.com",
	"gmx.com", "gmx.net", "gmx.de",
	"fastmail.com",
	// Israeli providers
	"walla.co.il", "walla.com", "bezeqint.net", "012.net.il", "netvision.net.il",
}

// TypoSuggester proposes a known provider domain for a likely misspelling.
type TypoSuggester struct {
	threshold int
	providers []string
}

// NewTypoSuggester creates a suggester. threshold <= 0 uses
// DefaultTypoThreshold; nil providers uses the built-in list.
func NewTypoSuggester(threshold int, providers []string) *TypoSuggester {
	if threshold <= 0 {
		threshold = DefaultTypoThreshold
	}
	if providers == nil {
		providers = defaultKnownProviders
	}
	return &TypoSuggester{threshold: threshold, providers: providers}
}

// Suggest returns the corrected address, e.g. "john@gmail.com" for
// "john@gmial.com", or "" when the domain is a known provider or not
// close to any.
func (s *TypoSuggester) Suggest(email string) string {
	e := parse.NewEmail(email)
	if !e.Valid {
		return ""
	}
	domain := strings.ToLower(e.DomainUnicode)
	match := levenshtein.Closest(domain, s.providers, s.threshold)
	if match == "" {
		return ""
	}
	return e.Local + "@" + match
}
