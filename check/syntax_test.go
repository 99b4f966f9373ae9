package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optimode/contactkit/check"
	"github.com/optimode/contactkit/types"
)

func TestCheckEmailSyntax(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  types.MessageKey
	}{
		{"valid simple", "user@example.com", types.KeyEmailValidFormat},
		{"valid with plus", "user+tag@example.com", types.KeyEmailValidFormat},
		{"valid with dots", "first.last@mail.example.co.il", types.KeyEmailValidFormat},
		{"valid specials", "o'brien_{x}@example.org", types.KeyEmailValidFormat},
		{"empty", "", types.KeyEmailMissingAt},
		{"no at sign", "userexample.com", types.KeyEmailMissingAt},
		{"short without at", "ab", types.KeyEmailMissingAt},
		{"too short", "a@b.c", types.KeyEmailTooShort},
		{"no local", "@example.com", types.KeyEmailMissingLocal},
		{"multiple at", "a@b@example.com", types.KeyEmailMultipleAt},
		{"no domain", "johnny@", types.KeyEmailMissingDomain},
		{"space in local", "jo hn@example.com", types.KeyEmailInvalidLocalChars},
		{"unicode local", "用户@example.com", types.KeyEmailInvalidLocalChars},
		{"consecutive dots domain", "user@exam..ple.com", types.KeyEmailConsecutiveDots},
		{"leading dot domain", "user@.example.com", types.KeyEmailInvalidDomainEdge},
		{"trailing hyphen domain", "user@example.com-", types.KeyEmailInvalidDomainEdge},
		{"trailing space", "user@example.com ", types.KeyEmailInvalidDomainEdge},
		{"no tld", "john@example", types.KeyEmailMissingTLD},
		{"underscore in label", "user@exa_mple.com", types.KeyEmailInvalidDomainLabel},
		{"label ends with hyphen", "user@example-.com", types.KeyEmailInvalidDomainLabel},
		{"IDN label", "user@münchen.de", types.KeyEmailInvalidDomainLabel},
		{"one letter tld", "user@example.c", types.KeyEmailTLDTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := check.CheckEmailSyntax(tt.email)
			assert.Equal(t, tt.want, result.Key, "Details: %s", result.Details)
			assert.Equal(t, tt.want == types.KeyEmailValidFormat, result.Passed)
			assert.Equal(t, types.LevelSyntax, result.Level)
		})
	}
}

func TestCheckEmailSyntax_NoAtAlwaysMissingAt(t *testing.T) {
	for _, s := range []string{"", "a", "abcdef", "a.b.c.d.e.f.g", "   ", "..", "user example com"} {
		assert.Equal(t, types.KeyEmailMissingAt, check.CheckEmailSyntax(s).Key, "input %q", s)
	}
}

func TestCheckEmailSyntax_Deterministic(t *testing.T) {
	for _, s := range []string{"user@example.com", "john@example", "@x.com"} {
		assert.Equal(t, check.CheckEmailSyntax(s), check.CheckEmailSyntax(s))
	}
}
