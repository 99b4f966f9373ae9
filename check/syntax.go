package check

import (
	"strings"
	"unicode/utf8"

	"github.com/optimode/contactkit/types"
)

// minEmailLength is the shortest address accepted, e.g. "a@b.co".
const minEmailLength = 6

// localSpecial are the non-alphanumeric characters allowed in a local part.
const localSpecial = "!#$%&'*+/=?^_`{|}~.-"

// CheckEmailSyntax validates the structure of an email address offline.
// Rules run in a fixed order and the first failure is reported with a key
// naming the specific defect. An address without any @ always reports
// KeyEmailMissingAt, whatever its length.
func CheckEmailSyntax(value string) types.CheckResult {
	if key, details := emailSyntaxDefect(value); key != "" {
		return types.CheckResult{Level: types.LevelSyntax, Passed: false, Key: key, Details: details}
	}
	return types.CheckResult{Level: types.LevelSyntax, Passed: true, Key: types.KeyEmailValidFormat, Details: "syntax ok"}
}

func emailSyntaxDefect(value string) (types.MessageKey, string) {
	if !strings.Contains(value, "@") {
		return types.KeyEmailMissingAt, "missing @"
	}
	if utf8.RuneCountInString(value) < minEmailLength {
		return types.KeyEmailTooShort, "shorter than 6 characters"
	}
	if strings.HasPrefix(value, "@") {
		return types.KeyEmailMissingLocal, "local part is empty"
	}

	parts := strings.Split(value, "@")
	if len(parts) != 2 {
		return types.KeyEmailMultipleAt, "more than one @"
	}
	local, domain := parts[0], parts[1]
	if domain == "" {
		return types.KeyEmailMissingDomain, "domain is empty"
	}

	for _, ch := range local {
		if !isAlnum(ch) && !strings.ContainsRune(localSpecial, ch) {
			return types.KeyEmailInvalidLocalChars, "local part contains invalid character: " + string(ch)
		}
	}

	if strings.Contains(domain, "..") {
		return types.KeyEmailConsecutiveDots, "domain contains consecutive dots"
	}
	if hasBadEdge(domain) {
		return types.KeyEmailInvalidDomainEdge, "domain starts or ends with a dot, hyphen or space"
	}

	labels := strings.Split(domain, ".")
	if len(labels) < 2 {
		return types.KeyEmailMissingTLD, "domain has no TLD"
	}
	for _, label := range labels {
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return types.KeyEmailInvalidDomainLabel, "domain label cannot start or end with a hyphen"
		}
		for _, ch := range label {
			if !isAlnum(ch) && ch != '-' {
				return types.KeyEmailInvalidDomainLabel, "domain label contains invalid character: " + string(ch)
			}
		}
	}

	if tld := labels[len(labels)-1]; len(tld) < 2 {
		return types.KeyEmailTLDTooShort, "TLD shorter than 2 characters"
	}
	return "", ""
}

func hasBadEdge(domain string) bool {
	const edge = ".- \t\r\n"
	first, _ := utf8.DecodeRuneInString(domain)
	last, _ := utf8.DecodeLastRuneInString(domain)
	return strings.ContainsRune(edge, first) || strings.ContainsRune(edge, last)
}

func isAlnum(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}
