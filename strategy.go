package contactkit

import (
	"context"

	"go.uber.org/zap"

	"github.com/optimode/contactkit/check"
	"github.com/optimode/contactkit/internal/parse"
	"github.com/optimode/contactkit/types"
)

// Strategy validates one trimmed, non-empty value. The Validator picks a
// Strategy from Config.Tier when it is configured.
type Strategy interface {
	ValidateEmail(ctx context.Context, value string) Result
	ValidatePhone(ctx context.Context, value, region string) Result
}

// MailboxProber asks a mail exchanger whether it accepts a recipient.
// check.SMTPProber is the default implementation.
type MailboxProber interface {
	ProbeMailbox(ctx context.Context, email string, mxHosts []string) check.ProbeReport
}

// SyntaxValidator is the free tier: offline syntax rules only.
type SyntaxValidator struct {
	suggester *check.TypoSuggester
}

// ValidateEmail runs the email syntax rules.
func (s *SyntaxValidator) ValidateEmail(_ context.Context, value string) Result {
	cr := check.CheckEmailSyntax(value)
	res := Result{Kind: types.KindEmail}
	if !cr.Passed {
		res.Checks = []CheckResult{cr}
		return res.failed(cr)
	}
	if s.suggester != nil {
		cr.Suggestion = s.suggester.Suggest(value)
		res.Suggestion = cr.Suggestion
	}
	res.Checks = []CheckResult{cr}
	return res.passed(types.KeyEmailValidFormat)
}

// ValidatePhone runs the region's phone format rule.
func (s *SyntaxValidator) ValidatePhone(_ context.Context, value, region string) Result {
	cr := check.CheckPhoneSyntax(value, region)
	res := Result{Kind: types.KindPhone, Region: region, Checks: []CheckResult{cr}}
	if !cr.Passed {
		return res.failed(cr)
	}
	return res.passed(types.KeyPhoneValidFormat)
}

// AdvancedValidator is the pro tier. Email syntax is followed by the
// enabled DNS checks and the SMTP probe; phone numbers go through the
// phone parser instead of the syntax rules.
type AdvancedValidator struct {
	SyntaxValidator
	cfg    Config
	dns    *check.DNSChecker
	smtp   MailboxProber
	phone  *check.PhoneParser
	logger *zap.Logger
}

// ValidateEmail runs syntax, then DNS, then SMTP. Every failed DNS check
// is reported; an SMTP failure is reported alone.
func (a *AdvancedValidator) ValidateEmail(ctx context.Context, value string) Result {
	res := a.SyntaxValidator.ValidateEmail(ctx, value)
	if !res.Valid {
		return res
	}
	email := parse.NewEmail(value)

	reported := check.DNSFlags{MX: a.cfg.CheckMX, SPF: a.cfg.CheckSPF, DKIM: a.cfg.CheckDKIM}
	// the probe needs MX hosts even when the MX check is off
	lookup := reported
	lookup.MX = lookup.MX || a.cfg.VerifySMTP

	var report check.DomainReport
	if lookup.Any() {
		report = a.dns.CheckDomain(ctx, email.Domain, lookup)
		var failures []CheckResult
		for _, cr := range report.Checks(reported) {
			res.Checks = append(res.Checks, cr)
			if !cr.Passed {
				failures = append(failures, cr)
			}
		}
		if len(failures) > 0 {
			a.logger.Debug("dns checks failed",
				zap.String("domain", email.Domain),
				zap.Bool("lookup_failed", report.LookupFailed()),
			)
			return res.failed(failures...)
		}
	}

	if a.cfg.VerifySMTP {
		probe := check.NoMailExchanger(report.MXLookupFailed)
		if len(report.MXHosts) > 0 {
			probe = a.smtp.ProbeMailbox(ctx, email.Local+"@"+email.Domain, report.MXHosts)
		}
		cr := probe.Check()
		res.Checks = append(res.Checks, cr)
		if !cr.Passed {
			return res.failed(cr)
		}
	}

	if !lookup.Any() {
		return res
	}
	return res.passed(types.KeyEmailValid)
}

// ValidatePhone parses, validates and formats the number.
func (a *AdvancedValidator) ValidatePhone(_ context.Context, value, region string) Result {
	report := a.phone.Parse(value, region)
	cr := report.Check()
	res := Result{Kind: types.KindPhone, Region: report.Region, Checks: []CheckResult{cr}}
	if !report.Valid {
		return res.failed(cr)
	}
	res.Formatted = report.Formatted
	res.E164 = report.E164
	res.Carrier = report.Carrier
	res.LineType = report.LineType
	return res.passed(types.KeyPhoneValid)
}
