// Package contactkit decides whether an email address or a phone number
// submitted through a web form is acceptable.
//
// The free tier runs offline syntax checks only:
//
//	v := contactkit.New(contactkit.DefaultConfig())
//	res, err := v.Validate(ctx, contactkit.Request{Kind: contactkit.KindEmail, Value: "user@example.com"})
//
// The pro tier adds DNS, an SMTP mailbox probe and phone parsing:
//
//	cfg := contactkit.DefaultConfig()
//	cfg.Tier = contactkit.TierPro
//	cfg.CheckMX = true
//	cfg.VerifySMTP = true
//	v := contactkit.New(cfg).
//	    WithSMTP(contactkit.SMTPOptions{
//	        HeloDomain: "myapp.com",
//	        MailFrom:   "verify@myapp.com",
//	    })
//
// Results carry a language-neutral message key and an Outcome that tells
// a confirmed defect apart from a check that could not complete.
package contactkit

import "github.com/optimode/contactkit/types"

// CheckResult is a re-export from the types package so that consumers
// don't need to import the types package directly.
type CheckResult = types.CheckResult

// CheckLevel is a re-export.
type CheckLevel = types.CheckLevel

// MessageKey is a re-export.
type MessageKey = types.MessageKey

// Kind is a re-export.
type Kind = types.Kind

// Outcome is a re-export.
type Outcome = types.Outcome

// Level constants re-exported.
const (
	LevelSyntax = types.LevelSyntax
	LevelMX     = types.LevelMX
	LevelSPF    = types.LevelSPF
	LevelDKIM   = types.LevelDKIM
	LevelSMTP   = types.LevelSMTP
	LevelPhone  = types.LevelPhone
)

// Kind constants re-exported.
const (
	KindEmail = types.KindEmail
	KindPhone = types.KindPhone
)

// Outcome constants re-exported.
const (
	OutcomePending    = types.OutcomePending
	OutcomeValid      = types.OutcomeValid
	OutcomeInvalid    = types.OutcomeInvalid
	OutcomeUnverified = types.OutcomeUnverified
)
