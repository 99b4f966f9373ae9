// Package types contains the shared types for contactkit.
// This package does not import anything from other contactkit packages
// to avoid circular imports.
package types

// Kind identifies what a request validates.
type Kind string

const (
	KindEmail Kind = "email"
	KindPhone Kind = "phone"
)

// CheckLevel identifies the validation level.
type CheckLevel = string

const (
	LevelSyntax CheckLevel = "syntax"
	LevelMX     CheckLevel = "mx"
	LevelSPF    CheckLevel = "spf"
	LevelDKIM   CheckLevel = "dkim"
	LevelSMTP   CheckLevel = "smtp"
	LevelPhone  CheckLevel = "phone"
)

// MessageKey is a language-neutral identifier of a validation outcome.
// Callers resolve it to text through a message catalog.
type MessageKey = string

// Email syntax keys, one per structural defect.
const (
	KeyEmailTooShort           MessageKey = "EMAIL_TOO_SHORT"
	KeyEmailMissingAt          MessageKey = "EMAIL_MISSING_AT"
	KeyEmailMissingLocal       MessageKey = "EMAIL_MISSING_LOCAL"
	KeyEmailMultipleAt         MessageKey = "EMAIL_MULTIPLE_AT"
	KeyEmailMissingDomain      MessageKey = "EMAIL_MISSING_DOMAIN"
	KeyEmailInvalidLocalChars  MessageKey = "EMAIL_INVALID_LOCAL_CHARS"
	KeyEmailConsecutiveDots    MessageKey = "EMAIL_CONSECUTIVE_DOTS"
	KeyEmailInvalidDomainEdge  MessageKey = "EMAIL_INVALID_DOMAIN_EDGE"
	KeyEmailMissingTLD         MessageKey = "EMAIL_MISSING_TLD"
	KeyEmailInvalidDomainLabel MessageKey = "EMAIL_INVALID_DOMAIN_LABEL"
	KeyEmailTLDTooShort        MessageKey = "EMAIL_TLD_TOO_SHORT"
	KeyEmailValidFormat        MessageKey = "EMAIL_VALID_FORMAT"
)

// Email network keys.
const (
	KeyEmailNoMX                 MessageKey = "EMAIL_NO_MX"
	KeyEmailNoSPF                MessageKey = "EMAIL_NO_SPF"
	KeyEmailNoDKIM               MessageKey = "EMAIL_NO_DKIM"
	KeyEmailSMTPConnectFailed    MessageKey = "EMAIL_SMTP_CONNECT_FAILED"
	KeyEmailSMTPHeloFailed       MessageKey = "EMAIL_SMTP_HELO_FAILED"
	KeyEmailSMTPMailFromRejected MessageKey = "EMAIL_SMTP_MAIL_FROM_REJECTED"
	KeyEmailSMTPRcptRejected     MessageKey = "EMAIL_SMTP_RCPT_REJECTED"
	KeyEmailSMTPTimeout          MessageKey = "EMAIL_SMTP_TIMEOUT"
	KeyEmailValid                MessageKey = "EMAIL_VALID"
)

// Phone keys.
const (
	KeyPhoneUnsupportedRegion MessageKey = "PHONE_UNSUPPORTED_REGION"
	KeyPhoneInvalidFormat     MessageKey = "PHONE_INVALID_FORMAT"
	KeyPhoneValidFormat       MessageKey = "PHONE_VALID_FORMAT"
	KeyPhoneParseFailed       MessageKey = "PHONE_PARSE_FAILED"
	KeyPhoneInvalidNumber     MessageKey = "PHONE_INVALID_NUMBER"
	KeyPhoneValid             MessageKey = "PHONE_VALID"
)

// Outcome separates a confirmed defect from a check that could not complete.
type Outcome string

const (
	// OutcomePending is returned for empty input that has not been entered yet.
	OutcomePending Outcome = "pending"
	OutcomeValid   Outcome = "valid"
	OutcomeInvalid Outcome = "invalid"
	// OutcomeUnverified means a network check could not reach a verdict.
	// Callers choose whether to treat it as a pass or a failure.
	OutcomeUnverified Outcome = "unverified"
)

// ProbeReason is the terminal state of an SMTP mailbox probe.
type ProbeReason string

const (
	ReasonConnectedOK      ProbeReason = "connected-ok"
	ReasonConnectFailed    ProbeReason = "connect-failed"
	ReasonHeloFailed       ProbeReason = "helo-failed"
	ReasonMailFromRejected ProbeReason = "mail-from-rejected"
	ReasonRcptRejected     ProbeReason = "rcpt-rejected"
	ReasonTimeout          ProbeReason = "timeout"
)

// CheckResult is the outcome of a single validation level.
type CheckResult struct {
	Level      CheckLevel `json:"level"`
	Passed     bool       `json:"passed"`
	Key        MessageKey `json:"key,omitempty"`
	Details    string     `json:"details,omitempty"`
	MXHost     string     `json:"mxHost,omitempty"`
	SMTPCode   int        `json:"smtpCode,omitempty"`
	Suggestion string     `json:"suggestion,omitempty"`
	// Unverified is set when the check failed because the remote side
	// could not be reached, not because the input is defective.
	Unverified bool `json:"unverified,omitempty"`
}
