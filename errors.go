package contactkit

import "errors"

var (
	// ErrUnknownKind is returned when a Request names neither email nor phone.
	ErrUnknownKind = errors.New("contactkit: unknown request kind")

	// ErrInvalidSMTPOptions is returned when SMTP verification is enabled
	// but no sender address is configured.
	ErrInvalidSMTPOptions = errors.New("contactkit: SMTP verification requires SMTPOptions.MailFrom")

	// ErrEmptyBatch is returned by ValidateMany for an empty request list.
	ErrEmptyBatch = errors.New("contactkit: empty batch")
)
