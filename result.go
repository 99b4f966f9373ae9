package contactkit

import "github.com/optimode/contactkit/types"

// Result is the full outcome of one validation.
// Valid is true only if all enabled checks passed. Outcome tells a
// confirmed defect apart from a network check that could not complete.
type Result struct {
	Kind    Kind    `json:"kind"`
	Value   string  `json:"value"`
	Valid   bool    `json:"valid"`
	Outcome Outcome `json:"outcome"`
	// MessageKey is the first entry of MessageKeys, or "" for empty input.
	MessageKey MessageKey `json:"messageKey,omitempty"`
	// MessageKeys holds every failure key when several DNS checks failed
	// together, otherwise the single outcome key.
	MessageKeys []MessageKey `json:"messageKeys,omitempty"`
	// Message is the localized text of MessageKeys.
	Message    string        `json:"message"`
	Formatted  string        `json:"formatted,omitempty"`
	E164       string        `json:"e164,omitempty"`
	Carrier    string        `json:"carrier,omitempty"`
	Region     string        `json:"region,omitempty"`
	LineType   string        `json:"lineType,omitempty"`
	Suggestion string        `json:"suggestion,omitempty"`
	Checks     []CheckResult `json:"checks,omitempty"`
}

// FailedChecks returns those CheckResults that did not pass.
func (r Result) FailedChecks() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// CheckFor returns the CheckResult for the given level, if it exists.
// The second return value indicates whether the given level was executed.
func (r Result) CheckFor(level CheckLevel) (CheckResult, bool) {
	for _, c := range r.Checks {
		if c.Level == level {
			return c, true
		}
	}
	return CheckResult{}, false
}

// Unverified reports whether the result failed only because a network
// check could not complete.
func (r Result) Unverified() bool {
	return r.Outcome == types.OutcomeUnverified
}

func (r Result) passed(key MessageKey) Result {
	r.Valid = true
	r.Outcome = types.OutcomeValid
	r.MessageKey = key
	r.MessageKeys = []MessageKey{key}
	return r
}

// failed marks r invalid with the keys of failures. The outcome is
// unverified only if every failure is.
func (r Result) failed(failures ...CheckResult) Result {
	r.Valid = false
	r.Outcome = types.OutcomeUnverified
	r.MessageKeys = make([]MessageKey, 0, len(failures))
	for _, f := range failures {
		r.MessageKeys = append(r.MessageKeys, f.Key)
		if !f.Unverified {
			r.Outcome = types.OutcomeInvalid
		}
	}
	if len(r.MessageKeys) > 0 {
		r.MessageKey = r.MessageKeys[0]
	}
	return r
}
