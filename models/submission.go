package models

import "io"

// Submission carries one attempt exactly as entered: the raw CSV stream
// plus the three text fields, untouched so the scoring service receives
// what the user typed.
type Submission struct {
	FileName string
	File     io.Reader
	Weights  string `form:"weights" json:"weights"`
	Impacts  string `form:"impacts" json:"impacts"`
	Email    string `form:"email" json:"email"`
}

// FieldErrors holds one verdict slot per input. Empty string means the
// field passed.
type FieldErrors struct {
	File    string `json:"file,omitempty"`
	Weights string `json:"weights,omitempty"`
	Impacts string `json:"impacts,omitempty"`
	Email   string `json:"email,omitempty"`
}

func (e FieldErrors) Any() bool {
	return e.File != "" || e.Weights != "" || e.Impacts != "" || e.Email != ""
}

// SubmissionState drives the submit affordance. There is no terminal
// state; every attempt ends back in Idle.
type SubmissionState int

const (
	StateIdle SubmissionState = iota
	StateSubmitting
)

// Outcome classifies one awaited request-result.
type Outcome int

const (
	// OutcomeInvalid: local validation failed, no request was made.
	OutcomeInvalid Outcome = iota
	// OutcomeAccepted: transport and server both succeeded.
	OutcomeAccepted
	// OutcomeRejected: transport succeeded, server reported failure.
	OutcomeRejected
	// OutcomeUnreachable: network error or unparseable response.
	OutcomeUnreachable
)

// SubmitResult is what one outbound request resolved to. StatusCode is
// zero when no response arrived; Message is the server-supplied text,
// possibly empty.
type SubmitResult struct {
	Outcome    Outcome
	StatusCode int
	Message    string
}
