package model

import "time"

// ContactSubmission is the transient payload of one contact form post. ID is
// only used to correlate log lines; nothing is stored.
type ContactSubmission struct {
	ID      string
	Name    string `validate:"required"`
	Email   string `validate:"required,email"`
	Message string `validate:"required"`
}

// SubmissionState is the contact form's position in its state machine.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "idle"
	SubmissionSubmitting SubmissionState = "submitting"
)

// NoticeKind distinguishes the two submission outcomes.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a transient message shown to the visitor, dismissed
// automatically after Duration.
type Notice struct {
	Kind     NoticeKind
	Message  string
	Duration time.Duration
}
