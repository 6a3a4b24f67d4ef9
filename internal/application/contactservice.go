package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/caffxin/studiosite/internal/domain/model"
	"github.com/caffxin/studiosite/internal/domain/port/driven"
)

// DefaultNoticeDuration is how long a submission notice stays on screen when
// no duration is configured.
const DefaultNoticeDuration = 5 * time.Second

const (
	successMessage = "Thanks for reaching out! Your message has been sent and we will get back to you soon."
	failureMessage = "Sorry, your message could not be sent. Please try again later or email us directly."
	busyMessage    = "Your previous message is still being sent."
)

var (
	// ErrSubmissionInFlight is returned when the same session submits again
	// before its previous submission finished.
	ErrSubmissionInFlight = errors.New("contact submission already in flight")

	// ErrInvalidSubmission is matched by every ValidationError.
	ErrInvalidSubmission = errors.New("invalid contact submission")

	// ErrRelayFailed wraps any error returned by the contact relay.
	ErrRelayFailed = errors.New("contact relay failed")
)

// FieldError is one failed form field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists the form fields that failed validation.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "invalid contact submission: " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrInvalidSubmission) true for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidSubmission
}

// SubmitResult is what the form shows after a submission attempt. Form holds
// the field values to redisplay: empty after success, unchanged otherwise.
// Notice is set only when the relay was called.
type SubmitResult struct {
	Form   model.ContactSubmission
	Notice *model.Notice
	Errors []FieldError
}

// ContactService validates contact form submissions and hands them to the
// relay, allowing at most one submission in flight per session.
type ContactService struct {
	relay          driven.ContactRelay
	validate       *validator.Validate
	noticeDuration time.Duration

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewContactService creates a ContactService. A non-positive noticeDuration
// falls back to DefaultNoticeDuration.
func NewContactService(relay driven.ContactRelay, noticeDuration time.Duration) *ContactService {
	if noticeDuration <= 0 {
		noticeDuration = DefaultNoticeDuration
	}
	return &ContactService{
		relay:          relay,
		validate:       validator.New(),
		noticeDuration: noticeDuration,
		inFlight:       make(map[string]struct{}),
	}
}

// State reports whether a submission for the session is in flight.
func (s *ContactService) State(session string) model.SubmissionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.inFlight[session]; ok {
		return model.SubmissionSubmitting
	}
	return model.SubmissionIdle
}

// Submit validates the form and sends it through the relay.
//
// A validation failure returns a *ValidationError and leaves the relay
// untouched. A second call for a session whose previous call has not returned
// yields ErrSubmissionInFlight with a busy notice. A relay failure returns the form unchanged
// with an error notice and an error wrapping ErrRelayFailed. On success the
// returned form is empty and carries a success notice.
func (s *ContactService) Submit(ctx context.Context, session string, form model.ContactSubmission) (SubmitResult, error) {
	form.Name = strings.TrimSpace(form.Name)
	form.Email = strings.TrimSpace(form.Email)
	form.Message = strings.TrimSpace(form.Message)

	if err := s.check(form); err != nil {
		return SubmitResult{Form: form, Errors: err.Errors}, err
	}

	if !s.begin(session) {
		return SubmitResult{Form: form, Notice: s.notice(model.NoticeError, busyMessage)}, ErrSubmissionInFlight
	}
	defer s.end(session)

	form.ID = uuid.NewString()

	if err := s.relay.Send(ctx, form); err != nil {
		slog.Error("contact relay failed", "submission", form.ID, "error", err)
		kept := form
		kept.ID = ""
		return SubmitResult{Form: kept, Notice: s.notice(model.NoticeError, failureMessage)},
			fmt.Errorf("send submission %s: %w: %w", form.ID, ErrRelayFailed, err)
	}

	slog.Info("contact submission relayed", "submission", form.ID)
	return SubmitResult{Notice: s.notice(model.NoticeSuccess, successMessage)}, nil
}

func (s *ContactService) check(form model.ContactSubmission) *ValidationError {
	err := s.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Errors: []FieldError{{Field: "form", Message: err.Error()}}}
	}

	out := &ValidationError{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldMessage(fe.Tag()),
		})
	}
	return out
}

func fieldMessage(tag string) string {
	switch tag {
	case "required":
		return "This field is required."
	case "email":
		return "Please enter a valid email address."
	default:
		return "This value is not valid."
	}
}

func (s *ContactService) begin(session string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inFlight[session]; busy {
		return false
	}
	s.inFlight[session] = struct{}{}
	return true
}

func (s *ContactService) end(session string) {
	s.mu.Lock()
	delete(s.inFlight, session)
	s.mu.Unlock()
}

func (s *ContactService) notice(kind model.NoticeKind, msg string) *model.Notice {
	return &model.Notice{Kind: kind, Message: msg, Duration: s.noticeDuration}
}
