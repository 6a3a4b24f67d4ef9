package application_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

// --- Mock relay ---

type mockRelay struct {
	mu    sync.Mutex
	calls []model.ContactSubmission
	send  func(ctx context.Context, sub model.ContactSubmission) error
}

func (m *mockRelay) Send(ctx context.Context, sub model.ContactSubmission) error {
	m.mu.Lock()
	m.calls = append(m.calls, sub)
	send := m.send
	m.mu.Unlock()
	if send != nil {
		return send(ctx, sub)
	}
	return nil
}

func (m *mockRelay) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func validForm() model.ContactSubmission {
	return model.ContactSubmission{Name: "Ada", Email: "ada@example.com", Message: "Hello there"}
}

func TestContactService_SuccessClearsForm(t *testing.T) {
	relay := &mockRelay{}
	svc := application.NewContactService(relay, 0)

	res, err := svc.Submit(context.Background(), "s1", validForm())
	require.NoError(t, err)

	assert.Equal(t, model.ContactSubmission{}, res.Form)
	require.NotNil(t, res.Notice)
	assert.Equal(t, model.NoticeSuccess, res.Notice.Kind)
	assert.Equal(t, application.DefaultNoticeDuration, res.Notice.Duration)
	assert.Empty(t, res.Errors)

	require.Equal(t, 1, relay.callCount())
	assert.NotEmpty(t, relay.calls[0].ID)
	assert.Equal(t, "ada@example.com", relay.calls[0].Email)
	assert.Equal(t, model.SubmissionIdle, svc.State("s1"))
}

func TestContactService_FailureRetainsForm(t *testing.T) {
	relay := &mockRelay{send: func(context.Context, model.ContactSubmission) error {
		return errors.New("relay returned 500")
	}}
	svc := application.NewContactService(relay, 3*time.Second)

	res, err := svc.Submit(context.Background(), "s1", validForm())
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrRelayFailed)

	assert.Equal(t, validForm(), res.Form)
	require.NotNil(t, res.Notice)
	assert.Equal(t, model.NoticeError, res.Notice.Kind)
	assert.Equal(t, 3*time.Second, res.Notice.Duration)
	assert.Equal(t, 1, relay.callCount())
	assert.Equal(t, model.SubmissionIdle, svc.State("s1"))
}

func TestContactService_ValidationSkipsRelay(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ContactSubmission)
		field  string
	}{
		{"empty name", func(f *model.ContactSubmission) { f.Name = "" }, "name"},
		{"blank message", func(f *model.ContactSubmission) { f.Message = "   " }, "message"},
		{"empty email", func(f *model.ContactSubmission) { f.Email = "" }, "email"},
		{"malformed email", func(f *model.ContactSubmission) { f.Email = "not-an-email" }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			relay := &mockRelay{}
			svc := application.NewContactService(relay, 0)
			form := validForm()
			tt.mutate(&form)

			res, err := svc.Submit(context.Background(), "s1", form)
			require.Error(t, err)
			assert.ErrorIs(t, err, application.ErrInvalidSubmission)

			var verr *application.ValidationError
			require.ErrorAs(t, err, &verr)
			require.Len(t, verr.Errors, 1)
			assert.Equal(t, tt.field, verr.Errors[0].Field)
			assert.Equal(t, verr.Errors, res.Errors)

			assert.Nil(t, res.Notice)
			assert.Zero(t, relay.callCount())
		})
	}
}

func TestContactService_InFlightGuard(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	relay := &mockRelay{send: func(ctx context.Context, _ model.ContactSubmission) error {
		close(entered)
		<-release
		return nil
	}}
	svc := application.NewContactService(relay, 0)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Submit(context.Background(), "s1", validForm())
		done <- err
	}()

	<-entered
	assert.Equal(t, model.SubmissionSubmitting, svc.State("s1"))

	res, err := svc.Submit(context.Background(), "s1", validForm())
	require.ErrorIs(t, err, application.ErrSubmissionInFlight)
	require.NotNil(t, res.Notice)
	assert.Equal(t, model.NoticeError, res.Notice.Kind)
	assert.Equal(t, application.DefaultNoticeDuration, res.Notice.Duration)
	assert.Equal(t, validForm(), res.Form)
	assert.Equal(t, 1, relay.callCount())

	// Other sessions are not blocked.
	assert.Equal(t, model.SubmissionIdle, svc.State("s2"))

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, model.SubmissionIdle, svc.State("s1"))
}
