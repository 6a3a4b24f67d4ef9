package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/domain/model"
)

func testSubmission() model.ContactSubmission {
	return model.ContactSubmission{ID: "abc", Name: "Ada", Email: "ada@example.com", Message: "Hi"}
}

func TestEmailJS_Send(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	relay := NewEmailJS(EmailJSConfig{
		Endpoint:   srv.URL,
		ServiceID:  "service_1",
		TemplateID: "template_1",
		PublicKey:  "pub",
		PrivateKey: "priv",
		Recipient:  "team@example.com",
	})

	require.NoError(t, relay.Send(context.Background(), testSubmission()))

	assert.Equal(t, "service_1", got["service_id"])
	assert.Equal(t, "template_1", got["template_id"])
	assert.Equal(t, "pub", got["user_id"])
	assert.Equal(t, "priv", got["accessToken"])
	params, ok := got["template_params"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "team@example.com", params["to_email"])
	assert.Equal(t, "Ada", params["user_name"])
	assert.Equal(t, "ada@example.com", params["user_email"])
	assert.Equal(t, "Hi", params["message"])
}

func TestEmailJS_SendOmitsEmptyAccessToken(t *testing.T) {
	var raw []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(r.Body)
		raw = buf.Bytes()
	}))
	defer srv.Close()

	relay := NewEmailJS(EmailJSConfig{Endpoint: srv.URL, ServiceID: "s", TemplateID: "t", PublicKey: "p"})
	require.NoError(t, relay.Send(context.Background(), testSubmission()))

	assert.NotContains(t, string(raw), "accessToken")
}

func TestEmailJS_SendNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The template ID is invalid\n"))
	}))
	defer srv.Close()

	relay := NewEmailJS(EmailJSConfig{Endpoint: srv.URL})
	err := relay.Send(context.Background(), testSubmission())

	require.Error(t, err)
	assert.Equal(t, "emailjs returned 400: The template ID is invalid", err.Error())
}

func TestEmailJS_SendTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	relay := NewEmailJS(EmailJSConfig{Endpoint: srv.URL, Timeout: 50 * time.Millisecond})
	err := relay.Send(context.Background(), testSubmission())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "post emailjs request")
}

func TestEmailJS_SendCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := NewEmailJS(EmailJSConfig{Endpoint: srv.URL}).Send(ctx, testSubmission())
	assert.ErrorIs(t, err, context.Canceled)
}
