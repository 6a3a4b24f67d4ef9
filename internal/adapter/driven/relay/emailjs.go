// Package relay delivers contact form submissions to their recipient.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/caffxin/studiosite/internal/domain/model"
	"github.com/caffxin/studiosite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ContactRelay = (*EmailJS)(nil)

// sendPath is the EmailJS REST endpoint for template-based sends.
const sendPath = "/api/v1.0/email/send"

// maxErrorBody caps how much of a failed response is kept for the error.
const maxErrorBody = 512

// EmailJSConfig identifies the EmailJS account, service and template.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	Recipient  string
	Timeout    time.Duration
}

// EmailJS sends submissions through the EmailJS REST API.
type EmailJS struct {
	cfg    EmailJSConfig
	client *http.Client
}

// NewEmailJS creates an EmailJS relay. A zero timeout means 15 seconds.
func NewEmailJS(cfg EmailJSConfig) *EmailJS {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &EmailJS{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	AccessToken    string         `json:"accessToken,omitempty"`
	TemplateParams templateParams `json:"template_params"`
}

// templateParams are the variables the EmailJS template references.
type templateParams struct {
	ToEmail   string `json:"to_email,omitempty"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	Message   string `json:"message"`
}

// Send posts one submission. Any non-2xx response is an error carrying the
// status and the start of the response body.
func (e *EmailJS) Send(ctx context.Context, sub model.ContactSubmission) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:   e.cfg.ServiceID,
		TemplateID:  e.cfg.TemplateID,
		UserID:      e.cfg.PublicKey,
		AccessToken: e.cfg.PrivateKey,
		TemplateParams: templateParams{
			ToEmail:   e.cfg.Recipient,
			UserName:  sub.Name,
			UserEmail: sub.Email,
			Message:   sub.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("marshal emailjs request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.cfg.Endpoint+sendPath, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("post emailjs request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return fmt.Errorf("emailjs returned %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
