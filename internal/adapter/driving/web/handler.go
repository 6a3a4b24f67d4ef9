// Package web implements the HTML driving adapter that serves the site's
// pages as templ components.
package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	"github.com/caffxin/studiosite/internal/adapter/driving/web/templates"
	"github.com/caffxin/studiosite/internal/adapter/driving/web/templates/pages"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

// maxContactBytes bounds the contact form body.
const maxContactBytes = 64 << 10

// Handler is the web driving adapter that serves HTML pages and accepts
// contact form posts.
type Handler struct {
	renderer      *Renderer
	contact       *application.ContactService
	secureCookies bool
	logger        *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(renderer *Renderer, contact *application.ContactService, logger *slog.Logger) *Handler {
	return &Handler{
		renderer:      renderer,
		contact:       contact,
		secureCookies: strings.HasPrefix(renderer.opts.SiteURL, "https://"),
		logger:        logger,
	}
}

// Page renders whichever page the request path resolves to. Unknown paths
// render the home page with a 404 status; unknown service keys render the
// service not-found page.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	path := h.renderer.opts.BasePath.Strip(r.URL.Path)
	route := h.renderer.navigator.Resolve(path)

	// Every page load is a navigation, which closes the menu; the toggle
	// link reopens it with ?menu=open.
	q := r.URL.Query()
	shell := application.ShellState{}.Navigate(route)
	if q.Get("menu") == "open" {
		shell = shell.ToggleMenu()
	}

	session := ensureCSRFToken(w, r, string(h.renderer.opts.BasePath), h.secureCookies)
	state := RequestState{
		Shell:      shell,
		FAQ:        application.NewAccordion(q.Get("open")),
		CSRFToken:  session,
		Submitting: h.contact.State(session) == model.SubmissionSubmitting,
	}
	h.render(w, r, route, state, 0)
}

// SubmitContact handles a contact form post. Script-driven clients that
// accept JSON get a contactResponse; plain form posts get the contact page
// re-rendered with the outcome.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBytes)
	if err := r.ParseForm(); err != nil {
		h.contactError(w, r, http.StatusBadRequest, "The form could not be read.")
		return
	}

	session, ok := validateCSRF(r)
	if !ok {
		h.contactError(w, r, http.StatusForbidden, "Your session has expired. Please reload the page and try again.")
		return
	}

	form := model.ContactSubmission{
		Name:    r.PostFormValue("name"),
		Email:   r.PostFormValue("email"),
		Message: r.PostFormValue("message"),
	}

	result, err := h.contact.Submit(r.Context(), session, form)
	status, outcome := contactOutcome(err)

	if wantsJSON(r) {
		writeJSON(w, status, newContactResponse(outcome, result))
		return
	}

	route := h.renderer.navigator.Resolve(model.PathContact)
	state := RequestState{
		Shell:      application.ShellState{}.Navigate(route),
		CSRFToken:  session,
		Form:       result.Form,
		Errors:     result.Errors,
		Notice:     result.Notice,
		Submitting: h.contact.State(session) == model.SubmissionSubmitting,
	}
	h.render(w, r, route, state, status)
}

func (h *Handler) contactError(w http.ResponseWriter, r *http.Request, status int, message string) {
	if wantsJSON(r) {
		writeJSON(w, status, contactResponse{Status: string(outcomeError), Message: message})
		return
	}
	http.Error(w, message, status)
}

// render writes the page for route. A zero status means the renderer's own
// status (200, or 404 for not-found pages).
func (h *Handler) render(w http.ResponseWriter, r *http.Request, route model.Route, state RequestState, status int) {
	vm, pageStatus := h.renderer.Page(route, state)
	if status == 0 {
		status = pageStatus
	}

	templ.Handler(templates.Layout(vm.Layout, pages.Page(vm.Sections)),
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			h.logger.Error("failed to render page", "path", route.Path, "error", err)
			return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "internal server error", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

type outcome string

const (
	outcomeSuccess outcome = "success"
	outcomeError   outcome = "error"
	outcomeInvalid outcome = "invalid"
	outcomeBusy    outcome = "busy"
)

func contactOutcome(err error) (int, outcome) {
	switch {
	case err == nil:
		return http.StatusOK, outcomeSuccess
	case errors.Is(err, application.ErrInvalidSubmission):
		return http.StatusUnprocessableEntity, outcomeInvalid
	case errors.Is(err, application.ErrSubmissionInFlight):
		return http.StatusConflict, outcomeBusy
	default:
		return http.StatusBadGateway, outcomeError
	}
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}
