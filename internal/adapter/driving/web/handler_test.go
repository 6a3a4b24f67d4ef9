package web

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/adapter/driven/content"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

// --- Mock relay ---

type mockRelay struct {
	mu   sync.Mutex
	sent []model.ContactSubmission
	err  error

	// entered, when set, is signaled as Send starts; Send then waits for
	// release to be closed.
	entered chan struct{}
	release chan struct{}
}

func (m *mockRelay) Send(_ context.Context, s model.ContactSubmission) error {
	m.mu.Lock()
	m.sent = append(m.sent, s)
	err, entered, release := m.err, m.entered, m.release
	m.mu.Unlock()

	if entered != nil {
		entered <- struct{}{}
		<-release
	}
	return err
}

// hold makes the next Send block until the returned func is called.
func (m *mockRelay) hold() (entered <-chan struct{}, release func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entered = make(chan struct{}, 1)
	m.release = make(chan struct{})
	return m.entered, func() { close(m.release) }
}

func (m *mockRelay) calls() []model.ContactSubmission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]model.ContactSubmission(nil), m.sent...)
}

// --- Helpers ---

type testSite struct {
	mux      *http.ServeMux
	registry *application.ContentRegistry
	relay    *mockRelay
}

func setupSite(t *testing.T, opts SiteOptions) *testSite {
	t.Helper()

	cat, err := content.NewEmbedded().Load(context.Background())
	require.NoError(t, err)
	registry, err := application.NewContentRegistry(cat)
	require.NoError(t, err)

	relay := &mockRelay{}
	renderer := NewRenderer(registry, application.NewNavigator(registry), application.NewPageComposer(registry), opts)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(renderer, application.NewContactService(relay, 0), logger)

	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	return &testSite{mux: mux, registry: registry, relay: relay}
}

func (s *testSite) get(t *testing.T, target string) (*httptest.ResponseRecorder, *goquery.Document) {
	t.Helper()
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	return rec, doc
}

func (s *testSite) postContact(t *testing.T, form url.Values, token string, asJSON bool) *httptest.ResponseRecorder {
	t.Helper()
	if token != "" {
		form.Set(csrfFormField, token)
	}
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: token})
	}
	if asJSON {
		req.Header.Set("Accept", "application/json")
	}
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	return rec
}

func (s *testSite) getWithSession(t *testing.T, target, token string) *goquery.Document {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(&http.Cookie{Name: csrfCookieName, Value: token})
	rec := httptest.NewRecorder()
	s.mux.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func submitDisabled(doc *goquery.Document) bool {
	_, ok := doc.Find(`form[data-contact-form] button[type="submit"]`).Attr("disabled")
	return ok
}

func decodeContact(t *testing.T, rec *httptest.ResponseRecorder) contactResponse {
	t.Helper()
	var resp contactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func validForm() url.Values {
	return url.Values{
		"name":    {"  Ada  "},
		"email":   {"ada@example.com"},
		"message": {"We need a booking system."},
	}
}

// --- Pages ---

func TestPage_PortfolioInRegistryOrder(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	rec, doc := site.get(t, "/portfolio")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []string
	doc.Find(".portfolio .project").Each(func(_ int, s *goquery.Selection) {
		got = append(got, strings.TrimPrefix(s.AttrOr("id", ""), "project-"))
	})

	var want []string
	for _, p := range site.registry.Portfolio() {
		want = append(want, p.Key)
	}
	assert.Equal(t, want, got)
}

func TestPage_CaseLinkOnlyForURLNotes(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	_, doc := site.get(t, "/portfolio")

	for _, p := range site.registry.Portfolio() {
		card := doc.Find("#project-" + p.Key)
		if p.HasCaseLink() {
			assert.Equal(t, p.Note, card.Find("a.project__case").AttrOr("href", ""), p.Key)
			assert.Equal(t, "_blank", card.Find("a.project__case").AttrOr("target", ""), p.Key)
		} else {
			assert.Zero(t, card.Find("a.project__case").Length(), p.Key)
		}
	}
}

func TestPage_HomeShowsThreeProjectTeasers(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	rec, doc := site.get(t, "/")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, 3, doc.Find(".projects-teaser .project").Length())
	assert.Equal(t, "/contact", doc.Find(".hero .button--primary").AttrOr("href", ""))
	assert.Equal(t, "/services", doc.Find(".hero .button--secondary").AttrOr("href", ""))
}

func TestPage_ServiceDetail(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	svc, ok := site.registry.Service("web")
	require.True(t, ok)

	rec, doc := site.get(t, "/services/web")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, svc.Name, doc.Find(".service-detail h1").Text())
	assert.Equal(t, len(svc.Features), doc.Find(".service-detail .checklist li").Length())
}

func TestPage_UnknownServiceIsNotFound(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	rec, doc := site.get(t, "/services/teleportation")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "/services", doc.Find(".not-found a").AttrOr("href", ""))
	assert.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
}

func TestPage_UnknownPathFallsBackToHome(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	rec, doc := site.get(t, "/no/such/page")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, 1, doc.Find(".hero").Length())
	assert.Zero(t, doc.Find(".site-nav a.is-active").Length())
}

func TestPage_NavActiveState(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	_, doc := site.get(t, "/process/")

	active := doc.Find(".site-nav a.is-active")
	require.Equal(t, 1, active.Length())
	assert.Equal(t, "/process", active.AttrOr("href", ""))
}

func TestPage_MenuOpenAndClose(t *testing.T) {
	site := setupSite(t, SiteOptions{})

	_, closed := site.get(t, "/about")
	assert.False(t, closed.Find(".site-header").HasClass("is-menu-open"))
	assert.Equal(t, "/about?menu=open", closed.Find("[data-menu-toggle]").AttrOr("href", ""))

	_, open := site.get(t, "/about?menu=open")
	assert.True(t, open.Find(".site-header").HasClass("is-menu-open"))
	assert.Equal(t, "/about", open.Find("[data-menu-toggle]").AttrOr("href", ""))

	// Following any nav link lands on a page with the menu closed.
	open.Find(".site-nav a").Each(func(_ int, s *goquery.Selection) {
		assert.NotContains(t, s.AttrOr("href", ""), "menu=")
	})
}

func TestPage_FAQSingleOpen(t *testing.T) {
	site := setupSite(t, SiteOptions{})

	_, none := site.get(t, "/faq")
	assert.Zero(t, none.Find(".faq__item.is-open").Length())

	_, doc := site.get(t, "/faq?open=contract")
	open := doc.Find(".faq__item.is-open")
	require.Equal(t, 1, open.Length())
	assert.Equal(t, "contract", open.AttrOr("data-faq-item", ""))
	// Toggling the open entry closes it.
	assert.Equal(t, "/faq#faq-contract", open.Find("[data-faq-toggle]").AttrOr("href", ""))

	other := doc.Find(`[data-faq-item="warranty"] [data-faq-toggle]`)
	assert.Equal(t, "/faq?open=warranty#faq-warranty", other.AttrOr("href", ""))
}

func TestPage_IssuesCSRFCookie(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	rec, doc := site.get(t, "/contact")

	var token string
	for _, c := range rec.Result().Cookies() {
		if c.Name == csrfCookieName {
			token = c.Value
		}
	}
	require.NotEmpty(t, token)
	assert.Equal(t, token, doc.Find(`input[name="csrf_token"]`).AttrOr("value", ""))
}

func TestPage_ContactGuideCopyButton(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	_, doc := site.get(t, "/contact")

	btn := doc.Find(".contact-guide [data-copy]")
	require.Equal(t, 1, btn.Length())
	assert.Equal(t, "caffxin.tech@gmail.com", btn.AttrOr("data-copy", ""))
	assert.NotEmpty(t, btn.AttrOr("data-copy-ok", ""))
	assert.NotEmpty(t, btn.AttrOr("data-copy-fail", ""))
}

func TestPage_RevealAttributes(t *testing.T) {
	on := setupSite(t, SiteOptions{Reveal: true})
	_, doc := on.get(t, "/")
	assert.Greater(t, doc.Find(`[data-reveal="pending"]`).Length(), 0)
	assert.Equal(t, "200", doc.Find(".hero__headline").AttrOr("data-reveal-delay", ""))

	off := setupSite(t, SiteOptions{})
	_, doc = off.get(t, "/")
	assert.Zero(t, doc.Find("[data-reveal]").Length())
}

func TestPage_BasePath(t *testing.T) {
	site := setupSite(t, SiteOptions{BasePath: model.NewBasePath("official-website"), SiteURL: "https://caffxin.example"})

	rec, doc := site.get(t, "/official-website/about")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://caffxin.example/official-website/about", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, "/official-website/static/css/site.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	doc.Find(".site-nav a").Each(func(_ int, s *goquery.Selection) {
		assert.True(t, strings.HasPrefix(s.AttrOr("href", ""), "/official-website/"))
	})

	rec, _ = site.get(t, "/official-website/static/js/reveal.js")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = site.get(t, "/")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/official-website/", rec.Header().Get("Location"))
}

// --- Contact ---

func TestSubmitContact_RejectsMissingCSRF(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	rec := site.postContact(t, validForm(), "", true)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, site.relay.calls())
}

func TestSubmitContact_JSONSuccess(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	rec := site.postContact(t, validForm(), "tok", true)

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeContact(t, rec)
	assert.Equal(t, "success", resp.Status)
	assert.Contains(t, resp.Message, "Thanks for reaching out")
	assert.Equal(t, int64(5000), resp.DurationMS)
	assert.Equal(t, contactFields{}, resp.Fields)

	calls := site.relay.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Ada", calls[0].Name)
	assert.NotEmpty(t, calls[0].ID)
}

func TestSubmitContact_JSONValidation(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	form := validForm()
	form.Set("email", "not-an-email")
	rec := site.postContact(t, form, "tok", true)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeContact(t, rec)
	assert.Equal(t, "invalid", resp.Status)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "email", resp.Errors[0].Field)
	assert.Equal(t, "not-an-email", resp.Fields.Email)
	assert.Empty(t, site.relay.calls())
}

func TestSubmitContact_JSONRelayFailureKeepsFields(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	site.relay.err = errors.New("boom")
	rec := site.postContact(t, validForm(), "tok", true)

	require.Equal(t, http.StatusBadGateway, rec.Code)
	resp := decodeContact(t, rec)
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Message, "could not be sent")
	assert.Equal(t, "Ada", resp.Fields.Name)
	assert.Equal(t, "We need a booking system.", resp.Fields.Message)
}

func TestSubmitContact_HTMLRerendersForm(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	form := validForm()
	form.Set("message", "   ")
	rec := site.postContact(t, form, "tok", false)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "Ada", doc.Find(`input[name="name"]`).AttrOr("value", ""))
	assert.Equal(t, "This field is required.", doc.Find(".field.has-error .field__error").Text())
	assert.Zero(t, doc.Find("[data-toast]").Length())
}

func TestSubmitContact_HTMLSuccessShowsNotice(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	rec := site.postContact(t, validForm(), "tok", false)

	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	toast := doc.Find("[data-toast]")
	assert.True(t, toast.HasClass("toast--success"))
	assert.Equal(t, "5000", toast.AttrOr("data-toast-ms", ""))
	assert.Empty(t, doc.Find(`input[name="name"]`).AttrOr("value", ""))
}

func TestSubmitContact_SecondPostWhileSendingIsBusy(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	entered, release := site.relay.hold()

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		first <- site.postContact(t, validForm(), "tok", true)
	}()
	<-entered

	rec := site.postContact(t, validForm(), "tok", true)
	require.Equal(t, http.StatusConflict, rec.Code)
	resp := decodeContact(t, rec)
	assert.Equal(t, "busy", resp.Status)
	assert.Equal(t, "Your previous message is still being sent.", resp.Message)
	assert.Equal(t, int64(5000), resp.DurationMS)
	assert.Equal(t, "Ada", resp.Fields.Name)

	// While the first send is pending the page shows the form as sending.
	assert.True(t, submitDisabled(site.getWithSession(t, "/contact", "tok")))
	assert.False(t, submitDisabled(site.getWithSession(t, "/contact", "other")))

	release()
	firstRec := <-first
	assert.Equal(t, http.StatusOK, firstRec.Code)
	assert.Len(t, site.relay.calls(), 1)
	assert.False(t, submitDisabled(site.getWithSession(t, "/contact", "tok")))
}

func TestSubmitContact_HTMLBusyShowsNotice(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	entered, release := site.relay.hold()

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		first <- site.postContact(t, validForm(), "tok", false)
	}()
	<-entered

	rec := site.postContact(t, validForm(), "tok", false)
	require.Equal(t, http.StatusConflict, rec.Code)
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)

	toast := doc.Find("[data-toast]")
	assert.True(t, toast.HasClass("toast--error"))
	assert.Equal(t, "5000", toast.AttrOr("data-toast-ms", ""))
	assert.True(t, submitDisabled(doc))
	assert.Equal(t, "Ada", doc.Find(`input[name="name"]`).AttrOr("value", ""))

	release()
	assert.Equal(t, http.StatusOK, (<-first).Code)
	assert.Len(t, site.relay.calls(), 1)
}

// --- Sitemap ---

func TestSitemap(t *testing.T) {
	site := setupSite(t, SiteOptions{SiteURL: "https://caffxin.example"})
	rec, _ := site.get(t, "/sitemap.xml")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<loc>https://caffxin.example/</loc>")
	assert.Contains(t, body, "<loc>https://caffxin.example/services/web</loc>")

	rec, _ = site.get(t, "/robots.txt")
	assert.Contains(t, rec.Body.String(), "Sitemap: https://caffxin.example/sitemap.xml")
}

func TestSitemap_NotFoundWithoutSiteURL(t *testing.T) {
	site := setupSite(t, SiteOptions{})
	rec, _ := site.get(t, "/sitemap.xml")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
