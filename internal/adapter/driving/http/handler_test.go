package httphandler_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httphandler "github.com/caffxin/studiosite/internal/adapter/driving/http"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

// --- Helpers ---

func testCatalog() *model.Catalog {
	return &model.Catalog{
		Company: model.Company{Name: "CaffXin Tech"},
		Services: []model.ServiceOffering{
			{Key: "web", Name: "Web development", ShortDescription: "Sites and apps", Features: []string{"SPA"}},
			{Key: "line", Name: "LINE bots", ShortDescription: "Bots"},
		},
		Portfolio: []model.PortfolioProject{
			{Key: "blog", Name: "Travel blog", Note: "https://aiwajourney.com/"},
			{Key: "erp", Name: "Optical ERP", Note: "Internal system"},
		},
		FAQ: []model.FAQEntry{
			{Key: "cost", Category: "Pricing", Question: "How much?", Answer: "It depends."},
			{Key: "time", Category: "Process", Question: "How long?", Answer: "Weeks."},
			{Key: "pay", Category: "Pricing", Question: "How to pay?", Answer: "Transfer."},
		},
	}
}

func setupHandler(t *testing.T, cat *model.Catalog, base model.BasePath) http.Handler {
	t.Helper()

	registry, err := application.NewContentRegistry(cat)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := httphandler.NewHandler(
		registry,
		application.NewNavigator(registry),
		application.NewHealthService(registry, "embedded", application.RelayModeLog),
		logger,
	)

	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, h, base)
	return httphandler.ApplyMiddleware(mux, logger)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

// --- Tests ---

func TestHealth_OK(t *testing.T) {
	h := setupHandler(t, testCatalog(), "/")
	rec := get(t, h, "/api/v1/health")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[httphandler.HealthResponse](t, rec)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "embedded", resp.Source)
	assert.Equal(t, "log", resp.Relay)
	assert.Equal(t, 2, resp.Content["services"])
	assert.NotEmpty(t, resp.Time)
	assert.NotEmpty(t, rec.Header().Get("Content-Type"))
}

func TestHealth_DegradedWithoutContent(t *testing.T) {
	h := setupHandler(t, &model.Catalog{}, "/")
	rec := get(t, h, "/api/v1/health")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "degraded", decode[httphandler.HealthResponse](t, rec).Status)
}

func TestListServices(t *testing.T) {
	h := setupHandler(t, testCatalog(), "/")
	rec := get(t, h, "/api/v1/services")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[[]httphandler.ServiceResponse](t, rec)
	require.Len(t, resp, 2)
	assert.Equal(t, "web", resp[0].Key)
	assert.Equal(t, "/services/web", resp[0].Path)
	assert.Equal(t, []string{}, resp[1].Features)
}

func TestGetService(t *testing.T) {
	h := setupHandler(t, testCatalog(), "/")

	rec := get(t, h, "/api/v1/services/line")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "LINE bots", decode[httphandler.ServiceResponse](t, rec).Name)

	rec = get(t, h, "/api/v1/services/nope")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "service not found")
}

func TestListPortfolio_SplitsCaseLinks(t *testing.T) {
	h := setupHandler(t, testCatalog(), "/")
	rec := get(t, h, "/api/v1/portfolio")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[[]httphandler.ProjectResponse](t, rec)
	require.Len(t, resp, 2)
	assert.Equal(t, "https://aiwajourney.com/", resp[0].CaseURL)
	assert.Empty(t, resp[0].Note)
	assert.Equal(t, "Internal system", resp[1].Note)
	assert.Empty(t, resp[1].CaseURL)
}

func TestGetProject(t *testing.T) {
	h := setupHandler(t, testCatalog(), "/")

	rec := get(t, h, "/api/v1/portfolio/erp")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[httphandler.ProjectResponse](t, rec)
	assert.Equal(t, "Optical ERP", resp.Name)
	assert.Equal(t, "Internal system", resp.Note)

	rec = get(t, h, "/api/v1/portfolio/web")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "project not found")
}

func TestListKeys(t *testing.T) {
	h := setupHandler(t, testCatalog(), "/")

	tests := []struct {
		kind string
		want []string
	}{
		{"services", []string{"web", "line"}},
		{"portfolio", []string{"blog", "erp"}},
		{"faq", []string{"cost", "time", "pay"}},
		{"team", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			rec := get(t, h, "/api/v1/content/"+tt.kind)
			require.Equal(t, http.StatusOK, rec.Code)
			resp := decode[httphandler.ContentKeysResponse](t, rec)
			assert.Equal(t, tt.kind, resp.Kind)
			assert.Equal(t, tt.want, resp.Keys)
		})
	}
}

func TestListKeys_UnknownKind(t *testing.T) {
	h := setupHandler(t, testCatalog(), "/")
	rec := get(t, h, "/api/v1/content/blogposts")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown content kind")
}

func TestListFAQ_GroupedByFirstAppearance(t *testing.T) {
	h := setupHandler(t, testCatalog(), "/")
	rec := get(t, h, "/api/v1/faq")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[[]httphandler.FAQCategoryResponse](t, rec)
	require.Len(t, resp, 2)
	assert.Equal(t, "Pricing", resp[0].Category)
	require.Len(t, resp[0].Entries, 2)
	assert.Equal(t, "pay", resp[0].Entries[1].Key)
	assert.Equal(t, "Process", resp[1].Category)
}

func TestListRoutes(t *testing.T) {
	h := setupHandler(t, testCatalog(), "/")
	rec := get(t, h, "/api/v1/routes")

	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[[]httphandler.RouteResponse](t, rec)
	assert.Len(t, resp, 9+2)

	var detail []string
	for _, r := range resp {
		if r.ServiceKey != "" {
			detail = append(detail, r.Path)
		}
	}
	assert.Equal(t, []string{"/services/web", "/services/line"}, detail)
}

func TestRoutes_UnderBasePath(t *testing.T) {
	h := setupHandler(t, testCatalog(), model.NewBasePath("official-website"))

	assert.Equal(t, http.StatusOK, get(t, h, "/official-website/api/v1/health").Code)
	assert.Equal(t, http.StatusNotFound, get(t, h, "/api/v1/health").Code)
}

func TestMiddleware_RecoversPanics(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	h := httphandler.ApplyMiddleware(mux, logger)

	rec := get(t, h, "/boom")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal server error")
	assert.Contains(t, logs.String(), "panic recovered")
}

func TestMiddleware_LogsRequestID(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	var seen string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ok", func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetReqID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	h := httphandler.ApplyMiddleware(mux, logger)

	rec := get(t, h, "/ok")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.NotEmpty(t, seen)
	assert.True(t, strings.Contains(logs.String(), "request_id="+seen))
	assert.Contains(t, logs.String(), "status=204")
}
