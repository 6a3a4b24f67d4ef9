package httphandler

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

// Handler is the HTTP driving adapter that serves the read-only JSON API
// over the site content.
type Handler struct {
	registry  *application.ContentRegistry
	navigator *application.Navigator
	healthSvc *application.HealthService
	logger    *slog.Logger
}

// NewHandler creates a Handler with all required dependencies.
func NewHandler(
	registry *application.ContentRegistry,
	navigator *application.Navigator,
	healthSvc *application.HealthService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		registry:  registry,
		navigator: navigator,
		healthSvc: healthSvc,
		logger:    logger,
	}
}

// RegisterAPIRoutes registers the JSON API on mux under base.
func RegisterAPIRoutes(mux *http.ServeMux, h *Handler, base model.BasePath) {
	prefix := "GET " + base.URL("api/v1/")

	mux.HandleFunc(prefix+"health", h.Health)
	mux.HandleFunc(prefix+"routes", h.ListRoutes)
	mux.HandleFunc(prefix+"services", h.ListServices)
	mux.HandleFunc(prefix+"services/{key}", h.GetService)
	mux.HandleFunc(prefix+"portfolio", h.ListPortfolio)
	mux.HandleFunc(prefix+"portfolio/{key}", h.GetProject)
	mux.HandleFunc(prefix+"faq", h.ListFAQ)
	mux.HandleFunc(prefix+"content/{kind}", h.ListKeys)
}

// Health reports content counts and relay mode. A degraded site answers 503
// so container health checks fail.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	report := h.healthSvc.Report()

	status := http.StatusOK
	if report.Status != application.StatusOK {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, toHealthResponse(report, time.Now().UTC()))
}

// ListRoutes returns every navigable route of the site.
func (h *Handler) ListRoutes(w http.ResponseWriter, _ *http.Request) {
	routes := h.navigator.Routes()
	resp := make([]RouteResponse, 0, len(routes))
	for _, r := range routes {
		resp = append(resp, toRouteResponse(r))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListServices returns all service offerings in site order.
func (h *Handler) ListServices(w http.ResponseWriter, _ *http.Request) {
	services := entriesOf[model.ServiceOffering](h.registry.GetAll(model.KindServices))
	resp := make([]ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, toServiceResponse(s))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetService returns a single service by key.
func (h *Handler) GetService(w http.ResponseWriter, r *http.Request) {
	svc, ok := lookup[model.ServiceOffering](h.registry, model.KindServices, r.PathValue("key"))
	if !ok {
		writeError(w, http.StatusNotFound, "service not found")
		return
	}

	writeJSON(w, http.StatusOK, toServiceResponse(svc))
}

// ListPortfolio returns all portfolio projects in site order.
func (h *Handler) ListPortfolio(w http.ResponseWriter, _ *http.Request) {
	projects := entriesOf[model.PortfolioProject](h.registry.GetAll(model.KindPortfolio))
	resp := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		resp = append(resp, toProjectResponse(p))
	}
	writeJSON(w, http.StatusOK, resp)
}

// GetProject returns a single portfolio project by key.
func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	p, ok := lookup[model.PortfolioProject](h.registry, model.KindPortfolio, r.PathValue("key"))
	if !ok {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}

	writeJSON(w, http.StatusOK, toProjectResponse(p))
}

// ListFAQ returns the FAQ grouped by category.
func (h *Handler) ListFAQ(w http.ResponseWriter, _ *http.Request) {
	groups := model.GroupFAQ(entriesOf[model.FAQEntry](h.registry.GetAll(model.KindFAQ)))
	resp := make([]FAQCategoryResponse, 0, len(groups))
	for _, g := range groups {
		resp = append(resp, toFAQCategoryResponse(g))
	}
	writeJSON(w, http.StatusOK, resp)
}

// ListKeys returns the keys of one content kind in registry order.
func (h *Handler) ListKeys(w http.ResponseWriter, r *http.Request) {
	kind := model.Kind(r.PathValue("kind"))
	if !slices.Contains(model.Kinds, kind) {
		writeError(w, http.StatusNotFound, "unknown content kind")
		return
	}

	entries := h.registry.GetAll(kind)
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.EntryKey())
	}
	writeJSON(w, http.StatusOK, ContentKeysResponse{Kind: string(kind), Keys: keys})
}

func entriesOf[T model.Entry](entries []model.Entry) []T {
	out := make([]T, 0, len(entries))
	for _, e := range entries {
		if v, ok := e.(T); ok {
			out = append(out, v)
		}
	}
	return out
}

func lookup[T model.Entry](reg *application.ContentRegistry, kind model.Kind, key string) (T, bool) {
	e, ok := reg.GetByKey(kind, key)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := e.(T)
	return v, ok
}
