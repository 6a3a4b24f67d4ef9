package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/caffxin/studiosite/internal/adapter/driving/web/templates"
	"github.com/caffxin/studiosite/internal/adapter/driving/web/templates/pages"
	"github.com/caffxin/studiosite/internal/adapter/driving/web/viewmodel"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

// SiteOptions holds the deployment-wide rendering settings.
type SiteOptions struct {
	BasePath       model.BasePath
	SiteURL        string
	Reveal         bool
	NoticeDuration time.Duration
	// Static disables per-request state such as the menu and accordion
	// query links, for pages written to disk by the export.
	Static bool
	// ClientRelay is embedded in exported contact forms.
	ClientRelay *viewmodel.ClientRelay
}

// RequestState is the per-visitor state a page render depends on.
type RequestState struct {
	Shell     application.ShellState
	FAQ       application.Accordion
	CSRFToken string
	Form      model.ContactSubmission
	Errors    []application.FieldError
	Notice    *model.Notice
	// Submitting is set while the visitor's previous message is still
	// being relayed.
	Submitting bool
}

// Renderer turns routes into HTML documents.
type Renderer struct {
	navigator *application.Navigator
	composer  *application.PageComposer
	registry  *application.ContentRegistry
	opts      SiteOptions
}

// NewRenderer creates a Renderer over the given content services.
func NewRenderer(
	registry *application.ContentRegistry,
	navigator *application.Navigator,
	composer *application.PageComposer,
	opts SiteOptions,
) *Renderer {
	if opts.BasePath == "" {
		opts.BasePath = "/"
	}
	if opts.NoticeDuration <= 0 {
		opts.NoticeDuration = application.DefaultNoticeDuration
	}
	return &Renderer{
		navigator: navigator,
		composer:  composer,
		registry:  registry,
		opts:      opts,
	}
}

// Options returns the renderer's site options.
func (r *Renderer) Options() SiteOptions {
	return r.opts
}

// Page composes the route and maps it to a view model. The returned status
// is 404 for unknown paths and unknown services, 200 otherwise.
func (r *Renderer) Page(route model.Route, state RequestState) (viewmodel.PageViewModel, int) {
	page := r.composer.Compose(route)
	status := http.StatusOK
	if application.IsNotFound(page) {
		status = http.StatusNotFound
	}
	m := mapper{opts: r.opts, route: route, state: state}
	return viewmodel.PageViewModel{
		Layout:   r.layout(page, state, status),
		Sections: m.sections(page.Sections),
	}, status
}

// Render writes the full document for route to w.
func (r *Renderer) Render(ctx context.Context, w io.Writer, route model.Route, state RequestState) (int, error) {
	vm, status := r.Page(route, state)
	if err := templates.Layout(vm.Layout, pages.Page(vm.Sections)).Render(ctx, w); err != nil {
		return status, fmt.Errorf("render %s: %w", route.Path, err)
	}
	return status, nil
}

func (r *Renderer) layout(page model.Page, state RequestState, status int) viewmodel.LayoutViewModel {
	company := r.registry.Company()
	base := r.opts.BasePath
	current := page.Route

	l := viewmodel.LayoutViewModel{
		Title:         page.Title,
		Description:   page.Description,
		NoIndex:       status == http.StatusNotFound,
		Lang:          "en",
		BaseHref:      string(base),
		StaticURL:     base.URL("static/"),
		HomeHref:      base.URL(model.PathHome),
		SiteName:      company.Name,
		Logo:          base.URL(company.Logo),
		MenuOpen:      state.Shell.MenuOpen && !r.opts.Static,
		Email:         company.Email,
		Copyright:     company.Copyright,
		RevealEnabled: r.opts.Reveal,
		Notice:        noticeView(state.Notice),
	}
	if r.opts.SiteURL != "" && status == http.StatusOK {
		l.Canonical = r.opts.SiteURL + base.URL(current.Path)
	}

	self := base.URL(current.Path)
	l.MenuHref = self + "?menu=open"
	if l.MenuOpen {
		l.MenuHref = self
	}

	for _, item := range r.navigator.NavItems(current) {
		l.Nav = append(l.Nav, viewmodel.Link{Label: item.Label, Href: base.URL(item.Path), Active: item.Active})
	}
	for _, item := range r.navigator.FooterItems(current) {
		l.Footer = append(l.Footer, viewmodel.Link{Label: item.Label, Href: base.URL(item.Path), Active: item.Active})
	}
	return l
}

func noticeView(n *model.Notice) *viewmodel.Notice {
	if n == nil {
		return nil
	}
	return &viewmodel.Notice{
		Kind:       string(n.Kind),
		Message:    n.Message,
		DurationMS: n.Duration.Milliseconds(),
	}
}
