package application

import (
	"strings"

	"github.com/caffxin/studiosite/internal/domain/model"
)

// staticRoutes maps each canonical path to its page. Service detail paths
// are matched separately because their key is dynamic.
var staticRoutes = map[string]model.PageKey{
	model.PathHome:      model.PageHome,
	model.PathAbout:     model.PageAbout,
	model.PathServices:  model.PageServices,
	model.PathPortfolio: model.PagePortfolio,
	model.PathProcess:   model.PageProcess,
	model.PathFAQ:       model.PageFAQ,
	model.PathContact:   model.PageContact,
	model.PathPrivacy:   model.PagePrivacy,
	model.PathTerms:     model.PageTerms,
}

// navOrder is the header navigation, left to right.
var navOrder = []struct {
	page     model.PageKey
	path     string
	fallback string
}{
	{model.PageServices, model.PathServices, "Services"},
	{model.PagePortfolio, model.PathPortfolio, "Portfolio"},
	{model.PageProcess, model.PathProcess, "Process"},
	{model.PageFAQ, model.PathFAQ, "FAQ"},
	{model.PageContact, model.PathContact, "Contact"},
}

// footerOrder lists the footer links, which add the pages missing from the
// header.
var footerOrder = []struct {
	page     model.PageKey
	path     string
	fallback string
}{
	{model.PageAbout, model.PathAbout, "About"},
	{model.PageServices, model.PathServices, "Services"},
	{model.PagePortfolio, model.PathPortfolio, "Portfolio"},
	{model.PageContact, model.PathContact, "Contact"},
	{model.PagePrivacy, model.PathPrivacy, "Privacy Policy"},
	{model.PageTerms, model.PathTerms, "Terms of Service"},
}

// NavItem is one header or footer link with its active state.
type NavItem struct {
	Label  string
	Path   string
	Active bool
}

// Navigator resolves paths to routes and builds the navigation chrome.
type Navigator struct {
	registry *ContentRegistry
}

// NewNavigator creates a Navigator backed by the registry.
func NewNavigator(registry *ContentRegistry) *Navigator {
	return &Navigator{registry: registry}
}

// NormalizePath cleans a site-relative path: it ensures a leading slash,
// drops a trailing "/index.html" segment and trailing slashes. The root
// stays "/". A bare "index.html" is the root.
func NormalizePath(path string) string {
	if path == "" {
		return model.PathHome
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	path = strings.TrimSuffix(path, "/index.html")
	path = strings.TrimRight(path, "/")
	if path == "" {
		return model.PathHome
	}
	return path
}

// Resolve maps a site-relative path to a route. Unknown paths resolve to the
// home page with Fallback set. A service path with an unknown key still
// resolves to the service detail page, whose composition handles the miss.
func (n *Navigator) Resolve(path string) model.Route {
	path = NormalizePath(path)

	if page, ok := staticRoutes[path]; ok {
		return model.Route{Path: path, Page: page}
	}

	if key, ok := strings.CutPrefix(path, model.PathServices+"/"); ok && key != "" && !strings.Contains(key, "/") {
		return model.Route{Path: path, Page: model.PageServiceDetail, ServiceKey: key}
	}

	return model.Route{Path: path, Page: model.PageHome, Fallback: true}
}

// Routes returns every renderable route: the static pages followed by one
// detail route per service in registry order.
func (n *Navigator) Routes() []model.Route {
	routes := []model.Route{
		{Path: model.PathHome, Page: model.PageHome},
		{Path: model.PathAbout, Page: model.PageAbout},
		{Path: model.PathServices, Page: model.PageServices},
		{Path: model.PathPortfolio, Page: model.PagePortfolio},
		{Path: model.PathProcess, Page: model.PageProcess},
		{Path: model.PathFAQ, Page: model.PageFAQ},
		{Path: model.PathContact, Page: model.PageContact},
		{Path: model.PathPrivacy, Page: model.PagePrivacy},
		{Path: model.PathTerms, Page: model.PageTerms},
	}
	for _, svc := range n.registry.Services() {
		path := model.ServiceDetailPath(svc.Key)
		routes = append(routes, model.Route{Path: path, Page: model.PageServiceDetail, ServiceKey: svc.Key})
	}
	return routes
}

// NavItems returns the header links. Only the item whose path equals the
// current route path is active; the fallback home page activates nothing.
func (n *Navigator) NavItems(current model.Route) []NavItem {
	items := make([]NavItem, 0, len(navOrder))
	for _, entry := range navOrder {
		items = append(items, NavItem{
			Label:  n.label(entry.page, entry.fallback),
			Path:   entry.path,
			Active: !current.Fallback && current.Path == entry.path,
		})
	}
	return items
}

// FooterItems returns the footer links with the same active rule as the
// header.
func (n *Navigator) FooterItems(current model.Route) []NavItem {
	items := make([]NavItem, 0, len(footerOrder))
	for _, entry := range footerOrder {
		items = append(items, NavItem{
			Label:  n.label(entry.page, entry.fallback),
			Path:   entry.path,
			Active: !current.Fallback && current.Path == entry.path,
		})
	}
	return items
}

func (n *Navigator) label(page model.PageKey, fallback string) string {
	if label := n.registry.PageCopy(page).NavLabel; label != "" {
		return label
	}
	return fallback
}

// ShellState is the navigation shell's view state: the current route and
// whether the mobile menu is open.
type ShellState struct {
	Route    model.Route
	MenuOpen bool
}

// ToggleMenu flips the menu between open and closed.
func (s ShellState) ToggleMenu() ShellState {
	s.MenuOpen = !s.MenuOpen
	return s
}

// Navigate moves to a new route. The menu is always closed afterwards.
func (s ShellState) Navigate(route model.Route) ShellState {
	return ShellState{Route: route, MenuOpen: false}
}
