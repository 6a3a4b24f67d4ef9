package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/index.html", "/"},
		{"/about/", "/about"},
		{"/about/index.html", "/about"},
		{"index.html", "/"},
		{"/servicesindex.html", "/servicesindex.html"},
		{"faq", "/faq"},
		{"/services/web//", "/services/web"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, application.NormalizePath(tt.in))
		})
	}
}

func TestNavigator_Resolve(t *testing.T) {
	nav := application.NewNavigator(newTestRegistry(t))

	tests := []struct {
		path string
		want model.Route
	}{
		{"/", model.Route{Path: "/", Page: model.PageHome}},
		{"/about/", model.Route{Path: "/about", Page: model.PageAbout}},
		{"/privacy-policy", model.Route{Path: "/privacy-policy", Page: model.PagePrivacy}},
		{"/terms-of-service", model.Route{Path: "/terms-of-service", Page: model.PageTerms}},
		{"/services/web", model.Route{Path: "/services/web", Page: model.PageServiceDetail, ServiceKey: "web"}},
		{"/services/ghost", model.Route{Path: "/services/ghost", Page: model.PageServiceDetail, ServiceKey: "ghost"}},
		{"/services/a/b", model.Route{Path: "/services/a/b", Page: model.PageHome, Fallback: true}},
		{"/nowhere", model.Route{Path: "/nowhere", Page: model.PageHome, Fallback: true}},
		{"/servicesindex.html", model.Route{Path: "/servicesindex.html", Page: model.PageHome, Fallback: true}},
		{"/services/index.html", model.Route{Path: "/services", Page: model.PageServices}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, nav.Resolve(tt.path))
		})
	}
}

func TestNavigator_RoutesIncludeEveryService(t *testing.T) {
	nav := application.NewNavigator(newTestRegistry(t))

	routes := nav.Routes()
	require.Len(t, routes, 11)
	assert.Equal(t, model.Route{Path: "/services/web", Page: model.PageServiceDetail, ServiceKey: "web"}, routes[9])
	assert.Equal(t, "/services/mobile", routes[10].Path)

	for _, r := range routes {
		assert.Equal(t, r, nav.Resolve(r.Path), "route %s must resolve to itself", r.Path)
	}
}

func TestNavigator_NavItemsActive(t *testing.T) {
	nav := application.NewNavigator(newTestRegistry(t))

	items := nav.NavItems(nav.Resolve("/portfolio"))
	require.Len(t, items, 5)

	var active []string
	for _, it := range items {
		if it.Active {
			active = append(active, it.Path)
		}
	}
	assert.Equal(t, []string{"/portfolio"}, active)
	assert.Equal(t, "Work", items[1].Label)
	assert.Equal(t, "Process", items[2].Label)
}

func TestNavigator_NavItemsNoneActive(t *testing.T) {
	nav := application.NewNavigator(newTestRegistry(t))

	for _, path := range []string{"/", "/services/web", "/about", "/nowhere"} {
		for _, it := range nav.NavItems(nav.Resolve(path)) {
			assert.False(t, it.Active, "%s should not activate %s", path, it.Path)
		}
	}
}

func TestShellState_MenuClosesOnNavigate(t *testing.T) {
	state := application.ShellState{Route: model.Route{Path: "/", Page: model.PageHome}}

	state = state.ToggleMenu()
	assert.True(t, state.MenuOpen)

	state = state.Navigate(model.Route{Path: "/faq", Page: model.PageFAQ})
	assert.False(t, state.MenuOpen)
	assert.Equal(t, "/faq", state.Route.Path)

	state = state.Navigate(model.Route{Path: "/faq", Page: model.PageFAQ})
	assert.False(t, state.MenuOpen)

	assert.False(t, state.ToggleMenu().ToggleMenu().MenuOpen)
}
