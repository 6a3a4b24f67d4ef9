package web

import (
	"net/http"
)

// RegisterRoutes registers the site's page, form and asset routes on mux,
// all under the configured base path. Static assets are served from the
// embedded filesystem at <base>static/.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	base := string(h.renderer.opts.BasePath)

	mux.Handle("GET "+base+"static/", http.StripPrefix(base+"static/", http.FileServerFS(Assets())))
	mux.HandleFunc("POST "+base+"contact", h.SubmitContact)
	mux.HandleFunc("GET "+base+"sitemap.xml", h.Sitemap)
	mux.HandleFunc("GET "+base+"robots.txt", h.Robots)
	mux.HandleFunc("GET "+base, h.Page)

	if base != "/" {
		mux.Handle("GET /{$}", http.RedirectHandler(base, http.StatusFound))
	}
}
