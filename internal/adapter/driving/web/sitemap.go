package web

import (
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// HasSitemap reports whether absolute URLs are known, which a sitemap
// requires.
func (r *Renderer) HasSitemap() bool {
	return r.opts.SiteURL != ""
}

// WriteSitemap writes an XML sitemap listing every route.
func (r *Renderer) WriteSitemap(w io.Writer) error {
	set := urlset{NS: sitemapNS}
	for _, route := range r.navigator.Routes() {
		set.URLs = append(set.URLs, sitemapURL{Loc: r.opts.SiteURL + r.opts.BasePath.URL(route.Path)})
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("write sitemap: %w", err)
	}
	return nil
}

// WriteRobots writes robots.txt, pointing crawlers at the sitemap when one
// exists.
func (r *Renderer) WriteRobots(w io.Writer) error {
	var b strings.Builder
	b.WriteString("User-agent: *\nAllow: /\n")
	if r.HasSitemap() {
		b.WriteString("Sitemap: " + r.opts.SiteURL + r.opts.BasePath.URL("sitemap.xml") + "\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Sitemap serves sitemap.xml, or 404 when no site URL is configured.
func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	if !h.renderer.HasSitemap() {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	if err := h.renderer.WriteSitemap(w); err != nil {
		h.logger.Error("failed to write sitemap", "error", err)
	}
}

// Robots serves robots.txt.
func (h *Handler) Robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := h.renderer.WriteRobots(w); err != nil {
		h.logger.Error("failed to write robots.txt", "error", err)
	}
}
