package model

import "strings"

// PageKey identifies which page composer renders a route.
type PageKey string

const (
	PageHome          PageKey = "home"
	PageAbout         PageKey = "about"
	PageServices      PageKey = "services"
	PageServiceDetail PageKey = "service_detail"
	PagePortfolio     PageKey = "portfolio"
	PageProcess       PageKey = "process"
	PageFAQ           PageKey = "faq"
	PageContact       PageKey = "contact"
	PagePrivacy       PageKey = "privacy"
	PageTerms         PageKey = "terms"
)

// Canonical route paths, relative to the site base path.
const (
	PathHome      = "/"
	PathAbout     = "/about"
	PathServices  = "/services"
	PathPortfolio = "/portfolio"
	PathProcess   = "/process"
	PathFAQ       = "/faq"
	PathContact   = "/contact"
	PathPrivacy   = "/privacy-policy"
	PathTerms     = "/terms-of-service"
)

// Route is a resolved navigation target. ServiceKey is set only for
// PageServiceDetail. Fallback marks a path that matched no route and was
// resolved to the home page instead.
type Route struct {
	Path       string
	Page       PageKey
	ServiceKey string
	Fallback   bool
}

// ServiceDetailPath returns the detail path for a service key.
func ServiceDetailPath(key string) string {
	return PathServices + "/" + key
}

// Link is an href with its label.
type Link struct {
	Label string
	Href  string
}

// BasePath is the URL prefix the site is served under, always with a
// leading and trailing slash ("/" or "/official-website/").
type BasePath string

// NewBasePath normalizes raw into a BasePath. Empty input means the root.
func NewBasePath(raw string) BasePath {
	raw = strings.Trim(strings.TrimSpace(raw), "/")
	if raw == "" {
		return "/"
	}
	return BasePath("/" + raw + "/")
}

// URL prefixes a site-relative path or asset reference with the base path.
// Absolute URLs (with a scheme) and fragment-only references are returned
// unchanged.
func (b BasePath) URL(ref string) string {
	if ref == "" || strings.Contains(ref, "://") || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "mailto:") {
		return ref
	}
	base := string(b)
	if base == "" {
		base = "/"
	}
	return base + strings.TrimPrefix(ref, "/")
}

// Strip removes the base path prefix from an incoming request path. Paths
// outside the base path are returned unchanged.
func (b BasePath) Strip(path string) string {
	base := strings.TrimSuffix(string(b), "/")
	if base == "" {
		return path
	}
	if path == base {
		return "/"
	}
	if rest, ok := strings.CutPrefix(path, base+"/"); ok {
		return "/" + rest
	}
	return path
}
