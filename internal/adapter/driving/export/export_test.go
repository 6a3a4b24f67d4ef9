package export

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/adapter/driven/content"
	"github.com/caffxin/studiosite/internal/adapter/driving/web"
	"github.com/caffxin/studiosite/internal/adapter/driving/web/viewmodel"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

func setupExporter(t *testing.T, opts web.SiteOptions) (*Exporter, *application.Navigator) {
	t.Helper()

	cat, err := content.NewEmbedded().Load(context.Background())
	require.NoError(t, err)
	registry, err := application.NewContentRegistry(cat)
	require.NoError(t, err)

	nav := application.NewNavigator(registry)
	opts.Static = true
	renderer := web.NewRenderer(registry, nav, application.NewPageComposer(registry), opts)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(renderer, nav, logger), nav
}

func readDoc(t *testing.T, name string) *goquery.Document {
	t.Helper()
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	require.NoError(t, err)
	return doc
}

func TestExport_WritesEveryRoute(t *testing.T) {
	exp, nav := setupExporter(t, web.SiteOptions{})
	dir := t.TempDir()

	res, err := exp.Export(context.Background(), dir)
	require.NoError(t, err)

	routes := nav.Routes()
	assert.Equal(t, len(routes)+1, res.Pages)
	for _, r := range routes {
		assert.FileExists(t, filepath.Join(dir, filepath.FromSlash(pagePath(r.Path))), r.Path)
	}
	assert.FileExists(t, filepath.Join(dir, "404.html"))
	assert.FileExists(t, filepath.Join(dir, "services", "web", "index.html"))
	assert.FileExists(t, filepath.Join(dir, "static", "css", "site.css"))
	assert.FileExists(t, filepath.Join(dir, "static", "images", "logo.svg"))
	assert.Greater(t, res.Assets, 5)

	assert.FileExists(t, filepath.Join(dir, "robots.txt"))
	assert.NoFileExists(t, filepath.Join(dir, "sitemap.xml"))
}

func TestExport_BasePathAndStaticLinks(t *testing.T) {
	exp, _ := setupExporter(t, web.SiteOptions{
		BasePath: model.NewBasePath("official-website"),
		SiteURL:  "https://caffxin.example",
	})
	dir := t.TempDir()

	_, err := exp.Export(context.Background(), dir)
	require.NoError(t, err)

	doc := readDoc(t, filepath.Join(dir, "faq", "index.html"))
	assert.Equal(t, "/official-website/static/css/site.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	doc.Find("[data-faq-toggle]").Each(func(_ int, s *goquery.Selection) {
		assert.True(t, strings.HasPrefix(s.AttrOr("href", ""), "#faq-"))
	})

	sitemap, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	assert.Contains(t, string(sitemap), "https://caffxin.example/official-website/portfolio")
}

func TestExport_ContactFormCarriesClientRelay(t *testing.T) {
	exp, _ := setupExporter(t, web.SiteOptions{
		ClientRelay: &viewmodel.ClientRelay{
			Endpoint:   "https://api.emailjs.com",
			ServiceID:  "svc",
			TemplateID: "tpl",
			PublicKey:  "pub",
		},
	})
	dir := t.TempDir()

	_, err := exp.Export(context.Background(), dir)
	require.NoError(t, err)

	form := readDoc(t, filepath.Join(dir, "contact", "index.html")).Find("[data-contact-form]")
	assert.Equal(t, "https://api.emailjs.com", form.AttrOr("data-relay-endpoint", ""))
	assert.Equal(t, "svc", form.AttrOr("data-relay-service", ""))
	assert.Equal(t, "pub", form.AttrOr("data-relay-key", ""))
}

func TestExport_NotFoundPage(t *testing.T) {
	exp, _ := setupExporter(t, web.SiteOptions{})
	dir := t.TempDir()

	_, err := exp.Export(context.Background(), dir)
	require.NoError(t, err)

	doc := readDoc(t, filepath.Join(dir, "404.html"))
	assert.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
}

func TestExport_CancelledContext(t *testing.T) {
	exp, _ := setupExporter(t, web.SiteOptions{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := exp.Export(ctx, t.TempDir())
	require.ErrorIs(t, err, context.Canceled)
}

func TestPagePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "index.html"},
		{"/about", "about/index.html"},
		{"/services/web", "services/web/index.html"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, pagePath(tt.in))
		})
	}
}
