package templates

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/adapter/driving/web/viewmodel"
)

func renderLayout(t *testing.T, l viewmodel.LayoutViewModel, body string) *goquery.Document {
	t.Helper()
	content := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, body)
		return err
	})
	var buf bytes.Buffer
	require.NoError(t, Layout(l, content).Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestLayout_ChromeAroundContent(t *testing.T) {
	doc := renderLayout(t, viewmodel.LayoutViewModel{
		Title:     "About | CaffXin Tech",
		Lang:      "en",
		SiteName:  "CaffXin Tech",
		StaticURL: "/static/",
		MenuHref:  "/about?menu=open",
		Nav: []viewmodel.Link{
			{Label: "Home", Href: "/"},
			{Label: "About", Href: "/about", Active: true},
		},
		Footer:    []viewmodel.Link{{Label: "Privacy", Href: "/privacy"}},
		Email:     "hello@caffxin.tech",
		Copyright: "COPYRIGHT",
	}, `<section class="intro">x</section>`)

	assert.Equal(t, "About | CaffXin Tech", doc.Find("title").Text())
	assert.Equal(t, "en", doc.Find("html").AttrOr("lang", ""))
	assert.Equal(t, 1, doc.Find("main#main > section.intro").Length())
	assert.Equal(t, "page", doc.Find(".site-nav a.is-active").AttrOr("aria-current", ""))
	assert.Equal(t, "/about", doc.Find(".site-nav a.is-active").AttrOr("href", ""))
	assert.Equal(t, 2, doc.Find(".site-nav a[data-nav-link]").Length())
	assert.Equal(t, "false", doc.Find("[data-menu-toggle]").AttrOr("aria-expanded", ""))
	assert.Equal(t, "/about?menu=open", doc.Find("[data-menu-toggle]").AttrOr("href", ""))
	assert.Equal(t, "mailto:hello@caffxin.tech", doc.Find(".site-footer__brand a").AttrOr("href", ""))
	assert.Equal(t, "COPYRIGHT", strings.TrimSpace(doc.Find(".site-footer__copyright").Text()))
	assert.Equal(t, "/static/css/site.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
	assert.Equal(t, 3, doc.Find("script[defer]").Length())
	assert.Equal(t, 0, doc.Find("[data-toast]").Length())
}

func TestLayout_MenuOpenAndNotice(t *testing.T) {
	doc := renderLayout(t, viewmodel.LayoutViewModel{
		Title:         "Contact",
		MenuOpen:      true,
		RevealEnabled: true,
		Notice:        &viewmodel.Notice{Kind: "success", Message: "Thanks!", DurationMS: 3000},
	}, "")

	header := doc.Find("header.site-header")
	assert.True(t, header.HasClass("is-menu-open"))
	assert.Equal(t, "true", doc.Find("[data-menu-toggle]").AttrOr("aria-expanded", ""))

	_, ok := doc.Find("body").Attr("data-reveal-enabled")
	assert.True(t, ok)

	toast := doc.Find("[data-toast]")
	assert.True(t, toast.HasClass("toast--success"))
	assert.Equal(t, "3000", toast.AttrOr("data-toast-ms", ""))
	assert.Equal(t, "Thanks!", toast.Text())
}

func TestLayout_NoIndexAndCanonical(t *testing.T) {
	doc := renderLayout(t, viewmodel.LayoutViewModel{
		Title:     "Not found",
		Canonical: "https://caffxin.tech/missing",
		NoIndex:   true,
	}, "")

	assert.Equal(t, "noindex", doc.Find(`meta[name="robots"]`).AttrOr("content", ""))
	assert.Equal(t, "https://caffxin.tech/missing", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))
	assert.Equal(t, 0, doc.Find(`meta[name="description"]`).Length())
}
