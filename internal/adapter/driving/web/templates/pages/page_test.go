package pages

import (
	"bytes"
	"context"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/adapter/driving/web/viewmodel"
)

func TestPage_SectionsInOrder(t *testing.T) {
	var buf bytes.Buffer
	err := Page([]viewmodel.Section{
		viewmodel.IntroSection{Title: "About us", Lead: "Lead"},
		viewmodel.TechStackSection{Groups: []viewmodel.TechGroup{{Title: "Backend", Items: []string{"Go"}}}},
		viewmodel.NotFoundSection{Title: "Gone", Back: viewmodel.Link{Label: "Back", Href: "/services"}},
	}).Render(context.Background(), &buf)
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	var classes []string
	doc.Find("section").Each(func(_ int, s *goquery.Selection) {
		classes = append(classes, s.AttrOr("class", ""))
	})
	assert.Equal(t, []string{"intro", "tech-stack", "not-found"}, classes)
}

func TestPage_EmptySections(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Page(nil).Render(context.Background(), &buf))
	assert.Empty(t, buf.String())
}

type unknownSection struct{}

func (unknownSection) Kind() string { return "mystery" }

func TestPage_UnsupportedSection(t *testing.T) {
	var buf bytes.Buffer
	err := Page([]viewmodel.Section{unknownSection{}}).Render(context.Background(), &buf)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mystery")
}
