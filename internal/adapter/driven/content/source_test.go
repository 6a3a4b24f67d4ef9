package content

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/domain/model"
)

func TestLoad_Embedded(t *testing.T) {
	cat, err := NewEmbedded().Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "CaffXin Tech", cat.Company.Name)
	assert.Equal(t, "caffxin.tech@gmail.com", cat.Company.Email)
	assert.Len(t, cat.Services, 6)
	assert.Len(t, cat.Portfolio, 6)
	assert.Len(t, cat.Process, 6)
	assert.Len(t, cat.Engagements, 3)
	assert.Len(t, cat.Reasons, 6)
	assert.Len(t, cat.Tech, 3)
	assert.NotEmpty(t, cat.FAQ)

	assert.Equal(t, "web", cat.Services[0].Key)
	assert.Equal(t, []string{"Responsive design", "SEO optimization", "Custom brand visuals"}, cat.Services[0].Features)

	var core int
	for _, m := range cat.Team {
		if m.Core {
			core++
		}
	}
	assert.Equal(t, 2, core)

	var links []string
	for _, p := range cat.Portfolio {
		if p.HasCaseLink() {
			links = append(links, p.Key)
		}
	}
	assert.Equal(t, []string{"travel-blog"}, links)

	require.Len(t, cat.Legal, 2)
	assert.Equal(t, "privacy-policy", cat.Legal[0].Key)
	assert.Equal(t, "Privacy Policy", cat.Legal[0].Title)
	assert.Equal(t, "2026-01-01", cat.Legal[0].Updated)
	assert.NotContains(t, cat.Legal[0].Body, "---")
	assert.Equal(t, "terms-of-service", cat.Legal[1].Key)
}

func TestLoad_EmbeddedPagesCoverNavigation(t *testing.T) {
	cat, err := NewEmbedded().Load(context.Background())
	require.NoError(t, err)

	labels := make(map[string]string)
	for _, p := range cat.Pages {
		labels[p.Key] = p.NavLabel
	}
	for _, page := range []model.PageKey{model.PageServices, model.PagePortfolio, model.PageProcess, model.PageFAQ, model.PageContact} {
		assert.NotEmpty(t, labels[string(page)], "page %s needs a nav label", page)
	}
}

func testFS(t *testing.T, catalog string) fstest.MapFS {
	t.Helper()
	schema, err := embedded.ReadFile(schemaFile)
	require.NoError(t, err)
	return fstest.MapFS{
		catalogFile:              {Data: []byte(catalog)},
		schemaFile:               {Data: schema},
		"legal/cookie_policy.md": {Data: []byte("---\nsubtitle: Cookies\n---\nWe use one cookie.\n")},
	}
}

const minimalCatalog = `
company:
  name: Studio
  email: hi@example.com
services:
  - key: web
    name: Web
    short_description: Sites
portfolio: []
faq: []
process: []
`

func TestLoad_Minimal(t *testing.T) {
	cat, err := New(testFS(t, minimalCatalog)).Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Studio", cat.Company.Name)
	require.Len(t, cat.Services, 1)
	assert.Empty(t, cat.Portfolio)

	require.Len(t, cat.Legal, 1)
	assert.Equal(t, "cookie_policy", cat.Legal[0].Key)
	assert.Equal(t, "Cookie Policy", cat.Legal[0].Title)
	assert.Equal(t, "We use one cookie.", cat.Legal[0].Body)
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name    string
		catalog string
		field   string
	}{
		{
			name:    "missing company",
			catalog: "services: []\nportfolio: []\nfaq: []\nprocess: []\n",
			field:   "(root)",
		},
		{
			name: "bad service key",
			catalog: `
company: {name: Studio, email: hi@example.com}
services:
  - {key: "Web Dev", name: Web, short_description: Sites}
portfolio: []
faq: []
process: []
`,
			field: "services.0.key",
		},
		{
			name: "unknown field",
			catalog: `
company: {name: Studio, email: hi@example.com, fax: "123"}
services:
  - {key: web, name: Web, short_description: Sites}
portfolio: []
faq: []
process: []
`,
			field: "company",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(testFS(t, tt.catalog)).Load(context.Background())
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Errors)
			assert.Equal(t, tt.field, ve.Errors[0].Field)
		})
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	_, err := New(testFS(t, "company: [unclosed")).Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode catalog")
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEmbedded().Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTitleFromName(t *testing.T) {
	assert.Equal(t, "Terms Of Service", titleFromName("terms-of-service"))
	assert.Equal(t, "Cookie Policy", titleFromName("cookie_policy"))
}
