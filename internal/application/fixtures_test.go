package application_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

func testCatalog() *model.Catalog {
	return &model.Catalog{
		Company: model.Company{
			Name:        "CaffXin Tech",
			Tagline:     "Digital products, built end to end.",
			Headline:    "We build software",
			Subheadline: "for growing teams",
			AboutTitle:  "Who we are",
			AboutBody:   "A small studio.",
			Values:      []string{"Craft", "Candour"},
			Email:       "hello@example.com",
		},
		Services: []model.ServiceOffering{
			{Key: "web", Name: "Web Development", ShortDescription: "Sites and apps", Features: []string{"SPA", "SSR"}},
			{Key: "mobile", Name: "Mobile Apps", ShortDescription: "iOS and Android"},
		},
		Portfolio: []model.PortfolioProject{
			{Key: "p1", Name: "Project One", TechStack: []string{"Go", "Go", "React"}},
			{Key: "p2", Name: "Project Two", Note: "https://example.com/case"},
			{Key: "p3", Name: "Project Three"},
			{Key: "p4", Name: "Project Four"},
		},
		FAQ: []model.FAQEntry{
			{Key: "cost", Category: "Pricing", Question: "How much?", Answer: "It depends."},
			{Key: "time", Category: "Process", Question: "How long?", Answer: "Weeks."},
			{Key: "pay", Category: "Pricing", Question: "How do I pay?", Answer: "Invoice."},
		},
		Process: []model.ProcessStep{
			{Key: "discover", Title: "Discover"},
			{Key: "build", Title: "Build"},
		},
		Team: []model.TeamMember{
			{Key: "a", Name: "Ada", Core: true},
			{Key: "b", Name: "Bo"},
		},
		Capabilities: []model.Feature{{Key: "design", Title: "Design"}},
		Highlights:   []model.Feature{{Key: "fast", Title: "Fast"}},
		Reasons:      []model.Feature{{Key: "honest", Title: "Honest"}},
		Engagements:  []model.EngagementModel{{Key: "fixed", Name: "Fixed price", Terms: []string{"50% upfront"}}},
		Tech:         []model.TechGroup{{Key: "frontend", Title: "Frontend", Items: []string{"React"}}},
		Legal: []model.LegalDocument{
			{Key: "privacy-policy", Title: "Privacy Policy", Body: "We keep nothing."},
			{Key: "terms-of-service", Title: "Terms of Service", Body: "Be nice."},
		},
		Pages: []model.PageCopy{
			{Key: string(model.PageServices), Title: "Our Services", NavLabel: "Services", Description: "What we do"},
			{Key: string(model.PagePortfolio), Title: "Our Work", NavLabel: "Work"},
			{Key: string(model.PageContact), Title: "Contact Us", NavLabel: "Contact"},
		},
	}
}

func newTestRegistry(t *testing.T) *application.ContentRegistry {
	t.Helper()
	reg, err := application.NewContentRegistry(testCatalog())
	require.NoError(t, err)
	return reg
}
