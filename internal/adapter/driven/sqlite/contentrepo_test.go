package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/domain/model"
)

func sampleCatalog() *model.Catalog {
	return &model.Catalog{
		Company: model.Company{
			Name:   "CaffXin Tech",
			Email:  "hello@example.com",
			Values: []string{"Integrity", "Quality"},
		},
		Pages: []model.PageCopy{
			{Key: "services", Title: "Services", NavLabel: "Services"},
			{Key: "faq", Title: "FAQ"},
		},
		Services: []model.ServiceOffering{
			{Key: "web", Name: "Web", ShortDescription: "Sites", Features: []string{"SEO", "RWD"}},
			{Key: "cloud", Name: "Cloud"},
		},
		Portfolio: []model.PortfolioProject{
			{Key: "b", Name: "Second by name, first by order", TechStack: []string{"Go", "SQLite"}, Note: "https://example.com"},
			{Key: "a", Name: "First by name", ProblemsSolved: []string{"slow reports"}},
		},
		FAQ: []model.FAQEntry{
			{Key: "q1", Category: "Pricing", Question: "Cost?", Answer: "Depends."},
		},
		Process:      []model.ProcessStep{{Key: "one", Title: "One"}, {Key: "two", Title: "Two"}},
		Team:         []model.TeamMember{{Key: "eva", Name: "Eva", Core: true}, {Key: "tina", Name: "Tina"}},
		Capabilities: []model.Feature{{Key: "design", Title: "Design"}},
		Highlights:   []model.Feature{{Key: "fast", Title: "Fast"}, {Key: "cheap", Title: "Cheap"}},
		Reasons:      []model.Feature{{Key: "design", Title: "Same key, other kind"}},
		Engagements:  []model.EngagementModel{{Key: "fixed", Name: "Fixed", Terms: []string{"deposit"}}},
		Tech:         []model.TechGroup{{Key: "backend", Title: "Backend", Items: []string{"Go"}}},
		Legal:        []model.LegalDocument{{Key: "privacy-policy", Title: "Privacy", Body: "## Scope"}},
	}
}

func TestContentRepo_RoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)
	ctx := context.Background()

	want := sampleCatalog()
	require.NoError(t, repo.Import(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestContentRepo_ImportReplaces(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Import(ctx, sampleCatalog()))

	smaller := sampleCatalog()
	smaller.Services = smaller.Services[:1]
	smaller.Portfolio = nil
	require.NoError(t, repo.Import(ctx, smaller))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Services, 1)
	assert.Empty(t, got.Portfolio)
}

func TestContentRepo_ImportIsAtomic(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Import(ctx, sampleCatalog()))

	broken := sampleCatalog()
	broken.Services = append(broken.Services, model.ServiceOffering{Key: "web", Name: "duplicate"})
	err := repo.Import(ctx, broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert service web")

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, got.Services, 2, "previous snapshot must survive a failed import")
}

func TestContentRepo_LoadEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, ErrEmptySnapshot)
}

func TestContentRepo_ImportedAt(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContentRepo(db)
	ctx := context.Background()

	at, err := repo.ImportedAt(ctx)
	require.NoError(t, err)
	assert.True(t, at.IsZero())

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }
	require.NoError(t, repo.Import(ctx, sampleCatalog()))

	at, err = repo.ImportedAt(ctx)
	require.NoError(t, err)
	assert.True(t, fixed.Equal(at), "got %v", at)
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	version, err := RunMigrations(db.Writer)
	require.NoError(t, err)
	assert.Equal(t, uint(2), version)
}
