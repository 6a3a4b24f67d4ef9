package driven

import (
	"context"

	"github.com/caffxin/studiosite/internal/domain/model"
)

// ContentSource defines the driven port that supplies the site catalog.
// Load is called once at startup; the result is treated as immutable.
type ContentSource interface {
	Load(ctx context.Context) (*model.Catalog, error)
}

// ContentSink defines the driven port for writing a catalog snapshot.
// Import replaces any previous snapshot atomically.
type ContentSink interface {
	Import(ctx context.Context, catalog *model.Catalog) error
}
