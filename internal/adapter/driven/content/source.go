// Package content loads the site catalog from YAML and markdown files,
// embedded in the binary by default.
package content

import (
	"context"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/caffxin/studiosite/internal/domain/model"
	"github.com/caffxin/studiosite/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.ContentSource = (*Source)(nil)

// Source reads catalog.yaml, validates it against catalog.schema.json and
// adds the markdown legal documents.
type Source struct {
	fsys fs.FS
}

// NewEmbedded returns a Source over the content compiled into the binary.
func NewEmbedded() *Source {
	return &Source{fsys: embedded}
}

// New returns a Source over fsys, which must contain catalog.yaml,
// catalog.schema.json and a legal directory.
func New(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// Load decodes and validates the catalog. Schema violations are returned as
// a *ValidationError.
func (s *Source) Load(ctx context.Context) (*model.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := fs.ReadFile(s.fsys, catalogFile)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	schema, err := fs.ReadFile(s.fsys, schemaFile)
	if err != nil {
		return nil, fmt.Errorf("read catalog schema: %w", err)
	}

	var generic any
	if err := yaml.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if err := validateDocument(schema, generic); err != nil {
		return nil, err
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	cat := doc.toModel()

	cat.Legal, err = loadLegal(s.fsys, legalDir)
	if err != nil {
		return nil, err
	}

	return cat, nil
}
