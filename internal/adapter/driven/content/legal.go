package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/caffxin/studiosite/internal/domain/model"
)

type legalMeta struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Updated  string `yaml:"updated"`
}

// loadLegal reads every markdown file in dir. The file name without its
// extension is the document key; a missing title is derived from it.
func loadLegal(fsys fs.FS, dir string) ([]model.LegalDocument, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read legal documents: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var docs []model.LegalDocument
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}

		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read legal document %s: %w", e.Name(), err)
		}

		doc, err := parseLegal(e.Name(), raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

func parseLegal(name string, raw []byte) (model.LegalDocument, error) {
	var meta legalMeta
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return model.LegalDocument{}, fmt.Errorf("parse front matter of %s: %w", name, err)
	}

	key := strings.TrimSuffix(name, path.Ext(name))
	if meta.Title == "" {
		meta.Title = titleFromName(key)
	}

	return model.LegalDocument{
		Key:      key,
		Title:    meta.Title,
		Subtitle: meta.Subtitle,
		Updated:  meta.Updated,
		Body:     strings.TrimSpace(string(body)),
	}, nil
}

func titleFromName(key string) string {
	words := strings.ReplaceAll(strings.ReplaceAll(key, "-", " "), "_", " ")
	return cases.Title(language.English).String(words)
}
