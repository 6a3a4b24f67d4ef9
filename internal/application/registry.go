package application

import (
	"fmt"
	"slices"

	"github.com/caffxin/studiosite/internal/domain/model"
)

// ContentRegistry holds the site catalog in memory and answers lookups by
// kind and key. It copies the catalog on construction and hands out copies,
// so nothing outside the registry can change what it serves.
type ContentRegistry struct {
	catalog model.Catalog
	index   map[model.Kind]map[string]int
}

// NewContentRegistry builds a registry from a loaded catalog. Every entry
// must have a non-empty key that is unique within its kind.
func NewContentRegistry(catalog *model.Catalog) (*ContentRegistry, error) {
	if catalog == nil {
		return nil, fmt.Errorf("build content registry: nil catalog")
	}

	r := &ContentRegistry{
		catalog: cloneCatalog(*catalog),
		index:   make(map[model.Kind]map[string]int, len(model.Kinds)),
	}

	for _, kind := range model.Kinds {
		entries := r.catalog.Entries(kind)
		keys := make(map[string]int, len(entries))
		for i, e := range entries {
			key := e.EntryKey()
			if key == "" {
				return nil, fmt.Errorf("build content registry: %s entry %d has an empty key", kind, i)
			}
			if prev, dup := keys[key]; dup {
				return nil, fmt.Errorf("build content registry: %s key %q used by entries %d and %d", kind, key, prev, i)
			}
			keys[key] = i
		}
		r.index[kind] = keys
	}

	return r, nil
}

// GetAll returns every entry of the kind in registry order.
func (r *ContentRegistry) GetAll(kind model.Kind) []model.Entry {
	return cloneCatalogEntries(r.catalog, kind)
}

// GetByKey returns the entry with the given key. A missing key is a normal
// outcome reported through the boolean, not an error.
func (r *ContentRegistry) GetByKey(kind model.Kind, key string) (model.Entry, bool) {
	i, ok := r.index[kind][key]
	if !ok {
		return nil, false
	}
	return cloneCatalogEntries(r.catalog, kind)[i], true
}

// Counts returns the number of entries per kind.
func (r *ContentRegistry) Counts() map[model.Kind]int {
	counts := make(map[model.Kind]int, len(r.index))
	for kind, keys := range r.index {
		counts[kind] = len(keys)
	}
	return counts
}

// Company returns the studio-wide copy.
func (r *ContentRegistry) Company() model.Company {
	return cloneCompany(r.catalog.Company)
}

// Services returns all service offerings in registry order.
func (r *ContentRegistry) Services() []model.ServiceOffering {
	return cloneEach(r.catalog.Services, cloneService)
}

// Service returns the service with the given key.
func (r *ContentRegistry) Service(key string) (model.ServiceOffering, bool) {
	i, ok := r.index[model.KindServices][key]
	if !ok {
		return model.ServiceOffering{}, false
	}
	return cloneService(r.catalog.Services[i]), true
}

// Portfolio returns all portfolio projects in registry order.
func (r *ContentRegistry) Portfolio() []model.PortfolioProject {
	return cloneEach(r.catalog.Portfolio, cloneProject)
}

// FAQ returns all FAQ entries in registry order.
func (r *ContentRegistry) FAQ() []model.FAQEntry {
	return slices.Clone(r.catalog.FAQ)
}

// Process returns the engagement process steps in order.
func (r *ContentRegistry) Process() []model.ProcessStep {
	return slices.Clone(r.catalog.Process)
}

// Team returns the team roster in registry order.
func (r *ContentRegistry) Team() []model.TeamMember {
	return slices.Clone(r.catalog.Team)
}

func (r *ContentRegistry) Capabilities() []model.Feature {
	return slices.Clone(r.catalog.Capabilities)
}

func (r *ContentRegistry) Highlights() []model.Feature {
	return slices.Clone(r.catalog.Highlights)
}

func (r *ContentRegistry) Reasons() []model.Feature {
	return slices.Clone(r.catalog.Reasons)
}

func (r *ContentRegistry) Engagements() []model.EngagementModel {
	return cloneEach(r.catalog.Engagements, cloneEngagement)
}

func (r *ContentRegistry) Tech() []model.TechGroup {
	return cloneEach(r.catalog.Tech, cloneTechGroup)
}

// LegalDocument returns the legal document with the given key.
func (r *ContentRegistry) LegalDocument(key string) (model.LegalDocument, bool) {
	i, ok := r.index[model.KindLegal][key]
	if !ok {
		return model.LegalDocument{}, false
	}
	return r.catalog.Legal[i], true
}

// PageCopy returns the copy for a page. Pages without copy get an empty
// value so composition never fails on missing text.
func (r *ContentRegistry) PageCopy(page model.PageKey) model.PageCopy {
	i, ok := r.index[model.KindPages][string(page)]
	if !ok {
		return model.PageCopy{Key: string(page)}
	}
	return r.catalog.Pages[i]
}

func cloneCatalogEntries(c model.Catalog, kind model.Kind) []model.Entry {
	switch kind {
	case model.KindServices:
		c.Services = cloneEach(c.Services, cloneService)
	case model.KindPortfolio:
		c.Portfolio = cloneEach(c.Portfolio, cloneProject)
	case model.KindEngagements:
		c.Engagements = cloneEach(c.Engagements, cloneEngagement)
	case model.KindTech:
		c.Tech = cloneEach(c.Tech, cloneTechGroup)
	}
	return c.Entries(kind)
}

func cloneCatalog(c model.Catalog) model.Catalog {
	return model.Catalog{
		Company:      cloneCompany(c.Company),
		Services:     cloneEach(c.Services, cloneService),
		Portfolio:    cloneEach(c.Portfolio, cloneProject),
		FAQ:          slices.Clone(c.FAQ),
		Process:      slices.Clone(c.Process),
		Team:         slices.Clone(c.Team),
		Capabilities: slices.Clone(c.Capabilities),
		Highlights:   slices.Clone(c.Highlights),
		Reasons:      slices.Clone(c.Reasons),
		Engagements:  cloneEach(c.Engagements, cloneEngagement),
		Tech:         cloneEach(c.Tech, cloneTechGroup),
		Legal:        slices.Clone(c.Legal),
		Pages:        slices.Clone(c.Pages),
	}
}

func cloneEach[T any](items []T, clone func(T) T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}

func cloneCompany(c model.Company) model.Company {
	c.Values = slices.Clone(c.Values)
	return c
}

func cloneService(s model.ServiceOffering) model.ServiceOffering {
	s.Features = slices.Clone(s.Features)
	return s
}

func cloneProject(p model.PortfolioProject) model.PortfolioProject {
	p.ProblemsSolved = slices.Clone(p.ProblemsSolved)
	p.TechStack = model.NormalizeTechStack(p.TechStack)
	p.Highlights = slices.Clone(p.Highlights)
	return p
}

func cloneEngagement(m model.EngagementModel) model.EngagementModel {
	m.Scenarios = slices.Clone(m.Scenarios)
	m.Audience = slices.Clone(m.Audience)
	m.Terms = slices.Clone(m.Terms)
	return m
}

func cloneTechGroup(g model.TechGroup) model.TechGroup {
	g.Items = slices.Clone(g.Items)
	return g
}
