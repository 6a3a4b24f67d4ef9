package model

// Kind names one of the content lists held by the registry.
type Kind string

const (
	KindServices     Kind = "services"
	KindPortfolio    Kind = "portfolio"
	KindFAQ          Kind = "faq"
	KindProcess      Kind = "process"
	KindTeam         Kind = "team"
	KindCapabilities Kind = "capabilities"
	KindHighlights   Kind = "highlights"
	KindReasons      Kind = "reasons"
	KindEngagements  Kind = "engagements"
	KindTech         Kind = "tech"
	KindLegal        Kind = "legal"
	KindPages        Kind = "pages"
)

// Kinds lists every content kind in a stable order.
var Kinds = []Kind{
	KindServices,
	KindPortfolio,
	KindFAQ,
	KindProcess,
	KindTeam,
	KindCapabilities,
	KindHighlights,
	KindReasons,
	KindEngagements,
	KindTech,
	KindLegal,
	KindPages,
}

// Entry is any keyed content item.
type Entry interface {
	EntryKey() string
}

// Catalog is the complete site content as loaded from a content source.
// It is read once at startup and never mutated afterwards.
type Catalog struct {
	Company      Company
	Services     []ServiceOffering
	Portfolio    []PortfolioProject
	FAQ          []FAQEntry
	Process      []ProcessStep
	Team         []TeamMember
	Capabilities []Feature
	Highlights   []Feature
	Reasons      []Feature
	Engagements  []EngagementModel
	Tech         []TechGroup
	Legal        []LegalDocument
	Pages        []PageCopy
}

// Entries returns the entries of the given kind as a generic slice, in
// catalog order. Unknown kinds yield nil.
func (c *Catalog) Entries(kind Kind) []Entry {
	switch kind {
	case KindServices:
		return toEntries(c.Services)
	case KindPortfolio:
		return toEntries(c.Portfolio)
	case KindFAQ:
		return toEntries(c.FAQ)
	case KindProcess:
		return toEntries(c.Process)
	case KindTeam:
		return toEntries(c.Team)
	case KindCapabilities:
		return toEntries(c.Capabilities)
	case KindHighlights:
		return toEntries(c.Highlights)
	case KindReasons:
		return toEntries(c.Reasons)
	case KindEngagements:
		return toEntries(c.Engagements)
	case KindTech:
		return toEntries(c.Tech)
	case KindLegal:
		return toEntries(c.Legal)
	case KindPages:
		return toEntries(c.Pages)
	}
	return nil
}

func toEntries[T Entry](items []T) []Entry {
	out := make([]Entry, 0, len(items))
	for _, item := range items {
		out = append(out, item)
	}
	return out
}
