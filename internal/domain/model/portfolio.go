package model

import "strings"

// PortfolioProject is a case study shown on the portfolio page.
type PortfolioProject struct {
	Key            string
	Name           string
	Category       string
	Industry       string
	ProblemsSolved []string
	TechStack      []string
	Highlights     []string
	ImageRef       string
	Note           string
}

// EntryKey implements Entry.
func (p PortfolioProject) EntryKey() string { return p.Key }

// HasCaseLink reports whether Note is a URL to a public case rather than
// free text.
func (p PortfolioProject) HasCaseLink() bool {
	return strings.HasPrefix(p.Note, "http://") || strings.HasPrefix(p.Note, "https://")
}

// NormalizeTechStack treats the tech stack as a set: blank and repeated
// entries are dropped, first-appearance order is kept.
func NormalizeTechStack(stack []string) []string {
	seen := make(map[string]struct{}, len(stack))
	out := make([]string, 0, len(stack))
	for _, tech := range stack {
		tech = strings.TrimSpace(tech)
		if tech == "" {
			continue
		}
		if _, dup := seen[tech]; dup {
			continue
		}
		seen[tech] = struct{}{}
		out = append(out, tech)
	}
	return out
}
