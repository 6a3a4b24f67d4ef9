package model

// TeamMember is a person shown on the about page. Core members are
// founders; everyone else is listed as a partner.
type TeamMember struct {
	Key    string
	Name   string
	Title  string
	Skills string
	Core   bool
}

// EntryKey implements Entry.
func (m TeamMember) EntryKey() string { return m.Key }

// TechGroup is a titled list of technologies (frontend, backend, cloud).
type TechGroup struct {
	Key   string
	Title string
	Items []string
}

// EntryKey implements Entry.
func (g TechGroup) EntryKey() string { return g.Key }
