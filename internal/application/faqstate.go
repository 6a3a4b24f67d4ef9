package application

// Accordion tracks which FAQ entry is expanded. At most one entry is open at
// any time; opening another closes the previous one.
type Accordion struct {
	open string
}

// NewAccordion returns an accordion with the given entry open. An empty key
// means everything is collapsed.
func NewAccordion(openKey string) Accordion {
	return Accordion{open: openKey}
}

// Toggle opens the entry, or closes it if it was already open.
func (a Accordion) Toggle(key string) Accordion {
	if a.open == key {
		return Accordion{}
	}
	return Accordion{open: key}
}

// IsOpen reports whether the entry is expanded.
func (a Accordion) IsOpen(key string) bool {
	return key != "" && a.open == key
}

// OpenKey returns the expanded entry key, or "" when all are collapsed.
func (a Accordion) OpenKey() string {
	return a.open
}
