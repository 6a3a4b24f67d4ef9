package model

// ProcessStep is one stage of the engagement process. Its number on the
// page is its 1-based position in the registry.
type ProcessStep struct {
	Key         string
	Title       string
	Description string
}

// EntryKey implements Entry.
func (s ProcessStep) EntryKey() string { return s.Key }

// EngagementModel describes a way of working with the studio (fixed-price,
// retainer, staff augmentation).
type EngagementModel struct {
	Key       string
	Name      string
	Scenarios []string
	Audience  []string
	Terms     []string
}

// EntryKey implements Entry.
func (m EngagementModel) EntryKey() string { return m.Key }
