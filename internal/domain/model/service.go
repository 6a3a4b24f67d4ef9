package model

// ServiceOffering is one service the studio sells. Key is the URL slug used
// by /services/{key}.
type ServiceOffering struct {
	Key              string
	Name             string
	ShortDescription string
	Detail           string
	Features         []string
}

// EntryKey implements Entry.
func (s ServiceOffering) EntryKey() string { return s.Key }
