package model

// FAQEntry is a single question and answer. Answer is markdown.
type FAQEntry struct {
	Key      string
	Category string
	Question string
	Answer   string
}

// EntryKey implements Entry.
func (f FAQEntry) EntryKey() string { return f.Key }

// FAQCategory groups FAQ entries sharing a category, in registry order.
type FAQCategory struct {
	Name    string
	Entries []FAQEntry
}

// GroupFAQ groups entries by category. Categories appear in the order of
// their first entry.
func GroupFAQ(entries []FAQEntry) []FAQCategory {
	index := make(map[string]int)
	var groups []FAQCategory
	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, FAQCategory{Name: e.Category})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	return groups
}
