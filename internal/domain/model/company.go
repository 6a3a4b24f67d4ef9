package model

// Feature is a titled blurb. It backs the capability grid, the service
// highlights and the reasons-to-choose-us list.
type Feature struct {
	Key         string
	Title       string
	Description string
}

// EntryKey implements Entry.
func (f Feature) EntryKey() string { return f.Key }

// Company holds the studio-wide copy used by the chrome and the home,
// about and contact pages. Fields ending in Body or Guide are markdown.
type Company struct {
	Name         string
	LegalName    string
	Tagline      string
	Headline     string
	Subheadline  string
	Intro        string
	HeroImage    string
	AboutTitle   string
	AboutBody    string
	AboutImage   string
	Who          string
	Philosophy   string
	Values       []string
	Email        string
	ContactLead  string
	ContactGuide string
	Copyright    string
	Logo         string
}

// LegalDocument is a long-form policy page. Body is markdown.
type LegalDocument struct {
	Key      string
	Title    string
	Subtitle string
	Updated  string
	Body     string
}

// EntryKey implements Entry.
func (d LegalDocument) EntryKey() string { return d.Key }

// PageCopy is the per-page copy: the heading, lead paragraph, navigation
// label and meta description. Key is a PageKey value.
type PageCopy struct {
	Key         string
	Title       string
	NavLabel    string
	Lead        string
	Description string
}

// EntryKey implements Entry.
func (p PageCopy) EntryKey() string { return p.Key }
