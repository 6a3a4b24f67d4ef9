// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from domain model types: every URL
// is already prefixed with the base path and every markdown field is
// sanitized HTML.
package viewmodel

import "html/template"

// Reveal carries the entrance-transition attributes of one block. When
// Enabled is false the block renders without data-reveal attributes.
type Reveal struct {
	Enabled bool
	DelayMS int64
}

// Link is a rendered anchor.
type Link struct {
	Label    string
	Href     string
	Active   bool
	External bool
}

// Notice is a transient toast shown after a contact submission.
type Notice struct {
	Kind       string
	Message    string
	DurationMS int64
}

// LayoutViewModel holds the chrome around every page.
type LayoutViewModel struct {
	Title       string
	Description string
	Canonical   string
	NoIndex     bool
	Lang        string

	BaseHref  string
	StaticURL string
	HomeHref  string

	SiteName  string
	Logo      string
	Nav       []Link
	Footer    []Link
	MenuOpen  bool
	MenuHref  string
	Email     string
	Copyright string

	RevealEnabled bool
	Notice        *Notice
}

// Section is one renderable page block. Kind names the variant for logs
// and errors; components dispatch on the concrete type.
type Section interface {
	Kind() string
}

// PageViewModel is a composed page ready for rendering.
type PageViewModel struct {
	Layout   LayoutViewModel
	Sections []Section
}

type FeatureItem struct {
	Title       string
	Description string
	Reveal      Reveal
}

type HeroSection struct {
	Headline    string
	Subheadline string
	Intro       string
	Image       string
	Primary     Link
	Secondary   Link
	Reveal      Reveal
	TextReveals []Reveal
}

func (HeroSection) Kind() string { return "hero" }

type AboutTeaserSection struct {
	Title   string
	Heading string
	Body    template.HTML
	Image   string
	More    Link
	Reveal  Reveal
}

func (AboutTeaserSection) Kind() string { return "about_teaser" }

// FeatureGridSection draws capabilities, service highlights and reasons.
// Variant is the section kind and becomes a CSS modifier.
type FeatureGridSection struct {
	Variant  string
	Title    string
	Features []FeatureItem
	Reveal   Reveal
}

func (FeatureGridSection) Kind() string { return "feature_grid" }

type ProjectCard struct {
	Key            string
	Name           string
	Category       string
	Industry       string
	ProblemsSolved []string
	TechStack      []string
	Highlights     []string
	Image          string
	CaseLink       *Link
	Note           string
	Reveal         Reveal
}

type ProjectsTeaserSection struct {
	Title    string
	Projects []ProjectCard
	More     Link
	Reveal   Reveal
}

func (ProjectsTeaserSection) Kind() string { return "projects_teaser" }

type IntroSection struct {
	Title  string
	Lead   string
	Reveal Reveal
}

func (IntroSection) Kind() string { return "intro" }

type Member struct {
	Name   string
	Title  string
	Skills string
	Reveal Reveal
}

type AboutPillarsSection struct {
	Who        string
	Philosophy string
	Values     []string
	Core       []Member
	Partners   []Member
	Reveal     Reveal
}

func (AboutPillarsSection) Kind() string { return "about_pillars" }

type TechGroup struct {
	Title  string
	Items  []string
	Reveal Reveal
}

type TechStackSection struct {
	Groups []TechGroup
	Reveal Reveal
}

func (TechStackSection) Kind() string { return "tech_stack" }

type ServiceCard struct {
	Key         string
	Name        string
	Description string
	Features    []string
	Href        string
	Reveal      Reveal
}

type ServiceCardsSection struct {
	Services []ServiceCard
	Reveal   Reveal
}

func (ServiceCardsSection) Kind() string { return "service_cards" }

type ServiceDetailSection struct {
	Name        string
	Description string
	Detail      template.HTML
	Features    []string
	Contact     Link
	Back        Link
	Reveal      Reveal
}

func (ServiceDetailSection) Kind() string { return "service_detail" }

type NotFoundSection struct {
	Title   string
	Message string
	Back    Link
	Reveal  Reveal
}

func (NotFoundSection) Kind() string { return "not_found" }

type PortfolioGridSection struct {
	Projects []ProjectCard
	Reveal   Reveal
}

func (PortfolioGridSection) Kind() string { return "portfolio_grid" }

type ProcessStep struct {
	Number      int
	Title       string
	Description string
	Reveal      Reveal
}

type ProcessStepsSection struct {
	Steps  []ProcessStep
	Reveal Reveal
}

func (ProcessStepsSection) Kind() string { return "process_steps" }

type EngagementModel struct {
	Name      string
	Scenarios []string
	Audience  []string
	Terms     []string
	Reveal    Reveal
}

type EngagementModelsSection struct {
	Title  string
	Models []EngagementModel
	Reveal Reveal
}

func (EngagementModelsSection) Kind() string { return "engagement_models" }

type FAQItem struct {
	Key      string
	Question string
	Answer   template.HTML
	Open     bool
	// ToggleHref opens this entry, or closes it when it is already open.
	ToggleHref string
	Reveal     Reveal
}

type FAQCategory struct {
	Name   string
	Items  []FAQItem
	Reveal Reveal
}

type FAQAccordionSection struct {
	Categories []FAQCategory
	Reveal     Reveal
}

func (FAQAccordionSection) Kind() string { return "faq_accordion" }

type ContactGuideSection struct {
	Title  string
	Guide  template.HTML
	Email  string
	Reveal Reveal
}

func (ContactGuideSection) Kind() string { return "contact_guide" }

// ContactFormSection holds the form's field values and errors for one
// request. Errors is keyed by field name.
type ContactFormSection struct {
	Action     string
	CSRFToken  string
	Name       string
	Email      string
	Message    string
	Errors     map[string]string
	NoticeMS   int64
	Submitting bool
	// Relay is set on exported pages, where the browser posts straight to
	// the email relay because there is no server to handle the form.
	Relay  *ClientRelay
	Reveal Reveal
}

// ClientRelay is the public part of the email relay configuration.
type ClientRelay struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

func (ContactFormSection) Kind() string { return "contact_form" }

type LegalDocumentSection struct {
	Title    string
	Subtitle string
	Updated  string
	Body     template.HTML
	Reveal   Reveal
}

func (LegalDocumentSection) Kind() string { return "legal_document" }
