package model

// SectionKind tags the variant of a page section.
type SectionKind string

const (
	SectionHero             SectionKind = "hero"
	SectionAboutTeaser      SectionKind = "about_teaser"
	SectionCapabilities     SectionKind = "capabilities"
	SectionProjectsTeaser   SectionKind = "projects_teaser"
	SectionIntro            SectionKind = "intro"
	SectionAboutPillars     SectionKind = "about_pillars"
	SectionTechStack        SectionKind = "tech_stack"
	SectionHighlights       SectionKind = "highlights"
	SectionServiceCards     SectionKind = "service_cards"
	SectionServiceDetail    SectionKind = "service_detail"
	SectionNotFound         SectionKind = "not_found"
	SectionPortfolioGrid    SectionKind = "portfolio_grid"
	SectionProcessSteps     SectionKind = "process_steps"
	SectionEngagementModels SectionKind = "engagement_models"
	SectionReasons          SectionKind = "reasons"
	SectionFAQAccordion     SectionKind = "faq_accordion"
	SectionContactGuide     SectionKind = "contact_guide"
	SectionContactForm      SectionKind = "contact_form"
	SectionLegalDocument    SectionKind = "legal_document"
)

// Section is one renderable block of a page. Concrete section types carry
// the content they display.
type Section interface {
	Kind() SectionKind
}

// Page is the composed output for a route.
type Page struct {
	Route       Route
	Title       string
	Description string
	Sections    []Section
}

// Kinds returns the section kinds of the page in order.
func (p Page) Kinds() []SectionKind {
	kinds := make([]SectionKind, 0, len(p.Sections))
	for _, s := range p.Sections {
		kinds = append(kinds, s.Kind())
	}
	return kinds
}

type HeroSection struct {
	Headline    string
	Subheadline string
	Intro       string
	ImageRef    string
	Primary     Link
	Secondary   Link
}

func (HeroSection) Kind() SectionKind { return SectionHero }

type AboutTeaserSection struct {
	Title    string
	Heading  string
	Body     string
	ImageRef string
}

func (AboutTeaserSection) Kind() SectionKind { return SectionAboutTeaser }

// FeatureGridSection renders a titled grid of features. Variant is one of
// SectionCapabilities, SectionHighlights or SectionReasons.
type FeatureGridSection struct {
	Variant  SectionKind
	Title    string
	Features []Feature
}

func (s FeatureGridSection) Kind() SectionKind { return s.Variant }

type ProjectsTeaserSection struct {
	Title    string
	Projects []PortfolioProject
	More     Link
}

func (ProjectsTeaserSection) Kind() SectionKind { return SectionProjectsTeaser }

type IntroSection struct {
	Title string
	Lead  string
}

func (IntroSection) Kind() SectionKind { return SectionIntro }

type AboutPillarsSection struct {
	Who        string
	Philosophy string
	Values     []string
	Core       []TeamMember
	Partners   []TeamMember
}

func (AboutPillarsSection) Kind() SectionKind { return SectionAboutPillars }

type TechStackSection struct {
	Groups []TechGroup
}

func (TechStackSection) Kind() SectionKind { return SectionTechStack }

type ServiceCardsSection struct {
	Services []ServiceOffering
}

func (ServiceCardsSection) Kind() SectionKind { return SectionServiceCards }

type ServiceDetailSection struct {
	Service ServiceOffering
	Back    Link
}

func (ServiceDetailSection) Kind() SectionKind { return SectionServiceDetail }

type NotFoundSection struct {
	Title   string
	Message string
	Back    Link
}

func (NotFoundSection) Kind() SectionKind { return SectionNotFound }

type PortfolioGridSection struct {
	Projects []PortfolioProject
}

func (PortfolioGridSection) Kind() SectionKind { return SectionPortfolioGrid }

type ProcessStepsSection struct {
	Steps []ProcessStep
}

func (ProcessStepsSection) Kind() SectionKind { return SectionProcessSteps }

type EngagementModelsSection struct {
	Title  string
	Models []EngagementModel
}

func (EngagementModelsSection) Kind() SectionKind { return SectionEngagementModels }

type FAQAccordionSection struct {
	Categories []FAQCategory
}

func (FAQAccordionSection) Kind() SectionKind { return SectionFAQAccordion }

type ContactGuideSection struct {
	Title string
	Guide string
	Email string
}

func (ContactGuideSection) Kind() SectionKind { return SectionContactGuide }

// ContactFormSection marks where the contact form goes. The form's field
// values and notice are request state and are supplied at render time.
type ContactFormSection struct{}

func (ContactFormSection) Kind() SectionKind { return SectionContactForm }

type LegalDocumentSection struct {
	Document LegalDocument
}

func (LegalDocumentSection) Kind() SectionKind { return SectionLegalDocument }
