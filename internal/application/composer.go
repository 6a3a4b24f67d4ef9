package application

import (
	"github.com/caffxin/studiosite/internal/domain/model"
)

// teaserSize is how many portfolio projects the home page previews.
const teaserSize = 3

// PageComposer turns a resolved route into the ordered sections of its page.
// It reads only from the registry, so the same route always yields the same
// page.
type PageComposer struct {
	registry *ContentRegistry
}

// NewPageComposer creates a PageComposer backed by the registry.
func NewPageComposer(registry *ContentRegistry) *PageComposer {
	return &PageComposer{registry: registry}
}

// Compose builds the page for a route. Every PageKey maps to exactly one
// composition; an unknown service key yields a not-found section rather than
// an error.
func (c *PageComposer) Compose(route model.Route) model.Page {
	var sections []model.Section

	switch route.Page {
	case model.PageAbout:
		sections = c.about()
	case model.PageServices:
		sections = c.services()
	case model.PageServiceDetail:
		return c.serviceDetail(route)
	case model.PagePortfolio:
		sections = c.portfolio()
	case model.PageProcess:
		sections = c.process()
	case model.PageFAQ:
		sections = c.faq()
	case model.PageContact:
		sections = c.contact()
	case model.PagePrivacy, model.PageTerms:
		sections = c.legal(route.Page)
	default:
		sections = c.home()
	}

	page := c.pageFor(route)
	page.Sections = sections
	return page
}

// IsNotFound reports whether the composed page stands in for a missing
// resource. Handlers use it to pick the response status.
func IsNotFound(page model.Page) bool {
	if page.Route.Fallback {
		return true
	}
	for _, s := range page.Sections {
		if s.Kind() == model.SectionNotFound {
			return true
		}
	}
	return false
}

func (c *PageComposer) pageFor(route model.Route) model.Page {
	page := route.Page
	if page == "" {
		page = model.PageHome
	}
	pc := c.registry.PageCopy(page)

	title := pc.Title
	company := c.registry.Company()
	if title == "" || page == model.PageHome {
		title = company.Name
	} else {
		title = pc.Title + " | " + company.Name
	}

	description := pc.Description
	if description == "" {
		description = company.Tagline
	}

	return model.Page{Route: route, Title: title, Description: description}
}

func (c *PageComposer) intro(page model.PageKey) model.IntroSection {
	pc := c.registry.PageCopy(page)
	return model.IntroSection{Title: pc.Title, Lead: pc.Lead}
}

func (c *PageComposer) home() []model.Section {
	company := c.registry.Company()
	projects := c.registry.Portfolio()
	if len(projects) > teaserSize {
		projects = projects[:teaserSize]
	}
	portfolio := c.registry.PageCopy(model.PagePortfolio)

	return []model.Section{
		model.HeroSection{
			Headline:    company.Headline,
			Subheadline: company.Subheadline,
			Intro:       company.Intro,
			ImageRef:    company.HeroImage,
			Primary:     model.Link{Label: c.navLabel(model.PageContact, "Contact"), Href: model.PathContact},
			Secondary:   model.Link{Label: c.navLabel(model.PageServices, "Services"), Href: model.PathServices},
		},
		model.AboutTeaserSection{
			Title:    c.navLabel(model.PageAbout, "About"),
			Heading:  company.AboutTitle,
			Body:     company.AboutBody,
			ImageRef: company.AboutImage,
		},
		model.FeatureGridSection{
			Variant:  model.SectionCapabilities,
			Title:    c.registry.PageCopy(model.PageServices).Title,
			Features: c.registry.Capabilities(),
		},
		model.ProjectsTeaserSection{
			Title:    portfolio.Title,
			Projects: projects,
			More:     model.Link{Label: c.navLabel(model.PagePortfolio, "Portfolio"), Href: model.PathPortfolio},
		},
	}
}

func (c *PageComposer) about() []model.Section {
	company := c.registry.Company()
	var core, partners []model.TeamMember
	for _, m := range c.registry.Team() {
		if m.Core {
			core = append(core, m)
		} else {
			partners = append(partners, m)
		}
	}

	return []model.Section{
		c.intro(model.PageAbout),
		model.AboutPillarsSection{
			Who:        company.Who,
			Philosophy: company.Philosophy,
			Values:     company.Values,
			Core:       core,
			Partners:   partners,
		},
		model.TechStackSection{Groups: c.registry.Tech()},
	}
}

func (c *PageComposer) services() []model.Section {
	return []model.Section{
		c.intro(model.PageServices),
		model.FeatureGridSection{
			Variant:  model.SectionHighlights,
			Features: c.registry.Highlights(),
		},
		model.ServiceCardsSection{Services: c.registry.Services()},
	}
}

func (c *PageComposer) serviceDetail(route model.Route) model.Page {
	back := model.Link{Label: c.navLabel(model.PageServices, "Services"), Href: model.PathServices}

	svc, ok := c.registry.Service(route.ServiceKey)
	if !ok {
		page := c.pageFor(route)
		page.Title = "Service not found | " + c.registry.Company().Name
		page.Sections = []model.Section{
			model.NotFoundSection{
				Title:   "Service not found",
				Message: "The service you are looking for does not exist or is no longer offered.",
				Back:    back,
			},
		}
		return page
	}

	page := c.pageFor(route)
	page.Title = svc.Name + " | " + c.registry.Company().Name
	if svc.ShortDescription != "" {
		page.Description = svc.ShortDescription
	}
	page.Sections = []model.Section{model.ServiceDetailSection{Service: svc, Back: back}}
	return page
}

func (c *PageComposer) portfolio() []model.Section {
	return []model.Section{
		c.intro(model.PagePortfolio),
		model.PortfolioGridSection{Projects: c.registry.Portfolio()},
	}
}

func (c *PageComposer) process() []model.Section {
	return []model.Section{
		c.intro(model.PageProcess),
		model.ProcessStepsSection{Steps: c.registry.Process()},
		model.EngagementModelsSection{
			Title:  "Engagement models",
			Models: c.registry.Engagements(),
		},
		model.FeatureGridSection{
			Variant:  model.SectionReasons,
			Title:    "Why work with us",
			Features: c.registry.Reasons(),
		},
	}
}

func (c *PageComposer) faq() []model.Section {
	return []model.Section{
		c.intro(model.PageFAQ),
		model.FAQAccordionSection{Categories: model.GroupFAQ(c.registry.FAQ())},
	}
}

func (c *PageComposer) contact() []model.Section {
	company := c.registry.Company()
	intro := c.intro(model.PageContact)
	if intro.Lead == "" {
		intro.Lead = company.ContactLead
	}
	return []model.Section{
		intro,
		model.ContactGuideSection{
			Title: "How to reach us",
			Guide: company.ContactGuide,
			Email: company.Email,
		},
		model.ContactFormSection{},
	}
}

func (c *PageComposer) legal(page model.PageKey) []model.Section {
	key := "privacy-policy"
	if page == model.PageTerms {
		key = "terms-of-service"
	}
	doc, ok := c.registry.LegalDocument(key)
	if !ok {
		doc = model.LegalDocument{Key: key, Title: c.registry.PageCopy(page).Title}
	}
	return []model.Section{model.LegalDocumentSection{Document: doc}}
}

func (c *PageComposer) navLabel(page model.PageKey, fallback string) string {
	if label := c.registry.PageCopy(page).NavLabel; label != "" {
		return label
	}
	return fallback
}
