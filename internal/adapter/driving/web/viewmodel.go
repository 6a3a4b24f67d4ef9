package web

import (
	"net/url"
	"strings"
	"time"

	"github.com/caffxin/studiosite/internal/adapter/driving/web/viewmodel"
	"github.com/caffxin/studiosite/internal/application"
	"github.com/caffxin/studiosite/internal/domain/model"
)

// mapper converts composed sections into view models for one render.
type mapper struct {
	opts  SiteOptions
	route model.Route
	state RequestState
}

func (m mapper) sections(in []model.Section) []viewmodel.Section {
	out := make([]viewmodel.Section, 0, len(in))
	for _, s := range in {
		if v := m.section(s); v != nil {
			out = append(out, v)
		}
	}
	return out
}

//nolint:gocyclo // one case per section variant
func (m mapper) section(s model.Section) viewmodel.Section {
	switch s := s.(type) {
	case model.HeroSection:
		return viewmodel.HeroSection{
			Headline:    s.Headline,
			Subheadline: s.Subheadline,
			Intro:       s.Intro,
			Image:       m.url(s.ImageRef),
			Primary:     m.link(s.Primary),
			Secondary:   m.link(s.Secondary),
			Reveal:      m.reveal(0),
			TextReveals: m.cascade(4),
		}
	case model.AboutTeaserSection:
		return viewmodel.AboutTeaserSection{
			Title:   s.Title,
			Heading: s.Heading,
			Body:    markdownHTML(s.Body),
			Image:   m.url(s.ImageRef),
			More:    viewmodel.Link{Label: "More about us", Href: m.url(model.PathAbout)},
			Reveal:  m.reveal(0),
		}
	case model.FeatureGridSection:
		reveals := m.cascade(len(s.Features))
		features := make([]viewmodel.FeatureItem, len(s.Features))
		for i, f := range s.Features {
			features[i] = viewmodel.FeatureItem{Title: f.Title, Description: f.Description, Reveal: reveals[i]}
		}
		return viewmodel.FeatureGridSection{
			Variant:  string(s.Variant),
			Title:    s.Title,
			Features: features,
			Reveal:   m.reveal(0),
		}
	case model.ProjectsTeaserSection:
		return viewmodel.ProjectsTeaserSection{
			Title:    s.Title,
			Projects: m.projects(s.Projects),
			More:     m.link(s.More),
			Reveal:   m.reveal(0),
		}
	case model.IntroSection:
		return viewmodel.IntroSection{Title: s.Title, Lead: s.Lead, Reveal: m.reveal(0)}
	case model.AboutPillarsSection:
		return viewmodel.AboutPillarsSection{
			Who:        s.Who,
			Philosophy: s.Philosophy,
			Values:     s.Values,
			Core:       m.members(s.Core),
			Partners:   m.members(s.Partners),
			Reveal:     m.reveal(0),
		}
	case model.TechStackSection:
		reveals := m.cascade(len(s.Groups))
		groups := make([]viewmodel.TechGroup, len(s.Groups))
		for i, g := range s.Groups {
			groups[i] = viewmodel.TechGroup{Title: g.Title, Items: g.Items, Reveal: reveals[i]}
		}
		return viewmodel.TechStackSection{Groups: groups, Reveal: m.reveal(0)}
	case model.ServiceCardsSection:
		reveals := m.cascade(len(s.Services))
		cards := make([]viewmodel.ServiceCard, len(s.Services))
		for i, svc := range s.Services {
			cards[i] = viewmodel.ServiceCard{
				Key:         svc.Key,
				Name:        svc.Name,
				Description: svc.ShortDescription,
				Features:    svc.Features,
				Href:        m.url(model.ServiceDetailPath(svc.Key)),
				Reveal:      reveals[i],
			}
		}
		return viewmodel.ServiceCardsSection{Services: cards, Reveal: m.reveal(0)}
	case model.ServiceDetailSection:
		return viewmodel.ServiceDetailSection{
			Name:        s.Service.Name,
			Description: s.Service.ShortDescription,
			Detail:      markdownHTML(s.Service.Detail),
			Features:    s.Service.Features,
			Contact:     viewmodel.Link{Label: "Start a project", Href: m.url(model.PathContact)},
			Back:        m.link(s.Back),
			Reveal:      m.reveal(0),
		}
	case model.NotFoundSection:
		return viewmodel.NotFoundSection{
			Title:   s.Title,
			Message: s.Message,
			Back:    m.link(s.Back),
			Reveal:  m.reveal(0),
		}
	case model.PortfolioGridSection:
		return viewmodel.PortfolioGridSection{Projects: m.projects(s.Projects), Reveal: m.reveal(0)}
	case model.ProcessStepsSection:
		reveals := m.cascade(len(s.Steps))
		steps := make([]viewmodel.ProcessStep, len(s.Steps))
		for i, step := range s.Steps {
			steps[i] = viewmodel.ProcessStep{Number: i + 1, Title: step.Title, Description: step.Description, Reveal: reveals[i]}
		}
		return viewmodel.ProcessStepsSection{Steps: steps, Reveal: m.reveal(0)}
	case model.EngagementModelsSection:
		reveals := m.cascade(len(s.Models))
		models := make([]viewmodel.EngagementModel, len(s.Models))
		for i, em := range s.Models {
			models[i] = viewmodel.EngagementModel{
				Name:      em.Name,
				Scenarios: em.Scenarios,
				Audience:  em.Audience,
				Terms:     em.Terms,
				Reveal:    reveals[i],
			}
		}
		return viewmodel.EngagementModelsSection{Title: s.Title, Models: models, Reveal: m.reveal(0)}
	case model.FAQAccordionSection:
		return m.faq(s)
	case model.ContactGuideSection:
		return viewmodel.ContactGuideSection{
			Title:  s.Title,
			Guide:  markdownHTML(s.Guide),
			Email:  s.Email,
			Reveal: m.reveal(0),
		}
	case model.ContactFormSection:
		return m.contactForm()
	case model.LegalDocumentSection:
		return viewmodel.LegalDocumentSection{
			Title:    s.Document.Title,
			Subtitle: s.Document.Subtitle,
			Updated:  s.Document.Updated,
			Body:     markdownHTML(s.Document.Body),
			Reveal:   m.reveal(0),
		}
	}
	return nil
}

func (m mapper) faq(s model.FAQAccordionSection) viewmodel.FAQAccordionSection {
	self := m.url(m.route.Path)
	catReveals := m.cascade(len(s.Categories))
	out := viewmodel.FAQAccordionSection{Reveal: m.reveal(0)}
	for i, cat := range s.Categories {
		vc := viewmodel.FAQCategory{Name: cat.Name, Reveal: catReveals[i]}
		for _, e := range cat.Entries {
			anchor := "#faq-" + e.Key
			item := viewmodel.FAQItem{
				Key:        e.Key,
				Question:   e.Question,
				Answer:     markdownHTML(e.Answer),
				ToggleHref: anchor,
			}
			if !m.opts.Static {
				item.Open = m.state.FAQ.IsOpen(e.Key)
				item.ToggleHref = self + openQuery(m.state.FAQ.Toggle(e.Key).OpenKey()) + anchor
			}
			vc.Items = append(vc.Items, item)
		}
		out.Categories = append(out.Categories, vc)
	}
	return out
}

// openQuery is the query string that leaves key expanded, or none when
// every entry is collapsed.
func openQuery(key string) string {
	if key == "" {
		return ""
	}
	return "?open=" + url.QueryEscape(key)
}

func (m mapper) contactForm() viewmodel.ContactFormSection {
	f := viewmodel.ContactFormSection{
		Action:     m.url(model.PathContact),
		CSRFToken:  m.state.CSRFToken,
		Name:       m.state.Form.Name,
		Email:      m.state.Form.Email,
		Message:    m.state.Form.Message,
		NoticeMS:   m.opts.NoticeDuration.Milliseconds(),
		Submitting: m.state.Submitting,
		Reveal:     m.reveal(0),
	}
	if len(m.state.Errors) > 0 {
		f.Errors = make(map[string]string, len(m.state.Errors))
		for _, fe := range m.state.Errors {
			f.Errors[fe.Field] = fe.Message
		}
	}
	if m.opts.Static && m.opts.ClientRelay != nil {
		relay := *m.opts.ClientRelay
		f.Relay = &relay
	}
	return f
}

func (m mapper) projects(in []model.PortfolioProject) []viewmodel.ProjectCard {
	reveals := m.cascade(len(in))
	cards := make([]viewmodel.ProjectCard, len(in))
	for i, p := range in {
		card := viewmodel.ProjectCard{
			Key:            p.Key,
			Name:           p.Name,
			Category:       p.Category,
			Industry:       p.Industry,
			ProblemsSolved: p.ProblemsSolved,
			TechStack:      p.TechStack,
			Highlights:     p.Highlights,
			Image:          m.url(p.ImageRef),
			Reveal:         reveals[i],
		}
		if p.HasCaseLink() {
			card.CaseLink = &viewmodel.Link{Label: "View case", Href: p.Note, External: true}
		} else {
			card.Note = p.Note
		}
		cards[i] = card
	}
	return cards
}

func (m mapper) members(in []model.TeamMember) []viewmodel.Member {
	reveals := m.cascade(len(in))
	out := make([]viewmodel.Member, len(in))
	for i, p := range in {
		out[i] = viewmodel.Member{Name: p.Name, Title: p.Title, Skills: p.Skills, Reveal: reveals[i]}
	}
	return out
}

func (m mapper) url(ref string) string {
	if ref == "" {
		return ""
	}
	return m.opts.BasePath.URL(ref)
}

func (m mapper) link(l model.Link) viewmodel.Link {
	return viewmodel.Link{
		Label:    l.Label,
		Href:     m.url(l.Href),
		External: strings.Contains(l.Href, "://"),
	}
}

func (m mapper) reveal(delay time.Duration) viewmodel.Reveal {
	return viewmodel.Reveal{Enabled: m.opts.Reveal, DelayMS: delay.Milliseconds()}
}

// cascade staggers n sibling blocks inside a section that itself reveals
// without delay.
func (m mapper) cascade(n int) []viewmodel.Reveal {
	delays := application.Cascade(0, n)
	out := make([]viewmodel.Reveal, n)
	for i := range out {
		if i < len(delays) {
			out[i] = m.reveal(delays[i])
		}
	}
	return out
}
