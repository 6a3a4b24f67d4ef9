package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caffxin/studiosite/internal/adapter/driving/web/viewmodel"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestFeatureGrid_RevealAttributes(t *testing.T) {
	doc := render(t, FeatureGrid(viewmodel.FeatureGridSection{
		Variant: "capabilities",
		Features: []viewmodel.FeatureItem{
			{Title: "A", Reveal: viewmodel.Reveal{Enabled: true, DelayMS: 200}},
			{Title: "B", Reveal: viewmodel.Reveal{Enabled: true, DelayMS: 400}},
		},
		Reveal: viewmodel.Reveal{Enabled: true},
	}))

	section := doc.Find("section")
	assert.True(t, section.HasClass("feature-grid--capabilities"))
	assert.Equal(t, "pending", section.AttrOr("data-reveal", ""))

	var delays []string
	doc.Find(".feature").Each(func(_ int, s *goquery.Selection) {
		delays = append(delays, s.AttrOr("data-reveal-delay", ""))
	})
	assert.Equal(t, []string{"200", "400"}, delays)
}

func TestIntro_RevealDisabled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Intro(viewmodel.IntroSection{Title: "x"}).Render(context.Background(), &buf))
	assert.NotContains(t, buf.String(), "data-reveal")
}

func TestHero_TextRevealsCascade(t *testing.T) {
	doc := render(t, Hero(viewmodel.HeroSection{
		Headline:    "Build",
		Subheadline: "Ship",
		Primary:     viewmodel.Link{Label: "Contact", Href: "/contact"},
		Secondary:   viewmodel.Link{Label: "Work", Href: "/portfolio"},
		TextReveals: []viewmodel.Reveal{{Enabled: true, DelayMS: 0}, {Enabled: true, DelayMS: 200}},
	}))

	assert.Equal(t, "0", doc.Find(".hero__headline").AttrOr("data-reveal-delay", ""))
	assert.Equal(t, "200", doc.Find(".hero__subheadline").AttrOr("data-reveal-delay", ""))
	assert.Equal(t, 0, doc.Find(".hero__intro").Length())
	_, ok := doc.Find(".hero__actions").Attr("data-reveal")
	assert.False(t, ok)
	assert.Equal(t, "/portfolio", doc.Find(".button--secondary").AttrOr("href", ""))
}

func TestProjectCard_CaseLinkOrNote(t *testing.T) {
	doc := render(t, PortfolioGrid(viewmodel.PortfolioGridSection{
		Projects: []viewmodel.ProjectCard{
			{Key: "ledger", Name: "Ledger", Category: "Fintech", Industry: "Banking", CaseLink: &viewmodel.Link{Label: "Case study", Href: "https://example.com/ledger"}},
			{Key: "atlas", Name: "Atlas", Category: "Logistics", Note: "Under NDA"},
		},
	}))

	link := doc.Find("#project-ledger .project__case")
	assert.Equal(t, "_blank", link.AttrOr("target", ""))
	assert.Equal(t, "noopener noreferrer", link.AttrOr("rel", ""))
	assert.Equal(t, "Fintech · Banking", strings.TrimSpace(doc.Find("#project-ledger .project__meta").Text()))
	assert.Equal(t, "Under NDA", doc.Find("#project-atlas .project__note").Text())
	assert.Equal(t, 0, doc.Find("#project-atlas .project__case").Length())
}

func TestProcessSteps_ZeroPaddedNumbers(t *testing.T) {
	doc := render(t, ProcessSteps(viewmodel.ProcessStepsSection{
		Steps: []viewmodel.ProcessStep{{Number: 1, Title: "Discover"}, {Number: 12, Title: "Support"}},
	}))

	var numbers []string
	doc.Find(".step__number").Each(func(_ int, s *goquery.Selection) {
		numbers = append(numbers, s.Text())
	})
	assert.Equal(t, []string{"01", "12"}, numbers)
}

func TestEngagementModels_SkipsEmptyLists(t *testing.T) {
	doc := render(t, EngagementModels(viewmodel.EngagementModelsSection{
		Title:  "How we work",
		Models: []viewmodel.EngagementModel{{Name: "Fixed price", Scenarios: []string{"Clear scope"}}},
	}))

	var headings []string
	doc.Find(".engagement h4").Each(func(_ int, s *goquery.Selection) {
		headings = append(headings, s.Text())
	})
	assert.Equal(t, []string{"Best for"}, headings)
}

func TestFAQAccordion_OpenAndClosedItems(t *testing.T) {
	doc := render(t, FAQAccordion(viewmodel.FAQAccordionSection{
		Categories: []viewmodel.FAQCategory{{
			Name: "General",
			Items: []viewmodel.FAQItem{
				{Key: "cost", Question: "Cost?", Answer: "<p>Depends.</p>", Open: true, ToggleHref: "/faq#faq-cost"},
				{Key: "time", Question: "Time?", Answer: "<p>Weeks.</p>", ToggleHref: "/faq?faq=time#faq-time"},
			},
		}},
	}))

	open := doc.Find("#faq-cost")
	assert.True(t, open.HasClass("is-open"))
	assert.Equal(t, "true", open.Find("[data-faq-toggle]").AttrOr("aria-expanded", ""))
	_, hidden := open.Find("dd").Attr("hidden")
	assert.False(t, hidden)
	assert.Equal(t, "Depends.", open.Find("dd p").Text())

	closed := doc.Find("#faq-time")
	assert.False(t, closed.HasClass("is-open"))
	assert.Equal(t, "/faq?faq=time#faq-time", closed.Find("a.faq__question").AttrOr("href", ""))
	assert.Equal(t, "faq-answer-time", closed.Find("a.faq__question").AttrOr("aria-controls", ""))
	_, hidden = closed.Find("dd").Attr("hidden")
	assert.True(t, hidden)
}

func TestContactGuide_CopyButton(t *testing.T) {
	doc := render(t, ContactGuide(viewmodel.ContactGuideSection{Title: "Reach us", Email: "hello@caffxin.tech"}))

	assert.Equal(t, "mailto:hello@caffxin.tech", doc.Find(".contact-guide__email a").AttrOr("href", ""))
	assert.Equal(t, "hello@caffxin.tech", doc.Find("button[data-copy]").AttrOr("data-copy", ""))
}

func TestContactForm_FieldErrorsAndValues(t *testing.T) {
	doc := render(t, ContactForm(viewmodel.ContactFormSection{
		Action:    "/contact",
		CSRFToken: "tok",
		Name:      "Ada",
		Message:   "<b>hi</b>",
		Errors:    map[string]string{"email": "Please enter a valid email address."},
		NoticeMS:  3000,
	}))

	form := doc.Find("form[data-contact-form]")
	assert.Equal(t, "/contact", form.AttrOr("action", ""))
	assert.Equal(t, "3000", form.AttrOr("data-notice-ms", ""))
	_, relay := form.Attr("data-relay-endpoint")
	assert.False(t, relay)
	assert.Equal(t, "tok", doc.Find(`input[name="csrf_token"]`).AttrOr("value", ""))
	assert.Equal(t, "Ada", doc.Find(`input[name="name"]`).AttrOr("value", ""))
	assert.Equal(t, "<b>hi</b>", doc.Find("textarea").Text())
	assert.Equal(t, 1, doc.Find(".field.has-error").Length())
	assert.Equal(t, "Please enter a valid email address.", doc.Find(".field__error").Text())

	button := doc.Find(`button[type="submit"]`)
	_, disabled := button.Attr("disabled")
	assert.False(t, disabled)
	assert.Equal(t, "Send message", strings.TrimSpace(button.Text()))
}

func TestContactForm_SubmittingAndRelay(t *testing.T) {
	doc := render(t, ContactForm(viewmodel.ContactFormSection{
		Action:     "#",
		Submitting: true,
		Relay:      &viewmodel.ClientRelay{Endpoint: "https://api.emailjs.com/api/v1.0/email/send", ServiceID: "svc", TemplateID: "tpl", PublicKey: "pk"},
	}))

	form := doc.Find("form")
	assert.Equal(t, "svc", form.AttrOr("data-relay-service", ""))
	assert.Equal(t, "pk", form.AttrOr("data-relay-key", ""))

	button := doc.Find(`button[type="submit"]`)
	_, disabled := button.Attr("disabled")
	assert.True(t, disabled)
	assert.Equal(t, "true", button.AttrOr("aria-busy", ""))
	assert.Equal(t, "Sending...", strings.TrimSpace(button.Text()))
}

func TestLegalDocument_UpdatedLine(t *testing.T) {
	doc := render(t, LegalDocument(viewmodel.LegalDocumentSection{Title: "Privacy", Updated: "2025-01-01", Body: "<p>Body</p>"}))

	assert.Equal(t, "Last updated 2025-01-01", doc.Find(".legal__updated").Text())
	assert.Equal(t, "Body", doc.Find(".prose p").Text())
}
