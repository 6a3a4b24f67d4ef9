package content

import "github.com/caffxin/studiosite/internal/domain/model"

// catalogDoc mirrors catalog.yaml. Field names follow the snake_case keys
// accepted by catalog.schema.json.
type catalogDoc struct {
	Company      companyDoc      `yaml:"company"`
	Pages        []pageDoc       `yaml:"pages"`
	Services     []serviceDoc    `yaml:"services"`
	Portfolio    []projectDoc    `yaml:"portfolio"`
	FAQ          []faqDoc        `yaml:"faq"`
	Process      []featureDoc    `yaml:"process"`
	Team         []memberDoc     `yaml:"team"`
	Capabilities []featureDoc    `yaml:"capabilities"`
	Highlights   []featureDoc    `yaml:"highlights"`
	Reasons      []featureDoc    `yaml:"reasons"`
	Engagements  []engagementDoc `yaml:"engagements"`
	Tech         []techGroupDoc  `yaml:"tech"`
}

type companyDoc struct {
	Name         string   `yaml:"name"`
	LegalName    string   `yaml:"legal_name"`
	Tagline      string   `yaml:"tagline"`
	Headline     string   `yaml:"headline"`
	Subheadline  string   `yaml:"subheadline"`
	Intro        string   `yaml:"intro"`
	HeroImage    string   `yaml:"hero_image"`
	AboutTitle   string   `yaml:"about_title"`
	AboutBody    string   `yaml:"about_body"`
	AboutImage   string   `yaml:"about_image"`
	Who          string   `yaml:"who"`
	Philosophy   string   `yaml:"philosophy"`
	Values       []string `yaml:"values"`
	Email        string   `yaml:"email"`
	ContactLead  string   `yaml:"contact_lead"`
	ContactGuide string   `yaml:"contact_guide"`
	Copyright    string   `yaml:"copyright"`
	Logo         string   `yaml:"logo"`
}

type pageDoc struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	NavLabel    string `yaml:"nav_label"`
	Lead        string `yaml:"lead"`
	Description string `yaml:"description"`
}

type serviceDoc struct {
	Key              string   `yaml:"key"`
	Name             string   `yaml:"name"`
	ShortDescription string   `yaml:"short_description"`
	Detail           string   `yaml:"detail"`
	Features         []string `yaml:"features"`
}

type projectDoc struct {
	Key            string   `yaml:"key"`
	Name           string   `yaml:"name"`
	Category       string   `yaml:"category"`
	Industry       string   `yaml:"industry"`
	ProblemsSolved []string `yaml:"problems_solved"`
	TechStack      []string `yaml:"tech_stack"`
	Highlights     []string `yaml:"highlights"`
	Image          string   `yaml:"image"`
	Note           string   `yaml:"note"`
}

type faqDoc struct {
	Key      string `yaml:"key"`
	Category string `yaml:"category"`
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// featureDoc backs every {key, title, description} list, process steps
// included.
type featureDoc struct {
	Key         string `yaml:"key"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type memberDoc struct {
	Key    string `yaml:"key"`
	Name   string `yaml:"name"`
	Title  string `yaml:"title"`
	Skills string `yaml:"skills"`
	Core   bool   `yaml:"core"`
}

type engagementDoc struct {
	Key       string   `yaml:"key"`
	Name      string   `yaml:"name"`
	Scenarios []string `yaml:"scenarios"`
	Audience  []string `yaml:"audience"`
	Terms     []string `yaml:"terms"`
}

type techGroupDoc struct {
	Key   string   `yaml:"key"`
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

func (d catalogDoc) toModel() *model.Catalog {
	c := d.Company
	cat := &model.Catalog{
		Company: model.Company{
			Name:         c.Name,
			LegalName:    c.LegalName,
			Tagline:      c.Tagline,
			Headline:     c.Headline,
			Subheadline:  c.Subheadline,
			Intro:        c.Intro,
			HeroImage:    c.HeroImage,
			AboutTitle:   c.AboutTitle,
			AboutBody:    c.AboutBody,
			AboutImage:   c.AboutImage,
			Who:          c.Who,
			Philosophy:   c.Philosophy,
			Values:       c.Values,
			Email:        c.Email,
			ContactLead:  c.ContactLead,
			ContactGuide: c.ContactGuide,
			Copyright:    c.Copyright,
			Logo:         c.Logo,
		},
	}

	for _, p := range d.Pages {
		cat.Pages = append(cat.Pages, model.PageCopy(p))
	}
	for _, s := range d.Services {
		cat.Services = append(cat.Services, model.ServiceOffering(s))
	}
	for _, p := range d.Portfolio {
		cat.Portfolio = append(cat.Portfolio, model.PortfolioProject{
			Key:            p.Key,
			Name:           p.Name,
			Category:       p.Category,
			Industry:       p.Industry,
			ProblemsSolved: p.ProblemsSolved,
			TechStack:      model.NormalizeTechStack(p.TechStack),
			Highlights:     p.Highlights,
			ImageRef:       p.Image,
			Note:           p.Note,
		})
	}
	for _, f := range d.FAQ {
		cat.FAQ = append(cat.FAQ, model.FAQEntry(f))
	}
	for _, s := range d.Process {
		cat.Process = append(cat.Process, model.ProcessStep(s))
	}
	for _, m := range d.Team {
		cat.Team = append(cat.Team, model.TeamMember(m))
	}
	cat.Capabilities = toFeatures(d.Capabilities)
	cat.Highlights = toFeatures(d.Highlights)
	cat.Reasons = toFeatures(d.Reasons)
	for _, e := range d.Engagements {
		cat.Engagements = append(cat.Engagements, model.EngagementModel(e))
	}
	for _, g := range d.Tech {
		cat.Tech = append(cat.Tech, model.TechGroup(g))
	}

	return cat
}

func toFeatures(docs []featureDoc) []model.Feature {
	out := make([]model.Feature, 0, len(docs))
	for _, f := range docs {
		out = append(out, model.Feature(f))
	}
	return out
}
