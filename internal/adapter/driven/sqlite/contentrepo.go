package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/caffxin/studiosite/internal/domain/model"
	"github.com/caffxin/studiosite/internal/domain/port/driven"
)

// Compile-time interface satisfaction checks.
var (
	_ driven.ContentSource = (*ContentRepo)(nil)
	_ driven.ContentSink   = (*ContentRepo)(nil)
)

// ErrEmptySnapshot is returned by Load when no catalog has been imported.
var ErrEmptySnapshot = errors.New("content snapshot is empty")

// ContentRepo is the SQLite implementation of the content source and sink
// ports. List columns are stored as JSON arrays in TEXT columns and every
// list keeps its catalog order in a position column.
type ContentRepo struct {
	db  *DB
	now func() time.Time
}

// NewContentRepo creates a new ContentRepo backed by the given DB.
func NewContentRepo(db *DB) *ContentRepo {
	return &ContentRepo{db: db, now: time.Now}
}

// contentTables lists the tables Import clears, children first.
var contentTables = []string{
	"legal_documents",
	"tech_groups",
	"engagement_models",
	"features",
	"team_members",
	"process_steps",
	"faq_entries",
	"portfolio_projects",
	"services",
	"page_copy",
	"company",
	"snapshot_meta",
}

// Import replaces the whole snapshot with the catalog in one transaction.
// On error the previous snapshot is left untouched.
func (r *ContentRepo) Import(ctx context.Context, cat *model.Catalog) (err error) {
	if cat == nil {
		return fmt.Errorf("import catalog: nil catalog")
	}

	tx, err := r.db.Writer.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin import: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range contentTables {
		if _, err = tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	steps := []func(context.Context, *sql.Tx, *model.Catalog) error{
		insertCompany,
		insertPages,
		insertServices,
		insertPortfolio,
		insertFAQ,
		insertProcess,
		insertTeam,
		insertFeatures,
		insertEngagements,
		insertTech,
		insertLegal,
	}
	for _, step := range steps {
		if err = step(ctx, tx, cat); err != nil {
			return err
		}
	}

	if _, err = tx.ExecContext(ctx,
		"INSERT INTO snapshot_meta (id, imported_at) VALUES (1, ?)", r.now().UTC().Format(time.RFC3339),
	); err != nil {
		return fmt.Errorf("record import time: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit import: %w", err)
	}
	return nil
}

// ImportedAt returns when the snapshot was last imported. The zero time
// means nothing has been imported.
func (r *ContentRepo) ImportedAt(ctx context.Context) (time.Time, error) {
	var raw string
	err := r.db.Reader.QueryRowContext(ctx, "SELECT imported_at FROM snapshot_meta WHERE id = 1").Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("read import time: %w", err)
	}

	at, err := parseTime(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse imported_at: %w", err)
	}
	return at, nil
}

// Load reads the snapshot back in catalog order.
func (r *ContentRepo) Load(ctx context.Context) (*model.Catalog, error) {
	cat := &model.Catalog{}

	company, err := r.loadCompany(ctx)
	if err != nil {
		return nil, err
	}
	cat.Company = company

	loaders := []func(context.Context, *model.Catalog) error{
		r.loadPages,
		r.loadServices,
		r.loadPortfolio,
		r.loadFAQ,
		r.loadProcess,
		r.loadTeam,
		r.loadFeatures,
		r.loadEngagements,
		r.loadTech,
		r.loadLegal,
	}
	for _, load := range loaders {
		if err := load(ctx, cat); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// --- import ---

func insertCompany(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	c := cat.Company
	values, err := encodeList(c.Values)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO company (
			id, name, legal_name, tagline, headline, subheadline, intro, hero_image,
			about_title, about_body, about_image, who, philosophy, company_values,
			email, contact_lead, contact_guide, copyright, logo
		) VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.LegalName, c.Tagline, c.Headline, c.Subheadline, c.Intro, c.HeroImage,
		c.AboutTitle, c.AboutBody, c.AboutImage, c.Who, c.Philosophy, values,
		c.Email, c.ContactLead, c.ContactGuide, c.Copyright, c.Logo,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

func insertPages(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	for i, p := range cat.Pages {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO page_copy (key, position, title, nav_label, lead, description) VALUES (?, ?, ?, ?, ?, ?)",
			p.Key, i, p.Title, p.NavLabel, p.Lead, p.Description,
		); err != nil {
			return fmt.Errorf("insert page copy %s: %w", p.Key, err)
		}
	}
	return nil
}

func insertServices(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	for i, s := range cat.Services {
		features, err := encodeList(s.Features)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO services (key, position, name, short_description, detail, features) VALUES (?, ?, ?, ?, ?, ?)",
			s.Key, i, s.Name, s.ShortDescription, s.Detail, features,
		); err != nil {
			return fmt.Errorf("insert service %s: %w", s.Key, err)
		}
	}
	return nil
}

func insertPortfolio(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	for i, p := range cat.Portfolio {
		problems, err := encodeList(p.ProblemsSolved)
		if err != nil {
			return err
		}
		stack, err := encodeList(p.TechStack)
		if err != nil {
			return err
		}
		highlights, err := encodeList(p.Highlights)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO portfolio_projects (
				key, position, name, category, industry, problems_solved, tech_stack, highlights, image_ref, note
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			p.Key, i, p.Name, p.Category, p.Industry, problems, stack, highlights, p.ImageRef, p.Note,
		); err != nil {
			return fmt.Errorf("insert portfolio project %s: %w", p.Key, err)
		}
	}
	return nil
}

func insertFAQ(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	for i, f := range cat.FAQ {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO faq_entries (key, position, category, question, answer) VALUES (?, ?, ?, ?, ?)",
			f.Key, i, f.Category, f.Question, f.Answer,
		); err != nil {
			return fmt.Errorf("insert faq entry %s: %w", f.Key, err)
		}
	}
	return nil
}

func insertProcess(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	for i, s := range cat.Process {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO process_steps (key, position, title, description) VALUES (?, ?, ?, ?)",
			s.Key, i, s.Title, s.Description,
		); err != nil {
			return fmt.Errorf("insert process step %s: %w", s.Key, err)
		}
	}
	return nil
}

func insertTeam(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	for i, m := range cat.Team {
		core := 0
		if m.Core {
			core = 1
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO team_members (key, position, name, title, skills, core) VALUES (?, ?, ?, ?, ?, ?)",
			m.Key, i, m.Name, m.Title, m.Skills, core,
		); err != nil {
			return fmt.Errorf("insert team member %s: %w", m.Key, err)
		}
	}
	return nil
}

func insertFeatures(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	groups := []struct {
		kind     model.Kind
		features []model.Feature
	}{
		{model.KindCapabilities, cat.Capabilities},
		{model.KindHighlights, cat.Highlights},
		{model.KindReasons, cat.Reasons},
	}
	for _, g := range groups {
		for i, f := range g.features {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO features (kind, key, position, title, description) VALUES (?, ?, ?, ?, ?)",
				string(g.kind), f.Key, i, f.Title, f.Description,
			); err != nil {
				return fmt.Errorf("insert %s feature %s: %w", g.kind, f.Key, err)
			}
		}
	}
	return nil
}

func insertEngagements(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	for i, m := range cat.Engagements {
		scenarios, err := encodeList(m.Scenarios)
		if err != nil {
			return err
		}
		audience, err := encodeList(m.Audience)
		if err != nil {
			return err
		}
		terms, err := encodeList(m.Terms)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO engagement_models (key, position, name, scenarios, audience, terms) VALUES (?, ?, ?, ?, ?, ?)",
			m.Key, i, m.Name, scenarios, audience, terms,
		); err != nil {
			return fmt.Errorf("insert engagement model %s: %w", m.Key, err)
		}
	}
	return nil
}

func insertTech(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	for i, g := range cat.Tech {
		items, err := encodeList(g.Items)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO tech_groups (key, position, title, items) VALUES (?, ?, ?, ?)",
			g.Key, i, g.Title, items,
		); err != nil {
			return fmt.Errorf("insert tech group %s: %w", g.Key, err)
		}
	}
	return nil
}

func insertLegal(ctx context.Context, tx *sql.Tx, cat *model.Catalog) error {
	for i, d := range cat.Legal {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO legal_documents (key, position, title, subtitle, updated, body) VALUES (?, ?, ?, ?, ?, ?)",
			d.Key, i, d.Title, d.Subtitle, d.Updated, d.Body,
		); err != nil {
			return fmt.Errorf("insert legal document %s: %w", d.Key, err)
		}
	}
	return nil
}

// --- load ---

func (r *ContentRepo) loadCompany(ctx context.Context) (model.Company, error) {
	var (
		c      model.Company
		values string
	)
	err := r.db.Reader.QueryRowContext(ctx, `
		SELECT name, legal_name, tagline, headline, subheadline, intro, hero_image,
		       about_title, about_body, about_image, who, philosophy, company_values,
		       email, contact_lead, contact_guide, copyright, logo
		FROM company WHERE id = 1`,
	).Scan(
		&c.Name, &c.LegalName, &c.Tagline, &c.Headline, &c.Subheadline, &c.Intro, &c.HeroImage,
		&c.AboutTitle, &c.AboutBody, &c.AboutImage, &c.Who, &c.Philosophy, &values,
		&c.Email, &c.ContactLead, &c.ContactGuide, &c.Copyright, &c.Logo,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Company{}, ErrEmptySnapshot
	}
	if err != nil {
		return model.Company{}, fmt.Errorf("load company: %w", err)
	}
	if c.Values, err = decodeList(values); err != nil {
		return model.Company{}, fmt.Errorf("load company values: %w", err)
	}
	return c, nil
}

func (r *ContentRepo) loadPages(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "page copy",
		"SELECT key, title, nav_label, lead, description FROM page_copy ORDER BY position",
		func(rows *sql.Rows) error {
			var p model.PageCopy
			if err := rows.Scan(&p.Key, &p.Title, &p.NavLabel, &p.Lead, &p.Description); err != nil {
				return err
			}
			cat.Pages = append(cat.Pages, p)
			return nil
		})
}

func (r *ContentRepo) loadServices(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "services",
		"SELECT key, name, short_description, detail, features FROM services ORDER BY position",
		func(rows *sql.Rows) error {
			var (
				s        model.ServiceOffering
				features string
			)
			if err := rows.Scan(&s.Key, &s.Name, &s.ShortDescription, &s.Detail, &features); err != nil {
				return err
			}
			var err error
			if s.Features, err = decodeList(features); err != nil {
				return err
			}
			cat.Services = append(cat.Services, s)
			return nil
		})
}

func (r *ContentRepo) loadPortfolio(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "portfolio projects", `
		SELECT key, name, category, industry, problems_solved, tech_stack, highlights, image_ref, note
		FROM portfolio_projects ORDER BY position`,
		func(rows *sql.Rows) error {
			var (
				p                         model.PortfolioProject
				problems, stack, outcomes string
			)
			if err := rows.Scan(&p.Key, &p.Name, &p.Category, &p.Industry,
				&problems, &stack, &outcomes, &p.ImageRef, &p.Note); err != nil {
				return err
			}
			var err error
			if p.ProblemsSolved, err = decodeList(problems); err != nil {
				return err
			}
			if p.TechStack, err = decodeList(stack); err != nil {
				return err
			}
			if p.Highlights, err = decodeList(outcomes); err != nil {
				return err
			}
			cat.Portfolio = append(cat.Portfolio, p)
			return nil
		})
}

func (r *ContentRepo) loadFAQ(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "faq entries",
		"SELECT key, category, question, answer FROM faq_entries ORDER BY position",
		func(rows *sql.Rows) error {
			var f model.FAQEntry
			if err := rows.Scan(&f.Key, &f.Category, &f.Question, &f.Answer); err != nil {
				return err
			}
			cat.FAQ = append(cat.FAQ, f)
			return nil
		})
}

func (r *ContentRepo) loadProcess(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "process steps",
		"SELECT key, title, description FROM process_steps ORDER BY position",
		func(rows *sql.Rows) error {
			var s model.ProcessStep
			if err := rows.Scan(&s.Key, &s.Title, &s.Description); err != nil {
				return err
			}
			cat.Process = append(cat.Process, s)
			return nil
		})
}

func (r *ContentRepo) loadTeam(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "team members",
		"SELECT key, name, title, skills, core FROM team_members ORDER BY position",
		func(rows *sql.Rows) error {
			var (
				m    model.TeamMember
				core int
			)
			if err := rows.Scan(&m.Key, &m.Name, &m.Title, &m.Skills, &core); err != nil {
				return err
			}
			m.Core = core == 1
			cat.Team = append(cat.Team, m)
			return nil
		})
}

func (r *ContentRepo) loadFeatures(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "features",
		"SELECT kind, key, title, description FROM features ORDER BY kind, position",
		func(rows *sql.Rows) error {
			var (
				kind string
				f    model.Feature
			)
			if err := rows.Scan(&kind, &f.Key, &f.Title, &f.Description); err != nil {
				return err
			}
			switch model.Kind(kind) {
			case model.KindCapabilities:
				cat.Capabilities = append(cat.Capabilities, f)
			case model.KindHighlights:
				cat.Highlights = append(cat.Highlights, f)
			case model.KindReasons:
				cat.Reasons = append(cat.Reasons, f)
			}
			return nil
		})
}

func (r *ContentRepo) loadEngagements(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "engagement models",
		"SELECT key, name, scenarios, audience, terms FROM engagement_models ORDER BY position",
		func(rows *sql.Rows) error {
			var (
				m                          model.EngagementModel
				scenarios, audience, terms string
			)
			if err := rows.Scan(&m.Key, &m.Name, &scenarios, &audience, &terms); err != nil {
				return err
			}
			var err error
			if m.Scenarios, err = decodeList(scenarios); err != nil {
				return err
			}
			if m.Audience, err = decodeList(audience); err != nil {
				return err
			}
			if m.Terms, err = decodeList(terms); err != nil {
				return err
			}
			cat.Engagements = append(cat.Engagements, m)
			return nil
		})
}

func (r *ContentRepo) loadTech(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "tech groups",
		"SELECT key, title, items FROM tech_groups ORDER BY position",
		func(rows *sql.Rows) error {
			var (
				g     model.TechGroup
				items string
			)
			if err := rows.Scan(&g.Key, &g.Title, &items); err != nil {
				return err
			}
			var err error
			if g.Items, err = decodeList(items); err != nil {
				return err
			}
			cat.Tech = append(cat.Tech, g)
			return nil
		})
}

func (r *ContentRepo) loadLegal(ctx context.Context, cat *model.Catalog) error {
	return r.each(ctx, "legal documents",
		"SELECT key, title, subtitle, updated, body FROM legal_documents ORDER BY position",
		func(rows *sql.Rows) error {
			var d model.LegalDocument
			if err := rows.Scan(&d.Key, &d.Title, &d.Subtitle, &d.Updated, &d.Body); err != nil {
				return err
			}
			cat.Legal = append(cat.Legal, d)
			return nil
		})
}

// each runs query on the reader pool and calls scan for every row.
func (r *ContentRepo) each(ctx context.Context, what, query string, scan func(*sql.Rows) error) error {
	rows, err := r.db.Reader.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query %s: %w", what, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("scan %s: %w", what, err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate %s: %w", what, err)
	}
	return nil
}

func encodeList(items []string) (string, error) {
	if items == nil {
		items = []string{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("marshal list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("unmarshal list: %w", err)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return items, nil
}

// parseTime accepts the datetime layouts SQLite and the driver produce.
func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999999-07:00",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized time format: %s", s)
}
