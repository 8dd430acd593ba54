package repositories

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/models"
	"portfolio/internal/source/directus"
)

// SingletonRepository reads and seeds the home and site_settings singletons.
// Both tables hold at most one row, id 1.
type SingletonRepository struct {
	pool *pgxpool.Pool
}

func NewSingletonRepository(pool *pgxpool.Pool) *SingletonRepository {
	return &SingletonRepository{pool: pool}
}

// Home returns nil, nil when the row does not exist.
func (r *SingletonRepository) Home(ctx context.Context) (*directus.HomeRecord, error) {
	query := `
		SELECT hero_top_text, hero_headline, hero_subheadline, hero_buttons,
			about_title, about_content, about_stats,
			skills_title, skills_categories, projects_title,
			contact_title, contact_heading, contact_content, contact_email,
			contact_social_links
		FROM home ORDER BY id LIMIT 1
	`

	var (
		rec                             directus.HomeRecord
		buttons, stats, categories, soc []byte
	)
	err := r.pool.QueryRow(ctx, query).Scan(
		&rec.HeroTopText, &rec.HeroHeadline, &rec.HeroSubheadline, &buttons,
		&rec.AboutTitle, &rec.AboutContent, &stats,
		&rec.SkillsTitle, &categories, &rec.ProjectsTitle,
		&rec.ContactTitle, &rec.ContactHeading, &rec.ContactContent, &rec.ContactEmail,
		&soc,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if err := decodeJSON(
		jsonField{buttons, &rec.HeroButtons},
		jsonField{stats, &rec.AboutStats},
		jsonField{categories, &rec.SkillsCategories},
		jsonField{soc, &rec.ContactSocialLinks},
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

// SiteSettings returns nil, nil when the row does not exist.
func (r *SingletonRepository) SiteSettings(ctx context.Context) (*directus.SiteSettingsRecord, error) {
	query := `
		SELECT title, description, logo_text, footer_text, nav_items
		FROM site_settings ORDER BY id LIMIT 1
	`

	var (
		rec directus.SiteSettingsRecord
		nav []byte
	)
	err := r.pool.QueryRow(ctx, query).Scan(&rec.Title, &rec.Description, &rec.LogoText, &rec.FooterText, &nav)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if err := decodeJSON(jsonField{nav, &rec.NavItems}); err != nil {
		return nil, err
	}
	return &rec, nil
}

// SeedHome inserts the home row unless one exists.
func (r *SingletonRepository) SeedHome(ctx context.Context, h models.HomeContent, headlineHTML, aboutHTML string) error {
	query := `
		INSERT INTO home (
			id, hero_top_text, hero_headline, hero_subheadline, hero_buttons,
			about_title, about_content, about_stats,
			skills_title, skills_categories, projects_title,
			contact_title, contact_heading, contact_content, contact_email,
			contact_social_links
		)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO NOTHING
	`

	hero, about, skills, label, contact := h.Hero, h.About, h.Skills, h.Projects, h.Contact
	if hero == nil || about == nil || skills == nil || label == nil || contact == nil {
		return errors.New("seed home: every section is required")
	}

	_, err := r.pool.Exec(ctx, query,
		hero.TopText, headlineHTML, hero.Subheadline, mustJSON(hero.Buttons),
		about.Title, aboutHTML, mustJSON(about.Stats),
		skills.Title, mustJSON(skills.Categories), label.Title,
		contact.Title, contact.Heading, contact.Content, contact.Email,
		mustJSON(contact.SocialLinks),
	)
	return err
}

// SeedSiteSettings inserts the site_settings row unless one exists.
func (r *SingletonRepository) SeedSiteSettings(ctx context.Context, s models.SiteSettings) error {
	query := `
		INSERT INTO site_settings (id, title, description, logo_text, footer_text, nav_items)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.pool.Exec(ctx, query, s.Title, s.Description, s.LogoText, s.FooterText, mustJSON(s.NavItems))
	return err
}

type jsonField struct {
	raw []byte
	dst any
}

func decodeJSON(fields ...jsonField) error {
	for _, f := range fields {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return err
		}
	}
	return nil
}

func mustJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
