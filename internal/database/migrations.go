package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// RunMigrations creates the Directus-shaped content schema. Every statement
// is idempotent, so it is safe against a database Directus already manages.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	migrations := []string{
		createTechnologiesTable,
		createProjectsTable,
		createProjectsTechnologiesTable,
		createHomeTable,
		createSiteSettingsTable,
	}

	for i, migration := range migrations {
		logger.Info().Msgf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	logger.Info().Msg("All migrations completed successfully")
	return nil
}

const createTechnologiesTable = `
CREATE TABLE IF NOT EXISTS technologies (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  name VARCHAR(255) NOT NULL,
  slug VARCHAR(255) NOT NULL UNIQUE,
  icon VARCHAR(255)
);
`

const createProjectsTable = `
CREATE TABLE IF NOT EXISTS projects (
  id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
  sort INTEGER,
  date_created TIMESTAMPTZ NOT NULL DEFAULT NOW(),
  slug VARCHAR(255) UNIQUE,
  title VARCHAR(255) NOT NULL,
  subtitle VARCHAR(255),
  description TEXT NOT NULL,
  featured BOOLEAN NOT NULL DEFAULT FALSE,
  icon VARCHAR(255),
  image VARCHAR(1024),
  client VARCHAR(255),
  location VARCHAR(255),
  service_type VARCHAR(255),
  link_code VARCHAR(1024),
  link_demo VARCHAR(1024),
  overview TEXT,
  process JSONB,
  results JSONB,
  testimonial_content TEXT,
  testimonial_author VARCHAR(255),
  testimonial_role VARCHAR(255),
  final_thoughts TEXT
);

CREATE INDEX IF NOT EXISTS idx_projects_featured ON projects(featured);
`

const createProjectsTechnologiesTable = `
CREATE TABLE IF NOT EXISTS projects_technologies (
  id SERIAL PRIMARY KEY,
  projects_id UUID REFERENCES projects(id) ON DELETE CASCADE,
  technologies_id UUID REFERENCES technologies(id) ON DELETE CASCADE,
  UNIQUE (projects_id, technologies_id)
);
`

const createHomeTable = `
CREATE TABLE IF NOT EXISTS home (
  id INTEGER PRIMARY KEY,
  hero_top_text VARCHAR(255),
  hero_headline VARCHAR(255),
  hero_subheadline TEXT,
  hero_buttons JSONB,
  about_title VARCHAR(255),
  about_content TEXT,
  about_stats JSONB,
  skills_title VARCHAR(255),
  skills_categories JSONB,
  projects_title VARCHAR(255),
  contact_title VARCHAR(255),
  contact_heading VARCHAR(255),
  contact_content TEXT,
  contact_email VARCHAR(255),
  contact_social_links JSONB
);
`

const createSiteSettingsTable = `
CREATE TABLE IF NOT EXISTS site_settings (
  id INTEGER PRIMARY KEY,
  title VARCHAR(255),
  description TEXT,
  logo_text VARCHAR(255),
  footer_text TEXT,
  nav_items JSONB
);
`
