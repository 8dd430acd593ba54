package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"portfolio/internal/models"
	"portfolio/internal/repositories"
	"portfolio/internal/richtext"
	"portfolio/internal/source/static"
)

// Seed provisions the static dataset into an empty schema. Existing rows are
// left untouched, so running it twice changes nothing.
func Seed(ctx context.Context, pool *pgxpool.Pool, dataset *static.Dataset, renderer *richtext.Renderer, logger zerolog.Logger) error {
	techRepo := repositories.NewTechnologyRepository(pool)
	projectRepo := repositories.NewProjectRepository(pool)
	singletonRepo := repositories.NewSingletonRepository(pool)

	// every named technology gets a row, including ones only projects use
	techs := append([]models.Technology(nil), dataset.Technologies...)
	known := make(map[string]bool, len(techs))
	for _, t := range techs {
		known[t.Name] = true
	}
	for _, p := range dataset.Projects {
		for _, name := range p.Tech {
			if !known[name] {
				known[name] = true
				techs = append(techs, models.Technology{Name: name})
			}
		}
	}

	techIDs := make(map[string]string, len(techs))
	for i := range techs {
		id, err := techRepo.Upsert(ctx, &techs[i])
		if err != nil {
			return fmt.Errorf("seed technology %s: %w", techs[i].Name, err)
		}
		techIDs[techs[i].Name] = id
	}
	logger.Info().Int("count", len(techs)).Msg("seeded technologies")

	for i, p := range dataset.Projects {
		overview := string(renderer.Render(p.Overview))
		if err := projectRepo.Upsert(ctx, &p, i+1, overview, techIDs); err != nil {
			return fmt.Errorf("seed project %s: %w", p.Slug, err)
		}
	}
	logger.Info().Int("count", len(dataset.Projects)).Msg("seeded projects")

	home := dataset.Home
	headline := string(renderer.Render(home.Hero.Headline))
	about := string(renderer.Render(home.About.Content))
	if err := singletonRepo.SeedHome(ctx, home, headline, about); err != nil {
		return fmt.Errorf("seed home: %w", err)
	}
	if err := singletonRepo.SeedSiteSettings(ctx, dataset.Site); err != nil {
		return fmt.Errorf("seed site settings: %w", err)
	}
	logger.Info().Msg("seeded singletons")
	return nil
}
