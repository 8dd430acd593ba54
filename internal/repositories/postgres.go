package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"portfolio/internal/models"
	"portfolio/internal/normalize"
	"portfolio/internal/source"
	"portfolio/internal/source/directus"
)

// Postgres serves content straight from the database behind a Directus
// instance. Rows share the Directus record shapes, so the Directus
// normalizer applies unchanged.
type Postgres struct {
	projects   *ProjectRepository
	singletons *SingletonRepository
	normalizer directus.Normalizer
	logger     zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, assets source.AssetResolver, logger zerolog.Logger) *Postgres {
	return &Postgres{
		projects:   NewProjectRepository(pool),
		singletons: NewSingletonRepository(pool),
		normalizer: directus.Normalizer{Assets: assets},
		logger:     logger.With().Str("backend", "postgres").Logger(),
	}
}

func (r *Postgres) Name() string { return "postgres" }

func (r *Postgres) ServerSideFiltering() bool { return true }

func (r *Postgres) SiteSettings(ctx context.Context) source.Result[*models.SiteSettings] {
	rec, err := r.singletons.SiteSettings(ctx)
	if err != nil {
		return source.Unavailable[*models.SiteSettings](err)
	}
	if rec == nil {
		return source.NotFound[*models.SiteSettings]()
	}
	return source.OK(r.normalizer.SiteSettings(*rec))
}

func (r *Postgres) Home(ctx context.Context) source.Result[*models.HomeContent] {
	rec, err := r.singletons.Home(ctx)
	if err != nil {
		return source.Unavailable[*models.HomeContent](err)
	}
	if rec == nil {
		return source.NotFound[*models.HomeContent]()
	}
	return source.OK(r.normalizer.Home(*rec))
}

func (r *Postgres) Projects(ctx context.Context, q source.Query) source.Result[[]models.Project] {
	skip := func(err error) {
		r.logger.Warn().Err(err).Str("collection", string(source.CollectionProjects)).Msg("skipping malformed record")
	}
	recs, err := r.projects.List(ctx, q, skip)
	if err != nil {
		return source.Unavailable[[]models.Project](err)
	}
	projects := normalize.Collect(recs, r.normalizer.Project, skip)
	return source.OK(projects)
}
