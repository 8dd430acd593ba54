package payload

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"portfolio/internal/models"
	"portfolio/internal/normalize"
	"portfolio/internal/source"
)

// Repository adapts a Payload instance to source.Repository.
type Repository struct {
	client     *Client
	normalizer Normalizer
	logger     zerolog.Logger
}

func NewRepository(client *Client, assets source.AssetResolver, logger zerolog.Logger) *Repository {
	return &Repository{
		client:     client,
		normalizer: Normalizer{Assets: assets},
		logger:     logger.With().Str("backend", "payload").Logger(),
	}
}

func (r *Repository) Name() string { return "payload" }

func (r *Repository) ServerSideFiltering() bool { return true }

func (r *Repository) SiteSettings(ctx context.Context) source.Result[*models.SiteSettings] {
	var doc SiteSettingsDoc
	if err := r.client.ReadGlobal(ctx, source.SingletonSiteSettings, &doc); err != nil {
		return globalFailure[*models.SiteSettings](err)
	}
	return source.OK(r.normalizer.SiteSettings(doc))
}

func (r *Repository) Home(ctx context.Context) source.Result[*models.HomeContent] {
	var doc HomeDoc
	if err := r.client.ReadGlobal(ctx, source.SingletonHome, &doc); err != nil {
		return globalFailure[*models.HomeContent](err)
	}
	return source.OK(r.normalizer.Home(doc))
}

func (r *Repository) Projects(ctx context.Context, q source.Query) source.Result[[]models.Project] {
	var raw []json.RawMessage
	if err := r.client.Find(ctx, source.CollectionProjects, q, &raw); err != nil {
		return source.Unavailable[[]models.Project](err)
	}
	projects := normalize.Collect(raw, normalize.Decode(r.normalizer.Project), func(err error) {
		r.logger.Warn().Err(err).Str("collection", string(source.CollectionProjects)).Msg("skipping malformed record")
	})
	return source.OK(projects)
}

func globalFailure[T any](err error) source.Result[T] {
	if errors.Is(err, errNoRecord) {
		return source.NotFound[T]()
	}
	return source.Unavailable[T](err)
}
