package directus

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"

	"portfolio/internal/models"
	"portfolio/internal/normalize"
	"portfolio/internal/source"
)

// projectFields is the projection used when a query names no fields.
var projectFields = []string{
	"id", "slug", "title", "subtitle", "description",
	"link_code", "link_demo", "image", "icon", "featured",
	"client", "location", "service_type",
	"overview", "process", "results",
	"testimonial_content", "testimonial_author", "testimonial_role",
	"final_thoughts",
	"tech.technologies_id.id",
	"tech.technologies_id.name",
}

// canonical field -> Directus fields
var fieldAliases = map[string][]string{
	"links":       {"link_code", "link_demo"},
	"tech":        {"tech.technologies_id.name"},
	"testimonial": {"testimonial_content", "testimonial_author", "testimonial_role"},
}

func nativeFields(fields []string) []string {
	if len(fields) == 0 {
		return projectFields
	}
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if alias, ok := fieldAliases[f]; ok {
			out = append(out, alias...)
			continue
		}
		out = append(out, f)
	}
	return out
}

// Repository adapts a Directus instance to source.Repository.
type Repository struct {
	client     *Client
	normalizer Normalizer
	logger     zerolog.Logger
}

func NewRepository(client *Client, assets source.AssetResolver, logger zerolog.Logger) *Repository {
	return &Repository{
		client:     client,
		normalizer: Normalizer{Assets: assets},
		logger:     logger.With().Str("backend", "directus").Logger(),
	}
}

func (r *Repository) Name() string { return "directus" }

func (r *Repository) ServerSideFiltering() bool { return true }

func (r *Repository) SiteSettings(ctx context.Context) source.Result[*models.SiteSettings] {
	var rec SiteSettingsRecord
	if err := r.client.ReadSingleton(ctx, source.SingletonSiteSettings, nil, &rec); err != nil {
		return singletonFailure[*models.SiteSettings](err)
	}
	return source.OK(r.normalizer.SiteSettings(rec))
}

func (r *Repository) Home(ctx context.Context) source.Result[*models.HomeContent] {
	var rec HomeRecord
	if err := r.client.ReadSingleton(ctx, source.SingletonHome, nil, &rec); err != nil {
		return singletonFailure[*models.HomeContent](err)
	}
	return source.OK(r.normalizer.Home(rec))
}

func (r *Repository) Projects(ctx context.Context, q source.Query) source.Result[[]models.Project] {
	var raw []json.RawMessage
	if err := r.client.ReadItems(ctx, source.CollectionProjects, q, nativeFields(q.Fields), &raw); err != nil {
		return source.Unavailable[[]models.Project](err)
	}
	projects := normalize.Collect(raw, normalize.Decode(r.normalizer.Project), func(err error) {
		r.logger.Warn().Err(err).Str("collection", string(source.CollectionProjects)).Msg("skipping malformed record")
	})
	return source.OK(projects)
}

func singletonFailure[T any](err error) source.Result[T] {
	if errors.Is(err, errNoRecord) {
		return source.NotFound[T]()
	}
	return source.Unavailable[T](err)
}
