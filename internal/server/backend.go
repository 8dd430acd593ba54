package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/repositories"
	"portfolio/internal/source"
	"portfolio/internal/source/directus"
	"portfolio/internal/source/payload"
)

// NewRepository builds the repository for the configured backend. The
// returned close function releases its resources and is never nil.
//
// A Postgres backend that cannot be reached at startup is not fatal: the
// site serves the static fallback until restarted.
func NewRepository(ctx context.Context, cfg config.Config, logger zerolog.Logger) (source.Repository, func(), error) {
	noop := func() {}
	httpClient := &http.Client{Timeout: cfg.Source.Timeout}

	switch cfg.ResolveBackend() {
	case config.BackendDirectus:
		client := directus.NewClient(cfg.Directus.URL, cfg.Directus.Token, httpClient)
		assets := assetResolver(cfg, client.BaseURL(), "/assets/")
		return directus.NewRepository(client, assets, logger), noop, nil

	case config.BackendPayload:
		client := payload.NewClient(cfg.Payload.URL, cfg.Payload.APIKey, httpClient)
		assets := assetResolver(cfg, client.BaseURL(), "")
		return payload.NewRepository(client, assets, logger), noop, nil

	case config.BackendPostgres:
		pool, err := database.Connect(ctx, cfg.Database.URL, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("postgres backend unavailable, serving static content")
			return source.Disabled{}, noop, nil
		}
		// file ids in the Directus schema resolve against the Directus asset server
		assets := assetResolver(cfg, cfg.Directus.URL, "/assets/")
		return repositories.NewPostgres(pool, assets, logger), pool.Close, nil

	case config.BackendNone:
		logger.Info().Msg("no content backend configured, serving static content")
		return source.Disabled{}, noop, nil
	}
	return nil, noop, fmt.Errorf("unknown backend %q", cfg.Backend)
}

func assetResolver(cfg config.Config, backendURL, prefix string) source.AssetResolver {
	base := cfg.Assets.BaseURL
	if base == "" {
		base = backendURL
	}
	return source.AssetResolver{
		BaseURL:     base,
		Prefix:      prefix,
		Placeholder: cfg.Assets.Placeholder,
	}
}
