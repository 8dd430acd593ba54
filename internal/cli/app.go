package cli

import (
	"context"

	"portfolio/internal/richtext"
	"portfolio/internal/server"
	"portfolio/internal/services"
	"portfolio/internal/source/static"
)

// buildPages wires the configured backend behind the fallback resolver.
func buildPages(ctx context.Context) (*services.PageService, *richtext.Renderer, func(), error) {
	dataset, err := static.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	repo, closeRepo, err := server.NewRepository(ctx, appConfig, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	content := services.NewContentService(repo, dataset, appConfig.Source.Timeout, logger)
	return services.NewPageService(content), richtext.NewRenderer(), closeRepo, nil
}
