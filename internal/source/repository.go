package source

import (
	"context"

	"portfolio/internal/models"
)

// Repository is the normalized read surface of one backend. Implementations
// adapt and normalize their native records before returning them; they
// never return errors outside the Result.
type Repository interface {
	// Name identifies the backend in logs.
	Name() string
	// ServerSideFiltering reports whether Projects honours Query.Filters and
	// Query.Limit itself.
	ServerSideFiltering() bool
	SiteSettings(ctx context.Context) Result[*models.SiteSettings]
	Home(ctx context.Context) Result[*models.HomeContent]
	Projects(ctx context.Context, q Query) Result[[]models.Project]
}

// Disabled is the repository used when no backend is configured.
type Disabled struct{}

func (Disabled) Name() string { return "none" }

func (Disabled) ServerSideFiltering() bool { return false }

func (Disabled) SiteSettings(context.Context) Result[*models.SiteSettings] {
	return Unavailable[*models.SiteSettings](ErrNotConfigured)
}

func (Disabled) Home(context.Context) Result[*models.HomeContent] {
	return Unavailable[*models.HomeContent](ErrNotConfigured)
}

func (Disabled) Projects(context.Context, Query) Result[[]models.Project] {
	return Unavailable[[]models.Project](ErrNotConfigured)
}
