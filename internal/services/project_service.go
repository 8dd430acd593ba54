package services

import (
	"context"
	"errors"
	"fmt"

	"portfolio/internal/models"
	"portfolio/internal/source"
)

var ErrProjectNotFound = errors.New("project not found")

// RelatedLimit caps the related projects shown under a project.
const RelatedLimit = 2

// readProjects runs q on the backend, evaluating it in memory when the
// backend cannot filter server-side.
func (s *ContentService) readProjects(ctx context.Context, q source.Query) source.Result[[]models.Project] {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if s.repo.ServerSideFiltering() {
		return s.repo.Projects(ctx, q)
	}
	return source.Map(s.repo.Projects(ctx, q.Unfiltered()), q.Apply)
}

// FeaturedProjects lists featured projects. An unavailable backend or an
// empty result falls back to the static featured list.
func (s *ContentService) FeaturedProjects(ctx context.Context) []models.Project {
	return s.listProjects(ctx, source.Query{
		Filters: []source.Filter{source.Eq(source.FieldFeatured, true)},
	})
}

// Projects lists every project, with the same fallback as FeaturedProjects.
func (s *ContentService) Projects(ctx context.Context) []models.Project {
	return s.listProjects(ctx, source.Query{})
}

func (s *ContentService) listProjects(ctx context.Context, q source.Query) []models.Project {
	res := s.readProjects(ctx, q)
	switch {
	case res.Ok() && len(res.Value) > 0:
		return res.Value
	case res.Status == source.StatusUnavailable:
		s.logUnavailable(res.Err, "collection", string(source.CollectionProjects))
	default:
		s.logger.Info().Str("collection", string(source.CollectionProjects)).Msg("no projects, using static fallback")
	}
	return s.fallback.Query(q)
}

// Project resolves one project by slug. A slug the backend does not know is
// looked up in the static dataset before it is reported as not found.
func (s *ContentService) Project(ctx context.Context, slug string) (models.Project, error) {
	res := s.readProjects(ctx, source.Query{
		Filters: []source.Filter{source.Eq(source.FieldSlug, slug)},
		Limit:   1,
	})
	switch res.Status {
	case source.StatusOK:
		if len(res.Value) > 0 {
			return res.Value[0], nil
		}
	case source.StatusUnavailable:
		s.logUnavailable(res.Err, "collection", string(source.CollectionProjects))
	}

	if p, ok := s.fallback.Project(slug); ok {
		return p, nil
	}
	return models.Project{}, fmt.Errorf("%w: %q", ErrProjectNotFound, slug)
}

// Related returns up to RelatedLimit other projects in source order. A
// backend that answers, even with nothing, is authoritative; only an
// unavailable backend falls back to the static list.
func (s *ContentService) Related(ctx context.Context, current models.Project) []models.Project {
	// one extra in case the backend's id differs from current's
	res := s.readProjects(ctx, source.Query{
		Filters: []source.Filter{source.Neq(source.FieldID, current.ID)},
		Limit:   RelatedLimit + 1,
	})

	candidates := res.Value
	if !res.Ok() {
		s.logUnavailable(res.Err, "collection", string(source.CollectionProjects))
		candidates = s.fallback.Projects
	}
	return pickRelated(candidates, current)
}

func pickRelated(candidates []models.Project, current models.Project) []models.Project {
	related := make([]models.Project, 0, RelatedLimit)
	for _, p := range candidates {
		if len(related) == RelatedLimit {
			break
		}
		if p.ID == current.ID || p.Slug == current.Slug {
			continue
		}
		related = append(related, p)
	}
	return related
}
