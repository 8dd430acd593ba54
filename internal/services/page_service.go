package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"portfolio/internal/models"
)

// HomePage is everything the home page renders.
type HomePage struct {
	Site     models.SiteSettings `json:"site"`
	Home     models.HomeContent  `json:"home"`
	Projects []models.Project    `json:"projects"`
}

// ProjectPage is a project with its related projects.
type ProjectPage struct {
	Site    models.SiteSettings `json:"site"`
	Project models.Project      `json:"project"`
	Related []models.Project    `json:"related"`
}

type ProjectsPage struct {
	Site     models.SiteSettings `json:"site"`
	Projects []models.Project    `json:"projects"`
}

// PageService assembles page view models. Reads of one page start together
// and resolve independently: a failed read falls back without holding up
// the others.
type PageService struct {
	content *ContentService
}

func NewPageService(content *ContentService) *PageService {
	return &PageService{content: content}
}

func (s *PageService) Content() *ContentService {
	return s.content
}

func (s *PageService) HomePage(ctx context.Context) (HomePage, error) {
	var page HomePage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Site = s.content.SiteSettings(gctx)
		return nil
	})
	g.Go(func() error {
		page.Home = s.content.Home(gctx)
		return nil
	})
	g.Go(func() error {
		page.Projects = s.content.FeaturedProjects(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return HomePage{}, err
	}
	// an abandoned request gets no page
	if err := ctx.Err(); err != nil {
		return HomePage{}, err
	}
	return page, nil
}

// ProjectPage resolves the project, then its related projects. Site settings
// load alongside. A project that exists nowhere yields ErrProjectNotFound.
func (s *PageService) ProjectPage(ctx context.Context, slug string) (ProjectPage, error) {
	var page ProjectPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Site = s.content.SiteSettings(gctx)
		return nil
	})
	g.Go(func() error {
		project, err := s.content.Project(gctx, slug)
		if err != nil {
			return err
		}
		page.Project = project
		page.Related = s.content.Related(gctx, project)
		return nil
	})
	if err := g.Wait(); err != nil {
		return ProjectPage{}, err
	}
	if err := ctx.Err(); err != nil {
		return ProjectPage{}, err
	}
	return page, nil
}

func (s *PageService) ProjectsPage(ctx context.Context) (ProjectsPage, error) {
	var page ProjectsPage
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		page.Site = s.content.SiteSettings(gctx)
		return nil
	})
	g.Go(func() error {
		page.Projects = s.content.Projects(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return ProjectsPage{}, err
	}
	if err := ctx.Err(); err != nil {
		return ProjectsPage{}, err
	}
	return page, nil
}
