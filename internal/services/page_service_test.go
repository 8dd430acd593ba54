package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/source"
	"portfolio/internal/source/static"
)

func TestHomePageWithoutBackend(t *testing.T) {
	pages := NewPageService(newService(t, source.Disabled{}))
	dataset := static.MustLoad()

	page, err := pages.HomePage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, dataset.Site, page.Site)
	assert.Equal(t, dataset.Home, page.Home)
	assert.Len(t, page.Projects, len(dataset.Query(source.Query{Filters: []source.Filter{source.Eq(source.FieldFeatured, true)}})))
}

func TestProjectPage(t *testing.T) {
	repo := unavailable()
	repo.filtering = true
	repo.projects = source.OK(backendProjects)
	pages := NewPageService(newService(t, repo))

	page, err := pages.ProjectPage(context.Background(), "three")

	require.NoError(t, err)
	assert.Equal(t, "Three", page.Project.Title)
	assert.Equal(t, []string{"one", "two"}, projectSlugs(page.Related))
	assert.NotEmpty(t, page.Site.Title)
}

func TestProjectPageNotFound(t *testing.T) {
	pages := NewPageService(newService(t, source.Disabled{}))

	_, err := pages.ProjectPage(context.Background(), "nope")

	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestProjectsPage(t *testing.T) {
	repo := unavailable()
	repo.filtering = true
	repo.projects = source.OK(backendProjects)
	pages := NewPageService(newService(t, repo))

	page, err := pages.ProjectsPage(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three", "four"}, projectSlugs(page.Projects))
}

func TestCancelledRequestGetsNoPage(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pages := NewPageService(newService(t, source.Disabled{}))

	_, err := pages.HomePage(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = pages.ProjectsPage(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
