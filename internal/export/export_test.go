package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/richtext"
	"portfolio/internal/services"
	"portfolio/internal/source"
	"portfolio/internal/source/static"
	"portfolio/internal/web"
)

func TestRunWritesEveryPage(t *testing.T) {
	dataset := static.MustLoad()
	content := services.NewContentService(source.Disabled{}, dataset, time.Second, zerolog.Nop())
	tmpl, err := web.Templates(richtext.NewRenderer())
	require.NoError(t, err)

	dir := t.TempDir()
	n, err := NewExporter(services.NewPageService(content), tmpl, zerolog.Nop()).Run(context.Background(), dir)
	require.NoError(t, err)

	// home, list, one per project and the 404 page
	assert.Equal(t, len(dataset.Projects)+3, n)

	files := []string{"index.html", "404.html", filepath.Join("projects", "index.html"), filepath.Join("static", "site.css")}
	for _, p := range dataset.Projects {
		files = append(files, filepath.Join("projects", p.Slug, "index.html"))
	}
	for _, f := range files {
		_, err := os.Stat(filepath.Join(dir, f))
		assert.NoError(t, err, f)
	}

	page, err := os.ReadFile(filepath.Join(dir, "projects", "arcade", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "AI Agent Marketplace")
}
