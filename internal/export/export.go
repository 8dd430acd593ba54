// Package export writes the site as static HTML files.
package export

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"portfolio/internal/services"
	"portfolio/internal/web"
)

type Exporter struct {
	pages  *services.PageService
	tmpl   *template.Template
	logger zerolog.Logger
}

func NewExporter(pages *services.PageService, tmpl *template.Template, logger zerolog.Logger) *Exporter {
	return &Exporter{
		pages:  pages,
		tmpl:   tmpl,
		logger: logger,
	}
}

// Run renders every page under dir, one index.html per route, and copies
// the static assets next to them. It returns the number of pages written.
func (e *Exporter) Run(ctx context.Context, dir string) (int, error) {
	written := 0

	home, err := e.pages.HomePage(ctx)
	if err != nil {
		return written, err
	}
	if err := e.write(dir, "index.html", web.HomeTemplate, home); err != nil {
		return written, err
	}
	written++

	list, err := e.pages.ProjectsPage(ctx)
	if err != nil {
		return written, err
	}
	if err := e.write(dir, filepath.Join("projects", "index.html"), web.ProjectsTemplate, list); err != nil {
		return written, err
	}
	written++

	for _, p := range list.Projects {
		page, err := e.pages.ProjectPage(ctx, p.Slug)
		if err != nil {
			return written, fmt.Errorf("project %q: %w", p.Slug, err)
		}
		if err := e.write(dir, filepath.Join("projects", p.Slug, "index.html"), web.ProjectTemplate, page); err != nil {
			return written, err
		}
		written++
	}

	notFound := map[string]any{"Site": list.Site}
	if err := e.write(dir, "404.html", web.NotFoundTemplate, notFound); err != nil {
		return written, err
	}
	written++

	if err := copyFS(filepath.Join(dir, "static"), web.Static()); err != nil {
		return written, fmt.Errorf("failed to copy static assets: %w", err)
	}
	return written, nil
}

func (e *Exporter) write(dir, name, tmpl string, data any) error {
	var buf bytes.Buffer
	if err := e.tmpl.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	e.logger.Debug().Str("path", path).Msg("page written")
	return nil
}

func copyFS(dst string, src fs.FS) error {
	return fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		target := filepath.Join(dst, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(target, data, 0o644)
	})
}
