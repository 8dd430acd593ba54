// Package web holds the HTML views and their static assets.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"

	"portfolio/internal/richtext"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names.
const (
	HomeTemplate     = "home.html"
	ProjectsTemplate = "projects.html"
	ProjectTemplate  = "project.html"
	NotFoundTemplate = "notfound.html"
)

// Static returns the asset tree served under /static.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Templates parses every view with rich text rendered through renderer.
func Templates(renderer *richtext.Renderer) (*template.Template, error) {
	return template.New("portfolio").Funcs(Funcs(renderer)).ParseFS(templateFS, "templates/*.html")
}

func Funcs(renderer *richtext.Renderer) template.FuncMap {
	return template.FuncMap{
		"richtext":    renderer.Render,
		"techSummary": SummarizeTech,
		"navHref":     NavHref,
	}
}

// TechSummary splits a tech list into the tags shown on a card and the
// number left out.
type TechSummary struct {
	Shown  []string
	Hidden int
}

func SummarizeTech(tech []string, limit int) TechSummary {
	if len(tech) <= limit {
		return TechSummary{Shown: tech}
	}
	return TechSummary{Shown: tech[:limit], Hidden: len(tech) - limit}
}

// NavHref anchors in-page links to the home page so they work from every
// page.
func NavHref(href string) string {
	if strings.HasPrefix(href, "#") {
		return "/" + href
	}
	return href
}
