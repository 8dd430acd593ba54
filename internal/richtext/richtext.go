// Package richtext turns models.RichText values into HTML that is safe to
// inject into a page.
package richtext

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"portfolio/internal/models"
)

// Renderer renders every rich text format through one sanitizing policy.
type Renderer struct {
	policy   *bluemonday.Policy
	markdown goldmark.Markdown
}

func NewRenderer() *Renderer {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("span", "code", "pre")
	return &Renderer{
		policy:   policy,
		markdown: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Render returns sanitized HTML for rt. Empty or undecodable content renders
// as the empty string.
func (r *Renderer) Render(rt *models.RichText) template.HTML {
	html, err := r.render(rt)
	if err != nil {
		return ""
	}
	return template.HTML(r.policy.Sanitize(html))
}

func (r *Renderer) render(rt *models.RichText) (string, error) {
	if rt.IsEmpty() {
		return "", nil
	}
	switch rt.Format {
	case models.RichTextMarkdown:
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(rt.Text), &buf); err != nil {
			return "", err
		}
		return buf.String(), nil
	case models.RichTextDocument:
		return renderLexical(rt.Document)
	default:
		return rt.Text, nil
	}
}
