package models

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

type RichTextFormat string

const (
	RichTextHTML     RichTextFormat = "html"
	RichTextMarkdown RichTextFormat = "markdown"
	// RichTextDocument is a structured editor document (Lexical JSON).
	RichTextDocument RichTextFormat = "document"
)

// RichText is renderable content passed through from the source untouched.
// Rendering and sanitizing happen in the presentation layer.
type RichText struct {
	Format   RichTextFormat  `json:"format"`
	Text     string          `json:"text,omitempty"`
	Document json.RawMessage `json:"document,omitempty"`
}

func HTML(s string) *RichText {
	return &RichText{Format: RichTextHTML, Text: s}
}

func Markdown(s string) *RichText {
	return &RichText{Format: RichTextMarkdown, Text: s}
}

func Document(raw json.RawMessage) *RichText {
	return &RichText{Format: RichTextDocument, Document: raw}
}

// IsEmpty reports whether r carries nothing to render. A nil receiver is empty.
func (r *RichText) IsEmpty() bool {
	if r == nil {
		return true
	}
	if r.Format == RichTextDocument {
		return len(r.Document) == 0 || string(r.Document) == "null"
	}
	return r.Text == ""
}

// UnmarshalYAML accepts a bare scalar as markdown, or a mapping with format
// and text keys.
func (r *RichText) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*r = RichText{Format: RichTextMarkdown, Text: value.Value}
		return nil
	}
	var aux struct {
		Format RichTextFormat `yaml:"format"`
		Text   string         `yaml:"text"`
	}
	if err := value.Decode(&aux); err != nil {
		return fmt.Errorf("decode rich text: %w", err)
	}
	switch aux.Format {
	case RichTextHTML, RichTextMarkdown:
	case "":
		aux.Format = RichTextMarkdown
	default:
		return fmt.Errorf("unsupported rich text format %q", aux.Format)
	}
	*r = RichText{Format: aux.Format, Text: aux.Text}
	return nil
}
