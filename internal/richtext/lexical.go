package richtext

import (
	"encoding/json"
	"fmt"
	"html"
	"strings"
)

// Lexical text format bits.
const (
	formatBold = 1 << iota
	formatItalic
	formatStrikethrough
	formatUnderline
	formatCode
	formatSubscript
	formatSuperscript
)

type lexicalNode struct {
	Type     string          `json:"type"`
	Tag      string          `json:"tag"`
	Text     string          `json:"text"`
	Format   json.RawMessage `json:"format"`
	ListType string          `json:"listType"`
	URL      string          `json:"url"`
	Fields   *struct {
		URL    string `json:"url"`
		NewTab bool   `json:"newTab"`
	} `json:"fields"`
	Children []lexicalNode `json:"children"`
}

// formatBits reads the text format bitmask. Element nodes use a string
// alignment in the same key, which is ignored.
func (n lexicalNode) formatBits() int {
	var bits int
	if err := json.Unmarshal(n.Format, &bits); err != nil {
		return 0
	}
	return bits
}

func renderLexical(raw json.RawMessage) (string, error) {
	var doc struct {
		Root *lexicalNode `json:"root"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("decode lexical document: %w", err)
	}
	if doc.Root == nil {
		return "", fmt.Errorf("lexical document has no root")
	}
	var b strings.Builder
	writeChildren(&b, doc.Root.Children)
	return b.String(), nil
}

func writeChildren(b *strings.Builder, nodes []lexicalNode) {
	for _, n := range nodes {
		writeNode(b, n)
	}
}

func writeNode(b *strings.Builder, n lexicalNode) {
	switch n.Type {
	case "text":
		writeText(b, n)
	case "linebreak":
		b.WriteString("<br>")
	case "paragraph":
		wrap(b, "p", n.Children)
	case "heading":
		tag := n.Tag
		if len(tag) != 2 || tag[0] != 'h' || tag[1] < '1' || tag[1] > '6' {
			tag = "h2"
		}
		wrap(b, tag, n.Children)
	case "quote":
		wrap(b, "blockquote", n.Children)
	case "list":
		tag := "ul"
		if n.ListType == "number" {
			tag = "ol"
		}
		wrap(b, tag, n.Children)
	case "listitem":
		wrap(b, "li", n.Children)
	case "link", "autolink":
		url := n.URL
		if n.Fields != nil && n.Fields.URL != "" {
			url = n.Fields.URL
		}
		fmt.Fprintf(b, `<a href="%s">`, html.EscapeString(url))
		writeChildren(b, n.Children)
		b.WriteString("</a>")
	default:
		// unknown element: keep its text
		writeChildren(b, n.Children)
	}
}

func wrap(b *strings.Builder, tag string, children []lexicalNode) {
	b.WriteString("<" + tag + ">")
	writeChildren(b, children)
	b.WriteString("</" + tag + ">")
}

var textTags = []struct {
	bit int
	tag string
}{
	{formatBold, "strong"},
	{formatItalic, "em"},
	{formatStrikethrough, "s"},
	{formatUnderline, "u"},
	{formatCode, "code"},
	{formatSubscript, "sub"},
	{formatSuperscript, "sup"},
}

func writeText(b *strings.Builder, n lexicalNode) {
	bits := n.formatBits()
	for _, t := range textTags {
		if bits&t.bit != 0 {
			b.WriteString("<" + t.tag + ">")
		}
	}
	b.WriteString(html.EscapeString(n.Text))
	for i := len(textTags) - 1; i >= 0; i-- {
		if bits&textTags[i].bit != 0 {
			b.WriteString("</" + textTags[i].tag + ">")
		}
	}
}
