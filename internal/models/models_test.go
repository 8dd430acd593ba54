package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRichTextYAML(t *testing.T) {
	var doc struct {
		Plain   *RichText `yaml:"plain"`
		Mapped  *RichText `yaml:"mapped"`
		Unknown *RichText `yaml:"unknown"`
	}
	src := `
plain: "**bold**"
mapped:
  format: html
  text: <p>hi</p>
`
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))

	assert.Equal(t, Markdown("**bold**"), doc.Plain)
	assert.Equal(t, HTML("<p>hi</p>"), doc.Mapped)
	assert.Nil(t, doc.Unknown)

	err := yaml.Unmarshal([]byte("unknown:\n  format: pdf\n  text: x\n"), &doc)
	assert.Error(t, err)
}

func TestRichTextIsEmpty(t *testing.T) {
	var nilText *RichText
	assert.True(t, nilText.IsEmpty())
	assert.True(t, HTML("").IsEmpty())
	assert.True(t, Document(nil).IsEmpty())
	assert.True(t, Document([]byte("null")).IsEmpty())
	assert.False(t, Document([]byte(`{"root":{}}`)).IsEmpty())
	assert.False(t, Markdown("x").IsEmpty())
}

func TestProjectPrepare(t *testing.T) {
	p := Project{ID: "apex", Slug: "apex"}
	p.Prepare()
	_, err := uuid.Parse(p.ID)
	require.NoError(t, err)

	again := Project{ID: "7", Slug: "apex"}
	again.Prepare()
	assert.Equal(t, p.ID, again.ID)

	kept := Project{ID: p.ID, Slug: "other"}
	kept.Prepare()
	assert.Equal(t, p.ID, kept.ID)
}

func TestTechnologyPrepare(t *testing.T) {
	tech := Technology{Name: "Next.js"}
	tech.Prepare()

	assert.Equal(t, "nextjs", tech.Slug)
	_, err := uuid.Parse(tech.ID)
	assert.NoError(t, err)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "nextjs", Slugify("Next.js"))
	assert.Equal(t, "tailwind-css", Slugify(" Tailwind CSS "))
	assert.Equal(t, "ci-cd", Slugify("CI/CD"))
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "Title", Project{Title: "Title"}.Headline())
	assert.Equal(t, "Sub", Project{Title: "Title", Subtitle: "Sub"}.Headline())
	assert.True(t, Links{}.Empty())
	assert.False(t, Links{Demo: "https://x"}.Empty())
}
