package models

// HomeContent is the home page singleton. Each section is nil when the
// source did not provide it.
type HomeContent struct {
	Hero     *Hero          `json:"hero,omitempty" yaml:"hero"`
	About    *About         `json:"about,omitempty" yaml:"about"`
	Skills   *Skills        `json:"skills,omitempty" yaml:"skills"`
	Projects *ProjectsLabel `json:"projects,omitempty" yaml:"projects"`
	Contact  *Contact       `json:"contact,omitempty" yaml:"contact"`
}

type Hero struct {
	TopText     string    `json:"top_text" yaml:"top_text"`
	Headline    *RichText `json:"headline" yaml:"headline"`
	Subheadline string    `json:"subheadline" yaml:"subheadline"`
	Buttons     []Button  `json:"buttons" yaml:"buttons"`
}

type ButtonStyle string

const (
	ButtonPrimary ButtonStyle = "primary"
	ButtonOutline ButtonStyle = "outline"
)

type Button struct {
	Label string      `json:"label" yaml:"label"`
	Link  string      `json:"link" yaml:"link"`
	Style ButtonStyle `json:"style" yaml:"style"`
}

type About struct {
	Title   string    `json:"title" yaml:"title"`
	Content *RichText `json:"content" yaml:"content"`
	Stats   []Stat    `json:"stats" yaml:"stats"`
}

type Stat struct {
	Number string `json:"number" yaml:"number"`
	Label  string `json:"label" yaml:"label"`
}

type Skills struct {
	Title      string          `json:"title" yaml:"title"`
	Categories []SkillCategory `json:"categories" yaml:"categories"`
}

type SkillCategory struct {
	Category string   `json:"category" yaml:"category"`
	Items    []string `json:"items" yaml:"items"`
}

// ProjectsLabel is the heading block above the featured project list.
type ProjectsLabel struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type Contact struct {
	Title       string       `json:"title" yaml:"title"`
	Heading     string       `json:"heading" yaml:"heading"`
	Content     string       `json:"content" yaml:"content"`
	Email       string       `json:"email" yaml:"email"`
	SocialLinks []SocialLink `json:"social_links" yaml:"social_links"`
}

type SocialLink struct {
	Platform string `json:"platform" yaml:"platform"`
	URL      string `json:"url" yaml:"url"`
}
