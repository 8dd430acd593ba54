package models

import (
	"strings"

	"github.com/google/uuid"
)

// Project is the backend-agnostic project record. Optional text fields are
// empty when absent at the source.
type Project struct {
	ID            string       `json:"id" yaml:"id"`
	Slug          string       `json:"slug" yaml:"slug"`
	Title         string       `json:"title" yaml:"title"`
	Subtitle      string       `json:"subtitle,omitempty" yaml:"subtitle"`
	Description   string       `json:"description" yaml:"description"`
	Tech          []string     `json:"tech" yaml:"tech"` // order is not guaranteed by relational backends
	Links         Links        `json:"links" yaml:"links"`
	Image         string       `json:"image" yaml:"image"`
	Icon          string       `json:"icon,omitempty" yaml:"icon"`
	Featured      bool         `json:"featured" yaml:"featured"`
	Client        string       `json:"client,omitempty" yaml:"client"`
	Location      string       `json:"location,omitempty" yaml:"location"`
	ServiceType   string       `json:"service_type,omitempty" yaml:"service_type"`
	Overview      *RichText    `json:"overview,omitempty" yaml:"overview"`
	Process       []string     `json:"process,omitempty" yaml:"process"`
	Results       []Metric     `json:"results,omitempty" yaml:"results"`
	Testimonial   *Testimonial `json:"testimonial,omitempty" yaml:"testimonial"`
	FinalThoughts string       `json:"final_thoughts,omitempty" yaml:"final_thoughts"`
}

type Links struct {
	Code string `json:"code,omitempty" yaml:"code"`
	Demo string `json:"demo,omitempty" yaml:"demo"`
}

func (l Links) Empty() bool {
	return l.Code == "" && l.Demo == ""
}

type Metric struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

type Testimonial struct {
	Content string `json:"content" yaml:"content"`
	Author  string `json:"author" yaml:"author"`
	Role    string `json:"role" yaml:"role"`
}

// Headline is the subtitle when set, the title otherwise.
func (p Project) Headline() string {
	if p.Subtitle != "" {
		return p.Subtitle
	}
	return p.Title
}

// ProjectNamespace seeds deterministic row ids for projects provisioned from
// the static dataset, so repeated seeding stays idempotent.
var ProjectNamespace = uuid.MustParse("6f1c7e0e-4d38-4b0c-9a57-2f4f3c1c8e21")

// Prepare fills the row id used by relational storage.
func (p *Project) Prepare() {
	if _, err := uuid.Parse(p.ID); err != nil {
		p.ID = uuid.NewSHA1(ProjectNamespace, []byte(p.Slug)).String()
	}
}

// Technology is a named tech tag referenced by projects through a
// many-to-many relation in relational backends.
type Technology struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Slug string `json:"slug" yaml:"slug"`
	Icon string `json:"icon,omitempty" yaml:"icon"`
}

var slugReplacer = strings.NewReplacer(".", "", " ", "-", "/", "-")

// Prepare derives the slug from the name when it is missing.
func (t *Technology) Prepare() {
	if t.Slug == "" {
		t.Slug = Slugify(t.Name)
	}
	if _, err := uuid.Parse(t.ID); err != nil {
		t.ID = uuid.NewSHA1(ProjectNamespace, []byte("technology:"+t.Slug)).String()
	}
}

// Slugify lowercases s and turns separators into dashes ("Next.js" -> "nextjs").
func Slugify(s string) string {
	return slugReplacer.Replace(strings.ToLower(strings.TrimSpace(s)))
}
