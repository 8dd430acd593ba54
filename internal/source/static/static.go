// Package static holds the fallback dataset shipped with the binary. It is
// the single definition of every content default.
package static

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"portfolio/internal/models"
	"portfolio/internal/normalize"
	"portfolio/internal/source"
)

//go:embed dataset.yaml
var datasetYAML []byte

// Dataset is the fallback content in canonical shape.
type Dataset struct {
	Site         models.SiteSettings `yaml:"site"`
	Home         models.HomeContent  `yaml:"home"`
	Projects     []models.Project    `yaml:"projects"`
	Technologies []models.Technology `yaml:"technologies"`
}

// Load decodes the embedded dataset.
func Load() (*Dataset, error) {
	return Parse(datasetYAML)
}

// MustLoad is Load for package initialisation and tests.
func MustLoad() *Dataset {
	d, err := Load()
	if err != nil {
		panic(err)
	}
	return d
}

// Parse decodes a dataset document and checks it is complete: every home
// section must be present and every project must carry an id and a unique
// slug.
func Parse(data []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to decode static dataset: %w", err)
	}
	h := d.Home
	if h.Hero == nil || h.About == nil || h.Skills == nil || h.Projects == nil || h.Contact == nil {
		return nil, fmt.Errorf("static dataset: every home section needs a default")
	}
	seen := make(map[string]bool, len(d.Projects))
	for i, p := range d.Projects {
		if err := normalize.Require(p); err != nil {
			return nil, fmt.Errorf("static dataset project %d: %w", i, err)
		}
		if seen[p.Slug] {
			return nil, fmt.Errorf("static dataset: duplicate project slug %q", p.Slug)
		}
		seen[p.Slug] = true
		d.Projects[i] = normalize.Canonical(p)
	}
	for i := range d.Technologies {
		d.Technologies[i].Prepare()
	}
	return &d, nil
}

// Query evaluates q in memory. The dataset has no server-side filtering, so
// this is the client-side path of source.Query.
func (d *Dataset) Query(q source.Query) []models.Project {
	return q.Apply(d.Projects)
}

// Project looks a project up by slug.
func (d *Dataset) Project(slug string) (models.Project, bool) {
	i := slices.IndexFunc(d.Projects, func(p models.Project) bool { return p.Slug == slug })
	if i < 0 {
		return models.Project{}, false
	}
	return d.Projects[i], true
}
