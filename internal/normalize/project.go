package normalize

import (
	"encoding/json"
	"errors"
	"fmt"

	"portfolio/internal/models"
)

// ErrMalformed marks a record that cannot become a canonical entity.
var ErrMalformed = errors.New("malformed record")

// Require checks the fields every project must carry.
func Require(p models.Project) error {
	switch {
	case p.ID == "":
		return fmt.Errorf("%w: project %q has no id", ErrMalformed, p.Slug)
	case p.Slug == "":
		return fmt.Errorf("%w: project %q has no slug", ErrMalformed, p.ID)
	}
	return nil
}

// Canonical cleans a project that is already in canonical shape: empty tech
// names and process steps are dropped, and a testimonial without content or
// author is removed. A record that needs no cleanup is returned unchanged.
func Canonical(p models.Project) models.Project {
	p.Tech = dropEmpty(p.Tech)
	p.Process = dropEmpty(p.Process)
	if p.Testimonial != nil && (p.Testimonial.Content == "" || p.Testimonial.Author == "") {
		p.Testimonial = nil
	}
	if p.Overview.IsEmpty() {
		p.Overview = nil
	}
	return p
}

func dropEmpty(s []string) []string {
	for i, v := range s {
		if v == "" {
			out := append([]string(nil), s[:i]...)
			for _, rest := range s[i+1:] {
				if rest != "" {
					out = append(out, rest)
				}
			}
			return out
		}
	}
	return s
}

// Collect converts native records with fn, skipping the ones fn rejects.
// skip is called for every rejected record and may be nil.
func Collect[R any](records []R, fn func(R) (models.Project, error), skip func(error)) []models.Project {
	out := make([]models.Project, 0, len(records))
	for _, r := range records {
		p, err := fn(r)
		if err == nil {
			err = Require(p)
		}
		if err != nil {
			if skip != nil {
				skip(err)
			}
			continue
		}
		out = append(out, Canonical(p))
	}
	return out
}

// Decode lifts a record normalizer to raw JSON elements. A wrongly typed
// field fails only its own element, as ErrMalformed.
func Decode[R any](fn func(R) (models.Project, error)) func(json.RawMessage) (models.Project, error) {
	return func(raw json.RawMessage) (models.Project, error) {
		var rec R
		if err := json.Unmarshal(raw, &rec); err != nil {
			return models.Project{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return fn(rec)
	}
}

// Testimonial builds a testimonial only when both content and author exist.
func Testimonial(content, author, role string) *models.Testimonial {
	if content == "" || author == "" {
		return nil
	}
	return &models.Testimonial{Content: content, Author: author, Role: role}
}
