package source

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"portfolio/internal/models"
)

type Collection string

const (
	CollectionProjects     Collection = "projects"
	CollectionTechnologies Collection = "technologies"
)

func (c Collection) Valid() bool {
	return c == CollectionProjects || c == CollectionTechnologies
}

type Singleton string

const (
	SingletonHome         Singleton = "home"
	SingletonSiteSettings Singleton = "site_settings"
)

func (s Singleton) Valid() bool {
	return s == SingletonHome || s == SingletonSiteSettings
}

// Canonical project field names usable in filters, sorts and projections.
// Adapters translate them to their native names.
const (
	FieldID       = "id"
	FieldSlug     = "slug"
	FieldTitle    = "title"
	FieldFeatured = "featured"
)

var filterableFields = []string{FieldID, FieldSlug, FieldFeatured}

var sortableFields = []string{FieldID, FieldSlug, FieldTitle}

type Op string

const (
	OpEq  Op = "eq"
	OpNeq Op = "neq"
)

// Filter is an equality or negation predicate on one field.
type Filter struct {
	Field string
	Op    Op
	Value any
}

func Eq(field string, value any) Filter {
	return Filter{Field: field, Op: OpEq, Value: value}
}

func Neq(field string, value any) Filter {
	return Filter{Field: field, Op: OpNeq, Value: value}
}

func (f Filter) String() string {
	return fmt.Sprintf("%s %s %v", f.Field, f.Op, f.Value)
}

// Match evaluates f against a canonical project.
func (f Filter) Match(p models.Project) bool {
	var eq bool
	switch f.Field {
	case FieldID:
		eq = p.ID == fmt.Sprint(f.Value)
	case FieldSlug:
		eq = p.Slug == fmt.Sprint(f.Value)
	case FieldFeatured:
		want, ok := f.Value.(bool)
		eq = ok && p.Featured == want
	}
	if f.Op == OpNeq {
		return !eq
	}
	return eq
}

// Unbounded is the Limit value meaning "no limit".
const Unbounded = 0

// Query is a collection read. Sort entries are field names, prefixed with "-"
// for descending order.
type Query struct {
	Filters []Filter
	Fields  []string
	Sort    []string
	Limit   int
}

func (q Query) Validate() error {
	if q.Limit < 0 {
		return fmt.Errorf("%w: negative limit %d", ErrInvalidQuery, q.Limit)
	}
	for _, f := range q.Filters {
		if !slices.Contains(filterableFields, f.Field) {
			return fmt.Errorf("%w: cannot filter on %q", ErrInvalidQuery, f.Field)
		}
		if f.Op != OpEq && f.Op != OpNeq {
			return fmt.Errorf("%w: unknown operator %q", ErrInvalidQuery, f.Op)
		}
	}
	for _, s := range q.Sort {
		if !slices.Contains(sortableFields, strings.TrimPrefix(s, "-")) {
			return fmt.Errorf("%w: cannot sort on %q", ErrInvalidQuery, s)
		}
	}
	return nil
}

// Unfiltered drops filters and limit, keeping projection and sort. Used to
// fetch from a backend that cannot filter server-side before Apply.
func (q Query) Unfiltered() Query {
	return Query{Fields: q.Fields, Sort: q.Sort}
}

// Apply filters, sorts and limits projects in memory. Backends that cannot
// filter server-side go through the same predicate so both paths agree.
func (q Query) Apply(projects []models.Project) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if q.match(p) {
			out = append(out, p)
		}
	}
	if len(q.Sort) > 0 {
		slices.SortStableFunc(out, q.compare)
	}
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

func (q Query) match(p models.Project) bool {
	for _, f := range q.Filters {
		if !f.Match(p) {
			return false
		}
	}
	return true
}

func (q Query) compare(a, b models.Project) int {
	for _, s := range q.Sort {
		field, desc := strings.CutPrefix(s, "-")
		var c int
		switch field {
		case FieldID:
			c = cmp.Compare(a.ID, b.ID)
		case FieldSlug:
			c = cmp.Compare(a.Slug, b.Slug)
		case FieldTitle:
			c = cmp.Compare(a.Title, b.Title)
		}
		if desc {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return 0
}
