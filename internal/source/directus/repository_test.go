package directus

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/models"
	"portfolio/internal/source"
)

const projectsJSON = `{"data": [
  {
    "id": 1,
    "slug": "arcade",
    "title": "Arcade",
    "description": "AI agent marketplace",
    "tech": [{"technologies_id": {"name": "React"}}, {"technologies_id": {"name": ""}}],
    "image": "f3b1",
    "featured": true,
    "overview": "<p>Rentals</p>",
    "process": [{"step": "Contracts"}, {"step": ""}],
    "testimonial_content": "Secure",
    "testimonial_author": null
  },
  {"id": 2, "slug": null, "title": "No slug"}
]}`

func newTestRepository(t *testing.T, handler http.HandlerFunc) *Repository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	assets := source.AssetResolver{BaseURL: srv.URL, Prefix: "/assets/"}
	return NewRepository(NewClient(srv.URL, "secret", srv.Client()), assets, zerolog.Nop())
}

func TestProjectsNormalizesAndSkipsMalformed(t *testing.T) {
	var got url.Values
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/projects", r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		got = r.URL.Query()
		_, _ = w.Write([]byte(projectsJSON))
	})

	q := source.Query{
		Filters: []source.Filter{source.Eq(source.FieldFeatured, true), source.Neq(source.FieldID, "9")},
		Sort:    []string{"-" + source.FieldTitle},
		Limit:   3,
	}
	res := repo.Projects(context.Background(), q)

	require.True(t, res.Ok())
	require.Len(t, res.Value, 1)
	p := res.Value[0]
	assert.Equal(t, "1", p.ID)
	assert.Equal(t, []string{"React"}, p.Tech)
	assert.Equal(t, []string{"Contracts"}, p.Process)
	assert.Nil(t, p.Testimonial)
	assert.Equal(t, models.HTML("<p>Rentals</p>"), p.Overview)
	assert.Contains(t, p.Image, "/assets/f3b1")

	assert.Equal(t, "true", got.Get("filter[featured][_eq]"))
	assert.Equal(t, "9", got.Get("filter[id][_neq]"))
	assert.Equal(t, "-title", got.Get("sort"))
	assert.Equal(t, "3", got.Get("limit"))
	assert.Contains(t, got.Get("fields"), "tech.technologies_id.name")
}

func TestProjectsSkipsWronglyTypedRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": [
			{"id": 1, "slug": "arcade", "title": "Arcade", "featured": true},
			{"id": 2, "slug": 42, "title": "Numeric slug"},
			{"id": 3, "slug": "ledger", "title": "Ledger", "tech": "React"}
		]}`))
	}))
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	repo := NewRepository(NewClient(srv.URL, "", srv.Client()), source.AssetResolver{BaseURL: srv.URL}, zerolog.New(&logs))

	res := repo.Projects(context.Background(), source.Query{})

	require.True(t, res.Ok())
	require.Len(t, res.Value, 1)
	assert.Equal(t, "arcade", res.Value[0].Slug)
	assert.Equal(t, 2, strings.Count(logs.String(), "skipping malformed record"))
}

func TestProjectsNonListDataIsUnavailable(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data": {"id": 1}}`))
	})

	res := repo.Projects(context.Background(), source.Query{})

	assert.Equal(t, source.StatusUnavailable, res.Status)
}

func TestProjectsUnboundedLimit(t *testing.T) {
	var limit string
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		limit = r.URL.Query().Get("limit")
		_, _ = w.Write([]byte(`{"data": []}`))
	})

	res := repo.Projects(context.Background(), source.Query{Fields: []string{"slug", "links"}})

	require.True(t, res.Ok())
	assert.Empty(t, res.Value)
	assert.Equal(t, "-1", limit)
}

func TestProjectsFailuresAreUnavailable(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `{"errors": [{"message": "boom"}]}`, wantErr: source.ErrRequestFailed},
		{name: "forbidden", status: http.StatusForbidden, body: `{}`, wantErr: source.ErrRequestFailed},
		{name: "garbage", status: http.StatusOK, body: `not json`, wantErr: source.ErrRequestFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			res := repo.Projects(context.Background(), source.Query{})

			assert.Equal(t, source.StatusUnavailable, res.Status)
			assert.ErrorIs(t, res.Err, tt.wantErr)
		})
	}
}

func TestProjectsRejectsInvalidQuery(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	res := repo.Projects(context.Background(), source.Query{Filters: []source.Filter{source.Eq("client", "x")}})

	assert.Equal(t, source.StatusUnavailable, res.Status)
	assert.ErrorIs(t, res.Err, source.ErrInvalidQuery)
}

func TestSingletonStatuses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   source.Status
	}{
		{name: "found", status: http.StatusOK, body: `{"data": {"title": "Site", "nav_items": [{"label": "about", "href": "#about"}]}}`, want: source.StatusOK},
		{name: "never saved", status: http.StatusOK, body: `{"data": {}}`, want: source.StatusNotFound},
		{name: "null data", status: http.StatusOK, body: `{"data": null}`, want: source.StatusNotFound},
		{name: "forbidden", status: http.StatusForbidden, body: `{"errors": [{"message": "forbidden"}]}`, want: source.StatusNotFound},
		{name: "missing", status: http.StatusNotFound, body: ``, want: source.StatusNotFound},
		{name: "down", status: http.StatusBadGateway, body: ``, want: source.StatusUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/items/site_settings", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			res := repo.SiteSettings(context.Background())

			assert.Equal(t, tt.want, res.Status)
			if tt.want == source.StatusOK {
				assert.Equal(t, "Site", res.Value.Title)
				assert.Len(t, res.Value.NavItems, 1)
			}
		})
	}
}

func TestHomeSplitsSections(t *testing.T) {
	repo := newTestRepository(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/items/home", r.URL.Path)
		_, _ = w.Write([]byte(`{"data": {
			"hero_top_text": "Builder",
			"hero_headline": "Hello <em>there</em>",
			"skills_categories": [{"category": "Chain", "items": ["Solidity", {"technologies_id": {"name": "Foundry"}}]}],
			"contact_email": null
		}}`))
	})

	res := repo.Home(context.Background())

	require.True(t, res.Ok())
	h := res.Value
	require.NotNil(t, h.Hero)
	assert.Equal(t, "Builder", h.Hero.TopText)
	assert.Equal(t, models.HTML("Hello <em>there</em>"), h.Hero.Headline)
	require.NotNil(t, h.Skills)
	assert.Equal(t, []string{"Solidity", "Foundry"}, h.Skills.Categories[0].Items)
	assert.Nil(t, h.About)
	assert.Nil(t, h.Projects)
	assert.Nil(t, h.Contact)
}

func TestUnreachableBackendIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	repo := NewRepository(NewClient(base, "", nil), source.AssetResolver{}, zerolog.Nop())

	res := repo.Home(context.Background())
	assert.Equal(t, source.StatusUnavailable, res.Status)
	assert.ErrorIs(t, res.Err, source.ErrRequestFailed)
}
