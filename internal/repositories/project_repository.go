package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/models"
	"portfolio/internal/normalize"
	"portfolio/internal/source"
	"portfolio/internal/source/directus"
)

// ProjectRepository reads and writes the projects table of the Directus
// schema. Rows come back in the same shape the Directus REST API returns.
type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

// canonical field -> column
var projectColumns = map[string]string{
	source.FieldID:       "p.id::text",
	source.FieldSlug:     "p.slug",
	source.FieldTitle:    "p.title",
	source.FieldFeatured: "p.featured",
}

const selectProjects = `
	SELECT
		p.id::text, p.slug, p.title, p.subtitle, p.description,
		p.link_code, p.link_demo, p.image, p.icon, p.featured,
		p.client, p.location, p.service_type, p.overview,
		p.process, p.results,
		p.testimonial_content, p.testimonial_author, p.testimonial_role,
		p.final_thoughts,
		COALESCE((
			SELECT json_agg(json_build_object(
				'id', pt.id,
				'technologies_id', json_build_object('id', t.id, 'name', t.name)
			) ORDER BY pt.id)
			FROM projects_technologies pt
			JOIN technologies t ON t.id = pt.technologies_id
			WHERE pt.projects_id = p.id
		), '[]'::json) AS tech
	FROM projects p`

// List runs q with filters, sort and limit translated to SQL. Rows whose JSON
// columns do not decode are passed to skip and left out.
func (r *ProjectRepository) List(ctx context.Context, q source.Query, skip func(error)) ([]directus.ProjectRecord, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	sql, args := buildProjectQuery(q)

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []directus.ProjectRecord
	for rows.Next() {
		rec, err := scanProject(rows)
		if errors.Is(err, normalize.ErrMalformed) {
			if skip != nil {
				skip(err)
			}
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func buildProjectQuery(q source.Query) (string, []any) {
	var (
		b     strings.Builder
		args  []any
		where []string
	)
	b.WriteString(selectProjects)
	for _, f := range q.Filters {
		op := "="
		if f.Op == source.OpNeq {
			op = "IS DISTINCT FROM"
		}
		args = append(args, f.Value)
		where = append(where, fmt.Sprintf("%s %s $%d", projectColumns[f.Field], op, len(args)))
	}
	if len(where) > 0 {
		b.WriteString("\n\tWHERE " + strings.Join(where, " AND "))
	}

	order := []string{"p.sort NULLS LAST", "p.slug"}
	if len(q.Sort) > 0 {
		order = order[:0]
		for _, s := range q.Sort {
			field, desc := strings.CutPrefix(s, "-")
			col := projectColumns[field]
			if desc {
				col += " DESC"
			}
			order = append(order, col)
		}
	}
	b.WriteString("\n\tORDER BY " + strings.Join(order, ", "))

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&b, "\n\tLIMIT $%d", len(args))
	}
	return b.String(), args
}

func scanProject(row pgx.Row) (directus.ProjectRecord, error) {
	var (
		rec     directus.ProjectRecord
		id      string
		slug    *string
		process []byte
		results []byte
		tech    []byte
	)
	err := row.Scan(
		&id, &slug, &rec.Title, &rec.Subtitle, &rec.Description,
		&rec.LinkCode, &rec.LinkDemo, &rec.Image, &rec.Icon, &rec.Featured,
		&rec.Client, &rec.Location, &rec.ServiceType, &rec.Overview,
		&process, &results,
		&rec.TestimonialContent, &rec.TestimonialAuthor, &rec.TestimonialRole,
		&rec.FinalThoughts,
		&tech,
	)
	if err != nil {
		return rec, err
	}
	rec.ID = normalize.ID(id)
	if slug != nil {
		rec.Slug = *slug
	}
	if len(process) > 0 {
		if err := json.Unmarshal(process, &rec.Process); err != nil {
			return rec, fmt.Errorf("%w: project %s: decode process: %v", normalize.ErrMalformed, id, err)
		}
	}
	if len(results) > 0 {
		if err := json.Unmarshal(results, &rec.Results); err != nil {
			return rec, fmt.Errorf("%w: project %s: decode results: %v", normalize.ErrMalformed, id, err)
		}
	}
	if err := json.Unmarshal(tech, &rec.Tech); err != nil {
		return rec, fmt.Errorf("%w: project %s: decode tech: %v", normalize.ErrMalformed, id, err)
	}
	return rec, nil
}

// Upsert writes p keyed by slug and replaces its technology links. techIDs
// maps technology names to row ids.
func (r *ProjectRepository) Upsert(ctx context.Context, p *models.Project, sort int, overviewHTML string, techIDs map[string]string) error {
	p.Prepare()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO projects (
			id, slug, title, subtitle, description, featured, icon, image,
			client, location, service_type, link_code, link_demo, overview,
			process, results, testimonial_content, testimonial_author,
			testimonial_role, final_thoughts, sort
		)
		VALUES ($1::text::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (slug) DO NOTHING
		RETURNING id::text
	`

	process, err := json.Marshal(p.Process)
	if err != nil {
		return err
	}
	results, err := json.Marshal(p.Results)
	if err != nil {
		return err
	}
	var t models.Testimonial
	if p.Testimonial != nil {
		t = *p.Testimonial
	}

	var id string
	err = tx.QueryRow(ctx, query,
		p.ID, p.Slug, p.Title, nullable(p.Subtitle), p.Description, p.Featured,
		nullable(p.Icon), nullable(p.Image), nullable(p.Client), nullable(p.Location),
		nullable(p.ServiceType), nullable(p.Links.Code), nullable(p.Links.Demo),
		nullable(overviewHTML), process, results, nullable(t.Content),
		nullable(t.Author), nullable(t.Role), nullable(p.FinalThoughts), sort,
	).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// already provisioned; leave CMS edits alone
		return tx.Commit(ctx)
	}
	if err != nil {
		return fmt.Errorf("insert project %s: %w", p.Slug, err)
	}

	for _, name := range p.Tech {
		techID, ok := techIDs[name]
		if !ok {
			continue
		}
		if _, err := tx.Exec(ctx, `
			INSERT INTO projects_technologies (projects_id, technologies_id)
			VALUES ($1::text::uuid, $2::text::uuid)
			ON CONFLICT DO NOTHING
		`, id, techID); err != nil {
			return fmt.Errorf("link project %s to %s: %w", p.Slug, name, err)
		}
	}

	return tx.Commit(ctx)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
