package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio/internal/models"
)

type TechnologyRepository struct {
	pool *pgxpool.Pool
}

func NewTechnologyRepository(pool *pgxpool.Pool) *TechnologyRepository {
	return &TechnologyRepository{pool: pool}
}

// Upsert inserts t unless its slug exists and returns the stored row id.
func (r *TechnologyRepository) Upsert(ctx context.Context, t *models.Technology) (string, error) {
	t.Prepare()

	query := `
		INSERT INTO technologies (id, name, slug, icon)
		VALUES ($1::text::uuid, $2, $3, $4)
		ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
		RETURNING id::text
	`

	var id string
	err := r.pool.QueryRow(ctx, query, t.ID, t.Name, t.Slug, nullable(t.Icon)).Scan(&id)
	return id, err
}

func (r *TechnologyRepository) List(ctx context.Context) ([]models.Technology, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id::text, name, slug, COALESCE(icon, '')
		FROM technologies
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var techs []models.Technology
	for rows.Next() {
		var t models.Technology
		if err := rows.Scan(&t.ID, &t.Name, &t.Slug, &t.Icon); err != nil {
			return nil, err
		}
		techs = append(techs, t)
	}

	return techs, rows.Err()
}
