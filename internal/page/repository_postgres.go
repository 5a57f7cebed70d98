package page

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("page not found")

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Create a new page
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, p *Page) error {
	query := `
		INSERT INTO pages (
			owner_id,
			slug,
			title,
			currency,
			published
		)
		VALUES ($1, $2, $3, $4, false)
		RETURNING id, created_at
	`

	return r.db.QueryRow(
		ctx,
		query,
		p.OwnerID,
		p.Slug,
		p.Title,
		p.Currency,
	).Scan(&p.ID, &p.CreatedAt)
}

// --------------------------------------------------
// List pages owned by a user
// --------------------------------------------------
func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Page, error) {
	query := `
		SELECT
			id,
			owner_id,
			slug,
			title,
			currency,
			published,
			published_at,
			created_at
		FROM pages
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pages []*Page

	for rows.Next() {
		var p Page
		if err := rows.Scan(
			&p.ID,
			&p.OwnerID,
			&p.Slug,
			&p.Title,
			&p.Currency,
			&p.Published,
			&p.PublishedAt,
			&p.CreatedAt,
		); err != nil {
			return nil, err
		}
		pages = append(pages, &p)
	}

	return pages, rows.Err()
}

// --------------------------------------------------
// Public lookup by slug
// --------------------------------------------------
func (r *PostgresRepository) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	var p Page

	err := r.db.QueryRow(ctx, `
		SELECT
			id,
			owner_id,
			slug,
			title,
			currency,
			published,
			published_at,
			created_at
		FROM pages
		WHERE slug = $1
	`, slug).Scan(
		&p.ID,
		&p.OwnerID,
		&p.Slug,
		&p.Title,
		&p.Currency,
		&p.Published,
		&p.PublishedAt,
		&p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &p, nil
}

// --------------------------------------------------
// Publish / unpublish
// --------------------------------------------------
func (r *PostgresRepository) SetPublished(ctx context.Context, pageID int, published bool) error {
	cmd, err := r.db.Exec(ctx, `
		UPDATE pages
		SET published = $1,
		    published_at = CASE WHEN $1 THEN now() ELSE NULL END
		WHERE id = $2
	`, published, pageID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}

	return nil
}

// --------------------------------------------------
// Ownership
// --------------------------------------------------
func (r *PostgresRepository) IsOwner(ctx context.Context, pageID int, userID string) (bool, error) {
	var owns bool

	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM pages
			WHERE id = $1 AND owner_id = $2
		)
	`, pageID, userID).Scan(&owns)

	return owns, err
}
