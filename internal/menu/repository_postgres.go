package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// UPSERT MENU UPLOAD (ONE MENU PER PAGE)
// --------------------------------------------------
func (r *PostgresRepository) UpsertUpload(
	ctx context.Context,
	pageID int,
	imageURL string,
) (int, string, error) {

	var (
		uploadID int
		status   string
	)

	// Check existing upload (if any)
	err := r.db.QueryRow(ctx, `
		SELECT id, status
		FROM menu_uploads
		WHERE page_id = $1
	`, pageID).Scan(&uploadID, &status)

	if err == nil {
		// Replace existing (re-upload restarts the machine)
		_, err := r.db.Exec(ctx, `
			UPDATE menu_uploads
			SET image_url = $1,
			    status = 'MENU_UPLOADED',
			    raw_text = NULL,
			    error = NULL,
			    updated_at = now()
			WHERE page_id = $2
		`, imageURL, pageID)

		return uploadID, StatusUploaded, err
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, "", err
	}

	// No upload exists → create once
	err = r.db.QueryRow(ctx, `
		INSERT INTO menu_uploads (
			page_id,
			image_url,
			status,
			created_at,
			updated_at
		)
		VALUES ($1, $2, 'MENU_UPLOADED', now(), now())
		RETURNING id
	`, pageID, imageURL).Scan(&uploadID)

	return uploadID, StatusUploaded, err
}

// --------------------------------------------------
// GET UPLOAD STATUS
// --------------------------------------------------
func (r *PostgresRepository) GetStatus(
	ctx context.Context,
	pageID int,
) (*UploadStatus, error) {

	var status string
	var reason *string

	err := r.db.QueryRow(ctx, `
		SELECT status, error
		FROM menu_uploads
		WHERE page_id = $1
		ORDER BY updated_at DESC
		LIMIT 1
	`, pageID).Scan(&status, &reason)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("no menu uploaded")
		}
		return nil, err
	}

	return &UploadStatus{
		Status: status,
		Reason: reason,
	}, nil
}

// --------------------------------------------------
// RETRY FAILED UPLOAD
// --------------------------------------------------
func (r *PostgresRepository) RetryFailed(
	ctx context.Context,
	pageID int,
) error {

	cmd, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'MENU_UPLOADED',
		    raw_text = NULL,
		    error = NULL,
		    updated_at = now()
		WHERE page_id = $1
		  AND status = 'FAILED'
	`, pageID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return errors.New("no failed menu to retry")
	}

	return nil
}

// --------------------------------------------------
// REPLACE ITEMS + MARK PARSED (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) ReplaceItems(
	ctx context.Context,
	pageID int,
	parsed *ParsedMenu,
) error {

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM menu_items
		WHERE page_id = $1
	`, pageID); err != nil {
		return err
	}

	for _, item := range parsed.Items {
		if _, err := tx.Exec(ctx, `
			INSERT INTO menu_items (
				page_id,
				position,
				name,
				price,
				section,
				description,
				note
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
		`,
			pageID,
			item.Position,
			item.Name,
			item.Price,
			nullable(item.Section),
			nullable(item.Description),
			nullable(item.Note),
		); err != nil {
			return err
		}
	}

	cmd, err := tx.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'PARSED',
		    parse_source = $1,
		    raw_text = $2,
		    error = NULL,
		    updated_at = now()
		WHERE page_id = $3
	`, parsed.Source, nullable(parsed.RawText), pageID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return errors.New("no menu upload row updated")
	}

	return tx.Commit(ctx)
}

// --------------------------------------------------
// MARK FAILED
// --------------------------------------------------
func (r *PostgresRepository) MarkFailed(
	ctx context.Context,
	pageID int,
	reason string,
) error {

	_, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'FAILED',
		    error = $1,
		    updated_at = now()
		WHERE page_id = $2
	`, reason, pageID)

	return err
}

// --------------------------------------------------
// LIST ITEMS (READING ORDER)
// --------------------------------------------------
func (r *PostgresRepository) ListItems(
	ctx context.Context,
	pageID int,
) ([]Item, error) {

	rows, err := r.db.Query(ctx, `
		SELECT position, name, price, section, description, note
		FROM menu_items
		WHERE page_id = $1
		ORDER BY position
	`, pageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var (
			it      Item
			section *string
			desc    *string
			note    *string
		)
		if err := rows.Scan(
			&it.Position,
			&it.Name,
			&it.Price,
			&section,
			&desc,
			&note,
		); err != nil {
			return nil, err
		}
		if section != nil {
			it.Section = *section
		}
		if desc != nil {
			it.Description = *desc
		}
		if note != nil {
			it.Note = *note
		}
		items = append(items, it)
	}

	return items, rows.Err()
}

// nullable maps "" to NULL so empty optionals don't persist as empty
// strings.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
