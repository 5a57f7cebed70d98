package ocr

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// ClaimPendingOCR retrieves and CLAIMS the next upload pending OCR.
// Returns (nil, nil) when no jobs are available (NOT an error).
func (r *Repository) ClaimPendingOCR(ctx context.Context) (*OCRJob, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var job OCRJob

	err = tx.QueryRow(ctx, `
		SELECT id, page_id, image_url
		FROM menu_uploads
		WHERE status = 'MENU_UPLOADED'
		ORDER BY created_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&job.UploadID, &job.PageID, &job.ImageURL)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	// Mark as processing immediately (atomic claim)
	if _, err := tx.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'OCR_PROCESSING', updated_at = now()
		WHERE id = $1
	`, job.UploadID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &job, nil
}

// ClaimPendingParse retrieves and CLAIMS the next upload whose OCR text is
// waiting for structuring. Returns (nil, nil) when none are available.
func (r *Repository) ClaimPendingParse(ctx context.Context) (*ParseJob, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var job ParseJob

	err = tx.QueryRow(ctx, `
		SELECT id, page_id, COALESCE(raw_text, '')
		FROM menu_uploads
		WHERE status = 'OCR_DONE'
		ORDER BY updated_at
		LIMIT 1
		FOR UPDATE SKIP LOCKED
	`).Scan(&job.UploadID, &job.PageID, &job.RawText)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
		UPDATE menu_uploads
		SET status = 'PARSING', updated_at = now()
		WHERE id = $1
	`, job.UploadID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &job, nil
}

// SaveRawText stores recognized text and advances the machine to OCR_DONE.
func (r *Repository) SaveRawText(ctx context.Context, uploadID int, text string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET raw_text = $1,
		    status = 'OCR_DONE',
		    updated_at = now()
		WHERE id = $2
	`, text, uploadID)

	return err
}

// SetStatus updates the processing status with an optional error message.
func (r *Repository) SetStatus(ctx context.Context, uploadID int, status string, errMsg *string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE menu_uploads
		SET status = $1,
		    error = $2,
		    updated_at = now()
		WHERE id = $3
	`, status, errMsg, uploadID)

	return err
}
