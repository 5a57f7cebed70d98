package menu

import "context"

// Repository defines all database operations for menu uploads and items.
// The service depends ONLY on this interface.
type Repository interface {

	// Create OR replace the menu upload for a page (one menu per page).
	UpsertUpload(
		ctx context.Context,
		pageID int,
		imageURL string,
	) (uploadID int, status string, err error)

	// Read current upload status (for frontend polling).
	GetStatus(
		ctx context.Context,
		pageID int,
	) (*UploadStatus, error)

	// Rewind a FAILED upload so the workers pick it up again.
	RetryFailed(
		ctx context.Context,
		pageID int,
	) error

	// Atomically replace the page's items and mark the upload PARSED.
	ReplaceItems(
		ctx context.Context,
		pageID int,
		parsed *ParsedMenu,
	) error

	// Mark the upload FAILED with a reason (no items written).
	MarkFailed(
		ctx context.Context,
		pageID int,
		reason string,
	) error

	// Items of a page in reading order.
	ListItems(
		ctx context.Context,
		pageID int,
	) ([]Item, error)
}
