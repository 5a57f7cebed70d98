package page

import "context"

// Repository defines all database operations for pages.
type Repository interface {
	Create(ctx context.Context, p *Page) error
	ListByOwner(ctx context.Context, ownerID string) ([]*Page, error)
	GetBySlug(ctx context.Context, slug string) (*Page, error)
	SetPublished(ctx context.Context, pageID int, published bool) error
	IsOwner(ctx context.Context, pageID int, userID string) (bool, error)
}
