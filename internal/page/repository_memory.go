package page

import (
	"context"
	"sync"
	"time"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	nextID int
	pages  map[int]*Page
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID: 1,
		pages:  make(map[int]*Page),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, p *Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p.ID = r.nextID
	r.nextID++
	p.CreatedAt = time.Now()
	r.pages[p.ID] = p
	return nil
}

func (r *InMemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]*Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pages []*Page
	for _, p := range r.pages {
		if p.OwnerID == ownerID {
			pages = append(pages, p)
		}
	}
	return pages, nil
}

func (r *InMemoryRepository) GetBySlug(ctx context.Context, slug string) (*Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) SetPublished(ctx context.Context, pageID int, published bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pages[pageID]
	if !ok {
		return ErrNotFound
	}

	p.Published = published
	if published {
		now := time.Now()
		p.PublishedAt = &now
	} else {
		p.PublishedAt = nil
	}
	return nil
}

func (r *InMemoryRepository) IsOwner(ctx context.Context, pageID int, userID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pages[pageID]
	return ok && p.OwnerID == userID, nil
}
