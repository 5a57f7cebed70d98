package menu

import (
	"context"
	"errors"
	"sync"
)

// InMemoryRepository backs handler and service tests; behavior mirrors the
// Postgres implementation.
type InMemoryRepository struct {
	mu      sync.Mutex
	nextID  int
	uploads map[int]*Upload
	items   map[int][]Item
	sources map[int]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		nextID:  1,
		uploads: make(map[int]*Upload),
		items:   make(map[int][]Item),
		sources: make(map[int]string),
	}
}

func (r *InMemoryRepository) UpsertUpload(
	ctx context.Context,
	pageID int,
	imageURL string,
) (int, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if up, ok := r.uploads[pageID]; ok {
		up.ImageURL = imageURL
		up.Status = StatusUploaded
		up.Error = nil
		return up.ID, StatusUploaded, nil
	}

	up := &Upload{
		ID:       r.nextID,
		PageID:   pageID,
		ImageURL: imageURL,
		Status:   StatusUploaded,
	}
	r.nextID++
	r.uploads[pageID] = up

	return up.ID, StatusUploaded, nil
}

func (r *InMemoryRepository) GetStatus(
	ctx context.Context,
	pageID int,
) (*UploadStatus, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	up, ok := r.uploads[pageID]
	if !ok {
		return nil, errors.New("no menu uploaded")
	}

	return &UploadStatus{Status: up.Status, Reason: up.Error}, nil
}

func (r *InMemoryRepository) RetryFailed(
	ctx context.Context,
	pageID int,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	up, ok := r.uploads[pageID]
	if !ok || up.Status != StatusFailed {
		return errors.New("no failed menu to retry")
	}

	up.Status = StatusUploaded
	up.Error = nil
	return nil
}

func (r *InMemoryRepository) ReplaceItems(
	ctx context.Context,
	pageID int,
	parsed *ParsedMenu,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	up, ok := r.uploads[pageID]
	if !ok {
		return errors.New("no menu upload row updated")
	}

	r.items[pageID] = append([]Item(nil), parsed.Items...)
	r.sources[pageID] = parsed.Source
	up.Status = StatusParsed
	up.Error = nil
	return nil
}

func (r *InMemoryRepository) MarkFailed(
	ctx context.Context,
	pageID int,
	reason string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	up, ok := r.uploads[pageID]
	if !ok {
		return errors.New("no menu upload")
	}

	up.Status = StatusFailed
	up.Error = &reason
	return nil
}

func (r *InMemoryRepository) ListItems(
	ctx context.Context,
	pageID int,
) ([]Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]Item(nil), r.items[pageID]...), nil
}
