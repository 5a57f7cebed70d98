package page

import (
	"context"
	"errors"
	"strings"
	"unicode"

	"tierless/internal/menu"

	"github.com/google/uuid"
)

var ErrNotPublished = errors.New("page is not published")

// ItemSource lists a page's structured items; implemented by menu.Service.
type ItemSource interface {
	ListItems(ctx context.Context, pageID int) ([]menu.Item, error)
}

type Service struct {
	repo  Repository
	items ItemSource
}

func NewService(repo Repository, items ItemSource) *Service {
	return &Service{repo: repo, items: items}
}

// --------------------------------------------------
// Create page
// --------------------------------------------------
func (s *Service) Create(ctx context.Context, ownerID, title, currency string) (*Page, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}
	if currency == "" {
		currency = "EUR"
	}

	p := &Page{
		OwnerID:  ownerID,
		Title:    title,
		Currency: currency,
		Slug:     slugify(title) + "-" + uuid.New().String()[:8],
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	return p, nil
}

// --------------------------------------------------
// List pages owned by a user
// --------------------------------------------------
func (s *Service) ListMine(ctx context.Context, ownerID string) ([]*Page, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// --------------------------------------------------
// Publish / unpublish
// --------------------------------------------------
func (s *Service) SetPublished(ctx context.Context, pageID int, published bool) error {
	return s.repo.SetPublished(ctx, pageID, published)
}

// --------------------------------------------------
// Public rendering of a published page
// --------------------------------------------------
func (s *Service) PublicRender(ctx context.Context, slug string) (*PublicPage, error) {
	p, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Published {
		return nil, ErrNotPublished
	}

	items, err := s.items.ListItems(ctx, p.ID)
	if err != nil {
		return nil, err
	}

	return &PublicPage{
		Slug:     p.Slug,
		Title:    p.Title,
		Currency: p.Currency,
		Sections: groupBySection(items),
	}, nil
}

// --------------------------------------------------
// Ownership
// --------------------------------------------------
func (s *Service) IsOwner(ctx context.Context, pageID int, userID string) (bool, error) {
	return s.repo.IsOwner(ctx, pageID, userID)
}

// groupBySection folds items into sections in first-appearance order so the
// public rendering keeps the menu's top-to-bottom reading order.
func groupBySection(items []menu.Item) []PublicSection {
	var sections []PublicSection
	index := make(map[string]int)

	for _, it := range items {
		i, ok := index[it.Section]
		if !ok {
			sections = append(sections, PublicSection{Name: it.Section})
			i = len(sections) - 1
			index[it.Section] = i
		}
		sections[i].Items = append(sections[i].Items, it)
	}

	return sections
}

func slugify(title string) string {
	var b strings.Builder
	prevDash := true

	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			prevDash = false
		case !prevDash:
			b.WriteByte('-')
			prevDash = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}
