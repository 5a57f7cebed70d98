package menu

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage interface {
	Upload(ctx context.Context, key string, file multipart.File) (string, error)
}

// PageGuard answers whether a user owns a page; implemented by the page
// repository.
type PageGuard interface {
	IsOwner(ctx context.Context, pageID int, userID string) (bool, error)
}

type Service struct {
	repo    Repository
	storage Storage
	pages   PageGuard
}

func NewService(repo Repository, storage Storage, pages PageGuard) *Service {
	return &Service{repo: repo, storage: storage, pages: pages}
}

// --------------------------------------------------
// Upload Menu Photo (ONE MENU PER PAGE)
// --------------------------------------------------
func (s *Service) UploadMenu(
	ctx context.Context,
	pageID int,
	file multipart.File,
	filename string,
) (int, string, error) {

	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return 0, "", errors.New("invalid file")
	}

	key := fmt.Sprintf(
		"menus/%d/%s%s",
		pageID,
		uuid.New().String(),
		ext,
	)

	url, err := s.storage.Upload(ctx, key, file)
	if err != nil {
		return 0, "", err
	}

	uploadID, _, err := s.repo.UpsertUpload(ctx, pageID, url)
	if err != nil {
		return 0, "", err
	}

	return uploadID, key, nil
}

// --------------------------------------------------
// Status Polling / Retry
// --------------------------------------------------
func (s *Service) GetStatus(ctx context.Context, pageID int) (*UploadStatus, error) {
	return s.repo.GetStatus(ctx, pageID)
}

func (s *Service) Retry(ctx context.Context, pageID int) error {
	return s.repo.RetryFailed(ctx, pageID)
}

// --------------------------------------------------
// Persist Structured Result (ATOMIC)
// --------------------------------------------------
func (s *Service) SaveParsedResult(
	ctx context.Context,
	pageID int,
	parsed *ParsedMenu,
) error {

	if parsed == nil {
		return errors.New("invalid parsed menu data")
	}

	return s.repo.ReplaceItems(ctx, pageID, parsed)
}

// --------------------------------------------------
// Mark Parsing Failure (SAFE RETRY)
// --------------------------------------------------
func (s *Service) MarkParsingFailed(
	ctx context.Context,
	pageID int,
	reason string,
) error {
	return s.repo.MarkFailed(ctx, pageID, reason)
}

// --------------------------------------------------
// Items (READING ORDER)
// --------------------------------------------------
func (s *Service) ListItems(ctx context.Context, pageID int) ([]Item, error) {
	return s.repo.ListItems(ctx, pageID)
}

// --------------------------------------------------
// Ownership
// --------------------------------------------------
func (s *Service) IsPageOwner(ctx context.Context, pageID int, userID string) (bool, error) {
	if s.pages == nil {
		return true, nil
	}
	return s.pages.IsOwner(ctx, pageID, userID)
}
