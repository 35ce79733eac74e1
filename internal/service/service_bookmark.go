package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/MKhiriev/go-mark-keeper/internal/logger"
	"github.com/MKhiriev/go-mark-keeper/internal/store"
	"github.com/MKhiriev/go-mark-keeper/models"
)

// bookmarkService is the concrete implementation of BookmarkService. Ownership
// is enforced below it, in the repository's WHERE clauses; this layer only
// validates input and normalises errors.
type bookmarkService struct {
	bookmarkRepository store.BookmarkRepository
	logger             *logger.Logger
}

func NewBookmarkService(bookmarkRepository store.BookmarkRepository, logger *logger.Logger) BookmarkService {
	return &bookmarkService{
		bookmarkRepository: bookmarkRepository,
		logger:             logger,
	}
}

// CreateBookmark stores a new bookmark for userID.
//
// Returns the persisted bookmark (with a server-assigned BookmarkID) or:
//   - ErrInvalidURL if the URL is empty or not a well-formed absolute URL.
//   - A wrapped storage error if the repository call fails.
func (b *bookmarkService) CreateBookmark(ctx context.Context, userID int64, create models.BookmarkCreate) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if !isAbsoluteURL(create.URL) {
		log.Error().Str("url", create.URL).Msg("invalid bookmark URL provided")
		return models.Bookmark{}, ErrInvalidURL
	}

	createdBookmark, err := b.bookmarkRepository.CreateBookmark(ctx, models.Bookmark{
		UserID:      userID,
		URL:         create.URL,
		Title:       create.Title,
		Description: create.Description,
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("bookmark creation ended with error")
		return models.Bookmark{}, fmt.Errorf("bookmark creation ended with error: %w", err)
	}

	return createdBookmark, nil
}

// ListBookmarks returns all bookmarks owned by userID, oldest first.
func (b *bookmarkService) ListBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	bookmarks, err := b.bookmarkRepository.ListBookmarks(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("bookmark listing failed")
		return nil, fmt.Errorf("bookmark listing failed: %w", err)
	}

	return bookmarks, nil
}

// GetBookmark returns a single bookmark owned by userID.
//
// Returns store.ErrBookmarkNotFound unchanged when the bookmark is missing or
// owned by someone else.
func (b *bookmarkService) GetBookmark(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	foundBookmark, err := b.bookmarkRepository.GetBookmark(ctx, userID, bookmarkID)
	if err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return models.Bookmark{}, err
		}

		log.Err(err).Int64("bookmark_id", bookmarkID).Msg("bookmark lookup failed")
		return models.Bookmark{}, fmt.Errorf("bookmark lookup failed: %w", err)
	}

	return foundBookmark, nil
}

// UpdateBookmark applies a partial update to an owned bookmark.
//
// Returns the updated bookmark or:
//   - ErrInvalidDataProvided if the update is empty.
//   - ErrInvalidURL if a new URL is provided and is not absolute.
//   - store.ErrBookmarkNotFound if the bookmark is missing or foreign.
func (b *bookmarkService) UpdateBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	if update.IsEmpty() {
		log.Error().Int64("bookmark_id", bookmarkID).Msg("empty bookmark update provided")
		return models.Bookmark{}, ErrInvalidDataProvided
	}
	if update.URL != nil && !isAbsoluteURL(*update.URL) {
		log.Error().Str("url", *update.URL).Msg("invalid bookmark URL provided")
		return models.Bookmark{}, ErrInvalidURL
	}

	updatedBookmark, err := b.bookmarkRepository.UpdateBookmark(ctx, userID, bookmarkID, update)
	if err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return models.Bookmark{}, err
		}

		log.Err(err).Int64("bookmark_id", bookmarkID).Msg("bookmark update failed")
		return models.Bookmark{}, fmt.Errorf("bookmark update failed: %w", err)
	}

	return updatedBookmark, nil
}

// DeleteBookmark removes an owned bookmark.
//
// Returns store.ErrBookmarkNotFound unchanged when the bookmark is missing or
// owned by someone else.
func (b *bookmarkService) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	if err := b.bookmarkRepository.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		if errors.Is(err, store.ErrBookmarkNotFound) {
			return err
		}

		log.Err(err).Int64("bookmark_id", bookmarkID).Msg("bookmark deletion failed")
		return fmt.Errorf("bookmark deletion failed: %w", err)
	}

	return nil
}

// isAbsoluteURL reports whether raw parses as a URL with both a scheme and a
// host, e.g. "https://example.com/path". Relative references and bare paths
// are rejected.
func isAbsoluteURL(raw string) bool {
	if raw == "" {
		return false
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return parsed.Scheme != "" && parsed.Host != ""
}
