package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-mark-keeper/internal/logger"
	"github.com/MKhiriev/go-mark-keeper/models"
)

// bookmarkRepository is the SQL-backed implementation of [BookmarkRepository].
// Every query includes the owner in its WHERE clause, so a bookmark that
// belongs to a different user yields the same [ErrBookmarkNotFound] as one
// that does not exist at all.
type bookmarkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookmarkRepository constructs a [BookmarkRepository] backed by the
// provided database connection and logger.
func NewBookmarkRepository(db *DB, logger *logger.Logger) BookmarkRepository {
	logger.Debug().Msg("creating bookmark repository")
	return &bookmarkRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBookmark persists a new bookmark record and returns the fully
// populated [models.Bookmark] with server-assigned fields (BookmarkID,
// CreatedAt, UpdatedAt).
func (r *bookmarkRepository) CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createBookmark, bookmark.UserID, bookmark.URL, bookmark.Title, bookmark.Description)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Bool("retryable", r.db.IsRetryable(err)).Msg("error: insert failed")
		return models.Bookmark{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&bookmark.BookmarkID, &bookmark.UserID, &bookmark.URL, &bookmark.Title, &bookmark.Description, &bookmark.CreatedAt, &bookmark.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.CreateBookmark").Msg("error: scanning error")
		return models.Bookmark{}, err
	}

	return bookmark, nil
}

// ListBookmarks returns every bookmark owned by userID ordered by creation
// time ascending (ties broken by ID, so the order is stable).
func (r *bookmarkRepository) ListBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listBookmarks, userID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.ListBookmarks").Bool("retryable", r.db.IsRetryable(err)).Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	bookmarks := make([]models.Bookmark, 0)
	for rows.Next() {
		var b models.Bookmark
		if err := rows.Scan(&b.BookmarkID, &b.UserID, &b.URL, &b.Title, &b.Description, &b.CreatedAt, &b.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*bookmarkRepository.ListBookmarks").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		bookmarks = append(bookmarks, b)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.ListBookmarks").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return bookmarks, nil
}

// GetBookmark retrieves a single bookmark scoped by owner.
//
// Error handling:
//   - empty result set (missing or foreign bookmark) → [ErrBookmarkNotFound].
func (r *bookmarkRepository) GetBookmark(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	var found models.Bookmark
	row := r.db.QueryRowContext(ctx, getBookmark, bookmarkID, userID)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.GetBookmark").Bool("retryable", r.db.IsRetryable(err)).Msg("error: query failed")
		return models.Bookmark{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.BookmarkID, &found.UserID, &found.URL, &found.Title, &found.Description, &found.CreatedAt, &found.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}

		log.Err(err).Str("func", "*bookmarkRepository.GetBookmark").Msg("error: scanning error")
		return models.Bookmark{}, err
	}

	return found, nil
}

// UpdateBookmark applies a partial update built by [buildUpdateBookmarkQuery]
// and returns the canonical updated record from the RETURNING clause.
//
// Error handling:
//   - empty update → [ErrBuildingSQLQuery].
//   - zero rows matched (missing or foreign bookmark) → [ErrBookmarkNotFound].
func (r *bookmarkRepository) UpdateBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookmarkQuery(userID, bookmarkID, update)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.UpdateBookmark").Msg("error: building update query")
		return models.Bookmark{}, err
	}

	var updated models.Bookmark
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.UpdateBookmark").Bool("retryable", r.db.IsRetryable(err)).Msg("error: update failed")
		return models.Bookmark{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&updated.BookmarkID, &updated.UserID, &updated.URL, &updated.Title, &updated.Description, &updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bookmark{}, ErrBookmarkNotFound
		}

		log.Err(err).Str("func", "*bookmarkRepository.UpdateBookmark").Msg("error: scanning error")
		return models.Bookmark{}, err
	}

	return updated, nil
}

// DeleteBookmark removes an owned bookmark.
//
// Error handling:
//   - zero rows affected (missing or foreign bookmark) → [ErrBookmarkNotFound].
func (r *bookmarkRepository) DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteBookmark, bookmarkID, userID)
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteBookmark").Bool("retryable", r.db.IsRetryable(err)).Msg("error: delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*bookmarkRepository.DeleteBookmark").Msg("error: rows affected")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookmarkNotFound
	}

	return nil
}
