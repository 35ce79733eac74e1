package store

import (
	"context"

	"github.com/MKhiriev/go-mark-keeper/models"
)

// UserRepository is the persistence contract for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrEmailAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks a user up by its unique email.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// FindUserByID looks a user up by its internal identifier.
	// Returns ErrNoUserWasFound when no such account exists.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdateUser applies a partial update and returns the updated record.
	// Returns ErrNoUserWasFound for a missing user and ErrEmailAlreadyExists
	// when the new email is already taken.
	UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)

	// DeleteUser removes the account. Owned bookmarks are removed by the
	// schema's cascading foreign key. Returns ErrNoUserWasFound when the
	// account does not exist.
	DeleteUser(ctx context.Context, userID int64) error
}

// BookmarkRepository is the persistence contract for bookmarks. Every read
// and mutation is scoped by the owning user; a bookmark that exists but
// belongs to someone else is indistinguishable from a missing one.
type BookmarkRepository interface {
	// CreateBookmark persists a new bookmark owned by bookmark.UserID and
	// returns it with server-assigned fields populated.
	CreateBookmark(ctx context.Context, bookmark models.Bookmark) (models.Bookmark, error)

	// ListBookmarks returns all bookmarks owned by userID, ordered by
	// creation time ascending.
	ListBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)

	// GetBookmark returns the bookmark with the given ID if it is owned by
	// userID; otherwise ErrBookmarkNotFound.
	GetBookmark(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)

	// UpdateBookmark applies a partial update to an owned bookmark and
	// returns the updated record; ErrBookmarkNotFound otherwise.
	UpdateBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error)

	// DeleteBookmark removes an owned bookmark; ErrBookmarkNotFound otherwise.
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations are driver-specific.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
