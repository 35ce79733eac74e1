package models

import "time"

// Bookmark represents a saved URL owned by exactly one user.
// The owner is fixed at creation time and never changes afterwards;
// every read and mutation is scoped by (UserID, BookmarkID) at the
// persistence layer.
type Bookmark struct {
	// BookmarkID is the unique identifier of the bookmark.
	BookmarkID int64 `json:"id"`

	// UserID is the owner of the bookmark. Not exposed via JSON: clients
	// only ever see their own records.
	UserID int64 `json:"-"`

	// URL is the absolute URL of the bookmarked resource.
	URL string `json:"url"`

	// Title is a short human-readable label for the bookmark.
	Title string `json:"title"`

	// Description is an optional longer note about the bookmark.
	Description string `json:"description,omitempty"`

	// CreatedAt is the timestamp when the bookmark was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkUpdate describes a partial update of a bookmark.
// Only non-nil fields are applied.
type BookmarkUpdate struct {
	// URL replaces the bookmarked URL when non-nil. Must be an absolute URL.
	URL *string `json:"url,omitempty"`

	// Title replaces the title when non-nil.
	Title *string `json:"title,omitempty"`

	// Description replaces the description when non-nil.
	Description *string `json:"description,omitempty"`
}

// IsEmpty reports whether the update contains no fields to apply.
func (u BookmarkUpdate) IsEmpty() bool {
	return u.URL == nil && u.Title == nil && u.Description == nil
}
