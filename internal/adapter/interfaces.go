// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the bookmark server.
//
// The primary abstraction is [ServerAdapter], which decouples the CLI client
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mark-keeper/models"
)

// ServerAdapter defines transport-agnostic communication with the bookmark
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates a new account on the server. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record.
	Register(ctx context.Context, request models.RegisterRequest) (models.User, error)

	// Login authenticates against the server. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// CurrentUser fetches the authenticated account's own record.
	CurrentUser(ctx context.Context) (models.User, error)

	// UpdateCurrentUser applies a partial update to the authenticated account.
	UpdateCurrentUser(ctx context.Context, update models.UserUpdate) (models.User, error)

	// DeleteCurrentUser removes the authenticated account together with all
	// of its bookmarks.
	DeleteCurrentUser(ctx context.Context) error

	// CreateBookmark stores a new bookmark for the authenticated account.
	CreateBookmark(ctx context.Context, create models.BookmarkCreate) (models.Bookmark, error)

	// ListBookmarks fetches all bookmarks owned by the authenticated account.
	ListBookmarks(ctx context.Context) ([]models.Bookmark, error)

	// GetBookmark fetches a single owned bookmark by ID.
	GetBookmark(ctx context.Context, bookmarkID int64) (models.Bookmark, error)

	// UpdateBookmark applies a partial update to an owned bookmark.
	UpdateBookmark(ctx context.Context, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error)

	// DeleteBookmark removes an owned bookmark.
	DeleteBookmark(ctx context.Context, bookmarkID int64) error
}
