package service

import (
	"context"

	"github.com/MKhiriev/go-mark-keeper/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

type BookmarkService interface {
	CreateBookmark(ctx context.Context, userID int64, create models.BookmarkCreate) (models.Bookmark, error)
	ListBookmarks(ctx context.Context, userID int64) ([]models.Bookmark, error)
	GetBookmark(ctx context.Context, userID, bookmarkID int64) (models.Bookmark, error)
	UpdateBookmark(ctx context.Context, userID, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error)
	DeleteBookmark(ctx context.Context, userID, bookmarkID int64) error
}
