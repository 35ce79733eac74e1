package service

import (
	"github.com/MKhiriev/go-mark-keeper/internal/config"
	"github.com/MKhiriev/go-mark-keeper/internal/crypto"
	"github.com/MKhiriev/go-mark-keeper/internal/logger"
	"github.com/MKhiriev/go-mark-keeper/internal/store"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	BookmarkService BookmarkService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.Auth.BcryptCost)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, hasher, cfg.Auth, logger),
		UserService:     NewUserService(storages.UserRepository, hasher, logger),
		BookmarkService: NewBookmarkService(storages.BookmarkRepository, logger),
	}
}
