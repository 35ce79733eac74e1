package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-mark-keeper/internal/config"
	"github.com/MKhiriev/go-mark-keeper/internal/logger"
)

// Storages aggregates all repositories backed by a single database handle.
type Storages struct {
	UserRepository     UserRepository
	BookmarkRepository BookmarkRepository
}

// NewStorages constructs the repository set on top of an open DB handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		BookmarkRepository: NewBookmarkRepository(db, logger),
	}
}

// NewDB opens a database handle for the configured DSN. A "postgres://" or
// "postgresql://" scheme selects the PostgreSQL backend; any other value is
// treated as a SQLite file path.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}
