package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// dialectDirs maps a goose dialect to the embedded directory holding the
// migration scripts written for that engine. The schemas are equivalent;
// only the DDL flavor differs.
var dialectDirs = map[string]string{
	"pgx":     "postgres",
	"sqlite3": "sqlite",
}

// Migrate applies all embedded SQL migrations to db. The dialect selects both
// the goose SQL flavor and the migration directory, and must match the driver
// the connection was opened with ("pgx" for PostgreSQL, "sqlite3" for SQLite).
func Migrate(db *sql.DB, dialect string) error {
	dir, ok := dialectDirs[dialect]
	if !ok {
		return fmt.Errorf("migration error: no migrations for dialect %q", dialect)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
