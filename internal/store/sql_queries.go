package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mark-keeper/models"
)

const (
	createUser = `INSERT INTO users (email, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, name, password_hash, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, name, password_hash, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, name, password_hash, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	deleteUser = `DELETE FROM users
    WHERE user_id = $1;`

	createBookmark = `INSERT INTO bookmarks (user_id, url, title, description)
    VALUES ($1, $2, $3, $4)
    RETURNING bookmark_id, user_id, url, title, description, created_at, updated_at;`

	listBookmarks = `SELECT bookmark_id, user_id, url, title, description, created_at, updated_at
    FROM bookmarks
    WHERE user_id = $1
    ORDER BY created_at, bookmark_id;`

	getBookmark = `SELECT bookmark_id, user_id, url, title, description, created_at, updated_at
    FROM bookmarks
    WHERE bookmark_id = $1 AND user_id = $2;`

	deleteBookmark = `DELETE FROM bookmarks
    WHERE bookmark_id = $1 AND user_id = $2;`
)

// psql builds queries with PostgreSQL-style $N placeholders. SQLite binds
// $N positionally as well, so both engines share one builder.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// buildUpdateUserQuery dynamically builds an UPDATE over the user columns
// present in the patch. Returns ErrBuildingSQLQuery when the patch is empty.
func buildUpdateUserQuery(userID int64, patch models.UserPatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := psql.Update(models.User{}.TableName()).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if patch.Email != nil {
		builder = builder.Set("email", *patch.Email)
	}
	if patch.Name != nil {
		builder = builder.Set("name", *patch.Name)
	}
	if patch.PasswordHash != nil {
		builder = builder.Set("password_hash", *patch.PasswordHash)
	}

	return builder.
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, email, name, password_hash, created_at, updated_at").
		ToSql()
}

// buildUpdateBookmarkQuery dynamically builds an UPDATE over the bookmark
// columns present in the update. The WHERE clause always scopes by owner so
// a foreign bookmark matches zero rows. Returns ErrBuildingSQLQuery when the
// update is empty.
func buildUpdateBookmarkQuery(userID, bookmarkID int64, update models.BookmarkUpdate) (string, []any, error) {
	if update.IsEmpty() {
		return "", nil, ErrBuildingSQLQuery
	}

	builder := psql.Update(models.Bookmark{}.TableName()).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP"))

	if update.URL != nil {
		builder = builder.Set("url", *update.URL)
	}
	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Description != nil {
		builder = builder.Set("description", *update.Description)
	}

	return builder.
		Where(sq.Eq{"bookmark_id": bookmarkID, "user_id": userID}).
		Suffix("RETURNING bookmark_id, user_id, url, title, description, created_at, updated_at").
		ToSql()
}
