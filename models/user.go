package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique identity key of the account.
	// Used during authentication and enforced unique at the persistence layer.
	Email string `json:"email"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt verifier of the user's password.
	// This value MUST be a derived value, never plaintext, and is never
	// serialized into any API response.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last mutation of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserPatch is the persistence-level form of [UserUpdate]: the plaintext
// password has been replaced by its verifier at the service layer.
// Only non-nil fields are applied.
type UserPatch struct {
	Email        *string
	Name         *string
	PasswordHash *string
}

// IsEmpty reports whether the patch contains no fields to apply.
func (p UserPatch) IsEmpty() bool {
	return p.Email == nil && p.Name == nil && p.PasswordHash == nil
}

// UserUpdate describes a partial update of a user profile.
// Only non-nil fields are applied (partial update support).
type UserUpdate struct {
	// Email replaces the identity key when non-nil. Uniqueness is enforced
	// at the persistence layer.
	Email *string `json:"email,omitempty"`

	// Name replaces the display name when non-nil.
	Name *string `json:"name,omitempty"`

	// Password is the new plaintext password when non-nil. It is hashed at
	// the service layer before it reaches storage and never persisted as-is.
	Password *string `json:"password,omitempty"`
}
