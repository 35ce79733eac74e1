// Package crypto implements credential hashing for the application.
//
// Passwords are stored as bcrypt verifiers: salted, one-way, and compared in
// constant time by the bcrypt library itself. The package exposes a small
// PasswordHasher type so the work factor is configured once at startup and
// the rest of the application never touches bcrypt directly.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// dummyVerifier is a fixed bcrypt hash of an unused random string. It is
// compared against when a login targets an unknown account so that the
// "no such user" path performs the same amount of work as "wrong password".
const dummyVerifier = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// PasswordHasher hashes plaintext passwords into storable verifiers and
// checks candidates against them. Safe for concurrent use; the cost is
// immutable after construction.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher constructs a PasswordHasher with the given bcrypt work
// factor. A cost of zero selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// HashPassword transforms a plaintext password into a bcrypt verifier.
// The salt is generated internally, so two calls with the same input
// produce different verifiers.
func (h *PasswordHasher) HashPassword(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the given verifier.
// A malformed verifier yields false rather than an error: the caller only
// ever needs to know whether authentication may proceed.
func (h *PasswordHasher) VerifyPassword(plaintext, verifier string) bool {
	return bcrypt.CompareHashAndPassword([]byte(verifier), []byte(plaintext)) == nil
}

// DummyVerify burns one bcrypt comparison against a fixed verifier.
// Called on the "user not found" login path so it is not distinguishable
// from a failed password check by timing.
func (h *PasswordHasher) DummyVerify(plaintext string) {
	_ = bcrypt.CompareHashAndPassword([]byte(dummyVerifier), []byte(plaintext))
}
