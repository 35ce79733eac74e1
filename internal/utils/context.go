// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, JWT token generation and validation,
// and other common operations.
package utils

import (
	"context"
	"errors"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key used to store the authenticated user identifier in
// the context. Used together with GetUserIDFromContext for type-safe
// retrieval of the user ID from context.Context.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
var UserIDCtxKey = contextKey("userID")

// ErrNoUserInContext is returned by GetUserIDFromContext when the context
// carries no user identifier or the stored value has an unexpected type.
var ErrNoUserInContext = errors.New("no user ID in context")

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64, or [ErrNoUserInContext] when the value
// is missing or has an unexpected type.
//
// Example usage:
//
//	userID, err := utils.GetUserIDFromContext(ctx)
//	if err != nil {
//	    // handle missing user in context
//	}
func GetUserIDFromContext(ctx context.Context) (int64, error) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	if !ok {
		return 0, ErrNoUserInContext
	}
	return userID, nil
}
