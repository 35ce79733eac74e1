package utils

import (
	"context"
	"errors"
	"testing"
)

func TestGetUserIDFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, int64(42))

	userID, err := GetUserIDFromContext(ctx)
	if err != nil {
		t.Fatalf("expected user ID to be found, got %v", err)
	}
	if userID != 42 {
		t.Errorf("expected 42, got %d", userID)
	}
}

func TestGetUserIDFromContext_Missing(t *testing.T) {
	_, err := GetUserIDFromContext(context.Background())
	if !errors.Is(err, ErrNoUserInContext) {
		t.Errorf("expected ErrNoUserInContext for empty context, got %v", err)
	}
}

func TestGetUserIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserIDCtxKey, "not-an-int64")

	_, err := GetUserIDFromContext(ctx)
	if !errors.Is(err, ErrNoUserInContext) {
		t.Errorf("expected ErrNoUserInContext for wrong value type, got %v", err)
	}
}

func TestContextKey_String(t *testing.T) {
	if UserIDCtxKey.String() != "userID" {
		t.Errorf("unexpected key string: %s", UserIDCtxKey.String())
	}
}
