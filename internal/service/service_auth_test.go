// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-mark-keeper/internal/config"
	"github.com/MKhiriev/go-mark-keeper/internal/crypto"
	"github.com/MKhiriev/go-mark-keeper/internal/logger"
	"github.com/MKhiriev/go-mark-keeper/internal/store"
	"github.com/MKhiriev/go-mark-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createFn      func(ctx context.Context, user models.User) (models.User, error)
	findByEmailFn func(ctx context.Context, email string) (models.User, error)
	findByIDFn    func(ctx context.Context, userID int64) (models.User, error)
	updateFn      func(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error)
	deleteFn      func(ctx context.Context, userID int64) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findByEmailFn != nil {
		return m.findByEmailFn(ctx, email)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, userID)
	}
	return models.User{}, store.ErrNoUserWasFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, userID int64, patch models.UserPatch) (models.User, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, patch)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) DeleteUser(ctx context.Context, userID int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, userID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var errRepository = errors.New("repository error")

func testAuthConfig() config.Auth {
	return config.Auth{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-mark-keeper",
		TokenDuration: time.Hour,
	}
}

func newTestAuthService(repo *mockUserRepository) AuthService {
	return NewAuthService(repo, crypto.NewPasswordHasher(4), testAuthConfig(), logger.Nop())
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.UserID = 1
			return user, nil
		},
	}
	svc := newTestAuthService(repo)

	registered, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
		Name:     "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, "alice@example.com", registered.Email)
	assert.NotEmpty(t, registered.PasswordHash)
	assert.NotEqual(t, "secret", registered.PasswordHash)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name    string
		request models.RegisterRequest
	}{
		{name: "empty email", request: models.RegisterRequest{Password: "secret"}},
		{name: "empty password", request: models.RegisterRequest{Email: "alice@example.com"}},
		{name: "email without at sign", request: models.RegisterRequest{Email: "alice.example.com", Password: "secret"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.RegisterUser(context.Background(), tt.request)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrEmailAlreadyExists
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
	})

	require.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

func TestAuthService_RegisterUser_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, errRepository
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.RegisterUser(context.Background(), models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
	})

	require.ErrorIs(t, err, errRepository)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	hasher := crypto.NewPasswordHasher(4)
	hash, err := hasher.HashPassword("secret")
	require.NoError(t, err)

	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return models.User{UserID: 1, Email: email, PasswordHash: hash}, nil
		},
	}
	svc := newTestAuthService(repo)

	user, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestAuthService_Login_UnknownUserAndWrongPasswordAreIdentical(t *testing.T) {
	hasher := crypto.NewPasswordHasher(4)
	hash, err := hasher.HashPassword("secret")
	require.NoError(t, err)

	unknownRepo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrNoUserWasFound
		},
	}
	wrongPasswordRepo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, email string) (models.User, error) {
			return models.User{UserID: 1, Email: email, PasswordHash: hash}, nil
		},
	}

	_, unknownErr := newTestAuthService(unknownRepo).Login(context.Background(), models.LoginRequest{
		Email:    "ghost@example.com",
		Password: "secret",
	})
	_, wrongErr := newTestAuthService(wrongPasswordRepo).Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "not-the-password",
	})

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

func TestAuthService_Login_EmptyCredentials(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	_, err := svc.Login(context.Background(), models.LoginRequest{})

	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_RepositoryError(t *testing.T) {
	repo := &mockUserRepository{
		findByEmailFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, errRepository
		},
	}
	svc := newTestAuthService(repo)

	_, err := svc.Login(context.Background(), models.LoginRequest{
		Email:    "alice@example.com",
		Password: "secret",
	})

	require.ErrorIs(t, err, errRepository)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

// ─────────────────────────────────────────────
// CreateToken / ParseToken
// ─────────────────────────────────────────────

func TestAuthService_CreateToken_RoundTrip(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	userID, err := parsed.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	svc := newTestAuthService(&mockUserRepository{})

	tests := []struct {
		name        string
		tokenString string
	}{
		{name: "empty", tokenString: ""},
		{name: "garbage", tokenString: "not.a.jwt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseToken(context.Background(), tt.tokenString)
			require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestAuthService_ParseToken_WrongKey(t *testing.T) {
	issuing := newTestAuthService(&mockUserRepository{})

	otherCfg := testAuthConfig()
	otherCfg.TokenSignKey = "a-different-key"
	verifying := NewAuthService(&mockUserRepository{}, crypto.NewPasswordHasher(4), otherCfg, logger.Nop())

	token, err := issuing.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	_, err = verifying.ParseToken(context.Background(), token.SignedString)
	require.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
