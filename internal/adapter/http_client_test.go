// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-mark-keeper/internal/utils"
	"github.com/MKhiriev/go-mark-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, handler http.Handler) ServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPServerAdapter(HTTPClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})
}

func signedTestToken(t *testing.T, userID int64) string {
	t.Helper()
	token, err := utils.GenerateJWTToken("go-mark-keeper", userID, time.Hour, "test-sign-key")
	require.NoError(t, err)
	return token.SignedString
}

func TestHTTPServerAdapter_Register(t *testing.T) {
	signed := signedTestToken(t, 1)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/register", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var request models.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, "alice@example.com", request.Email)

		w.Header().Set("Authorization", "Bearer "+signed)
		utils.WriteJSON(w, models.User{UserID: 1, Email: request.Email, Name: request.Name}, http.StatusOK)
	})

	a := newTestAdapter(t, mux)

	registered, err := a.Register(context.Background(), models.RegisterRequest{
		Email:    "alice@example.com",
		Password: "secret",
		Name:     "Alice",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), registered.UserID)
	assert.Equal(t, signed, a.Token())
}

func TestHTTPServerAdapter_Login(t *testing.T) {
	signed := signedTestToken(t, 7)

	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.TokenResponse{AccessToken: signed, TokenType: "bearer"}, http.StatusOK)
	})

	a := newTestAdapter(t, mux)

	token, err := a.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)
	assert.Equal(t, signed, a.Token())
}

func TestHTTPServerAdapter_Login_Unauthorized(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/login", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid email or password"}, http.StatusUnauthorized)
	})

	a := newTestAdapter(t, mux)

	_, err := a.Login(context.Background(), models.LoginRequest{Email: "bob@example.com", Password: "wrong"})

	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, a.Token())
}

func TestHTTPServerAdapter_BookmarkFlow(t *testing.T) {
	const token = "stored.bearer.token"

	mux := http.NewServeMux()
	mux.HandleFunc("/api/bookmarks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))

		switch r.Method {
		case http.MethodPost:
			var create models.BookmarkCreate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&create))
			utils.WriteJSON(w, models.Bookmark{BookmarkID: 42, URL: create.URL, Title: create.Title}, http.StatusCreated)
		case http.MethodGet:
			utils.WriteJSON(w, []models.Bookmark{{BookmarkID: 42}}, http.StatusOK)
		}
	})
	mux.HandleFunc("/api/bookmarks/42", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer "+token, r.Header.Get("Authorization"))

		switch r.Method {
		case http.MethodGet:
			utils.WriteJSON(w, models.Bookmark{BookmarkID: 42, URL: "https://go.dev"}, http.StatusOK)
		case http.MethodPut:
			var update models.BookmarkUpdate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&update))
			require.NotNil(t, update.Title)
			utils.WriteJSON(w, models.Bookmark{BookmarkID: 42, Title: *update.Title}, http.StatusOK)
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	})

	a := newTestAdapter(t, mux)
	a.SetToken(token)
	ctx := context.Background()

	created, err := a.CreateBookmark(ctx, models.BookmarkCreate{URL: "https://go.dev", Title: "Go"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), created.BookmarkID)

	list, err := a.ListBookmarks(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	got, err := a.GetBookmark(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, "https://go.dev", got.URL)

	title := "Updated"
	updated, err := a.UpdateBookmark(ctx, 42, models.BookmarkUpdate{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Updated", updated.Title)

	require.NoError(t, a.DeleteBookmark(ctx, 42))
}

func TestHTTPServerAdapter_NotFoundMapping(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/bookmarks/404", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "bookmark not found"}, http.StatusNotFound)
	})

	a := newTestAdapter(t, mux)
	a.SetToken("token")

	_, err := a.GetBookmark(context.Background(), 404)

	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "bookmark not found")
}

func TestHTTPServerAdapter_ConflictMapping(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users/me", func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, models.ErrorResponse{Error: "email already exists"}, http.StatusConflict)
	})

	a := newTestAdapter(t, mux)
	a.SetToken("token")

	email := "taken@example.com"
	_, err := a.UpdateCurrentUser(context.Background(), models.UserUpdate{Email: &email})

	require.ErrorIs(t, err, ErrConflict)
}
