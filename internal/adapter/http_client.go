package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-mark-keeper/internal/utils"
	"github.com/MKhiriev/go-mark-keeper/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	var registeredUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&registeredUser).
		Post("/api/users/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return registeredUser, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	var response models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&response).
		Post("/api/users/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	userID, err := utils.ParseUserIDFromJWT(response.AccessToken)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(response.AccessToken)
	return models.Token{SignedString: response.AccessToken, UserID: userID}, nil
}

func (h *httpServerAdapter) CurrentUser(ctx context.Context) (models.User, error) {
	resp, err := h.authedRequest(ctx).Get("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("current user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode current user response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) UpdateCurrentUser(ctx context.Context, update models.UserUpdate) (models.User, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put("/api/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("update user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	var user models.User
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.User{}, fmt.Errorf("decode updated user response: %w", err)
	}

	return user, nil
}

func (h *httpServerAdapter) DeleteCurrentUser(ctx context.Context) error {
	resp, err := h.authedRequest(ctx).Delete("/api/users/me")
	if err != nil {
		return fmt.Errorf("delete user request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateBookmark(ctx context.Context, create models.BookmarkCreate) (models.Bookmark, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(create).
		Post("/api/bookmarks")
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("create bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, err
	}

	var bookmark models.Bookmark
	if err = json.Unmarshal(resp.Body(), &bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("decode created bookmark response: %w", err)
	}

	return bookmark, nil
}

func (h *httpServerAdapter) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	resp, err := h.authedRequest(ctx).Get("/api/bookmarks")
	if err != nil {
		return nil, fmt.Errorf("list bookmarks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var bookmarks []models.Bookmark
	if err = json.Unmarshal(resp.Body(), &bookmarks); err != nil {
		return nil, fmt.Errorf("decode bookmarks response: %w", err)
	}

	return bookmarks, nil
}

func (h *httpServerAdapter) GetBookmark(ctx context.Context, bookmarkID int64) (models.Bookmark, error) {
	resp, err := h.authedRequest(ctx).Get(bookmarkPath(bookmarkID))
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("get bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, err
	}

	var bookmark models.Bookmark
	if err = json.Unmarshal(resp.Body(), &bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("decode bookmark response: %w", err)
	}

	return bookmark, nil
}

func (h *httpServerAdapter) UpdateBookmark(ctx context.Context, bookmarkID int64, update models.BookmarkUpdate) (models.Bookmark, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		Put(bookmarkPath(bookmarkID))
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("update bookmark request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Bookmark{}, err
	}

	var bookmark models.Bookmark
	if err = json.Unmarshal(resp.Body(), &bookmark); err != nil {
		return models.Bookmark{}, fmt.Errorf("decode updated bookmark response: %w", err)
	}

	return bookmark, nil
}

func (h *httpServerAdapter) DeleteBookmark(ctx context.Context, bookmarkID int64) error {
	resp, err := h.authedRequest(ctx).Delete(bookmarkPath(bookmarkID))
	if err != nil {
		return fmt.Errorf("delete bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func bookmarkPath(bookmarkID int64) string {
	return "/api/bookmarks/" + strconv.FormatInt(bookmarkID, 10)
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	var serverMessage string
	var errorResponse models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errorResponse); err == nil {
		serverMessage = errorResponse.Error
	}
	if serverMessage == "" {
		serverMessage = strings.TrimSpace(string(resp.Body()))
	}
	if serverMessage == "" {
		serverMessage = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, serverMessage)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, serverMessage)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, serverMessage)
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, serverMessage)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), serverMessage)
}
