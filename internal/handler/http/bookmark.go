package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-mark-keeper/internal/logger"
	"github.com/MKhiriev/go-mark-keeper/internal/service"
	"github.com/MKhiriev/go-mark-keeper/internal/store"
	"github.com/MKhiriev/go-mark-keeper/internal/utils"
	"github.com/MKhiriev/go-mark-keeper/models"
)

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user ID in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var create models.BookmarkCreate
	if err := json.NewDecoder(r.Body).Decode(&create); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON was passed", service.ErrInvalidDataProvided))
		return
	}

	createdBookmark, err := h.services.BookmarkService.CreateBookmark(ctx, userID, create)
	if err != nil {
		log.Err(err).Msg("bookmark creation failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, createdBookmark, http.StatusCreated)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user ID in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	bookmarks, err := h.services.BookmarkService.ListBookmarks(ctx, userID)
	if err != nil {
		log.Err(err).Msg("bookmark listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, bookmarks, http.StatusOK)
}

func (h *Handler) getBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user ID in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid bookmark ID in path")
		writeError(w, err)
		return
	}

	foundBookmark, err := h.services.BookmarkService.GetBookmark(ctx, userID, bookmarkID)
	if err != nil {
		log.Err(err).Int64("bookmark_id", bookmarkID).Msg("bookmark lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, foundBookmark, http.StatusOK)
}

func (h *Handler) updateBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user ID in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid bookmark ID in path")
		writeError(w, err)
		return
	}

	var update models.BookmarkUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON was passed", service.ErrInvalidDataProvided))
		return
	}

	updatedBookmark, err := h.services.BookmarkService.UpdateBookmark(ctx, userID, bookmarkID, update)
	if err != nil {
		log.Err(err).Int64("bookmark_id", bookmarkID).Msg("bookmark update failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, updatedBookmark, http.StatusOK)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user ID in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	bookmarkID, err := bookmarkIDFromRequest(r)
	if err != nil {
		log.Err(err).Msg("invalid bookmark ID in path")
		writeError(w, err)
		return
	}

	if err := h.services.BookmarkService.DeleteBookmark(ctx, userID, bookmarkID); err != nil {
		log.Err(err).Int64("bookmark_id", bookmarkID).Msg("bookmark deletion failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// bookmarkIDFromRequest parses the {bookmarkID} path parameter. A value that
// is not a positive integer cannot name an existing record, so it reports
// store.ErrBookmarkNotFound rather than a validation error.
func bookmarkIDFromRequest(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "bookmarkID")

	bookmarkID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || bookmarkID <= 0 {
		return 0, store.ErrBookmarkNotFound
	}

	return bookmarkID, nil
}
