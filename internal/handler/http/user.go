package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-mark-keeper/internal/logger"
	"github.com/MKhiriev/go-mark-keeper/internal/service"
	"github.com/MKhiriev/go-mark-keeper/internal/store"
	"github.com/MKhiriev/go-mark-keeper/internal/utils"
	"github.com/MKhiriev/go-mark-keeper/models"
)

// meError adjusts service errors for /api/users/me responses. The path names
// the caller rather than a resource that can be missing, so an account
// deleted while its token is still in flight answers 401, never 404.
func meError(err error) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return service.ErrTokenIsExpiredOrInvalid
	}
	return err
}

// getMe returns the authenticated user's own account record.
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user ID in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	user, err := h.services.UserService.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Msg("user lookup failed")
		writeError(w, meError(err))
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// updateMe applies a partial update to the authenticated user's account and
// returns the updated record.
func (h *Handler) updateMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user ID in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, fmt.Errorf("%w: invalid JSON was passed", service.ErrInvalidDataProvided))
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Msg("user update failed")
		writeError(w, meError(err))
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

// deleteMe removes the authenticated user's account together with all owned
// bookmarks.
func (h *Handler) deleteMe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := utils.GetUserIDFromContext(ctx)
	if err != nil {
		log.Err(err).Msg("no user ID in request context")
		writeError(w, service.ErrTokenIsExpiredOrInvalid)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Msg("user deletion failed")
		writeError(w, meError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
