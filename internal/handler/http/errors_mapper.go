package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mark-keeper/internal/service"
	"github.com/MKhiriev/go-mark-keeper/internal/store"
	"github.com/MKhiriev/go-mark-keeper/internal/utils"
	"github.com/MKhiriev/go-mark-keeper/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidURL:              http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	// store.ErrNoUserWasFound is deliberately absent: the /api/users/me
	// handlers translate it to a 401 (meError), and the auth middleware
	// handles it explicitly, so no route ever reports a missing user as 404.
	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrBookmarkNotFound:   http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to its HTTP status and writes a JSON error body.
// Server-side failures are reported with a generic message so internal
// details never reach the caller.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}

// unauthorized writes a 401 JSON error body with the given message.
func unauthorized(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, http.StatusUnauthorized)
}
