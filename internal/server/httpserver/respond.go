package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"recruitd/internal/errs"
)

// errorBody is the uniform error response shape.
type errorBody struct {
	Error          string `json:"error"`
	CurrentVersion *int64 `json:"currentVersion,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, errorBody{Error: msg})
}

// respondServiceError maps service and repository errors onto the HTTP error
// taxonomy. Unknown errors are logged and sanitized to a plain 500.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error) {
	var stale *errs.StaleVersionError
	var invalid *errs.InvalidParameterError
	switch {
	case errors.As(err, &stale):
		cur := stale.Current
		respondJSON(w, http.StatusConflict, errorBody{
			Error:          "application was updated concurrently, re-fetch and try again",
			CurrentVersion: &cur,
		})
	case errors.As(err, &invalid):
		respondError(w, http.StatusBadRequest, invalid.Error())
	case errors.Is(err, errs.ErrInvalidStatus):
		respondError(w, http.StatusBadRequest,
			`invalid value for status, expected "unchecked", "accepted" or "denied"`)
	case errors.Is(err, errs.ErrNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, errs.ErrAlreadyExists):
		respondError(w, http.StatusConflict, "already exists")
	case errors.Is(err, errs.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "wrong username or password")
	case errors.Is(err, errs.ErrForbidden):
		respondError(w, http.StatusForbidden, "insufficient permissions")
	case errors.Is(err, errs.ErrRateLimited):
		respondError(w, http.StatusTooManyRequests, "too many failed attempts, try again later")
	default:
		log.Error("request failed", zap.Error(err))
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}
