package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	app_errors "chatvault/backend/internal/errors"
)

// ErrorResponse defines the standard JSON structure for error messages.
type ErrorResponse struct {
	Error string `json:"error" example:"chat not found"`
}

// StatusResponse is returned by mutations that have no resource to return.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

var statusOK = StatusResponse{Status: "ok"}

// respondWithError maps domain errors to HTTP status codes. Only validation
// messages are passed through to the client; everything else gets a fixed
// message so store details never leak.
func respondWithError(w http.ResponseWriter, err error) {
	var statusCode int
	var message string

	switch {
	case errors.Is(err, app_errors.ErrValidation):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errMissingToken):
		statusCode = http.StatusUnauthorized
		message = authorizationRequired
	case errors.Is(err, app_errors.ErrUnauthorized):
		statusCode = http.StatusUnauthorized
		message = "invalid credentials"
	case errors.Is(err, app_errors.ErrPermission):
		statusCode = http.StatusForbidden
		message = "invalid or expired token"
	case errors.Is(err, app_errors.ErrNotFound):
		statusCode = http.StatusNotFound
		message = "not found"
	case errors.Is(err, app_errors.ErrConflict):
		statusCode = http.StatusConflict
		message = "resource already exists"
	default:
		statusCode = http.StatusInternalServerError
		message = "internal server error"
	}

	if statusCode >= http.StatusInternalServerError {
		slog.Error("Responding with error", "status_code", statusCode, "internal_error", err)
	} else {
		slog.Warn("Responding with error", "status_code", statusCode, "client_message", message, "internal_error", err)
	}

	respondWithJSON(w, statusCode, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Error("Failed to marshal JSON response", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		slog.Error("Failed to write JSON response", "error", err)
	}
}

// decodeJSON reads the request body into dst. A body that is not valid JSON
// for dst is a validation error.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request payload", app_errors.ErrValidation)
	}
	return nil
}
