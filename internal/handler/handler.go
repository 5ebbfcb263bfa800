package handler

import (
	"encoding/json"
	"net/http"

	"catalog-api/internal/middleware"
	"catalog-api/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; an encode failure cannot change the response.
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{
		Message:       message,
		CorrelationID: middleware.RequestIDFrom(r.Context()),
	})
}

// writeValidationError writes a 400 response carrying per-field messages.
func writeValidationError(w http.ResponseWriter, r *http.Request, fieldErrors map[string]string, logger zerolog.Logger) {
	logger.Debug().Interface("errors", fieldErrors).Msg("validation failed")
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
		Message:       "Invalid data",
		Errors:        fieldErrors,
		CorrelationID: middleware.RequestIDFrom(r.Context()),
	})
}

// messageResponse is a bare confirmation body.
type messageResponse struct {
	Message string `json:"message"`
}

// tokenResponse carries a freshly issued bearer token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
}
