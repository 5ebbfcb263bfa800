package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"catalog-api/internal/model"
	"catalog-api/internal/service"

	"github.com/rs/zerolog"
)

// AuthHandler handles registration and login requests.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("handler", "auth").Logger(),
	}
}

// Register handles POST /register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid data", h.logger)
		return
	}

	if fieldErrors := validateCredentials(req); len(fieldErrors) > 0 {
		writeValidationError(w, r, fieldErrors, h.logger)
		return
	}

	if err := h.service.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, model.ErrUsernameTaken) {
			writeError(w, r, http.StatusBadRequest, "Username already exists", h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to register user", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "User created successfully"})
}

// Login handles POST /login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "Invalid data", h.logger)
		return
	}

	if fieldErrors := validateCredentials(req); len(fieldErrors) > 0 {
		writeValidationError(w, r, fieldErrors, h.logger)
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			writeError(w, r, http.StatusUnauthorized, "Invalid credentials", h.logger)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "failed to log in", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{AccessToken: token})
}
