package handler

import (
	"context"
	"net/http"

	"github.com/forgo/maingen/internal/model"
)

// Authenticator is the subset of the auth service used by AuthHandler
type Authenticator interface {
	Signup(ctx context.Context, email, password string) (string, error)
	Signin(ctx context.Context, email, password string) (string, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService       Authenticator
	minPasswordLength int
}

// AuthHandlerConfig holds dependencies for the auth handler
type AuthHandlerConfig struct {
	AuthService       Authenticator
	MinPasswordLength int
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(cfg AuthHandlerConfig) *AuthHandler {
	if cfg.MinPasswordLength <= 0 {
		cfg.MinPasswordLength = model.MinPasswordLength
	}
	return &AuthHandler{
		authService:       cfg.AuthService,
		minPasswordLength: cfg.MinPasswordLength,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req model.SignupRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, invalidBody(err))
		return
	}
	if errs := req.Validate(h.minPasswordLength); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	token, err := h.authService.Signup(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, model.TokenResponse{AccessToken: token})
}

// Signin handles POST /auth/signin
func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	var req model.SigninRequest
	if err := DecodeJSON(w, r, &req); err != nil {
		WriteError(w, invalidBody(err))
		return
	}
	if errs := req.Validate(); len(errs) > 0 {
		WriteError(w, model.NewValidationError(errs))
		return
	}

	token, err := h.authService.Signin(r.Context(), req.Email, req.Secret())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, model.TokenResponse{AccessToken: token})
}
