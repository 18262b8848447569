package handler

import (
	"errors"
	"log/slog"

	"github.com/forgo/maingen/internal/model"
	"github.com/forgo/maingen/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// Unknown errors are logged and reported as 500 without internal detail.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 400 =====
	case errors.Is(err, service.ErrEmailAlreadyExists):
		return model.NewBadRequestError("user exists", model.ErrCodeAlreadyExists)
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewBadRequestError("invalid credentials", model.ErrCodeLoginFailed)

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrTreeNotFound):
		return model.NewNotFoundError("tree")

	default:
		slog.Error("unhandled service error", slog.String("error", err.Error()))
		return model.NewInternalError("An unexpected error occurred")
	}
}
