package service

import (
	"errors"

	"github.com/forgo/maingen/internal/store"
)

// ===== Authentication Errors =====
var (
	ErrEmailAlreadyExists = errors.New("user exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ===== Tree Errors =====
var (
	ErrTreeNotFound = store.ErrTreeNotFound
)
