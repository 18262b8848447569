package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/forgo/maingen/internal/store"
)

// UserRepository defines the interface for credential storage
type UserRepository interface {
	CreateUser(ctx context.Context, email, password string) error
	VerifyUser(ctx context.Context, email, password string) bool
}

// TokenRepository defines the interface for access token storage
type TokenRepository interface {
	Issue(email string) (string, error)
	GetEmail(token string) (string, bool)
}

// AuthService handles signup, signin and token resolution
type AuthService struct {
	userRepo  UserRepository
	tokenRepo TokenRepository
}

// AuthServiceConfig holds configuration for the auth service
type AuthServiceConfig struct {
	UserRepo  UserRepository
	TokenRepo TokenRepository
}

// NewAuthService creates a new auth service
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		userRepo:  cfg.UserRepo,
		tokenRepo: cfg.TokenRepo,
	}
}

// Signup registers a new user and returns a fresh access token
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, error) {
	if err := s.userRepo.CreateUser(ctx, email, password); err != nil {
		if errors.Is(err, store.ErrUserExists) {
			return "", ErrEmailAlreadyExists
		}
		return "", fmt.Errorf("signup: %w", err)
	}

	token, err := s.tokenRepo.Issue(email)
	if err != nil {
		return "", fmt.Errorf("signup: %w", err)
	}

	slog.InfoContext(ctx, "user signed up", slog.String("email", email))
	return token, nil
}

// Signin verifies credentials and returns a fresh access token. Unknown
// emails and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Signin(ctx context.Context, email, password string) (string, error) {
	if !s.userRepo.VerifyUser(ctx, email, password) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenRepo.Issue(email)
	if err != nil {
		return "", fmt.Errorf("signin: %w", err)
	}
	return token, nil
}

// ResolveToken returns the email an access token was issued for
func (s *AuthService) ResolveToken(token string) (string, bool) {
	if token == "" {
		return "", false
	}
	return s.tokenRepo.GetEmail(token)
}
