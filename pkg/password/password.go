package password

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"
)

var (
	ErrEmptyPassword = errors.New("password is empty")
	ErrInvalidCost   = errors.New("invalid bcrypt cost")
)

// Config holds hasher settings
type Config struct {
	Cost          int   // bcrypt cost (default bcrypt.DefaultCost)
	MaxConcurrent int64 // Concurrent bcrypt computations (default GOMAXPROCS)
}

// Hasher computes and verifies bcrypt digests
type Hasher struct {
	cost int
	sem  *semaphore.Weighted
}

// NewHasher creates a new hasher
func NewHasher(cfg Config) (*Hasher, error) {
	if cfg.Cost == 0 {
		cfg.Cost = bcrypt.DefaultCost
	}
	if cfg.Cost < bcrypt.MinCost || cfg.Cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCost, cfg.Cost)
	}
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = int64(runtime.GOMAXPROCS(0))
	}

	return &Hasher{
		cost: cfg.Cost,
		sem:  semaphore.NewWeighted(cfg.MaxConcurrent),
	}, nil
}

// Cost returns the bcrypt cost used for new digests
func (h *Hasher) Cost() int {
	return h.cost
}

// Hash returns the bcrypt digest of password
func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer h.sem.Release(1)

	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// Verify reports whether password matches digest. A cancelled context or a
// malformed digest reports false.
func (h *Hasher) Verify(ctx context.Context, password, digest string) bool {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return false
	}
	defer h.sem.Release(1)

	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
