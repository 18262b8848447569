package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/forgo/maingen/internal/model"
)

// dummyPassword is hashed once so unknown emails are verified against a real
// digest, keeping both VerifyUser paths the same shape.
const dummyPassword = "maingen-dummy-password"

// PasswordHasher computes and checks one-way password digests
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Verify(ctx context.Context, password, digest string) bool
}

// UserStore holds registered credentials keyed by email
type UserStore struct {
	mu     sync.RWMutex
	users  map[string]model.User
	hasher PasswordHasher

	dummyOnce   sync.Once
	dummyDigest string
}

// NewUserStore creates an empty user store
func NewUserStore(hasher PasswordHasher) *UserStore {
	return &UserStore{
		users:  make(map[string]model.User),
		hasher: hasher,
	}
}

// CreateUser registers email with a digest of password. The digest is
// computed outside the lock; the insert re-checks so racing registrations of
// the same email produce exactly one user.
func (s *UserStore) CreateUser(ctx context.Context, email, password string) error {
	if s.Exists(email) {
		return ErrUserExists
	}

	digest, err := s.hasher.Hash(ctx, password)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[email]; ok {
		return ErrUserExists
	}
	s.users[email] = model.User{Email: email, Hash: digest}
	return nil
}

// VerifyUser reports whether password matches the digest stored for email.
// Unknown emails report false.
func (s *UserStore) VerifyUser(ctx context.Context, email, password string) bool {
	s.mu.RLock()
	user, ok := s.users[email]
	s.mu.RUnlock()

	if !ok {
		s.hasher.Verify(ctx, password, s.dummy())
		return false
	}
	return s.hasher.Verify(ctx, password, user.Hash)
}

// Exists reports whether email is registered
func (s *UserStore) Exists(email string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[email]
	return ok
}

// Count returns the number of registered users
func (s *UserStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.users)
}

// dummy hashes with a background context so a cancelled first caller cannot
// leave the digest empty for the life of the store.
func (s *UserStore) dummy() string {
	s.dummyOnce.Do(func() {
		// A failed hash leaves the digest empty, which never verifies
		s.dummyDigest, _ = s.hasher.Hash(context.Background(), dummyPassword)
	})
	return s.dummyDigest
}
