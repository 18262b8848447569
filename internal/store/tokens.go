package store

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"sync"
)

// tokenBytes is the amount of randomness per token (256 bits)
const tokenBytes = 32

// TokenStore maps issued access tokens to the email they were issued for.
// Tokens never expire and are never revoked.
type TokenStore struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewTokenStore creates an empty token store
func NewTokenStore() *TokenStore {
	return &TokenStore{
		tokens: make(map[string]string),
	}
}

// Issue generates a new random token for email and records it
func (s *TokenStore) Issue(email string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	s.mu.Lock()
	s.tokens[token] = email
	s.mu.Unlock()

	return token, nil
}

// GetEmail returns the email a token was issued for
func (s *TokenStore) GetEmail(token string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email, ok := s.tokens[token]
	return email, ok
}

// Count returns the number of issued tokens
func (s *TokenStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.tokens)
}

func generateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
