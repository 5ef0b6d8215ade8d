package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

// TokenStore issues single-use CSRF tokens. A token minted by a
// form-rendering GET is accepted by at most one subsequent POST;
// consuming it removes it, so a replay with the same token fails.
type TokenStore interface {
	// Mint creates a fresh token and records it as outstanding.
	Mint(ctx context.Context) (string, error)
	// Consume removes the token and reports whether it was outstanding.
	Consume(ctx context.Context, token string) bool
}

type memoryTokenStore struct {
	mu     sync.Mutex
	tokens map[string]time.Time // token -> expiry
	ttl    time.Duration
}

// NewMemoryTokenStore returns an in-process TokenStore. Unconsumed
// tokens expire after ttl so the map cannot grow without bound.
func NewMemoryTokenStore(ttl time.Duration) TokenStore {
	return &memoryTokenStore{
		tokens: make(map[string]time.Time),
		ttl:    ttl,
	}
}

func (s *memoryTokenStore) Mint(ctx context.Context) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpired()
	s.tokens[token] = time.Now().Add(s.ttl)
	return token, nil
}

func (s *memoryTokenStore) Consume(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.tokens[token]
	if !ok {
		return false
	}
	delete(s.tokens, token)
	return time.Now().Before(expiry)
}

// evictExpired is called with the lock held.
func (s *memoryTokenStore) evictExpired() {
	now := time.Now()
	for token, expiry := range s.tokens {
		if now.After(expiry) {
			delete(s.tokens, token)
		}
	}
}

func generateToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
