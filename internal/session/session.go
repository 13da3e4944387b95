// Package session issues opaque bearer tokens that tie HTTP requests to
// the signed-in user. This is request plumbing, not an authentication
// security layer: tokens are random, unsigned, and live only in memory.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Registry maps live tokens to user ids.
type Registry struct {
	mu     sync.Mutex
	tokens map[string]string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]string)}
}

// Issue creates a new token for the user.
func (r *Registry) Issue(userID string) string {
	token := uuid.New().String()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = userID
	return token
}

// Resolve returns the user id behind a token.
func (r *Registry) Resolve(token string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	userID, ok := r.tokens[token]
	return userID, ok
}

// Revoke invalidates a token. Revoking an unknown token is a no-op.
func (r *Registry) Revoke(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tokens, token)
}
