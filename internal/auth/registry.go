package auth

import "sync"

// Registry is the live-token set: every issued session token is added here
// and membership is required for validation. Entries are never removed, so
// the set grows for the lifetime of the process; expiry is enforced only by
// the token's own embedded claim at validation time.
type Registry struct {
	mu     sync.RWMutex
	tokens map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]struct{})}
}

// Add records a newly issued token string.
func (r *Registry) Add(token string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = struct{}{}
}

// Contains reports whether the token was issued by this process.
func (r *Registry) Contains(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tokens[token]
	return ok
}

// Len returns the number of tokens ever issued and still held.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tokens)
}
