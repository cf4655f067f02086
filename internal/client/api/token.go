package api

import "sync"

// TokenSource yields the bearer token for outgoing requests. An empty token
// means the request goes out without an Authorization header.
type TokenSource interface {
	Token() string
}

// TokenHolder is a TokenSource the REPL can set and clear at runtime.
type TokenHolder struct {
	mu    sync.RWMutex
	token string
}

func (h *TokenHolder) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *TokenHolder) Set(token string) {
	h.mu.Lock()
	h.token = token
	h.mu.Unlock()
}

func (h *TokenHolder) Clear() {
	h.Set("")
}
