// Package rate_limiter keeps one token bucket per client address so a single
// dashboard poller cannot starve the API.
package rate_limiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	requestsPerSecond = 5
	burst             = 10
	staleAfter        = 5 * time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Registry hands out limiters keyed by client address and evicts ones that
// have gone quiet.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*client
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]*client)}
}

// Limiter returns the limiter for addr, creating it on first sight.
func (r *Registry) Limiter(addr string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.clients[addr]
	if !ok {
		c = &client{limiter: rate.NewLimiter(requestsPerSecond, burst)}
		r.clients[addr] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

// StartCleanupLoop evicts stale clients every interval. Run it in its own
// goroutine.
func (r *Registry) StartCleanupLoop(interval time.Duration) {
	for {
		time.Sleep(interval)
		r.mu.Lock()
		for addr, c := range r.clients {
			if time.Since(c.lastSeen) > staleAfter {
				delete(r.clients, addr)
			}
		}
		r.mu.Unlock()
	}
}

// Reset drops every tracked client. Used between tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clients = make(map[string]*client)
}
