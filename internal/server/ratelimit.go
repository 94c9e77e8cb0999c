package server

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientLimiter tracks one rate limiter per client IP, evicting entries not
// seen for an hour so the map stays bounded.
type clientLimiter struct {
	mu       sync.Mutex
	clients  map[string]*clientEntry
	limit    rate.Limit
	burst    int
	lastSeen time.Duration
}

type clientEntry struct {
	limiter *rate.Limiter
	seenAt  time.Time
}

func newClientLimiter(limit float64, burst int) *clientLimiter {
	if burst <= 0 {
		burst = int(limit)
	}
	return &clientLimiter{
		clients:  make(map[string]*clientEntry),
		limit:    rate.Limit(limit),
		burst:    burst,
		lastSeen: time.Hour,
	}
}

func (cl *clientLimiter) allow(ip string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	now := time.Now()
	entry, ok := cl.clients[ip]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(cl.limit, cl.burst)}
		cl.clients[ip] = entry
	}
	entry.seenAt = now

	if len(cl.clients) > 1000 {
		for key, e := range cl.clients {
			if now.Sub(e.seenAt) > cl.lastSeen {
				delete(cl.clients, key)
			}
		}
	}

	return entry.limiter.Allow()
}

// rateLimiter returns middleware rejecting clients that exceed the
// per-second request limit with 429.
func rateLimiter(limit float64, burst int) func(http.Handler) http.Handler {
	cl := newClientLimiter(limit, burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			if !cl.allow(ip) {
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
