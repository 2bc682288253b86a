package router

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const limiterIdleEviction = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiters struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rps     rate.Limit
	burst   int
}

func (rl *rateLimiters) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.clients[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.rps, rl.burst)}
		rl.clients[key] = cl
	}
	cl.lastSeen = time.Now()

	// Evict idle entries inline so the map does not grow unbounded.
	for k, c := range rl.clients {
		if time.Since(c.lastSeen) > limiterIdleEviction {
			delete(rl.clients, k)
		}
	}

	return cl.limiter
}

// middlewareRateLimit applies a per-client token bucket keyed by remote IP.
// It runs after middlewareIP, so RemoteAddr already holds the real client IP.
func middlewareRateLimit(rps float64, burst int) Middleware {
	rl := &rateLimiters{
		clients: make(map[string]*clientLimiter),
		rps:     rate.Limit(rps),
		burst:   burst,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if rps <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			if !rl.get(r.RemoteAddr).Allow() {
				writeJSON(w, errorResponse{Message: "Too many requests"}, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
