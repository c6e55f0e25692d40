// ABOUTME: Rate limiting middleware for API endpoints
// ABOUTME: Per-IP token buckets via golang.org/x/time/rate with periodic eviction

package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter hands out a token-bucket limiter per client IP.
type RateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	rate     rate.Limit
	burst    int
}

// clientLimiter pairs a limiter with its last use for eviction.
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// staleAfter is how long an idle client's bucket survives before eviction.
const staleAfter = 10 * time.Minute

// NewRateLimiter creates a rate limiter allowing limit requests per window,
// with bursts up to the full window allowance.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limiters: make(map[string]*clientLimiter),
		rate:     rate.Limit(float64(limit) / window.Seconds()),
		burst:    limit,
	}

	go rl.cleanup()

	return rl
}

// cleanup evicts buckets for clients that have gone quiet.
func (rl *RateLimiter) cleanup() {
	ticker := time.NewTicker(staleAfter)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, cl := range rl.limiters {
			if now.Sub(cl.lastSeen) > staleAfter {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Allow reports whether a request from the given key may proceed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, exists := rl.limiters[key]
	if !exists {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rl.rate, rl.burst),
		}
		rl.limiters[key] = cl
	}
	cl.lastSeen = time.Now()

	return cl.limiter.Allow()
}

// extractIP gets the client IP from the request.
func extractIP(r *http.Request) string {
	// X-Forwarded-For holds the chain; the last entry is nearest proxy.
	xff := r.Header.Get("X-Forwarded-For")
	if xff != "" {
		for i := len(xff) - 1; i >= 0; i-- {
			if xff[i] == ',' || xff[i] == ' ' {
				return xff[i+1:]
			}
		}
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}

// RateLimitMiddleware creates a middleware that enforces rate limits.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r)

			if !limiter.Allow(ip) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.burst))
				w.Header().Set("Retry-After", "60")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"error":"Too many requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", limiter.burst))

			next.ServeHTTP(w, r)
		})
	}
}
