package httpx

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleClientTTL = 5 * time.Minute

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware gives every client IP its own token bucket.
type RateLimitMiddleware struct {
	mu      sync.Mutex
	clients map[string]*clientBucket
	rate    rate.Limit
	burst   int
	now     func() time.Time
}

// NewRateLimitMiddleware limits each client to rps requests per second. Idle
// buckets are swept until ctx is cancelled.
func NewRateLimitMiddleware(ctx context.Context, rps float64, burst int) *RateLimitMiddleware {
	rl := &RateLimitMiddleware{
		clients: make(map[string]*clientBucket),
		rate:    rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
	go rl.sweep(ctx, idleClientTTL)
	return rl
}

func (rl *RateLimitMiddleware) sweep(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.dropIdle(idleClientTTL)
		}
	}
}

func (rl *RateLimitMiddleware) dropIdle(ttl time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := rl.now()
	for ip, b := range rl.clients {
		if now.Sub(b.lastSeen) > ttl {
			delete(rl.clients, ip)
		}
	}
}

func (rl *RateLimitMiddleware) allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	b, ok := rl.clients[ip]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rl.rate, rl.burst)}
		rl.clients[ip] = b
	}
	b.lastSeen = rl.now()
	return b.limiter.Allow()
}

// clientIP is the peer address of the connection. Forwarding headers are
// ignored since the server is not meant to sit behind a proxy.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimitMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !rl.allow(clientIP(r)) {
			JSONErrorWithRequest(r, w, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}
