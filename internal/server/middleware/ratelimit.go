package middleware

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const (
	sweepEvery = 10 * time.Minute
	idleAfter  = 30 * time.Minute
)

// tooManyRequests is the problem document huma would emit for a 429.
const tooManyRequests = `{"title":"Too Many Requests","status":429,"detail":"rate limit exceeded"}`

// visitors holds one token bucket per client address seen by the preview
// server.
type visitors struct {
	mu    sync.Mutex
	rps   rate.Limit
	burst int
	seen  map[string]*visitor
}

type visitor struct {
	bucket   *rate.Limiter
	lastSeen time.Time
}

func newVisitors(rps float64, burst int) *visitors {
	return &visitors{rps: rate.Limit(rps), burst: burst, seen: make(map[string]*visitor)}
}

func (v *visitors) allow(addr string, now time.Time) bool {
	v.mu.Lock()
	vis, ok := v.seen[addr]
	if !ok {
		vis = &visitor{bucket: rate.NewLimiter(v.rps, v.burst)}
		v.seen[addr] = vis
	}
	vis.lastSeen = now
	v.mu.Unlock()

	return vis.bucket.AllowN(now, 1)
}

// forget drops visitors idle since before cutoff and reports how many remain.
func (v *visitors) forget(cutoff time.Time) int {
	v.mu.Lock()
	defer v.mu.Unlock()
	for addr, vis := range v.seen {
		if vis.lastSeen.Before(cutoff) {
			delete(v.seen, addr)
		}
	}
	return len(v.seen)
}

func (v *visitors) sweep(ctx context.Context) {
	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for {
		select {
		case now := <-ticker.C:
			v.forget(now.Add(-idleAfter))
		case <-ctx.Done():
			return
		}
	}
}

// RateLimitByIP keeps a single reader from hammering the local preview
// server. Page, asset and API requests all draw from the same bucket for the
// client address, so mount it after chi's RealIP. Idle addresses are
// forgotten until ctx ends.
func RateLimitByIP(ctx context.Context, requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	v := newVisitors(requestsPerSecond, burst)
	go v.sweep(ctx)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !v.allow(clientIP(r), time.Now()) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.Header().Set("Retry-After", "1")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(tooManyRequests))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientIP strips the port RemoteAddr carries when RealIP found no
// forwarding header.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
