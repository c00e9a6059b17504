package httpadapter

import (
	"net"
	"net/http"
	"sync"
	"time"

	"supplierwatch/internal/apperr"
)

// rateLimiter is an in-memory sliding-window limiter (§4.6): a map from
// client address to its recent request timestamps, evicted and counted under
// one mutex per bucket access. Setting cap to 0 disables it entirely.
type rateLimiter struct {
	mu           sync.Mutex
	buckets      map[string][]time.Time
	cap          int
	window       time.Duration
	bypassHeader string
}

func newRateLimiter(cap int, window time.Duration, bypassHeader string) *rateLimiter {
	return &rateLimiter{
		buckets:      make(map[string][]time.Time),
		cap:          cap,
		window:       window,
		bypassHeader: bypassHeader,
	}
}

// allow evicts timestamps older than the window and counts-then-inserts in
// the same critical section (§5).
func (l *rateLimiter) allow(clientAddr string, now time.Time) bool {
	if l.cap <= 0 {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	cutoff := now.Add(-l.window)
	kept := l.buckets[clientAddr][:0]
	for _, t := range l.buckets[clientAddr] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) >= l.cap {
		l.buckets[clientAddr] = kept
		return false
	}
	l.buckets[clientAddr] = append(kept, now)
	return true
}

// Middleware enforces the limiter. A non-empty bypass header bypasses it
// unconditionally; the header value itself is never validated (§4.6).
func (l *rateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.bypassHeader != "" && r.Header.Get(l.bypassHeader) != "" {
			next.ServeHTTP(w, r)
			return
		}
		client := clientAddr(r)
		if !l.allow(client, time.Now()) {
			writeError(w, r, nil, apperr.RateLimited("rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func clientAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
