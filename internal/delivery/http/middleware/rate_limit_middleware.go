package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"clinic-booking/config"
	"clinic-booking/pkg/response"

	"golang.org/x/time/rate"
)

const (
	defaultLimiterBurst   = 5
	defaultLimiterIdleTTL = 10 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos
}

// RateLimitMiddleware throttles requests per client IP with a token bucket.
// Limiters idle for longer than IdleTTL are dropped on the next sweep.
type RateLimitMiddleware struct {
	limiters  sync.Map // map[string]*clientLimiter
	cfg       config.RateLimitConfig
	idleTTL   time.Duration
	lastSweep atomic.Int64
	now       func() time.Time
}

func NewRateLimitMiddleware(cfg config.RateLimitConfig) *RateLimitMiddleware {
	idleTTL := cfg.IdleTTL
	if idleTTL <= 0 {
		idleTTL = defaultLimiterIdleTTL
	}
	m := &RateLimitMiddleware{cfg: cfg, idleTTL: idleTTL, now: time.Now}
	m.lastSweep.Store(m.now().UnixNano())
	return m
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.cfg.RPS <= 0 {
			next.ServeHTTP(w, r)
			return
		}

		now := m.now()
		m.sweep(now)

		if !m.getLimiter(clientKey(r, m.cfg.TrustForwardedFor), now).Allow() {
			response.TooManyRequests(w, "Too many requests, please try again shortly")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) getLimiter(key string, now time.Time) *rate.Limiter {
	if v, ok := m.limiters.Load(key); ok {
		entry := v.(*clientLimiter)
		entry.lastSeen.Store(now.UnixNano())
		return entry.limiter
	}

	burst := m.cfg.Burst
	if burst <= 0 {
		burst = defaultLimiterBurst
	}

	entry := &clientLimiter{limiter: rate.NewLimiter(rate.Limit(m.cfg.RPS), burst)}
	entry.lastSeen.Store(now.UnixNano())
	actual, _ := m.limiters.LoadOrStore(key, entry)
	return actual.(*clientLimiter).limiter
}

// sweep drops idle limiters at most once per idle TTL.
func (m *RateLimitMiddleware) sweep(now time.Time) {
	last := m.lastSweep.Load()
	if now.UnixNano()-last < int64(m.idleTTL) || !m.lastSweep.CompareAndSwap(last, now.UnixNano()) {
		return
	}

	cutoff := now.Add(-m.idleTTL).UnixNano()
	m.limiters.Range(func(key, v any) bool {
		if v.(*clientLimiter).lastSeen.Load() < cutoff {
			m.limiters.Delete(key)
		}
		return true
	})
}

func (m *RateLimitMiddleware) size() int {
	n := 0
	m.limiters.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// clientKey is the peer IP. X-Forwarded-For is only honoured behind a
// trusted proxy, which appends the real client as the last hop.
func clientKey(r *http.Request, trustForwardedFor bool) string {
	if trustForwardedFor {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			hops := strings.Split(fwd, ",")
			if ip := strings.TrimSpace(hops[len(hops)-1]); net.ParseIP(ip) != nil {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return "unknown"
}
