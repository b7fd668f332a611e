package httpserver

import (
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// RateLimitConfig holds the token-bucket parameters for the public auth routes.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained per-client rate.
	RequestsPerSecond float64
	// Burst is the maximum burst size per client.
	Burst int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // unix nanos, written concurrently by request goroutines
}

// IPRateLimiter enforces a per-client token bucket keyed by remote IP.
// Stale client entries are evicted by a background loop until Stop is called.
type IPRateLimiter struct {
	cfg     RateLimitConfig
	clients sync.Map // map[string]*clientLimiter
	stop    chan struct{}
}

// NewIPRateLimiter constructs the limiter and starts its eviction loop.
func NewIPRateLimiter(cfg RateLimitConfig) *IPRateLimiter {
	l := &IPRateLimiter{cfg: cfg, stop: make(chan struct{})}
	go l.evictLoop()
	return l
}

// Stop terminates the eviction loop. Call once on shutdown.
func (l *IPRateLimiter) Stop() { close(l.stop) }

func (l *IPRateLimiter) evictLoop() {
	t := time.NewTicker(5 * time.Minute)
	defer t.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-t.C:
			cutoff := time.Now().Add(-10 * time.Minute).UnixNano()
			l.clients.Range(func(key, value any) bool {
				if value.(*clientLimiter).lastSeen.Load() < cutoff {
					l.clients.Delete(key)
				}
				return true
			})
		}
	}
}

func (l *IPRateLimiter) get(ip string) *rate.Limiter {
	now := time.Now().UnixNano()
	if v, ok := l.clients.Load(ip); ok {
		cl := v.(*clientLimiter)
		cl.lastSeen.Store(now)
		return cl.limiter
	}
	cl := &clientLimiter{
		limiter: rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst),
	}
	cl.lastSeen.Store(now)
	if v, loaded := l.clients.LoadOrStore(ip, cl); loaded {
		return v.(*clientLimiter).limiter
	}
	return cl.limiter
}

// Middleware rejects requests exceeding the per-IP budget with 429.
func (l *IPRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !l.get(ip).Allow() {
			respondError(w, http.StatusTooManyRequests, "too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}
