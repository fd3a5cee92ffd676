package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// clientTTL is how long an idle client's limiter is kept before eviction.
const clientTTL = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimitMiddleware struct {
	logs    *zap.SugaredLogger
	mu      sync.Mutex
	clients map[string]*client
	limit   rate.Limit
	burst   int
}

func NewRateLimitMiddleware(logger *zap.SugaredLogger, perSecond float64, burst int) *RateLimitMiddleware {
	m := &RateLimitMiddleware{
		logs:    logger,
		clients: make(map[string]*client),
		limit:   rate.Limit(perSecond),
		burst:   burst,
	}
	go m.evictLoop()
	return m
}

// RateLimit enforces a per-IP token bucket and answers 429 when exhausted.
func (m *RateLimitMiddleware) RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !m.limiterFor(ip).Allow() {
			m.logs.Warnw("rate limit exceeded", "remote_addr", ip, "path", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error": "too many requests, slow down",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (m *RateLimitMiddleware) limiterFor(ip string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(m.limit, m.burst)}
		m.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter
}

func (m *RateLimitMiddleware) evictLoop() {
	for range time.Tick(time.Minute) {
		m.mu.Lock()
		for ip, c := range m.clients {
			if time.Since(c.lastSeen) > clientTTL {
				delete(m.clients, ip)
			}
		}
		m.mu.Unlock()
	}
}
