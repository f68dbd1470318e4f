package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/larrykatula12/restaurante/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const purgeInterval = 5 * time.Minute

// ipLimiter counts requests per client IP inside a sliding window. Each
// limiter owns its map and a purge goroutine that drops expired IPs so the
// map cannot grow without bound.
type ipLimiter struct {
	limit  int
	window time.Duration
	detail string

	mu      sync.Mutex
	entries map[string]*ipWindow
}

type ipWindow struct {
	count     int
	windowEnd time.Time
}

func newIPLimiter(limit int, window time.Duration, detail string) *ipLimiter {
	l := &ipLimiter{
		limit:   limit,
		window:  window,
		detail:  detail,
		entries: make(map[string]*ipWindow),
	}
	go l.purgeLoop()
	return l
}

func (l *ipLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	e, ok := l.entries[ip]
	if !ok || now.After(e.windowEnd) {
		e = &ipWindow{windowEnd: now.Add(l.window)}
		l.entries[ip] = e
	}
	e.count++
	return e.count <= l.limit, e.windowEnd
}

func (l *ipLimiter) purgeLoop() {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		purged := 0
		for ip, e := range l.entries {
			if now.After(e.windowEnd) {
				delete(l.entries, ip)
				purged++
			}
		}
		remaining := len(l.entries)
		l.mu.Unlock()

		if purged > 0 {
			log.Debug().
				Int("purged", purged).
				Int("remaining", remaining).
				Msg("rate limiter map purged")
		}
	}
}

func (l *ipLimiter) middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, windowEnd := l.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New(l.detail))
			return
		}
		c.Next()
	}
}

// RateLimiter limits all API traffic per client IP inside a sliding window.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return newIPLimiter(limit, window, "Demasiadas solicitudes. Intente nuevamente en un momento.").middleware()
}

// LoginRateLimiter puts a much tighter cap on login attempts: 20 per minute
// per IP, to slow down credential stuffing.
func LoginRateLimiter() gin.HandlerFunc {
	return newIPLimiter(20, time.Minute, "Demasiados intentos de login. Intente en 1 minuto.").middleware()
}
