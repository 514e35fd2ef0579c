package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"padelpoint/config"
)

const (
	defaultGeneralRPM = 100
	defaultAuthRPM    = 10
	limiterIdleTTL    = 10 * time.Minute
	limiterGCSize     = 1000
)

// authPathPrefixes are throttled with the stricter auth bucket.
var authPathPrefixes = []string{"/auth/login", "/auth/refresh", "/user/reset-pass"}

type clientLimiter struct {
	general  *rate.Limiter
	auth     *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware throttles requests per client IP, with a separate bucket for credential endpoints.
type RateLimitMiddleware struct {
	generalRPM int
	authRPM    int
	now        func() time.Time

	mu      sync.Mutex
	clients map[string]*clientLimiter
}

func NewRateLimitMiddleware(cfg *config.Config) *RateLimitMiddleware {
	generalRPM, authRPM := cfg.RateLimit.GeneralRPM, cfg.RateLimit.AuthRPM
	if generalRPM <= 0 {
		generalRPM = defaultGeneralRPM
	}
	if authRPM <= 0 {
		authRPM = defaultAuthRPM
	}

	return &RateLimitMiddleware{
		generalRPM: generalRPM,
		authRPM:    authRPM,
		now:        time.Now,
		clients:    map[string]*clientLimiter{},
	}
}

func (m *RateLimitMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		limiter := m.limiterFor(c.RealIP())

		target := limiter.general
		if isAuthPath(c.Request().URL.Path) {
			target = limiter.auth
		}

		if !target.AllowN(m.now(), 1) {
			c.Response().Header().Set("Retry-After", "60")

			return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
		}

		return next(c)
	}
}

func isAuthPath(path string) bool {
	path = strings.ToLower(path)
	for _, prefix := range authPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	return false
}

func (m *RateLimitMiddleware) limiterFor(clientIP string) *clientLimiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if limiter, ok := m.clients[clientIP]; ok {
		limiter.lastSeen = now

		return limiter
	}

	created := &clientLimiter{
		general:  rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.generalRPM)), m.generalRPM),
		auth:     rate.NewLimiter(rate.Every(time.Minute/time.Duration(m.authRPM)), m.authRPM),
		lastSeen: now,
	}
	m.clients[clientIP] = created
	m.gcLocked(now)

	return created
}

func (m *RateLimitMiddleware) gcLocked(now time.Time) {
	if len(m.clients) < limiterGCSize {
		return
	}

	cutoff := now.Add(-limiterIdleTTL)
	for ip, limiter := range m.clients {
		if limiter.lastSeen.Before(cutoff) {
			delete(m.clients, ip)
		}
	}
}
