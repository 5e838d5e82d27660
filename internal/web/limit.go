package web

import (
	"net"
	"net/http"
	"sync"
	"time"

	"ocorrenciaapp/internal/infrastructure/logger"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

const (
	visitorExpiration = 10 * time.Minute
	visitorCleanup    = 20 * time.Minute
)

// RateLimiter ограничитель запросов по IP. Лимитеры неактивных IP вычищаются кэшем.
type RateLimiter struct {
	mu       sync.Mutex
	visitors *gocache.Cache
	limit    rate.Limit
	burst    int
}

// NewRateLimiter perSecond <= 0 - без ограничения
func NewRateLimiter(perSecond float64, burst int) *RateLimiter {
	limit := rate.Limit(perSecond)
	if perSecond <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		visitors: gocache.New(visitorExpiration, visitorCleanup),
		limit:    limit,
		burst:    burst,
	}
}

func (rl *RateLimiter) visitor(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitors.Get(ip); ok {
		if l, ok := v.(*rate.Limiter); ok {
			rl.visitors.Set(ip, l, gocache.DefaultExpiration)
			return l
		}
	}

	l := rate.NewLimiter(rl.limit, rl.burst)
	rl.visitors.Set(ip, l, gocache.DefaultExpiration)
	return l
}

// LimitMiddleware отвечает 429, если IP превысил лимит
func (rl *RateLimiter) LimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := remoteIP(r)
		if !rl.visitor(ip).Allow() {
			logger.Warn("(" + r.RemoteAddr + ") Превышен лимит запросов")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
