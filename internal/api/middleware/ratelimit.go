package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/mhmdxx5/CarWashBackend/internal/api/handlers"
)

// Limiter решает, пропустить ли очередной запрос ключа
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit ограничивает частоту запросов пользователя (или IP для анонимных).
// Ошибка хранилища лимитов пропускает запрос.
func RateLimit(limiter Limiter, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := clientKey(r)

			allowed, err := limiter.Allow(r.Context(), key)
			if err != nil {
				logger.Error("%s %s - rate limiter unavailable, request allowed: %v", r.Method, r.URL.Path, err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Warn("%s %s - rate limit exceeded for %s", r.Method, r.URL.Path, key)
				handlers.RespondTooManyRequests(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientKey(r *http.Request) string {
	if id, ok := GetIdentity(r.Context()); ok {
		return "user:" + id.UserID
	}
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return "ip:" + strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
