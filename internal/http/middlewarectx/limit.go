package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/datadrive/internal/config"
	"github.com/magabrotheeeer/datadrive/internal/http/response"
)

// NewLimiter создаёт ограничитель по настройкам rate_limit.
func NewLimiter(cfg config.RateLimit) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst)
}

// RateLimitMiddleware отвечает 429, пока limiter не выдаст токен.
func RateLimitMiddleware(log *slog.Logger, limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests", slog.String("path", r.URL.Path))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
