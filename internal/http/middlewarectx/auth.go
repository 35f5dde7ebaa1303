// Package middlewarectx содержит HTTP middleware консоли: гарды маршрутов
// по состоянию сессии, редирект неизвестных путей, сквозной идентификатор
// запроса и ограничение частоты.
//
// Гарды читают состояние только через Session (обычно *session.Manager).
// Неаутентифицированный запрос к защищённому маршруту перенаправляется
// на /login, не-администратор на административном маршруте на /not-found.
package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
)

const (
	// LoginPath адрес входа.
	LoginPath = "/login"
	// NotFoundPath адрес страницы «не найдено».
	NotFoundPath = "/not-found"
)

// Session описывает состояние сессии, нужное гардам.
type Session interface {
	IsAuthenticated() bool
	IsAdmin() bool
}

// Protected пропускает запрос только при активной сессии, иначе 302 на /login.
func Protected(sess Session, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.Protected"

			if !sess.IsAuthenticated() {
				log.Info("not authenticated, redirecting to login",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly пропускает запрос только администратора, иначе 302 на /not-found.
func AdminOnly(sess Session, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminOnly"

			if !sess.IsAdmin() {
				log.Info("admin role required, redirecting to not-found",
					slog.String("op", op),
					slog.String("request_id", middleware.GetReqID(r.Context())),
					slog.String("path", r.URL.Path),
				)
				http.Redirect(w, r, NotFoundPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
