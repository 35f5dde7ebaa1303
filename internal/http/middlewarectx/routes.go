package middlewarectx

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/http/response"
)

// RedirectNotFound перенаправляет неизвестные пути и методы на /not-found.
func RedirectNotFound(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, NotFoundPath, http.StatusFound)
}

// NotFoundPage отвечает 404 с телом ошибки.
func NotFoundPage(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusNotFound)
	render.JSON(w, r, response.Error("page not found"))
}

// CorrelationID берёт X-Correlation-ID из запроса или создаёт новый uuid,
// кладёт его в контекст для API-клиента и возвращает в ответе.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(api.CorrelationHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(api.CorrelationHeader, id)
		next.ServeHTTP(w, r.WithContext(api.WithCorrelationID(r.Context(), id)))
	})
}
