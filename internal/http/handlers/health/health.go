// Package health отдаёт состояние консоли: адрес бэкенда и наличие сессии.
package health

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/magabrotheeeer/datadrive/internal/http/response"
)

// Session сообщает, открыта ли сессия.
type Session interface {
	IsAuthenticated() bool
}

// Handler обработчик GET /health.
type Handler struct {
	log        *slog.Logger
	backendURL string
	session    Session
}

// New создает новый Handler.
func New(log *slog.Logger, backendURL string, sess Session) *Handler {
	return &Handler{
		log:        log,
		backendURL: backendURL,
		session:    sess,
	}
}

// ServeHTTP godoc
// @Summary Проверка состояния консоли
// @Tags Health
// @Produce  json
// @Success 200 {object} response.Response
// @Router /health [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusOK)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"status":        "ok",
		"backend_url":   h.backendURL,
		"authenticated": h.session.IsAuthenticated(),
	}))
}
