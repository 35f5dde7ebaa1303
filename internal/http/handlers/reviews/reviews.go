// Package reviews реализует публичный постраничный список отзывов об автомобиле.
package reviews

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/datadrive/internal/http/handlers/reply"
	"github.com/magabrotheeeer/datadrive/internal/http/response"
	"github.com/magabrotheeeer/datadrive/internal/models"
	"github.com/magabrotheeeer/datadrive/internal/pagination"
)

// Client описывает вызов бэкенда для отзывов.
type Client interface {
	ListCarReviews(ctx context.Context, plate string, page, pageSize int) (*models.Page[models.CarReviews], error)
}

// Entry отзыв вместе с автором.
type Entry struct {
	Email string `json:"email"`
	models.Review
}

// View страница отзывов автомобиля.
type View struct {
	LicensePlate string                 `json:"license_plate"`
	Reviews      pagination.View[Entry] `json:"reviews"`
}

// Handler обрабатывает запросы отзывов.
type Handler struct {
	log    *slog.Logger
	client Client
}

// New создает новый Handler.
func New(log *slog.Logger, client Client) *Handler {
	return &Handler{log: log, client: client}
}

// ByCar GET /reviews/{plate}.
//
// @Summary Отзывы об автомобиле
// @Tags Reviews
// @Produce  json
// @Param plate path string true "Номер автомобиля AAA0000"
// @Param page query integer false "Номер страницы"
// @Param page_size query integer false "Размер страницы"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "Некорректный номер"
// @Router /reviews/{plate} [get]
func (h *Handler) ByCar(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.reviews.ByCar"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	plate, ok := models.NormalizePlate(chi.URLParam(r, "plate"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("license plate must be three letters followed by four digits"))
		return
	}
	res, err := pagination.Fetch(r.Context(), reply.Page(r), func(ctx context.Context, page, pageSize int) (*models.Page[models.CarReviews], error) {
		return h.client.ListCarReviews(ctx, plate, page, pageSize)
	})
	if err != nil {
		reply.Error(w, r, log, nil, err, "failed to fetch reviews")
		return
	}
	reply.OK(w, r, View{
		LicensePlate: plate,
		Reviews:      pagination.NewView(entries(res.Data), res.Meta),
	})
}

// entries сопоставляет отзывы с авторами; Emails[i] автор Reviews[i].
func entries(data models.CarReviews) []Entry {
	out := make([]Entry, len(data.Reviews))
	for i, rev := range data.Reviews {
		out[i].Review = rev
		if i < len(data.Emails) {
			out[i].Email = data.Emails[i]
		}
	}
	return out
}
