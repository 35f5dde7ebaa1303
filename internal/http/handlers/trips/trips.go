// Package trips реализует HTTP-обработчики поездок: старт, предварительный
// расчёт, остановку с оплатой, историю и отзыв о завершённой поездке.
package trips

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/datadrive/internal/http/handlers/reply"
	"github.com/magabrotheeeer/datadrive/internal/http/response"
	"github.com/magabrotheeeer/datadrive/internal/lib/textfmt"
	"github.com/magabrotheeeer/datadrive/internal/models"
	"github.com/magabrotheeeer/datadrive/internal/pagination"
	"github.com/magabrotheeeer/datadrive/internal/services/trip"
)

// Service сценарии поездок.
type Service interface {
	Start(ctx context.Context, plate string) (*models.Message, error)
	Stop(ctx context.Context, form trip.StopForm) (*trip.StopResult, error)
	Active(ctx context.Context) (*models.Trip, error)
	List(ctx context.Context, page, pageSize int) (*models.Page[[]models.Trip], error)
	Details(ctx context.Context, id int64) (*models.TripCost, error)
	Preview(ctx context.Context, distance float64) (float64, error)
	Review(ctx context.Context, review models.NewReview) (*models.Message, error)
}

// StartRequest тело POST /trips/start.
type StartRequest struct {
	LicensePlate string `json:"license_plate"`
}

// ReviewRequest тело POST /trips/{id}/review.
type ReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// PreviewResponse предварительная сумма остановки.
type PreviewResponse struct {
	Distance float64 `json:"distance"`
	Amount   float64 `json:"amount"`
}

// DetailsView поездка с тарифом и строками для отображения.
type DetailsView struct {
	*models.TripCost
	Plate     string `json:"plate"`
	StartedAt string `json:"started_at"`
	EndedAt   string `json:"ended_at"`
	Distance  string `json:"distance_text"`
	Amount    string `json:"amount_text"`
	Rate      string `json:"rate_text"`
}

func newDetailsView(tc *models.TripCost) DetailsView {
	t := tc.Trip
	amount := textfmt.Placeholder(nil, "")
	if t.Amount != nil {
		amount = textfmt.Money(*t.Amount)
	}
	return DetailsView{
		TripCost:  tc,
		Plate:     textfmt.Plate(t.CarLicensePlate),
		StartedAt: textfmt.DateTime(&t.StartTime),
		EndedAt:   textfmt.DateTime(t.EndTime),
		Distance:  textfmt.Placeholder(t.Distance, "km"),
		Amount:    amount,
		Rate:      textfmt.Money(tc.CostPerKm) + " / km",
	}
}

// Handler обрабатывает запросы поездок.
type Handler struct {
	log     *slog.Logger
	service Service
	session reply.Logouter
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, sess reply.Logouter) *Handler {
	return &Handler{log: log, service: service, session: sess}
}

func (h *Handler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

func badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, response.Error(msg))
}

func tripID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(w, r, "invalid trip id")
		return 0, false
	}
	return id, true
}

// Start POST /trips/start.
//
// @Summary Начать поездку
// @Tags Trips
// @Accept  json
// @Produce  json
// @Param request body trips.StartRequest true "Номер автомобиля"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Некорректный номер"
// @Router /trips/start [post]
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.trips.Start")

	var req StartRequest
	if !reply.Decode(w, r, log, nil, &req) {
		return
	}
	msg, err := h.service.Start(r.Context(), req.LicensePlate)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to start trip", trip.ErrInvalidPlate)
		return
	}
	reply.OK(w, r, msg)
}

// Stop POST /trips/stop.
//
// @Summary Завершить поездку
// @Description Проверяет форму, считает сумму и сверяет её с сохранённой бэкендом.
// @Tags Trips
// @Accept  json
// @Produce  json
// @Param request body trip.StopForm true "Данные остановки"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Нет активной поездки или способа оплаты"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /trips/stop [post]
func (h *Handler) Stop(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.trips.Stop")

	var form trip.StopForm
	if !reply.Decode(w, r, log, nil, &form) {
		return
	}
	res, err := h.service.Stop(r.Context(), form)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to stop trip",
			trip.ErrNoActiveTrip, trip.ErrPaymentMethodRequired)
		return
	}
	reply.OK(w, r, res)
}

// Active GET /trips/active. Отсутствие поездки отдаётся как 404.
//
// @Summary Активная поездка
// @Tags Trips
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 404 {object} response.Response "Активной поездки нет"
// @Router /trips/active [get]
func (h *Handler) Active(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.trips.Active")

	t, err := h.service.Active(r.Context())
	if errors.Is(err, trip.ErrNoActiveTrip) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(trip.ErrNoActiveTrip.Error()))
		return
	}
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to fetch active trip")
		return
	}
	reply.OK(w, r, t)
}

// Preview GET /trips/preview?distance=: сумма по тарифу активной поездки.
//
// @Summary Предварительная сумма
// @Description Сумма по тарифу активной поездки.
// @Tags Trips
// @Produce  json
// @Param distance query number true "Пробег, км"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Некорректный пробег"
// @Router /trips/preview [get]
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.trips.Preview")

	distance, err := strconv.ParseFloat(r.URL.Query().Get("distance"), 64)
	if err != nil || distance <= 0 {
		badRequest(w, r, "distance must be greater than 0")
		return
	}
	amount, err := h.service.Preview(r.Context(), distance)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to calculate amount", trip.ErrNoActiveTrip)
		return
	}
	reply.OK(w, r, PreviewResponse{Distance: distance, Amount: amount})
}

// List GET /trips: история поездок постранично.
//
// @Summary История поездок
// @Tags Trips
// @Produce  json
// @Param page query integer false "Номер страницы"
// @Param page_size query integer false "Размер страницы"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Router /trips [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.trips.List")

	res, err := pagination.Fetch(r.Context(), reply.Page(r), h.service.List)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to fetch trips")
		return
	}
	reply.OK(w, r, pagination.NewView(res.Data, res.Meta))
}

// Details GET /trips/{id}.
//
// @Summary Поездка с тарифом
// @Tags Trips
// @Produce  json
// @Param id path integer true "ID поездки"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Некорректный ID"
// @Router /trips/{id} [get]
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.trips.Details")

	id, ok := tripID(w, r)
	if !ok {
		return
	}
	res, err := h.service.Details(r.Context(), id)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to fetch trip details")
		return
	}
	reply.OK(w, r, newDetailsView(res))
}

// Review POST /trips/{id}/review.
//
// @Summary Оставить отзыв о поездке
// @Description Только для завершённой поездки, один раз.
// @Tags Trips
// @Accept  json
// @Produce  json
// @Param id path integer true "ID поездки"
// @Param request body trips.ReviewRequest true "Отзыв"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Поездка не завершена или отзыв уже есть"
// @Router /trips/{id}/review [post]
func (h *Handler) Review(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.trips.Review")

	id, ok := tripID(w, r)
	if !ok {
		return
	}
	var req ReviewRequest
	if !reply.Decode(w, r, log, nil, &req) {
		return
	}
	msg, err := h.service.Review(r.Context(), models.NewReview{TripID: id, Rating: req.Rating, Comment: req.Comment})
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to submit review",
			trip.ErrTripOngoing, trip.ErrAlreadyReviewed)
		return
	}
	log.Info("review submitted", slog.Int64("trip_id", id), slog.Int("rating", req.Rating))
	reply.OK(w, r, msg)
}
