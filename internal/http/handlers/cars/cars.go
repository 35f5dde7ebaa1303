// Package cars реализует HTTP-обработчики автопарка: публичный список
// свободных автомобилей, списки по статусу, карточку автомобиля и
// администраторские операции добавления, изменения и удаления.
package cars

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/datadrive/internal/http/handlers/reply"
	"github.com/magabrotheeeer/datadrive/internal/http/response"
	"github.com/magabrotheeeer/datadrive/internal/lib/sl"
	"github.com/magabrotheeeer/datadrive/internal/models"
	"github.com/magabrotheeeer/datadrive/internal/pagination"
)

// ErrInvalidPlate номер в пути не соответствует формату AAA0000.
var ErrInvalidPlate = errors.New("license plate must be three letters followed by four digits")

// Client описывает вызовы бэкенда для автомобилей.
type Client interface {
	ListCars(ctx context.Context, status models.CarStatus, page, pageSize int) (*models.Page[[]models.Car], error)
	GetCar(ctx context.Context, plate string) (*models.Car, error)
	AddCar(ctx context.Context, car models.Car) (*models.Message, error)
	UpdateCar(ctx context.Context, plate string, upd models.CarUpdate) (*models.Message, error)
	UpdateCarStatus(ctx context.Context, plate string, status models.CarStatus) (*models.Message, error)
	DeleteCar(ctx context.Context, plate string) (*models.Message, error)
	GetCarDetails(ctx context.Context, plate string) (*models.CarDetails, error)
}

// StatusRequest тело PUT /cars/{plate}/status.
type StatusRequest struct {
	Status models.CarStatus `json:"status" validate:"required,oneof=AVAILABLE RENTED MAINTENANCE"`
}

// Handler обрабатывает запросы автопарка.
type Handler struct {
	log      *slog.Logger
	client   Client
	session  reply.Logouter
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, client Client, sess reply.Logouter) *Handler {
	return &Handler{
		log:      log,
		client:   client,
		session:  sess,
		validate: validator.New(),
	}
}

func (h *Handler) logger(r *http.Request, op string) *slog.Logger {
	return h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
}

// plate читает номер из пути. При неверном формате ответ уже записан.
func plate(w http.ResponseWriter, r *http.Request) (string, bool) {
	p, ok := models.NormalizePlate(chi.URLParam(r, "plate"))
	if !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(ErrInvalidPlate.Error()))
		return "", false
	}
	return p, true
}

// Available GET /cars/available: публичный список свободных автомобилей.
//
// @Summary Свободные автомобили
// @Tags Cars
// @Produce  json
// @Param page query integer false "Номер страницы"
// @Param page_size query integer false "Размер страницы"
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response "Бэкенд недоступен"
// @Router /cars/available [get]
func (h *Handler) Available(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "handlers.cars.Available", models.CarAvailable)
}

// List GET /cars?status=: все автомобили или отфильтрованные по статусу.
//
// @Summary Список автомобилей
// @Description Все автомобили или по статусу. Требует сессию.
// @Tags Cars
// @Produce  json
// @Param status query string false "AVAILABLE, RENTED или MAINTENANCE"
// @Param page query integer false "Номер страницы"
// @Param page_size query integer false "Размер страницы"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Неизвестный статус"
// @Router /cars [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := models.CarStatus(strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("status"))))
	h.list(w, r, "handlers.cars.List", status)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request, op string, status models.CarStatus) {
	log := h.logger(r, op)

	if status != "" && !status.Valid() {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("status can either be available, rented or maintenance"))
		return
	}
	res, err := pagination.Fetch(r.Context(), reply.Page(r), func(ctx context.Context, page, pageSize int) (*models.Page[[]models.Car], error) {
		return h.client.ListCars(ctx, status, page, pageSize)
	})
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to fetch cars")
		return
	}
	reply.OK(w, r, pagination.NewView(res.Data, res.Meta))
}

// Get GET /cars/{plate}.
//
// @Summary Автомобиль по номеру
// @Tags Cars
// @Produce  json
// @Param plate path string true "Номер автомобиля AAA0000"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Некорректный номер"
// @Failure 404 {object} response.Response "Автомобиль не найден"
// @Router /cars/{plate} [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.cars.Get")

	p, ok := plate(w, r)
	if !ok {
		return
	}
	car, err := h.client.GetCar(r.Context(), p)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to fetch car")
		return
	}
	reply.OK(w, r, car)
}

// Details GET /cars/{plate}/details: автомобиль с обслуживанием и повреждениями.
//
// @Summary Автомобиль с обслуживанием и повреждениями
// @Tags Cars
// @Produce  json
// @Param plate path string true "Номер автомобиля AAA0000"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Некорректный номер"
// @Router /cars/{plate}/details [get]
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.cars.Details")

	p, ok := plate(w, r)
	if !ok {
		return
	}
	details, err := h.client.GetCarDetails(r.Context(), p)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to fetch car details")
		return
	}
	reply.OK(w, r, details)
}

// Add POST /cars (только администратор).
//
// @Summary Добавить автомобиль
// @Description Только администратор.
// @Tags Cars
// @Accept  json
// @Produce  json
// @Param request body models.Car true "Автомобиль"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии или прав"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /cars [post]
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.cars.Add")

	var req models.Car
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}
	req.LicensePlate = strings.ToUpper(req.LicensePlate)
	if _, ok := models.NormalizePlate(req.LicensePlate); !ok {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(ErrInvalidPlate.Error()))
		return
	}
	msg, err := h.client.AddCar(r.Context(), req)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to add car")
		return
	}
	log.Info("car added", sl.Plate(req.LicensePlate))
	reply.OK(w, r, msg)
}

// Update PUT /cars/{plate} (только администратор).
//
// @Summary Изменить автомобиль
// @Description Только администратор.
// @Tags Cars
// @Accept  json
// @Produce  json
// @Param plate path string true "Номер автомобиля AAA0000"
// @Param request body models.CarUpdate true "Новые данные"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии или прав"
// @Failure 400 {object} response.Response "Некорректный номер"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /cars/{plate} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.cars.Update")

	p, ok := plate(w, r)
	if !ok {
		return
	}
	var req models.CarUpdate
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}
	msg, err := h.client.UpdateCar(r.Context(), p, req)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to update car")
		return
	}
	log.Info("car updated", sl.Plate(p))
	reply.OK(w, r, msg)
}

// UpdateStatus PUT /cars/{plate}/status (только администратор).
//
// @Summary Изменить статус автомобиля
// @Description Только администратор.
// @Tags Cars
// @Accept  json
// @Produce  json
// @Param plate path string true "Номер автомобиля AAA0000"
// @Param request body cars.StatusRequest true "Статус"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии или прав"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /cars/{plate}/status [put]
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.cars.UpdateStatus")

	p, ok := plate(w, r)
	if !ok {
		return
	}
	var req StatusRequest
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}
	msg, err := h.client.UpdateCarStatus(r.Context(), p, req.Status)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to update car status")
		return
	}
	log.Info("car status updated", sl.Plate(p), slog.String("status", string(req.Status)))
	reply.OK(w, r, msg)
}

// Delete DELETE /cars/{plate} (только администратор).
//
// @Summary Удалить автомобиль
// @Description Только администратор.
// @Tags Cars
// @Produce  json
// @Param plate path string true "Номер автомобиля AAA0000"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии или прав"
// @Failure 400 {object} response.Response "Некорректный номер"
// @Router /cars/{plate} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.cars.Delete")

	p, ok := plate(w, r)
	if !ok {
		return
	}
	msg, err := h.client.DeleteCar(r.Context(), p)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to delete car")
		return
	}
	log.Info("car deleted", sl.Plate(p))
	reply.OK(w, r, msg)
}
