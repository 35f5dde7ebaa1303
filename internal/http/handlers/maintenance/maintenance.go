// Package maintenance реализует HTTP-обработчики журналов обслуживания и
// повреждений автомобиля: публичные постраничные списки и добавление записей
// администратором.
package maintenance

import (
	"context"
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

// Client описывает вызовы бэкенда для журналов.
type Client interface {
	ListServices(ctx context.Context, plate string, page, pageSize int) (*models.Page[models.CarServices], error)
	AddService(ctx context.Context, s models.NewService) (*models.Message, error)
	ListDamages(ctx context.Context, plate string, page, pageSize int) (*models.Page[models.CarDamages], error)
	AddDamage(ctx context.Context, d models.NewDamage) (*models.Message, error)
}

// ServicesView страница журнала обслуживания.
type ServicesView struct {
	Car      models.Car                      `json:"car"`
	Services pagination.View[models.Service] `json:"services"`
}

// DamagesView страница журнала повреждений.
type DamagesView struct {
	Car     models.Car                     `json:"car"`
	Damages pagination.View[models.Damage] `json:"damages"`
}

// Handler обрабатывает запросы журналов.
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

func invalidPlate(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, response.Error("license plate must be three letters followed by four digits"))
}

// Services GET /details/{plate}/services.
//
// @Summary История обслуживания автомобиля
// @Tags Maintenance
// @Produce  json
// @Param plate path string true "Номер автомобиля AAA0000"
// @Param page query integer false "Номер страницы"
// @Param page_size query integer false "Размер страницы"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "Некорректный номер"
// @Router /details/{plate}/services [get]
func (h *Handler) Services(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.maintenance.Services")

	plate, ok := models.NormalizePlate(chi.URLParam(r, "plate"))
	if !ok {
		invalidPlate(w, r)
		return
	}
	res, err := pagination.Fetch(r.Context(), reply.Page(r), func(ctx context.Context, page, pageSize int) (*models.Page[models.CarServices], error) {
		return h.client.ListServices(ctx, plate, page, pageSize)
	})
	if err != nil {
		reply.Error(w, r, log, nil, err, "failed to fetch services")
		return
	}
	reply.OK(w, r, ServicesView{
		Car:      res.Data.Car,
		Services: pagination.NewView(res.Data.Services, res.Meta),
	})
}

// Damages GET /details/{plate}/damages.
//
// @Summary Повреждения автомобиля
// @Tags Maintenance
// @Produce  json
// @Param plate path string true "Номер автомобиля AAA0000"
// @Param page query integer false "Номер страницы"
// @Param page_size query integer false "Размер страницы"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "Некорректный номер"
// @Router /details/{plate}/damages [get]
func (h *Handler) Damages(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.maintenance.Damages")

	plate, ok := models.NormalizePlate(chi.URLParam(r, "plate"))
	if !ok {
		invalidPlate(w, r)
		return
	}
	res, err := pagination.Fetch(r.Context(), reply.Page(r), func(ctx context.Context, page, pageSize int) (*models.Page[models.CarDamages], error) {
		return h.client.ListDamages(ctx, plate, page, pageSize)
	})
	if err != nil {
		reply.Error(w, r, log, nil, err, "failed to fetch damages")
		return
	}
	reply.OK(w, r, DamagesView{
		Car:     res.Data.Car,
		Damages: pagination.NewView(res.Data.Damages, res.Meta),
	})
}

// AddService POST /cars/services (только администратор).
//
// @Summary Добавить запись об обслуживании
// @Description Только администратор.
// @Tags Maintenance
// @Accept  json
// @Produce  json
// @Param request body models.NewService true "Обслуживание"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии или прав"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /cars/services [post]
func (h *Handler) AddService(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.maintenance.AddService")

	var req models.NewService
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}
	req.LicensePlate = strings.ToUpper(req.LicensePlate)
	msg, err := h.client.AddService(r.Context(), req)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to add service")
		return
	}
	log.Info("service record added", sl.Plate(req.LicensePlate))
	reply.OK(w, r, msg)
}

// AddDamage POST /cars/damages (только администратор).
//
// @Summary Добавить запись о повреждении
// @Description Только администратор.
// @Tags Maintenance
// @Accept  json
// @Produce  json
// @Param request body models.NewDamage true "Повреждение"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии или прав"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /cars/damages [post]
func (h *Handler) AddDamage(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.maintenance.AddDamage")

	var req models.NewDamage
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}
	req.LicensePlate = strings.ToUpper(req.LicensePlate)
	msg, err := h.client.AddDamage(r.Context(), req)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to add damage")
		return
	}
	log.Info("damage record added", sl.Plate(req.LicensePlate))
	reply.OK(w, r, msg)
}
