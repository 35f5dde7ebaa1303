// Package settings реализует HTTP-обработчики настроек автомобиля.
package settings

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/datadrive/internal/http/handlers/reply"
	"github.com/magabrotheeeer/datadrive/internal/http/response"
	"github.com/magabrotheeeer/datadrive/internal/lib/sl"
	"github.com/magabrotheeeer/datadrive/internal/models"
	settingssvc "github.com/magabrotheeeer/datadrive/internal/services/settings"
)

// Service сценарии настроек.
type Service interface {
	Get(ctx context.Context) (*settingssvc.View, error)
	Create(ctx context.Context, in models.Settings) (*models.Message, error)
	Update(ctx context.Context, patch models.Settings) (*models.Message, error)
	UpdateField(ctx context.Context, name string, value any) (*models.Message, error)
}

// FieldRequest тело PUT /settings/{field}.
type FieldRequest struct {
	Value any `json:"value"`
}

// Handler обрабатывает запросы настроек.
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

// Get GET /settings. Режим create, если настроек ещё нет.
//
// @Summary Настройки автомобиля пользователя
// @Description Режим create, если настроек ещё нет.
// @Tags Settings
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Router /settings [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.settings.Get")

	view, err := h.service.Get(r.Context())
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to fetch settings")
		return
	}
	reply.OK(w, r, view)
}

// Create POST /settings.
//
// @Summary Сохранить настройки
// @Tags Settings
// @Accept  json
// @Produce  json
// @Param request body models.Settings true "Настройки"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /settings [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.settings.Create")

	var req models.Settings
	if !reply.Decode(w, r, log, nil, &req) {
		return
	}
	msg, err := h.service.Create(r.Context(), req)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to create settings")
		return
	}
	reply.OK(w, r, msg)
}

// Update PUT /settings: частичное обновление.
//
// @Summary Частично обновить настройки
// @Description Отправляются только заданные поля.
// @Tags Settings
// @Accept  json
// @Produce  json
// @Param request body models.Settings true "Изменённые поля"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Пустое обновление"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /settings [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.settings.Update")

	var req models.Settings
	if !reply.Decode(w, r, log, nil, &req) {
		return
	}
	msg, err := h.service.Update(r.Context(), req)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to update settings", settingssvc.ErrEmptyPatch)
		return
	}
	reply.OK(w, r, msg)
}

// UpdateField PUT /settings/{field}: проверка и сохранение одного поля.
//
// @Summary Обновить одно поле настроек
// @Tags Settings
// @Accept  json
// @Produce  json
// @Param field path string true "Имя поля"
// @Param request body settings.FieldRequest true "Значение"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Недопустимое поле или значение"
// @Router /settings/{field} [put]
func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.settings.UpdateField")

	field := chi.URLParam(r, "field")
	var req FieldRequest
	if !reply.Decode(w, r, log, nil, &req) {
		return
	}
	if err := settingssvc.ValidateField(field, req.Value); err != nil {
		log.Info("invalid settings value", slog.String("field", field), sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error(err.Error()))
		return
	}
	msg, err := h.service.UpdateField(r.Context(), field, req.Value)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to update settings")
		return
	}
	log.Info("settings field updated", slog.String("field", field))
	reply.OK(w, r, msg)
}
