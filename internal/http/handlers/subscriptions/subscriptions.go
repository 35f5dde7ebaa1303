// Package subscriptions реализует HTTP-обработчики подписок: каталог тарифов,
// активную подписку, покупку и отмену.
package subscriptions

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/datadrive/internal/http/handlers/reply"
	"github.com/magabrotheeeer/datadrive/internal/http/response"
	"github.com/magabrotheeeer/datadrive/internal/models"
	"github.com/magabrotheeeer/datadrive/internal/services/subscription"
)

// Service сценарии подписок.
type Service interface {
	Catalogue(ctx context.Context) ([]models.Subscription, error)
	Active(ctx context.Context) (*models.UserSubscription, error)
	Buy(ctx context.Context, name models.SubscriptionName) (*models.SubscriptionReceipt, error)
	Cancel(ctx context.Context) (*models.Message, error)
	MonthsLeft(sub models.UserSubscription) int
}

// ActiveView действующая подписка и число оставшихся месяцев.
type ActiveView struct {
	Subscription *models.UserSubscription `json:"subscription"`
	MonthsLeft   int                      `json:"months_left"`
}

// BuyRequest тело POST /subscriptions/buy.
type BuyRequest struct {
	SubscriptionName models.SubscriptionName `json:"subscription_name" validate:"required"`
}

// Handler обрабатывает запросы подписок.
type Handler struct {
	log      *slog.Logger
	service  Service
	session  reply.Logouter
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, service Service, sess reply.Logouter) *Handler {
	return &Handler{
		log:      log,
		service:  service,
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

// Catalogue GET /subscriptions: публичный каталог тарифов.
//
// @Summary Каталог тарифов
// @Tags Subscriptions
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 502 {object} response.Response "Бэкенд недоступен"
// @Router /subscriptions [get]
func (h *Handler) Catalogue(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.subscriptions.Catalogue")

	plans, err := h.service.Catalogue(r.Context())
	if err != nil {
		reply.Error(w, r, log, nil, err, "failed to fetch subscriptions")
		return
	}
	reply.OK(w, r, plans)
}

// Active GET /subscriptions/active. Без подписки 404.
//
// @Summary Действующая подписка
// @Description Подписка и число оставшихся месяцев.
// @Tags Subscriptions
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 404 {object} response.Response "Подписки нет"
// @Router /subscriptions/active [get]
func (h *Handler) Active(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.subscriptions.Active")

	sub, err := h.service.Active(r.Context())
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to fetch active subscription")
		return
	}
	if sub == nil {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("no active subscription found"))
		return
	}
	reply.OK(w, r, ActiveView{Subscription: sub, MonthsLeft: h.service.MonthsLeft(*sub)})
}

// Buy POST /subscriptions/buy.
//
// @Summary Купить подписку
// @Tags Subscriptions
// @Accept  json
// @Produce  json
// @Param request body subscriptions.BuyRequest true "Тариф"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 400 {object} response.Response "Подписка уже есть или тариф неизвестен"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /subscriptions/buy [post]
func (h *Handler) Buy(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.subscriptions.Buy")

	var req BuyRequest
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}
	receipt, err := h.service.Buy(r.Context(), req.SubscriptionName)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to buy subscription",
			subscription.ErrAlreadySubscribed, subscription.ErrUnknownPlan)
		return
	}
	log.Info("subscription bought", slog.String("plan", string(req.SubscriptionName)))
	reply.OK(w, r, receipt)
}

// Cancel PUT /subscriptions/cancel.
//
// @Summary Отменить подписку
// @Tags Subscriptions
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Router /subscriptions/cancel [put]
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.subscriptions.Cancel")

	msg, err := h.service.Cancel(r.Context())
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to cancel subscription")
		return
	}
	log.Info("subscription cancelled")
	reply.OK(w, r, msg)
}
