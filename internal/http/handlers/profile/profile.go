// Package profile реализует HTTP-обработчики профиля пользователя:
// просмотр, смена имени пользователя и полного имени, удаление аккаунта.
package profile

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/datadrive/internal/http/handlers/reply"
	"github.com/magabrotheeeer/datadrive/internal/lib/sl"
	"github.com/magabrotheeeer/datadrive/internal/models"
)

// Client описывает вызовы бэкенда для профиля.
type Client interface {
	GetUser(ctx context.Context) (*models.User, error)
	UpdateUsername(ctx context.Context, username string) (*models.Message, error)
	UpdateFullName(ctx context.Context, fullName string) (*models.Message, error)
	DeleteAccount(ctx context.Context) (*models.Message, error)
}

// Subscriptions источник действующей подписки для карточки профиля.
type Subscriptions interface {
	Active(ctx context.Context) (*models.UserSubscription, error)
}

// Session закрывает сессию после удаления аккаунта и при отказе бэкенда в токене.
type Session interface {
	Logout(ctx context.Context) error
}

// View карточка профиля.
type View struct {
	User         *models.User             `json:"user"`
	Subscription *models.UserSubscription `json:"subscription,omitempty"`
}

// UsernameRequest тело PUT /profile/username.
type UsernameRequest struct {
	Username string `json:"username" validate:"required,max=45"`
}

// FullNameRequest тело PUT /profile/full_name.
type FullNameRequest struct {
	FullName string `json:"full_name" validate:"required,max=45"`
}

// Handler обрабатывает запросы профиля.
type Handler struct {
	log      *slog.Logger
	client   Client
	subs     Subscriptions
	session  Session
	validate *validator.Validate
}

// New создает новый Handler.
func New(log *slog.Logger, client Client, subs Subscriptions, sess Session) *Handler {
	return &Handler{
		log:      log,
		client:   client,
		subs:     subs,
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

// Get GET /profile.
//
// @Summary Профиль пользователя
// @Description Пользователь и его действующая подписка.
// @Tags Profile
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Router /profile [get]
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.profile.Get")

	user, err := h.client.GetUser(r.Context())
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to fetch user details")
		return
	}
	sub, err := h.subs.Active(r.Context())
	if err != nil {
		log.Warn("failed to fetch active subscription", sl.Err(err))
	}
	reply.OK(w, r, View{User: user, Subscription: sub})
}

// UpdateUsername PUT /profile/username.
//
// @Summary Изменить имя пользователя
// @Tags Profile
// @Accept  json
// @Produce  json
// @Param request body profile.UsernameRequest true "Новое имя"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /profile/username [put]
func (h *Handler) UpdateUsername(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.profile.UpdateUsername")

	var req UsernameRequest
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}
	msg, err := h.client.UpdateUsername(r.Context(), req.Username)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to update username")
		return
	}
	log.Info("username updated")
	reply.OK(w, r, msg)
}

// UpdateFullName PUT /profile/full_name.
//
// @Summary Изменить полное имя
// @Tags Profile
// @Accept  json
// @Produce  json
// @Param request body profile.FullNameRequest true "Новое полное имя"
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /profile/full_name [put]
func (h *Handler) UpdateFullName(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.profile.UpdateFullName")

	var req FullNameRequest
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}
	msg, err := h.client.UpdateFullName(r.Context(), req.FullName)
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to update full name")
		return
	}
	log.Info("full name updated")
	reply.OK(w, r, msg)
}

// Delete DELETE /profile. После удаления сессия закрывается.
//
// @Summary Удалить учётную запись
// @Description После удаления сессия закрывается.
// @Tags Profile
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 302 "Нет сессии"
// @Router /profile [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logger(r, "handlers.profile.Delete")

	msg, err := h.client.DeleteAccount(r.Context())
	if err != nil {
		reply.Error(w, r, log, h.session, err, "failed to delete account")
		return
	}
	if err := h.session.Logout(r.Context()); err != nil {
		log.Error("failed to clear session after account deletion", sl.Err(err))
	}
	log.Info("account deleted")
	reply.OK(w, r, msg)
}
