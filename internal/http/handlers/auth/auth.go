// Package auth реализует HTTP-обработчики входа, регистрации и выхода.
//
// Токен, выданный бэкендом, передаётся в сессию консоли; ответом служит
// снимок состояния сессии (аутентификация, роль, срок действия).
package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/datadrive/internal/http/handlers/reply"
	"github.com/magabrotheeeer/datadrive/internal/models"
	"github.com/magabrotheeeer/datadrive/internal/session"
)

// Client описывает вызовы бэкенда для входа и регистрации.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.TokenResponse, error)
	Signup(ctx context.Context, req models.Signup) (*models.TokenResponse, error)
}

// Session единственный писатель токена.
type Session interface {
	SetAuthToken(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	State() session.State
}

// Handler обрабатывает запросы аутентификации.
type Handler struct {
	log      *slog.Logger        // Логгер для записи операций и ошибок
	client   Client              // Клиент бэкенда
	session  Session             // Сессия консоли
	validate *validator.Validate // Валидатор входных данных
}

// New создает новый Handler.
func New(log *slog.Logger, client Client, sess Session) *Handler {
	return &Handler{
		log:      log,
		client:   client,
		session:  sess,
		validate: validator.New(),
	}
}

// Login POST /login.
//
// @Summary Вход в DataDrive
// @Description Передаёт учётные данные бэкенду и открывает сессию консоли.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.Credentials true "Учётные данные"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 401 {object} response.Response "Неверные учетные данные"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Login"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.Credentials
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}

	resp, err := h.client.Login(r.Context(), req)
	if err != nil {
		reply.Error(w, r, log, nil, err, "failed to log in")
		return
	}
	h.startSession(w, r, log, resp.Token)
}

// Signup POST /signup.
//
// @Summary Регистрация
// @Description Создаёт учётную запись и сразу открывает сессию.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param request body models.Signup true "Данные пользователя"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response "Некорректный JSON"
// @Failure 422 {object} response.Response "Ошибка валидации"
// @Router /signup [post]
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Signup"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.Signup
	if !reply.Decode(w, r, log, h.validate, &req) {
		return
	}

	resp, err := h.client.Signup(r.Context(), req)
	if err != nil {
		reply.Error(w, r, log, nil, err, "failed to sign up")
		return
	}
	h.startSession(w, r, log, resp.Token)
}

// Logout POST /logout.
//
// @Summary Выход
// @Description Закрывает сессию и удаляет сохранённый токен.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response
// @Failure 500 {object} response.Response "Не удалось очистить хранилище"
// @Router /logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.Logout"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := h.session.Logout(r.Context()); err != nil {
		reply.Error(w, r, log, nil, err, "failed to log out")
		return
	}
	log.Info("logged out")
	reply.OK(w, r, h.session.State())
}

// State GET /session.
//
// @Summary Состояние сессии
// @Description Аутентификация, роль и срок действия токена.
// @Tags Auth
// @Produce  json
// @Success 200 {object} response.Response
// @Router /session [get]
func (h *Handler) State(w http.ResponseWriter, r *http.Request) {
	reply.OK(w, r, h.session.State())
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, log *slog.Logger, token string) {
	if err := h.session.SetAuthToken(r.Context(), token); err != nil {
		reply.Error(w, r, log, nil, err, "received an invalid session token", session.ErrInvalidToken, session.ErrTokenExpired)
		return
	}
	state := h.session.State()
	log.Info("session started", slog.String("email", state.Email), slog.Bool("admin", state.Admin))
	reply.OK(w, r, state)
}
