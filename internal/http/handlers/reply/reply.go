// Package reply содержит общие для обработчиков консоли шаги: разбор и
// валидацию тела запроса, параметры страницы и отображение ошибок бэкенда
// в HTTP-ответы.
package reply

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/http/middlewarectx"
	"github.com/magabrotheeeer/datadrive/internal/http/response"
	"github.com/magabrotheeeer/datadrive/internal/lib/sl"
	"github.com/magabrotheeeer/datadrive/internal/pagination"
)

// Logouter закрывает сессию, когда бэкенд отклонил токен.
type Logouter interface {
	Logout(ctx context.Context) error
}

// Error пишет ответ для err.
//
//   - нет сессии: 302 на /login;
//   - бэкенд ответил 401: сессия закрывается, 302 на /login;
//   - ошибки валидации: 422;
//   - err совпадает с одним из clientErrs: 400 с текстом этой ошибки;
//   - ошибка бэкенда: его код (5xx как 502) и его сообщение;
//   - иначе 500 с fallback.
func Error(w http.ResponseWriter, r *http.Request, log *slog.Logger, sess Logouter, err error, fallback string, clientErrs ...error) {
	log.Error(fallback, sl.Err(err))

	if errors.Is(err, api.ErrNoToken) {
		http.Redirect(w, r, middlewarectx.LoginPath, http.StatusFound)
		return
	}
	if errors.Is(err, api.ErrUnauthorized) {
		if sess != nil {
			if lerr := sess.Logout(r.Context()); lerr != nil {
				log.Error("failed to clear session", sl.Err(lerr))
			}
		}
		http.Redirect(w, r, middlewarectx.LoginPath, http.StatusFound)
		return
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(verrs))
		return
	}

	for _, target := range clientErrs {
		if errors.Is(err, target) {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error(target.Error()))
			return
		}
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		status := apiErr.StatusCode
		if status >= http.StatusInternalServerError {
			status = http.StatusBadGateway
		}
		render.Status(r, status)
		render.JSON(w, r, response.Error(api.Message(err)))
		return
	}

	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, response.Error(fallback))
}

// Decode разбирает JSON-тело в dst и, если validate не nil, проверяет его.
// При ошибке ответ уже записан и возвращается false.
func Decode(w http.ResponseWriter, r *http.Request, log *slog.Logger, validate *validator.Validate, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return false
	}
	if validate == nil {
		return true
	}
	if err := validate.Struct(dst); err != nil {
		log.Error("validation failed", sl.Err(err))
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(verrs))
			return false
		}
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return false
	}
	return true
}

// Page читает page и page_size из строки запроса.
func Page(r *http.Request) pagination.State {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	return pagination.New(page, size)
}

// OK пишет 200 с данными.
func OK(w http.ResponseWriter, r *http.Request, data any) {
	render.JSON(w, r, response.OKWithData(data))
}
