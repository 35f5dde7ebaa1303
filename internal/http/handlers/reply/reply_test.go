package reply

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/pagination"
)

type logouterStub struct{ calls int }

func (l *logouterStub) Logout(context.Context) error {
	l.calls++
	return nil
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

var errBusy = errors.New("car is busy")

func TestError(t *testing.T) {
	type form struct {
		Name string `validate:"required"`
	}
	verr := validator.New().Struct(form{})

	tests := []struct {
		name         string
		err          error
		wantStatus   int
		wantLocation string
		wantBody     string
		wantLogout   int
	}{
		{
			name:         "no session",
			err:          fmt.Errorf("op: %w", api.ErrNoToken),
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:         "token rejected",
			err:          &api.Error{StatusCode: http.StatusUnauthorized, Message: "invalid token"},
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
			wantLogout:   1,
		},
		{
			name:       "validation",
			err:        fmt.Errorf("op: %w", verr),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Field Name is a required field",
		},
		{
			name:       "client sentinel",
			err:        fmt.Errorf("op: %w", errBusy),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Car is busy",
		},
		{
			name:       "backend 409",
			err:        fmt.Errorf("op: %w", &api.Error{StatusCode: http.StatusConflict, Message: "car is already rented"}),
			wantStatus: http.StatusConflict,
			wantBody:   "Car is already rented",
		},
		{
			name:       "backend 500",
			err:        &api.Error{StatusCode: http.StatusInternalServerError, Message: "database error"},
			wantStatus: http.StatusBadGateway,
			wantBody:   "Database error",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   "Failed to do things",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess := &logouterStub{}
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			Error(w, r, newNoopLogger(), sess, tt.err, "failed to do things", errBusy)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantLogout, sess.calls)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))
			}
			if tt.wantBody != "" {
				assert.Contains(t, w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestError_NilSession(t *testing.T) {
	w := httptest.NewRecorder()
	Error(w, httptest.NewRequest(http.MethodGet, "/", nil), newNoopLogger(), nil,
		&api.Error{StatusCode: http.StatusUnauthorized, Message: "invalid credentials"}, "failed")

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestDecode(t *testing.T) {
	type req struct {
		Email string `json:"email" validate:"required,email"`
	}
	v := validator.New()

	tests := []struct {
		name       string
		body       string
		validate   *validator.Validate
		wantOK     bool
		wantStatus int
	}{
		{"valid", `{"email":"a@b.io"}`, v, true, http.StatusOK},
		{"broken json", `{"email":`, v, false, http.StatusBadRequest},
		{"invalid email", `{"email":"nope"}`, v, false, http.StatusUnprocessableEntity},
		{"no validator", `{"email":"nope"}`, nil, true, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var dst req

			ok := Decode(w, r, newNoopLogger(), tt.validate, &dst)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestPage(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=3&page_size=25", nil)
	assert.Equal(t, pagination.State{Page: 3, PageSize: 25}, Page(r))

	r = httptest.NewRequest(http.MethodGet, "/?page=x", nil)
	assert.Equal(t, pagination.New(1, pagination.DefaultPageSize), Page(r))
}
