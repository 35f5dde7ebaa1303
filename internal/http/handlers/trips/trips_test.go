package trips

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/datadrive/internal/models"
	"github.com/magabrotheeeer/datadrive/internal/services/trip"
)

type ServiceMock struct{ mock.Mock }

func (m *ServiceMock) Start(ctx context.Context, plate string) (*models.Message, error) {
	args := m.Called(ctx, plate)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func (m *ServiceMock) Stop(ctx context.Context, form trip.StopForm) (*trip.StopResult, error) {
	args := m.Called(ctx, form)
	res, _ := args.Get(0).(*trip.StopResult)
	return res, args.Error(1)
}

func (m *ServiceMock) Active(ctx context.Context) (*models.Trip, error) {
	args := m.Called(ctx)
	t, _ := args.Get(0).(*models.Trip)
	return t, args.Error(1)
}

func (m *ServiceMock) List(ctx context.Context, page, pageSize int) (*models.Page[[]models.Trip], error) {
	args := m.Called(ctx, page, pageSize)
	p, _ := args.Get(0).(*models.Page[[]models.Trip])
	return p, args.Error(1)
}

func (m *ServiceMock) Details(ctx context.Context, id int64) (*models.TripCost, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*models.TripCost)
	return d, args.Error(1)
}

func (m *ServiceMock) Preview(ctx context.Context, distance float64) (float64, error) {
	args := m.Called(ctx, distance)
	return args.Get(0).(float64), args.Error(1)
}

func (m *ServiceMock) Review(ctx context.Context, review models.NewReview) (*models.Message, error) {
	args := m.Called(ctx, review)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

type sessionStub struct{}

func (sessionStub) Logout(context.Context) error { return nil }

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newRouter(s *ServiceMock) http.Handler {
	h := New(newNoopLogger(), s, sessionStub{})
	r := chi.NewRouter()
	r.Post("/trips/start", h.Start)
	r.Post("/trips/stop", h.Stop)
	r.Get("/trips/active", h.Active)
	r.Get("/trips/preview", h.Preview)
	r.Get("/trips", h.List)
	r.Get("/trips/{id}", h.Details)
	r.Post("/trips/{id}/review", h.Review)
	return r
}

func do(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(method, path, strings.NewReader(body)))
	return w
}

func TestStart_InvalidPlate(t *testing.T) {
	s := new(ServiceMock)
	s.On("Start", mock.Anything, "12AB").Return(nil, fmt.Errorf("services.trip.Start: %w", trip.ErrInvalidPlate))

	w := do(newRouter(s), http.MethodPost, "/trips/start", `{"license_plate":"12AB"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "License plate must be three letters")
}

func TestStop(t *testing.T) {
	validationErr := validator.New().Struct(trip.StopForm{})

	tests := []struct {
		name       string
		err        error
		result     *trip.StopResult
		wantStatus int
		wantBody   string
	}{
		{
			name:       "paid by card",
			result:     &trip.StopResult{Message: "Trip stopped", TripID: 7, PaymentMethod: models.PaymentCard, Amount: 9.6},
			wantStatus: http.StatusOK,
			wantBody:   `"amount":9.6`,
		},
		{
			name:       "missing payment method",
			err:        fmt.Errorf("services.trip.Stop: %w", trip.ErrPaymentMethodRequired),
			wantStatus: http.StatusBadRequest,
			wantBody:   "Payment method is required",
		},
		{
			name:       "no active trip",
			err:        fmt.Errorf("services.trip.Active: %w", trip.ErrNoActiveTrip),
			wantStatus: http.StatusBadRequest,
			wantBody:   "No active trip found",
		},
		{
			name:       "invalid form",
			err:        fmt.Errorf("services.trip.Stop: %w", validationErr),
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "Field Distance is a required field",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(ServiceMock)
			s.On("Stop", mock.Anything, mock.Anything).Return(tt.result, tt.err)

			w := do(newRouter(s), http.MethodPost, "/trips/stop", `{"distance":12,"driving_behavior":6,"payment_method":"CARD"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestStop_DecodesForm(t *testing.T) {
	s := new(ServiceMock)
	s.On("Stop", mock.Anything, mock.MatchedBy(func(f trip.StopForm) bool {
		return f.Distance != nil && *f.Distance == 12 &&
			f.DrivingBehavior != nil && *f.DrivingBehavior == 0 &&
			f.PaymentMethod == models.PaymentCrypto
	})).Return(&trip.StopResult{}, nil)

	w := do(newRouter(s), http.MethodPost, "/trips/stop", `{"distance":12,"driving_behavior":0,"payment_method":"CRYPTO"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	s.AssertExpectations(t)
}

func TestActive_None(t *testing.T) {
	s := new(ServiceMock)
	s.On("Active", mock.Anything).Return(nil, fmt.Errorf("services.trip.Active: %w", trip.ErrNoActiveTrip))

	w := do(newRouter(s), http.MethodGet, "/trips/active", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPreview(t *testing.T) {
	s := new(ServiceMock)
	s.On("Preview", mock.Anything, 10.5).Return(8.4, nil)

	w := do(newRouter(s), http.MethodGet, "/trips/preview?distance=10.5", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"amount":8.4`)

	w = do(newRouter(s), http.MethodGet, "/trips/preview?distance=-1", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	s.AssertNumberOfCalls(t, "Preview", 1)
}

func TestList(t *testing.T) {
	s := new(ServiceMock)
	s.On("List", mock.Anything, 1, 10).Return(&models.Page[[]models.Trip]{
		Data: []models.Trip{{ID: 1}, {ID: 2}},
		Meta: models.Meta{CurrentPage: 1, PageSize: 10, TotalPages: 1, Total: 2},
	}, nil)

	w := do(newRouter(s), http.MethodGet, "/trips", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":2`)
	assert.Contains(t, w.Body.String(), `"has_next":false`)
}

func TestDetails_InvalidID(t *testing.T) {
	s := new(ServiceMock)
	w := do(newRouter(s), http.MethodGet, "/trips/abc", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	s.AssertNotCalled(t, "Details", mock.Anything, mock.Anything)
}

func TestDetails(t *testing.T) {
	start := time.Date(2025, 3, 4, 9, 5, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)
	distance, amount := 12.5, 10.0

	tests := []struct {
		name  string
		trip  models.Trip
		wants []string
	}{
		{
			name: "ongoing",
			trip: models.Trip{ID: 7, CarLicensePlate: "ABC1234", StartTime: start},
			wants: []string{
				`"plate":"ABC-1234"`,
				`"started_at":"04/03/2025, 09:05"`,
				`"ended_at":"Ongoing"`,
				`"amount_text":"Not yet calculated"`,
				`"rate_text":"0.80 / km"`,
			},
		},
		{
			name: "finished",
			trip: models.Trip{ID: 7, CarLicensePlate: "ABC1234", StartTime: start, EndTime: &end, Distance: &distance, Amount: &amount},
			wants: []string{
				`"ended_at":"04/03/2025, 09:35"`,
				`"distance_text":"12.5 km"`,
				`"amount_text":"10.00"`,
				`"cost_per_km":0.8`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(ServiceMock)
			s.On("Details", mock.Anything, int64(7)).Return(&models.TripCost{Trip: tt.trip, CostPerKm: 0.8}, nil)

			w := do(newRouter(s), http.MethodGet, "/trips/7", "")

			assert.Equal(t, http.StatusOK, w.Code)
			for _, want := range tt.wants {
				assert.Contains(t, w.Body.String(), want)
			}
		})
	}
}

func TestReview(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "accepted", wantStatus: http.StatusOK},
		{name: "already reviewed", err: fmt.Errorf("services.trip.Review: %w", trip.ErrAlreadyReviewed), wantStatus: http.StatusBadRequest},
		{name: "ongoing", err: fmt.Errorf("services.trip.Review: %w", trip.ErrTripOngoing), wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := new(ServiceMock)
			var msg *models.Message
			if tt.err == nil {
				msg = &models.Message{Message: "Review created"}
			}
			s.On("Review", mock.Anything, models.NewReview{TripID: 5, Rating: 4, Comment: "smooth"}).Return(msg, tt.err)

			w := do(newRouter(s), http.MethodPost, "/trips/5/review", `{"rating":4,"comment":"smooth"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			s.AssertExpectations(t)
		})
	}
}
