package trip

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/models"
)

type ClientMock struct{ mock.Mock }

func (m *ClientMock) StartTrip(ctx context.Context, plate string) (*models.Message, error) {
	args := m.Called(ctx, plate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *ClientMock) StopTrip(ctx context.Context, req models.StopTripRequest) (*models.Message, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

func (m *ClientMock) ListTrips(ctx context.Context, page, pageSize int) (*models.Page[[]models.Trip], error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Page[[]models.Trip]), args.Error(1)
}

func (m *ClientMock) GetActiveTrip(ctx context.Context) (*models.Trip, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Trip), args.Error(1)
}

func (m *ClientMock) GetTripDetails(ctx context.Context, id int64) (*models.TripCost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TripCost), args.Error(1)
}

func (m *ClientMock) CreateReview(ctx context.Context, r models.NewReview) (*models.Message, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

type SubsMock struct{ mock.Mock }

func (m *SubsMock) HasActive(ctx context.Context) (bool, error) {
	args := m.Called(ctx)
	return args.Bool(0), args.Error(1)
}

func newService(c *ClientMock, s *SubsMock) *Service {
	return NewService(c, s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func f(v float64) *float64 { return &v }

var started = time.Date(2026, 10, 19, 11, 0, 0, 0, time.UTC)

func ongoing(id int64) *models.Trip {
	return &models.Trip{ID: id, CarLicensePlate: "ABC1234", StartTime: started}
}

func finished(id int64, amount float64) models.Trip {
	end := started.Add(30 * time.Minute)
	pm := models.PaymentCard
	return models.Trip{
		ID: id, CarLicensePlate: "ABC1234", StartTime: started,
		EndTime: &end, Amount: &amount, PaymentMethod: &pm,
	}
}

func TestCalculateAmount(t *testing.T) {
	tests := []struct {
		distance, cost, want float64
	}{
		{10.5, 0.8, 8.40},
		{12, 0.8, 9.60},
		{1, 0.333, 0.33},
		{0.1, 0.1, 0.01},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, CalculateAmount(tt.distance, tt.cost), 1e-9)
	}
}

func TestStop_Scenario(t *testing.T) {
	c := new(ClientMock)
	s := new(SubsMock)
	c.On("GetActiveTrip", mock.Anything).Return(ongoing(7), nil)
	c.On("GetTripDetails", mock.Anything, int64(7)).
		Return(&models.TripCost{Trip: *ongoing(7), CostPerKm: 0.8}, nil).Once()
	s.On("HasActive", mock.Anything).Return(false, nil)
	c.On("StopTrip", mock.Anything, models.StopTripRequest{
		Distance: 12, DrivingBehavior: 6, PaymentMethod: models.PaymentCard, Amount: CalculateAmount(12, 0.8),
	}).Return(&models.Message{Message: "Trip stopped successfully"}, nil)
	c.On("GetTripDetails", mock.Anything, int64(7)).
		Return(&models.TripCost{Trip: finished(7, 9.6), CostPerKm: 0.8}, nil).Once()

	res, err := newService(c, s).Stop(context.Background(), StopForm{
		Distance: f(12), DrivingBehavior: f(6), PaymentMethod: models.PaymentCard,
	})
	require.NoError(t, err)
	assert.Equal(t, "Trip stopped successfully", res.Message)
	assert.Equal(t, models.PaymentCard, res.PaymentMethod)
	assert.InDelta(t, 9.6, res.Amount, 1e-9)
	assert.True(t, res.Reconciled)
	assert.False(t, res.Discrepancy)
	require.NotNil(t, res.Trip)
	assert.False(t, res.Trip.Ongoing())
	c.AssertExpectations(t)
}

func TestStop_SubscriptionForcesMethod(t *testing.T) {
	c := new(ClientMock)
	s := new(SubsMock)
	c.On("GetActiveTrip", mock.Anything).Return(ongoing(3), nil)
	c.On("GetTripDetails", mock.Anything, int64(3)).
		Return(&models.TripCost{Trip: *ongoing(3), CostPerKm: 1.25}, nil).Once()
	s.On("HasActive", mock.Anything).Return(true, nil)
	c.On("StopTrip", mock.Anything, mock.MatchedBy(func(r models.StopTripRequest) bool {
		return r.PaymentMethod == models.PaymentSubscription && r.Amount == 5
	})).Return(&models.Message{Message: "ok"}, nil)
	c.On("GetTripDetails", mock.Anything, int64(3)).Return(nil, errors.New("timeout")).Once()

	res, err := newService(c, s).Stop(context.Background(), StopForm{
		Distance: f(4), DrivingBehavior: f(0), PaymentMethod: models.PaymentCrypto,
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentSubscription, res.PaymentMethod)
	assert.False(t, res.Reconciled)
	assert.InDelta(t, 5.0, res.PreviewAmount, 1e-9)
	assert.Zero(t, res.Amount)
	c.AssertExpectations(t)
}

func TestStop_SubscriptionReconcilesWithZeroAmount(t *testing.T) {
	tests := []struct {
		name            string
		serverAmount    float64
		wantDiscrepancy bool
	}{
		{name: "сервер сохранил ноль", serverAmount: 0},
		{name: "сервер списал деньги", serverAmount: 5, wantDiscrepancy: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := new(ClientMock)
			s := new(SubsMock)
			c.On("GetActiveTrip", mock.Anything).Return(ongoing(3), nil)
			c.On("GetTripDetails", mock.Anything, int64(3)).
				Return(&models.TripCost{Trip: *ongoing(3), CostPerKm: 1.25}, nil).Once()
			s.On("HasActive", mock.Anything).Return(true, nil)
			c.On("StopTrip", mock.Anything, mock.Anything).Return(&models.Message{Message: "ok"}, nil)
			persisted := finished(3, tt.serverAmount)
			pm := models.PaymentSubscription
			persisted.PaymentMethod = &pm
			c.On("GetTripDetails", mock.Anything, int64(3)).
				Return(&models.TripCost{Trip: persisted, CostPerKm: 1.25}, nil).Once()

			res, err := newService(c, s).Stop(context.Background(), StopForm{
				Distance: f(4), DrivingBehavior: f(3),
			})
			require.NoError(t, err)
			assert.True(t, res.Reconciled)
			assert.Equal(t, models.PaymentSubscription, res.PaymentMethod)
			assert.InDelta(t, 5.0, res.PreviewAmount, 1e-9)
			assert.InDelta(t, tt.serverAmount, res.Amount, 1e-9)
			assert.Equal(t, tt.wantDiscrepancy, res.Discrepancy)
		})
	}
}

func TestStop_ServerAmountWins(t *testing.T) {
	c := new(ClientMock)
	s := new(SubsMock)
	c.On("GetActiveTrip", mock.Anything).Return(ongoing(9), nil)
	c.On("GetTripDetails", mock.Anything, int64(9)).
		Return(&models.TripCost{Trip: *ongoing(9), CostPerKm: 0.8}, nil).Once()
	s.On("HasActive", mock.Anything).Return(false, nil)
	c.On("StopTrip", mock.Anything, mock.Anything).Return(&models.Message{Message: "ok"}, nil)
	c.On("GetTripDetails", mock.Anything, int64(9)).
		Return(&models.TripCost{Trip: finished(9, 8.5), CostPerKm: 0.8}, nil).Once()

	res, err := newService(c, s).Stop(context.Background(), StopForm{
		Distance: f(10.5), DrivingBehavior: f(2), PaymentMethod: models.PaymentCard,
	})
	require.NoError(t, err)
	assert.InDelta(t, 8.40, res.PreviewAmount, 1e-9)
	assert.InDelta(t, 8.50, res.Amount, 1e-9)
	assert.True(t, res.Discrepancy)
}

func TestStop_RejectedWithoutStopCall(t *testing.T) {
	tests := []struct {
		name       string
		form       StopForm
		subscribed bool
		wantErr    error
		validation bool
	}{
		{"нулевая дистанция", StopForm{Distance: f(0), DrivingBehavior: f(5), PaymentMethod: models.PaymentCard}, false, nil, true},
		{"отрицательная дистанция", StopForm{Distance: f(-1), DrivingBehavior: f(5), PaymentMethod: models.PaymentCard}, false, nil, true},
		{"нет дистанции", StopForm{DrivingBehavior: f(5), PaymentMethod: models.PaymentCard}, false, nil, true},
		{"оценка выше границы", StopForm{Distance: f(1), DrivingBehavior: f(10.5), PaymentMethod: models.PaymentCard}, false, nil, true},
		{"оценка ниже нуля", StopForm{Distance: f(1), DrivingBehavior: f(-0.1), PaymentMethod: models.PaymentCard}, false, nil, true},
		{"неизвестный способ оплаты", StopForm{Distance: f(1), DrivingBehavior: f(1), PaymentMethod: "CASH"}, false, nil, true},
		{"нет способа оплаты и подписки", StopForm{Distance: f(1), DrivingBehavior: f(1)}, false, ErrPaymentMethodRequired, false},
		{"подписка без подписки", StopForm{Distance: f(1), DrivingBehavior: f(1), PaymentMethod: models.PaymentSubscription}, false, ErrPaymentMethodRequired, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := new(ClientMock)
			s := new(SubsMock)
			c.On("GetActiveTrip", mock.Anything).Return(ongoing(1), nil).Maybe()
			c.On("GetTripDetails", mock.Anything, int64(1)).
				Return(&models.TripCost{Trip: *ongoing(1), CostPerKm: 1}, nil).Maybe()
			s.On("HasActive", mock.Anything).Return(tt.subscribed, nil).Maybe()

			_, err := newService(c, s).Stop(context.Background(), tt.form)
			require.Error(t, err)
			if tt.validation {
				var verrs validator.ValidationErrors
				assert.True(t, errors.As(err, &verrs))
				c.AssertNotCalled(t, "GetActiveTrip", mock.Anything)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			c.AssertNotCalled(t, "StopTrip", mock.Anything, mock.Anything)
		})
	}
}

func TestStop_NoActiveTrip(t *testing.T) {
	c := new(ClientMock)
	s := new(SubsMock)
	c.On("GetActiveTrip", mock.Anything).Return(nil, &api.Error{StatusCode: 404, Message: "no active trip found"})

	_, err := newService(c, s).Stop(context.Background(), StopForm{
		Distance: f(1), DrivingBehavior: f(1), PaymentMethod: models.PaymentCard,
	})
	require.ErrorIs(t, err, ErrNoActiveTrip)
	c.AssertNotCalled(t, "StopTrip", mock.Anything, mock.Anything)
}

func TestStart(t *testing.T) {
	c := new(ClientMock)
	c.On("StartTrip", mock.Anything, "ABC1234").Return(&models.Message{Message: "Trip started successfully"}, nil)
	svc := newService(c, new(SubsMock))

	msg, err := svc.Start(context.Background(), " abc1234 ")
	require.NoError(t, err)
	assert.Equal(t, "Trip started successfully", msg.Message)

	_, err = svc.Start(context.Background(), "AB-1234")
	require.ErrorIs(t, err, ErrInvalidPlate)
	c.AssertNumberOfCalls(t, "StartTrip", 1)
}

func TestPreview(t *testing.T) {
	c := new(ClientMock)
	c.On("GetActiveTrip", mock.Anything).Return(ongoing(2), nil)
	c.On("GetTripDetails", mock.Anything, int64(2)).Return(&models.TripCost{Trip: *ongoing(2), CostPerKm: 0.8}, nil)

	amount, err := newService(c, new(SubsMock)).Preview(context.Background(), 10.5)
	require.NoError(t, err)
	assert.InDelta(t, 8.40, amount, 1e-9)
}

func TestReview(t *testing.T) {
	c := new(ClientMock)
	c.On("GetTripDetails", mock.Anything, int64(5)).Return(&models.TripCost{Trip: finished(5, 4)}, nil)
	c.On("GetTripDetails", mock.Anything, int64(6)).Return(&models.TripCost{Trip: *ongoing(6)}, nil)
	c.On("CreateReview", mock.Anything, mock.Anything).Return(&models.Message{Message: "Review created"}, nil).Once()
	svc := newService(c, new(SubsMock))
	ctx := context.Background()

	msg, err := svc.Review(ctx, models.NewReview{TripID: 5, Rating: 4, Comment: "smooth"})
	require.NoError(t, err)
	assert.Equal(t, "Review created", msg.Message)

	_, err = svc.Review(ctx, models.NewReview{TripID: 5, Rating: 3})
	require.ErrorIs(t, err, ErrAlreadyReviewed)

	_, err = svc.Review(ctx, models.NewReview{TripID: 6, Rating: 3})
	require.ErrorIs(t, err, ErrTripOngoing)

	_, err = svc.Review(ctx, models.NewReview{TripID: 7, Rating: 6})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	c.AssertNumberOfCalls(t, "CreateReview", 1)
}
