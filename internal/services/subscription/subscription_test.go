package subscription

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/models"
)

type ClientMock struct{ mock.Mock }

func (m *ClientMock) ListSubscriptions(ctx context.Context) ([]models.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Subscription), args.Error(1)
}

func (m *ClientMock) GetActiveSubscription(ctx context.Context) (*models.UserSubscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSubscription), args.Error(1)
}

func (m *ClientMock) BuySubscription(ctx context.Context, name models.SubscriptionName) (*models.SubscriptionReceipt, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.SubscriptionReceipt), args.Error(1)
}

func (m *ClientMock) CancelSubscription(ctx context.Context) (*models.Message, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Message), args.Error(1)
}

var now = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func newService(c *ClientMock) *Service {
	s := NewService(c, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return now }
	return s
}

func notFound() error {
	return &api.Error{StatusCode: 404, Message: "no subscription found"}
}

func TestService_Active(t *testing.T) {
	future := now.Add(48 * time.Hour)
	past := now.Add(-time.Hour)

	tests := []struct {
		name      string
		resp      *models.UserSubscription
		err       error
		wantNil   bool
		wantError bool
	}{
		{"действующая", &models.UserSubscription{SubscriptionName: models.OneMonth, EndDate: &future}, nil, false, false},
		{"истекла", &models.UserSubscription{SubscriptionName: models.OneMonth, EndDate: &past}, nil, true, false},
		{"отменена", &models.UserSubscription{SubscriptionName: models.OneYear, EndDate: &future, IsCancelled: true}, nil, true, false},
		{"нет подписки", nil, notFound(), true, false},
		{"ошибка бэкенда", nil, errors.New("connection refused"), true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := new(ClientMock)
			c.On("GetActiveSubscription", mock.Anything).Return(tt.resp, tt.err)

			sub, err := newService(c).Active(context.Background())
			if tt.wantError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantNil, sub == nil)
			c.AssertExpectations(t)
		})
	}
}

func TestService_Buy(t *testing.T) {
	future := now.Add(48 * time.Hour)

	t.Run("без активной подписки", func(t *testing.T) {
		c := new(ClientMock)
		c.On("GetActiveSubscription", mock.Anything).Return(nil, notFound())
		c.On("BuySubscription", mock.Anything, models.ThreeMonths).
			Return(&models.SubscriptionReceipt{Message: "ok", EndDate: now.AddDate(0, 3, 0)}, nil)

		receipt, err := newService(c).Buy(context.Background(), models.ThreeMonths)
		require.NoError(t, err)
		assert.Equal(t, "ok", receipt.Message)
		c.AssertExpectations(t)
	})

	t.Run("уже есть подписка", func(t *testing.T) {
		c := new(ClientMock)
		c.On("GetActiveSubscription", mock.Anything).
			Return(&models.UserSubscription{SubscriptionName: models.OneMonth, EndDate: &future}, nil)

		_, err := newService(c).Buy(context.Background(), models.OneYear)
		require.ErrorIs(t, err, ErrAlreadySubscribed)
		c.AssertNotCalled(t, "BuySubscription", mock.Anything, mock.Anything)
	})

	t.Run("неизвестный тариф", func(t *testing.T) {
		c := new(ClientMock)
		_, err := newService(c).Buy(context.Background(), "2_WEEKS")
		require.ErrorIs(t, err, ErrUnknownPlan)
		c.AssertExpectations(t)
	})
}

func TestService_HasActiveAndCancel(t *testing.T) {
	future := now.Add(time.Hour)
	c := new(ClientMock)
	c.On("GetActiveSubscription", mock.Anything).
		Return(&models.UserSubscription{SubscriptionName: models.OneMonth, EndDate: &future}, nil).Once()
	c.On("CancelSubscription", mock.Anything).Return(&models.Message{Message: "Subscription cancelled"}, nil)
	s := newService(c)

	ok, err := s.HasActive(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	msg, err := s.Cancel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Subscription cancelled", msg.Message)
	c.AssertExpectations(t)
}

func TestService_Catalogue(t *testing.T) {
	c := new(ClientMock)
	c.On("ListSubscriptions", mock.Anything).Return([]models.Subscription{{Name: models.OneMonth}}, nil)

	subs, err := newService(c).Catalogue(context.Background())
	require.NoError(t, err)
	assert.Len(t, subs, 1)

	c2 := new(ClientMock)
	c2.On("ListSubscriptions", mock.Anything).Return(nil, errors.New("down"))
	_, err = newService(c2).Catalogue(context.Background())
	assert.Error(t, err)
}

func TestService_MonthsLeft(t *testing.T) {
	s := newService(new(ClientMock))

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, s.MonthsLeft(models.UserSubscription{SubscriptionName: models.ThreeMonths, StartDate: &start}))

	end := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 4, s.MonthsLeft(models.UserSubscription{SubscriptionName: models.OneYear, EndDate: &end}))

	assert.Equal(t, 1, s.MonthsLeft(models.UserSubscription{SubscriptionName: models.OneMonth}))
	assert.Equal(t, 0, s.MonthsLeft(models.UserSubscription{SubscriptionName: "2_WEEKS"}))
}
