// Package subscription содержит бизнес-логику подписок: каталог тарифов,
// активная подписка пользователя, покупка и отмена.
package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/lib/month"
	"github.com/magabrotheeeer/datadrive/internal/models"
)

var (
	// ErrAlreadySubscribed у пользователя уже есть действующая подписка.
	ErrAlreadySubscribed = errors.New("there is an already active subscription")
	// ErrUnknownPlan тариф не входит в каталог.
	ErrUnknownPlan = errors.New("invalid subscription name")
)

// Plans тарифы каталога в порядке отображения.
var Plans = []models.SubscriptionName{models.OneMonth, models.ThreeMonths, models.OneYear}

// Client описывает вызовы бэкенда, нужные сервису.
type Client interface {
	ListSubscriptions(ctx context.Context) ([]models.Subscription, error)
	GetActiveSubscription(ctx context.Context) (*models.UserSubscription, error)
	BuySubscription(ctx context.Context, name models.SubscriptionName) (*models.SubscriptionReceipt, error)
	CancelSubscription(ctx context.Context) (*models.Message, error)
}

// Service реализует сценарии подписок поверх API-клиента.
type Service struct {
	client Client
	log    *slog.Logger
	now    func() time.Time
}

// NewService создает новый экземпляр Service.
func NewService(client Client, log *slog.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
		now:    time.Now,
	}
}

// Catalogue возвращает тарифы бэкенда.
func (s *Service) Catalogue(ctx context.Context) ([]models.Subscription, error) {
	const op = "services.subscription.Catalogue"

	subs, err := s.client.ListSubscriptions(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return subs, nil
}

// Active возвращает действующую подписку или nil, если её нет.
func (s *Service) Active(ctx context.Context) (*models.UserSubscription, error) {
	const op = "services.subscription.Active"

	sub, err := s.client.GetActiveSubscription(ctx)
	if errors.Is(err, api.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if !sub.ActiveAt(s.now()) {
		return nil, nil
	}
	return sub, nil
}

// MonthsLeft сколько месяцев тарифа ещё не истекли. Без даты начала отсчёт
// ведётся от даты окончания назад на длительность тарифа.
func (s *Service) MonthsLeft(sub models.UserSubscription) int {
	months := sub.SubscriptionName.Months()
	var start time.Time
	switch {
	case sub.StartDate != nil:
		start = *sub.StartDate
	case sub.EndDate != nil:
		start = sub.EndDate.AddDate(0, -months, 0)
	default:
		return months
	}
	return month.Remaining(start, months, s.now())
}

// HasActive сообщает, есть ли у пользователя действующая подписка.
func (s *Service) HasActive(ctx context.Context) (bool, error) {
	sub, err := s.Active(ctx)
	if err != nil {
		return false, err
	}
	return sub != nil, nil
}

// Buy покупает тариф. Пока действует другая подписка, покупка отклоняется без запроса к бэкенду.
func (s *Service) Buy(ctx context.Context, name models.SubscriptionName) (*models.SubscriptionReceipt, error) {
	const op = "services.subscription.Buy"

	if !knownPlan(name) {
		return nil, fmt.Errorf("%s: %w", op, ErrUnknownPlan)
	}
	active, err := s.HasActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if active {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadySubscribed)
	}

	receipt, err := s.client.BuySubscription(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("subscription purchased",
		slog.String("plan", string(name)),
		slog.Time("end_date", receipt.EndDate),
	)
	return receipt, nil
}

// Cancel отменяет действующую подписку.
func (s *Service) Cancel(ctx context.Context) (*models.Message, error) {
	const op = "services.subscription.Cancel"

	msg, err := s.client.CancelSubscription(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("subscription cancelled")
	return msg, nil
}

func knownPlan(name models.SubscriptionName) bool {
	for _, p := range Plans {
		if p == name {
			return true
		}
	}
	return false
}
