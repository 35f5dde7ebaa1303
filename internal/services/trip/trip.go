// Package trip реализует жизненный цикл поездки: старт, остановку с расчётом
// стоимости, сверку суммы с бэкендом и отзыв о завершённой поездке.
package trip

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/lib/sl"
	"github.com/magabrotheeeer/datadrive/internal/metrics"
	"github.com/magabrotheeeer/datadrive/internal/models"
)

const (
	// MaxDrivingBehavior верхняя граница оценки стиля вождения.
	MaxDrivingBehavior = 10
	// amountTolerance допустимое расхождение суммы клиента и бэкенда.
	amountTolerance = 0.005
)

var (
	// ErrInvalidPlate номер не соответствует формату AAA0000.
	ErrInvalidPlate = errors.New("license plate must be three letters followed by four digits")
	// ErrNoActiveTrip у пользователя нет идущей поездки.
	ErrNoActiveTrip = errors.New("no active trip found")
	// ErrPaymentMethodRequired без подписки способ оплаты обязателен.
	ErrPaymentMethodRequired = errors.New("payment method is required without an active subscription")
	// ErrTripOngoing отзыв можно оставить только о завершённой поездке.
	ErrTripOngoing = errors.New("trip is still ongoing")
	// ErrAlreadyReviewed отзыв о поездке уже отправлен.
	ErrAlreadyReviewed = errors.New("trip has already been reviewed")
)

// Client описывает вызовы бэкенда, нужные сервису поездок.
type Client interface {
	StartTrip(ctx context.Context, plate string) (*models.Message, error)
	StopTrip(ctx context.Context, req models.StopTripRequest) (*models.Message, error)
	ListTrips(ctx context.Context, page, pageSize int) (*models.Page[[]models.Trip], error)
	GetActiveTrip(ctx context.Context) (*models.Trip, error)
	GetTripDetails(ctx context.Context, id int64) (*models.TripCost, error)
	CreateReview(ctx context.Context, r models.NewReview) (*models.Message, error)
}

// Subscriptions сообщает, есть ли у пользователя действующая подписка.
type Subscriptions interface {
	HasActive(ctx context.Context) (bool, error)
}

// StopForm данные формы остановки поездки.
// Указатели отличают незаполненное поле от нуля.
type StopForm struct {
	Distance        *float64             `json:"distance" validate:"required,gt=0"`
	DrivingBehavior *float64             `json:"driving_behavior" validate:"required,gte=0,lte=10"`
	PaymentMethod   models.PaymentMethod `json:"payment_method" validate:"omitempty,oneof=SUBSCRIPTION CARD CRYPTO"`
}

// StopResult итог остановки. Amount сумма, сохранённая бэкендом; при оплате
// подпиской она нулевая, а PreviewAmount остаётся расчётом по тарифу.
type StopResult struct {
	Message       string               `json:"message"`
	TripID        int64                `json:"trip_id"`
	PaymentMethod models.PaymentMethod `json:"payment_method"`
	PreviewAmount float64              `json:"preview_amount"`
	Amount        float64              `json:"amount"`
	Discrepancy   bool                 `json:"discrepancy"`
	Reconciled    bool                 `json:"reconciled"`
	Trip          *models.Trip         `json:"trip,omitempty"`
}

// Service сценарии поездок.
type Service struct {
	client   Client
	subs     Subscriptions
	log      *slog.Logger
	validate *validator.Validate

	mu       sync.Mutex
	reviewed map[int64]struct{}
}

// NewService создает новый экземпляр Service.
func NewService(client Client, subs Subscriptions, log *slog.Logger) *Service {
	return &Service{
		client:   client,
		subs:     subs,
		log:      log,
		validate: validator.New(),
		reviewed: make(map[int64]struct{}),
	}
}

// CalculateAmount стоимость поездки, округлённая до центов.
func CalculateAmount(distance, costPerKm float64) float64 {
	return math.Round(distance*costPerKm*100) / 100
}

// Start начинает поездку на автомобиле с номером plate.
func (s *Service) Start(ctx context.Context, plate string) (*models.Message, error) {
	const op = "services.trip.Start"

	normalized, ok := models.NormalizePlate(plate)
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidPlate)
	}
	msg, err := s.client.StartTrip(ctx, normalized)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("trip started", sl.Plate(normalized))
	return msg, nil
}

// Active возвращает идущую поездку или ErrNoActiveTrip.
func (s *Service) Active(ctx context.Context) (*models.Trip, error) {
	const op = "services.trip.Active"

	t, err := s.client.GetActiveTrip(ctx)
	if errors.Is(err, api.ErrNotFound) {
		return nil, fmt.Errorf("%s: %w", op, ErrNoActiveTrip)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return t, nil
}

// List страница поездок пользователя.
func (s *Service) List(ctx context.Context, page, pageSize int) (*models.Page[[]models.Trip], error) {
	const op = "services.trip.List"

	res, err := s.client.ListTrips(ctx, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// Details поездка и стоимость километра автомобиля.
func (s *Service) Details(ctx context.Context, id int64) (*models.TripCost, error) {
	const op = "services.trip.Details"

	res, err := s.client.GetTripDetails(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return res, nil
}

// Preview предварительная сумма остановки активной поездки.
func (s *Service) Preview(ctx context.Context, distance float64) (float64, error) {
	const op = "services.trip.Preview"

	active, err := s.Active(ctx)
	if err != nil {
		return 0, err
	}
	details, err := s.client.GetTripDetails(ctx, active.ID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return CalculateAmount(distance, details.CostPerKm), nil
}

// Stop останавливает активную поездку.
//
// Форма проверяется до любых запросов. При действующей подписке способ оплаты
// принудительно SUBSCRIPTION, без неё обязателен. После остановки сумма
// перечитывается: сохранённая бэкендом считается верной, расхождение логируется.
func (s *Service) Stop(ctx context.Context, form StopForm) (*StopResult, error) {
	const op = "services.trip.Stop"

	if err := s.validate.Struct(form); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	active, err := s.Active(ctx)
	if err != nil {
		return nil, err
	}
	details, err := s.client.GetTripDetails(ctx, active.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	subscribed, err := s.subs.HasActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	method := form.PaymentMethod
	switch {
	case subscribed:
		method = models.PaymentSubscription
	case method == "" || method == models.PaymentSubscription:
		return nil, fmt.Errorf("%s: %w", op, ErrPaymentMethodRequired)
	}

	amount := CalculateAmount(*form.Distance, details.CostPerKm)
	req := models.StopTripRequest{
		Distance:        *form.Distance,
		DrivingBehavior: *form.DrivingBehavior,
		PaymentMethod:   method,
		Amount:          amount,
	}
	msg, err := s.client.StopTrip(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	metrics.TripStops.WithLabelValues(string(method)).Inc()

	// Поездка по подписке бэкенд сохраняет с нулевой суммой.
	expected := amount
	if method == models.PaymentSubscription {
		expected = 0
	}
	res := &StopResult{
		Message:       msg.Message,
		TripID:        active.ID,
		PaymentMethod: method,
		PreviewAmount: amount,
		Amount:        expected,
	}

	log := s.log.With(
		slog.String("op", op),
		slog.Int64("trip_id", active.ID),
	)
	persisted, err := s.client.GetTripDetails(ctx, active.ID)
	if err != nil {
		log.Warn("failed to reconcile trip amount", sl.Err(err))
		return res, nil
	}
	res.Reconciled = true
	res.Trip = &persisted.Trip
	if persisted.Trip.Amount != nil {
		res.Amount = *persisted.Trip.Amount
		if math.Abs(res.Amount-expected) > amountTolerance {
			res.Discrepancy = true
			metrics.AmountDiscrepancies.Inc()
			log.Warn("trip amount differs from server",
				slog.Float64("client_amount", expected),
				slog.Float64("server_amount", res.Amount),
			)
		}
	}
	log.Info("trip stopped",
		slog.String("payment_method", string(method)),
		slog.Float64("amount", res.Amount),
	)
	return res, nil
}

// Review отправляет отзыв о завершённой поездке. Повторный отзыв о той же
// поездке в рамках процесса отклоняется.
func (s *Service) Review(ctx context.Context, review models.NewReview) (*models.Message, error) {
	const op = "services.trip.Review"

	if err := s.validate.Struct(review); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	_, done := s.reviewed[review.TripID]
	s.mu.Unlock()
	if done {
		return nil, fmt.Errorf("%s: %w", op, ErrAlreadyReviewed)
	}

	details, err := s.client.GetTripDetails(ctx, review.TripID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if details.Trip.Ongoing() {
		return nil, fmt.Errorf("%s: %w", op, ErrTripOngoing)
	}

	msg, err := s.client.CreateReview(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.reviewed[review.TripID] = struct{}{}
	s.mu.Unlock()
	return msg, nil
}
