package models

import "time"

// SubscriptionName тариф из каталога.
type SubscriptionName string

const (
	OneMonth    SubscriptionName = "1_MONTH"
	ThreeMonths SubscriptionName = "3_MONTHS"
	OneYear     SubscriptionName = "1_YEAR"
)

// Months длительность тарифа в месяцах; 0 для неизвестного тарифа.
func (n SubscriptionName) Months() int {
	switch n {
	case OneMonth:
		return 1
	case ThreeMonths:
		return 3
	case OneYear:
		return 12
	}
	return 0
}

// Subscription элемент каталога подписок.
type Subscription struct {
	Name          SubscriptionName `json:"name"`
	PricePerMonth float64          `json:"price_per_month"`
	Description   string           `json:"description"`
}

// UserSubscription активный экземпляр подписки пользователя.
type UserSubscription struct {
	SubscriptionName SubscriptionName `json:"subscription_name" validate:"required,oneof=1_MONTH 3_MONTHS 1_YEAR"`
	StartDate        *time.Time       `json:"start_date,omitempty"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	IsCancelled      bool             `json:"is_cancelled"`
}

// ActiveAt сообщает, действует ли подписка в момент now: не отменена и не истекла.
func (s UserSubscription) ActiveAt(now time.Time) bool {
	if s.SubscriptionName == "" || s.IsCancelled {
		return false
	}
	return s.EndDate == nil || s.EndDate.After(now)
}

// SubscriptionReceipt ответ POST /subscriptions/buy.
type SubscriptionReceipt struct {
	Message string    `json:"message"`
	EndDate time.Time `json:"end_date"`
}
