package models

import "time"

// PaymentMethod способ оплаты поездки.
type PaymentMethod string

const (
	PaymentSubscription PaymentMethod = "SUBSCRIPTION"
	PaymentCard         PaymentMethod = "CARD"
	PaymentCrypto       PaymentMethod = "CRYPTO"
)

// Trip поездка. EndTime == nil означает, что поездка ещё идёт;
// Distance, DrivingBehavior, Amount и PaymentMethod заполняются один раз при остановке.
type Trip struct {
	ID              int64          `json:"id"`
	UserEmail       string         `json:"user_email"`
	CarLicensePlate string         `json:"car_license_plate"`
	StartTime       time.Time      `json:"start_time"`
	EndTime         *time.Time     `json:"end_time,omitempty"`
	Distance        *float64       `json:"distance,omitempty"`
	DrivingBehavior *float64       `json:"driving_behavior,omitempty"`
	Amount          *float64       `json:"amount,omitempty"`
	PaymentMethod   *PaymentMethod `json:"payment_method,omitempty"`
}

// Ongoing true, пока у поездки нет времени окончания.
func (t Trip) Ongoing() bool {
	return t.EndTime == nil || t.EndTime.IsZero()
}

// TripCost ответ GET /trips/details/{id}.
type TripCost struct {
	Trip      Trip    `json:"trip"`
	CostPerKm float64 `json:"cost_per_km"`
}

// StopTripRequest тело POST /trips/stop.
type StopTripRequest struct {
	Distance        float64       `json:"distance"`
	DrivingBehavior float64       `json:"driving_behavior"`
	PaymentMethod   PaymentMethod `json:"payment_method"`
	Amount          float64       `json:"amount"`
}

// Message стандартный ответ бэкенда на изменяющие запросы.
type Message struct {
	Message string `json:"message"`
}
