// Package models содержит доменные структуры DataDrive в том виде,
// в котором их отдаёт и принимает REST-бэкенд.
package models

import (
	"regexp"
	"strings"
)

// CarStatus состояние автомобиля. Меняется бэкендом при старте и остановке поездки.
type CarStatus string

const (
	CarAvailable   CarStatus = "AVAILABLE"
	CarRented      CarStatus = "RENTED"
	CarMaintenance CarStatus = "MAINTENANCE"
)

// Valid сообщает, является ли статус одним из известных.
func (s CarStatus) Valid() bool {
	switch CarStatus(strings.ToUpper(string(s))) {
	case CarAvailable, CarRented, CarMaintenance:
		return true
	}
	return false
}

var plateRe = regexp.MustCompile(`^[A-Z]{3}[0-9]{4}$`)

// NormalizePlate приводит номер к верхнему регистру и проверяет формат AAA0000.
func NormalizePlate(plate string) (string, bool) {
	p := strings.ToUpper(strings.TrimSpace(plate))
	return p, plateRe.MatchString(p)
}

// Car автомобиль автопарка. LicensePlate уникален.
type Car struct {
	LicensePlate string    `json:"license_plate" validate:"required,len=7,alphanum"`
	Make         string    `json:"make" validate:"required"`
	Model        string    `json:"model" validate:"required"`
	Status       CarStatus `json:"status,omitempty"`
	CostPerKm    float64   `json:"cost_per_km" validate:"required,gt=0"`
	Location     string    `json:"location" validate:"required"`
}

// CarUpdate тело PUT /cars/{plate}: номер передаётся в пути.
type CarUpdate struct {
	Make      string    `json:"make" validate:"required"`
	Model     string    `json:"model" validate:"required"`
	Status    CarStatus `json:"status" validate:"required,oneof=AVAILABLE RENTED MAINTENANCE"`
	CostPerKm float64   `json:"cost_per_km" validate:"required,gt=0"`
	Location  string    `json:"location" validate:"required"`
}

// CarDetails ответ GET /cars/{plate}/details.
type CarDetails struct {
	Car      Car       `json:"car"`
	Damages  []Damage  `json:"damages"`
	Services []Service `json:"services"`
}
