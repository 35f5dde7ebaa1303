package models

// Service запись о техобслуживании автомобиля.
type Service struct {
	ID              int64    `json:"id"`
	CarLicensePlate string   `json:"car_license_plate"`
	ServiceDate     string   `json:"service_date"`
	Description     *string  `json:"description"`
	ServiceCost     *float64 `json:"service_cost"`
}

// NewService тело POST /cars/services.
type NewService struct {
	LicensePlate string  `json:"license_plate" validate:"required,len=7,alphanum"`
	ServiceDate  string  `json:"service_date" validate:"required"`
	Description  string  `json:"description,omitempty"`
	ServiceCost  float64 `json:"service_cost" validate:"gt=0"`
}

// Damage запись о повреждении автомобиля.
type Damage struct {
	ID              int64    `json:"id"`
	CarLicensePlate string   `json:"car_license_plate"`
	ReportedDate    string   `json:"reported_date"`
	Description     *string  `json:"description"`
	Repaired        bool     `json:"repaired"`
	RepairCost      *float64 `json:"repair_cost"`
}

// NewDamage тело POST /cars/damages.
type NewDamage struct {
	LicensePlate string   `json:"license_plate" validate:"required,len=7,alphanum"`
	ReportedDate string   `json:"reported_date" validate:"required"`
	Description  string   `json:"description,omitempty"`
	Repaired     bool     `json:"repaired"`
	RepairCost   *float64 `json:"repair_cost,omitempty" validate:"omitempty,gt=0"`
}

// CarServices поле data ответа GET /details/{plate}/services.
type CarServices struct {
	Car      Car       `json:"car"`
	Services []Service `json:"services"`
}

// CarDamages поле data ответа GET /details/{plate}/damages.
type CarDamages struct {
	Car     Car      `json:"car"`
	Damages []Damage `json:"damages"`
}
