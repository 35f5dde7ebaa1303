package models

// DriveMode режим движения в настройках автомобиля.
type DriveMode string

const (
	DriveComfort DriveMode = "COMFORT"
	DriveSport   DriveMode = "SPORT"
	DriveEco     DriveMode = "ECO"
)

// Settings пользовательские настройки автомобиля. Все поля необязательны;
// при частичном обновлении nil-поля не передаются.
type Settings struct {
	SeatPositionHorizontal *float64   `json:"seat_position_horizontal,omitempty" validate:"omitempty,min=0,max=999.9"`
	SeatPositionVertical   *float64   `json:"seat_position_vertical,omitempty" validate:"omitempty,min=0,max=999.9"`
	SeatReclineAngle       *float64   `json:"seat_recline_angle,omitempty" validate:"omitempty,min=0,max=999.9"`
	SteeringWheelPosition  *float64   `json:"steering_wheel_position,omitempty" validate:"omitempty,min=0,max=999.9"`
	LeftMirrorAngle        *float64   `json:"left_mirror_angle,omitempty" validate:"omitempty,min=0,max=999.9"`
	RightMirrorAngle       *float64   `json:"right_mirror_angle,omitempty" validate:"omitempty,min=0,max=999.9"`
	RearviewMirrorAngle    *float64   `json:"rearview_mirror_angle,omitempty" validate:"omitempty,min=0,max=999.9"`
	CabinTemperature       *float64   `json:"cabin_temperature,omitempty" validate:"omitempty,min=-50,max=50"`
	DriveMode              *DriveMode `json:"drive_mode,omitempty" validate:"omitempty,oneof=COMFORT SPORT ECO"`
	SuspensionHeight       *float64   `json:"suspension_height,omitempty" validate:"omitempty,min=0,max=999.9"`
	EngineStartStop        *bool      `json:"engine_start_stop,omitempty"`
	CruiseControl          *bool      `json:"cruise_control,omitempty"`
}
