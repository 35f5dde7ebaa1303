// Package settings описывает закрытый набор пользовательских настроек автомобиля:
// проверку отдельных полей, признак «настроек ещё нет» и частичное обновление.
package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/models"
)

// Kind тип значения поля настроек.
type Kind int

const (
	KindNumber Kind = iota
	KindEnum
	KindBool
)

// Режимы представления настроек.
const (
	ModeCreate = "create"
	ModeEdit   = "edit"
)

var (
	// ErrUnknownField поле не входит в набор настроек.
	ErrUnknownField = errors.New("unknown settings field")
	// ErrRequired значение поля не задано.
	ErrRequired = errors.New("this field is required")
	// ErrNegative отрицательное значение.
	ErrNegative = errors.New("value cannot be negative")
	// ErrOutOfRange значение вне допустимого диапазона.
	ErrOutOfRange = errors.New("value is out of range")
	// ErrTemperature температура вне [-50, 50].
	ErrTemperature = errors.New("temperature must be between -50 and 50")
	// ErrDriveMode неизвестный режим движения.
	ErrDriveMode = errors.New("drive mode must be one of COMFORT, SPORT, ECO")
	// ErrEmptyPatch обновление не содержит ни одного поля.
	ErrEmptyPatch = errors.New("no settings to update")
)

// Field описание поля настроек.
type Field struct {
	Name string  `json:"name"`
	Kind Kind    `json:"kind"`
	Min  float64 `json:"min,omitempty"`
	Max  float64 `json:"max,omitempty"`
}

const maxPosition = 999.9

// Fields закрытый реестр полей в порядке отображения.
var Fields = []Field{
	{Name: "seat_position_horizontal", Kind: KindNumber, Max: maxPosition},
	{Name: "seat_position_vertical", Kind: KindNumber, Max: maxPosition},
	{Name: "seat_recline_angle", Kind: KindNumber, Max: maxPosition},
	{Name: "steering_wheel_position", Kind: KindNumber, Max: maxPosition},
	{Name: "left_mirror_angle", Kind: KindNumber, Max: maxPosition},
	{Name: "right_mirror_angle", Kind: KindNumber, Max: maxPosition},
	{Name: "rearview_mirror_angle", Kind: KindNumber, Max: maxPosition},
	{Name: "cabin_temperature", Kind: KindNumber, Min: -50, Max: 50},
	{Name: "drive_mode", Kind: KindEnum},
	{Name: "suspension_height", Kind: KindNumber, Max: maxPosition},
	{Name: "engine_start_stop", Kind: KindBool},
	{Name: "cruise_control", Kind: KindBool},
}

// Lookup возвращает описание поля по имени.
func Lookup(name string) (Field, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ValidateField проверяет значение поля. Числа принимаются как float64, int
// или строка, режим движения как строка, флаги как bool или строка "true"/"false".
func ValidateField(name string, value any) error {
	_, err := parseValue(name, value)
	return err
}

func parseValue(name string, value any) (any, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if value == nil {
		return nil, ErrRequired
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return nil, ErrRequired
	}

	switch f.Kind {
	case KindNumber:
		n, err := toFloat(value)
		if err != nil {
			return nil, err
		}
		if f.Min < 0 {
			if n < f.Min || n > f.Max {
				return nil, ErrTemperature
			}
			return n, nil
		}
		if n < 0 {
			return nil, ErrNegative
		}
		if n > f.Max {
			return nil, ErrOutOfRange
		}
		return n, nil
	case KindEnum:
		s, ok := value.(string)
		if !ok {
			return nil, ErrDriveMode
		}
		mode := models.DriveMode(strings.ToUpper(strings.TrimSpace(s)))
		switch mode {
		case models.DriveComfort, models.DriveSport, models.DriveEco:
			return mode, nil
		}
		return nil, ErrDriveMode
	case KindBool:
		switch v := value.(type) {
		case bool:
			return v, nil
		case string:
			b, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("%s must be true or false", name)
			}
			return b, nil
		}
		return nil, fmt.Errorf("%s must be true or false", name)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownField, name)
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, errors.New("value must be a number")
		}
		return n, nil
	}
	return 0, errors.New("value must be a number")
}

// Patch строит частичные настройки с единственным полем name.
func Patch(name string, value any) (models.Settings, error) {
	var s models.Settings
	v, err := parseValue(name, value)
	if err != nil {
		return s, err
	}
	switch name {
	case "seat_position_horizontal":
		s.SeatPositionHorizontal = ptr(v.(float64))
	case "seat_position_vertical":
		s.SeatPositionVertical = ptr(v.(float64))
	case "seat_recline_angle":
		s.SeatReclineAngle = ptr(v.(float64))
	case "steering_wheel_position":
		s.SteeringWheelPosition = ptr(v.(float64))
	case "left_mirror_angle":
		s.LeftMirrorAngle = ptr(v.(float64))
	case "right_mirror_angle":
		s.RightMirrorAngle = ptr(v.(float64))
	case "rearview_mirror_angle":
		s.RearviewMirrorAngle = ptr(v.(float64))
	case "cabin_temperature":
		s.CabinTemperature = ptr(v.(float64))
	case "drive_mode":
		s.DriveMode = ptr(v.(models.DriveMode))
	case "suspension_height":
		s.SuspensionHeight = ptr(v.(float64))
	case "engine_start_stop":
		s.EngineStartStop = ptr(v.(bool))
	case "cruise_control":
		s.CruiseControl = ptr(v.(bool))
	}
	return s, nil
}

func ptr[T any](v T) *T {
	return &v
}

// IsEmpty true, когда все числовые поля и режим не заданы, а флаги выключены или не заданы.
func IsEmpty(s models.Settings) bool {
	numbers := []*float64{
		s.SeatPositionHorizontal, s.SeatPositionVertical, s.SeatReclineAngle,
		s.SteeringWheelPosition, s.LeftMirrorAngle, s.RightMirrorAngle,
		s.RearviewMirrorAngle, s.CabinTemperature, s.SuspensionHeight,
	}
	for _, n := range numbers {
		if n != nil {
			return false
		}
	}
	if s.DriveMode != nil {
		return false
	}
	for _, b := range []*bool{s.EngineStartStop, s.CruiseControl} {
		if b != nil && *b {
			return false
		}
	}
	return true
}

// View настройки вместе с режимом формы.
type View struct {
	Mode     string          `json:"mode"`
	Settings models.Settings `json:"settings"`
	Fields   []Field         `json:"fields"`
}

// Client описывает вызовы бэкенда, нужные сервису настроек.
type Client interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	CreateSettings(ctx context.Context, s models.Settings) (*models.Message, error)
	UpdateSettings(ctx context.Context, s models.Settings) (*models.Message, error)
}

// Service сценарии настроек.
type Service struct {
	client   Client
	log      *slog.Logger
	validate *validator.Validate
}

// NewService создает новый экземпляр Service.
func NewService(client Client, log *slog.Logger) *Service {
	return &Service{
		client:   client,
		log:      log,
		validate: validator.New(),
	}
}

// Get загружает настройки. Отсутствие настроек на бэкенде даёт режим create.
func (s *Service) Get(ctx context.Context) (*View, error) {
	const op = "services.settings.Get"

	current, err := s.client.GetSettings(ctx)
	if errors.Is(err, api.ErrNotFound) {
		return &View{Mode: ModeCreate, Fields: Fields}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	mode := ModeEdit
	if IsEmpty(*current) {
		mode = ModeCreate
	}
	return &View{Mode: mode, Settings: *current, Fields: Fields}, nil
}

// Create сохраняет первые настройки пользователя.
func (s *Service) Create(ctx context.Context, in models.Settings) (*models.Message, error) {
	const op = "services.settings.Create"

	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	msg, err := s.client.CreateSettings(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("settings created")
	return msg, nil
}

// Update отправляет только заданные поля.
func (s *Service) Update(ctx context.Context, patch models.Settings) (*models.Message, error) {
	const op = "services.settings.Update"

	if patch == (models.Settings{}) {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyPatch)
	}
	if err := s.validate.Struct(patch); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	msg, err := s.client.UpdateSettings(ctx, patch)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	s.log.Info("settings updated")
	return msg, nil
}

// UpdateField проверяет и сохраняет одно поле.
func (s *Service) UpdateField(ctx context.Context, name string, value any) (*models.Message, error) {
	const op = "services.settings.UpdateField"

	patch, err := Patch(name, value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.Update(ctx, patch)
}
