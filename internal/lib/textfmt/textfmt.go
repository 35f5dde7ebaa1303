// Package textfmt форматирует значения для отображения в представлениях консоли.
package textfmt

import (
	"fmt"
	"strconv"
	"time"
	"unicode"
	"unicode/utf8"
)

// DateTimeLayout формат даты и времени в представлениях (dd/mm/yyyy, hh:mm).
const DateTimeLayout = "02/01/2006, 15:04"

// Capitalize делает заглавной первую букву сообщения.
func Capitalize(text string) string {
	if text == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text)
	return string(unicode.ToUpper(r)) + text[size:]
}

// DateTime возвращает "Ongoing" для незавершённого момента.
func DateTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "Ongoing"
	}
	return t.Format(DateTimeLayout)
}

// Placeholder подставляет "Not yet calculated" вместо отсутствующего числа.
func Placeholder(value *float64, unit string) string {
	if value == nil {
		return "Not yet calculated"
	}
	s := strconv.FormatFloat(*value, 'f', -1, 64)
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// Plate форматирует номер ABC1234 как ABC-1234.
func Plate(plate string) string {
	if len(plate) <= 3 {
		return plate
	}
	return plate[:3] + "-" + plate[3:]
}

// Money форматирует сумму с двумя знаками после запятой.
func Money(amount float64) string {
	return fmt.Sprintf("%.2f", amount)
}
