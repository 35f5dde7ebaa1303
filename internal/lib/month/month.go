// Package month считает календарные месяцы подписки.
package month

import (
	"time"
)

// Remaining возвращает, сколько месяцев подписки длиной months, начатой в start,
// ещё не истекли в момент at. До начала подписки это все months, после
// окончания 0. Начатый, но не завершённый месяц считается оставшимся.
func Remaining(start time.Time, months int, at time.Time) int {
	end := start.AddDate(0, months, 0)

	if !at.Before(end) {
		return 0
	}
	if !at.After(start) {
		return months
	}

	passed := (at.Year()-start.Year())*12 + int(at.Month()) - int(start.Month())
	if at.Day() > start.Day() {
		passed++
	}

	left := months - passed
	if left < 0 {
		return 0
	}
	return left
}
