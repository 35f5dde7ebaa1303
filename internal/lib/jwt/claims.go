// Package jwt работает с bearer-токенами DataDrive на стороне клиента.
//
// Decode разбирает claims без проверки подписи: роль из токена используется
// только для отображения и маршрутизации консоли, авторизацию каждого
// защищённого запроса выполняет бэкенд.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry токен без claim exp считается недействительным.
var ErrNoExpiry = errors.New("token has no exp claim")

// Claims данные, которые бэкенд кладёт в токен.
type Claims struct {
	Email                string `json:"email"` // Почта пользователя
	Role                 string `json:"role"`  // Роль пользователя, "Admin" для администратора
	jwt.RegisteredClaims        // exp и прочие стандартные поля
}

// Decode извлекает claims из токена без проверки подписи и срока действия.
func Decode(tokenStr string) (*Claims, error) {
	const op = "jwt.Decode"
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNoExpiry)
	}
	return claims, nil
}

// IsAdmin true только для роли "Admin".
func (c *Claims) IsAdmin() bool {
	return c != nil && c.Role == "Admin"
}

// TimeLeft время до истечения токена относительно now. Может быть отрицательным.
func (c *Claims) TimeLeft(now time.Time) time.Duration {
	return c.ExpiresAt.Sub(now)
}
