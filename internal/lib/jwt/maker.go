package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Maker выпускает HS256 токены в формате бэкенда DataDrive.
// Используется для локальной разработки консоли и в тестах.
type Maker struct {
	secretKey string        // Секретный ключ для подписи токенов.
	tokenTTL  time.Duration // Время жизни токена.
}

// NewMaker создаёт Maker на основе секретного ключа и TTL.
func NewMaker(secretKey string, ttl time.Duration) *Maker {
	return &Maker{
		secretKey: secretKey,
		tokenTTL:  ttl,
	}
}

// GenerateToken создает токен с email и role, exp = now + TTL.
func (m *Maker) GenerateToken(email, role string) (string, error) {
	return m.GenerateTokenAt(email, role, time.Now())
}

// GenerateTokenAt то же, что GenerateToken, но с явным моментом выпуска.
func (m *Maker) GenerateTokenAt(email, role string, issuedAt time.Time) (string, error) {
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(m.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.secretKey))
}
