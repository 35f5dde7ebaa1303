package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/datadrive/internal/lib/jwt"
	"github.com/magabrotheeeer/datadrive/internal/lib/sl"
)

// DefaultKey ключ, под которым хранится токен.
const DefaultKey = "authToken"

var (
	// ErrInvalidToken токен не удалось разобрать; сессия закрыта.
	ErrInvalidToken = errors.New("invalid session token")
	// ErrTokenExpired срок токена уже истёк; сессия закрыта.
	ErrTokenExpired = errors.New("session token expired")
)

// Timer остановка запланированного вызова. *time.Timer удовлетворяет интерфейсу.
type Timer interface {
	Stop() bool
}

// State снимок состояния сессии для представлений.
type State struct {
	Authenticated bool      `json:"is_authenticated"`
	Admin         bool      `json:"is_admin"`
	Email         string    `json:"email,omitempty"`
	ExpiresAt     time.Time `json:"expires_at,omitempty"`
}

// Manager единственная точка чтения и записи сессии. Гарды маршрутов и API-клиент
// обращаются только к нему, а не к хранилищу напрямую.
type Manager struct {
	// writeMu упорядочивает запись сессии вместе с операциями хранилища.
	writeMu sync.Mutex
	mu      sync.RWMutex
	store   Store
	key     string
	log     *slog.Logger
	token   string
	claims  *jwt.Claims
	timer   Timer
	gen     uint64 // поколение сессии; срабатывание таймера прошлой сессии игнорируется

	now       func() time.Time
	afterFunc func(time.Duration, func()) Timer
	onExpire  func()
}

// Option настраивает Manager.
type Option func(*Manager)

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithAfterFunc подменяет планировщик таймера.
func WithAfterFunc(f func(time.Duration, func()) Timer) Option {
	return func(m *Manager) { m.afterFunc = f }
}

// WithOnExpire задаёт обработчик принудительного выхода.
func WithOnExpire(f func()) Option {
	return func(m *Manager) { m.onExpire = f }
}

// NewManager создаёт Manager поверх хранилища. Пустой key заменяется на DefaultKey.
func NewManager(store Store, key string, log *slog.Logger, opts ...Option) *Manager {
	if key == "" {
		key = DefaultKey
	}
	m := &Manager{
		store: store,
		key:   key,
		log:   log,
		now:   time.Now,
		afterFunc: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		onExpire: func() {},
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Load восстанавливает сессию из хранилища при старте.
// Отсутствие токена не ошибка; битый или просроченный токен закрывает сессию.
func (m *Manager) Load(ctx context.Context) error {
	const op = "session.Load"
	token, err := m.store.Get(ctx, m.key)
	if errors.Is(err, ErrNotFound) {
		m.log.Info("no persisted session")
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := m.SetAuthToken(ctx, token); err != nil {
		m.log.Warn("persisted session discarded", sl.Err(err))
	}
	return nil
}

// SetAuthToken единственный путь записи сессии. Непустой токен сохраняется
// и определяет роль; пустой токен завершает сессию.
func (m *Manager) SetAuthToken(ctx context.Context, token string) error {
	m.writeMu.Lock()
	forced, err := m.setAuthToken(ctx, token)
	m.writeMu.Unlock()
	if forced {
		m.onExpire()
	}
	return err
}

// setAuthToken вызывается под m.writeMu. forced сообщает о принудительном выходе.
func (m *Manager) setAuthToken(ctx context.Context, token string) (forced bool, err error) {
	const op = "session.SetAuthToken"
	if token == "" {
		m.mu.Lock()
		m.clearLocked()
		m.mu.Unlock()
		if err := m.store.Delete(ctx, m.key); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		m.log.Info("session cleared")
		return false, nil
	}

	claims, err := jwt.Decode(token)
	if err != nil {
		m.forceLogout(ctx, "malformed token", err)
		return true, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}
	left := claims.TimeLeft(m.now())
	if left <= 0 {
		m.forceLogout(ctx, "token already expired", nil)
		return true, fmt.Errorf("%s: %w", op, ErrTokenExpired)
	}

	if err := m.store.Set(ctx, m.key, token); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	m.mu.Lock()
	m.clearLocked()
	m.token = token
	m.claims = claims
	gen := m.gen
	m.timer = m.afterFunc(left, func() { m.expire(gen) })
	m.mu.Unlock()

	m.log.Info("session started",
		slog.String("email", claims.Email),
		slog.Bool("admin", claims.IsAdmin()),
		slog.Duration("expires_in", left),
	)
	return false, nil
}

// Logout завершает сессию.
func (m *Manager) Logout(ctx context.Context) error {
	return m.SetAuthToken(ctx, "")
}

// Token возвращает текущий токен.
func (m *Manager) Token() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token, m.token != ""
}

// IsAuthenticated true, пока в сессии есть действующий токен.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != ""
}

// IsAdmin true для токена с ролью "Admin".
func (m *Manager) IsAdmin() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token != "" && m.claims.IsAdmin()
}

// State возвращает снимок сессии.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token == "" {
		return State{}
	}
	return State{
		Authenticated: true,
		Admin:         m.claims.IsAdmin(),
		Email:         m.claims.Email,
		ExpiresAt:     m.claims.ExpiresAt.Time,
	}
}

// Close останавливает таймер истечения, не трогая хранилище.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
}

// expire срабатывает по таймеру. Поколение меняется только под m.writeMu,
// поэтому проверка и выход не пересекаются с записью новой сессии.
func (m *Manager) expire(gen uint64) {
	m.writeMu.Lock()
	m.mu.RLock()
	stale := gen != m.gen || m.token == ""
	m.mu.RUnlock()
	if stale {
		m.writeMu.Unlock()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	m.forceLogout(ctx, "token expired", nil)
	cancel()
	m.writeMu.Unlock()

	m.onExpire()
}

// forceLogout вызывается под m.writeMu; onExpire вызывает сторона, снявшая блокировку.
func (m *Manager) forceLogout(ctx context.Context, reason string, cause error) {
	m.mu.Lock()
	m.clearLocked()
	m.mu.Unlock()

	if err := m.store.Delete(ctx, m.key); err != nil {
		m.log.Error("failed to clear persisted token", sl.Err(err))
	}
	if cause != nil {
		m.log.Warn("forced logout", slog.String("reason", reason), sl.Err(cause))
	} else {
		m.log.Warn("forced logout", slog.String("reason", reason))
	}
}

// clearLocked сбрасывает состояние и увеличивает поколение. Вызывать под m.mu.
func (m *Manager) clearLocked() {
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.token = ""
	m.claims = nil
	m.gen++
}
