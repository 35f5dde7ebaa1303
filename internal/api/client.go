// Package api типизированный клиент REST-бэкенда DataDrive.
//
// Каждая функция ресурса соответствует одному REST-вызову и одному типу ответа.
// Для защищённых эндпоинтов заголовок Authorization строится из сессии;
// без токена запрос не отправляется (ErrNoToken). Повторов и backoff нет:
// ошибку обрабатывает вызывающая сторона.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/magabrotheeeer/datadrive/internal/lib/sl"
	"github.com/magabrotheeeer/datadrive/internal/metrics"
)

// CorrelationHeader заголовок сквозного идентификатора запроса.
const CorrelationHeader = "X-Correlation-ID"

var (
	// ErrNoToken защищённый вызов без активной сессии.
	ErrNoToken = errors.New("not authenticated")
	// ErrNotFound бэкенд ответил 404.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized бэкенд отклонил токен (401).
	ErrUnauthorized = errors.New("unauthorized")
)

// Error ошибка бэкенда. Message берётся из тела {"error": "..."}, если оно есть.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Is сопоставляет код ответа с ErrNotFound и ErrUnauthorized.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.StatusCode == http.StatusNotFound
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	}
	return false
}

type correlationKey struct{}

// WithCorrelationID сохраняет идентификатор запроса консоли в контексте;
// исходящие запросы к бэкенду переиспользуют его.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationKey{}, id)
}

// CorrelationID возвращает идентификатор из контекста.
func CorrelationID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(correlationKey{}).(string)
	return id, ok && id != ""
}

// TokenSource источник bearer-токена, обычно *session.Manager.
type TokenSource interface {
	Token() (string, bool)
}

// Client HTTP-клиент бэкенда.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	log        *slog.Logger
}

// New создаёт клиент с базовым адресом бэкенда и таймаутом запроса.
func New(baseURL string, timeout time.Duration, tokens TokenSource, log *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		tokens:     tokens,
		log:        log,
	}
}

// BaseURL адрес бэкенда.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call описание одного REST-вызова.
type call struct {
	resource string // метка метрики
	action   string // "fetch cars" и т.п., для сообщения по умолчанию
	method   string
	path     string
	query    url.Values
	body     any
	auth     bool
	out      any
}

// authHeaders строит заголовок Authorization или возвращает ErrNoToken.
func (c *Client) authHeaders() (http.Header, error) {
	token, ok := c.tokens.Token()
	if !ok {
		return nil, ErrNoToken
	}
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h, nil
}

func (c *Client) do(ctx context.Context, cl call) error {
	op := "api." + strings.ReplaceAll(cl.action, " ", "_")

	headers := http.Header{}
	if cl.auth {
		h, err := c.authHeaders()
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		headers = h
	}

	var buf bytes.Buffer
	if cl.body != nil {
		if err := json.NewEncoder(&buf).Encode(cl.body); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	u := c.baseURL + cl.path
	if len(cl.query) > 0 {
		u += "?" + cl.query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, cl.method, u, &buf)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header = headers
	req.Header.Set("Content-Type", "application/json")
	correlationID, ok := CorrelationID(ctx)
	if !ok {
		correlationID = uuid.NewString()
	}
	req.Header.Set(CorrelationHeader, correlationID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.APILatency.WithLabelValues(cl.resource).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.APIRequests.WithLabelValues(cl.resource, "error").Inc()
		c.log.Error("backend request failed",
			slog.String("op", op),
			slog.String("correlation_id", correlationID),
			sl.Err(err),
		)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()
	metrics.APIRequests.WithLabelValues(cl.resource, strconv.Itoa(resp.StatusCode)).Inc()

	c.log.Debug("backend response",
		slog.String("op", op),
		slog.String("method", cl.method),
		slog.String("path", cl.path),
		slog.Int("status", resp.StatusCode),
		slog.String("correlation_id", correlationID),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s: %w", op, decodeError(resp, cl.action))
	}
	if cl.out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}

// decodeError извлекает сообщение бэкенда: JSON {"error"}, затем простой текст,
// затем "Failed to <action>".
func decodeError(resp *http.Response, action string) *Error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	apiErr := &Error{StatusCode: resp.StatusCode}

	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != "" {
		apiErr.Message = payload.Error
		return apiErr
	}
	text := strings.TrimSpace(string(raw))
	if text != "" && !strings.HasPrefix(text, "{") && !strings.HasPrefix(text, "<") {
		apiErr.Message = text
		return apiErr
	}
	if action != "" {
		apiErr.Message = "Failed to " + action
	} else {
		apiErr.Message = "Unknown error"
	}
	return apiErr
}

// Message возвращает текст для показа пользователю.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, ErrNoToken) {
		return ErrNoToken.Error()
	}
	return "Unknown error"
}

func pageQuery(page, pageSize int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("page_size", strconv.Itoa(pageSize))
	}
	return q
}
