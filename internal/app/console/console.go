package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/datadrive/internal/api"
	"github.com/magabrotheeeer/datadrive/internal/config"
	"github.com/magabrotheeeer/datadrive/internal/http/middlewarectx"
	"github.com/magabrotheeeer/datadrive/internal/lib/sl"
	"github.com/magabrotheeeer/datadrive/internal/metrics"
	settingsservice "github.com/magabrotheeeer/datadrive/internal/services/settings"
	subservice "github.com/magabrotheeeer/datadrive/internal/services/subscription"
	tripservice "github.com/magabrotheeeer/datadrive/internal/services/trip"
	"github.com/magabrotheeeer/datadrive/internal/session"
)

const shutdownTimeout = 15 * time.Second

// App консоль DataDrive: сессия, клиент бэкенда и локальный HTTP-сервер.
type App struct {
	server  *http.Server
	logger  *slog.Logger
	session *session.Manager
	redis   *session.RedisStore
}

// New собирает приложение и восстанавливает сохранённую сессию.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "console.New"

	store, redisStore, err := newStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	sessionLog := logger.With(slog.String("component", "session"))
	manager := session.NewManager(store, cfg.TokenStore.Key, sessionLog,
		session.WithOnExpire(func() {
			metrics.ForcedLogouts.Inc()
			sessionLog.Info("session closed, protected routes now redirect to login")
		}),
	)
	if err := manager.Load(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	client := api.New(cfg.BackendURL, cfg.RequestTimeout, manager, logger)
	subscriptionService := subservice.NewService(client, logger)
	tripService := tripservice.NewService(client, subscriptionService, logger)
	settingsService := settingsservice.NewService(client, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, manager, client,
		subscriptionService, tripService, settingsService,
		middlewarectx.NewLimiter(cfg.RateLimit))

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server:  srv,
		logger:  logger,
		session: manager,
		redis:   redisStore,
	}, nil
}

// newStore выбирает хранилище токена по token_store.kind.
func newStore(ctx context.Context, cfg *config.Config) (session.Store, *session.RedisStore, error) {
	switch cfg.TokenStore.Kind {
	case config.StoreRedis:
		rs, err := session.NewRedisStore(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, nil, err
		}
		return rs, rs, nil
	default:
		return session.NewFileStore(cfg.TokenStore.Path), nil, nil
	}
}

// Handler корневой обработчик консоли.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run запускает HTTP-сервер и останавливает его при отмене ctx.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	a.session.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("failed to close redis", sl.Err(err))
		}
	}
}
