// Package main выпускает токен для локальной разработки консоли и, по флагу
// -store, сохраняет его в хранилище сессии так же, как это делает вход.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/magabrotheeeer/datadrive/internal/config"
	"github.com/magabrotheeeer/datadrive/internal/lib/jwt"
	"github.com/magabrotheeeer/datadrive/internal/lib/sl"
	"github.com/magabrotheeeer/datadrive/internal/session"
)

func main() {
	email := flag.String("email", "dev@datadrive.io", "email claim")
	role := flag.String("role", "User", "role claim (Admin or User)")
	store := flag.Bool("store", false, "save the token into the configured session store")
	flag.Parse()

	cfg := config.MustLoad()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if cfg.DevSecret == "" {
		logger.Error("jwt.dev_secret is empty")
		os.Exit(1)
	}

	token, err := jwt.NewMaker(cfg.DevSecret, cfg.DevTTL).GenerateToken(*email, *role)
	if err != nil {
		logger.Error("failed to generate token", sl.Err(err))
		os.Exit(1)
	}

	if *store {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := save(ctx, cfg, logger, token); err != nil {
			logger.Error("failed to store token", sl.Err(err))
			os.Exit(1)
		}
		logger.Info("token stored", slog.String("kind", cfg.TokenStore.Kind))
	}

	fmt.Println(token)
}

func save(ctx context.Context, cfg *config.Config, logger *slog.Logger, token string) error {
	var st session.Store
	switch cfg.TokenStore.Kind {
	case config.StoreRedis:
		rs, err := session.NewRedisStore(ctx, cfg.RedisConnection)
		if err != nil {
			return err
		}
		defer rs.Close()
		st = rs
	default:
		st = session.NewFileStore(cfg.TokenStore.Path)
	}

	m := session.NewManager(st, cfg.TokenStore.Key, logger)
	defer m.Close()
	return m.SetAuthToken(ctx, token)
}
