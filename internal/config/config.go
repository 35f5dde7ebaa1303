// Package config предоставялет структуры и функцию для парсинга и загрузки конфига
package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Допустимые значения TokenStore.Kind.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config общая структура для хранения настроек
type Config struct {
	Env             string        `yaml:"env" env:"DATADRIVE_ENV" env-default:"local"`
	BackendURL      string        `yaml:"backend_url" env:"DATADRIVE_BACKEND_URL" env-default:"http://localhost:8000"`
	RequestTimeout  time.Duration `yaml:"request_timeout" env:"DATADRIVE_REQUEST_TIMEOUT" env-default:"10s"`
	HTTPServer      `yaml:"http_server"`
	TokenStore      `yaml:"token_store"`
	RedisConnection `yaml:"redis_connection"`
	RateLimit       `yaml:"rate_limit"`
	JWT             `yaml:"jwt"`
}

// HTTPServer структура для настройки локального сервера консоли
type HTTPServer struct {
	AddressHTTP string        `yaml:"address" env:"DATADRIVE_HTTP_ADDRESS" env-default:"localhost:3000"`
	TimeoutHTTP time.Duration `yaml:"timeout" env-default:"15s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

// TokenStore описывает, где хранится bearer-токен сессии
type TokenStore struct {
	Kind string `yaml:"kind" env:"DATADRIVE_TOKEN_STORE" env-default:"file"`
	Path string `yaml:"path" env:"DATADRIVE_TOKEN_PATH" env-default:".datadrive/storage.json"`
	Key  string `yaml:"key" env-default:"authToken"`
}

// RedisConnection структура для настройки подключения к redis
type RedisConnection struct {
	AddressRedis string        `yaml:"address" env:"DATADRIVE_REDIS_ADDRESS" env-default:"localhost:6379"`
	Password     string        `yaml:"password" env:"DATADRIVE_REDIS_PASSWORD"`
	User         string        `yaml:"user"`
	DB           int           `yaml:"db"`
	MaxRetries   int           `yaml:"max_retries"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	TimeoutRedis time.Duration `yaml:"timeout"`
}

// RateLimit ограничение входящих запросов к консоли
type RateLimit struct {
	RPS   float64 `yaml:"rps" env-default:"5"`
	Burst int     `yaml:"burst" env-default:"10"`
}

// JWT настройки выпуска локальных токенов для разработки
type JWT struct {
	DevSecret string        `yaml:"dev_secret" env:"DATADRIVE_DEV_SECRET"`
	DevTTL    time.Duration `yaml:"dev_ttl" env-default:"1h"`
}

// Load читает конфиг из файла CONFIG_PATH (если задан) и переменных окружения.
func Load() (*Config, error) {
	const op = "config.Load"
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		return &cfg, cfg.validate()
	}
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%s: file: %s - does not exist", op, configPath)
	}
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("%s: cannot read config: %w", op, err)
	}
	return &cfg, cfg.validate()
}

// MustLoad функция для загрузки конфига, завершает процесс при ошибке
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func (c *Config) validate() error {
	switch c.Kind {
	case StoreFile, StoreRedis:
	default:
		return fmt.Errorf("config: unknown token store kind %q", c.Kind)
	}
	if c.BackendURL == "" {
		return fmt.Errorf("config: backend_url is empty")
	}
	return nil
}

func (c *Config) String() string {
	return fmt.Sprintf(
		"Env: %s\n"+
			"BackendURL: %s\n"+
			"RequestTimeout: %s\n"+
			"HTTPServer:\n"+
			"  Address: %s\n"+
			"  Timeout: %s\n"+
			"  IdleTimeout: %s\n"+
			"TokenStore:\n"+
			"  Kind: %s\n"+
			"  Path: %s\n"+
			"  Key: %s\n"+
			"RedisConnection:\n"+
			"  Addr: %s\n"+
			"  DB: %d\n"+
			"RateLimit:\n"+
			"  RPS: %.2f\n"+
			"  Burst: %d\n",
		c.Env,
		c.BackendURL,
		c.RequestTimeout,
		c.AddressHTTP,
		c.TimeoutHTTP,
		c.IdleTimeout,
		c.Kind,
		c.Path,
		c.Key,
		c.AddressRedis,
		c.DB,
		c.RPS,
		c.Burst,
	)
}
