package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/pflag"
	"go.uber.org/zap/zapcore"
)

// Config настройки консоли
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	APIBaseURL      URLPrefix      `env:"API_BASE_URL"`
	NotificationTTL time.Duration  `env:"NOTIFICATION_TTL"`
	SessionIdle     time.Duration  `env:"SESSION_IDLE_TIMEOUT"`
	JWTSecret       string         `env:"JWT_SECRET"`
	LogLevel        string         `env:"LOG_LEVEL"`
}

// NewDefaultConfig конфигурация по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 4200},
		APIBaseURL:      URLPrefix("http://localhost:8081/api/v1"),
		NotificationTTL: 5 * time.Second,
		SessionIdle:     time.Hour,
		JWTSecret:       "console-secret",
		LogLevel:        "info",
	}
}

// Load читает конфигурацию: значения по умолчанию, поверх них переменные окружения.
// Флаги командной строки применяются позже через BindFlags.
func Load() (*Config, error) {
	cfg := NewDefaultConfig()

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BindFlags регистрирует флаги поверх текущих значений конфигурации
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.VarP(&c.ServerAddress, "address", "a", "address to run console HTTP server")
	fs.VarP(&c.APIBaseURL, "base-url", "b", "base URL of the URL shortener API")
	fs.DurationVar(&c.NotificationTTL, "notification-ttl", c.NotificationTTL, "how long a notification stays visible")
	fs.DurationVar(&c.SessionIdle, "session-idle-timeout", c.SessionIdle, "discard console views idle for longer than this")
	fs.StringVarP(&c.JWTSecret, "secret", "k", c.JWTSecret, "secret for console session tokens")
	fs.StringVarP(&c.LogLevel, "log-level", "l", c.LogLevel, "log level (debug, info, warn, error)")
}

// Validate проверяет значения, которые не проверяются при разборе
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.SessionIdle <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidIdleTimeout, c.SessionIdle)
	}
	return nil
}

// Level уровень логирования
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return lvl, nil
}
