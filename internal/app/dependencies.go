package app

import (
	"os"
	"time"

	"github.com/avc-dev/url-shortener-console/internal/client"
	"github.com/avc-dev/url-shortener-console/internal/config"
	"github.com/avc-dev/url-shortener-console/internal/handler"
	"github.com/avc-dev/url-shortener-console/internal/notify"
	"github.com/avc-dev/url-shortener-console/internal/service"
	"github.com/avc-dev/url-shortener-console/internal/usecase"
	"go.uber.org/zap"
)

type dependencies struct {
	handler  *handler.Handler
	auth     *service.AuthService
	sessions *service.SessionRegistry
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(cfg *config.Config, logger *zap.Logger) (*dependencies, error) {
	api := client.New(cfg.APIBaseURL.String(), nil, logger)
	clip := service.NewSystemClipboard()
	browser := service.NewSystemBrowser(os.Stderr)

	sessions := service.NewSessionRegistry(
		NewConsoleFactory(api, clip, browser, cfg.NotificationTTL, logger),
		logger,
	)
	auth := service.NewAuthService(cfg.JWTSecret)

	return &dependencies{
		handler:  handler.New(sessions, auth, logger),
		auth:     auth,
		sessions: sessions,
	}, nil
}

// NewConsoleFactory собирает представление консоли с собственным каналом уведомлений
func NewConsoleFactory(
	api usecase.APIClient,
	clip usecase.Clipboard,
	browser usecase.Browser,
	ttl time.Duration,
	logger *zap.Logger,
) service.ConsoleFactory {
	return func() *usecase.Console {
		return usecase.NewConsole(api, notify.NewChannel(ttl, logger), clip, browser, logger)
	}
}
