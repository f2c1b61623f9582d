package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avc-dev/url-shortener-console/internal/config"
	"github.com/avc-dev/url-shortener-console/internal/handler"
	"github.com/avc-dev/url-shortener-console/internal/service"
	"go.uber.org/zap"
)

// App представляет HTTP-консоль сервиса коротких ссылок
type App struct {
	config   *config.Config
	logger   *zap.Logger
	handler  *handler.Handler
	auth     *service.AuthService
	sessions *service.SessionRegistry
}

// New создает новый экземпляр приложения
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	deps, err := initDependencies(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	return &App{
		config:   cfg,
		logger:   logger,
		handler:  deps.handler,
		auth:     deps.auth,
		sessions: deps.sessions,
	}, nil
}

// Run запускает сервер и блокируется до отмены ctx
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	janitorCtx, stop := context.WithCancel(ctx)
	defer stop()
	go a.sessions.RunJanitor(janitorCtx, a.config.SessionIdle, janitorInterval(a.config.SessionIdle))

	return a.start(ctx)
}

// janitorInterval проверяем простой несколько раз за период, но не чаще раза в секунду
func janitorInterval(idle time.Duration) time.Duration {
	return max(idle/4, time.Second)
}

// Close уничтожает все представления сессий
func (a *App) Close() {
	if a.sessions != nil {
		a.sessions.Close()
	}
}
