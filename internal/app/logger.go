package app

import (
	"github.com/avc-dev/url-shortener-console/internal/config"
	"go.uber.org/zap"
)

// NewLogger создает логгер с уровнем из конфигурации.
// Уровень debug включает режим разработки с читаемым выводом.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	lvl, err := cfg.Level()
	if err != nil {
		return nil, err
	}

	zcfg := zap.NewProductionConfig()
	if lvl == zap.DebugLevel {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	return zcfg.Build()
}
