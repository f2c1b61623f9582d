package main

import (
	"io"
	"net/http"
	"os"

	"github.com/avc-dev/url-shortener-console/internal/app"
	"github.com/avc-dev/url-shortener-console/internal/config"
	"github.com/avc-dev/url-shortener-console/internal/service"
	"github.com/avc-dev/url-shortener-console/internal/usecase"
	"go.uber.org/zap"
)

// deps внешние зависимости команд; в тестах подменяются
type deps struct {
	stdin      io.ReadCloser
	stdout     io.Writer
	httpClient *http.Client
	clipboard  usecase.Clipboard
	browser    usecase.Browser
	newLogger  func(cfg *config.Config) (*zap.Logger, error)
}

func defaultDeps() deps {
	return deps{
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		httpClient: http.DefaultClient,
		clipboard:  service.NewSystemClipboard(),
		browser:    service.NewSystemBrowser(os.Stderr),
		newLogger:  app.NewLogger,
	}
}

// nopWriteCloser нужен promptui, который закрывает свой вывод
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
