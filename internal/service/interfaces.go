package service

import "github.com/avc-dev/url-shortener-console/internal/usecase"

// ConsoleFactory создает новое представление для сессии
type ConsoleFactory func() *usecase.Console
