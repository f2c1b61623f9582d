package config

import "errors"

var (
	// ErrInvalidAddress адрес не в формате host:port или порт вне диапазона
	ErrInvalidAddress = errors.New("invalid network address format")
	// ErrInvalidURLPrefix базовый адрес API без схемы http или https
	ErrInvalidURLPrefix = errors.New("invalid URL prefix format")
	// ErrInvalidLogLevel неизвестный уровень логирования
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidIdleTimeout время простоя сессии не положительное
	ErrInvalidIdleTimeout = errors.New("session idle timeout must be positive")
)
