package client

import (
	"errors"
	"fmt"
)

var (
	// ErrUnexpectedStatus сервис ответил кодом вне диапазона 2xx
	ErrUnexpectedStatus = errors.New("unexpected status code")
	// ErrInvalidResponse тело успешного ответа не удалось декодировать
	ErrInvalidResponse = errors.New("invalid response body")
)

// APIError ошибка, полученная от сервиса в виде не-2xx ответа.
// Message заполняется из JSON тела {"message": "..."}, если оно есть.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("api error: status %d", e.StatusCode)
}

func (e *APIError) Unwrap() error {
	return ErrUnexpectedStatus
}

// ServerMessage извлекает сообщение сервиса из ошибки, если оно есть
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}
