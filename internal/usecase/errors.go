package usecase

import "errors"

var (
	// ErrUnknownForm запрошена форма, которой нет у консоли
	ErrUnknownForm = errors.New("unknown form")
)
