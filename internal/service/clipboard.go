package service

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// SystemClipboard пишет в системный буфер обмена
type SystemClipboard struct{}

// NewSystemClipboard создает адаптер системного буфера обмена
func NewSystemClipboard() *SystemClipboard {
	return &SystemClipboard{}
}

// WriteAll копирует текст в буфер обмена
func (SystemClipboard) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrClipboardUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to write clipboard: %w", err)
	}
	return nil
}
