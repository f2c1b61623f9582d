package service

import "errors"

var (
	// ErrClipboardUnsupported в системе нет доступного буфера обмена
	// (например, не установлен xclip/xsel)
	ErrClipboardUnsupported = errors.New("clipboard is not supported on this system")
)
