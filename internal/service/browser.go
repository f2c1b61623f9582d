package service

import (
	"fmt"
	"io"

	"github.com/pkg/browser"
)

// SystemBrowser открывает URL в браузере по умолчанию
type SystemBrowser struct{}

// NewSystemBrowser создает адаптер браузера. Вывод запускаемой
// программы перенаправляется в out.
func NewSystemBrowser(out io.Writer) *SystemBrowser {
	browser.Stdout = out
	browser.Stderr = out
	return &SystemBrowser{}
}

// OpenURL открывает URL в новой вкладке
func (SystemBrowser) OpenURL(url string) error {
	if err := browser.OpenURL(url); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
