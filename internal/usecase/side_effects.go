package usecase

import (
	"go.uber.org/zap"
)

// CopyToClipboard копирует текст в системный буфер обмена.
// Пустой текст только пишет предупреждение в лог, без уведомления.
func (c *Console) CopyToClipboard(text string) {
	if text == "" {
		c.logger.Warn(MsgNothingToCopy)
		return
	}

	if err := c.clipboard.WriteAll(text); err != nil {
		c.logger.Error("failed to write clipboard", zap.Error(err))
		return
	}

	c.notifier.Success(MsgCopied)
}

// OpenURL открывает URL в браузере. Пустой URL только пишет предупреждение в лог.
func (c *Console) OpenURL(url string) {
	if url == "" {
		c.logger.Warn(MsgNothingToOpen)
		return
	}

	if err := c.browser.OpenURL(url); err != nil {
		c.logger.Error("failed to open URL",
			zap.String("url", url),
			zap.Error(err),
		)
	}
}
