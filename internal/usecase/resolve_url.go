package usecase

import (
	"context"

	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/validation"
	"go.uber.org/zap"
)

// SubmitResolve получает оригинальный URL по коду из формы поиска.
// Детали ошибки сервиса пользователю не показываются.
func (c *Console) SubmitResolve(ctx context.Context) {
	c.mu.Lock()
	form := c.resolveForm
	if !validation.ShortcodeFormValid(form) {
		c.mu.Unlock()
		return
	}
	c.resolve.start(true)
	c.mu.Unlock()

	url, err := c.api.Resolve(ctx, model.Shortcode(form.Shortcode))

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.resolve.settle()

	if err != nil {
		c.logger.Error("Error getting URL",
			zap.String("shortcode", form.Shortcode),
			zap.Error(err),
		)
		c.notifier.Error(MsgResolveFailed)
		return
	}

	c.resolve.result = &url
	c.notifier.Success(MsgResolved)
}
