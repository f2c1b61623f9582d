package usecase

import (
	"context"

	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/validation"
	"go.uber.org/zap"
)

// SubmitStats получает число переходов по коду из формы статистики
func (c *Console) SubmitStats(ctx context.Context) {
	c.mu.Lock()
	form := c.statsForm
	if !validation.ShortcodeFormValid(form) {
		c.mu.Unlock()
		return
	}
	c.stats.start(true)
	c.mu.Unlock()

	count, err := c.api.Stats(ctx, model.Shortcode(form.Shortcode))

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.stats.settle()

	if err != nil {
		c.logger.Error("Error getting stats",
			zap.String("shortcode", form.Shortcode),
			zap.Error(err),
		)
		c.notifier.Error(MsgStatsFailed)
		return
	}

	c.stats.result = &count
	c.notifier.Success(MsgStatsLoaded)
}
