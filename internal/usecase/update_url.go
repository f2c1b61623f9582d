package usecase

import (
	"context"

	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/validation"
	"go.uber.org/zap"
)

// SubmitUpdate заменяет URL за кодом. При успехе форма очищается целиком,
// при ошибке остаётся заполненной для повтора.
func (c *Console) SubmitUpdate(ctx context.Context) {
	c.mu.Lock()
	form := c.updateForm
	if !validation.UpdateFormValid(form) {
		c.mu.Unlock()
		return
	}
	c.update.start(false)
	c.mu.Unlock()

	err := c.api.Update(ctx, model.Shortcode(form.Shortcode), form.NewURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.update.settle()

	if err != nil {
		c.logger.Error("Error updating URL",
			zap.String("shortcode", form.Shortcode),
			zap.String("new_url", form.NewURL),
			zap.Error(err),
		)
		c.notifier.Error(MsgUpdateFailed)
		return
	}

	c.notifier.Success(MsgUpdated)
	c.updateForm = model.UpdateForm{}
}
