package usecase

import (
	"context"

	"github.com/avc-dev/url-shortener-console/internal/client"
	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/validation"
	"go.uber.org/zap"
)

// SubmitCreate отправляет форму сокращения и блокируется до завершения вызова.
// Невалидная форма молча игнорируется.
func (c *Console) SubmitCreate(ctx context.Context) {
	c.mu.Lock()
	form := c.createForm
	if !validation.CreateFormValid(form) {
		c.mu.Unlock()
		return
	}
	c.create.start(true)
	c.mu.Unlock()

	resp, err := c.api.Create(ctx, model.ShortenRequest{URL: form.URL})

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.create.settle()

	if err != nil {
		c.logger.Error("Error shortening URL",
			zap.String("url", form.URL),
			zap.Error(err),
		)
		msg, ok := client.ServerMessage(err)
		if !ok {
			msg = MsgCreateFailed
		}
		c.notifier.Error(msg)
		return
	}

	c.create.result = &resp
	c.notifier.Success(MsgCreated)
}
