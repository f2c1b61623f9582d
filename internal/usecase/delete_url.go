package usecase

import (
	"context"

	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/validation"
	"go.uber.org/zap"
)

// SubmitDelete удаляет код из формы удаления после блокирующего подтверждения.
// Отказ или ошибка подтверждения не меняют состояние и не вызывают сервис.
func (c *Console) SubmitDelete(ctx context.Context, confirmer Confirmer) {
	c.mu.Lock()
	form := c.deleteForm
	c.mu.Unlock()

	if !validation.ShortcodeFormValid(form) {
		return
	}

	ok, err := confirmer.Confirm(ctx, DeleteConfirmText)
	if err != nil {
		c.logger.Warn("delete confirmation failed",
			zap.String("shortcode", form.Shortcode),
			zap.Error(err),
		)
		return
	}
	if !ok {
		return
	}

	c.runDelete(ctx, model.Shortcode(form.Shortcode))
}

// RequestDelete первый шаг двухшагового удаления: запоминает код из формы
// и возвращает вопрос для пользователя. Для невалидной формы ничего не делает.
func (c *Console) RequestDelete() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !validation.ShortcodeFormValid(c.deleteForm) {
		return "", false
	}

	code := model.Shortcode(c.deleteForm.Shortcode)
	c.pendingDelete = &code

	return DeleteConfirmText, true
}

// ConfirmDelete второй шаг: удаляет запомненный код.
// Без предварительного RequestDelete ничего не делает.
func (c *Console) ConfirmDelete(ctx context.Context) {
	c.mu.Lock()
	pending := c.pendingDelete
	c.pendingDelete = nil
	c.mu.Unlock()

	if pending == nil {
		return
	}

	c.runDelete(ctx, *pending)
}

// CancelDelete отменяет ожидающее подтверждение
func (c *Console) CancelDelete() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pendingDelete = nil
}

func (c *Console) runDelete(ctx context.Context, code model.Shortcode) {
	c.mu.Lock()
	c.deletion.start(false)
	c.mu.Unlock()

	err := c.api.Delete(ctx, code)

	c.mu.Lock()
	defer c.mu.Unlock()
	defer c.deletion.settle()

	if err != nil {
		c.logger.Error("Error deleting URL",
			zap.String("shortcode", code.String()),
			zap.Error(err),
		)
		c.notifier.Error(MsgDeleteFailed)
		return
	}

	c.notifier.Success(MsgDeleted)
	c.deleteForm = model.ShortcodeForm{}
}
