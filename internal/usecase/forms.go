package usecase

import (
	"fmt"

	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/validation"
)

// FormName имя формы консоли
type FormName string

const (
	FormCreate  FormName = "create"
	FormResolve FormName = "resolve"
	FormStats   FormName = "stats"
	FormUpdate  FormName = "update"
	FormDelete  FormName = "delete"
)

// ParseFormName проверяет имя формы
func ParseFormName(name string) (FormName, error) {
	switch f := FormName(name); f {
	case FormCreate, FormResolve, FormStats, FormUpdate, FormDelete:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownForm, name)
	}
}

// SetCreateForm заменяет значения полей формы сокращения
func (c *Console) SetCreateForm(f model.CreateForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.createForm = f
}

// SetResolveForm заменяет значения полей формы поиска URL
func (c *Console) SetResolveForm(f model.ShortcodeForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resolveForm = f
}

// SetStatsForm заменяет значения полей формы статистики
func (c *Console) SetStatsForm(f model.ShortcodeForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.statsForm = f
}

// SetUpdateForm заменяет значения полей формы замены URL
func (c *Console) SetUpdateForm(f model.UpdateForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.updateForm = f
}

// SetDeleteForm заменяет значения полей формы удаления
func (c *Console) SetDeleteForm(f model.ShortcodeForm) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.deleteForm = f
}

// View возвращает снимок состояния консоли
func (c *Console) View() model.View {
	c.mu.Lock()
	defer c.mu.Unlock()

	view := model.View{
		Create: model.OperationView[model.CreateForm, model.ShortenResponse]{
			Form:     c.createForm,
			Valid:    validation.CreateFormValid(c.createForm),
			InFlight: c.create.inFlight,
			Result:   clonePtr(c.create.result),
		},
		Resolve: model.OperationView[model.ShortcodeForm, string]{
			Form:     c.resolveForm,
			Valid:    validation.ShortcodeFormValid(c.resolveForm),
			InFlight: c.resolve.inFlight,
			Result:   clonePtr(c.resolve.result),
		},
		Stats: model.OperationView[model.ShortcodeForm, int64]{
			Form:     c.statsForm,
			Valid:    validation.ShortcodeFormValid(c.statsForm),
			InFlight: c.stats.inFlight,
			Result:   clonePtr(c.stats.result),
		},
		Update: model.ActionView[model.UpdateForm]{
			Form:     c.updateForm,
			Valid:    validation.UpdateFormValid(c.updateForm),
			InFlight: c.update.inFlight,
		},
		Delete: model.DeleteView{
			Form:     c.deleteForm,
			Valid:    validation.ShortcodeFormValid(c.deleteForm),
			InFlight: c.deletion.inFlight,
			Pending:  clonePtr(c.pendingDelete),
		},
		Notification: c.notifier.Current(),
	}

	return view
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
