package handler

import (
	"net/http"

	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/usecase"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// SetForm заменяет поля формы, имя которой указано в пути
func (h *Handler) SetForm(w http.ResponseWriter, r *http.Request) {
	name, err := usecase.ParseFormName(chi.URLParam(r, "form"))
	if err != nil {
		h.logger.Debug("unknown form", zap.Error(err))
		w.WriteHeader(http.StatusNotFound)
		return
	}

	c, ok := h.console(w, r)
	if !ok {
		return
	}

	switch name {
	case usecase.FormCreate:
		var f model.CreateForm
		if !h.decode(w, r, &f) {
			return
		}
		c.SetCreateForm(f)
	case usecase.FormUpdate:
		var f model.UpdateForm
		if !h.decode(w, r, &f) {
			return
		}
		c.SetUpdateForm(f)
	default:
		var f model.ShortcodeForm
		if !h.decode(w, r, &f) {
			return
		}
		switch name {
		case usecase.FormResolve:
			c.SetResolveForm(f)
		case usecase.FormStats:
			c.SetStatsForm(f)
		case usecase.FormDelete:
			c.SetDeleteForm(f)
		}
	}

	h.writeView(w, c)
}
