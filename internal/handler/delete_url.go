package handler

import "net/http"

// RequestDelete запоминает код к удалению и ждёт подтверждения
func (h *Handler) RequestDelete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	c.RequestDelete()
	h.writeView(w, c)
}

// ConfirmDelete удаляет код после подтверждения
func (h *Handler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	c.ConfirmDelete(invocationContext(r))
	h.writeView(w, c)
}

// CancelDelete отменяет ожидающее удаление
func (h *Handler) CancelDelete(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	c.CancelDelete()
	h.writeView(w, c)
}
