package handler

import "net/http"

// Create сокращает URL из формы сокращения
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	c.SubmitCreate(invocationContext(r))
	h.writeView(w, c)
}

// Resolve ищет исходный URL по коду из формы поиска
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	c.SubmitResolve(invocationContext(r))
	h.writeView(w, c)
}

// Stats запрашивает счётчик переходов
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	c.SubmitStats(invocationContext(r))
	h.writeView(w, c)
}

// Update заменяет URL за кодом
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	c.SubmitUpdate(invocationContext(r))
	h.writeView(w, c)
}
