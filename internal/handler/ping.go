package handler

import "net/http"

// Ping проверка доступности консоли
func (h *Handler) Ping(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
