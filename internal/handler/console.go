package handler

import (
	"net/http"

	"github.com/avc-dev/url-shortener-console/internal/middleware"
	"go.uber.org/zap"
)

// GetView возвращает текущее состояние консоли сессии
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	c, ok := h.console(w, r)
	if !ok {
		return
	}

	h.writeView(w, c)
}

// DropView уничтожает представление сессии и сбрасывает куку
func (h *Handler) DropView(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if !h.sessions.Drop(sessionID) {
		h.logger.Debug("no console view for session", zap.String("session_id", sessionID))
	}
	h.auth.ExpireSession(w)

	w.WriteHeader(http.StatusNoContent)
}
