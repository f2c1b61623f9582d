package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc-dev/url-shortener-console/internal/middleware"
	"github.com/avc-dev/url-shortener-console/internal/usecase"
	"go.uber.org/zap"
)

// SessionStore хранит представления консоли по сессиям
type SessionStore interface {
	Get(sessionID string) *usecase.Console
	Drop(sessionID string) bool
}

// SessionExpirer сбрасывает сессионную куку
type SessionExpirer interface {
	ExpireSession(w http.ResponseWriter)
}

// Handler HTTP-поверхность консоли
type Handler struct {
	sessions SessionStore
	auth     SessionExpirer
	logger   *zap.Logger
}

// New создает новый экземпляр Handler
func New(sessions SessionStore, auth SessionExpirer, logger *zap.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		auth:     auth,
		logger:   logger,
	}
}

// console находит представление сессии текущего запроса
func (h *Handler) console(w http.ResponseWriter, r *http.Request) (*usecase.Console, bool) {
	sessionID, ok := middleware.GetSessionIDFromContext(r.Context())
	if !ok {
		h.logger.Debug("session ID not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return h.sessions.Get(sessionID), true
}

// invocationContext отвязывает вызов сервиса от соединения клиента:
// начатый вызов всегда доходит до завершения.
func invocationContext(r *http.Request) context.Context {
	return context.WithoutCancel(r.Context())
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.logger.Warn("failed to decode JSON request",
			zap.Error(err),
			zap.String("remote_addr", r.RemoteAddr),
		)
		w.WriteHeader(http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeView(w http.ResponseWriter, c *usecase.Console) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(c.View()); err != nil {
		h.logger.Error("failed to encode console view", zap.Error(err))
	}
}
