package middleware

import (
	"context"
	"net/http"

	"github.com/avc-dev/url-shortener-console/internal/service"
	"go.uber.org/zap"
)

// SessionIDKey is the key used to store session ID in context
type SessionIDKey string

const (
	// SessionIDContextKey is the context key for session ID
	SessionIDContextKey SessionIDKey = "session_id"
)

// AuthMiddleware привязывает запрос к сессии консоли
type AuthMiddleware struct {
	authService *service.AuthService
	logger      *zap.Logger
}

// NewAuthMiddleware создает новый экземпляр AuthMiddleware
func NewAuthMiddleware(authService *service.AuthService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// Session возвращает миддлвар, который находит или создает сессию
// и добавляет session_id в контекст запроса
func (am *AuthMiddleware) Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := am.authService.GetOrCreateSession(r, w)
		if err != nil {
			am.logger.Error("failed to resolve session", zap.Error(err))
			http.Error(w, "Session failed", http.StatusInternalServerError)
			return
		}

		ctx := context.WithValue(r.Context(), SessionIDContextKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetSessionIDFromContext извлекает session_id из контекста запроса
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDContextKey).(string)
	return sessionID, ok
}
