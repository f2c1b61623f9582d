package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avc-dev/url-shortener-console/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAuthMiddleware_Session(t *testing.T) {
	auth := service.NewAuthService("test-secret")
	am := NewAuthMiddleware(auth, zap.NewNop())

	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetSessionIDFromContext(r.Context())
		require.True(t, ok)
		seen = id
	})

	t.Run("new session issues cookie", func(t *testing.T) {
		// Arrange
		req := httptest.NewRequest(http.MethodGet, "/api/console", nil)
		w := httptest.NewRecorder()

		// Act
		am.Session(next).ServeHTTP(w, req)

		// Assert
		resp := w.Result()
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, seen)
		cookies := resp.Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, service.SessionCookieName, cookies[0].Name)
	})

	t.Run("existing cookie keeps session", func(t *testing.T) {
		// Arrange
		token, err := auth.GenerateJWT("session-1")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/console", nil)
		req.AddCookie(&http.Cookie{Name: service.SessionCookieName, Value: token})
		w := httptest.NewRecorder()

		// Act
		am.Session(next).ServeHTTP(w, req)

		// Assert
		assert.Equal(t, "session-1", seen)
	})
}

func TestGetSessionIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, ok := GetSessionIDFromContext(req.Context())

	assert.False(t, ok)
}
