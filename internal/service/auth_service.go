package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// SessionCookieName кука с токеном сессии консоли
	SessionCookieName = "console_token"
	sessionTTL        = 24 * time.Hour
)

// AuthService выдаёт и проверяет токены сессий консоли.
// Каждая сессия браузера получает собственное представление.
type AuthService struct {
	jwtSecret []byte
}

// NewAuthService создает новый экземпляр AuthService
func NewAuthService(jwtSecret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(jwtSecret),
	}
}

// GenerateSessionID генерирует уникальный идентификатор сессии
func (a *AuthService) GenerateSessionID() string {
	return uuid.New().String()
}

// GenerateJWT создает JWT токен для сессии
func (a *AuthService) GenerateJWT(sessionID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"exp":        now.Add(sessionTTL).Unix(),
		"iat":        now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateJWT проверяет JWT токен и извлекает идентификатор сессии
func (a *AuthService) ValidateJWT(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	sessionID, ok := claims["session_id"].(string)
	if !ok || sessionID == "" {
		return "", fmt.Errorf("session_id not found in token")
	}

	return sessionID, nil
}

// GetOrCreateSession извлекает сессию из куки или открывает новую.
// Недействительный токен заменяется новым.
func (a *AuthService) GetOrCreateSession(r *http.Request, w http.ResponseWriter) (string, error) {
	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		if sessionID, err := a.ValidateJWT(cookie.Value); err == nil {
			return sessionID, nil
		}
	}

	sessionID := a.GenerateSessionID()
	token, err := a.GenerateJWT(sessionID)
	if err != nil {
		return "", fmt.Errorf("failed to generate JWT: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(sessionTTL.Seconds()),
	})

	return sessionID, nil
}

// ExpireSession удаляет куку сессии у клиента
func (a *AuthService) ExpireSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
