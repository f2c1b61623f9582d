package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/avc-dev/url-shortener-console/internal/config"
	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/avc-dev/url-shortener-console/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newRemoteAPI поднимает фейковый сервис коротких ссылок
func newRemoteAPI(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Post("/write/shorten", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"shortcode":"ab12cd"}`))
	})
	r.Get("/read/shorten/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("https://example.com/" + chi.URLParam(r, "code")))
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv
}

func newTestApp(t *testing.T) (*App, *httptest.Server) {
	t.Helper()

	remote := newRemoteAPI(t)

	cfg := config.NewDefaultConfig()
	cfg.APIBaseURL = config.URLPrefix(remote.URL)

	a, err := New(cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(a.Close)

	srv := httptest.NewServer(newRouter(a.handler, a.auth, zap.NewNop()))
	t.Cleanup(srv.Close)

	return a, srv
}

func newBrowserClient(t *testing.T) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{Jar: jar}
}

func call(t *testing.T, c *http.Client, method, url, body string) model.View {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view model.View
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))

	return view
}

func TestApp_CreateFlow(t *testing.T) {
	// Arrange
	a, srv := newTestApp(t)
	browser := newBrowserClient(t)

	// Act
	call(t, browser, http.MethodPut, srv.URL+"/api/console/forms/create", `{"url":"https://example.com"}`)
	view := call(t, browser, http.MethodPost, srv.URL+"/api/console/create", "")

	// Assert
	require.NotNil(t, view.Create.Result)
	assert.Equal(t, model.Shortcode("ab12cd"), view.Create.Result.Shortcode)
	assert.Equal(t, model.NotificationSuccess, view.Notification.Kind)
	assert.Equal(t, 1, a.sessions.Len())
}

func TestApp_SessionsAreIndependent(t *testing.T) {
	// Arrange
	a, srv := newTestApp(t)
	first := newBrowserClient(t)
	second := newBrowserClient(t)

	// Act
	call(t, first, http.MethodPut, srv.URL+"/api/console/forms/resolve", `{"shortcode":"ab12cd"}`)
	call(t, first, http.MethodPost, srv.URL+"/api/console/resolve", "")
	other := call(t, second, http.MethodGet, srv.URL+"/api/console/", "")
	mine := call(t, first, http.MethodGet, srv.URL+"/api/console/", "")

	// Assert
	assert.Equal(t, model.View{}, other)
	require.NotNil(t, mine.Resolve.Result)
	assert.Equal(t, "https://example.com/ab12cd", *mine.Resolve.Result)
	assert.Equal(t, 2, a.sessions.Len())
}

func TestApp_SessionCookieIssued(t *testing.T) {
	_, srv := newTestApp(t)

	resp, err := http.Get(srv.URL + "/api/console/")
	require.NoError(t, err)
	defer resp.Body.Close()

	var names []string
	for _, c := range resp.Cookies() {
		names = append(names, c.Name)
	}
	assert.Contains(t, names, service.SessionCookieName)
}

func TestApp_Ping(t *testing.T) {
	_, srv := newTestApp(t)

	resp, err := http.Get(srv.URL + "/ping")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestApp_RunStopsOnCancel(t *testing.T) {
	// Arrange
	cfg := config.NewDefaultConfig()
	cfg.ServerAddress = config.NetworkAddress{Host: "127.0.0.1", Port: 0}

	a, err := New(cfg, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- a.Run(ctx) }()
	cancel()

	// Assert
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, 0, a.sessions.Len())
}

func TestNewLogger(t *testing.T) {
	tests := []struct {
		level string
		want  zapcore.Level
	}{
		{level: "debug", want: zapcore.DebugLevel},
		{level: "info", want: zapcore.InfoLevel},
		{level: "error", want: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := config.NewDefaultConfig()
			cfg.LogLevel = tt.level

			logger, err := NewLogger(cfg)

			require.NoError(t, err)
			assert.True(t, logger.Core().Enabled(tt.want))
			assert.False(t, logger.Core().Enabled(tt.want-1))
		})
	}

	t.Run("invalid", func(t *testing.T) {
		cfg := config.NewDefaultConfig()
		cfg.LogLevel = "loud"

		_, err := NewLogger(cfg)

		assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	})
}

func TestJanitorInterval(t *testing.T) {
	assert.Equal(t, 15*time.Minute, janitorInterval(time.Hour))
	assert.Equal(t, time.Second, janitorInterval(time.Second))
}
