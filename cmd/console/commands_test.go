package main

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/avc-dev/url-shortener-console/internal/config"
	"github.com/avc-dev/url-shortener-console/internal/mocks"
	"github.com/avc-dev/url-shortener-console/internal/usecase"
	"github.com/go-chi/chi/v5"
	ozzo "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeAPI фейковый сервис коротких ссылок, запоминающий вызовы
type fakeAPI struct {
	mu    sync.Mutex
	calls []string
}

func (f *fakeAPI) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.Path)
}

func (f *fakeAPI) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func newFakeAPI(t *testing.T) (*fakeAPI, string) {
	t.Helper()

	f := &fakeAPI{}
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			f.record(r)
			next.ServeHTTP(w, r)
		})
	})
	r.Post("/write/shorten", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		if strings.Contains(string(body), "taken") {
			w.WriteHeader(http.StatusConflict)
			w.Write([]byte(`{"message":"URL ya existe"}`))
			return
		}
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"shortcode":"ab12cd"}`))
	})
	r.Get("/read/shorten/{code}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "code") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte("https://example.com"))
	})
	r.Get("/read/shorten/{code}/stats", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("42"))
	})
	r.Put("/write/shorten/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Delete("/write/shorten/{code}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return f, srv.URL
}

type testCLI struct {
	api       *fakeAPI
	out       *bytes.Buffer
	clipboard *mocks.MockClipboard
	browser   *mocks.MockBrowser
	cfg       *config.Config
	deps      deps
}

func newTestCLI(t *testing.T) *testCLI {
	t.Helper()

	api, url := newFakeAPI(t)
	out := &bytes.Buffer{}
	cli := &testCLI{
		api:       api,
		out:       out,
		clipboard: mocks.NewMockClipboard(t),
		browser:   mocks.NewMockBrowser(t),
		cfg:       config.NewDefaultConfig(),
	}
	cli.deps = deps{
		stdin:      io.NopCloser(strings.NewReader("")),
		stdout:     out,
		httpClient: http.DefaultClient,
		clipboard:  cli.clipboard,
		browser:    cli.browser,
		newLogger:  func(*config.Config) (*zap.Logger, error) { return zap.NewNop(), nil },
	}
	cli.cfg.APIBaseURL = config.URLPrefix(url)

	return cli
}

func (c *testCLI) run(args ...string) error {
	root := newRootCmd(c.cfg, c.deps)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

func TestShortenCmd(t *testing.T) {
	// Arrange
	cli := newTestCLI(t)

	// Act
	err := cli.run("shorten", "https://example.com")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "ab12cd\n[success] "+usecase.MsgCreated+"\n", cli.out.String())
	assert.Equal(t, []string{"POST /write/shorten"}, cli.api.Calls())
}

func TestShortenCmd_ServerMessage(t *testing.T) {
	cli := newTestCLI(t)

	err := cli.run("shorten", "https://taken.example.com")

	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.Equal(t, "[error] URL ya existe\n", cli.out.String())
}

func TestShortenCmd_InvalidURL(t *testing.T) {
	cli := newTestCLI(t)

	err := cli.run("shorten", "example.com")

	var verrs ozzo.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "url")
	assert.Empty(t, cli.api.Calls())
	assert.Empty(t, cli.out.String())
}

func TestResolveCmd(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantOut string
		wantErr error
	}{
		{
			name:    "found",
			code:    "ab12cd",
			wantOut: "https://example.com\n[success] " + usecase.MsgResolved + "\n",
		},
		{
			name:    "not found",
			code:    "missing",
			wantOut: "[error] " + usecase.MsgResolveFailed + "\n",
			wantErr: ErrOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli := newTestCLI(t)

			err := cli.run("resolve", tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantOut, cli.out.String())
		})
	}
}

func TestStatsCmd(t *testing.T) {
	cli := newTestCLI(t)

	err := cli.run("stats", "ab12cd")

	require.NoError(t, err)
	assert.Equal(t, "42\n[success] "+usecase.MsgStatsLoaded+"\n", cli.out.String())
	assert.Equal(t, []string{"GET /read/shorten/ab12cd/stats"}, cli.api.Calls())
}

func TestUpdateCmd(t *testing.T) {
	cli := newTestCLI(t)

	err := cli.run("update", "ab12cd", "https://new.example.com")

	require.NoError(t, err)
	assert.Equal(t, "[success] "+usecase.MsgUpdated+"\n", cli.out.String())
	assert.Equal(t, []string{"PUT /write/shorten/ab12cd"}, cli.api.Calls())
}

func TestUpdateCmd_InvalidURL(t *testing.T) {
	cli := newTestCLI(t)

	err := cli.run("update", "ab12cd", "new.example.com")

	assert.Error(t, err)
	assert.Empty(t, cli.api.Calls())
}

func TestDeleteCmd_AssumeYes(t *testing.T) {
	cli := newTestCLI(t)

	err := cli.run("delete", "ab12cd", "--yes")

	require.NoError(t, err)
	assert.Equal(t, "[success] "+usecase.MsgDeleted+"\n", cli.out.String())
	assert.Equal(t, []string{"DELETE /write/shorten/ab12cd"}, cli.api.Calls())
}

func TestCopyCmd(t *testing.T) {
	cli := newTestCLI(t)
	cli.clipboard.EXPECT().WriteAll("https://sho.rt/ab12cd").Return(nil).Once()

	err := cli.run("copy", "https://sho.rt/ab12cd")

	require.NoError(t, err)
	assert.Equal(t, "[success] "+usecase.MsgCopied+"\n", cli.out.String())
}

func TestOpenCmd(t *testing.T) {
	cli := newTestCLI(t)
	cli.browser.EXPECT().OpenURL("https://example.com").Return(nil).Once()

	err := cli.run("open", "https://example.com")

	require.NoError(t, err)
	assert.Empty(t, cli.out.String())
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	cli := newTestCLI(t)
	api, url := newFakeAPI(t)

	err := cli.run("stats", "ab12cd", "-b", url)

	require.NoError(t, err)
	assert.Len(t, api.Calls(), 1)
	assert.Empty(t, cli.api.Calls())
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	cli := newTestCLI(t)

	err := cli.run("shrink", "https://example.com")

	assert.Error(t, err)
}

func TestRootCmd_InvalidFlagRejected(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{
			name:    "zero idle timeout",
			args:    []string{"stats", "ab12cd", "--session-idle-timeout=0"},
			wantErr: config.ErrInvalidIdleTimeout,
		},
		{
			name:    "negative idle timeout",
			args:    []string{"serve", "--session-idle-timeout=-1m"},
			wantErr: config.ErrInvalidIdleTimeout,
		},
		{
			name:    "unknown log level",
			args:    []string{"stats", "ab12cd", "-l", "bogus"},
			wantErr: config.ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			cli := newTestCLI(t)

			// Act
			err := cli.run(tt.args...)

			// Assert
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, cli.api.Calls())
			assert.Empty(t, cli.out.String())
		})
	}
}
