package usecase

import (
	"context"
	"net/http"
	"testing"

	"github.com/avc-dev/url-shortener-console/internal/client"
	"github.com/avc-dev/url-shortener-console/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitResolve_Success(t *testing.T) {
	c := newTestConsole(t)
	c.SetResolveForm(model.ShortcodeForm{Shortcode: "ab12cd"})

	c.api.EXPECT().
		Resolve(mock.Anything, model.Shortcode("ab12cd")).
		Return("https://example.com/long", nil).
		Once()

	c.SubmitResolve(context.Background())

	view := c.View()
	require.NotNil(t, view.Resolve.Result)
	assert.Equal(t, "https://example.com/long", *view.Resolve.Result)
	assert.Equal(t, successNotification(MsgResolved), view.Notification)
	assert.False(t, view.Resolve.InFlight)
}

func TestSubmitResolve_NotFound(t *testing.T) {
	// сообщение сервиса игнорируется, показывается фиксированный текст
	c := newTestConsole(t)
	c.SetResolveForm(model.ShortcodeForm{Shortcode: "zz99"})

	c.api.EXPECT().
		Resolve(mock.Anything, model.Shortcode("zz99")).
		Return("", &client.APIError{StatusCode: http.StatusNotFound, Message: "Shortcode zz99 does not exist"}).
		Once()

	c.SubmitResolve(context.Background())

	view := c.View()
	assert.Nil(t, view.Resolve.Result)
	assert.Equal(t, errorNotification("Shortcode no encontrado"), view.Notification)
	assert.False(t, view.Resolve.InFlight)
}

func TestSubmitResolve_EmptyShortcode(t *testing.T) {
	c := newTestConsole(t)

	c.SubmitResolve(context.Background())

	view := c.View()
	assert.False(t, view.Resolve.InFlight)
	assert.True(t, view.Notification.Empty())
}

func TestSubmitResolve_FailureKeepsOtherOperationsUntouched(t *testing.T) {
	c := newTestConsole(t)
	c.SetStatsForm(model.ShortcodeForm{Shortcode: "ab12cd"})
	c.SetResolveForm(model.ShortcodeForm{Shortcode: "ab12cd"})

	c.api.EXPECT().Stats(mock.Anything, model.Shortcode("ab12cd")).Return(int64(3), nil).Once()
	c.api.EXPECT().Resolve(mock.Anything, model.Shortcode("ab12cd")).Return("", assert.AnError).Once()

	c.SubmitStats(context.Background())
	c.SubmitResolve(context.Background())

	view := c.View()
	require.NotNil(t, view.Stats.Result)
	assert.Equal(t, int64(3), *view.Stats.Result)
	assert.Equal(t, "ab12cd", view.Resolve.Form.Shortcode)
}
