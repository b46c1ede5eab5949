package payment

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T) *CallbackServer {
	t.Helper()
	s := NewCallbackServer()
	require.NoError(t, s.Start("127.0.0.1:0"))
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = s.Shutdown(ctx)
	})
	return s
}

func TestCallbackSuccess(t *testing.T) {
	s := startServer(t)

	resp, err := http.Get(s.SuccessURL() + "?session_id=cs_test_1")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	result, err := s.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cs_test_1", result.SessionID)
	assert.False(t, result.Cancelled)
}

func TestCallbackCancel(t *testing.T) {
	s := startServer(t)

	resp, err := http.Get(s.CancelURL())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	result, err := s.Wait(ctx)
	require.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Empty(t, result.SessionID)
}

func TestCallbackMissingSessionID(t *testing.T) {
	s := startServer(t)

	resp, err := http.Get(s.SuccessURL())
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "session_id")
}

func TestCallbackFirstResultWins(t *testing.T) {
	s := startServer(t)

	for _, id := range []string{"cs_first", "cs_second"} {
		resp, err := http.Get(s.SuccessURL() + "?session_id=" + id)
		require.NoError(t, err)
		resp.Body.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	result, err := s.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, "cs_first", result.SessionID)
}

func TestCallbackWaitContextExpiry(t *testing.T) {
	s := startServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := s.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
