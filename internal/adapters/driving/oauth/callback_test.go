//nolint:noctx // Test file uses http.Get for convenience; context not required in tests
package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startServer(t *testing.T, state string) *CallbackServer {
	t.Helper()
	server := NewCallbackServer(0, state)
	require.NoError(t, server.Start())
	t.Cleanup(func() { _ = server.Stop() })
	return server
}

func get(t *testing.T, server *CallbackServer, query string) (int, string) {
	t.Helper()
	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/callback?%s", server.Port(), query))
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestNewCallbackServer(t *testing.T) {
	server := NewCallbackServer(8080, "state-123")

	require.NotNil(t, server)
	assert.Equal(t, 8080, server.Port())
	assert.Equal(t, "state-123", server.expectedState)
	assert.Nil(t, server.server)
}

func TestCallbackServer_Start_PicksPort(t *testing.T) {
	server := startServer(t, "s")

	assert.NotZero(t, server.Port())
	assert.Equal(t, fmt.Sprintf("http://localhost:%d/callback", server.Port()), server.RedirectURI())
}

func TestCallbackServer_Start_PortInUse(t *testing.T) {
	first := startServer(t, "s1")

	second := NewCallbackServer(first.Port(), "s2")
	err := second.Start()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

func TestCallbackServer_Stop_NotStarted(t *testing.T) {
	server := NewCallbackServer(0, "s")

	assert.NoError(t, server.Stop())
	assert.NoError(t, server.Stop())
}

func TestCallbackServer_Success(t *testing.T) {
	server := startServer(t, "good-state")

	status, body := get(t, server, "code=abc&state=good-state")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Authorisation successful")

	code, err := server.WaitForCode(context.Background(), time.Second)
	require.NoError(t, err)
	assert.Equal(t, "abc", code)
}

func TestCallbackServer_StateMismatch(t *testing.T) {
	server := startServer(t, "good-state")

	_, body := get(t, server, "code=abc&state=other")
	assert.Contains(t, body, "Invalid state parameter")

	_, err := server.WaitForCode(context.Background(), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state mismatch")
}

func TestCallbackServer_MissingCode(t *testing.T) {
	server := startServer(t, "s")

	get(t, server, "state=s")

	_, err := server.WaitForCode(context.Background(), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no authorisation code")
}

func TestCallbackServer_ProviderError(t *testing.T) {
	server := startServer(t, "s")

	_, body := get(t, server, "error=access_denied&error_description=<denied>")
	assert.Contains(t, body, "access_denied")
	assert.Contains(t, body, "&lt;denied&gt;")
	assert.NotContains(t, body, "<denied>")

	_, err := server.WaitForCode(context.Background(), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oauth error: access_denied")
}

func TestCallbackServer_FirstErrorWins(t *testing.T) {
	server := startServer(t, "s")

	get(t, server, "state=wrong")
	get(t, server, "error=later")

	_, err := server.WaitForCode(context.Background(), time.Second)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "state mismatch")
}

func TestCallbackServer_WaitForCode_Timeout(t *testing.T) {
	server := NewCallbackServer(0, "s")

	code, err := server.WaitForCode(context.Background(), 50*time.Millisecond)

	assert.ErrorIs(t, err, ErrCallbackTimeout)
	assert.Empty(t, code)
}

func TestCallbackServer_WaitForCode_Cancelled(t *testing.T) {
	server := NewCallbackServer(0, "s")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := server.WaitForCode(ctx, time.Minute)

	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCallbackServer_UnknownPath(t *testing.T) {
	server := startServer(t, "s")

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/other", server.Port()))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestResultHTML_Escapes(t *testing.T) {
	page := resultHTML("Title <b>", "a & b")

	assert.Contains(t, page, "Title &lt;b&gt;")
	assert.Contains(t, page, "a &amp; b")
	assert.Contains(t, page, "<title>Payslip Drive</title>")
}
