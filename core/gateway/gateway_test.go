package gateway_test

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/authgate/core/clientip"
	"github.com/dmitrymomot/authgate/core/gateway"
	"github.com/dmitrymomot/authgate/core/session"
	"github.com/dmitrymomot/authgate/core/verifier"
)

func defaultConfig() session.Config {
	return session.Config{
		SessionTimeout:    6 * time.Hour,
		InactivityTimeout: 30 * time.Minute,
	}
}

func newTestServer(t *testing.T, cfg session.Config) *httptest.Server {
	t.Helper()

	v, err := verifier.NewStatic("admin:admin;user:user")
	require.NoError(t, err)

	gw := gateway.New(cfg, session.NewMemoryStore(), v, clientip.New(-2), nil)
	srv := httptest.NewServer(gw.Router())
	t.Cleanup(srv.Close)
	return srv
}

// login posts credentials with the given x-forwarded-for chain and returns
// the raw response.
func login(t *testing.T, srv *httptest.Server, user, pass, xff string) *http.Response {
	t.Helper()

	body, err := json.Marshal(map[string]string{"user": user, "pass": pass})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/auth/login", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if xff != "" {
		req.Header.Set("x-forwarded-for", xff)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

// mustLogin logs in and returns the minted session id.
func mustLogin(t *testing.T, srv *httptest.Server, user, pass, xff string) string {
	t.Helper()

	resp := login(t, srv, user, pass, xff)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		SessionID string `json:"session_id"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotEmpty(t, payload.SessionID)
	return payload.SessionID
}

// call sends a request with optional bearer token and forwarded headers.
func call(t *testing.T, srv *httptest.Server, method, path, token string, headers map[string]string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, srv.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestLoginAndAuth(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())

	resp := login(t, srv, "admin", "admin", "2.2.2.2,1.1.1.1")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		SessionID string `json:"session_id"`
		User      struct {
			Name       string   `json:"name"`
			Department string   `json:"department"`
			Roles      []string `json:"roles"`
		} `json:"user"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.NotEmpty(t, payload.SessionID)
	assert.Equal(t, "admin", payload.User.Name)
	assert.Equal(t, "IT dep of admin", payload.User.Department)
	assert.Equal(t, []string{"USER"}, payload.User.Roles)

	authResp := call(t, srv, http.MethodGet, "/auth", payload.SessionID,
		map[string]string{"x-forwarded-for": "2.2.2.2,1.1.1.1"})
	require.Equal(t, http.StatusOK, authResp.StatusCode)

	body, err := io.ReadAll(authResp.Body)
	require.NoError(t, err)
	assert.Equal(t, "OK", string(body))

	wantInfo := base64.StdEncoding.EncodeToString(
		[]byte(`{"id":"admin","name":"admin","department":"IT dep of admin","roles":["USER"]}`))
	assert.Equal(t, wantInfo, authResp.Header.Get("X-User-Info"))
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())

	resp := login(t, srv, "admin", "nope", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginMissingFields(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())

	resp := login(t, srv, "admin", "", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = login(t, srv, "", "admin", "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginMalformedBody(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())

	resp, err := srv.Client().Post(srv.URL+"/auth/login", "application/json",
		bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAuthTokenViaForwardedURI(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())
	id := mustLogin(t, srv, "admin", "admin", "")

	resp := call(t, srv, http.MethodGet, "/auth", "", map[string]string{
		"X-Forwarded-Uri": "/protected?a=1&token=" + url.QueryEscape(id),
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthWithoutAnyToken(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())

	resp := call(t, srv, http.MethodGet, "/auth", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestAuthIPPinning(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())
	id := mustLogin(t, srv, "admin", "admin", "2.2.2.2,1.1.1.1")

	resp := call(t, srv, http.MethodGet, "/auth", id,
		map[string]string{"x-forwarded-for": "9.9.9.9,1.1.1.1"})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "No session\n", string(body))
}

func TestLogoutInvalidatesSession(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())
	id := mustLogin(t, srv, "admin", "admin", "")

	resp := call(t, srv, http.MethodPost, "/auth/logout", id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = call(t, srv, http.MethodGet, "/auth/validate", id, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogoutUnknownToken(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())

	resp := call(t, srv, http.MethodPost, "/auth/logout", "unknown", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestValidateRequiresBearer(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())
	id := mustLogin(t, srv, "admin", "admin", "")

	// The query-string fallback belongs to /auth alone.
	resp := call(t, srv, http.MethodGet, "/auth/validate", "", map[string]string{
		"X-Forwarded-Uri": "/protected?token=" + url.QueryEscape(id),
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = call(t, srv, http.MethodGet, "/auth/validate", id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestInactivityExpiresSession(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.InactivityTimeout = 100 * time.Millisecond
	srv := newTestServer(t, cfg)
	id := mustLogin(t, srv, "admin", "admin", "")

	time.Sleep(150 * time.Millisecond)

	resp := call(t, srv, http.MethodGet, "/auth/validate", id, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "Session expired\n", string(body))
}

func TestKeepAliveExtendsInactivityWindow(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.InactivityTimeout = 300 * time.Millisecond
	srv := newTestServer(t, cfg)
	id := mustLogin(t, srv, "admin", "admin", "")

	time.Sleep(200 * time.Millisecond)
	resp := call(t, srv, http.MethodPost, "/auth/keep-alive", id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// More than the window from login, less than the window from keep-alive.
	time.Sleep(200 * time.Millisecond)
	resp = call(t, srv, http.MethodGet, "/auth/validate", id, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestValidateDoesNotExtendInactivityWindow(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.InactivityTimeout = 250 * time.Millisecond
	srv := newTestServer(t, cfg)
	id := mustLogin(t, srv, "admin", "admin", "")

	time.Sleep(150 * time.Millisecond)
	resp := call(t, srv, http.MethodGet, "/auth/validate", id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	time.Sleep(150 * time.Millisecond)
	resp = call(t, srv, http.MethodGet, "/auth/validate", id, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLiveEndpoint(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, defaultConfig())

	resp := call(t, srv, http.MethodGet, "/auth/live", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
