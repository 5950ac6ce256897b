package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jrsteele09/go-admin-portal/backend"
	"github.com/jrsteele09/go-admin-portal/session"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "test-session-secret"

type testConfig struct {
	backendURL string
}

func (c testConfig) GetPort() string                  { return ":0" }
func (c testConfig) GetAppName() string               { return "Admin Portal" }
func (c testConfig) GetEnv() string                   { return "TEST" }
func (c testConfig) GetSessionSecret() string         { return testSessionSecret }
func (c testConfig) GetSessionTTL() time.Duration     { return time.Hour }
func (c testConfig) GetSessionCookieName() string     { return session.DefaultCookieName }
func (c testConfig) GetBackendBaseURL() string        { return c.backendURL }
func (c testConfig) GetBackendTimeout() time.Duration { return 5 * time.Second }

func newTestServer(t *testing.T, backendURL string) *Server {
	t.Helper()
	cfg := testConfig{backendURL: backendURL}
	s, err := New(cfg, backend.New(cfg))
	require.NoError(t, err)
	return s
}

// signedSessionCookie issues a valid cookie for the given role, bypassing the
// sign-in flow.
func signedSessionCookie(t *testing.T, s *Server, role session.Role) *http.Cookie {
	t.Helper()
	token, _, err := s.codec.Issue(session.Session{
		User: session.User{
			ID:    "user-1",
			Name:  "Jane Doe",
			Email: "jane.doe@example.com",
			Role:  role,
		},
		AccessToken: "backend-token",
	})
	require.NoError(t, err)
	return &http.Cookie{Name: session.DefaultCookieName, Value: token}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestHealthHandler(t *testing.T) {
	healthy := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"status": true})
	}))
	defer healthy.Close()

	s := newTestServer(t, healthy.URL)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RouteHealth, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "ok", body["backend"])
}

func TestHealthHandlerBackendDown(t *testing.T) {
	s := newTestServer(t, "http://127.0.0.1:1")

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, RouteHealth, nil))
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "unreachable", body["backend"])
}
