package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jrsteele09/go-admin-portal/session"
	"github.com/stretchr/testify/require"
)

func TestCookieStoreSave(t *testing.T) {
	store := session.NewCookieStore("")
	expires := time.Now().Add(7 * 24 * time.Hour)

	w := httptest.NewRecorder()
	store.Save(w, "signed-token", expires)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)

	c := cookies[0]
	require.Equal(t, "session", c.Name)
	require.Equal(t, "signed-token", c.Value)
	require.Equal(t, "/", c.Path)
	require.True(t, c.HttpOnly)
	require.True(t, c.Secure)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	require.WithinDuration(t, expires, c.Expires, time.Second)
}

func TestCookieStoreLoad(t *testing.T) {
	store := session.NewCookieStore("session")

	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	require.Empty(t, store.Load(r))

	r.AddCookie(&http.Cookie{Name: "session", Value: "signed-token"})
	require.Equal(t, "signed-token", store.Load(r))
}

func TestCookieStoreClear(t *testing.T) {
	store := session.NewCookieStore("session")

	w := httptest.NewRecorder()
	store.Clear(w)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "session", cookies[0].Name)
	require.Empty(t, cookies[0].Value)
	require.Negative(t, cookies[0].MaxAge)
}
