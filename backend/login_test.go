package backend_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/jrsteele09/go-admin-portal/backend"
	"github.com/stretchr/testify/require"
)

func TestLoginPasswordGrant(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "password", r.PostFormValue("grant_type"))
		require.Equal(t, "admin@example.com", r.PostFormValue("username"))
		require.Equal(t, "secret123", r.PostFormValue("password"))

		respondJSON(w, http.StatusOK, map[string]string{
			"access_token": "abc",
			"token_type":   "bearer",
			"id":           "user-1",
			"full_name":    "Admin User",
			"email":        "admin@example.com",
		})
	})

	result, err := fb.client().Login(context.Background(), "admin@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "abc", result.AccessToken)
	require.Equal(t, "user-1", result.ID)
	require.Equal(t, "Admin User", result.FullName)
	require.Equal(t, "admin@example.com", result.Email)

	require.Equal(t, http.MethodPost, fb.requests[0].Method)
	require.Equal(t, "/login/access-token", fb.requests[0].Path)
}

func TestLoginThenCurrentUserCarriesBearerToken(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login/access-token":
			respondJSON(w, http.StatusOK, map[string]string{"access_token": "abc", "token_type": "bearer"})
		case "/users/me":
			respondJSON(w, http.StatusOK, backend.User{ID: "user-1", Email: "admin@example.com", IsSuperuser: true})
		default:
			http.NotFound(w, r)
		}
	})
	client := fb.client()

	result, err := client.Login(context.Background(), "admin@example.com", "secret123")
	require.NoError(t, err)

	me, err := client.WithToken(result.AccessToken).CurrentUser(context.Background())
	require.NoError(t, err)
	require.True(t, me.IsSuperuser)

	require.Equal(t, "Bearer abc", fb.requests[1].Auth)
}

func TestLoginInvalidCredentials(t *testing.T) {
	fb := newFakeBackend(t, func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusBadRequest, map[string]string{"detail": "Incorrect email or password"})
	})

	_, err := fb.client().Login(context.Background(), "admin@example.com", "wrong")
	require.True(t, backend.IsAuthentication(err))
}
