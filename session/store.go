package session

import (
	"net/http"
	"time"
)

// DefaultCookieName is the cookie the signed session token lives in.
const DefaultCookieName = "session"

// CookieStore persists the signed session token in an HTTP cookie. Cookie
// I/O either succeeds or the cookie is silently absent; there are no retries.
type CookieStore struct {
	name string
}

func NewCookieStore(name string) *CookieStore {
	if name == "" {
		name = DefaultCookieName
	}
	return &CookieStore{name: name}
}

// Save sets the session cookie, scoped to the whole site, inaccessible to
// page scripts, secure-transport only, with an expiry matching the token's.
func (cs *CookieStore) Save(w http.ResponseWriter, token string, expires time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     cs.name,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		Expires:  expires,
	})
}

// Load reads the session cookie if present, returning "" otherwise.
func (cs *CookieStore) Load(r *http.Request) string {
	cookie, err := r.Cookie(cs.name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Clear removes the session cookie.
func (cs *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cs.name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}
