package server

import (
	"net/http"
	"net/url"

	"github.com/jrsteele09/go-admin-portal/backend"
)

// noticeRedirect sends the user to path with a success notice to display.
func noticeRedirect(w http.ResponseWriter, r *http.Request, path, notice string) {
	http.Redirect(w, r, path+"?notice="+url.QueryEscape(notice), http.StatusSeeOther)
}

// errorRedirect sends the user to path with an error message to display.
func errorRedirect(w http.ResponseWriter, r *http.Request, path, errorMsg string) {
	http.Redirect(w, r, path+"?error="+url.QueryEscape(errorMsg), http.StatusSeeOther)
}

// authRedirect handles only the auth kinds of a backend failure, reporting
// whether it navigated. Callers use it when a non-auth failure should render
// inline instead of redirecting.
func (s *Server) authRedirect(w http.ResponseWriter, r *http.Request, err error) bool {
	kind, ok := backend.KindOf(err)
	if !ok {
		return false
	}
	switch kind {
	case backend.KindAuthentication:
		s.store.Clear(w)
		http.Redirect(w, r, RouteSignIn, http.StatusSeeOther)
		return true
	case backend.KindAuthorization:
		http.Redirect(w, r, RouteUnauthorized, http.StatusSeeOther)
		return true
	}
	return false
}

// redirectForBackendError is the single place backend failures turn into
// navigation. A 401 is a blunt downgrade to unauthenticated: the user is
// relocated to sign-in (never from the sign-in page itself, avoiding a
// redirect loop). A 403 goes to the unauthorized page. Everything else is
// sent back to fallbackPath with an error notice for the caller to show.
func (s *Server) redirectForBackendError(w http.ResponseWriter, r *http.Request, err error, fallbackPath string) {
	kind, ok := backend.KindOf(err)
	if !ok {
		errorRedirect(w, r, fallbackPath, "Something went wrong")
		return
	}

	switch kind {
	case backend.KindAuthentication:
		if r.URL.Path == RouteSignIn {
			errorRedirect(w, r, RouteSignIn, "Invalid credentials")
			return
		}
		s.store.Clear(w)
		http.Redirect(w, r, RouteSignIn, http.StatusSeeOther)
	case backend.KindAuthorization:
		http.Redirect(w, r, RouteUnauthorized, http.StatusSeeOther)
	case backend.KindValidation:
		errorRedirect(w, r, fallbackPath, err.Error())
	default:
		// Remote and network failures look the same to the user; the
		// client already logged which one it was.
		errorRedirect(w, r, fallbackPath, "The backend request failed, please try again")
	}
}
