package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-admin-portal/session"
	"github.com/rs/zerolog/log"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the verified session for the request
const ContextKeySession ContextKey = "session"

// Outcome is the typed result of an auth check. Navigation happens only in
// the middleware below, never in data-fetching code.
type Outcome int

const (
	OutcomeAllow Outcome = iota
	OutcomeUnauthenticated
	OutcomeForbidden
)

// CheckAuth decides the caller's state from the stored token: absent or
// unverifiable tokens are Unauthenticated, a verified session missing the
// required role is Forbidden, anything else is allowed through with the
// session exposed.
func (s *Server) CheckAuth(r *http.Request, required session.Role) (*session.Session, Outcome) {
	token := s.store.Load(r)
	if token == "" {
		log.Debug().Str("path", r.URL.Path).Msg("No session cookie")
		return nil, OutcomeUnauthenticated
	}

	sess := s.codec.Verify(token)
	if sess == nil {
		// Same redirect as an absent session; the distinction is log-only.
		log.Warn().Str("path", r.URL.Path).Msg("Session token invalid or expired")
		return nil, OutcomeUnauthenticated
	}

	if required != session.RoleAny && sess.User.Role != required {
		log.Warn().
			Str("path", r.URL.Path).
			Str("role", string(sess.User.Role)).
			Str("required", string(required)).
			Msg("Session lacks required role")
		return sess, OutcomeForbidden
	}

	return sess, OutcomeAllow
}

// RequireSession is middleware that gates a route on a verified session and,
// when required is not RoleAny, on the session's role.
func (s *Server) RequireSession(required session.Role) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			sess, outcome := s.CheckAuth(r, required)
			switch outcome {
			case OutcomeUnauthenticated:
				http.Redirect(w, r, RouteSignIn, http.StatusSeeOther)
				return
			case OutcomeForbidden:
				http.Redirect(w, r, RouteUnauthorized, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, sess)
			next(w, r.WithContext(ctx))
		}
	}
}

// RedirectIfAuthenticated reverses the polarity for entry pages (sign-in,
// sign-up): a valid session is sent to the authenticated area instead of
// being shown a login form again.
func (s *Server) RedirectIfAuthenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, outcome := s.CheckAuth(r, session.RoleAny); outcome == OutcomeAllow {
			http.Redirect(w, r, RouteAdminDashboard, http.StatusSeeOther)
			return
		}
		next(w, r)
	}
}

// SessionFromContext returns the session injected by RequireSession.
func SessionFromContext(ctx context.Context) *session.Session {
	sess, _ := ctx.Value(ContextKeySession).(*session.Session)
	return sess
}
