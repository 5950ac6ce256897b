package server

import (
	"net/http"

	"github.com/jrsteele09/go-admin-portal/backend"
	"github.com/jrsteele09/go-admin-portal/internal/validation"
	"github.com/jrsteele09/go-admin-portal/session"
	"github.com/rs/zerolog/log"
)

// SignInPageData contains data for rendering the sign-in page
type SignInPageData struct {
	AppName string
	Error   string
	Notice  string
	Email   string            // Preserve email on error
	Fields  map[string]string // Field-level validation messages
}

type signInForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6,max=255"`
}

// HomeHandler routes the bare domain to the right place for the caller's
// auth state.
func (s *Server) HomeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, outcome := s.CheckAuth(r, session.RoleAny); outcome == OutcomeAllow {
			http.Redirect(w, r, RouteAdminDashboard, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RouteSignIn, http.StatusSeeOther)
	}
}

// SignInPageHandler displays the sign-in page (GET /sign-in)
func (s *Server) SignInPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("sign_in.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse sign-in template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := SignInPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
			Notice:  r.URL.Query().Get("notice"),
			Email:   r.URL.Query().Get("email"),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render sign-in template")
			http.Error(w, "Failed to render sign-in page", http.StatusInternalServerError)
		}
	}
}

// SignInSubmissionHandler processes the sign-in form submission
func (s *Server) SignInSubmissionHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("sign_in.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse sign-in template")
	}

	renderForm := func(w http.ResponseWriter, data SignInPageData) {
		data.AppName = s.config.GetAppName()
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := signInForm{
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}

		// Field-level failures render inline and block submission
		if err := s.validate.Validate(form); err != nil {
			fieldErrs, _ := validation.AsFieldErrors(err)
			renderForm(w, SignInPageData{Email: form.Email, Fields: fieldErrs.Fields})
			return
		}

		login, err := s.backend.Login(r.Context(), form.Email, form.Password)
		if err != nil {
			if backend.IsAuthentication(err) {
				renderForm(w, SignInPageData{Email: form.Email, Error: "Invalid email or password"})
				return
			}
			s.redirectForBackendError(w, r, err, RouteSignIn)
			return
		}

		// The login payload carries no role; derive it from the profile.
		me, err := s.backend.WithToken(login.AccessToken).CurrentUser(r.Context())
		if err != nil {
			log.Err(err).Msg("Failed to load profile after login")
			s.redirectForBackendError(w, r, err, RouteSignIn)
			return
		}

		role := session.RoleUser
		if me.IsSuperuser {
			role = session.RoleAdmin
		}
		userID := login.ID
		if userID == "" {
			userID = me.ID
		}

		sess := session.Session{
			User: session.User{
				ID:    userID,
				Name:  login.FullName,
				Email: login.Email,
				Role:  role,
			},
			AccessToken: login.AccessToken,
		}

		token, expiresAt, err := s.codec.Issue(sess)
		if err != nil {
			log.Err(err).Msg("Failed to issue session token")
			http.Error(w, "Failed to start session", http.StatusInternalServerError)
			return
		}

		s.store.Save(w, token, expiresAt)
		http.Redirect(w, r, RouteAdminDashboard, http.StatusSeeOther)
	}
}

// SignOutHandler destroys the session cookie and returns to sign-in
func (s *Server) SignOutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.store.Clear(w)
		http.Redirect(w, r, RouteSignIn, http.StatusSeeOther)
	}
}
