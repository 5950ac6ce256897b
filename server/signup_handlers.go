package server

import (
	"net/http"

	"github.com/jrsteele09/go-admin-portal/backend"
	"github.com/jrsteele09/go-admin-portal/internal/validation"
	"github.com/rs/zerolog/log"
)

// SignUpPageData contains data for rendering the sign-up page
type SignUpPageData struct {
	AppName  string
	Error    string
	Email    string
	FullName string
	Fields   map[string]string
}

type signUpForm struct {
	FullName string `form:"full_name" validate:"required,min=3"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=6,max=255"`
}

// SignUpPageHandler renders the registration page (GET /sign-up)
func (s *Server) SignUpPageHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("sign_up.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse sign-up template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		data := SignUpPageData{
			AppName: s.config.GetAppName(),
			Error:   r.URL.Query().Get("error"),
		}

		w.Header().Set("Content-Type", contentTypeHTML)
		if err := tmpl.Execute(w, data); err != nil {
			log.Err(err).Msg("Failed to render sign-up template")
			http.Error(w, "Failed to render sign-up page", http.StatusInternalServerError)
		}
	}
}

// SignUpSubmissionHandler registers a new account through the backend's open
// registration endpoint and sends the user to sign in.
func (s *Server) SignUpSubmissionHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("sign_up.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse sign-up template")
	}

	renderForm := func(w http.ResponseWriter, data SignUpPageData) {
		data.AppName = s.config.GetAppName()
		w.Header().Set("Content-Type", contentTypeHTML)
		_ = tmpl.Execute(w, data)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := signUpForm{
			FullName: r.FormValue("full_name"),
			Email:    r.FormValue("email"),
			Password: r.FormValue("password"),
		}

		if err := s.validate.Validate(form); err != nil {
			fieldErrs, _ := validation.AsFieldErrors(err)
			renderForm(w, SignUpPageData{Email: form.Email, FullName: form.FullName, Fields: fieldErrs.Fields})
			return
		}

		_, err := s.backend.SignUp(r.Context(), backend.UserRegister{
			Email:    form.Email,
			Password: form.Password,
			FullName: form.FullName,
		})
		if err != nil {
			kind, _ := backend.KindOf(err)
			if kind == backend.KindValidation || kind == backend.KindRemote {
				renderForm(w, SignUpPageData{Email: form.Email, FullName: form.FullName, Error: "Could not create the account"})
				return
			}
			s.redirectForBackendError(w, r, err, RouteSignUp)
			return
		}

		noticeRedirect(w, r, RouteSignIn, "Account created, please sign in")
	}
}
