package server

import (
	"net/http"

	"github.com/jrsteele09/go-admin-portal/backend"
	"github.com/jrsteele09/go-admin-portal/internal/validation"
	"github.com/rs/zerolog/log"
)

type profileForm struct {
	FullName string `form:"full_name" validate:"required,min=3"`
	Email    string `form:"email" validate:"required,email"`
}

type passwordForm struct {
	CurrentPassword string `form:"current_password" validate:"required"`
	NewPassword     string `form:"new_password" validate:"required,min=6,max=255"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=NewPassword"`
}

// settingsData builds the settings page data with empty field-error maps so
// the template can dereference them unconditionally.
func settingsData(profile profileForm) map[string]interface{} {
	return map[string]interface{}{
		"ProfileForm":    profile,
		"ProfileFields":  map[string]string{},
		"PasswordFields": map[string]string{},
	}
}

// SettingsPageHandler renders the profile and password forms, pre-filled
// from the backend profile rather than the session so edits made elsewhere
// show up.
func (s *Server) SettingsPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())

		me, err := s.backend.WithToken(sess.AccessToken).CurrentUser(r.Context())
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			log.Err(err).Msg("Failed to load profile")
			// Fall back to the session copy so the page still renders.
			me = backend.User{ID: sess.User.ID, Email: sess.User.Email, FullName: sess.User.Name}
		}

		s.renderAdminPage(w, r, "settings", "Settings", "admin_settings_content.html",
			settingsData(profileForm{FullName: me.FullName, Email: me.Email}))
	}
}

// UpdateProfileHandler processes the profile form (POST /admin/settings/profile)
func (s *Server) UpdateProfileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := profileForm{
			FullName: r.FormValue("full_name"),
			Email:    r.FormValue("email"),
		}

		if err := s.validate.Validate(form); err != nil {
			fieldErrs, _ := validation.AsFieldErrors(err)
			data := settingsData(form)
			data["ProfileFields"] = fieldErrs.Fields
			s.renderAdminPage(w, r, "settings", "Settings", "admin_settings_content.html", data)
			return
		}

		me, err := s.backend.WithToken(sess.AccessToken).UpdateMe(r.Context(), backend.UserUpdate{
			FullName: &form.FullName,
			Email:    &form.Email,
		})
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			log.Err(err).Msg("Failed to update profile")
			errorRedirect(w, r, RouteAdminSettings, "Failed to update profile")
			return
		}

		// Profile changes show up in the admin user list, so drop the cache.
		s.users.Invalidate(sess.User.ID)

		// The cookie carries the display name and email; re-issue it so the
		// header reflects the change immediately.
		updated := *sess
		updated.User.Name = me.FullName
		updated.User.Email = me.Email
		if token, expiresAt, err := s.codec.Issue(updated); err == nil {
			s.store.Save(w, token, expiresAt)
		} else {
			log.Err(err).Msg("Failed to refresh session after profile update")
		}

		noticeRedirect(w, r, RouteAdminSettings, "Profile updated successfully")
	}
}

// UpdatePasswordHandler processes the password form (POST /admin/settings/password)
func (s *Server) UpdatePasswordHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := passwordForm{
			CurrentPassword: r.FormValue("current_password"),
			NewPassword:     r.FormValue("new_password"),
			ConfirmPassword: r.FormValue("confirm_password"),
		}

		if err := s.validate.Validate(form); err != nil {
			fieldErrs, _ := validation.AsFieldErrors(err)
			data := settingsData(profileForm{FullName: sess.User.Name, Email: sess.User.Email})
			data["PasswordFields"] = fieldErrs.Fields
			s.renderAdminPage(w, r, "settings", "Settings", "admin_settings_content.html", data)
			return
		}

		err := s.backend.WithToken(sess.AccessToken).UpdateMyPassword(r.Context(), backend.UpdatePassword{
			CurrentPassword: form.CurrentPassword,
			NewPassword:     form.NewPassword,
		})
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			kind, _ := backend.KindOf(err)
			if kind == backend.KindValidation {
				data := settingsData(profileForm{FullName: sess.User.Name, Email: sess.User.Email})
				data["PasswordFields"] = map[string]string{"current_password": "Current password is incorrect"}
				s.renderAdminPage(w, r, "settings", "Settings", "admin_settings_content.html", data)
				return
			}
			log.Err(err).Msg("Failed to update password")
			errorRedirect(w, r, RouteAdminSettings, "Failed to update password")
			return
		}

		noticeRedirect(w, r, RouteAdminSettings, "Password updated successfully")
	}
}
