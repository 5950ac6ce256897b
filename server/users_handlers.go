package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-admin-portal/backend"
	"github.com/jrsteele09/go-admin-portal/internal/validation"
	"github.com/rs/zerolog/log"
)

type userCreateForm struct {
	Email       string `form:"email" validate:"required,email"`
	FullName    string `form:"full_name" validate:"required,min=3"`
	Password    string `form:"password" validate:"required,min=3"`
	IsActive    bool   `form:"is_active"`
	IsSuperuser bool   `form:"is_superuser"`
}

type userUpdateForm struct {
	Email       string `form:"email" validate:"required,email"`
	FullName    string `form:"full_name" validate:"omitempty,min=3"`
	IsActive    bool   `form:"is_active"`
	IsSuperuser bool   `form:"is_superuser"`
}

// UsersListHandler renders the user table with the free-text search applied
func (s *Server) UsersListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		q := r.URL.Query().Get("q")

		result, err := s.users.List(r.Context(), sess.AccessToken, sess.User.ID, q)
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			// Render the page rather than redirect to ourselves.
			s.renderAdminPage(w, r, "users", "Users", "admin_users_content.html", map[string]interface{}{
				"LoadError": "Failed to load users",
				"Query":     q,
			})
			return
		}

		s.renderAdminPage(w, r, "users", "Users", "admin_users_content.html", map[string]interface{}{
			"Users": result.Data,
			"Count": result.Count,
			"Query": q,
		})
	}
}

// CreateUserHandler processes the create-user form (POST /admin/users)
func (s *Server) CreateUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := userCreateForm{
			Email:       r.FormValue("email"),
			FullName:    r.FormValue("full_name"),
			Password:    r.FormValue("password"),
			IsActive:    r.FormValue("is_active") == "on",
			IsSuperuser: r.FormValue("is_superuser") == "on",
		}

		if err := s.validate.Validate(form); err != nil {
			fieldErrs, _ := validation.AsFieldErrors(err)
			s.renderAdminPage(w, r, "users", "New User", "admin_user_form_content.html", map[string]interface{}{
				"Mode":   "create",
				"Action": RouteAdminUsers,
				"Form":   form,
				"Fields": fieldErrs.Fields,
			})
			return
		}

		err := s.users.Write(r.Context(), sess.User.ID, func(ctx context.Context) error {
			_, err := s.backend.WithToken(sess.AccessToken).CreateUser(ctx, backend.UserCreate{
				Email:       form.Email,
				FullName:    form.FullName,
				Password:    form.Password,
				IsActive:    form.IsActive,
				IsSuperuser: form.IsSuperuser,
			})
			return err
		})
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			log.Err(err).Msg("Failed to create user")
			errorRedirect(w, r, RouteAdminUsers, "Failed to create user")
			return
		}

		noticeRedirect(w, r, RouteAdminUsers, "User created successfully")
	}
}

// NewUserPageHandler renders an empty create-user form
func (s *Server) NewUserPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderAdminPage(w, r, "users", "New User", "admin_user_form_content.html", map[string]interface{}{
			"Mode":   "create",
			"Action": RouteAdminUsers,
			"Form":   userCreateForm{IsActive: true},
			"Fields": map[string]string{},
		})
	}
}

// EditUserPageHandler renders the edit form for one user
func (s *Server) EditUserPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		id := r.PathValue("id")

		result, err := s.users.List(r.Context(), sess.AccessToken, sess.User.ID, "")
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			errorRedirect(w, r, RouteAdminUsers, "Failed to load user")
			return
		}

		for _, user := range result.Data {
			if user.ID == id {
				s.renderAdminPage(w, r, "users", "Edit User", "admin_user_form_content.html", map[string]interface{}{
					"Mode":   "edit",
					"Action": RouteAdminUsers + "/" + user.ID,
					"Form": userUpdateForm{
						Email:       user.Email,
						FullName:    user.FullName,
						IsActive:    user.IsActive,
						IsSuperuser: user.IsSuperuser,
					},
					"Fields": map[string]string{},
				})
				return
			}
		}
		errorRedirect(w, r, RouteAdminUsers, "User not found")
	}
}

// UpdateUserHandler processes the edit-user form (POST /admin/users/{id})
func (s *Server) UpdateUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		id := r.PathValue("id")
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := userUpdateForm{
			Email:       r.FormValue("email"),
			FullName:    r.FormValue("full_name"),
			IsActive:    r.FormValue("is_active") == "on",
			IsSuperuser: r.FormValue("is_superuser") == "on",
		}

		if err := s.validate.Validate(form); err != nil {
			fieldErrs, _ := validation.AsFieldErrors(err)
			s.renderAdminPage(w, r, "users", "Edit User", "admin_user_form_content.html", map[string]interface{}{
				"Mode":   "edit",
				"Action": RouteAdminUsers + "/" + id,
				"Form":   form,
				"Fields": fieldErrs.Fields,
			})
			return
		}

		err := s.users.Write(r.Context(), sess.User.ID, func(ctx context.Context) error {
			_, err := s.backend.WithToken(sess.AccessToken).UpdateUser(ctx, id, backend.UserUpdate{
				Email:       &form.Email,
				FullName:    &form.FullName,
				IsActive:    &form.IsActive,
				IsSuperuser: &form.IsSuperuser,
			})
			return err
		})
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			log.Err(err).Str("user_id", id).Msg("Failed to update user")
			errorRedirect(w, r, RouteAdminUsers, "Failed to update user")
			return
		}

		noticeRedirect(w, r, RouteAdminUsers, "User updated successfully")
	}
}

// DeleteUserHandler processes a delete confirmation (POST /admin/users/{id}/delete)
func (s *Server) DeleteUserHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		id := r.PathValue("id")

		if id == sess.User.ID {
			errorRedirect(w, r, RouteAdminUsers, "You cannot delete your own account")
			return
		}

		err := s.users.Write(r.Context(), sess.User.ID, func(ctx context.Context) error {
			return s.backend.WithToken(sess.AccessToken).DeleteUser(ctx, id)
		})
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			log.Err(err).Str("user_id", id).Msg("Failed to delete user")
			errorRedirect(w, r, RouteAdminUsers, "Failed to delete user")
			return
		}

		noticeRedirect(w, r, RouteAdminUsers, "User deleted successfully")
	}
}
