package server

import (
	"context"
	"net/http"

	"github.com/jrsteele09/go-admin-portal/backend"
	"github.com/jrsteele09/go-admin-portal/internal/validation"
	"github.com/rs/zerolog/log"
)

type itemForm struct {
	Title       string `form:"title" validate:"required,min=1,max=255"`
	Description string `form:"description" validate:"omitempty,max=2000"`
}

// ItemsListHandler renders the item table with the free-text search applied
func (s *Server) ItemsListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		q := r.URL.Query().Get("q")

		result, err := s.items.List(r.Context(), sess.AccessToken, sess.User.ID, q)
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			s.renderAdminPage(w, r, "items", "Items", "admin_items_content.html", map[string]interface{}{
				"LoadError": "Failed to load items",
				"Query":     q,
			})
			return
		}

		s.renderAdminPage(w, r, "items", "Items", "admin_items_content.html", map[string]interface{}{
			"Items": result.Data,
			"Count": result.Count,
			"Query": q,
		})
	}
}

// CreateItemHandler processes the create-item form (POST /admin/items)
func (s *Server) CreateItemHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := itemForm{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
		}

		if err := s.validate.Validate(form); err != nil {
			fieldErrs, _ := validation.AsFieldErrors(err)
			s.renderAdminPage(w, r, "items", "New Item", "admin_item_form_content.html", map[string]interface{}{
				"Mode":   "create",
				"Action": RouteAdminItems,
				"Form":   form,
				"Fields": fieldErrs.Fields,
			})
			return
		}

		err := s.items.Write(r.Context(), sess.User.ID, func(ctx context.Context) error {
			_, err := s.backend.WithToken(sess.AccessToken).CreateItem(ctx, backend.ItemCreate{
				Title:       form.Title,
				Description: form.Description,
			})
			return err
		})
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			log.Err(err).Msg("Failed to create item")
			errorRedirect(w, r, RouteAdminItems, "Failed to create item")
			return
		}

		noticeRedirect(w, r, RouteAdminItems, "Item created successfully")
	}
}

// NewItemPageHandler renders an empty create-item form
func (s *Server) NewItemPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderAdminPage(w, r, "items", "New Item", "admin_item_form_content.html", map[string]interface{}{
			"Mode":   "create",
			"Action": RouteAdminItems,
			"Form":   itemForm{},
			"Fields": map[string]string{},
		})
	}
}

// EditItemPageHandler renders the edit form for one item
func (s *Server) EditItemPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		id := r.PathValue("id")

		result, err := s.items.List(r.Context(), sess.AccessToken, sess.User.ID, "")
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			errorRedirect(w, r, RouteAdminItems, "Failed to load item")
			return
		}

		for _, item := range result.Data {
			if item.ID == id {
				s.renderAdminPage(w, r, "items", "Edit Item", "admin_item_form_content.html", map[string]interface{}{
					"Mode":   "edit",
					"Action": RouteAdminItems + "/" + item.ID,
					"Form": itemForm{
						Title:       item.Title,
						Description: item.Description,
					},
					"Fields": map[string]string{},
				})
				return
			}
		}
		errorRedirect(w, r, RouteAdminItems, "Item not found")
	}
}

// UpdateItemHandler processes the edit-item form (POST /admin/items/{id})
func (s *Server) UpdateItemHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		id := r.PathValue("id")
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		form := itemForm{
			Title:       r.FormValue("title"),
			Description: r.FormValue("description"),
		}

		if err := s.validate.Validate(form); err != nil {
			fieldErrs, _ := validation.AsFieldErrors(err)
			s.renderAdminPage(w, r, "items", "Edit Item", "admin_item_form_content.html", map[string]interface{}{
				"Mode":   "edit",
				"Action": RouteAdminItems + "/" + id,
				"Form":   form,
				"Fields": fieldErrs.Fields,
			})
			return
		}

		err := s.items.Write(r.Context(), sess.User.ID, func(ctx context.Context) error {
			_, err := s.backend.WithToken(sess.AccessToken).UpdateItem(ctx, id, backend.ItemUpdate{
				Title:       form.Title,
				Description: form.Description,
			})
			return err
		})
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			log.Err(err).Str("item_id", id).Msg("Failed to update item")
			errorRedirect(w, r, RouteAdminItems, "Failed to update item")
			return
		}

		noticeRedirect(w, r, RouteAdminItems, "Item updated successfully")
	}
}

// DeleteItemHandler processes a delete confirmation (POST /admin/items/{id}/delete)
func (s *Server) DeleteItemHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())
		id := r.PathValue("id")

		err := s.items.Write(r.Context(), sess.User.ID, func(ctx context.Context) error {
			return s.backend.WithToken(sess.AccessToken).DeleteItem(ctx, id)
		})
		if err != nil {
			if s.authRedirect(w, r, err) {
				return
			}
			log.Err(err).Str("item_id", id).Msg("Failed to delete item")
			errorRedirect(w, r, RouteAdminItems, "Failed to delete item")
			return
		}

		noticeRedirect(w, r, RouteAdminItems, "Item deleted successfully")
	}
}
