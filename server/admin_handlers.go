package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
)

// renderAdminPage renders a content template inside the admin layout
func (s *Server) renderAdminPage(w http.ResponseWriter, r *http.Request, activePage, pageTitle, contentTemplate string, contentData interface{}) {
	sess := SessionFromContext(r.Context())
	if sess == nil {
		http.Redirect(w, r, RouteSignIn, http.StatusSeeOther)
		return
	}

	contentTmpl, err := ParseTemplate(contentTemplate)
	if err != nil {
		log.Err(err).Str("template", contentTemplate).Msg("Failed to load content template")
		http.Error(w, "Failed to load content template", http.StatusInternalServerError)
		return
	}

	var contentBuf strings.Builder
	if err := contentTmpl.Execute(&contentBuf, contentData); err != nil {
		log.Err(err).Str("template", contentTemplate).Msg("Failed to render content template")
		http.Error(w, "Failed to render content", http.StatusInternalServerError)
		return
	}

	layoutTmpl, err := ParseTemplate("admin_layout.html")
	if err != nil {
		http.Error(w, "Failed to load layout template", http.StatusInternalServerError)
		return
	}

	userName := sess.User.Name
	if userName == "" {
		userName = sess.User.Email
	}

	data := map[string]interface{}{
		"AppName":    s.config.GetAppName(),
		"UserName":   userName,
		"IsAdmin":    sess.IsAdmin(),
		"ActivePage": activePage,
		"PageTitle":  pageTitle,
		"Notice":     r.URL.Query().Get("notice"),
		"Error":      r.URL.Query().Get("error"),
		"Content":    template.HTML(contentBuf.String()),
	}

	w.Header().Set("Content-Type", contentTypeHTML)
	_ = layoutTmpl.Execute(w, data)
}

// DashboardHandler renders the admin dashboard
func (s *Server) DashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFromContext(r.Context())

		backendStatus := "ok"
		if err := s.backend.HealthCheck(r.Context()); err != nil {
			backendStatus = "unreachable"
		}

		s.renderAdminPage(w, r, "dashboard", "Dashboard", "admin_dashboard_content.html", map[string]interface{}{
			"User":          sess.User,
			"IsAdminUser":   sess.IsAdmin(),
			"BackendStatus": backendStatus,
		})
	}
}

// UnauthorizedHandler renders the page shown on a role mismatch
func (s *Server) UnauthorizedHandler() http.HandlerFunc {
	tmpl, err := ParseTemplate("unauthorized.html")
	if err != nil {
		log.Err(err).Msg("Failed to parse unauthorized template")
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		w.WriteHeader(http.StatusForbidden)
		_ = tmpl.Execute(w, map[string]interface{}{"AppName": s.config.GetAppName()})
	}
}

// HealthHandler reports the portal's own health plus the backend probe
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]string{"status": "ok", "backend": "ok"}
		if err := s.backend.HealthCheck(r.Context()); err != nil {
			status["backend"] = "unreachable"
		}

		w.Header().Set("Content-Type", "application/json")
		if status["backend"] != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(status)
	}
}
