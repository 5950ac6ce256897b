package server

const (
	RouteHome         = "/"
	RouteSignIn       = "/sign-in"
	RouteSignUp       = "/sign-up"
	RouteSignOut      = "/sign-out"
	RouteUnauthorized = "/unauthorized"
	RouteHealth       = "/health"

	RouteAdminDashboard = "/admin"
	RouteAdminUsers     = "/admin/users"
	RouteAdminItems     = "/admin/items"
	RouteAdminSettings  = "/admin/settings"
)

const contentTypeHTML = "text/html; charset=utf-8"
