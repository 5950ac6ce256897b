package server

import "github.com/jrsteele09/go-admin-portal/session"

func (s *Server) initRoutes() {
	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.HomeHandler(), s.HTMLMiddleWare()...))

	// Entry pages: already-authenticated visitors are sent to /admin
	s.RegisterRouteHandler("GET "+RouteSignIn, ChainMiddleware(s.SignInPageHandler(), s.HTMLMiddleWare(s.RedirectIfAuthenticated)...))
	s.RegisterRouteHandler("POST "+RouteSignIn, ChainMiddleware(s.SignInSubmissionHandler(), s.HTMLMiddleWare(s.loginLimiter.Middleware)...))
	s.RegisterRouteHandler("GET "+RouteSignUp, ChainMiddleware(s.SignUpPageHandler(), s.HTMLMiddleWare(s.RedirectIfAuthenticated)...))
	s.RegisterRouteHandler("POST "+RouteSignUp, ChainMiddleware(s.SignUpSubmissionHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteHandler("GET "+RouteSignOut, ChainMiddleware(s.SignOutHandler(), s.HTMLMiddleWare()...))

	s.RegisterRouteHandler("GET "+RouteUnauthorized, ChainMiddleware(s.UnauthorizedHandler(), s.HTMLMiddleWare()...))
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())

	// Authenticated area
	s.RegisterRouteHandler("GET "+RouteAdminDashboard, ChainMiddleware(s.DashboardHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))
	s.RegisterRouteHandler("GET "+RouteAdminSettings, ChainMiddleware(s.SettingsPageHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))
	s.RegisterRouteHandler("POST "+RouteAdminSettings+"/profile", ChainMiddleware(s.UpdateProfileHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))
	s.RegisterRouteHandler("POST "+RouteAdminSettings+"/password", ChainMiddleware(s.UpdatePasswordHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))

	// User management requires the admin role
	s.RegisterRouteHandler("GET "+RouteAdminUsers, ChainMiddleware(s.UsersListHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAdmin))...))
	s.RegisterRouteHandler("POST "+RouteAdminUsers, ChainMiddleware(s.CreateUserHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAdmin))...))
	s.RegisterRouteHandler("GET "+RouteAdminUsers+"/new", ChainMiddleware(s.NewUserPageHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAdmin))...))
	s.RegisterRouteHandler("GET "+RouteAdminUsers+"/{id}/edit", ChainMiddleware(s.EditUserPageHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAdmin))...))
	s.RegisterRouteHandler("POST "+RouteAdminUsers+"/{id}", ChainMiddleware(s.UpdateUserHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAdmin))...))
	s.RegisterRouteHandler("POST "+RouteAdminUsers+"/{id}/delete", ChainMiddleware(s.DeleteUserHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAdmin))...))

	// Items are visible to any authenticated user
	s.RegisterRouteHandler("GET "+RouteAdminItems, ChainMiddleware(s.ItemsListHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))
	s.RegisterRouteHandler("POST "+RouteAdminItems, ChainMiddleware(s.CreateItemHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))
	s.RegisterRouteHandler("GET "+RouteAdminItems+"/new", ChainMiddleware(s.NewItemPageHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))
	s.RegisterRouteHandler("GET "+RouteAdminItems+"/{id}/edit", ChainMiddleware(s.EditItemPageHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))
	s.RegisterRouteHandler("POST "+RouteAdminItems+"/{id}", ChainMiddleware(s.UpdateItemHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))
	s.RegisterRouteHandler("POST "+RouteAdminItems+"/{id}/delete", ChainMiddleware(s.DeleteItemHandler(), s.HTMLMiddleWare(s.RequireSession(session.RoleAny))...))
}
