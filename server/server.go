package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/jrsteele09/go-admin-portal/backend"
	"github.com/jrsteele09/go-admin-portal/internal/config"
	"github.com/jrsteele09/go-admin-portal/internal/validation"
	"github.com/jrsteele09/go-admin-portal/resource"
	"github.com/jrsteele09/go-admin-portal/session"
	"golang.org/x/time/rate"
)

type Server struct {
	env    string // Environment (e.g., "DEV", "PROD")
	mux    *http.ServeMux
	routes []string
	config config.Config

	backend  *backend.Client
	codec    *session.Codec
	store    *session.CookieStore
	users    *resource.Querier[backend.User]
	items    *resource.Querier[backend.Item]
	validate *validation.Validator

	loginLimiter *RateLimiter
}

func New(cfg config.Config, backendClient *backend.Client) (*Server, error) {
	codec, err := session.NewCodec(cfg.GetSessionSecret(), cfg.GetSessionTTL())
	if err != nil {
		return nil, fmt.Errorf("[Server New] failed to create session codec: %w", err)
	}

	s := &Server{
		mux:          http.NewServeMux(),
		config:       cfg,
		backend:      backendClient,
		codec:        codec,
		store:        session.NewCookieStore(cfg.GetSessionCookieName()),
		validate:     validation.New(),
		loginLimiter: NewRateLimiter(rate.Limit(1), 5),
	}
	s.env = cfg.GetEnv()

	s.users = resource.NewQuerier("users", resource.DefaultTTL,
		func(ctx context.Context, token, q string) (resource.ListResult[backend.User], error) {
			list, err := backendClient.WithToken(token).ListUsers(ctx, q)
			if err != nil {
				return resource.ListResult[backend.User]{}, err
			}
			return resource.ListResult[backend.User]{Data: list.Data, Count: list.Count}, nil
		})

	s.items = resource.NewQuerier("items", resource.DefaultTTL,
		func(ctx context.Context, token, q string) (resource.ListResult[backend.Item], error) {
			list, err := backendClient.WithToken(token).ListItems(ctx, q)
			if err != nil {
				return resource.ListResult[backend.Item]{}, err
			}
			return resource.ListResult[backend.Item]{Data: list.Data, Count: list.Count}, nil
		})

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}
