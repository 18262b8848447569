// Package server assembles the MainGen HTTP application: stores, services,
// handlers and the middleware chain.
package server

import (
	"fmt"
	"net/http"

	"github.com/forgo/maingen/internal/config"
	"github.com/forgo/maingen/internal/handler"
	"github.com/forgo/maingen/internal/middleware"
	"github.com/forgo/maingen/internal/service"
	"github.com/forgo/maingen/internal/store"
	"github.com/forgo/maingen/internal/web"
	"github.com/forgo/maingen/pkg/password"
)

// Server owns the in-memory state and the routed handler
type Server struct {
	Users  *store.UserStore
	Tokens *store.TokenStore
	Trees  *store.TreeStore

	handler     http.Handler
	rateLimiter *middleware.RateLimiter
}

// New wires a Server from configuration. Call Close when done.
func New(cfg *config.Config) (*Server, error) {
	hasher, err := password.NewHasher(password.Config{
		Cost:          cfg.Auth.BcryptCost,
		MaxConcurrent: cfg.Auth.MaxConcurrentHashes,
	})
	if err != nil {
		return nil, fmt.Errorf("password hasher: %w", err)
	}

	s := &Server{
		Users:  store.NewUserStore(hasher),
		Tokens: store.NewTokenStore(),
		Trees:  store.NewTreeStore(),
	}

	if cfg.RateLimit.Enabled {
		s.rateLimiter = middleware.NewRateLimiter(middleware.RateLimitConfig{
			Rate:   cfg.RateLimit.Rate,
			Window: cfg.RateLimit.Window,
			Burst:  cfg.RateLimit.Burst,
		})
	}

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:  s.Users,
		TokenRepo: s.Tokens,
	})
	treeService := service.NewTreeService(s.Trees)

	mux := http.NewServeMux()
	registerRoutes(mux, routes{
		auth: handler.NewAuthHandler(handler.AuthHandlerConfig{
			AuthService:       authService,
			MinPasswordLength: cfg.Auth.MinPasswordLength,
		}),
		trees:       handler.NewTreeHandler(treeService),
		requireAuth: middleware.Auth(authService),
		rateLimit:   s.authRateLimit(),
	})

	s.handler = middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	)
	return s, nil
}

// Handler returns the fully wrapped HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close stops background work
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

func (s *Server) authRateLimit() middleware.Middleware {
	if s.rateLimiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return middleware.RateLimit(s.rateLimiter)
}

type routes struct {
	auth        *handler.AuthHandler
	trees       *handler.TreeHandler
	requireAuth middleware.Middleware
	rateLimit   middleware.Middleware
}

func registerRoutes(mux *http.ServeMux, r routes) {
	authed := func(h http.HandlerFunc) http.Handler {
		return r.requireAuth(h)
	}

	// Browser client
	mux.HandleFunc("GET /{$}", web.Index)
	mux.Handle("GET /static/", middleware.Compress(web.Assets()))

	// Health
	mux.HandleFunc("GET /health", handler.Health)

	// Auth endpoints
	mux.Handle("POST /auth/signup", r.rateLimit(http.HandlerFunc(r.auth.Signup)))
	mux.Handle("POST /auth/signin", r.rateLimit(http.HandlerFunc(r.auth.Signin)))

	// Tree endpoints
	mux.Handle("POST /trees", authed(r.trees.CreateTree))
	mux.Handle("GET /trees/{tree_id}", authed(r.trees.GetTree))
	mux.Handle("POST /trees/{tree_id}/persons", authed(r.trees.AddPerson))
	mux.Handle("GET /trees/{tree_id}/persons", authed(r.trees.ListPersons))
	mux.Handle("POST /trees/{tree_id}/relationships", authed(r.trees.AddRelationship))
	mux.Handle("GET /trees/{tree_id}/relationships", authed(r.trees.ListRelationships))
}
