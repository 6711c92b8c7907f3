package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/config"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/auth"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/handlers"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/services"
	"github.com/laagvlieger/skills-integrate-mcp-with-copilot/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
}

// New constructs a Server with its in-memory stores, basic middleware and
// defaults. Both stores start fresh on every process start.
func New(cfg config.Config) *Server {
	userRepo := store.NewUserRepository()
	activityRepo := store.NewActivityRepository()

	userService := services.NewUserService(userRepo)
	activityService := services.NewActivityService(activityRepo)

	if cfg.AuthSecret == config.DefaultAuthSecret {
		slog.Warn("AUTH_SECRET_KEY not set, signing tokens with the insecure development default")
	}
	codec := auth.NewCodec(cfg.AuthSecret, cfg.TokenTTL)

	authMiddleware := handlers.RequireAuth(userService, codec)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
	})
	router.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	router.Route("/activities", func(r chi.Router) {
		handlers.ActivityRouter(r, activityService, authMiddleware)
	})
	router.Route("/auth", func(r chi.Router) {
		handlers.AuthRouter(r, userService, codec)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
