package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	v1 "github.com/gosuda/littleknowledge/internal/api/v1"
	"github.com/gosuda/littleknowledge/internal/config"
	"github.com/gosuda/littleknowledge/internal/server/middleware"
)

// PageRenderer renders the site's HTML pages. *render.Renderer satisfies it.
type PageRenderer interface {
	Render(w io.Writer, path string) error
	RenderNotFound(w io.Writer) error
	Lang() string
}

// Server is the HTTP server that wires all application routes and middleware.
type Server struct {
	router     chi.Router
	httpServer *http.Server
	pages      PageRenderer
}

// New creates a Server with all routes wired.
// assets may be nil, in which case /static/* answers 404. ctx bounds the
// rate limiter's background cleanup.
func New(ctx context.Context, cfg *config.Config, src v1.ContentSource, pages PageRenderer, assets fs.FS) *Server {
	router := chi.NewRouter()

	// Global middleware stack.
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(middleware.RequestLogger)
	router.Use(chimw.Recoverer)
	router.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.Server.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}).Handler)
	router.Use(middleware.RateLimitByIP(ctx, cfg.Server.RateLimitRPS, cfg.Server.RateLimitBurst))

	s := &Server{
		router: router,
		pages:  pages,
		httpServer: &http.Server{
			Addr:         cfg.Server.Addr,
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}

	// Mount the read-only content API on /api/v1.
	router.Route("/api/v1", func(r chi.Router) {
		apiConfig := huma.DefaultConfig("Little Knowledge API", "1.0.0")
		apiConfig.Servers = []*huma.Server{
			{URL: "/api/v1"},
		}
		api := humachi.New(r, apiConfig)
		v1.RegisterContentRoutes(api, src)
	})

	// Health check.
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Pages and assets live under the base path so a local server mirrors
	// the GitHub Pages project-page layout.
	site := chi.NewRouter()
	site.NotFound(s.notFound)
	registerPageRoutes(site, s.page)
	registerStaticRoutes(site, assets)

	if base := cfg.Site.BasePath; base != "" {
		router.Mount(base, site)
		router.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, base+"/", http.StatusFound)
		})
		log.Info().Str("base_path", base).Msg("site mounted under base path")
	} else {
		router.Mount("/", site)
	}

	router.NotFound(s.notFound)

	return s
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// page renders the page for the route path relative to the base path.
func (s *Server) page(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Content-Language", s.pages.Lang())
		if err := s.pages.Render(w, path); err != nil {
			log.Error().Err(err).Str("path", path).Msg("render page")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}

func (s *Server) notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", s.pages.Lang())
	w.WriteHeader(http.StatusNotFound)
	if err := s.pages.RenderNotFound(w); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("render 404 page")
	}
}

// Start serves the site preview on the configured address and blocks until
// Shutdown is called. A closed server is not an error.
func (s *Server) Start(_ context.Context) error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server.Start: %w", err)
	}
	return nil
}

// Shutdown lets in-flight page and asset requests finish, bounded by ctx.
// The serve command calls it on SIGINT or SIGTERM.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server.Shutdown: %w", err)
	}
	return nil
}
