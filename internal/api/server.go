package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/docsite/internal/config"
	"github.com/dgallion1/docsite/internal/docs"
	"github.com/dgallion1/docsite/internal/search"
	"github.com/dgallion1/docsite/internal/site"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Server is the HTTP server for the documentation site.
type Server struct {
	router   chi.Router
	resolver *docs.Resolver
	search   *search.Index // nil when search is disabled
	views    *site.Views
	log      *slog.Logger
	cfg      config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(resolver *docs.Resolver, idx *search.Index, views *site.Views, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		resolver: resolver,
		search:   idx,
		views:    views,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	r.Get("/health", s.handleHealth)
	r.Handle("/static/*", http.StripPrefix("/static/", site.Static()))

	// Pages.
	r.Get("/", s.handleHome)
	r.Get("/docs", s.handleDocsIndex)
	r.Get("/docs/", s.handleDocsIndex)
	r.Get("/docs/{category}/{name}", s.handleDoc)
	r.Get("/export/docx/{category}/{name}", s.handleExportDocx)

	// JSON endpoints.
	r.Get("/api/nav", s.handleNav)
	r.Get("/api/search", s.handleSearch)

	r.NotFound(notFound)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// notFound is the single failure response for pages.
func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("Not Found"))
}
