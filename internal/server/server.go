package server

import (
	"log/slog"
	"net/http"

	"github.com/claude/classgrid/internal/board"
	"github.com/claude/classgrid/internal/presets"
	"github.com/claude/classgrid/internal/storage"
	"github.com/go-chi/chi/v5"
	"tailscale.com/client/local"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db      *storage.DB
	presets *presets.Store
	ctrl    *board.Controller
	log     *slog.Logger
	apiKey  string
	lc      *local.Client
	router  chi.Router
}

// New creates a new Server with all routes configured. presets may be nil,
// which disables the preset endpoints.
func New(db *storage.DB, ps *presets.Store, ctrl *board.Controller, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:      db,
		presets: ps,
		ctrl:    ctrl,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetTailscale attaches the tsnet local client used to resolve caller
// identity. Without it, every request carries the local dev user.
func (s *Server) SetTailscale(lc *local.Client) {
	s.lc = lc
}

// SetMCP mounts an MCP transport handler at /mcp.
func (s *Server) SetMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	s.router.Use(s.tailscaleIdentity)

	s.router.Get("/api/v1/me", s.handleMe)

	// Catalog endpoints (Postgres-backed listing with SQL-side filters)
	s.router.Get("/api/v1/classes", s.handleListClasses)
	s.router.Get("/api/v1/classes/{id}", s.handleGetClass)
	s.router.Get("/api/v1/levels", s.handleLevels)
	s.router.Get("/api/v1/categories", s.handleCategories)

	// Live board: the filter engine's input and output surfaces
	s.router.Get("/api/v1/board", s.handleBoardState)
	s.router.Post("/api/v1/board/search", s.handleBoardSearch)
	s.router.Post("/api/v1/board/level", s.handleBoardLevel)
	s.router.Post("/api/v1/board/category", s.handleBoardCategory)

	// Debug surface (API key required)
	s.router.Route("/api/v1/board/debug", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/refilter", s.handleBoardRefilter)
		r.Post("/reanimate", s.handleBoardReanimate)
		r.Post("/refresh", s.handleBoardRefresh)
	})

	// Saved filter presets
	s.router.Get("/api/v1/presets", s.handleListPresets)
	s.router.Post("/api/v1/presets", s.handleSavePreset)
	s.router.Post("/api/v1/presets/{name}/apply", s.handleApplyPreset)
	s.router.Delete("/api/v1/presets/{name}", s.handleDeletePreset)
}
