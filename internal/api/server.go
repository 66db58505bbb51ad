package api

import (
	"log/slog"
	"net/http"

	"github.com/dgallion1/mdsplit/internal/config"
	"github.com/dgallion1/mdsplit/internal/doctree"
	"github.com/dgallion1/mdsplit/internal/tokenizer"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// CounterFunc builds a token counter for a model name.
type CounterFunc func(model string) (doctree.Counter, error)

// Server is the HTTP API server for mdsplit.
type Server struct {
	router     chi.Router
	log        *slog.Logger
	cfg        config.Config
	newCounter CounterFunc
}

// NewServer creates and configures the HTTP server. A nil counter falls
// back to the tiktoken-backed tokenizer.
func NewServer(log *slog.Logger, cfg config.Config, newCounter CounterFunc) *Server {
	if newCounter == nil {
		newCounter = func(model string) (doctree.Counter, error) {
			return tokenizer.ForModel(model)
		}
	}
	s := &Server{
		log:        log,
		cfg:        cfg,
		newCounter: newCounter,
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

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Splitting endpoints; authenticated only when a key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/split", s.handleSplit)
		r.Post("/api/split/file", s.handleSplitFile)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
