// Package server renders the trip form and results pages. Each render
// runs the whole pipeline synchronously within the request; there is
// no shared mutable state across requests.
package server

import (
	"context"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/voyagerlab/tripplanner/config"
	"github.com/voyagerlab/tripplanner/planner"
)

const _readHeaderTimeout = 10 * time.Second

type Server struct {
	planner    *planner.Planner
	httpServer *http.Server
	form       *template.Template
	results    *template.Template
	logger     *slog.Logger
}

func New(cfg config.Config, p *planner.Planner) *Server {
	s := &Server{
		planner: p,
		form:    template.Must(template.New("form").Parse(_formHTML)),
		results: template.Must(template.New("results").Parse(_resultsHTML)),
		logger:  slog.Default(),
	}

	router := mux.NewRouter()
	router.Use(s.requestID)
	router.HandleFunc("/", s.handleForm).Methods(http.MethodGet)
	router.HandleFunc("/plan", s.handlePlan).Methods(http.MethodPost)

	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: _readHeaderTimeout,
	}
	return s
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	s.logger.Info("http server listening", "address", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		s.logger.Info("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
