// Package apiserver exposes SNIC's core over HTTP JSON: decomposition,
// matchup streaming, ranking, and closed-form counting, the Go-native
// analogue of a foreign-language binding collaborator for the core.
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/snic/snic/pkg/utils"
)

const tracerName = "github.com/snic/snic/internal/apiserver"

// Server is the HTTP front end over the SNIC core packages.
type Server struct {
	addr   string
	logger utils.Logger
	server *http.Server
}

// NewServer builds a Server listening on addr.
func NewServer(addr string, logger utils.Logger) *Server {
	return &Server{addr: addr, logger: logger}
}

// Start registers routes and blocks serving HTTP until the server stops or
// fails.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/api/v1/decompose", s.handleDecompose)
	mux.HandleFunc("/api/v1/matchups", s.handleMatchups)
	mux.HandleFunc("/api/v1/rank", s.handleRank)
	mux.HandleFunc("/api/v1/count", s.handleCount)

	s.server = &http.Server{
		Addr:         s.addr,
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	s.logger.Info("Starting SNIC API server at http://localhost%s", s.addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, `{"status":"ok"}`)
}

func startSpan(r *http.Request, name string) (context.Context, func()) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), name)
	return ctx, func() { span.End() }
}
