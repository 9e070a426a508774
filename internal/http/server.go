package http

import (
	"context"
	"net/http"
	"time"

	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

// Server wraps the gin engine in an http.Server so the process can drain
// in-flight requests before exiting.
type Server struct {
	httpServer *http.Server
	log        *logger.Logger
}

func NewServer(addr string, handler http.Handler, baseLog *logger.Logger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
		log: baseLog.With("server", "HTTP"),
	}
}

// Start blocks serving traffic until Shutdown is called or the listener
// fails. A clean shutdown returns nil.
func (s *Server) Start() error {
	s.log.Info("Server listening", "addr", s.httpServer.Addr)
	err := s.httpServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.httpServer.Shutdown(ctx)
}
