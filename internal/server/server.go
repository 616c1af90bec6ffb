// Package server exposes the fractal renderer over HTTP: an HTML index
// page and a /plot endpoint streaming PNG or SVG images.
package server

import (
	"context"
	"net/http"
	"time"
)

// Server wraps the standard library HTTP server with graceful
// shutdown.
type Server struct {
	httpServer *http.Server
}

// New creates a server listening on addr and serving handler.
func New(addr string, handler http.Handler) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// ListenAndServe starts the server and blocks until it stops.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
