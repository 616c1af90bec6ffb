package server

import (
	"log/slog"
	"net/http"

	"github.com/pamelaitzel/copo-koch/internal/config"
)

// NewRouter builds the full request pipeline: the figure handler
// wrapped in the middleware chain.
func NewRouter(cfg *config.Config, logger *slog.Logger) http.Handler {
	h := NewHandler(cfg, logger)
	return Chain(h,
		Recover(logger),
		RequestLog(logger),
	)
}
