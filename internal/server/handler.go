package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/pamelaitzel/copo-koch/internal/config"
	"github.com/pamelaitzel/copo-koch/internal/params"
	"github.com/pamelaitzel/copo-koch/internal/render"
)

//go:embed templates/index.html
var templateFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Handler routes requests to the index page and the plot endpoint.
type Handler struct {
	cfg    *config.Config
	logger *slog.Logger
	mux    *http.ServeMux
}

// NewHandler creates the request handler for the given configuration.
func NewHandler(cfg *config.Config, logger *slog.Logger) *Handler {
	h := &Handler{
		cfg:    cfg,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	h.mux.HandleFunc("GET /{$}", h.handleIndex)
	h.mux.HandleFunc("GET /plot", h.handlePlot)
	h.mux.HandleFunc("GET /healthz", h.handleHealth)
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// indexData is the payload for the index template.
type indexData struct {
	Params      params.Params
	PlotURL     string
	DownloadPNG string
	DownloadSVG string
	MaxOrder    int
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := params.FromQueryWith(r.URL.Query(), h.cfg.FigureParams())

	data := indexData{
		Params:      p,
		PlotURL:     plotURL(p, render.FormatPNG, false),
		DownloadPNG: plotURL(p, render.FormatPNG, true),
		DownloadSVG: plotURL(p, render.FormatSVG, true),
		MaxOrder:    params.MaxOrder,
	}

	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, data); err != nil {
		h.logger.Error("render index", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (h *Handler) handlePlot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p := params.FromQueryWith(q, h.cfg.FigureParams())
	format := render.Format(strings.ToLower(q.Get("fmt")))

	// Render fully before writing headers so a failure can still
	// produce a clean error response.
	var buf bytes.Buffer
	opts := render.Options{Width: h.cfg.Image.Width, Height: h.cfg.Image.Height}
	if err := render.Render(&buf, p, format, opts); err != nil {
		h.logger.Error("render figure", "figure", p.Figure, "order", p.Order, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", render.ContentType(format))
	if q.Get("download") != "" {
		disposition := fmt.Sprintf("attachment; filename=%q", render.Filename(p, format))
		w.Header().Set("Content-Disposition", disposition)
	}
	_, _ = buf.WriteTo(w)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// plotURL builds a /plot link for the given parameters.
func plotURL(p params.Params, format string, download bool) string {
	q := p.Query()
	q.Set("fmt", format)
	if download {
		q.Set("download", "1")
	}
	return "/plot?" + q.Encode()
}
