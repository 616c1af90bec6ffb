package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/pamelaitzel/copo-koch/internal/config"
	"github.com/pamelaitzel/copo-koch/internal/geom"
	"github.com/pamelaitzel/copo-koch/internal/koch"
	"github.com/pamelaitzel/copo-koch/internal/params"
	"github.com/pamelaitzel/copo-koch/internal/render"
	"github.com/pamelaitzel/copo-koch/internal/server"
	"github.com/pamelaitzel/copo-koch/internal/tui"
)

var (
	configFile string
	addr       string
	// Figure parameters shared by render and the default TUI mode.
	figure    string
	order     int
	lineWidth float64
	color1    string
	color2    string
	// Render output.
	format  string
	outFile string
	imgW    int
	imgH    int
	// Stats sweep.
	maxOrder int
)

// main registers the copo commands and runs the root command, which
// defaults to the interactive terminal explorer.
func main() {
	rootCmd := &cobra.Command{
		Use:   "copo",
		Short: "koch fractal generator and image server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(figureParams())
		},
	}

	rootCmd.PersistentFlags().StringVar(&figure, "fig", params.DefaultFigure, "figure (curve|two|snow)")
	rootCmd.PersistentFlags().IntVar(&order, "order", params.DefaultOrder, "recursion order")
	rootCmd.PersistentFlags().Float64Var(&lineWidth, "lw", params.DefaultLineWidth, "line width")
	rootCmd.PersistentFlags().StringVar(&color1, "c1", params.DefaultColor1, "primary color")
	rootCmd.PersistentFlags().StringVar(&color2, "c2", params.DefaultColor2, "secondary color")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve fractal images over http",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render a fractal image to a file",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVar(&format, "fmt", render.FormatPNG, "output format (png|svg)")
	renderCmd.Flags().StringVar(&outFile, "out", "", "output file (default koch_<fig>_o<order>.<ext>)")
	renderCmd.Flags().IntVar(&imgW, "width", render.DefaultWidth, "image width in pixels")
	renderCmd.Flags().IntVar(&imgH, "height", render.DefaultHeight, "image height in pixels")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "show point counts and generation times per order",
		RunE:  runStats,
	}
	statsCmd.Flags().IntVar(&maxOrder, "max-order", params.MaxOrder, "highest order to sweep")

	rootCmd.AddCommand(serveCmd, renderCmd, statsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// figureParams funnels the CLI flags through the same validation used
// for HTTP query parameters.
func figureParams() params.Params {
	q := url.Values{}
	q.Set("fig", figure)
	q.Set("order", strconv.Itoa(order))
	q.Set("lw", strconv.FormatFloat(lineWidth, 'g', -1, 64))
	q.Set("c1", color1)
	q.Set("c2", color2)
	return params.FromQuery(q)
}

func runServe(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if addr != "" {
		cfg.Addr = addr
	}

	srv := server.New(cfg.Addr, server.NewRouter(cfg, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return srv.Shutdown(shutdownCtx)
}

func runRender(cmd *cobra.Command, args []string) error {
	p := figureParams()
	fm := render.Format(format)

	name := outFile
	if name == "" {
		name = render.Filename(p, fm)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := render.Options{Width: imgW, Height: imgH}
	if err := render.Render(f, p, fm, opts); err != nil {
		return fmt.Errorf("render %s: %w", p.Figure, err)
	}

	fmt.Printf("wrote %s (%s order %d)\n", name, p.Figure, p.Order)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	if maxOrder < 0 || maxOrder > koch.MaxOrder {
		return fmt.Errorf("max-order must be in [0, %d]", koch.MaxOrder)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "order\tpoints\ttime")

	times := make([]float64, 0, maxOrder+1)
	for o := 0; o <= maxOrder; o++ {
		start := time.Now()
		pts, err := koch.Curve(o, 1.0, geom.Pt(0, 0), 0)
		if err != nil {
			return err
		}
		elapsed := time.Since(start)
		times = append(times, float64(elapsed.Microseconds()))
		fmt.Fprintf(w, "%d\t%d\t%s\n", o, len(pts), elapsed)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	graph := asciigraph.Plot(times,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("curve generation time (µs) by order"),
	)
	fmt.Println(graph)
	return nil
}
