package render

import (
	"fmt"
	"io"

	"github.com/pamelaitzel/copo-koch/internal/params"
)

// Output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Default canvas size in pixels.
const (
	DefaultWidth  = 1050
	DefaultHeight = 900
)

// Options controls the output canvas.
type Options struct {
	Width  int
	Height int
}

func (o Options) withDefaults() Options {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}

// Format normalizes a requested output format; anything other than
// "svg" renders as PNG.
func Format(s string) string {
	if s == FormatSVG {
		return FormatSVG
	}
	return FormatPNG
}

// ContentType returns the MIME type for an output format.
func ContentType(format string) string {
	if format == FormatSVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Filename returns the suggested download name for a rendered figure,
// e.g. "koch_snow_o4.svg".
func Filename(p params.Params, format string) string {
	return fmt.Sprintf("koch_%s_o%d.%s", p.Figure, p.Order, Format(format))
}

// Render generates the fractal described by p and writes it to w in
// the given format.
func Render(w io.Writer, p params.Params, format string, opts Options) error {
	fig, err := Build(p)
	if err != nil {
		return err
	}
	opts = opts.withDefaults()

	if Format(format) == FormatSVG {
		return writeSVG(w, fig, p.LineWidth, opts.Width, opts.Height)
	}
	return writePNG(w, fig, p.LineWidth, opts.Width, opts.Height)
}
