// Package render turns validated figure parameters into PNG or SVG
// images of the requested Koch fractal.
package render

import (
	"fmt"

	"github.com/pamelaitzel/copo-koch/internal/geom"
	"github.com/pamelaitzel/copo-koch/internal/koch"
	"github.com/pamelaitzel/copo-koch/internal/params"
)

// Background is the canvas color behind every figure.
const Background = "#0b1020"

// snowAccent is the fixed color of the snowflake's third side.
const snowAccent = "#a7f3d0"

// Viewport is an axis-aligned world-coordinate window.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (v Viewport) width() float64  { return v.MaxX - v.MinX }
func (v Viewport) height() float64 { return v.MaxY - v.MinY }

// Figure is a ready-to-draw fractal: its polyline sides, a stroke color
// per side, and the world window framing it.
type Figure struct {
	Sides  [][]geom.Point
	Colors []string
	View   Viewport
}

// Per-figure world windows, chosen so each shape sits with a small
// margin at unit side length.
var views = map[string]Viewport{
	params.FigCurve: {MinX: -0.55, MaxX: 0.55, MinY: -0.15, MaxY: 0.35},
	params.FigTwo:   {MinX: -0.65, MaxX: 0.65, MinY: -0.15, MaxY: 0.7},
	params.FigSnow:  {MinX: -0.7, MaxX: 0.7, MinY: -0.15, MaxY: 0.95},
}

// Build generates the fractal geometry for p at unit side length.
func Build(p params.Params) (*Figure, error) {
	switch p.Figure {
	case params.FigTwo:
		left, right, err := koch.TwoSides(p.Order, 1.0)
		if err != nil {
			return nil, fmt.Errorf("build two-sided figure: %w", err)
		}
		return &Figure{
			Sides:  [][]geom.Point{left, right},
			Colors: []string{p.Color1, p.Color2},
			View:   views[params.FigTwo],
		}, nil

	case params.FigSnow:
		sides, err := koch.Snowflake(p.Order, 1.0)
		if err != nil {
			return nil, fmt.Errorf("build snowflake figure: %w", err)
		}
		return &Figure{
			Sides:  [][]geom.Point{sides[0], sides[1], sides[2]},
			Colors: []string{p.Color1, p.Color2, snowAccent},
			View:   views[params.FigSnow],
		}, nil

	default:
		pts, err := koch.Curve(p.Order, 1.0, geom.Pt(-0.5, 0), 0)
		if err != nil {
			return nil, fmt.Errorf("build curve figure: %w", err)
		}
		return &Figure{
			Sides:  [][]geom.Point{pts},
			Colors: []string{p.Color1},
			View:   views[params.FigCurve],
		}, nil
	}
}

// Transform maps world coordinates to pixel coordinates, preserving
// aspect ratio and flipping the y axis so world-up is screen-up.
type Transform struct {
	scale      float64
	offX, offY float64
	view       Viewport
	height     float64
}

func (v Viewport) Fit(width, height int) Transform {
	w, h := float64(width), float64(height)
	scale := min(w/v.width(), h/v.height())
	return Transform{
		scale:  scale,
		offX:   (w - v.width()*scale) / 2.0,
		offY:   (h - v.height()*scale) / 2.0,
		view:   v,
		height: h,
	}
}

func (t Transform) Apply(p geom.Point) (x, y float64) {
	x = t.offX + (p.X-t.view.MinX)*t.scale
	y = t.height - t.offY - (p.Y-t.view.MinY)*t.scale
	return x, y
}
