// Package params validates and clamps user-supplied figure parameters.
//
// Validation never fails: malformed values are silently replaced by
// defaults and out-of-range values are clamped, so downstream code
// only ever sees a well-formed parameter set.
package params

import (
	"net/url"
	"strconv"
)

// Figure identifiers accepted by the renderer.
const (
	FigCurve = "curve"
	FigTwo   = "two"
	FigSnow  = "snow"
)

// Clamping bounds. MaxOrder caps the point count at 4^7+1 = 16385 per
// side; line widths outside [MinLineWidth, MaxLineWidth] render either
// invisibly or as solid blobs.
const (
	MinOrder     = 0
	MaxOrder     = 7
	MinLineWidth = 0.1
	MaxLineWidth = 10.0
)

// Defaults applied when a parameter is absent or unparsable.
const (
	DefaultFigure    = FigCurve
	DefaultOrder     = 4
	DefaultLineWidth = 1.8
	DefaultColor1    = "#67e8f9"
	DefaultColor2    = "#f0abfc"
)

// Params is a fully validated figure request.
type Params struct {
	Figure    string
	Order     int
	LineWidth float64
	Color1    string
	Color2    string
}

// Defaults returns the parameter set used when nothing is specified.
func Defaults() Params {
	return Params{
		Figure:    DefaultFigure,
		Order:     DefaultOrder,
		LineWidth: DefaultLineWidth,
		Color1:    DefaultColor1,
		Color2:    DefaultColor2,
	}
}

// FromQuery builds a validated Params from URL query values, applying
// the package defaults for anything missing or malformed. An absent
// line width gets DefaultLineWidth; a present but unparsable one falls
// back to 1.0.
func FromQuery(q url.Values) Params {
	return FromQueryWith(q, Defaults())
}

// FromQueryWith is FromQuery with a caller-supplied default set, used
// when the service configuration overrides the built-in defaults.
func FromQueryWith(q url.Values, def Params) Params {
	fig := def.Figure
	if s := q.Get("fig"); s != "" {
		fig = ClampFigure(s)
	}
	lw := def.LineWidth
	if s := q.Get("lw"); s != "" {
		lw = ClampLineWidth(s, 1.0)
	}
	return Params{
		Figure:    fig,
		Order:     ClampOrder(q.Get("order"), def.Order),
		LineWidth: lw,
		Color1:    HexColor(q.Get("c1"), def.Color1),
		Color2:    HexColor(q.Get("c2"), def.Color2),
	}
}

// Query encodes p back into URL query values, the inverse of FromQuery.
func (p Params) Query() url.Values {
	q := url.Values{}
	q.Set("fig", p.Figure)
	q.Set("order", strconv.Itoa(p.Order))
	q.Set("lw", strconv.FormatFloat(p.LineWidth, 'g', -1, 64))
	q.Set("c1", p.Color1)
	q.Set("c2", p.Color2)
	return q
}

// ClampFigure returns s if it names a known figure, else DefaultFigure.
func ClampFigure(s string) string {
	switch s {
	case FigCurve, FigTwo, FigSnow:
		return s
	}
	return DefaultFigure
}

// ClampOrder parses s as an integer clamped to [MinOrder, MaxOrder].
// Unparsable input yields def.
func ClampOrder(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return min(max(n, MinOrder), MaxOrder)
}

// ClampLineWidth parses s as a float clamped to
// [MinLineWidth, MaxLineWidth]. Unparsable input yields def.
func ClampLineWidth(s string, def float64) float64 {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return min(max(x, MinLineWidth), MaxLineWidth)
}

// HexColor returns s if it is a #RGB or #RRGGBB hex color, else def.
func HexColor(s, def string) string {
	if len(s) != 4 && len(s) != 7 {
		return def
	}
	if s[0] != '#' {
		return def
	}
	for _, r := range s[1:] {
		if !isHexDigit(r) {
			return def
		}
	}
	return s
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
