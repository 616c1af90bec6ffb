package params

import (
	"math"
	"net/url"
	"testing"
)

func TestClampOrder(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  int
		want int
	}{
		{"valid", "3", 4, 3},
		{"zero", "0", 4, 0},
		{"max", "7", 4, 7},
		{"above max", "12", 4, 7},
		{"negative", "-3", 4, 0},
		{"empty", "", 4, 4},
		{"garbage", "abc", 4, 4},
		{"float", "3.5", 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampOrder(tt.in, tt.def); got != tt.want {
				t.Errorf("ClampOrder(%q, %d) = %d, want %d", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestClampLineWidth(t *testing.T) {
	tests := []struct {
		name string
		in   string
		def  float64
		want float64
	}{
		{"valid", "1.8", 1.0, 1.8},
		{"below min", "0.01", 1.0, 0.1},
		{"above max", "50", 1.0, 10.0},
		{"empty", "", 1.0, 1.0},
		{"garbage", "wide", 1.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampLineWidth(tt.in, tt.def)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ClampLineWidth(%q, %v) = %v, want %v", tt.in, tt.def, got, tt.want)
			}
		})
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short form", "#fff", "#fff"},
		{"long form", "#67e8f9", "#67e8f9"},
		{"uppercase", "#ABCDEF", "#ABCDEF"},
		{"missing hash", "67e8f9", "#000"},
		{"wrong length", "#ffff", "#000"},
		{"non-hex digits", "#gggggg", "#000"},
		{"empty", "", "#000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HexColor(tt.in, "#000"); got != tt.want {
				t.Errorf("HexColor(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClampFigure(t *testing.T) {
	for _, fig := range []string{FigCurve, FigTwo, FigSnow} {
		if got := ClampFigure(fig); got != fig {
			t.Errorf("ClampFigure(%q) = %q", fig, got)
		}
	}
	if got := ClampFigure("spiral"); got != DefaultFigure {
		t.Errorf("ClampFigure(spiral) = %q, want %q", got, DefaultFigure)
	}
}

func TestFromQueryDefaults(t *testing.T) {
	p := FromQuery(url.Values{})
	if p.Figure != DefaultFigure || p.Order != DefaultOrder {
		t.Errorf("unexpected defaults: %+v", p)
	}
	if p.Color1 != DefaultColor1 || p.Color2 != DefaultColor2 {
		t.Errorf("unexpected default colors: %+v", p)
	}
	if math.Abs(p.LineWidth-DefaultLineWidth) > 1e-12 {
		t.Errorf("LineWidth = %v, want %v", p.LineWidth, DefaultLineWidth)
	}
}

func TestFromQueryUnparsableLineWidth(t *testing.T) {
	q := url.Values{}
	q.Set("lw", "thick")
	p := FromQuery(q)
	if math.Abs(p.LineWidth-1.0) > 1e-12 {
		t.Errorf("LineWidth = %v, want fallback 1.0", p.LineWidth)
	}
}

func TestFromQueryRoundTrip(t *testing.T) {
	q := url.Values{}
	q.Set("fig", "snow")
	q.Set("order", "6")
	q.Set("lw", "2.5")
	q.Set("c1", "#ff0000")
	q.Set("c2", "#00ff00")

	p := FromQuery(q)
	if p.Figure != FigSnow || p.Order != 6 || p.LineWidth != 2.5 {
		t.Errorf("unexpected params: %+v", p)
	}

	back := FromQuery(p.Query())
	if back != p {
		t.Errorf("round trip changed params: %+v vs %+v", back, p)
	}
}
