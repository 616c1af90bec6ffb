package geom

import (
	"math"
	"testing"
)

func TestAdvance(t *testing.T) {
	tests := []struct {
		name     string
		start    Point
		dist     float64
		angle    float64
		expected Point
	}{
		{"east", Pt(0, 0), 1.0, 0.0, Pt(1, 0)},
		{"north", Pt(0, 0), 2.0, 90.0, Pt(0, 2)},
		{"west", Pt(1, 1), 1.0, 180.0, Pt(0, 1)},
		{"sixty degrees", Pt(0, 0), 1.0, 60.0, Pt(0.5, math.Sqrt(3)/2)},
		{"negative sixty", Pt(0, 0), 1.0, -60.0, Pt(0.5, -math.Sqrt(3)/2)},
		{"full turn", Pt(3, -2), 1.0, 360.0, Pt(4, -2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.Advance(tt.dist, tt.angle)
			if !got.Near(tt.expected, 1e-9) {
				t.Errorf("Advance(%v, %v) from %v = %v, want %v",
					tt.dist, tt.angle, tt.start, got, tt.expected)
			}
		})
	}
}

func TestAdvanceDoesNotMutate(t *testing.T) {
	p := Pt(1, 2)
	_ = p.Advance(5, 45)
	if p != Pt(1, 2) {
		t.Errorf("Advance mutated receiver: %v", p)
	}
}

func TestDistance(t *testing.T) {
	if d := Pt(0, 0).Distance(Pt(3, 4)); math.Abs(d-5.0) > 1e-12 {
		t.Errorf("Distance = %v, want 5", d)
	}
}
