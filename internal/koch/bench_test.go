package koch

import (
	"fmt"
	"testing"

	"github.com/pamelaitzel/copo-koch/internal/geom"
)

func BenchmarkCurve(b *testing.B) {
	for _, order := range []int{2, 4, 7} {
		b.Run(fmt.Sprintf("order_%d", order), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := Curve(order, 1.0, geom.Pt(0, 0), 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkSnowflake(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := Snowflake(5, 1.0); err != nil {
			b.Fatal(err)
		}
	}
}
