package render

import (
	"fmt"
	"io"

	"github.com/gogpu/gg"
)

// writePNG rasterizes the figure onto a software canvas and encodes it
// as PNG.
func writePNG(w io.Writer, fig *Figure, lineWidth float64, width, height int) error {
	dc := gg.NewContext(width, height)
	defer dc.Close()

	dc.SetHexColor(Background)
	dc.DrawRectangle(0, 0, float64(width), float64(height))
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill background: %w", err)
	}

	dc.SetLineWidth(lineWidth)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)

	tr := fig.View.Fit(width, height)
	for i, side := range fig.Sides {
		dc.ClearPath()
		for j, p := range side {
			x, y := tr.Apply(p)
			if j == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.SetHexColor(fig.Colors[i%len(fig.Colors)])
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke side %d: %w", i, err)
		}
	}

	return dc.EncodePNG(w)
}
