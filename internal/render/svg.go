package render

import (
	"fmt"
	"io"
	"strings"
)

// writeSVG emits the figure as a standalone SVG document. Coordinates
// are pre-transformed into pixel space so the output matches the PNG
// rendering exactly.
func writeSVG(w io.Writer, fig *Figure, lineWidth float64, width, height int) error {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, Background))

	tr := fig.View.Fit(width, height)
	for i, side := range fig.Sides {
		sb.WriteString(`<polyline points="`)
		for j, p := range side {
			if j > 0 {
				sb.WriteByte(' ')
			}
			x, y := tr.Apply(p)
			sb.WriteString(fmt.Sprintf("%.2f,%.2f", x, y))
		}
		sb.WriteString(fmt.Sprintf(`" fill="none" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round"/>
`, fig.Colors[i%len(fig.Colors)], lineWidth))
	}

	sb.WriteString("</svg>\n")

	_, err := io.WriteString(w, sb.String())
	return err
}
