// Package export serializes a rendered canvas to SVG, one circle per
// lit Braille dot, so a frame of the field can be captured to a file.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/plexus/internal/viz"
)

// CanvasToSVG converts a canvas to SVG. scale is the rendered size of
// one Braille dot. A nil canvas yields the empty string.
func CanvasToSVG(canvas *viz.Canvas, theme viz.Theme, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a14"/>
`, width, height, width, height))

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}
	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r <= 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			fill := inkHex(theme, canvas.Ink[row][col])

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					cx := baseX + float64(dx)*scale + scale/2
					cy := baseY + float64(dy)*scale + scale/2
					sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// inkHex resolves an ink class to a hex fill. Themes using ANSI palette
// indices fall back to a neutral grey; SVG has no terminal palette.
func inkHex(theme viz.Theme, ink viz.Ink) string {
	c := string(theme.ColorFor(ink))
	if strings.HasPrefix(c, "#") {
		return c
	}
	return "#cccccc"
}
