package export

import (
	"strings"
	"testing"

	"github.com/san-kum/plexus/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	c := viz.NewCanvas(8, 4)
	c.Set(3, 3, viz.InkNear)
	c.DrawLine(0, 0, 15, 15, viz.InkLink)

	svg := CanvasToSVG(c, viz.ThemeMidnight, 4.0)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing xml header")
	}
	if !strings.Contains(svg, "<circle") {
		t.Error("no dots emitted for a lit canvas")
	}
	if !strings.Contains(svg, string(viz.ThemeMidnight.Link)) {
		t.Error("link color not used as fill")
	}
	if !strings.HasSuffix(strings.TrimSpace(svg), "</svg>") {
		t.Error("unterminated svg")
	}
}

func TestCanvasToSVGEmpty(t *testing.T) {
	if CanvasToSVG(nil, viz.ThemeMidnight, 4.0) != "" {
		t.Error("nil canvas should yield empty string")
	}

	svg := CanvasToSVG(viz.NewCanvas(8, 4), viz.ThemeMidnight, 4.0)
	if strings.Contains(svg, "<circle") {
		t.Error("empty canvas emitted dots")
	}
}

func TestCanvasToSVGAnsiFallback(t *testing.T) {
	c := viz.NewCanvas(4, 2)
	c.Set(0, 0, viz.InkNear)

	// The mono theme uses ANSI palette indices, which have no SVG form.
	svg := CanvasToSVG(c, viz.ThemeMono, 4.0)
	if !strings.Contains(svg, "#cccccc") {
		t.Error("ANSI color did not fall back to grey")
	}
}
