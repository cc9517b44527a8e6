package viz

import (
	"strings"
	"testing"

	"github.com/san-kum/plexus/internal/engine"
)

func TestCanvasSetAndClear(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0, InkNear)
	if c.Grid[0][0] == 0x2800 {
		t.Error("Set did not light a dot")
	}
	if c.Ink[0][0] != InkNear {
		t.Error("Set did not record ink")
	}

	c.Clear()
	if c.Grid[0][0] != 0x2800 || c.Ink[0][0] != InkNone {
		t.Error("Clear did not reset the cell")
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(10, 5)

	// None of these may panic or write anywhere.
	c.Set(-1, 0, InkNear)
	c.Set(0, -1, InkNear)
	c.Set(20, 0, InkNear)
	c.Set(0, 20, InkNear)
	c.DrawLine(-50, -50, 100, 100, InkLink)
	c.FillCircle(0, 0, 8, InkMid)
	c.FillCircle(19, 19, 3, InkMid)
}

func TestCanvasDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(2, 2, 15, 10, InkLink)

	lit := func(x, y int) bool {
		return c.Grid[y/4][x/2]&pixelMap[y%4][x%2] != 0
	}
	if !lit(2, 2) || !lit(15, 10) {
		t.Error("line endpoints not set")
	}
}

func TestCanvasStringShape(t *testing.T) {
	c := NewCanvas(8, 3)
	s := c.String(ThemeMono)
	if got := strings.Count(s, "\n"); got != 2 {
		t.Errorf("expected 2 newlines for 3 rows, got %d", got)
	}
}

func TestRendererTwoPass(t *testing.T) {
	eng := engine.New(engine.Options{})
	c := NewCanvas(60, 20)
	pw, ph := c.PixelSize()
	eng.Mount(float64(pw), float64(ph))

	r := NewRenderer(ThemeMidnight)
	f := eng.Step()
	r.Render(c, f)

	lit := 0
	for row := range c.Grid {
		for col := range c.Grid[row] {
			if c.Grid[row][col] != 0x2800 {
				lit++
			}
		}
	}
	if lit == 0 {
		t.Error("rendering a full field lit no cells")
	}
}

func TestRendererNilSafe(t *testing.T) {
	r := NewRenderer(ThemeMidnight)
	r.Render(nil, nil)

	c := NewCanvas(10, 5)
	r.Render(c, nil)

	eng := engine.New(engine.Options{})
	eng.Mount(160, 160)
	r.Render(nil, eng.Step())
}

func TestGetThemeFallback(t *testing.T) {
	if GetTheme("nope").Name != "midnight" {
		t.Error("unknown theme should fall back to midnight")
	}
	if GetTheme("ember").Name != "ember" {
		t.Error("known theme not returned")
	}
}
