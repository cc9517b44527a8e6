// Package viz renders engine frames onto a Braille pixel canvas for
// terminal display, with a per-cell color layer driven by lipgloss
// themes.
package viz

import (
	"strings"
)

// Ink is the color class of a cell. Painter's-algorithm drawing means
// the last writer wins, so nearer geometry overwrites farther ink.
type Ink uint8

const (
	InkNone Ink = iota
	InkLinkDim
	InkLink
	InkFar
	InkMid
	InkNear
	InkAccent
)

// Braille patterns: 2x4 dots per cell.
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas is a Width x Height cell grid addressed in sub-pixel
// coordinates: (Width*2) x (Height*4) dots.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Ink           [][]Ink
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Ink:    make([][]Ink, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Ink[i] = make([]Ink, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
		}
	}
	return c
}

// PixelSize returns the canvas dimensions in sub-pixels; this is the
// coordinate space the engine is mounted at.
func (c *Canvas) PixelSize() (w, h int) {
	return c.Width * 2, c.Height * 4
}

// Set lights the dot at sub-pixel (x, y) with the given ink.
// Out-of-range coordinates are ignored.
func (c *Canvas) Set(x, y int, ink Ink) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
	c.Ink[row][col] = ink
}

// Clear resets every cell.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Ink[i][j] = InkNone
		}
	}
}

// DrawLine draws a Bresenham line in sub-pixel space.
func (c *Canvas) DrawLine(x0, y0, x1, y1 int, ink Ink) {
	dx, dy := absInt(x1-x0), absInt(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		c.Set(x0, y0, ink)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FillCircle fills a disc of the given sub-pixel radius.
func (c *Canvas) FillCircle(cx, cy, r int, ink Ink) {
	if r <= 0 {
		c.Set(cx, cy, ink)
		return
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				c.Set(cx+dx, cy+dy, ink)
			}
		}
	}
}

// String renders the canvas with the theme's color per cell. Cells
// sharing a row and ink are batched into one styled run.
func (c *Canvas) String(theme Theme) string {
	var sb strings.Builder
	for row := 0; row < c.Height; row++ {
		col := 0
		for col < c.Width {
			ink := c.Ink[row][col]
			end := col
			for end < c.Width && c.Ink[row][end] == ink {
				end++
			}
			run := string(c.Grid[row][col:end])
			if ink == InkNone {
				sb.WriteString(run)
			} else {
				sb.WriteString(theme.Style(ink).Render(run))
			}
			col = end
		}
		if row < c.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
