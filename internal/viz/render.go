package viz

import (
	"github.com/san-kum/plexus/internal/engine"
)

// Visual tuning. These shape the look, not the behavior; anything here
// is fair to retune as long as factors stay bounded.
const (
	// Depth band cutoffs for the near/mid/far palette entries.
	nearCutoff = 0.33
	midCutoff  = 0.66

	// minLinkAlpha drops connections too faint to draw; below
	// dimLinkAlpha they use the dim link color.
	minLinkAlpha = 0.05
	dimLinkAlpha = 0.30

	// thickWidth is the derived width above which a link gets a second
	// parallel line; Braille has no true stroke width.
	thickWidth = 1.6

	// glowRadius is the pointer distance within which node glow grows;
	// accentBoost switches the node to the accent color.
	glowRadius  = 200.0
	accentBoost = 0.7
)

// Renderer paints engine frames onto a Canvas in two passes:
// connections first, then nodes, both in the frame's far-to-near order.
type Renderer struct {
	Theme Theme
}

func NewRenderer(theme Theme) *Renderer {
	return &Renderer{Theme: theme}
}

// Render paints one frame. It is a no-op on a nil canvas or frame: the
// field is decoration and must never take the host down with it.
func (r *Renderer) Render(c *Canvas, f *engine.Frame) {
	if c == nil || f == nil || f.Width <= 0 || f.Height <= 0 {
		return
	}
	c.Clear()

	pw, ph := c.PixelSize()
	kx := float64(pw) / f.Width
	ky := float64(ph) / f.Height

	for _, l := range f.Links {
		if l.Alpha < minLinkAlpha {
			continue
		}
		a, b := f.Points[l.A], f.Points[l.B]

		ink := InkLink
		switch {
		case l.Accent:
			ink = InkAccent
		case l.Alpha < dimLinkAlpha:
			ink = InkLinkDim
		}

		x0, y0 := int(a.X*kx), int(a.Y*ky)
		x1, y1 := int(b.X*kx), int(b.Y*ky)
		c.DrawLine(x0, y0, x1, y1, ink)
		if l.Width > thickWidth {
			c.DrawLine(x0, y0+1, x1, y1+1, ink)
		}
	}

	for _, p := range f.Points {
		n := &f.Nodes[p.Index]

		boost := 0.0
		if d := p.Screen().Dist(f.Pointer); d < glowRadius {
			boost = 1 - d/glowRadius
		}

		// Glow: radius grows with pulse, pointer proximity, and
		// nearness (inverse depth via the perspective scale).
		glow := n.Radius * p.Scale * (1 + 0.6*n.Pulse() + 1.2*boost)

		ink := r.depthInk(p.Depth)
		if boost > accentBoost {
			ink = InkAccent
		}

		cx, cy := int(p.X*kx), int(p.Y*ky)
		c.FillCircle(cx, cy, int(glow*kx), ink)
		c.Set(cx, cy, ink)
	}
}

func (r *Renderer) depthInk(depth float64) Ink {
	switch {
	case depth < nearCutoff:
		return InkNear
	case depth < midCutoff:
		return InkMid
	}
	return InkFar
}
