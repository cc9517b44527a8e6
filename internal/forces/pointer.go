// Package forces applies the field's pseudo-physics: pointer-proximity
// repulsion and per-frame spring-back toward each node's origin. The
// model is a position-only blend with no stored velocity, so displaced
// nodes settle without oscillation or overshoot.
package forces

import (
	"math"

	"github.com/san-kum/plexus/internal/field"
)

// DefaultLerp is the per-frame fraction by which the smoothed pointer
// approaches the raw input. Smaller values add inertia.
const DefaultLerp = 0.12

// FarAway is where the pointer lives when there is no pointer: off
// screen by enough that no repulsion or boost radius can reach it.
var FarAway = field.Vec2{X: -1e4, Y: -1e4}

// Pointer smooths raw pointer input across frames. Absence of input is
// represented as a far-away position, never as an error.
type Pointer struct {
	Lerp float64

	raw      field.Vec2
	smoothed field.Vec2
}

func NewPointer() *Pointer {
	return &Pointer{Lerp: DefaultLerp, raw: FarAway, smoothed: FarAway}
}

// Move records a raw pointer position. Non-finite coordinates are
// ignored; malformed input must never propagate into node state.
func (p *Pointer) Move(x, y float64) {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return
	}
	p.raw = field.Vec2{X: x, Y: y}
}

// Leave sends the pointer far away; the smoothed position drifts after
// it, so repulsed nodes release gradually rather than snapping.
func (p *Pointer) Leave() {
	p.raw = FarAway
}

// Update advances the exponential smoothing by one frame.
func (p *Pointer) Update() {
	p.smoothed.X += (p.raw.X - p.smoothed.X) * p.Lerp
	p.smoothed.Y += (p.raw.Y - p.smoothed.Y) * p.Lerp
}

// Pos returns the smoothed position used by repulsion and the mesh
// proximity boost.
func (p *Pointer) Pos() field.Vec2 { return p.smoothed }
