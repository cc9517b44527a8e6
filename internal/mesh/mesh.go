// Package mesh derives the per-frame connection set: which projected
// point pairs are linked, and with what opacity, width, and color.
package mesh

import (
	"math"

	"github.com/san-kum/plexus/internal/camera"
	"github.com/san-kum/plexus/internal/field"
)

const (
	// DefaultThreshold is the screen distance below which two points
	// connect. Raising it thickens the mesh and raises the O(n²) cost
	// per frame.
	DefaultThreshold = 120.0

	// DefaultBoostRadius is the pointer distance within which a
	// connection brightens and may switch to the accent color.
	DefaultBoostRadius = 160.0

	// Shimmer tuning. Bounded and periodic; values are visual taste,
	// not contract, beyond keeping the factor inside (0, 1].
	shimmerFreq  = 0.05
	shimmerDepth = 0.15
	pairPhase    = 0.35

	// accentCutoff is the boost level at which a connection takes the
	// accent color.
	accentCutoff = 0.55
)

// Params configures one frame's mesh pass.
type Params struct {
	Threshold   float64
	BoostRadius float64
}

func DefaultParams() Params {
	return Params{Threshold: DefaultThreshold, BoostRadius: DefaultBoostRadius}
}

// Link is an ephemeral connection between two projected points,
// identified by their positions in the frame's point slice.
type Link struct {
	A, B   int
	Alpha  float64
	Width  float64
	Accent bool
}

// Linked reports whether two projected points are close enough to
// connect. The predicate is symmetric in its arguments.
func Linked(a, b camera.Point, threshold float64) bool {
	return a.Screen().Dist(b.Screen()) < threshold
}

// Build computes the connection set over all unordered point pairs.
// clock is the frame counter driving the shimmer; pointer is the
// smoothed pointer position in screen space.
//
// The pass is O(n²) and sized for fields of around a hundred points
// (≈4,000 pair tests per frame at 90). Anything materially larger
// needs a spatial grid in place of the double loop, with the same
// threshold semantics.
func Build(points []camera.Point, clock float64, pointer field.Vec2, p Params) []Link {
	links := make([]Link, 0, len(points)*2)

	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			a, b := points[i], points[j]
			dist := a.Screen().Dist(b.Screen())
			if dist >= p.Threshold {
				continue
			}

			fade := 1 - dist/p.Threshold
			depthFade := 1 - 0.65*(a.Depth+b.Depth)/2
			shimmer := 1 - shimmerDepth +
				shimmerDepth*math.Sin(clock*shimmerFreq+float64(a.Index+b.Index)*pairPhase)

			mid := field.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
			boost := 0.0
			if d := mid.Dist(pointer); d < p.BoostRadius {
				boost = 1 - d/p.BoostRadius
			}

			alpha := clamp01(fade * depthFade * shimmer * (0.35 + 0.65*boost))
			width := 0.4 + 1.1*fade + 0.8*boost

			links = append(links, Link{
				A:      i,
				B:      j,
				Alpha:  alpha,
				Width:  width,
				Accent: boost > accentCutoff,
			})
		}
	}
	return links
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
