// Package camera rotates and perspective-projects field nodes into
// screen space, and depth-orders the result for painter's-algorithm
// drawing.
package camera

import (
	"math"

	"github.com/san-kum/plexus/internal/field"
)

const (
	// DefaultFOV and DefaultDistance set the perspective strength.
	// Larger FOV flattens the projection; smaller exaggerates it.
	DefaultFOV      = 300.0
	DefaultDistance = 150.0

	// minDivisor excludes points at or behind the camera plane. A
	// divisor this small would blow up the perspective divide, so the
	// point is dropped from the frame instead.
	minDivisor = 1e-6
)

// Camera holds the accumulated rotation angles and perspective
// parameters for one mounted field.
type Camera struct {
	Yaw   float64
	Pitch float64

	FOV      float64
	Distance float64
}

func New() *Camera {
	return &Camera{FOV: DefaultFOV, Distance: DefaultDistance}
}

// Rotate advances the tumble. Pitch is expected to move at a fraction
// of yaw's rate so the field tumbles rather than spinning flat.
func (c *Camera) Rotate(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch += dPitch
}

// Point is the per-frame projection of exactly one node. It is derived
// fresh every frame and never persisted.
type Point struct {
	Index int

	// X, Y are screen coordinates; Scale is the perspective factor.
	X, Y  float64
	Scale float64

	// Depth is normalized to [0, 1]: 0 nearest, 1 farthest.
	Depth float64
}

// Screen returns the point's screen position as a Vec2.
func (p Point) Screen() field.Vec2 { return field.Vec2{X: p.X, Y: p.Y} }

// ProjectPoint transforms a single world position. The second return is
// false when the point falls at or behind the camera plane; such points
// are excluded from the frame rather than producing invalid coordinates.
func (c *Camera) ProjectPoint(p field.Vec3, width, height float64) (Point, bool) {
	x, y, z := rotate(p, c.Yaw, c.Pitch)

	divisor := c.FOV + z + c.Distance
	if divisor < minDivisor {
		return Point{}, false
	}
	scale := c.FOV / divisor

	return Point{
		X:     x*scale + width/2,
		Y:     y*scale + height/2,
		Scale: scale,
		Depth: clamp01((z + c.Distance) / (2 * c.Distance)),
	}, true
}

// Project transforms every node for one frame, skipping points behind
// the camera. The returned slice is in node order; use SortByDepth
// before drawing.
func (c *Camera) Project(nodes []field.Node, width, height float64) []Point {
	points := make([]Point, 0, len(nodes))
	for i := range nodes {
		p, ok := c.ProjectPoint(nodes[i].Pos, width, height)
		if !ok {
			continue
		}
		p.Index = i
		points = append(points, p)
	}
	return points
}

// rotate applies yaw around the vertical axis, then pitch, matching the
// tumble order of the field: (x, z) first, then (y, z).
func rotate(p field.Vec3, yaw, pitch float64) (x, y, z float64) {
	sy, cy := sincos(yaw)
	x = p.X*cy - p.Z*sy
	z = p.X*sy + p.Z*cy

	sp, cp := sincos(pitch)
	y = p.Y*cp - z*sp
	z = p.Y*sp + z*cp
	return x, y, z
}

func sincos(a float64) (sin, cos float64) {
	return math.Sin(a), math.Cos(a)
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
