package field

import "math"

// Vec2 is a point in screen space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the planar distance between two screen points.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Length() }

// Vec3 is a point in the field's world space, centered on the viewport.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Node is the only persistent entity in the field. Pos is mutated once
// per frame by the force integrator and by nothing else; Origin is fixed
// at creation and acts as the spring-back attractor.
type Node struct {
	Pos    Vec3
	Origin Vec3

	// Radius is the base draw radius before perspective scaling.
	Radius float64

	// Phase and PhaseSpeed drive the per-node breathing pulse.
	// Phase advances by PhaseSpeed every frame, independent of
	// wall-clock time.
	Phase      float64
	PhaseSpeed float64
}

// Pulse returns the current breathing factor in [0, 1].
func (n *Node) Pulse() float64 {
	return 0.5 + 0.5*math.Sin(n.Phase)
}

// Advance moves the breathing phase forward one frame.
func (n *Node) Advance() {
	n.Phase += n.PhaseSpeed
	if n.Phase > 2*math.Pi {
		n.Phase -= 2 * math.Pi
	}
}

// Displacement returns the distance between the node's current position
// and its origin.
func (n *Node) Displacement() float64 {
	return n.Pos.Sub(n.Origin).Length()
}
