package forces

import (
	"math"

	"github.com/san-kum/plexus/internal/camera"
	"github.com/san-kum/plexus/internal/field"
)

const (
	// DefaultRadius is the screen distance within which the pointer
	// repulses nodes; DefaultForce caps the per-frame displacement.
	DefaultRadius = 110.0
	DefaultForce  = 4.5

	// DefaultSpring is the fraction of the origin offset recovered per
	// frame. Pure geometric decay: larger settles faster, and any value
	// in (0, 1) cannot overshoot.
	DefaultSpring = 0.02
)

// Integrator owns the per-frame position update for every node. It is
// the only writer of Node.Pos.
type Integrator struct {
	Radius float64
	Force  float64
	Spring float64
}

func NewIntegrator() *Integrator {
	return &Integrator{Radius: DefaultRadius, Force: DefaultForce, Spring: DefaultSpring}
}

// Apply advances all nodes one frame: repulsion away from the smoothed
// pointer where it is near, then spring-back toward origin everywhere.
//
// Repulsion acts on x/y only, never z, and is screen-space: each node's
// current position is projected with the frame's camera and compared
// against the pointer. The displacement magnitude is
// (1 - d/radius) * force, bounded by force with no singularity at d=0.
func (it *Integrator) Apply(nodes []field.Node, cam *camera.Camera, pointer field.Vec2, width, height float64) {
	for i := range nodes {
		n := &nodes[i]

		if sp, ok := cam.ProjectPoint(n.Pos, width, height); ok {
			dx := sp.X - pointer.X
			dy := sp.Y - pointer.Y
			dist := math.Hypot(dx, dy)
			if dist < it.Radius {
				mag := (1 - dist/it.Radius) * it.Force
				if dist > 1e-9 {
					n.Pos.X += dx / dist * mag
					n.Pos.Y += dy / dist * mag
				} else {
					// Pointer dead-center on the node: pick a fixed
					// direction rather than dividing by zero.
					n.Pos.X += mag
				}
			}
		}

		n.Pos.X += (n.Origin.X - n.Pos.X) * it.Spring
		n.Pos.Y += (n.Origin.Y - n.Pos.Y) * it.Spring
		n.Pos.Z += (n.Origin.Z - n.Pos.Z) * it.Spring
	}
}
