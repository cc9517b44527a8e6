package field

import "math"

const (
	// Seed is the fixed generator seed. The field is decorative, so
	// there is no value in varying it; a fixed seed makes every mount
	// at the same dimensions reproduce the same constellation.
	Seed = 42

	// Spread is the fraction of the viewport the initial scatter covers,
	// symmetric about the center.
	Spread = 0.85

	// DepthRange bounds the initial z scatter to [-DepthRange, DepthRange].
	DepthRange = 150.0
)

// lcg is a linear congruential generator (Numerical Recipes constants).
// math/rand is deliberately not used: the sequence must be stable across
// Go releases so that generated fields stay bit-identical.
type lcg struct {
	state uint32
}

func newLCG(seed uint32) *lcg { return &lcg{state: seed} }

// next returns the next value in [0, 1).
func (l *lcg) next() float64 {
	l.state = l.state*1664525 + 1013904223
	return float64(l.state) / 4294967296.0
}

// Generate produces the initial node set for a viewport of the given
// size. Identical (count, width, height) always produce identical node
// sets. Positions are centered on the viewport middle; z is scattered
// across [-DepthRange, DepthRange].
func Generate(count int, width, height float64) []Node {
	g := newLCG(Seed)
	nodes := make([]Node, count)
	for i := range nodes {
		p := Vec3{
			X: (g.next() - 0.5) * width * Spread,
			Y: (g.next() - 0.5) * height * Spread,
			Z: (g.next() - 0.5) * 2 * DepthRange,
		}
		nodes[i] = Node{
			Pos:        p,
			Origin:     p,
			Radius:     1.5 + g.next()*2.0,
			Phase:      g.next() * 2 * math.Pi,
			PhaseSpeed: 0.01 + g.next()*0.02,
		}
	}
	return nodes
}
