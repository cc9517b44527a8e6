package engine_test

import (
	"testing"

	"github.com/san-kum/plexus/internal/engine"
	"github.com/san-kum/plexus/internal/field"
)

func pointAt(x, y float64) field.Vec2 { return field.Vec2{X: x, Y: y} }

func TestStepProducesSortedFrame(t *testing.T) {
	eng := engine.New(engine.Options{})
	eng.Mount(800, 600)

	f := eng.Step()
	if f == nil {
		t.Fatal("no frame from active engine")
	}
	if len(f.Points) == 0 {
		t.Fatal("frame has no projected points")
	}
	for i := 1; i < len(f.Points); i++ {
		if f.Points[i].Depth > f.Points[i-1].Depth {
			t.Fatalf("frame points not depth-sorted at %d", i)
		}
	}
	n := len(f.Points)
	if max := n * (n - 1) / 2; len(f.Links) > max {
		t.Fatalf("%d links exceeds %d pairs", len(f.Links), max)
	}
}

func TestStepAdvancesClockAndPhases(t *testing.T) {
	eng := engine.New(engine.Options{})
	eng.Mount(800, 600)

	a := eng.Step()
	phase0 := a.Nodes[0].Phase
	b := eng.Step()

	if b.Clock != a.Clock+1 {
		t.Errorf("clock did not advance: %f -> %f", a.Clock, b.Clock)
	}
	if b.Nodes[0].Phase == phase0 {
		t.Error("node phase did not advance between frames")
	}
}

func TestStaticFrameDoesNotAdvance(t *testing.T) {
	eng := engine.New(engine.Options{})
	eng.Mount(800, 600)

	a := eng.StaticFrame()
	b := eng.StaticFrame()
	if a == nil || b == nil {
		t.Fatal("no static frame from active engine")
	}
	if a.Clock != b.Clock {
		t.Error("StaticFrame advanced the clock")
	}
	if a.Nodes[0].Phase != b.Nodes[0].Phase {
		t.Error("StaticFrame advanced node phases")
	}
}

func TestInstancesDoNotShareNodes(t *testing.T) {
	a := engine.New(engine.Options{})
	b := engine.New(engine.Options{})
	a.Mount(800, 600)
	b.Mount(800, 600)

	p0 := a.Step().Nodes[0].Pos

	// Drive instance b hard with a pointer; instance a must not move.
	b.PointerMove(400, 300)
	for i := 0; i < 50; i++ {
		b.Step()
	}

	if got := a.StaticFrame().Nodes[0].Pos; got != p0 {
		t.Error("stepping one instance mutated another's nodes")
	}
}

func TestPointerPlumbing(t *testing.T) {
	eng := engine.New(engine.Options{})
	eng.Mount(800, 600)

	eng.PointerMove(400, 300)
	for i := 0; i < 100; i++ {
		eng.Step()
	}
	f := eng.StaticFrame()
	if f.Pointer.Dist(pointAt(400, 300)) > 1 {
		t.Errorf("smoothed pointer did not approach raw input: %+v", f.Pointer)
	}

	eng.PointerLeave()
	for i := 0; i < 300; i++ {
		eng.Step()
	}
	f = eng.StaticFrame()
	if f.Pointer.Dist(pointAt(400, 300)) < 1000 {
		t.Errorf("pointer leave did not move the smoothed pointer away: %+v", f.Pointer)
	}
}

func TestOptionsDefaults(t *testing.T) {
	eng := engine.New(engine.Options{})
	o := eng.Options()
	if o.NodeCount != engine.DefaultNodeCount {
		t.Errorf("NodeCount default = %d", o.NodeCount)
	}
	if o.ConnectionDistance <= 0 || o.RotationSpeed == 0 || o.SpringCoefficient <= 0 {
		t.Errorf("zero options not defaulted: %+v", o)
	}
}
