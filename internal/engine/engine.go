// Package engine owns the lifecycle and per-frame pipeline of one
// mounted field: node generation on mount and resize, rotation
// accumulation, pointer smoothing, force integration, and assembly of
// the projected frame handed to renderers.
//
// All mutable state lives in an explicit Engine value, one per mounted
// instance; instances never share node slices. Everything is
// single-threaded: one Step is one synchronous pass, and frame N+1 only
// ever reads state fully written by frame N.
package engine

import (
	"github.com/san-kum/plexus/internal/camera"
	"github.com/san-kum/plexus/internal/field"
	"github.com/san-kum/plexus/internal/forces"
	"github.com/san-kum/plexus/internal/mesh"
)

// Phase is the lifecycle state of a mounted engine.
type Phase int

const (
	// Uninitialized: constructed, not yet mounted.
	Uninitialized Phase = iota
	// Sizing: mounted but waiting for nonzero dimensions; no frames
	// are produced.
	Sizing
	// Active: looping, one frame per Step.
	Active
	// Disposed: terminal. Every operation is a no-op from here on.
	Disposed
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Sizing:
		return "sizing"
	case Active:
		return "active"
	case Disposed:
		return "disposed"
	}
	return "unknown"
}

// Options are the documented tuning constants. Zero fields fall back to
// the package defaults.
type Options struct {
	// NodeCount trades visual density against the O(n²) connection
	// pass; the defaults are sized for ~90 nodes.
	NodeCount int

	// ConnectionDistance is the screen distance below which points link.
	ConnectionDistance float64

	// RotationSpeed is yaw radians per frame; pitch advances at
	// PitchRatio times that rate, giving the slow tumble.
	RotationSpeed float64
	PitchRatio    float64

	// FieldOfView and CameraDistance set perspective strength.
	FieldOfView    float64
	CameraDistance float64

	// RepulsionRadius and RepulsionForce shape the pointer interaction;
	// SpringCoefficient sets how fast displaced nodes settle.
	RepulsionRadius   float64
	RepulsionForce    float64
	SpringCoefficient float64

	// PointerLerp is the smoothing factor for raw pointer input.
	PointerLerp float64

	// ReducedMotion selects the static single-frame mode.
	ReducedMotion bool
}

const (
	DefaultNodeCount     = 90
	DefaultRotationSpeed = 0.0015
	DefaultPitchRatio    = 0.4
)

func DefaultOptions() Options {
	return Options{
		NodeCount:          DefaultNodeCount,
		ConnectionDistance: mesh.DefaultThreshold,
		RotationSpeed:      DefaultRotationSpeed,
		PitchRatio:         DefaultPitchRatio,
		FieldOfView:        camera.DefaultFOV,
		CameraDistance:     camera.DefaultDistance,
		RepulsionRadius:    forces.DefaultRadius,
		RepulsionForce:     forces.DefaultForce,
		SpringCoefficient:  forces.DefaultSpring,
		PointerLerp:        forces.DefaultLerp,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.NodeCount <= 0 {
		o.NodeCount = d.NodeCount
	}
	if o.ConnectionDistance <= 0 {
		o.ConnectionDistance = d.ConnectionDistance
	}
	if o.RotationSpeed == 0 {
		o.RotationSpeed = d.RotationSpeed
	}
	if o.PitchRatio == 0 {
		o.PitchRatio = d.PitchRatio
	}
	if o.FieldOfView <= 0 {
		o.FieldOfView = d.FieldOfView
	}
	if o.CameraDistance <= 0 {
		o.CameraDistance = d.CameraDistance
	}
	if o.RepulsionRadius <= 0 {
		o.RepulsionRadius = d.RepulsionRadius
	}
	if o.RepulsionForce <= 0 {
		o.RepulsionForce = d.RepulsionForce
	}
	if o.SpringCoefficient <= 0 {
		o.SpringCoefficient = d.SpringCoefficient
	}
	if o.PointerLerp <= 0 {
		o.PointerLerp = d.PointerLerp
	}
	return o
}

// Frame is everything a renderer needs for one paint: the depth-sorted
// projected points, the derived connection set, and read-only access to
// the node slice for radius and pulse. Frames are ephemeral; renderers
// must not hold on to one past the tick that produced it.
type Frame struct {
	Width, Height float64

	Nodes  []field.Node
	Points []camera.Point
	Links  []mesh.Link

	// Pointer is the smoothed pointer position in screen space.
	Pointer field.Vec2

	// Clock counts frames since mount; it drives the mesh shimmer.
	Clock float64
}

// Engine is the lifecycle manager for one mounted field.
type Engine struct {
	opts Options

	phase         Phase
	width, height float64

	cam     *camera.Camera
	integ   *forces.Integrator
	pointer *forces.Pointer
	nodes   []field.Node
	clock   float64
}

func New(opts Options) *Engine {
	opts = opts.withDefaults()
	cam := camera.New()
	cam.FOV = opts.FieldOfView
	cam.Distance = opts.CameraDistance

	ptr := forces.NewPointer()
	ptr.Lerp = opts.PointerLerp

	return &Engine{
		opts: opts,
		cam:  cam,
		integ: &forces.Integrator{
			Radius: opts.RepulsionRadius,
			Force:  opts.RepulsionForce,
			Spring: opts.SpringCoefficient,
		},
		pointer: ptr,
	}
}

// Phase reports the current lifecycle state.
func (e *Engine) Phase() Phase { return e.phase }

// Reduced reports whether the engine is in reduced-motion mode. Hosts
// must render one static frame and never schedule ticks when this is set.
func (e *Engine) Reduced() bool { return e.opts.ReducedMotion }

// Options returns the resolved tuning constants.
func (e *Engine) Options() Options { return e.opts }

// Mount attaches the engine to a surface of the given size. Zero
// dimensions leave it in Sizing until a Resize delivers a real size.
func (e *Engine) Mount(width, height float64) {
	if e.phase != Uninitialized {
		return
	}
	e.phase = Sizing
	e.Resize(width, height)
}

// Resize regenerates the whole node set for the new dimensions. The old
// set is discarded wholesale; no frame ever observes a half-regenerated
// field. Zero or negative dimensions return the engine to Sizing.
func (e *Engine) Resize(width, height float64) {
	if e.phase == Uninitialized || e.phase == Disposed {
		return
	}
	if width <= 0 || height <= 0 {
		e.phase = Sizing
		e.nodes = nil
		return
	}
	e.width, e.height = width, height
	e.nodes = field.Generate(e.opts.NodeCount, width, height)
	e.phase = Active
}

// PointerMove feeds a raw pointer position in surface coordinates.
func (e *Engine) PointerMove(x, y float64) {
	if e.phase == Disposed {
		return
	}
	e.pointer.Move(x, y)
}

// PointerLeave marks the pointer gone; nodes release gradually.
func (e *Engine) PointerLeave() {
	if e.phase == Disposed {
		return
	}
	e.pointer.Leave()
}

// Step advances the simulation one frame and returns the frame to
// draw. It returns nil unless the engine is Active, so a stale
// scheduled tick arriving after Dispose draws nothing.
func (e *Engine) Step() *Frame {
	if e.phase != Active {
		return nil
	}

	e.cam.Rotate(e.opts.RotationSpeed, e.opts.RotationSpeed*e.opts.PitchRatio)
	e.pointer.Update()
	e.integ.Apply(e.nodes, e.cam, e.pointer.Pos(), e.width, e.height)
	for i := range e.nodes {
		e.nodes[i].Advance()
	}
	e.clock++

	return e.frame()
}

// StaticFrame projects the current state without advancing it. This is
// the reduced-motion path: one call, one frame, no animation.
func (e *Engine) StaticFrame() *Frame {
	if e.phase != Active {
		return nil
	}
	return e.frame()
}

func (e *Engine) frame() *Frame {
	points := e.cam.Project(e.nodes, e.width, e.height)
	camera.SortByDepth(points)
	links := mesh.Build(points, e.clock, e.pointer.Pos(), mesh.Params{
		Threshold:   e.opts.ConnectionDistance,
		BoostRadius: mesh.DefaultBoostRadius,
	})
	return &Frame{
		Width:   e.width,
		Height:  e.height,
		Nodes:   e.nodes,
		Points:  points,
		Links:   links,
		Pointer: e.pointer.Pos(),
		Clock:   e.clock,
	}
}

// Dispose terminates the engine. It is synchronous, idempotent, and
// valid from any state; after it returns no Step produces a frame.
func (e *Engine) Dispose() {
	e.phase = Disposed
	e.nodes = nil
}
