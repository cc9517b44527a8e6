package engine

// Scheduler abstracts the host's per-frame callback so the step logic
// can be tested frame by frame without timers. Schedule requests one
// callback and returns a cancel func; the callback must not fire after
// cancel returns.
type Scheduler interface {
	Schedule(fn func()) (cancel func())
}

// RenderFunc paints one frame onto the host surface.
type RenderFunc func(*Frame)

// Loop connects an engine to a scheduler and a renderer. It enforces
// the two lifecycle contracts that do not belong in Step itself:
// reduced motion renders exactly one static frame and never invokes the
// scheduler, and Stop cancels the pending callback synchronously.
type Loop struct {
	eng    *Engine
	sched  Scheduler
	render RenderFunc
	cancel func()
}

func NewLoop(eng *Engine, sched Scheduler, render RenderFunc) *Loop {
	return &Loop{eng: eng, sched: sched, render: render}
}

// Start begins producing frames. In reduced-motion mode it draws the
// single static frame and returns without scheduling anything.
func (l *Loop) Start() {
	if l.eng.Reduced() {
		if f := l.eng.StaticFrame(); f != nil {
			l.render(f)
		}
		return
	}
	l.cancel = l.sched.Schedule(l.tick)
}

func (l *Loop) tick() {
	f := l.eng.Step()
	if f == nil {
		// Disposed or still sizing; a stale tick stops here without
		// touching the surface.
		return
	}
	l.render(f)
	l.cancel = l.sched.Schedule(l.tick)
}

// Stop disposes the engine and cancels any pending callback before
// returning.
func (l *Loop) Stop() {
	l.eng.Dispose()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
}
