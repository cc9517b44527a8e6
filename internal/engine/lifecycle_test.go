package engine_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/plexus/internal/engine"
)

// fakeScheduler queues callbacks so specs can fire ticks by hand.
type fakeScheduler struct {
	pending   []func()
	scheduled int
	canceled  int
}

func (s *fakeScheduler) Schedule(fn func()) func() {
	s.scheduled++
	s.pending = append(s.pending, fn)
	return func() { s.canceled++ }
}

func (s *fakeScheduler) fire() {
	if len(s.pending) == 0 {
		return
	}
	fn := s.pending[0]
	s.pending = s.pending[1:]
	fn()
}

var _ = Describe("Engine lifecycle", func() {
	var eng *engine.Engine

	BeforeEach(func() {
		eng = engine.New(engine.Options{})
	})

	It("starts uninitialized and produces no frames", func() {
		Expect(eng.Phase()).To(Equal(engine.Uninitialized))
		Expect(eng.Step()).To(BeNil())
	})

	It("waits in Sizing while dimensions are zero", func() {
		eng.Mount(0, 0)
		Expect(eng.Phase()).To(Equal(engine.Sizing))
		Expect(eng.Step()).To(BeNil())

		eng.Resize(800, 600)
		Expect(eng.Phase()).To(Equal(engine.Active))
		Expect(eng.Step()).NotTo(BeNil())
	})

	It("returns to Sizing when resized to zero", func() {
		eng.Mount(800, 600)
		eng.Resize(0, 300)
		Expect(eng.Phase()).To(Equal(engine.Sizing))
		Expect(eng.Step()).To(BeNil())
	})

	It("regenerates the whole node set on resize", func() {
		eng.Mount(800, 600)
		before := eng.Step()

		eng.Resize(400, 300)
		after := eng.Step()

		Expect(after.Nodes).To(HaveLen(len(before.Nodes)))
		Expect(after.Nodes[0].Origin).NotTo(Equal(before.Nodes[0].Origin))
	})

	It("keeps Dispose terminal and idempotent", func() {
		eng.Mount(800, 600)
		eng.Dispose()
		Expect(eng.Phase()).To(Equal(engine.Disposed))

		eng.Dispose()
		eng.Resize(800, 600)
		eng.Mount(800, 600)
		Expect(eng.Phase()).To(Equal(engine.Disposed))
		Expect(eng.Step()).To(BeNil())
		Expect(eng.StaticFrame()).To(BeNil())
	})
})

var _ = Describe("Loop", func() {
	var (
		eng    *engine.Engine
		sched  *fakeScheduler
		draws  int
		render engine.RenderFunc
	)

	BeforeEach(func() {
		sched = &fakeScheduler{}
		draws = 0
		render = func(*engine.Frame) { draws++ }
	})

	Context("with reduced motion", func() {
		BeforeEach(func() {
			eng = engine.New(engine.Options{ReducedMotion: true})
			eng.Mount(800, 600)
		})

		It("renders exactly one static frame and never schedules", func() {
			loop := engine.NewLoop(eng, sched, render)
			loop.Start()
			Expect(draws).To(Equal(1))
			Expect(sched.scheduled).To(BeZero())
		})
	})

	Context("animating", func() {
		BeforeEach(func() {
			eng = engine.New(engine.Options{})
			eng.Mount(800, 600)
		})

		It("draws one frame per fired tick and reschedules", func() {
			loop := engine.NewLoop(eng, sched, render)
			loop.Start()
			Expect(sched.scheduled).To(Equal(1))

			sched.fire()
			sched.fire()
			sched.fire()
			Expect(draws).To(Equal(3))
			Expect(sched.scheduled).To(Equal(4))
		})

		It("cancels the pending tick synchronously on Stop", func() {
			loop := engine.NewLoop(eng, sched, render)
			loop.Start()
			loop.Stop()
			Expect(eng.Phase()).To(Equal(engine.Disposed))
			Expect(sched.canceled).To(Equal(1))
		})

		It("draws nothing from a stale tick after Stop", func() {
			loop := engine.NewLoop(eng, sched, render)
			loop.Start()
			sched.fire()
			Expect(draws).To(Equal(1))

			loop.Stop()

			// The scheduler misbehaves and fires the tick anyway.
			sched.fire()
			sched.fire()
			Expect(draws).To(Equal(1))
			Expect(sched.scheduled).To(Equal(2))
		})
	})
})
