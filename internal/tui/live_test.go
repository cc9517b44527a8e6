package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/engine"
)

func TestModelSizingThenActive(t *testing.T) {
	m := newModel(config.DefaultConfig())

	if got := m.View(); !strings.Contains(got, "waiting") {
		t.Errorf("unsized model should report waiting, got %q", got)
	}

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.eng.Phase() != engine.Active {
		t.Fatalf("engine phase after resize = %v, want active", m.eng.Phase())
	}

	m.Update(tickMsg(time.Now()))
	if m.lastFrame == nil {
		t.Fatal("tick produced no frame")
	}
	if !strings.Contains(m.View(), "points") {
		t.Error("view missing HUD")
	}
}

func TestModelZeroSizeDefers(t *testing.T) {
	m := newModel(config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 0, Height: 0})

	if m.eng.Phase() == engine.Active {
		t.Error("engine active with zero-sized surface")
	}
	m.Update(tickMsg(time.Now()))
	if m.lastFrame != nil {
		t.Error("frame produced while sizing")
	}
}

func TestModelMouseDrivesPointer(t *testing.T) {
	m := newModel(config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	// Stay under the idle threshold so the motion is not treated as a
	// pointer leave.
	m.Update(tea.MouseMsg{X: 40, Y: 10})
	for i := 0; i < 60; i++ {
		m.Update(tickMsg(time.Now()))
	}

	want := m.lastFrame.Pointer
	if want.X < 0 || want.Y < 0 {
		t.Errorf("pointer did not approach the mouse position: %+v", want)
	}
}

func TestModelQuitDisposes(t *testing.T) {
	m := newModel(config.DefaultConfig())
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit key returned no command")
	}
	if m.eng.Phase() != engine.Disposed {
		t.Error("quit did not dispose the engine")
	}

	// A stale tick after dispose draws nothing.
	before := m.lastFrame
	m.Update(tickMsg(time.Now()))
	if m.lastFrame != before {
		t.Error("stale tick produced a frame after dispose")
	}
}
