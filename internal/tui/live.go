// Package tui hosts the field in a terminal: a bubbletea program drives
// engine ticks, feeds mouse motion in as pointer input, and paints each
// frame onto the Braille canvas.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/engine"
	"github.com/san-kum/plexus/internal/viz"
)

const (
	// hudRows is reserved terminal height below the canvas.
	hudRows = 4

	frameInterval = 16 * time.Millisecond

	// pointerIdleFrames of no mouse motion count as a pointer leave;
	// terminals deliver no explicit leave event.
	pointerIdleFrames = 90
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	eng      *engine.Engine
	canvas   *viz.Canvas
	renderer *viz.Renderer

	themeNames []string
	themeIdx   int

	paused    bool
	idle      int
	lastTick  time.Time
	frameMs   []float64
	lastFrame *engine.Frame
}

func newModel(cfg *config.Config) *model {
	names := []string{"midnight", "ember", "mono"}
	idx := 0
	for i, n := range names {
		if n == cfg.Theme {
			idx = i
		}
	}
	return &model{
		eng:        engine.New(cfg.Options()),
		renderer:   viz.NewRenderer(viz.GetTheme(cfg.Theme)),
		themeNames: names,
		themeIdx:   idx,
		frameMs:    make([]float64, 0, 60),
	}
}

func (m *model) Init() tea.Cmd { return tick() }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.eng.Dispose()
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		case "t":
			m.themeIdx = (m.themeIdx + 1) % len(m.themeNames)
			m.renderer.Theme = viz.GetTheme(m.themeNames[m.themeIdx])
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case tea.MouseMsg:
		if m.canvas != nil && msg.Y < m.canvas.Height {
			// Cell coordinates to the middle of the cell's sub-pixels.
			m.eng.PointerMove(float64(msg.X*2+1), float64(msg.Y*4+2))
			m.idle = 0
		} else {
			m.eng.PointerLeave()
		}

	case tickMsg:
		if m.eng.Phase() == engine.Disposed {
			return m, nil
		}
		if !m.paused {
			m.idle++
			if m.idle == pointerIdleFrames {
				m.eng.PointerLeave()
			}
			start := time.Now()
			if f := m.eng.Step(); f != nil {
				m.lastFrame = f
				m.renderer.Render(m.canvas, f)
			}
			m.recordFrame(time.Since(start))
		}
		return m, tick()
	}
	return m, nil
}

func (m *model) resize(width, height int) {
	rows := height - hudRows
	if width < 2 || rows < 2 {
		m.canvas = nil
		m.eng.Resize(0, 0)
		return
	}
	m.canvas = viz.NewCanvas(width, rows)
	pw, ph := m.canvas.PixelSize()
	if m.eng.Phase() == engine.Uninitialized {
		m.eng.Mount(float64(pw), float64(ph))
	} else {
		m.eng.Resize(float64(pw), float64(ph))
	}
}

func (m *model) recordFrame(d time.Duration) {
	if len(m.frameMs) == cap(m.frameMs) {
		m.frameMs = m.frameMs[1:]
	}
	m.frameMs = append(m.frameMs, float64(d.Microseconds())/1000.0)
}

func (m *model) View() string {
	if m.canvas == nil {
		return "waiting for terminal size..."
	}

	theme := viz.GetTheme(m.themeNames[m.themeIdx])
	var sb strings.Builder
	sb.WriteString(m.canvas.String(theme))
	sb.WriteByte('\n')
	sb.WriteString(m.hud(theme))
	return sb.String()
}

func (m *model) hud(theme viz.Theme) string {
	label, value := theme.HUDLabel, theme.HUDValue

	points, links := 0, 0
	if m.lastFrame != nil {
		points = len(m.lastFrame.Points)
		links = len(m.lastFrame.Links)
	}
	status := "running"
	if m.paused {
		status = "paused"
	}

	line := fmt.Sprintf("%s %s  %s %s  %s %s  %s %s  %s %s",
		label.Render("theme"), value.Render(m.themeNames[m.themeIdx]),
		label.Render("points"), value.Render(fmt.Sprintf("%d", points)),
		label.Render("links"), value.Render(fmt.Sprintf("%d", links)),
		label.Render("state"), value.Render(status),
		label.Render("keys"), value.Render("space pause · t theme · q quit"),
	)

	spark := ""
	if len(m.frameMs) >= 2 {
		spark = asciigraph.Plot(m.frameMs,
			asciigraph.Height(2),
			asciigraph.Precision(1),
			asciigraph.Caption("step ms"),
		)
	}
	return line + "\n" + spark
}

// Run hosts the animated field until the user quits. Reduced motion
// does not come through here: the CLI renders a single static frame
// instead of starting a program.
func Run(cfg *config.Config) error {
	p := tea.NewProgram(newModel(cfg),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err := p.Run()
	return err
}
