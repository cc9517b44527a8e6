// Package gui hosts the field in a raylib window: real pixels, real
// alpha, and the OS cursor as the pointer. It consumes the same engine
// frames as the terminal renderer.
package gui

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/engine"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720
	targetFPS     = 60
)

// Palette (deep-space minimalist).
var (
	colBg     = rl.NewColor(10, 10, 20, 255)
	colNear   = rl.NewColor(158, 203, 255, 255)
	colMid    = rl.NewColor(95, 135, 215, 255)
	colFar    = rl.NewColor(58, 74, 122, 255)
	colLink   = rl.NewColor(68, 96, 138, 255)
	colAccent = rl.NewColor(127, 255, 212, 255)
)

// App owns the window and the glow texture for one run.
type App struct {
	eng  *engine.Engine
	glow rl.Texture2D
}

// Run opens the window and animates until it is closed. With reduced
// motion it renders one static frame and then only waits.
func Run(cfg *config.Config) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(defaultWidth, defaultHeight, "plexus")
	defer rl.CloseWindow()
	rl.SetTargetFPS(targetFPS)

	a := &App{eng: engine.New(cfg.Options())}
	a.loadGlowTexture()
	defer rl.UnloadTexture(a.glow)

	a.eng.Mount(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
	defer a.eng.Dispose()

	if a.eng.Reduced() {
		a.runStatic()
		return
	}
	a.runAnimated()
}

// loadGlowTexture bakes a radial falloff once; every node glow is this
// texture scaled and tinted.
func (a *App) loadGlowTexture() {
	img := rl.GenImageGradientRadial(64, 64, 0.0, rl.White, rl.NewColor(0, 0, 0, 0))
	a.glow = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.SetTextureFilter(a.glow, rl.FilterBilinear)
}

func (a *App) runAnimated() {
	for !rl.WindowShouldClose() {
		if rl.IsWindowResized() {
			a.eng.Resize(float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight()))
		}

		if rl.IsCursorOnScreen() {
			mouse := rl.GetMousePosition()
			a.eng.PointerMove(float64(mouse.X), float64(mouse.Y))
		} else {
			a.eng.PointerLeave()
		}

		frame := a.eng.Step()

		rl.BeginDrawing()
		rl.ClearBackground(colBg)
		if frame != nil {
			a.drawFrame(frame)
		}
		rl.EndDrawing()
	}
}

func (a *App) runStatic() {
	frame := a.eng.StaticFrame()
	for !rl.WindowShouldClose() {
		rl.BeginDrawing()
		rl.ClearBackground(colBg)
		if frame != nil {
			a.drawFrame(frame)
		}
		rl.EndDrawing()
	}
}

// drawFrame paints connections then nodes; the frame's point order is
// already far-to-near.
func (a *App) drawFrame(f *engine.Frame) {
	for _, l := range f.Links {
		pa, pb := f.Points[l.A], f.Points[l.B]
		color := colLink
		if l.Accent {
			color = colAccent
		}
		rl.DrawLineEx(
			rl.NewVector2(float32(pa.X), float32(pa.Y)),
			rl.NewVector2(float32(pb.X), float32(pb.Y)),
			float32(l.Width),
			rl.Fade(color, float32(l.Alpha)),
		)
	}

	for _, p := range f.Points {
		n := &f.Nodes[p.Index]

		boost := 0.0
		if d := p.Screen().Dist(f.Pointer); d < 200 {
			boost = 1 - d/200
		}
		pulse := n.Pulse()

		color := colFar
		switch {
		case p.Depth < 0.33:
			color = colNear
		case p.Depth < 0.66:
			color = colMid
		}

		glowSize := float32(n.Radius * p.Scale * (6 + 4*pulse + 8*boost))
		a.drawGlow(float32(p.X), float32(p.Y), glowSize,
			rl.Fade(color, float32(0.25+0.25*pulse+0.3*boost)))

		coreAlpha := 0.45 + 0.4*(1-p.Depth) + 0.15*boost
		coreColor := color
		if boost > 0.7 {
			coreColor = colAccent
		}
		rl.DrawCircleV(
			rl.NewVector2(float32(p.X), float32(p.Y)),
			float32(math.Max(n.Radius*p.Scale, 0.75)),
			rl.Fade(coreColor, float32(math.Min(coreAlpha, 1))),
		)
	}
}

func (a *App) drawGlow(x, y, size float32, tint rl.Color) {
	src := rl.NewRectangle(0, 0, float32(a.glow.Width), float32(a.glow.Height))
	dst := rl.NewRectangle(x-size, y-size, size*2, size*2)
	rl.DrawTexturePro(a.glow, src, dst, rl.NewVector2(0, 0), 0, tint)
}
