package main

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/plexus/internal/config"
	"github.com/san-kum/plexus/internal/engine"
	"github.com/san-kum/plexus/internal/export"
	"github.com/san-kum/plexus/internal/gui"
	"github.com/san-kum/plexus/internal/tui"
	"github.com/san-kum/plexus/internal/viz"
)

var (
	configFile string
	preset     string
	theme      string
	nodes      int
	connDist   float64
	rotSpeed   float64
	repRadius  float64
	repForce   float64
	spring     float64
	reduced    bool

	// frame/export surface size in terminal cells.
	cols int
	rows int

	outFile    string
	spinFrames int
	benchSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "plexus",
		Short: "interactive 3d node-mesh field for the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd)
		},
	}
	addTuningFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "animate the field in the terminal",
		RunE:  func(cmd *cobra.Command, args []string) error { return runLive(cmd) },
	}
	addTuningFlags(runCmd)

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "animate the field in a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}
	addTuningFlags(guiCmd)

	frameCmd := &cobra.Command{
		Use:   "frame",
		Short: "render one static frame to stdout",
		RunE:  renderFrame,
	}
	addTuningFlags(frameCmd)
	frameCmd.Flags().IntVar(&cols, "cols", 100, "canvas width in cells")
	frameCmd.Flags().IntVar(&rows, "rows", 30, "canvas height in cells")
	frameCmd.Flags().IntVar(&spinFrames, "spin", 0, "advance this many frames before the snapshot")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "render one frame and write it as svg",
		RunE:  exportFrame,
	}
	addTuningFlags(exportCmd)
	exportCmd.Flags().IntVar(&cols, "cols", 100, "canvas width in cells")
	exportCmd.Flags().IntVar(&rows, "rows", 30, "canvas height in cells")
	exportCmd.Flags().IntVar(&spinFrames, "spin", 0, "advance this many frames before the snapshot")
	exportCmd.Flags().StringVar(&outFile, "out", "plexus.svg", "output file")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Printf("%-10s %3d nodes, link distance %.0f, theme %s\n",
					name, p.Nodes, p.ConnectionDistance, p.Theme)
			}
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "step the engine headless and report frame cost",
		RunE:  runBench,
	}
	addTuningFlags(benchCmd)
	benchCmd.Flags().IntVar(&benchSteps, "frames", 1000, "frames to simulate")

	rootCmd.AddCommand(runCmd, guiCmd, frameCmd, exportCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addTuningFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named preset (see 'plexus presets')")
	cmd.Flags().StringVar(&theme, "theme", "", "color theme: midnight, ember, mono")
	cmd.Flags().IntVar(&nodes, "nodes", 0, "node count (density vs per-frame cost)")
	cmd.Flags().Float64Var(&connDist, "connection-distance", 0, "screen distance below which points link")
	cmd.Flags().Float64Var(&rotSpeed, "rotation-speed", 0, "tumble rate, radians per frame")
	cmd.Flags().Float64Var(&repRadius, "repulsion-radius", 0, "pointer repulsion radius")
	cmd.Flags().Float64Var(&repForce, "repulsion-force", 0, "pointer repulsion strength")
	cmd.Flags().Float64Var(&spring, "spring", 0, "spring-back coefficient, settle speed")
	cmd.Flags().BoolVar(&reduced, "reduced-motion", false, "render a single static frame")
}

// resolveConfig layers file < preset < flags over the defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		// Copy so flag overrides never mutate the shared preset table.
		c := *p
		cfg = &c
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("nodes") {
		cfg.Nodes = nodes
	}
	if flags.Changed("connection-distance") {
		cfg.ConnectionDistance = connDist
	}
	if flags.Changed("rotation-speed") {
		cfg.RotationSpeed = rotSpeed
	}
	if flags.Changed("repulsion-radius") {
		cfg.RepulsionRadius = repRadius
	}
	if flags.Changed("repulsion-force") {
		cfg.RepulsionForce = repForce
	}
	if flags.Changed("spring") {
		cfg.SpringCoefficient = spring
	}
	if flags.Changed("reduced-motion") {
		cfg.ReducedMotion = reduced
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runLive(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.ReducedMotion {
		// Reduced motion never starts the animation loop: one static
		// frame on a plain stdout canvas and done.
		return printStatic(cfg, 100, 30, 0)
	}
	return tui.Run(cfg)
}

func renderFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return printStatic(cfg, cols, rows, spinFrames)
}

// printStatic renders a single frame through the reduced-motion path.
func printStatic(cfg *config.Config, cols, rows, spin int) error {
	canvas, frameTheme, err := staticCanvas(cfg, cols, rows, spin)
	if err != nil {
		return err
	}
	fmt.Println(canvas.String(frameTheme))
	return nil
}

func staticCanvas(cfg *config.Config, cols, rows, spin int) (*viz.Canvas, viz.Theme, error) {
	t := viz.GetTheme(cfg.Theme)
	if cols < 2 || rows < 2 {
		return nil, t, fmt.Errorf("surface too small: %dx%d cells", cols, rows)
	}

	cfg.ReducedMotion = true
	eng := engine.New(cfg.Options())
	defer eng.Dispose()

	canvas := viz.NewCanvas(cols, rows)
	pw, ph := canvas.PixelSize()
	eng.Mount(float64(pw), float64(ph))

	for i := 0; i < spin; i++ {
		eng.Step()
	}

	renderer := viz.NewRenderer(t)
	loop := engine.NewLoop(eng, nil, func(f *engine.Frame) {
		renderer.Render(canvas, f)
	})
	loop.Start()
	loop.Stop()

	return canvas, t, nil
}

func exportFrame(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	canvas, t, err := staticCanvas(cfg, cols, rows, spinFrames)
	if err != nil {
		return err
	}
	svg := export.CanvasToSVG(canvas, t, 4.0)
	if err := os.WriteFile(outFile, []byte(svg), 0644); err != nil {
		return fmt.Errorf("write %s: %w", outFile, err)
	}
	fmt.Printf("wrote %s\n", outFile)
	return nil
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cfg.ReducedMotion = false

	eng := engine.New(cfg.Options())
	defer eng.Dispose()
	eng.Mount(800, 600)

	var links int
	start := time.Now()
	for i := 0; i < benchSteps; i++ {
		f := eng.Step()
		if f == nil {
			return fmt.Errorf("engine stopped producing frames at step %d", i)
		}
		links = len(f.Links)
	}
	elapsed := time.Since(start)

	perFrame := elapsed.Seconds() * 1000 / float64(benchSteps)
	pairs := cfg.Nodes * (cfg.Nodes - 1) / 2
	fmt.Printf("%d frames at %d nodes: %.3f ms/frame (%.0f fps)\n",
		benchSteps, cfg.Nodes, perFrame, 1000/perFrame)
	fmt.Printf("connection pass: %d pair tests/frame, %d links in the last frame\n", pairs, links)
	return nil
}
