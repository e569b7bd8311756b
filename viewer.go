package main

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/config"
	"github.com/pthm-cable/habitat/game"
	"github.com/pthm-cable/habitat/renderer"
	"github.com/pthm-cable/habitat/telemetry"
	"github.com/pthm-cable/habitat/ui"
)

const controlsLegend = "[Space] Pause  [N] Step  [,/.] Speed  [Click] Inspect  [Wheel/RMB] Zoom/Pan  [Home] Reset view  [G/E/L/P/R] Overlays"

// viewer holds the graphical front end of one simulation.
type viewer struct {
	sim      *game.Simulation
	recorder *telemetry.Recorder

	board    *renderer.BoardRenderer
	effects  *renderer.EffectRenderer
	hud      *ui.HUD
	controls *ui.ControlsPanel
	perf     *ui.PerfPanel
	events   *ui.EventsPanel
	inspect  *ui.Inspector
	report   *ui.ReportPanel
	overlays *ui.Overlays

	state    ui.RunState
	selected uint32 // Inspected entity ID, 0 = none
	finished bool   // End-of-run outputs written

	screenWidth, screenHeight int32
	colors                    map[components.Species]rl.Color
}

// runGraphical opens a raylib window and steps the simulation per frame
// until the window is closed. The report is shown once the budget runs out.
func runGraphical(opts game.Options, sinks []telemetry.Sink, stepsPerFrame int) error {
	cfg := opts.Config
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Habitat")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	v, err := newViewer(cfg, opts, sinks, stepsPerFrame)
	if err != nil {
		return err
	}
	defer v.close()

	for !rl.WindowShouldClose() {
		v.update()
		v.draw()
	}
	return nil
}

func newViewer(cfg *config.Config, opts game.Options, sinks []telemetry.Sink, stepsPerFrame int) (*viewer, error) {
	screenWidth := int32(cfg.Screen.Width)
	screenHeight := int32(cfg.Screen.Height)

	boardPixels := screenHeight - 50
	panelX := boardPixels + 30
	panelWidth := screenWidth - panelX - 10

	size := cfg.World.BoardSize
	if opts.BoardSize > 0 {
		size = opts.BoardSize
	}

	v := &viewer{
		recorder:     &telemetry.Recorder{Limit: 200},
		board:        renderer.NewBoardRenderer(size, 10, 10, boardPixels),
		hud:          ui.NewHUD(panelX, 10, panelWidth),
		controls:     ui.NewControlsPanel(panelX, 250, panelWidth),
		perf:         ui.NewPerfPanel(panelX, 520),
		events:       ui.NewEventsPanel(panelX, 520, panelWidth, 14),
		inspect:      ui.NewInspector(panelX, 520, panelWidth),
		report:       ui.NewReportPanel(),
		overlays:     ui.NewOverlays(),
		state:        ui.RunState{StepsPerFrame: stepsPerFrame},
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		colors:       make(map[components.Species]rl.Color),
	}
	v.effects = renderer.NewEffectRenderer(v.board, int32(cfg.Screen.TargetFPS))

	for _, sp := range components.AnimalSpecies {
		v.colors[sp] = renderer.SpeciesColor(sp)
	}
	v.colors[components.Hunter] = renderer.SpeciesColor(components.Hunter)

	opts.Sinks = append(append([]telemetry.Sink{}, sinks...), v.recorder, v.effects)
	sim, err := game.NewSimulation(opts)
	if err != nil {
		return nil, err
	}
	sim.Populate()
	v.sim = sim

	slog.Info("starting graphical simulation",
		"seed", sim.Seed(),
		"board_size", sim.BoardSize(),
		"animals", sim.AnimalCount(),
	)
	return v, nil
}

// update handles input and advances the simulation.
func (v *viewer) update() {
	v.sim.RecordFrame()
	ui.HandleKeys(&v.state, v.overlays)

	v.updateCamera()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		m := rl.GetMousePosition()
		if cell, ok := v.board.CellAt(m.X, m.Y); ok {
			v.selected = v.entityAt(cell)
		}
	}

	for i := v.state.TicksThisFrame(); i > 0 && !v.sim.Done(); i-- {
		v.sim.Step()
	}

	if v.sim.Done() && !v.finished {
		v.finished = true
		slog.Info("simulation finished", "ticks", v.sim.Tick(), "animals", v.sim.AnimalCount())
		if err := v.sim.Finish(); err != nil {
			slog.Error("failed to write outputs", "error", err)
		}
		v.overlays.Set(ui.OverlayReport, true)
	}

	v.effects.Update()
}

// updateCamera applies wheel zoom, right-drag pan and view reset.
func (v *viewer) updateCamera() {
	cam := v.board.Camera()
	if rl.IsKeyPressed(rl.KeyHome) {
		cam.Reset()
	}

	m := rl.GetMousePosition()
	if !cam.InViewport(m.X, m.Y) {
		return
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		factor := float32(1.2)
		if wheel < 0 {
			factor = 1 / factor
		}
		cam.ZoomAt(m.X, m.Y, factor)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		cam.Pan(-d.X, -d.Y)
	}
}

// entityAt returns the ID of the entity on cell, or 0.
func (v *viewer) entityAt(cell components.Position) uint32 {
	for _, e := range v.sim.Entities() {
		if e.Position == cell {
			return e.Organism.ID
		}
	}
	return 0
}

// draw renders one frame.
func (v *viewer) draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 15, G: 18, B: 22, A: 255})

	entities := v.sim.Entities()
	v.board.SetGrid(v.overlays.Enabled(ui.OverlayGrid))
	v.board.Draw(entities)
	if v.overlays.Enabled(ui.OverlayEffects) {
		v.effects.Draw()
	}

	v.hud.Draw(ui.HUDData{
		Title:         "Habitat",
		Tick:          v.sim.Tick(),
		TotalMovement: v.sim.TotalMovement(),
		MovementCap:   v.sim.MovementCap(),
		Counts:        v.sim.Counts(),
		Colors:        v.colors,
		StepsPerFrame: v.state.StepsPerFrame,
		FPS:           rl.GetFPS(),
		Paused:        v.state.Paused,
		Done:          v.sim.Done(),
	})
	v.controls.Draw(&v.state, v.overlays, v.sim.Done())

	switch {
	case v.selected != 0 && v.drawInspector(entities):
	case v.overlays.Enabled(ui.OverlayPerf):
		v.perf.Draw(v.sim.PerfStats())
	case v.overlays.Enabled(ui.OverlayEvents):
		v.events.Draw(v.recorder.Events)
	}

	if v.overlays.Enabled(ui.OverlayReport) {
		title := "Simulation Results (so far)"
		if v.sim.Done() {
			title = "Simulation Results"
		}
		v.report.Draw(v.sim.Report(), title, v.screenWidth, v.screenHeight)
	}

	v.hud.DrawControls(v.screenHeight, controlsLegend)
	rl.EndDrawing()
}

// drawInspector draws the selected entity. It clears the selection and
// returns false when the entity is gone.
func (v *viewer) drawInspector(entities []game.EntityView) bool {
	for _, e := range entities {
		if e.Organism.ID != v.selected {
			continue
		}
		v.inspect.Draw(ui.InspectorData{
			Entity:   e,
			Lifetime: v.sim.Lifetime(e.Organism.ID),
			Color:    v.colors[e.Organism.Species],
			Tick:     v.sim.Tick(),
		})
		return true
	}
	v.selected = 0
	return false
}

func (v *viewer) close() {
	if v.finished {
		return
	}
	if err := v.sim.Finish(); err != nil {
		slog.Error("failed to write outputs", "error", err)
	}
}
