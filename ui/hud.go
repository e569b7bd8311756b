package ui

import (
	"fmt"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title         string
	Tick          int32
	TotalMovement int
	MovementCap   int
	Counts        map[components.Species]int
	Colors        map[components.Species]rl.Color
	StepsPerFrame int
	FPS           int32
	Paused        bool
	Done          bool
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewHUD creates a new HUD renderer.
func NewHUD(x, y, width int32) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the HUD and returns the Y position below it.
func (h *HUD) Draw(data HUDData) int32 {
	r := h.renderer
	x := h.x
	y := h.y

	rl.DrawText(data.Title, x, y, 20, rl.White)
	y += 26

	rl.DrawText(
		fmt.Sprintf("Tick: %d | Speed: %dx | FPS: %d", data.Tick, data.StepsPerFrame, data.FPS),
		x, y, 14, rl.LightGray,
	)
	y += 20

	remaining := float32(0)
	if data.MovementCap > 0 {
		remaining = float32(data.MovementCap-data.TotalMovement) / float32(data.MovementCap)
	}
	y = r.DrawBar(x, y, "Budget", remaining, h.width)
	rl.DrawText(fmt.Sprintf("%d / %d steps used", data.TotalMovement, data.MovementCap), x, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += r.Theme.LineHeight + 4

	total := 0
	for _, sp := range components.AnimalSpecies {
		n := data.Counts[sp]
		total += n
		y = r.DrawColorSwatch(x, y, sp.String(), data.Colors[sp], fmt.Sprintf("%d", n))
	}
	y = r.DrawColorSwatch(x, y, components.Hunter.String(), data.Colors[components.Hunter], "1")
	y = r.DrawLabelValue(x, y, "Total", fmt.Sprintf("%d", total))
	y += 4

	// Status
	statusText, statusColor := "Running", rl.Green
	switch {
	case data.Done:
		statusText, statusColor = "FINISHED: movement budget exhausted", rl.Orange
	case data.Paused:
		statusText, statusColor = "PAUSED", rl.Yellow
	}
	rl.DrawText(statusText, x, y, 16, statusColor)

	return y + 24
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the tick phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	rl.DrawText("Tick Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg tick: %s  (%.0f ticks/s)", stats.AvgTick.Round(time.Microsecond), stats.TicksPerSecond), x, y, 14, rl.Yellow)
	y += 16

	for _, ph := range telemetry.Phases {
		pct := stats.PhasePct[ph]

		color := rl.LightGray
		if pct > 50 {
			color = rl.Red
		} else if pct > 25 {
			color = rl.Orange
		}

		rl.DrawText(
			fmt.Sprintf("%-13s %8s %5.1f%%", ph, stats.PhaseAvg[ph].Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}
}

// EventsPanel lists the most recent hunts and births.
type EventsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	lines    int
}

// NewEventsPanel creates an events panel showing up to lines events.
func NewEventsPanel(x, y, width int32, lines int) *EventsPanel {
	return &EventsPanel{renderer: NewRenderer(), x: x, y: y, width: width, lines: lines}
}

// SetPosition updates the panel position.
func (p *EventsPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the newest events first. Movement summaries are skipped.
func (p *EventsPanel) Draw(events []telemetry.Event) {
	r := p.renderer
	y := r.DrawSectionHeader(p.x, p.y, "Recent Events")

	shown := 0
	for i := len(events) - 1; i >= 0 && shown < p.lines; i-- {
		e := events[i]
		if e.Type == telemetry.EventMove {
			continue
		}
		color := rl.Color{R: 230, G: 120, B: 120, A: 255}
		if e.Type == telemetry.EventBirth {
			color = rl.Color{R: 140, G: 230, B: 140, A: 255}
		}
		rl.DrawText(EventSummary(e), p.x, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
		shown++
	}
}

// EventSummary renders an event on a single short line.
func EventSummary(e telemetry.Event) string {
	switch e.Type {
	case telemetry.EventHunt:
		return fmt.Sprintf("t%d %s #%d took %s #%d", e.Tick, e.Subject.Species, e.Subject.ID, e.Target.Species, e.Target.ID)
	case telemetry.EventBirth:
		return fmt.Sprintf("t%d %s #%d born to #%d and #%d", e.Tick, e.Subject.Species, e.Subject.ID, e.Target.ID, e.Partner.ID)
	default:
		return strings.ReplaceAll(e.String(), "\n", " ")
	}
}
