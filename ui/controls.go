package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RunState is the user-controlled playback state.
type RunState struct {
	Paused        bool
	StepRequested bool // Advance one tick while paused
	StepsPerFrame int  // Ticks per frame while running
}

// MaxStepsPerFrame bounds the speed slider.
const MaxStepsPerFrame = 20

// ControlsPanel renders the run controls and the overlay toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the buttons and slider, applies clicks to state, and returns
// the Y position below the panel. done disables the playback buttons.
func (c *ControlsPanel) Draw(state *RunState, overlays *Overlays, done bool) int32 {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	// One line per overlay plus one header per group
	lines := int32(overlayCount) + int32(len(Groups))
	panelHeight := lines*lineHeight + padding*4 + lineHeight + 80

	// Draw panel background
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := c.y + padding
	rl.DrawText("Controls", c.x+padding, y, 16, rl.White)
	y += lineHeight + 4

	// Playback buttons
	bx := float32(c.x + padding)
	by := float32(y)
	bw := float32(c.width-padding*3) / 2
	if done {
		gui.Disable()
	}
	if gui.Button(rl.Rectangle{X: bx, Y: by, Width: bw, Height: 24}, toggleText(state.Paused, "Resume", "Pause")) {
		state.Paused = !state.Paused
	}
	if gui.Button(rl.Rectangle{X: bx + bw + float32(padding), Y: by, Width: bw, Height: 24}, "Step") {
		state.StepRequested = true
	}
	if done {
		gui.Enable()
	}
	y += 32

	// Speed slider
	rl.DrawText("Ticks per frame", c.x+padding, y, r.Theme.FontSize, r.Theme.LabelColor)
	y += 14
	speed := gui.SliderBar(
		rl.Rectangle{X: bx, Y: float32(y), Width: float32(c.width - padding*2 - 30), Height: 16},
		"", "",
		float32(state.StepsPerFrame), 1, MaxStepsPerFrame,
	)
	state.StepsPerFrame = clampSpeed(int(speed + 0.5))
	rl.DrawText(fmt.Sprintf("%d", state.StepsPerFrame), c.x+c.width-padding-24, y+2, r.Theme.FontSize, r.Theme.ValueColor)
	y += 26

	for _, g := range Groups {
		rl.DrawText(g.String(), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
		y += lineHeight

		for _, o := range InGroup(g) {
			c.drawToggle(c.x+padding, y, o.Info(), overlays.Enabled(o), c.width-padding*2)
			y += lineHeight
		}
		y += 4
	}

	return c.y + panelHeight
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayInfo, enabled bool, width int32) {
	r := c.renderer

	// Status indicator
	statusColor := rl.Color{R: 80, G: 80, B: 80, A: 255}
	if enabled {
		statusColor = rl.Color{R: 100, G: 200, B: 100, A: 255}
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)

	// Name
	nameColor := r.Theme.LabelColor
	if enabled {
		nameColor = rl.White
	}
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	// Key binding (right aligned)
	if desc.KeyLabel != "" {
		keyText := fmt.Sprintf("[%s]", desc.KeyLabel)
		keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
		rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, rl.Color{R: 150, G: 150, B: 150, A: 255})
	}
}

// HandleKeys applies keyboard shortcuts: space pauses, N steps, comma and
// period change speed, and overlay keys toggle overlays.
func HandleKeys(state *RunState, overlays *Overlays) {
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		ApplyKey(key, state, overlays)
	}
}

// ApplyKey applies a single key press.
func ApplyKey(key int32, state *RunState, overlays *Overlays) {
	switch key {
	case rl.KeySpace:
		state.Paused = !state.Paused
	case rl.KeyN:
		state.StepRequested = true
	case rl.KeyComma:
		state.StepsPerFrame = clampSpeed(state.StepsPerFrame - 1)
	case rl.KeyPeriod:
		state.StepsPerFrame = clampSpeed(state.StepsPerFrame + 1)
	default:
		overlays.HandleKey(key)
	}
}

// TicksThisFrame returns how many ticks to run now and clears a pending
// single-step request.
func (s *RunState) TicksThisFrame() int {
	if s.Paused {
		if s.StepRequested {
			s.StepRequested = false
			return 1
		}
		return 0
	}
	s.StepRequested = false
	return clampSpeed(s.StepsPerFrame)
}

func clampSpeed(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxStepsPerFrame {
		return MaxStepsPerFrame
	}
	return n
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
