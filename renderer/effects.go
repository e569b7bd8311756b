package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/telemetry"
)

// EffectType identifies a transient board effect.
type EffectType uint8

const (
	EffectHunt EffectType = iota
	EffectBirth
)

// Effect is a fading marker left where a hunt or birth happened.
type Effect struct {
	Type    EffectType
	Pos     components.Position
	Life    int32
	MaxLife int32
}

// EffectRenderer collects hunt and birth events and draws them as fading rings.
// It implements telemetry.Sink.
type EffectRenderer struct {
	board   *BoardRenderer
	effects []Effect
	maxLife int32
}

// NewEffectRenderer creates an effect renderer drawing onto board.
// Effects last maxLife frames.
func NewEffectRenderer(board *BoardRenderer, maxLife int32) *EffectRenderer {
	return &EffectRenderer{board: board, maxLife: maxLife}
}

// Record turns hunt and birth events into effects. Moves are ignored.
func (r *EffectRenderer) Record(e telemetry.Event) {
	switch e.Type {
	case telemetry.EventHunt:
		r.effects = append(r.effects, Effect{Type: EffectHunt, Pos: e.Target.Pos, Life: r.maxLife, MaxLife: r.maxLife})
	case telemetry.EventBirth:
		r.effects = append(r.effects, Effect{Type: EffectBirth, Pos: e.Subject.Pos, Life: r.maxLife, MaxLife: r.maxLife})
	}
}

// Update ages effects by one frame and drops expired ones.
func (r *EffectRenderer) Update() {
	alive := r.effects[:0]
	for _, fx := range r.effects {
		fx.Life--
		if fx.Life > 0 {
			alive = append(alive, fx)
		}
	}
	r.effects = alive
}

// Len returns the number of live effects.
func (r *EffectRenderer) Len() int {
	return len(r.effects)
}

// Draw renders all live effects.
func (r *EffectRenderer) Draw() {
	for i := range r.effects {
		fx := &r.effects[i]

		// Calculate life ratio for fade
		lifeRatio := float32(fx.Life) / float32(fx.MaxLife)

		var color rl.Color
		switch fx.Type {
		case EffectHunt:
			// Red
			color = rl.Color{R: 220, G: 40, B: 40, A: uint8(lifeRatio * 220)}
		case EffectBirth:
			// Light green
			color = rl.Color{R: 120, G: 255, B: 120, A: uint8(lifeRatio * 220)}
		}

		cx, cy := r.board.CellCenter(fx.Pos)
		radius := r.board.CellSize() * (1.5 + 2*(1-lifeRatio))
		if radius < 3 {
			radius = 3
		}
		rl.DrawCircleLines(int32(cx), int32(cy), radius, color)
	}
}
