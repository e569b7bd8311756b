package game

import (
	"log/slog"
	"maps"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/telemetry"
)

// Done reports whether the movement budget is exhausted.
func (s *Simulation) Done() bool {
	return s.totalMovement >= s.movementCap
}

// Step runs one tick: movement, then reproduction, then hunting.
func (s *Simulation) Step() {
	s.perf.StartTick()

	s.perf.StartPhase(telemetry.PhaseMovement)
	s.MoveEntitiesOnce()

	s.perf.StartPhase(telemetry.PhaseReproduction)
	s.PerformReproduction()

	s.perf.StartPhase(telemetry.PhaseHunting)
	s.PerformHunting()

	s.perf.StartPhase(telemetry.PhaseTelemetry)
	s.tick++
	s.flushTelemetry()

	s.perf.EndTick()
}

// Run populates the board if needed and steps until the budget is exhausted.
// The simulation does not stop early when animals die out: the hunter keeps
// consuming budget on its own.
func (s *Simulation) Run() {
	s.Populate()

	slog.Info("simulation started",
		"seed", s.rngSeed,
		"board_size", s.boardSize,
		"animals", len(s.roster),
		"movement_cap", s.movementCap,
	)

	for !s.Done() {
		s.Step()
	}

	slog.Info("simulation finished",
		"ticks", s.tick,
		"total_movement", s.totalMovement,
		"animals", len(s.roster),
	)
}

// Report builds the end-of-run report. The initial column is the planned
// population; Initial returns what was actually placed.
func (s *Simulation) Report() telemetry.Report {
	return telemetry.BuildReport(telemetry.Counts{
		Initial: PlannedCounts(),
		Final:   s.Counts(),
		Born:    s.born,
		Hunted:  s.hunted,
	}, s.collector.Series())
}

// Born returns a copy of the per-species birth counters.
func (s *Simulation) Born() map[components.Species]int {
	return maps.Clone(s.born)
}

// Hunted returns a copy of the per-species hunted counters.
func (s *Simulation) Hunted() map[components.Species]int {
	return maps.Clone(s.hunted)
}

// Initial returns a copy of the per-species counts actually placed.
func (s *Simulation) Initial() map[components.Species]int {
	return maps.Clone(s.initial)
}
