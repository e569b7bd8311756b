package game

import (
	"log/slog"

	"github.com/pthm-cable/habitat/telemetry"
)

// flushTelemetry samples the population at the end of a tick and writes
// the per-tick outputs.
func (s *Simulation) flushTelemetry() {
	stats := s.collector.Flush(s.tick, s.totalMovement, s.Counts())

	if s.logStats {
		stats.LogStats()
	}

	if s.outputManager != nil {
		if err := s.outputManager.WritePopulation(stats); err != nil {
			slog.Error("failed to write population", "error", err)
		}
	}

	window := int32(s.cfg.Telemetry.PerfWindow)
	if window > 0 && s.tick%window == 0 {
		perfStats := s.perf.Stats()
		if s.logStats {
			perfStats.LogStats()
		}
		if s.outputManager != nil {
			if err := s.outputManager.WritePerf(perfStats, s.tick); err != nil {
				slog.Error("failed to write perf", "error", err)
			}
		}
	}
}

// PerfStats returns timing statistics over the recent ticks.
func (s *Simulation) PerfStats() telemetry.PerfStats {
	return s.perf.Stats()
}

// RecordFrame records frame timing in graphical mode.
func (s *Simulation) RecordFrame() {
	s.perf.RecordFrame()
}

// Series returns the per-tick population samples.
func (s *Simulation) Series() []telemetry.TickStats {
	return s.collector.Series()
}

// Snapshot captures the live entities with their lifetime stats.
func (s *Simulation) Snapshot() *telemetry.Snapshot {
	snapshot := &telemetry.Snapshot{
		Version:       telemetry.SnapshotVersion,
		RNGSeed:       s.rngSeed,
		BoardSize:     s.boardSize,
		Tick:          s.tick,
		TotalMovement: s.totalMovement,
	}

	for _, v := range s.Entities() {
		snapshot.Entities = append(snapshot.Entities, telemetry.EntityState{
			ID:       v.Organism.ID,
			Species:  v.Organism.Species,
			Gender:   v.Organism.Gender,
			Hunter:   v.Hunter,
			X:        v.Position.X,
			Y:        v.Position.Y,
			Lifetime: s.lifetime.Get(v.Organism.ID).ToJSON(),
		})
	}
	return snapshot
}

// Finish writes the end-of-run outputs (report CSV and snapshot) and closes
// the output files. It is safe to call when output is disabled.
func (s *Simulation) Finish() error {
	if s.outputManager == nil {
		return nil
	}
	defer func() {
		s.outputManager = nil
	}()

	if err := s.outputManager.WriteReport(s.Report()); err != nil {
		s.outputManager.Close()
		return err
	}
	path, err := s.outputManager.WriteSnapshot(s.Snapshot())
	if err != nil {
		s.outputManager.Close()
		return err
	}
	slog.Info("snapshot saved", "path", path, "tick", s.tick)

	return s.outputManager.Close()
}
