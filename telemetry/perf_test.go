package telemetry

import (
	"testing"
	"time"
)

// fakeClock advances only when told to.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestCollector(window int) (*PerfCollector, *fakeClock) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	pc := NewPerfCollector(window)
	pc.now = clock.now
	return pc, clock
}

// runTick records one tick with the given movement and hunting durations.
func runTick(pc *PerfCollector, clock *fakeClock, move, hunt time.Duration) {
	pc.StartTick()
	pc.StartPhase(PhaseMovement)
	clock.advance(move)
	pc.StartPhase(PhaseHunting)
	clock.advance(hunt)
	pc.EndTick()
}

func TestPerfCollectorPhases(t *testing.T) {
	pc, clock := newTestCollector(10)
	for i := 0; i < 4; i++ {
		runTick(pc, clock, 300*time.Microsecond, 100*time.Microsecond)
	}

	stats := pc.Stats()
	if stats.Ticks != 4 {
		t.Errorf("Ticks = %d, want 4", stats.Ticks)
	}
	if stats.AvgTick != 400*time.Microsecond {
		t.Errorf("AvgTick = %v, want 400µs", stats.AvgTick)
	}
	if stats.PhaseAvg[PhaseMovement] != 300*time.Microsecond {
		t.Errorf("movement avg = %v, want 300µs", stats.PhaseAvg[PhaseMovement])
	}
	if stats.PhasePct[PhaseMovement] != 75 || stats.PhasePct[PhaseHunting] != 25 {
		t.Errorf("pct = %v/%v, want 75/25", stats.PhasePct[PhaseMovement], stats.PhasePct[PhaseHunting])
	}
	if stats.PhaseAvg[PhaseReproduction] != 0 {
		t.Errorf("reproduction avg = %v, want 0 (never started)", stats.PhaseAvg[PhaseReproduction])
	}
	if stats.TicksPerSecond != 2500 {
		t.Errorf("TicksPerSecond = %v, want 2500", stats.TicksPerSecond)
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	pc, clock := newTestCollector(2)

	runTick(pc, clock, 10*time.Millisecond, 0)
	runTick(pc, clock, time.Millisecond, 0)
	runTick(pc, clock, 3*time.Millisecond, 0)

	// The 10ms tick has been overwritten
	stats := pc.Stats()
	if stats.Ticks != 2 {
		t.Errorf("Ticks = %d, want 2", stats.Ticks)
	}
	if stats.MaxTick != 3*time.Millisecond || stats.MinTick != time.Millisecond {
		t.Errorf("min/max = %v/%v, want 1ms/3ms", stats.MinTick, stats.MaxTick)
	}
	if stats.AvgTick != 2*time.Millisecond {
		t.Errorf("AvgTick = %v, want 2ms", stats.AvgTick)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	pc, _ := newTestCollector(10)
	stats := pc.Stats()
	if stats.Ticks != 0 || stats.AvgTick != 0 || stats.TicksPerSecond != 0 {
		t.Errorf("empty stats = %+v, want zero", stats)
	}
}

func TestPerfCollectorFrameTiming(t *testing.T) {
	pc, clock := newTestCollector(10)

	pc.RecordFrame()
	if fps := pc.Stats().FPS; fps != 0 {
		t.Errorf("FPS after one frame = %v, want 0", fps)
	}

	clock.advance(20 * time.Millisecond)
	pc.RecordFrame()

	stats := pc.Stats()
	if stats.FrameDuration != 20*time.Millisecond {
		t.Errorf("FrameDuration = %v, want 20ms", stats.FrameDuration)
	}
	if stats.FPS != 50 {
		t.Errorf("FPS = %v, want 50", stats.FPS)
	}
}

func TestPerfStatsToCSV(t *testing.T) {
	pc, clock := newTestCollector(4)
	runTick(pc, clock, 500*time.Microsecond, 500*time.Microsecond)

	row := pc.Stats().ToCSV(12)
	if row.Tick != 12 || row.AvgTickUS != 1000 {
		t.Errorf("row = %+v, want tick 12 avg 1000us", row)
	}
	if row.MovementPct != 50 || row.HuntingPct != 50 {
		t.Errorf("pct = %v/%v, want 50/50", row.MovementPct, row.HuntingPct)
	}
}

func TestPhaseString(t *testing.T) {
	for _, ph := range Phases {
		if ph.String() == "unknown" {
			t.Errorf("phase %d has no name", ph)
		}
	}
	if got := Phase(99).String(); got != "unknown" {
		t.Errorf("Phase(99) = %q, want unknown", got)
	}
}
