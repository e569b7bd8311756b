package telemetry

import (
	"log/slog"

	"github.com/pthm-cable/habitat/components"
)

// TickStats holds the population and event counts at the end of one tick.
type TickStats struct {
	Tick          int32 `csv:"tick"`
	TotalMovement int   `csv:"total_movement"`

	Sheep   int `csv:"sheep"`
	Cow     int `csv:"cow"`
	Wolf    int `csv:"wolf"`
	Lion    int `csv:"lion"`
	Chicken int `csv:"chicken"`
	Rooster int `csv:"rooster"`
	Total   int `csv:"total"`

	Births int `csv:"births"`
	Hunts  int `csv:"hunts"`
}

// Count returns the population of one species in this sample.
func (s TickStats) Count(sp components.Species) int {
	switch sp {
	case components.Sheep:
		return s.Sheep
	case components.Cow:
		return s.Cow
	case components.Wolf:
		return s.Wolf
	case components.Lion:
		return s.Lion
	case components.Chicken:
		return s.Chicken
	case components.Rooster:
		return s.Rooster
	default:
		return 0
	}
}

// LogStats logs the tick stats using slog.
func (s TickStats) LogStats() {
	slog.Info("stats",
		"tick", s.Tick,
		"total_movement", s.TotalMovement,
		"sheep", s.Sheep,
		"cow", s.Cow,
		"wolf", s.Wolf,
		"lion", s.Lion,
		"chicken", s.Chicken,
		"rooster", s.Rooster,
		"total", s.Total,
		"births", s.Births,
		"hunts", s.Hunts,
	)
}

// Collector accumulates births and hunts within a tick and keeps the
// per-tick population series for the end-of-run report.
type Collector struct {
	births int
	hunts  int
	series []TickStats
}

// NewCollector creates a new stats collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordBirth records a birth in the current tick.
func (c *Collector) RecordBirth() {
	c.births++
}

// RecordHunt records a hunted animal in the current tick.
func (c *Collector) RecordHunt() {
	c.hunts++
}

// Flush produces the TickStats for the tick that just ended and resets the
// event counters. counts holds the live population per species.
func (c *Collector) Flush(tick int32, totalMovement int, counts map[components.Species]int) TickStats {
	stats := TickStats{
		Tick:          tick,
		TotalMovement: totalMovement,
		Sheep:         counts[components.Sheep],
		Cow:           counts[components.Cow],
		Wolf:          counts[components.Wolf],
		Lion:          counts[components.Lion],
		Chicken:       counts[components.Chicken],
		Rooster:       counts[components.Rooster],
		Births:        c.births,
		Hunts:         c.hunts,
	}
	for _, sp := range components.AnimalSpecies {
		stats.Total += counts[sp]
	}

	c.series = append(c.series, stats)
	c.births = 0
	c.hunts = 0
	return stats
}

// Series returns every flushed sample in tick order.
func (c *Collector) Series() []TickStats {
	return c.series
}

// Last returns the most recent sample, if any.
func (c *Collector) Last() (TickStats, bool) {
	if len(c.series) == 0 {
		return TickStats{}, false
	}
	return c.series[len(c.series)-1], true
}
