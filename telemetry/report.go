package telemetry

import (
	"fmt"
	"io"
	"strings"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/habitat/components"
)

// ReportRow is one species line of the end-of-run report.
type ReportRow struct {
	Species components.Species `csv:"species"`
	Initial int                `csv:"initial"`
	Final   int                `csv:"final"`
	Born    int                `csv:"born"`
	Hunted  int                `csv:"hunted"`

	// Population over the run's ticks
	MeanPopulation float64 `csv:"mean_population"`
	StdPopulation  float64 `csv:"std_population"`
}

// Report is a pure read of the final simulation state.
type Report struct {
	Rows       []ReportRow
	TotalFinal int
}

// Counts groups the per-species tallies a report is built from.
type Counts struct {
	Initial map[components.Species]int
	Final   map[components.Species]int
	Born    map[components.Species]int
	Hunted  map[components.Species]int
}

// BuildReport assembles the report rows in species order. series may be empty.
func BuildReport(c Counts, series []TickStats) Report {
	var r Report
	for _, sp := range components.AnimalSpecies {
		row := ReportRow{
			Species: sp,
			Initial: c.Initial[sp],
			Final:   c.Final[sp],
			Born:    c.Born[sp],
			Hunted:  c.Hunted[sp],
		}
		if len(series) > 0 {
			pop := make([]float64, len(series))
			for i, s := range series {
				pop[i] = float64(s.Count(sp))
			}
			row.MeanPopulation = stat.Mean(pop, nil)
			if len(pop) > 1 {
				row.StdPopulation = stat.StdDev(pop, nil)
			}
		}
		r.Rows = append(r.Rows, row)
		r.TotalFinal += row.Final
	}
	return r
}

// Row returns the row for a species.
func (r Report) Row(sp components.Species) (ReportRow, bool) {
	for _, row := range r.Rows {
		if row.Species == sp {
			return row, true
		}
	}
	return ReportRow{}, false
}

// Print writes the fixed-width results table.
func (r Report) Print(w io.Writer) error {
	rule := strings.Repeat("-", 50)
	var b strings.Builder
	b.WriteString("Simulation Results:\n\n")
	fmt.Fprintf(&b, "%-10s %-10s %-10s %-10s %-10s\n", "Species", "Initial", "Final", "Born", "Hunted")
	b.WriteString(rule + "\n")
	for _, row := range r.Rows {
		fmt.Fprintf(&b, "%-10s %-10d %-10d %-10d %-10d\n", row.Species, row.Initial, row.Final, row.Born, row.Hunted)
	}
	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%-10s %-10s %-10d %-10s %-10s\n", "Total Animal Count", "", r.TotalFinal, "", "")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
