package main

import (
	"log/slog"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/telemetry"
)

// SummaryRow aggregates one species over every seed run at one hunter reach.
type SummaryRow struct {
	Reach   int                `csv:"hunter_reach"`
	Species components.Species `csv:"species"`
	Runs    int                `csv:"runs"`

	MeanFinal  float64 `csv:"mean_final"`
	StdFinal   float64 `csv:"std_final"`
	MeanBorn   float64 `csv:"mean_born"`
	MeanHunted float64 `csv:"mean_hunted"`
	Extinct    int     `csv:"extinct_runs"`
}

// LogValue implements slog.LogValuer.
func (r SummaryRow) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("reach", r.Reach),
		slog.String("species", r.Species.String()),
		slog.Float64("mean_final", r.MeanFinal),
		slog.Float64("std_final", r.StdFinal),
		slog.Int("extinct", r.Extinct),
	)
}

// Summarize builds one row per animal species from a batch of reports.
func Summarize(reach int, reports []telemetry.Report) []SummaryRow {
	rows := make([]SummaryRow, 0, len(components.AnimalSpecies))
	for _, sp := range components.AnimalSpecies {
		final := make([]float64, 0, len(reports))
		born := make([]float64, 0, len(reports))
		hunted := make([]float64, 0, len(reports))
		extinct := 0

		for _, r := range reports {
			row, _ := r.Row(sp)
			final = append(final, float64(row.Final))
			born = append(born, float64(row.Born))
			hunted = append(hunted, float64(row.Hunted))
			if row.Final == 0 {
				extinct++
			}
		}

		out := SummaryRow{Reach: reach, Species: sp, Runs: len(reports), Extinct: extinct}
		if len(reports) > 0 {
			out.MeanFinal = stat.Mean(final, nil)
			out.MeanBorn = stat.Mean(born, nil)
			out.MeanHunted = stat.Mean(hunted, nil)
		}
		if len(reports) > 1 {
			out.StdFinal = stat.StdDev(final, nil)
		}
		rows = append(rows, out)
	}
	return rows
}
