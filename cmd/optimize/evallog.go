package main

import (
	"fmt"
	"os"

	"github.com/gocarina/gocsv"
)

// EvalRow is one line of optimize_log.csv. Parameter columns follow
// NewParamVector order.
type EvalRow struct {
	Eval          int     `csv:"eval"`
	Fitness       float64 `csv:"fitness"`
	Quality       float64 `csv:"quality"`
	HunterReach   float64 `csv:"hunter_reach"`
	HunterSteps   float64 `csv:"hunter_steps"`
	ReproDistance float64 `csv:"repro_distance"`
	BirthRadius   float64 `csv:"birth_radius"`
}

// evalLog appends evaluation rows to a CSV file, flushing every row.
type evalLog struct {
	f             *os.File
	headerWritten bool
}

func openEvalLog(path string) (*evalLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return &evalLog{f: f}, nil
}

// Write appends one evaluation. values are clamped parameter values.
func (l *evalLog) Write(eval int, fitness, quality float64, values []float64) error {
	if len(values) < 4 {
		return fmt.Errorf("want 4 parameter values, got %d", len(values))
	}
	rows := []EvalRow{{
		Eval:          eval,
		Fitness:       fitness,
		Quality:       quality,
		HunterReach:   values[0],
		HunterSteps:   values[1],
		ReproDistance: values[2],
		BirthRadius:   values[3],
	}}

	if !l.headerWritten {
		l.headerWritten = true
		return gocsv.MarshalFile(&rows, l.f)
	}
	return gocsv.MarshalWithoutHeaders(&rows, l.f)
}

func (l *evalLog) Close() error {
	return l.f.Close()
}
