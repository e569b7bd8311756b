// Package main runs batches of headless simulations over a grid of hunter
// reach values and seeds, and writes per-species summary statistics.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/pthm-cable/habitat/config"
	"github.com/pthm-cable/habitat/game"
	"github.com/pthm-cable/habitat/telemetry"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 10, "Number of seeds per reach value")
	firstSeed := flag.Int64("first-seed", 1, "Seed of the first run; later runs count up from it")
	reaches := flag.String("reach", "0,4,8,12", "Comma-separated hunter reach values")
	outputDir := flag.String("output", "sweep", "Output directory for summary.csv")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := config.Init(*configPath); err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	values, err := parseReaches(*reaches)
	if err != nil {
		logger.Error("invalid -reach", "error", err)
		os.Exit(1)
	}

	var rows []SummaryRow
	for _, reach := range values {
		cfg := config.Cfg().Clone()
		cfg.Hunter.Reach = reach

		reports := make([]telemetry.Report, 0, *seeds)
		for i := 0; i < *seeds; i++ {
			seed := *firstSeed + int64(i)
			sim, err := game.NewSimulation(game.Options{Config: cfg, Seed: seed})
			if err != nil {
				logger.Error("failed to create simulation", "error", err)
				os.Exit(1)
			}
			sim.Run()
			reports = append(reports, sim.Report())
		}

		summary := Summarize(reach, reports)
		for _, row := range summary {
			logger.Info("summary", "row", row)
		}
		rows = append(rows, summary...)
	}

	if err := writeSummary(*outputDir, rows); err != nil {
		logger.Error("failed to write summary", "error", err)
		os.Exit(1)
	}
	logger.Info("sweep complete",
		"runs", len(values)*(*seeds),
		"output", filepath.Join(*outputDir, "summary.csv"),
	)
}

// parseReaches parses a comma-separated list of non-negative integers.
func parseReaches(s string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parsing reach %q: %w", field, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("reach must not be negative, got %d", v)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no reach values given")
	}
	return out, nil
}

func writeSummary(dir string, rows []SummaryRow) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "summary.csv"))
	if err != nil {
		return fmt.Errorf("creating summary.csv: %w", err)
	}
	defer f.Close()
	if err := gocsv.MarshalFile(&rows, f); err != nil {
		return fmt.Errorf("writing summary.csv: %w", err)
	}
	return nil
}
