package main

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/pthm-cable/habitat/config"
	"github.com/pthm-cable/habitat/game"
	"github.com/pthm-cable/habitat/telemetry"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run parses args, runs the simulation and returns the process exit code.
// Deferred cleanup such as flushing the event log happens before it returns.
func run(args []string, stdout io.Writer) int {
	fs := flag.NewFlagSet("habitat", flag.ContinueOnError)

	// CLI flags
	configPath := fs.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := fs.Bool("headless", false, "Run without graphics and print the report")
	boardSize := fs.Int("board-size", 0, "Board side length (0 = use config)")
	seed := fs.Int64("seed", 0, "RNG seed (0 = time-based)")
	eventLog := fs.String("event-log", "", "Event log path (empty = use config, \"-\" = disabled)")
	outputDir := fs.String("output-dir", "", "Output directory for CSV logs, config and snapshot")
	logStats := fs.Bool("log-stats", false, "Output per-tick stats via slog")
	logEvents := fs.Bool("log-events", false, "Also log hunts and births via slog")
	stepsPerFrame := fs.Int("steps-per-frame", 1, "Ticks per frame in graphical mode")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}
	cfg := config.Cfg()

	// Set up seed
	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(stdout, nil))
	slog.SetDefault(logger)

	// Event log path: flag overrides config
	logPath := cfg.Telemetry.EventLog
	if *eventLog != "" {
		logPath = *eventLog
	}

	var sinks []telemetry.Sink
	if logPath != "" && logPath != "-" {
		log, err := telemetry.OpenEventLog(logPath)
		if err != nil {
			slog.Error("failed to open event log", "path", logPath, "error", err)
			return 1
		}
		defer func() {
			if err := log.Close(); err != nil {
				slog.Error("failed to close event log", "error", err)
			}
		}()
		sinks = append(sinks, log)
	}
	if *logEvents {
		sinks = append(sinks, telemetry.SlogSink{Logger: logger, Level: slog.LevelInfo})
	}

	// Build simulation options
	opts := game.Options{
		Config:    cfg,
		Seed:      rngSeed,
		BoardSize: *boardSize,
		OutputDir: *outputDir,
		LogStats:  *logStats,
	}

	if *headless {
		opts.Sinks = sinks
		if err := runHeadless(opts, stdout); err != nil {
			slog.Error("simulation failed", "error", err)
			return 1
		}
		return 0
	}

	if err := runGraphical(opts, sinks, *stepsPerFrame); err != nil {
		slog.Error("simulation failed", "error", err)
		return 1
	}
	return 0
}

// runHeadless runs to budget exhaustion and prints the report to stdout.
func runHeadless(opts game.Options, stdout io.Writer) error {
	sim, err := game.NewSimulation(opts)
	if err != nil {
		return err
	}

	sim.Run()

	if err := sim.Report().Print(stdout); err != nil {
		return err
	}
	if opts.LogStats {
		sim.PerfStats().LogStats()
	}
	return sim.Finish()
}
