// Package main searches hunter and reproduction parameters with CMA-ES for
// settings that keep every species alive through a run.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/habitat/config"
)

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	seeds := flag.Int("seeds", 5, "Number of seeds per evaluation")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if *outputDir == "" {
		log.Fatal("--output is required")
	}
	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		log.Fatalf("failed to create output directory: %v", err)
	}

	// Runs log their start and finish at info level; only warnings get through
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := config.Init(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	baseCfg := config.Cfg()

	params := NewParamVector()
	evalSeeds := make([]int64, *seeds)
	for i := range evalSeeds {
		evalSeeds[i] = int64(i*1000 + 42)
	}
	evaluator := NewFitnessEvaluator(params, evalSeeds, baseCfg)

	evalLog, err := openEvalLog(filepath.Join(*outputDir, "optimize_log.csv"))
	if err != nil {
		log.Fatalf("failed to create log file: %v", err)
	}
	defer evalLog.Close()

	popSize := *population
	if popSize == 0 {
		popSize = 4 + int(3.0*float64(params.Dim())/2.0)
	}

	tracker := &progress{maxEvals: *maxEvals, start: time.Now(), best: 1e9}
	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			values := params.Clamp(params.Denormalize(x))
			fitness := evaluator.Evaluate(values)
			quality := evaluator.LastQuality()

			tracker.observe(fitness, values)
			if err := evalLog.Write(tracker.evals, fitness, quality, values); err != nil {
				slog.Warn("failed to log evaluation", "error", err)
			}
			tracker.print(quality)
			return fitness
		},
	}

	fmt.Printf("Starting CMA-ES optimization with %d parameters, population=%d, max_evals=%d\n",
		params.Dim(), popSize, *maxEvals)
	fmt.Printf("Seeds per evaluation: %d, movement cap: %d\n", *seeds, baseCfg.Movement.Cap)

	result, err := optimize.Minimize(
		problem,
		params.Normalize(params.ExtractFromConfig(baseCfg)),
		&optimize.Settings{FuncEvaluations: *maxEvals},
		&optimize.CmaEsChol{InitStepSize: 0.3, Population: popSize},
	)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	best := tracker.bestParams
	if best == nil && result != nil {
		best = params.Clamp(params.Denormalize(result.X))
	}
	if best == nil {
		log.Fatal("no evaluation completed")
	}

	fmt.Printf("\nOptimization complete after %d evaluations in %s\n", tracker.evals, formatDuration(time.Since(tracker.start)))
	fmt.Printf("Best fitness: %.1f\n\nBest parameters:\n", tracker.best)
	for i, spec := range params.Specs {
		fmt.Printf("  %s (%s): %.6f\n", spec.Name, spec.Path, best[i])
	}

	if err := saveResults(*outputDir, baseCfg, params, best, evaluator); err != nil {
		log.Printf("failed to save results: %v", err)
	}
}

// progress tracks the best evaluation and prints one line per evaluation.
type progress struct {
	maxEvals   int
	start      time.Time
	evals      int
	best       float64
	bestParams []float64
}

func (p *progress) observe(fitness float64, values []float64) {
	p.evals++
	if fitness < p.best {
		p.best = fitness
		p.bestParams = append([]float64(nil), values...)
	}
}

func (p *progress) print(quality float64) {
	elapsed := time.Since(p.start)
	remaining := time.Duration(p.maxEvals-p.evals) * (elapsed / time.Duration(p.evals))
	fmt.Printf("Eval %d/%d: quality=%.2f (best=%.1f) | elapsed: %s, ETA: %s\n",
		p.evals, p.maxEvals, quality, p.best, formatDuration(elapsed), formatDuration(remaining))
}

// saveResults writes best_config.yaml and the report of the best run.
func saveResults(dir string, base *config.Config, params *ParamVector, best []float64, fe *FitnessEvaluator) error {
	cfg := base.Clone()
	params.ApplyToConfig(cfg, best)

	configPath := filepath.Join(dir, "best_config.yaml")
	if err := cfg.WriteYAML(configPath); err != nil {
		return err
	}
	fmt.Printf("\nBest config saved to: %s\n", configPath)

	report := fe.BestReport()
	if report == nil {
		return nil
	}
	reportPath := filepath.Join(dir, "best_report.txt")
	f, err := os.Create(reportPath)
	if err != nil {
		return fmt.Errorf("creating best report: %w", err)
	}
	defer f.Close()
	if err := report.Print(f); err != nil {
		return fmt.Errorf("writing best report: %w", err)
	}
	fmt.Printf("Best run report saved to: %s\n", reportPath)
	return nil
}

// formatDuration formats a duration as 1h02m03s, or 2m03s when under an hour.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%dh%02dm%02ds", h, m, s)
	}
	return fmt.Sprintf("%dm%02ds", m, s)
}
