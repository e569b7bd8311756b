package main

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/habitat/components"
	"github.com/pthm-cable/habitat/config"
	"github.com/pthm-cable/habitat/game"
	"github.com/pthm-cable/habitat/telemetry"
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	seeds      []int64
	baseConfig *config.Config

	// Best run tracking
	mu          sync.Mutex
	bestFitness float64
	bestReport  *telemetry.Report
	lastQuality float64 // quality from most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:      params,
		seeds:       seeds,
		baseConfig:  baseCfg,
		bestFitness: math.Inf(1),
	}
}

// BestReport returns the report of the best seed of the best evaluation.
func (fe *FitnessEvaluator) BestReport() *telemetry.Report {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.bestReport
}

// LastQuality returns the quality score from the most recent evaluation.
func (fe *FitnessEvaluator) LastQuality() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastQuality
}

// speciesWeight is the fitness reward for each species alive at the end.
const speciesWeight = 100.0

// seedResult holds the result from one seed evaluation.
type seedResult struct {
	fitness float64
	quality float64
	report  telemetry.Report
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Fitness rewards surviving species first and total final population second.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.baseConfig.Clone()
	fe.params.ApplyToConfig(cfg, x)

	// Each seed owns its simulation, so seeds run in parallel
	results := make([]seedResult, len(fe.seeds))
	var wg sync.WaitGroup

	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			report, err := runSimulation(cfg, s)
			if err != nil {
				results[idx] = seedResult{fitness: 0}
				return
			}
			results[idx] = seedResult{
				fitness: computeFitness(report),
				quality: computeQuality(report),
				report:  report,
			}
		}(i, seed)
	}
	wg.Wait()

	// Aggregate results
	var totalFitness, totalQuality float64
	bestSeed := -1
	for i, r := range results {
		totalFitness += r.fitness
		totalQuality += r.quality
		if bestSeed < 0 || r.fitness < results[bestSeed].fitness {
			bestSeed = i
		}
	}

	n := float64(len(fe.seeds))
	avgFitness := totalFitness / n

	// Update best tracking
	fe.mu.Lock()
	if avgFitness < fe.bestFitness && bestSeed >= 0 {
		fe.bestFitness = avgFitness
		report := results[bestSeed].report
		fe.bestReport = &report
	}
	fe.lastQuality = totalQuality / n
	fe.mu.Unlock()

	return avgFitness
}

// runSimulation executes a single headless run to budget exhaustion.
func runSimulation(cfg *config.Config, seed int64) (telemetry.Report, error) {
	sim, err := game.NewSimulation(game.Options{Config: cfg, Seed: seed})
	if err != nil {
		return telemetry.Report{}, err
	}
	sim.Run()
	return sim.Report(), nil
}

// computeFitness scores one run: surviving species dominate, then the total
// final population.
func computeFitness(r telemetry.Report) float64 {
	surviving := 0
	for _, row := range r.Rows {
		if row.Final > 0 {
			surviving++
		}
	}
	return -(float64(surviving)*speciesWeight + float64(r.TotalFinal))
}

// computeQuality measures how evenly the final population is spread across
// species: 1 for identical counts, falling towards 0 as one species dominates.
func computeQuality(r telemetry.Report) float64 {
	finals := make([]float64, 0, len(components.AnimalSpecies))
	for _, row := range r.Rows {
		finals = append(finals, float64(row.Final))
	}
	mean, std := stat.MeanStdDev(finals, nil)
	if mean == 0 {
		return 0
	}
	return 1 / (1 + std/mean)
}
