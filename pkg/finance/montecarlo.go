package finance

import (
	"math/rand/v2"
	"sort"
)

// MonteCarloInput parameterizes the valuation distribution run.
type MonteCarloInput struct {
	Base DCFInput

	// GrowthStdDev perturbs the growth rate per iteration.
	GrowthStdDev float64

	// WACCStdDev perturbs the discount rate per iteration.
	WACCStdDev float64

	// Iterations defaults to 1000 when 0.
	Iterations int

	// Seed makes the run reproducible. Two runs with the same seed and
	// inputs produce identical distributions.
	Seed uint64
}

// MonteCarloResult summarizes the enterprise value distribution.
type MonteCarloResult struct {
	Iterations int     `json:"iterations"`
	Mean       float64 `json:"mean"`
	P5         float64 `json:"p5"`
	P50        float64 `json:"p50"`
	P95        float64 `json:"p95"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
}

// RunMonteCarlo draws growth and WACC perturbations around the base case
// and reports the resulting enterprise value distribution.
func RunMonteCarlo(input MonteCarloInput) MonteCarloResult {
	iterations := input.Iterations
	if iterations <= 0 {
		iterations = 1000
	}

	rng := rand.New(rand.NewPCG(input.Seed, input.Seed^0x9e3779b97f4a7c15))

	values := make([]float64, 0, iterations)
	var sum float64
	for i := 0; i < iterations; i++ {
		draw := input.Base
		draw.GrowthRate += rng.NormFloat64() * input.GrowthStdDev
		draw.WACC += rng.NormFloat64() * input.WACCStdDev

		ev := CalculateDCF(draw).EnterpriseValue
		values = append(values, ev)
		sum += ev
	}

	sort.Float64s(values)
	return MonteCarloResult{
		Iterations: iterations,
		Mean:       sum / float64(iterations),
		P5:         percentile(values, 0.05),
		P50:        percentile(values, 0.50),
		P95:        percentile(values, 0.95),
		Min:        values[0],
		Max:        values[len(values)-1],
	}
}

// percentile returns the nearest-rank percentile of a sorted slice.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int(p * float64(len(sorted)))
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}
