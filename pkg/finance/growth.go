package finance

import "math"

// recencyDecay is the per-year decay factor for recency weighting.
// A year k steps back from the most recent observation gets weight 0.85^k
// before normalization.
const recencyDecay = 0.85

// SimpleCAGR returns the compound annual growth rate between the first and
// last observation over the given number of periods (years between them).
// Returns 0 when the inputs cannot support a growth rate (non-positive
// endpoints or zero periods).
func SimpleCAGR(first, last float64, periods int) float64 {
	if periods <= 0 || first <= 0 || last <= 0 {
		return 0
	}
	return math.Pow(last/first, 1/float64(periods)) - 1
}

// RecencyWeights returns n weights that decay by recencyDecay per year back
// from the most recent observation, normalized to sum to 1. Index n-1 is the
// most recent year and carries the largest weight.
func RecencyWeights(n int) []float64 {
	if n <= 0 {
		return nil
	}
	weights := make([]float64, n)
	var sum float64
	for i := 0; i < n; i++ {
		// i=n-1 is most recent: k=0 steps back
		w := math.Pow(recencyDecay, float64(n-1-i))
		weights[i] = w
		sum += w
	}
	for i := range weights {
		weights[i] /= sum
	}
	return weights
}

// WeightedCAGR returns the recency-weighted growth rate over a value series
// sorted ascending by year. Each year-over-year growth rate is weighted by
// the recency weight of its ending year, so recent growth dominates.
// Returns 0 when fewer than two positive observations are available.
func WeightedCAGR(values []float64) float64 {
	// Collect YoY growth rates over consecutive positive observations
	type obs struct {
		rate float64
	}
	var rates []obs
	for i := 1; i < len(values); i++ {
		if values[i-1] > 0 && values[i] > 0 {
			rates = append(rates, obs{rate: values[i]/values[i-1] - 1})
		}
	}
	if len(rates) == 0 {
		return 0
	}

	weights := RecencyWeights(len(rates))
	var weighted float64
	for i, r := range rates {
		weighted += weights[i] * r.rate
	}
	return weighted
}
