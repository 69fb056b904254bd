package finance

import (
	"fmt"
	"math"
	"sort"
)

// marginExclusionBound is the plausibility band for reported margins.
// Years with |net margin| or |operating margin| above 100% are treated as
// data errors or extraordinary distortions and excluded from normalization.
const marginExclusionBound = 1.0

// NormalizeOptions tunes statement normalization.
type NormalizeOptions struct {
	// RnDCapitalizationRate is the portion of R&D expense treated as a
	// capital investment rather than a period cost. Added back to
	// operating income and EBITDA. Typical range 0.2 to 0.5.
	RnDCapitalizationRate float64
}

// Exclusion records a year removed from the normalized view.
type Exclusion struct {
	Year            int     `json:"year"`
	Reason          string  `json:"reason"`
	NetMargin       float64 `json:"net_margin"`
	OperatingMargin float64 `json:"operating_margin"`
}

// NormalizedFinancials is the quality-scored view of a statement history.
type NormalizedFinancials struct {
	Years        []AnnualFinancials `json:"years"`
	Exclusions   []Exclusion        `json:"exclusions"`
	QualityScore float64            `json:"quality_score"`
}

// Normalize produces the adjusted statement history: plausibility-filtered,
// R&D-capitalized, sorted ascending by year, with a 0-100 quality score.
func Normalize(history []AnnualFinancials, opts NormalizeOptions) NormalizedFinancials {
	out := NormalizedFinancials{
		Years:      make([]AnnualFinancials, 0, len(history)),
		Exclusions: []Exclusion{},
	}

	for _, y := range history {
		nm, om := y.NetMargin(), y.OperatingMargin()
		if math.Abs(nm) > marginExclusionBound || math.Abs(om) > marginExclusionBound {
			out.Exclusions = append(out.Exclusions, Exclusion{
				Year:            y.Year,
				Reason:          fmt.Sprintf("margin outside ±100%% plausibility band (net %.1f%%, operating %.1f%%)", nm*100, om*100),
				NetMargin:       nm,
				OperatingMargin: om,
			})
			continue
		}

		adj := y
		capitalized := y.RnD * opts.RnDCapitalizationRate
		adj.OperatingIncome += capitalized
		adj.EBITDA += capitalized
		out.Years = append(out.Years, adj)
	}

	sort.Slice(out.Years, func(i, j int) bool { return out.Years[i].Year < out.Years[j].Year })
	sort.Slice(out.Exclusions, func(i, j int) bool { return out.Exclusions[i].Year < out.Exclusions[j].Year })

	out.QualityScore = qualityScore(len(history), out)
	return out
}

// qualityScore rates the normalized history 0-100.
// Depth of history and completeness of the key fields raise the score;
// exclusions lower it.
func qualityScore(rawYears int, n NormalizedFinancials) float64 {
	if rawYears == 0 {
		return 0
	}

	// Up to 40 points for history depth (5+ usable years is full marks)
	depth := float64(len(n.Years)) / 5.0
	if depth > 1 {
		depth = 1
	}
	score := 40 * depth

	// Up to 40 points for field completeness across usable years
	if len(n.Years) > 0 {
		var filled, total float64
		for _, y := range n.Years {
			for _, v := range []float64{y.Revenue, y.NetIncome, y.OperatingIncome, y.EBITDA, y.CFO, y.Capex} {
				total++
				if v != 0 {
					filled++
				}
			}
		}
		score += 40 * (filled / total)
	}

	// Up to 20 points for clean data (no exclusions)
	score += 20 * (1 - float64(len(n.Exclusions))/float64(rawYears))

	return math.Round(score*10) / 10
}
