package finance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("excludes extreme-margin year and reports it", func(t *testing.T) {
		history := []AnnualFinancials{
			{Year: 2019, Revenue: 1000, NetIncome: 80, OperatingIncome: 120, EBITDA: 180, CFO: 150, Capex: -60},
			{Year: 2020, Revenue: 1100, NetIncome: 95, OperatingIncome: 135, EBITDA: 200, CFO: 160, Capex: -65},
			// Net margin -106.7%: impairment-driven data distortion
			{Year: 2021, Revenue: 1200, NetIncome: -1280.4, OperatingIncome: 140, EBITDA: 210, CFO: 170, Capex: -70},
			{Year: 2022, Revenue: 1350, NetIncome: 120, OperatingIncome: 165, EBITDA: 240, CFO: 190, Capex: -75},
			{Year: 2023, Revenue: 1500, NetIncome: 140, OperatingIncome: 190, EBITDA: 270, CFO: 215, Capex: -80},
		}

		n := Normalize(history, NormalizeOptions{})

		require.Len(t, n.Exclusions, 1)
		assert.Equal(t, 2021, n.Exclusions[0].Year)
		assert.InDelta(t, -1.067, n.Exclusions[0].NetMargin, 0.001)

		require.Len(t, n.Years, 4)
		for _, y := range n.Years {
			assert.NotEqual(t, 2021, y.Year)
		}
	})

	t.Run("capitalizes configured portion of R&D", func(t *testing.T) {
		history := []AnnualFinancials{
			{Year: 2023, Revenue: 1000, NetIncome: 100, OperatingIncome: 150, EBITDA: 200, RnD: 80},
		}
		n := Normalize(history, NormalizeOptions{RnDCapitalizationRate: 0.3})

		require.Len(t, n.Years, 1)
		assert.InDelta(t, 174.0, n.Years[0].OperatingIncome, 1e-9)
		assert.InDelta(t, 224.0, n.Years[0].EBITDA, 1e-9)
	})

	t.Run("quality score in range and penalized by exclusions", func(t *testing.T) {
		clean := []AnnualFinancials{
			{Year: 2019, Revenue: 1000, NetIncome: 80, OperatingIncome: 120, EBITDA: 180, CFO: 150, Capex: -60},
			{Year: 2020, Revenue: 1100, NetIncome: 95, OperatingIncome: 135, EBITDA: 200, CFO: 160, Capex: -65},
			{Year: 2021, Revenue: 1200, NetIncome: 105, OperatingIncome: 140, EBITDA: 210, CFO: 170, Capex: -70},
			{Year: 2022, Revenue: 1350, NetIncome: 120, OperatingIncome: 165, EBITDA: 240, CFO: 190, Capex: -75},
			{Year: 2023, Revenue: 1500, NetIncome: 140, OperatingIncome: 190, EBITDA: 270, CFO: 215, Capex: -80},
		}
		dirty := make([]AnnualFinancials, len(clean))
		copy(dirty, clean)
		dirty[2].NetIncome = -5000

		cleanScore := Normalize(clean, NormalizeOptions{}).QualityScore
		dirtyScore := Normalize(dirty, NormalizeOptions{}).QualityScore

		assert.Greater(t, cleanScore, dirtyScore)
		assert.LessOrEqual(t, cleanScore, 100.0)
		assert.GreaterOrEqual(t, dirtyScore, 0.0)
	})

	t.Run("empty history", func(t *testing.T) {
		n := Normalize(nil, NormalizeOptions{})
		assert.Empty(t, n.Years)
		assert.Equal(t, 0.0, n.QualityScore)
	})
}

func TestRecencyWeights(t *testing.T) {
	t.Run("sum to one", func(t *testing.T) {
		for _, n := range []int{1, 2, 5, 7, 20} {
			weights := RecencyWeights(n)
			require.Len(t, weights, n)

			var sum float64
			for _, w := range weights {
				sum += w
			}
			assert.InDelta(t, 1.0, sum, 1e-9, "n=%d", n)
		}
	})

	t.Run("decay by 0.85 per year back", func(t *testing.T) {
		weights := RecencyWeights(4)
		// Each older weight is 0.85x its successor
		for i := 0; i < 3; i++ {
			assert.InDelta(t, 0.85, weights[i]/weights[i+1], 1e-9)
		}
		// Most recent year carries the largest weight
		assert.Greater(t, weights[3], weights[0])
	})

	t.Run("zero and negative n", func(t *testing.T) {
		assert.Nil(t, RecencyWeights(0))
		assert.Nil(t, RecencyWeights(-1))
	})
}

func TestWeightedCAGR(t *testing.T) {
	t.Run("matches analytical formula", func(t *testing.T) {
		// Revenue series with distinct YoY rates: 10%, 20%, 5%
		values := []float64{100, 110, 132, 138.6}

		rates := []float64{0.10, 0.20, 0.05}
		weights := RecencyWeights(3)
		var want float64
		for i := range rates {
			want += weights[i] * rates[i]
		}

		got := WeightedCAGR(values)
		assert.InDelta(t, want, got, 1e-9)

		// Differs from the simple CAGR since recent growth is slower
		simple := SimpleCAGR(values[0], values[len(values)-1], 3)
		assert.Greater(t, math.Abs(simple-got), 1e-6)
	})

	t.Run("constant growth equals simple CAGR", func(t *testing.T) {
		values := []float64{100, 110, 121, 133.1}
		assert.InDelta(t, SimpleCAGR(100, 133.1, 3), WeightedCAGR(values), 1e-9)
	})

	t.Run("non-positive observations are skipped", func(t *testing.T) {
		assert.Equal(t, 0.0, WeightedCAGR([]float64{-100, 0}))
		assert.Equal(t, 0.0, WeightedCAGR([]float64{100}))
	})
}

func TestSimpleCAGR(t *testing.T) {
	assert.InDelta(t, 0.10, SimpleCAGR(100, 133.1, 3), 1e-9)
	assert.Equal(t, 0.0, SimpleCAGR(0, 100, 3))
	assert.Equal(t, 0.0, SimpleCAGR(100, -5, 3))
	assert.Equal(t, 0.0, SimpleCAGR(100, 133.1, 0))
}

func TestCalculateWACC(t *testing.T) {
	result := CalculateWACC(WACCInput{
		UnleveredBeta:     1.0,
		RiskFreeRate:      0.04,
		MarketRiskPremium: 0.055,
		PreTaxCostOfDebt:  0.06,
		TaxRate:           0.25,
		DebtToEquityRatio: 0.5,
	})

	// Hamada: 1.0 * (1 + 0.75*0.5) = 1.375
	assert.InDelta(t, 1.375, result.LeveredBeta, 1e-9)
	// CAPM: 0.04 + 1.375*0.055 = 0.115625
	assert.InDelta(t, 0.115625, result.CostOfEquity, 1e-9)
	// After-tax Kd: 0.06 * 0.75 = 0.045
	assert.InDelta(t, 0.045, result.CostOfDebt, 1e-9)
	// Weights: Wd = 1/3, We = 2/3
	assert.InDelta(t, 1.0/3.0, result.WeightDebt, 1e-9)
	assert.InDelta(t, 2.0/3.0, result.WeightEquity, 1e-9)
	// WACC = 0.115625*2/3 + 0.045*1/3
	assert.InDelta(t, 0.115625*2.0/3.0+0.045/3.0, result.WACC, 1e-9)
}

func TestCalculateDCF(t *testing.T) {
	base := DCFInput{
		BaseFCF:           100,
		GrowthRate:        0.05,
		Years:             5,
		WACC:              0.09,
		TerminalGrowth:    0.025,
		NetDebt:           200,
		SharesOutstanding: 50,
	}

	t.Run("components aggregate", func(t *testing.T) {
		result := CalculateDCF(base)

		assert.Empty(t, result.Warning)
		assert.Greater(t, result.PVFCF, 0.0)
		assert.Greater(t, result.PVTerminal, 0.0)
		assert.InDelta(t, result.PVFCF+result.PVTerminal, result.EnterpriseValue, 1e-9)
		assert.InDelta(t, result.EnterpriseValue-200, result.EquityValue, 1e-9)
		assert.InDelta(t, result.EquityValue/50, result.EquityValuePerShare, 1e-9)
	})

	t.Run("WACC equal to terminal growth is corrected to g plus 100bps", func(t *testing.T) {
		in := base
		in.WACC = 0.025

		result := CalculateDCF(in)

		require.NotEmpty(t, result.Warning)
		assert.InDelta(t, 0.035, result.WACC, 1e-9)
		assert.False(t, math.IsInf(result.EnterpriseValue, 0))
		assert.Greater(t, result.EnterpriseValue, 0.0)
	})

	t.Run("WACC below terminal growth is corrected", func(t *testing.T) {
		in := base
		in.WACC = 0.01

		result := CalculateDCF(in)
		require.NotEmpty(t, result.Warning)
		assert.InDelta(t, 0.035, result.WACC, 1e-9)
	})

	t.Run("higher discount rate lowers value", func(t *testing.T) {
		high := base
		high.WACC = 0.14
		assert.Less(t, CalculateDCF(high).EnterpriseValue, CalculateDCF(base).EnterpriseValue)
	})
}

func TestRunScenarios(t *testing.T) {
	set := RunScenarios(DCFInput{
		BaseFCF:        100,
		GrowthRate:     0.05,
		Years:          5,
		WACC:           0.09,
		TerminalGrowth: 0.025,
	})

	assert.Greater(t, set.Optimistic.EnterpriseValue, set.Base.EnterpriseValue)
	assert.Less(t, set.Pessimistic.EnterpriseValue, set.Base.EnterpriseValue)
}

func TestRunMonteCarlo(t *testing.T) {
	input := MonteCarloInput{
		Base: DCFInput{
			BaseFCF:        100,
			GrowthRate:     0.05,
			Years:          5,
			WACC:           0.09,
			TerminalGrowth: 0.025,
		},
		GrowthStdDev: 0.01,
		WACCStdDev:   0.005,
		Iterations:   500,
		Seed:         42,
	}

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		a := RunMonteCarlo(input)
		b := RunMonteCarlo(input)
		assert.Equal(t, a, b)
	})

	t.Run("percentiles are ordered", func(t *testing.T) {
		r := RunMonteCarlo(input)
		assert.Equal(t, 500, r.Iterations)
		assert.LessOrEqual(t, r.Min, r.P5)
		assert.LessOrEqual(t, r.P5, r.P50)
		assert.LessOrEqual(t, r.P50, r.P95)
		assert.LessOrEqual(t, r.P95, r.Max)
	})
}

func TestCalculateLBO(t *testing.T) {
	result := CalculateLBO(LBOInput{
		TargetEBITDA:       100,
		LeverageRatio:      5.0,
		InterestRate:       0.08,
		TaxRate:            0.25,
		ExitMultiple:       10.0,
		HoldingPeriod:      5,
		ProjectedEBITDA:    []float64{105, 110, 116, 122, 128},
		ProjectedCapex:     []float64{20, 21, 22, 23, 24},
		ProjectedChangeNWC: []float64{5, 5, 5, 5, 5},
		TargetIRR:          0.20,
	})

	assert.InDelta(t, 500.0, result.DebtRaised, 1e-9)
	assert.Greater(t, result.ExitEquityValue, 0.0)
	assert.Greater(t, result.MaxEntryEV, result.DebtRaised)
	assert.InDelta(t, result.MaxEntryEV/100, result.ImpliedEntryMultiple, 1e-9)
}
