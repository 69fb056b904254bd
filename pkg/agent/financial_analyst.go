package agent

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"

	"github.com/dealdesk/dealdesk/pkg/finance"
	"github.com/dealdesk/dealdesk/pkg/ingest"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// Modelling assumptions for the deterministic valuation work. Market-level
// parameters that the data providers do not supply.
const (
	rndCapitalizationRate = 0.30
	defaultRiskFreeRate   = 0.042
	marketRiskPremium     = 0.055
	corporateTaxRate      = 0.21
	debtSpread            = 0.02
	targetDebtToEquity    = 0.5
	terminalGrowthRate    = 0.025
	projectionYears       = 5

	// Projection growth is clamped so a short or erratic history cannot
	// produce an absurd explicit period.
	minProjectedGrowth = -0.05
	maxProjectedGrowth = 0.25

	lboLeverageRatio = 5.0
	lboExitMultiple  = 10.0
	lboTargetIRR     = 0.20
	lboHoldingPeriod = 5

	monteCarloGrowthStdDev = 0.010
	monteCarloWACCStdDev   = 0.005
)

// FinancialAnalyst is the deterministic valuation agent. It owns the
// normalized statement view and every quantitative model downstream agents
// consume; it issues no LLM calls.
type FinancialAnalyst struct{}

func NewFinancialAnalyst() *FinancialAnalyst { return &FinancialAnalyst{} }

func (a *FinancialAnalyst) Name() string { return NameFinancialAnalyst }

func (a *FinancialAnalyst) RequiredInputs() []state.Key {
	return []state.Key{state.KeyFinancialData}
}

func (a *FinancialAnalyst) ProducedOutputs() []state.Key {
	return []state.Key{
		state.KeyNormalizedFinancials,
		state.KeyValuationModels,
		state.KeyAdvancedValuation,
		state.KeyEBITDA,
		state.KeyAnomalyDetection,
	}
}

func (a *FinancialAnalyst) Execute(ctx context.Context, h *state.Handle, rc *RunContext) (*Result, error) {
	raw, _ := h.Get(state.KeyFinancialData)
	fin, ok := raw.(ingest.FinancialData)
	if !ok {
		return nil, fmt.Errorf("financial_data holds unexpected type %T", raw)
	}
	if len(fin.Statements) == 0 {
		return nil, fmt.Errorf("no statement history for %s", rc.Params.Target)
	}

	result := &Result{}

	// 1. Normalize: plausibility-filter years, capitalize R&D, score quality.
	normalized := finance.Normalize(fin.Statements, finance.NormalizeOptions{
		RnDCapitalizationRate: rndCapitalizationRate,
	})
	for _, ex := range normalized.Exclusions {
		h.AppendAnomaly("extreme_margin", fmt.Sprintf("fiscal %d excluded: %s", ex.Year, ex.Reason))
		result.Warnings = append(result.Warnings, fmt.Sprintf("fiscal %d excluded from normalization: %s", ex.Year, ex.Reason))
	}
	if len(normalized.Years) == 0 {
		return nil, fmt.Errorf("no usable fiscal years after normalization (%d excluded)", len(normalized.Exclusions))
	}

	// 2. Growth: simple and recency-weighted revenue CAGR.
	revenues := make([]float64, len(normalized.Years))
	for i, y := range normalized.Years {
		revenues[i] = y.Revenue
	}
	simpleCAGR := finance.SimpleCAGR(revenues[0], revenues[len(revenues)-1], len(revenues)-1)
	weightedCAGR := finance.WeightedCAGR(revenues)

	// 3. Cost of capital from the live risk-free rate and the profile beta.
	riskFree, rfWarn := riskFreeRate(h)
	if rfWarn != "" {
		result.Warnings = append(result.Warnings, rfWarn)
	}
	beta := 1.0
	if fin.Profile != nil && fin.Profile.Beta > 0 {
		beta = fin.Profile.Beta
	}
	wacc := finance.CalculateWACC(finance.WACCInput{
		UnleveredBeta:     beta,
		RiskFreeRate:      riskFree,
		MarketRiskPremium: marketRiskPremium,
		PreTaxCostOfDebt:  riskFree + debtSpread,
		TaxRate:           corporateTaxRate,
		DebtToEquityRatio: targetDebtToEquity,
	})

	// 4. DCF scenarios off the latest unlevered FCF.
	latest := normalized.Years[len(normalized.Years)-1]
	baseFCF := latest.CFO + latest.Capex // capex carries its reported sign
	if baseFCF <= 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("latest free cash flow is non-positive (%.0f); DCF uses EBITDA-derived proxy", baseFCF))
		baseFCF = latest.EBITDA * 0.6
	}

	growth := clamp(weightedCAGR, minProjectedGrowth, maxProjectedGrowth)
	var shares float64
	if fin.Profile != nil && fin.Profile.Price > 0 {
		shares = fin.Profile.MktCap / fin.Profile.Price
	}
	baseInput := finance.DCFInput{
		BaseFCF:           baseFCF,
		GrowthRate:        growth,
		Years:             projectionYears,
		WACC:              wacc.WACC,
		TerminalGrowth:    terminalGrowthRate,
		NetDebt:           netDebt(fin.KeyMetrics),
		SharesOutstanding: shares,
	}
	scenarios := finance.RunScenarios(baseInput)
	for _, r := range []finance.DCFResult{scenarios.Base, scenarios.Optimistic, scenarios.Pessimistic} {
		if r.Warning != "" {
			result.Warnings = append(result.Warnings, r.Warning)
		}
	}

	// 5. Monte Carlo distribution, seeded per target so reruns reproduce.
	mc := finance.RunMonteCarlo(finance.MonteCarloInput{
		Base:         baseInput,
		GrowthStdDev: monteCarloGrowthStdDev,
		WACCStdDev:   monteCarloWACCStdDev,
		Seed:         seedFor(rc.Params.Target),
	})

	// 6. LBO ability-to-pay.
	lbo := finance.CalculateLBO(lboInput(latest.EBITDA, growth, latest.Revenue, latest.Capex, riskFree))

	// 7. Commit the owned keys.
	anomalyDetection := map[string]any{
		"excluded_years": normalized.Exclusions,
		"quality_score":  normalized.QualityScore,
	}
	valuationModels := map[string]any{
		"dcf_scenarios": scenarios,
		"monte_carlo":   mc,
		"wacc_detail":   wacc,
		"growth": map[string]any{
			"simple_cagr":           simpleCAGR,
			"recency_weighted_cagr": weightedCAGR,
			"projected_growth":      growth,
		},
	}
	advancedValuation := map[string]any{
		"dcf_analysis": scenarios,
		"lbo_analysis": lbo,
	}
	ebitda := map[string]any{
		"normalized_ebitda": latest.EBITDA,
		"raw_latest_ebitda": fin.Statements[len(fin.Statements)-1].EBITDA,
	}

	writes := []struct {
		key state.Key
		val any
	}{
		{state.KeyNormalizedFinancials, normalized},
		{state.KeyValuationModels, valuationModels},
		{state.KeyAdvancedValuation, advancedValuation},
		{state.KeyEBITDA, ebitda},
		{state.KeyAnomalyDetection, anomalyDetection},
	}
	for _, w := range writes {
		if err := h.Set(w.key, w.val); err != nil {
			return nil, err
		}
	}

	// 8. Payload with the base-case DCF outputs promoted to the root.
	result.Payload = map[string]any{
		"enterprise_value":       scenarios.Base.EnterpriseValue,
		"equity_value":           scenarios.Base.EquityValue,
		"equity_value_per_share": scenarios.Base.EquityValuePerShare,
		"wacc":                   scenarios.Base.WACC,
		"terminal_growth_rate":   scenarios.Base.TerminalGrowth,
		"normalized_financials":  normalized,
		"valuation_models":       valuationModels,
		"advanced_valuation":     advancedValuation,
		"ebitda":                 ebitda,
		"anomaly_detection":      anomalyDetection,
	}
	if normalized.QualityScore < 50 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("data quality score %.1f/100; valuation confidence is reduced", normalized.QualityScore))
	}
	return result, nil
}

// riskFreeRate reads the latest 10-year treasury yield out of the ingested
// rates, falling back to a long-run default.
func riskFreeRate(h *state.Handle) (float64, string) {
	raw, _ := h.Get(state.KeyTreasuryData)
	td, ok := raw.(ingest.TreasuryData)
	if !ok || len(td.Rates) == 0 {
		return defaultRiskFreeRate, fmt.Sprintf("treasury rates unavailable; risk-free rate defaulted to %.2f%%", defaultRiskFreeRate*100)
	}
	if y10, ok := asFloat(td.Rates[0]["year10"]); ok && y10 > 0 {
		return y10 / 100, ""
	}
	return defaultRiskFreeRate, fmt.Sprintf("10-year yield missing from treasury data; risk-free rate defaulted to %.2f%%", defaultRiskFreeRate*100)
}

// netDebt reads the most recent net debt figure from the key metrics rows.
func netDebt(metrics []map[string]any) float64 {
	if len(metrics) == 0 {
		return 0
	}
	if nd, ok := asFloat(metrics[0]["netDebt"]); ok {
		return nd
	}
	return 0
}

func lboInput(ebitda, growth, revenue, capex, riskFree float64) finance.LBOInput {
	projected := make([]float64, lboHoldingPeriod)
	projectedCapex := make([]float64, lboHoldingPeriod)
	capexRatio := 0.0
	if revenue != 0 {
		capexRatio = -capex / revenue // reported capex is negative
	}
	e := ebitda
	r := revenue
	for i := range projected {
		e *= 1 + growth
		r *= 1 + growth
		projected[i] = e
		projectedCapex[i] = r * capexRatio
	}
	return finance.LBOInput{
		TargetEBITDA:    ebitda,
		LeverageRatio:   lboLeverageRatio,
		InterestRate:    riskFree + 2*debtSpread,
		TaxRate:         corporateTaxRate,
		ExitMultiple:    lboExitMultiple,
		HoldingPeriod:   lboHoldingPeriod,
		ProjectedEBITDA: projected,
		ProjectedCapex:  projectedCapex,
		TargetIRR:       lboTargetIRR,
	}
}

// asFloat coerces loosely-typed provider values (numbers or numeric
// strings) into float64.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// seedFor derives a stable Monte Carlo seed from the target identifier.
func seedFor(target string) uint64 {
	hash := fnv.New64a()
	_, _ = hash.Write([]byte(target))
	return hash.Sum64()
}
