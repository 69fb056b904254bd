package finance

import "math"

// LBOInput parameters for ability-to-pay analysis.
type LBOInput struct {
	TargetEBITDA       float64
	LeverageRatio      float64 // Debt / EBITDA (e.g. 5.0x)
	InterestRate       float64 // Cost of debt
	TaxRate            float64
	ExitMultiple       float64
	HoldingPeriod      int       // Years (e.g. 5)
	ProjectedEBITDA    []float64 // EBITDA stream over the holding period
	ProjectedCapex     []float64
	ProjectedChangeNWC []float64
	TargetIRR          float64 // e.g. 0.20
}

// LBOResult holds the ability-to-pay outputs.
type LBOResult struct {
	MaxEntryEV           float64 `json:"max_entry_ev"`
	ImpliedEntryMultiple float64 `json:"implied_entry_multiple"`
	EquityCheck          float64 `json:"equity_check"`
	DebtRaised           float64 `json:"debt_raised"`
	ExitEquityValue      float64 `json:"exit_equity_value"`
}

// CalculateLBO determines the price a sponsor can pay for the target while
// still achieving TargetIRR, assuming a clean cash sweep waterfall where
// free cash flow pays down debt.
func CalculateLBO(input LBOInput) LBOResult {
	// 1. Initial debt sized off entry EBITDA
	initialDebt := input.TargetEBITDA * input.LeverageRatio

	// 2. Walk the holding period: FCF sweeps debt, deficits draw it back up
	currentDebt := initialDebt
	for i := 0; i < input.HoldingPeriod && i < len(input.ProjectedEBITDA); i++ {
		ebitda := input.ProjectedEBITDA[i]
		var capex, nwc float64
		if i < len(input.ProjectedCapex) {
			capex = input.ProjectedCapex[i]
		}
		if i < len(input.ProjectedChangeNWC) {
			nwc = input.ProjectedChangeNWC[i]
		}

		interest := currentDebt * input.InterestRate

		// Simplified tax base: EBITDA less interest. D&A is assumed to
		// roughly offset CapEx for shield purposes.
		taxableIncome := ebitda - interest
		taxes := taxableIncome * input.TaxRate
		if taxes < 0 {
			taxes = 0
		}

		fcf := ebitda - interest - taxes - capex - nwc

		currentDebt -= fcf
		if currentDebt < 0 {
			currentDebt = 0
		}
	}

	// 3. Exit at the terminal multiple
	var finalEBITDA float64
	if n := len(input.ProjectedEBITDA); n > 0 {
		idx := input.HoldingPeriod - 1
		if idx >= n {
			idx = n - 1
		}
		finalEBITDA = input.ProjectedEBITDA[idx]
	}
	exitEV := finalEBITDA * input.ExitMultiple
	exitEquity := exitEV - currentDebt

	// 4. Entry equity from backward induction:
	// Entry = Exit / (1+IRR)^T
	requiredEquity := exitEquity / math.Pow(1.0+input.TargetIRR, float64(input.HoldingPeriod))

	maxEntryEV := requiredEquity + initialDebt

	impliedMultiple := 0.0
	if input.TargetEBITDA != 0 {
		impliedMultiple = maxEntryEV / input.TargetEBITDA
	}

	return LBOResult{
		MaxEntryEV:           maxEntryEV,
		ImpliedEntryMultiple: impliedMultiple,
		EquityCheck:          requiredEquity,
		DebtRaised:           initialDebt,
		ExitEquityValue:      exitEquity,
	}
}
