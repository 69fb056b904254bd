// Package finance implements the deterministic valuation math used by the
// financial analysis agents: statement normalization, growth estimation,
// cost of capital, DCF, LBO ability-to-pay, and Monte Carlo distribution.
//
// All functions are pure; the agents own data extraction and interpretation.
package finance

// AnnualFinancials is one fiscal year of (possibly as-reported) figures.
// Values are in absolute currency units, not millions.
type AnnualFinancials struct {
	Year            int     `json:"year"`
	Revenue         float64 `json:"revenue"`
	NetIncome       float64 `json:"net_income"`
	OperatingIncome float64 `json:"operating_income"`
	EBITDA          float64 `json:"ebitda"`
	CFO             float64 `json:"cfo"`
	Capex           float64 `json:"capex"`
	RnD             float64 `json:"rnd"`
}

// NetMargin returns net income over revenue, or 0 when revenue is 0.
func (a AnnualFinancials) NetMargin() float64 {
	if a.Revenue == 0 {
		return 0
	}
	return a.NetIncome / a.Revenue
}

// OperatingMargin returns operating income over revenue, or 0 when revenue is 0.
func (a AnnualFinancials) OperatingMargin() float64 {
	if a.Revenue == 0 {
		return 0
	}
	return a.OperatingIncome / a.Revenue
}
