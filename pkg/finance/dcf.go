package finance

import "fmt"

// waccCorrectionSpread is added to the terminal growth rate when the
// discount rate does not exceed it. A Gordon growth terminal value is
// undefined at WACC <= g, so the model refuses the input and caps it.
const waccCorrectionSpread = 0.01

// DCFInput encapsulates the inputs for a discounted cash flow valuation.
type DCFInput struct {
	// BaseFCF is the most recent unlevered free cash flow observation.
	BaseFCF float64

	// GrowthRate is the annual FCF growth over the projection horizon.
	GrowthRate float64

	// Years is the explicit projection horizon (typically 5).
	Years int

	// WACC is the discount rate.
	WACC float64

	// TerminalGrowth is the perpetuity growth rate (e.g. 0.025).
	TerminalGrowth float64

	// NetDebt is subtracted from enterprise value to reach equity value.
	NetDebt float64

	// SharesOutstanding yields per-share value; 0 skips per-share output.
	SharesOutstanding float64
}

// DCFResult holds the valuation outputs for one scenario.
type DCFResult struct {
	EnterpriseValue     float64 `json:"enterprise_value"`
	EquityValue         float64 `json:"equity_value"`
	EquityValuePerShare float64 `json:"equity_value_per_share"`
	PVFCF               float64 `json:"pv_fcf"`
	PVTerminal          float64 `json:"pv_terminal"`
	WACC                float64 `json:"wacc"`
	TerminalGrowth      float64 `json:"terminal_growth_rate"`

	// Warning is non-empty when an input had to be corrected.
	Warning string `json:"warning,omitempty"`
}

// CalculateDCF performs a standard two-stage DCF: explicit projection of
// growing FCF, then a Gordon growth terminal value.
//
// When WACC <= terminal growth the terminal value is undefined; the model
// corrects WACC to terminal growth + 100bps and reports a warning rather
// than producing a negative or infinite value.
func CalculateDCF(input DCFInput) DCFResult {
	result := DCFResult{
		WACC:           input.WACC,
		TerminalGrowth: input.TerminalGrowth,
	}

	if input.WACC <= input.TerminalGrowth {
		corrected := input.TerminalGrowth + waccCorrectionSpread
		result.Warning = fmt.Sprintf(
			"WACC %.4f does not exceed terminal growth %.4f; corrected WACC to %.4f",
			input.WACC, input.TerminalGrowth, corrected)
		result.WACC = corrected
	}

	wacc := result.WACC
	years := input.Years
	if years <= 0 {
		years = 5
	}

	// 1. Explicit period: grow and discount FCF year by year
	fcf := input.BaseFCF
	cumDiscount := 1.0
	for i := 0; i < years; i++ {
		fcf *= 1 + input.GrowthRate
		cumDiscount /= 1 + wacc
		result.PVFCF += fcf * cumDiscount
	}

	// 2. Terminal value (Gordon growth), discounted at the horizon
	terminalFCF := fcf * (1 + input.TerminalGrowth)
	tv := terminalFCF / (wacc - input.TerminalGrowth)
	result.PVTerminal = tv * cumDiscount

	// 3. Aggregate
	result.EnterpriseValue = result.PVFCF + result.PVTerminal
	result.EquityValue = result.EnterpriseValue - input.NetDebt
	if input.SharesOutstanding != 0 {
		result.EquityValuePerShare = result.EquityValue / input.SharesOutstanding
	}

	return result
}

// ScenarioSet holds the three standard DCF scenarios.
type ScenarioSet struct {
	Base        DCFResult `json:"base"`
	Optimistic  DCFResult `json:"optimistic"`
	Pessimistic DCFResult `json:"pessimistic"`
}

// Scenario adjustment spreads relative to base-case assumptions.
const (
	optimisticGrowthSpread  = 0.02
	pessimisticGrowthSpread = 0.02
	optimisticWACCSpread    = 0.005
	pessimisticWACCSpread   = 0.01
)

// RunScenarios computes base, optimistic, and pessimistic DCF results from
// base-case inputs. Optimistic raises growth and lowers the discount rate;
// pessimistic does the opposite.
func RunScenarios(base DCFInput) ScenarioSet {
	optimistic := base
	optimistic.GrowthRate += optimisticGrowthSpread
	optimistic.WACC -= optimisticWACCSpread

	pessimistic := base
	pessimistic.GrowthRate -= pessimisticGrowthSpread
	pessimistic.WACC += pessimisticWACCSpread

	return ScenarioSet{
		Base:        CalculateDCF(base),
		Optimistic:  CalculateDCF(optimistic),
		Pessimistic: CalculateDCF(pessimistic),
	}
}
