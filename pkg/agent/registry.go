package agent

// Roster returns the analytical agents in declaration order. The scheduler
// derives the actual execution waves from each agent's declared inputs and
// outputs; this order only breaks ties for deterministic logs.
func Roster() []Agent {
	return []Agent{
		NewFinancialAnalyst(),
		NewDeepDive(),
		NewCompetitiveBenchmarking(),
		NewLegalCounsel(),
		NewMarketStrategist(),
		NewMacroAnalyst(),
		NewRiskAssessment(),
		NewTaxStructuring(),
		NewDealStructuring(),
		NewAccretionDilution(),
		NewSourcesUses(),
		NewContributionAnalysis(),
		NewExchangeRatio(),
		NewIntegrationPlanner(),
		NewExternalValidator(),
	}
}

// required agents fail the whole job when they fail; everything else
// degrades to a warning on the synthesized document.
var required = map[string]bool{
	NameFinancialAnalyst: true,
	NameSynthesis:        true,
}

// Required reports whether a failing agent must fail the job.
func Required(name string) bool { return required[name] }
