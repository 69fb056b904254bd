package agent

import "github.com/dealdesk/dealdesk/pkg/state"

// The LLM-backed analyst roster. Each entry is a full agent; domain prompts
// ask for the payload fields the synthesis agent extracts (§ section names
// mirror the synthesized document schema).

func NewCompetitiveBenchmarking() Agent {
	return newPromptAgent(promptSpec{
		name:        NameCompetitive,
		inputs:      []state.Key{state.KeyNormalizedFinancials, state.KeyMarketData},
		output:      state.KeyCompetitive,
		extraInputs: []state.Key{state.KeyValuationModels},
		system: `You are a competitive intelligence analyst on an M&A diligence team. ` +
			`Benchmark the target against its listed peers: relative growth, margins, and valuation multiples. ` +
			`Produce a "competitive_landscape" object (market position, peer comparison table as a list of records, moat assessment) and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewLegalCounsel() Agent {
	return newPromptAgent(promptSpec{
		name:   NameLegalCounsel,
		inputs: []state.Key{state.KeySECFilings, state.KeyProxyData},
		output: state.KeyLegal,
		system: `You are M&A legal counsel reviewing regulatory filings for transaction risk. ` +
			`Identify litigation exposure, change-of-control provisions, golden parachutes, antitrust concerns, and disclosure gaps. ` +
			`Produce "litigation_exposure", "change_of_control", "regulatory_approvals", and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewMarketStrategist() Agent {
	return newPromptAgent(promptSpec{
		name:   NameMarketStrategist,
		inputs: []state.Key{state.KeyFinancialData, state.KeyMarketData},
		output: state.KeyMarketStrategy,
		system: `You are a market strategist assessing the target's commercial position. ` +
			`Analyse market size and growth, customer concentration signals, pricing power, and sentiment from recent news. ` +
			`Produce "market_overview", "growth_drivers", "sentiment", and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewMacroAnalyst() Agent {
	return newPromptAgent(promptSpec{
		name:        NameMacroAnalyst,
		inputs:      []state.Key{state.KeyTreasuryData},
		output:      state.KeyMacro,
		extraInputs: []state.Key{state.KeyFinancialData},
		system: `You are a macroeconomic analyst evaluating deal timing and rate sensitivity. ` +
			`Model how the rate environment, credit conditions, and cycle position affect this transaction. ` +
			`Produce "scenario_models" (list of named macro scenarios with assumptions and deal impact), "correlation_analysis", "sensitivity_analysis", and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewRiskAssessment() Agent {
	return newPromptAgent(promptSpec{
		name:        NameRiskAssessment,
		inputs:      []state.Key{state.KeyDeepDive, state.KeyAdvancedValuation},
		output:      state.KeyRisk,
		extraInputs: []state.Key{state.KeyAnomalyDetection},
		system: `You are a risk officer consolidating diligence risk. ` +
			`Rank the material risks to the transaction with likelihood, impact, and mitigants, drawing on the deep-dive and valuation outputs. ` +
			`Produce a "risk_register" (list of {risk, likelihood, impact, mitigant}), "key_sensitivities", and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewTaxStructuring() Agent {
	return newPromptAgent(promptSpec{
		name:   NameTaxStructuring,
		inputs: []state.Key{state.KeyAdvancedValuation},
		output: state.KeyTax,
		system: `You are a transaction tax advisor. ` +
			`Compare stock vs. asset acquisition, 338(h)(10) availability, NOL preservation under §382, and step-up economics for this deal size. ` +
			`Produce "recommended_structure", "structure_comparison" (list of records), "tax_attributes", and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewDealStructuring() Agent {
	return newPromptAgent(promptSpec{
		name:        NameDealStructuring,
		inputs:      []state.Key{state.KeyAdvancedValuation},
		output:      state.KeyDealStructure,
		extraInputs: []state.Key{state.KeyAcquirerData},
		system: `You are a deal structuring banker. ` +
			`Propose the consideration mix (cash/stock split), financing plan, and premium rationale anchored on the valuation scenarios and LBO ability-to-pay. ` +
			`Produce "consideration_mix" ({cash_pct, stock_pct}), "offer_price", "premium_pct", "financing_plan", and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewAccretionDilution() Agent {
	return newPromptAgent(promptSpec{
		name:        NameAccretionDilution,
		inputs:      []state.Key{state.KeyDealStructure},
		output:      state.KeyAccretionDilution,
		extraInputs: []state.Key{state.KeyAcquirerData, state.KeyNormalizedFinancials},
		system: `You are an M&A analyst running accretion/dilution on the proposed structure. ` +
			`Estimate pro-forma EPS impact in years 1-3 under the consideration mix, including financing cost and synergy phasing. ` +
			`Produce "eps_impact" (list of {year, accretion_dilution_pct}), "breakeven_synergies", and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewSourcesUses() Agent {
	return newPromptAgent(promptSpec{
		name:        NameSourcesUses,
		inputs:      []state.Key{state.KeyDealStructure},
		output:      state.KeySourcesUses,
		extraInputs: []state.Key{state.KeyAdvancedValuation},
		system: `You are an M&A analyst preparing the sources & uses table for the proposed structure. ` +
			`Balance sources (cash, new debt, equity issuance) against uses (equity purchase, debt refinance, fees). ` +
			`Produce "sources" and "uses" as lists of {item, amount}, a "total" that balances, and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewContributionAnalysis() Agent {
	return newPromptAgent(promptSpec{
		name:        NameContribution,
		inputs:      []state.Key{state.KeyDealStructure},
		output:      state.KeyContribution,
		extraInputs: []state.Key{state.KeyNormalizedFinancials, state.KeyAcquirerData},
		system: `You are an M&A analyst running contribution analysis. ` +
			`Compare each party's contribution of revenue, EBITDA, and net income against their implied ownership of the combined company. ` +
			`Produce "contribution_table" (list of {metric, target_pct, acquirer_pct}), "implied_ownership", and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewExchangeRatio() Agent {
	return newPromptAgent(promptSpec{
		name:        NameExchangeRatio,
		inputs:      []state.Key{state.KeyDealStructure},
		output:      state.KeyExchangeRatio,
		extraInputs: []state.Key{state.KeyAcquirerData},
		system: `You are an M&A analyst deriving the stock exchange ratio for the stock component of the consideration. ` +
			`Compute fixed and floating ratio alternatives with collar bounds where sensible. ` +
			`Produce "exchange_ratio", "collar" ({floor, cap}), "ratio_alternatives" (list of records), and a "findings" array of {category, subject, detail} objects.`,
	})
}

func NewIntegrationPlanner() Agent {
	return newPromptAgent(promptSpec{
		name:        NameIntegration,
		inputs:      []state.Key{state.KeyDealStructure},
		output:      state.KeyIntegration,
		extraInputs: []state.Key{state.KeyMarketStrategy},
		system: `You are a post-merger integration lead. ` +
			`Draft the first-100-days plan, synergy capture roadmap with cost/revenue split, and retention priorities. ` +
			`Produce "integration_blueprint" ({first_100_days, synergy_roadmap, retention_plan}), "synergy_estimate", and a "findings" array of {category, subject, detail} objects.`,
	})
}
