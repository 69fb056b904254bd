// Package agent defines the uniform contract the orchestrator drives and
// the concrete analyst roster. Each agent declares the state keys it reads
// and the keys it is the sole writer of; the scheduler derives the execution
// waves from those declarations.
package agent

import (
	"context"
	"log/slog"

	"github.com/dealdesk/dealdesk/pkg/llm"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/providers"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// Stable agent names, used in logs, events, and agent records.
const (
	NameFinancialAnalyst  = "financial-analyst"
	NameDeepDive          = "financial-deep-dive"
	NameCompetitive       = "competitive-benchmarking"
	NameLegalCounsel      = "legal-counsel"
	NameMarketStrategist  = "market-strategist"
	NameMacroAnalyst      = "macroeconomic-analyst"
	NameRiskAssessment    = "risk-assessment"
	NameTaxStructuring    = "tax-structuring"
	NameDealStructuring   = "deal-structuring"
	NameAccretionDilution = "accretion-dilution"
	NameSourcesUses       = "sources-uses"
	NameContribution      = "contribution-analysis"
	NameExchangeRatio     = "exchange-ratio"
	NameIntegration       = "integration-planner"
	NameExternalValidator = "external-validator"
	NameSynthesis         = "synthesis"
)

// Agent is the uniform contract every analyst satisfies.
//
// Execute must write only to keys listed in ProducedOutputs (the handle
// rejects anything else) and may append to the anomaly log at will. A
// returned error is a fatal agent failure; recoverable problems belong in
// Result.Warnings or Result.Errors instead.
type Agent interface {
	Name() string
	RequiredInputs() []state.Key
	ProducedOutputs() []state.Key
	Execute(ctx context.Context, h *state.Handle, rc *RunContext) (*Result, error)
}

// Result is an agent's structured outcome.
type Result struct {
	Payload         map[string]any
	Warnings        []string
	Errors          []string
	Recommendations []string
}

// Status derives the record status from the collected messages.
func (r *Result) Status() models.AgentRecordStatus {
	switch {
	case len(r.Errors) > 0:
		return models.AgentStatusError
	case len(r.Warnings) > 0:
		return models.AgentStatusWarning
	default:
		return models.AgentStatusOK
	}
}

// RunContext carries the per-job collaborators an agent may use.
type RunContext struct {
	JobID  string
	Params models.JobParams
	LLM    *llm.Pipeline

	// Search is optional; a nil client returns no results.
	Search *providers.SearchClient

	Log *slog.Logger
}

// Logger returns the context logger, falling back to the default.
func (rc *RunContext) Logger() *slog.Logger {
	if rc.Log != nil {
		return rc.Log
	}
	return slog.Default()
}
