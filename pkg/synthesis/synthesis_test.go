package synthesis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/pkg/agent"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/state"
)

func newRunContext(dealValue *float64) *agent.RunContext {
	return &agent.RunContext{
		JobID: "job-1",
		Params: models.JobParams{
			Target:    "ACME",
			DealValue: dealValue,
			Thesis:    "platform consolidation",
		},
	}
}

// seedFinancialAnalyst commits a realistic financial-analyst run: state
// keys plus the agent record with root-promoted DCF values.
func seedFinancialAnalyst(t *testing.T, s *state.Store) {
	t.Helper()
	require.NoError(t, s.DeclareOwner(agent.NameFinancialAnalyst,
		state.KeyNormalizedFinancials, state.KeyValuationModels,
		state.KeyAdvancedValuation, state.KeyEBITDA, state.KeyAnomalyDetection))
	h := s.HandleFor(agent.NameFinancialAnalyst)

	scenarios := map[string]any{
		"base":        map[string]any{"enterprise_value": 5000.0, "wacc": 0.085},
		"optimistic":  map[string]any{"enterprise_value": 6200.0},
		"pessimistic": map[string]any{"enterprise_value": 3900.0},
	}
	require.NoError(t, h.Set(state.KeyNormalizedFinancials, map[string]any{"quality_score": 88.0}))
	require.NoError(t, h.Set(state.KeyValuationModels, map[string]any{"dcf_scenarios": scenarios}))
	require.NoError(t, h.Set(state.KeyAdvancedValuation, map[string]any{"dcf_analysis": scenarios}))
	require.NoError(t, h.Set(state.KeyEBITDA, map[string]any{"normalized_ebitda": 250.0}))
	require.NoError(t, h.Set(state.KeyAnomalyDetection, map[string]any{"excluded_years": []any{}}))

	s.AppendRecord(models.AgentRecord{
		JobID:     "job-1",
		AgentName: agent.NameFinancialAnalyst,
		Status:    models.AgentStatusOK,
		Payload: map[string]any{
			"enterprise_value":       5000.0,
			"equity_value":           4600.0,
			"equity_value_per_share": 46.0,
			"wacc":                   0.085,
			"terminal_growth_rate":   0.025,
			"advanced_valuation":     map[string]any{"dcf_analysis": scenarios},
		},
		StartedAt:   time.Now().Add(-time.Minute),
		CompletedAt: time.Now(),
	})
}

func runSynthesis(t *testing.T, s *state.Store, rc *agent.RunContext) map[string]any {
	t.Helper()
	syn := New()
	require.NoError(t, s.DeclareOwner(syn.Name(), syn.ProducedOutputs()...))
	_, err := syn.Execute(context.Background(), s.HandleFor(syn.Name()), rc)
	require.NoError(t, err)
	doc, err := s.Synthesized()
	require.NoError(t, err)
	return doc
}

func TestSynthesizer_DualShapeDCF(t *testing.T) {
	s := state.New()
	seedFinancialAnalyst(t, s)

	doc := runSynthesis(t, s, newRunContext(nil))
	dcf := doc["detailed_financials"].(map[string]any)["dcf_outputs"].(map[string]any)

	// Nested scenarios AND root-promoted base-case values
	assert.Contains(t, dcf, "base")
	assert.Contains(t, dcf, "optimistic")
	assert.Contains(t, dcf, "pessimistic")
	assert.Equal(t, 5000.0, dcf["enterprise_value"])
	assert.Equal(t, 4600.0, dcf["equity_value"])
	assert.Equal(t, 0.085, dcf["wacc"])
	assert.Equal(t, 0.025, dcf["terminal_growth_rate"])
}

func TestSynthesizer_DealValue(t *testing.T) {
	t.Run("user provided with variance", func(t *testing.T) {
		s := state.New()
		seedFinancialAnalyst(t, s)
		dv := 5500.0

		doc := runSynthesis(t, s, newRunContext(&dv))
		dealValue := doc["deal_value"].(map[string]any)
		assert.Equal(t, "user_provided", dealValue["source"])
		assert.Equal(t, 5500.0, dealValue["value"])
		assert.InDelta(t, 0.10, dealValue["variance_vs_dcf_base"].(float64), 1e-9)
	})

	t.Run("auto calculated with scenario range", func(t *testing.T) {
		s := state.New()
		seedFinancialAnalyst(t, s)

		doc := runSynthesis(t, s, newRunContext(nil))
		dealValue := doc["deal_value"].(map[string]any)
		assert.Equal(t, "auto_calculated", dealValue["source"])
		assert.Equal(t, 5000.0, dealValue["value"])

		rng := dealValue["scenario_range"].(map[string]any)
		assert.Equal(t, 6200.0, rng["optimistic"])
		assert.Equal(t, 3900.0, rng["pessimistic"])
	})
}

func TestSynthesizer_EBITDAFallback(t *testing.T) {
	t.Run("raw latest EBITDA when normalization empty", func(t *testing.T) {
		s := state.New()
		seedFinancialAnalyst(t, s)
		// Overwrite the EBITDA key with only the raw figure
		require.NoError(t, s.HandleFor(agent.NameFinancialAnalyst).Set(state.KeyEBITDA,
			map[string]any{"raw_latest_ebitda": 240.0}))

		doc := runSynthesis(t, s, newRunContext(nil))
		assert.Equal(t, 240.0, doc["detailed_financials"].(map[string]any)["normalized_ebitda"])
	})

	t.Run("zero with warning when nothing available", func(t *testing.T) {
		s := state.New()
		seedFinancialAnalyst(t, s)
		require.NoError(t, s.HandleFor(agent.NameFinancialAnalyst).Set(state.KeyEBITDA, map[string]any{}))

		syn := New()
		require.NoError(t, s.DeclareOwner(syn.Name(), syn.ProducedOutputs()...))
		res, err := syn.Execute(context.Background(), s.HandleFor(syn.Name()), newRunContext(nil))
		require.NoError(t, err)

		doc, err := s.Synthesized()
		require.NoError(t, err)
		assert.Equal(t, 0.0, doc["detailed_financials"].(map[string]any)["normalized_ebitda"])
		assert.Contains(t, res.Warnings, "no EBITDA available from any source; defaulting to 0")
	})
}

func TestSynthesizer_CompetitiveLandscapeFallback(t *testing.T) {
	s := state.New()
	seedFinancialAnalyst(t, s)

	// Strategist emitted a placeholder; benchmarking has real data
	s.AppendRecord(models.AgentRecord{
		AgentName: agent.NameMarketStrategist,
		Status:    models.AgentStatusOK,
		Payload:   map[string]any{"market_overview": "large TAM", "competitive_landscape": "N/A"},
	})
	s.AppendRecord(models.AgentRecord{
		AgentName: agent.NameCompetitive,
		Status:    models.AgentStatusOK,
		Payload:   map[string]any{"competitive_landscape": map[string]any{"market_position": "top three"}},
	})

	doc := runSynthesis(t, s, newRunContext(nil))
	market := doc["market_analysis"].(map[string]any)
	landscape := market["competitive_landscape"].(map[string]any)
	assert.Equal(t, "top three", landscape["market_position"], "real agent data preferred over N/A")
	assert.Equal(t, "large TAM", market["market_overview"])
}

func TestSynthesizer_RiskMacroSurfacesEmpty(t *testing.T) {
	s := state.New()
	seedFinancialAnalyst(t, s)
	s.AppendRecord(models.AgentRecord{
		AgentName: agent.NameMacroAnalyst,
		Status:    models.AgentStatusOK,
		Payload:   map[string]any{"scenario_models": []any{map[string]any{"name": "soft landing"}}},
	})

	doc := runSynthesis(t, s, newRunContext(nil))
	riskMacro := doc["risk_macro"].(map[string]any)
	assert.NotEmpty(t, riskMacro["scenario_models"])
	assert.Empty(t, riskMacro["correlation_analysis"], "missing macro section surfaced empty, not fabricated")
	assert.Empty(t, riskMacro["sensitivity_analysis"])
}

func TestSynthesizer_FailsWithoutFinancialAnalyst(t *testing.T) {
	s := state.New()
	syn := New()
	require.NoError(t, s.DeclareOwner(syn.Name(), syn.ProducedOutputs()...))

	_, err := syn.Execute(context.Background(), s.HandleFor(syn.Name()), newRunContext(nil))
	require.Error(t, err)
	assert.False(t, s.Has(state.KeySynthesizedData), "no partial document committed")
}

func TestSynthesizer_WriteOnce(t *testing.T) {
	s := state.New()
	seedFinancialAnalyst(t, s)
	runSynthesis(t, s, newRunContext(nil))

	syn := New()
	_, err := syn.Execute(context.Background(), s.HandleFor(syn.Name()), newRunContext(nil))
	require.ErrorIs(t, err, state.ErrWriteOnce)
}

func TestSynthesizer_Stamps(t *testing.T) {
	s := state.New()
	seedFinancialAnalyst(t, s)

	before := time.Now().UTC()
	doc := runSynthesis(t, s, newRunContext(nil))

	meta := doc["metadata"].(map[string]any)
	assert.Equal(t, DataVersion, meta["data_version"])
	assert.Equal(t, 1, meta["agent_coverage"].(int))

	ts, err := time.Parse(time.RFC3339Nano, meta["consolidated_timestamp"].(string))
	require.NoError(t, err)
	assert.False(t, ts.Before(before.Truncate(time.Second)))

	for _, rec := range s.Records() {
		assert.True(t, ts.After(rec.CompletedAt) || ts.Equal(rec.CompletedAt),
			"consolidated_timestamp must be later than every agent end time")
	}

	synMeta := doc["synthesis_metadata"].(map[string]any)
	assert.Equal(t, []string{agent.NameFinancialAnalyst}, synMeta["contributing_agents"])
}

func TestDedupeFindings(t *testing.T) {
	records := map[string]models.AgentRecord{
		agent.NameLegalCounsel: {
			AgentName: agent.NameLegalCounsel,
			Payload: map[string]any{"findings": []any{
				map[string]any{"category": "risk", "subject": "Customer Concentration", "detail": "top customer is 40% of revenue"},
			}},
		},
		agent.NameRiskAssessment: {
			AgentName: agent.NameRiskAssessment,
			Payload: map[string]any{"findings": []any{
				map[string]any{"category": "risk", "subject": "customer  concentration", "detail": "top customer is 40% of revenue and under contract renewal in 2027"},
				map[string]any{"category": "risk", "subject": "fx exposure", "detail": "60% of revenue is non-USD"},
			}},
		},
	}

	findings, merged := dedupeFindings(records, []string{agent.NameLegalCounsel, agent.NameRiskAssessment})
	require.Len(t, findings, 2)
	assert.Equal(t, 1, merged)

	first := findings[0]
	assert.Equal(t, "Customer Concentration", first["subject"])
	assert.ElementsMatch(t, []string{agent.NameLegalCounsel, agent.NameRiskAssessment}, first["agents"])
	assert.Contains(t, first["detail"], "contract renewal", "longer detail wins the merge")
}
