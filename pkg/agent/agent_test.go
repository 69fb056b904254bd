package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/pkg/finance"
	"github.com/dealdesk/dealdesk/pkg/ingest"
	"github.com/dealdesk/dealdesk/pkg/llm"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/providers"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// stubLLM answers every completion with a fixed response.
type stubLLM struct {
	name  string
	out   string
	err   error
	calls int
}

func (s *stubLLM) Name() string { return s.name }

func (s *stubLLM) Complete(_ context.Context, _ []llm.Message) (string, error) {
	s.calls++
	return s.out, s.err
}

func newRunContext(primary, reasoner llm.Provider) *RunContext {
	return &RunContext{
		JobID:  "job-1",
		Params: models.JobParams{Target: "ACME", Thesis: "scale platform"},
		LLM:    llm.NewPipeline(primary, nil, reasoner, nil),
	}
}

// declareAndHandle registers an agent's outputs and returns its scoped handle.
func declareAndHandle(t *testing.T, s *state.Store, a Agent) *state.Handle {
	t.Helper()
	require.NoError(t, s.DeclareOwner(a.Name(), a.ProducedOutputs()...))
	return s.HandleFor(a.Name())
}

func seedFinancialData(t *testing.T, s *state.Store) {
	t.Helper()
	h := s.HandleFor(state.IngestionOwner)
	require.NoError(t, h.Set(state.KeyFinancialData, ingest.FinancialData{
		Statements: []finance.AnnualFinancials{
			{Year: 2020, Revenue: 1000, NetIncome: 80, OperatingIncome: 120, EBITDA: 180, CFO: 150, Capex: -60, RnD: 40},
			{Year: 2021, Revenue: 1150, NetIncome: 95, OperatingIncome: 140, EBITDA: 205, CFO: 170, Capex: -65, RnD: 44},
			// Restatement year with an implausible margin, must be excluded
			{Year: 2022, Revenue: 1200, NetIncome: -1500, OperatingIncome: 150, EBITDA: 215, CFO: 180, Capex: -70, RnD: 48},
			{Year: 2023, Revenue: 1400, NetIncome: 120, OperatingIncome: 175, EBITDA: 250, CFO: 210, Capex: -80, RnD: 52},
		},
		Profile:    &providers.CompanyProfile{Symbol: "ACME", Beta: 1.2, MktCap: 5000, Price: 50},
		KeyMetrics: []map[string]any{{"netDebt": 400.0}},
	}))
	require.NoError(t, h.Set(state.KeyTreasuryData, ingest.TreasuryData{
		Rates: []map[string]any{{"year10": 4.3}},
	}))
}

func TestFinancialAnalyst(t *testing.T) {
	s := state.New()
	seedFinancialData(t, s)

	a := NewFinancialAnalyst()
	h := declareAndHandle(t, s, a)

	res, err := a.Execute(context.Background(), h, newRunContext(&stubLLM{name: "primary"}, nil))
	require.NoError(t, err)

	t.Run("base-case DCF promoted to payload root", func(t *testing.T) {
		ev, ok := res.Payload["enterprise_value"].(float64)
		require.True(t, ok)
		assert.Greater(t, ev, 0.0)
		assert.Contains(t, res.Payload, "equity_value")
		assert.Contains(t, res.Payload, "equity_value_per_share")
		assert.Contains(t, res.Payload, "wacc")
		assert.Contains(t, res.Payload, "terminal_growth_rate")
	})

	t.Run("owned keys committed", func(t *testing.T) {
		for _, k := range a.ProducedOutputs() {
			assert.True(t, s.Has(k), "missing %s", k)
		}
		norm, ok := s.Get(state.KeyNormalizedFinancials)
		require.True(t, ok)
		nf := norm.(finance.NormalizedFinancials)
		assert.Len(t, nf.Years, 3)
		require.Len(t, nf.Exclusions, 1)
		assert.Equal(t, 2022, nf.Exclusions[0].Year)
	})

	t.Run("extreme-margin year flagged", func(t *testing.T) {
		assert.NotEmpty(t, res.Warnings)

		anomalies := s.Anomalies()
		require.Len(t, anomalies, 1)
		assert.Equal(t, NameFinancialAnalyst, anomalies[0].Agent)
		assert.Equal(t, "extreme_margin", anomalies[0].Category)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		s2 := state.New()
		seedFinancialData(t, s2)
		res2, err := a.Execute(context.Background(), declareAndHandle(t, s2, a), newRunContext(&stubLLM{name: "primary"}, nil))
		require.NoError(t, err)
		assert.Equal(t, res.Payload["enterprise_value"], res2.Payload["enterprise_value"])
	})
}

func TestFinancialAnalyst_NoUsableYears(t *testing.T) {
	s := state.New()
	h := s.HandleFor(state.IngestionOwner)
	require.NoError(t, h.Set(state.KeyFinancialData, ingest.FinancialData{
		Statements: []finance.AnnualFinancials{
			{Year: 2023, Revenue: 100, NetIncome: -500, OperatingIncome: 10},
		},
	}))

	a := NewFinancialAnalyst()
	_, err := a.Execute(context.Background(), declareAndHandle(t, s, a), newRunContext(&stubLLM{name: "primary"}, nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no usable fiscal years")
}

func TestPromptAgent(t *testing.T) {
	t.Run("commits parsed payload and lifts warnings", func(t *testing.T) {
		s := state.New()
		require.NoError(t, s.HandleFor(state.IngestionOwner).Set(state.KeySECFilings, ingest.FilingsData{}))
		require.NoError(t, s.HandleFor(state.IngestionOwner).Set(state.KeyProxyData, ingest.ProxyData{}))

		primary := &stubLLM{name: "primary", out: "```json\n" +
			`{"litigation_exposure": {"open_cases": 2}, "warnings": ["proxy statement is stale"], "recommendations": ["request updated DEF 14A"]}` +
			"\n```"}

		a := NewLegalCounsel()
		res, err := a.Execute(context.Background(), declareAndHandle(t, s, a), newRunContext(primary, nil))
		require.NoError(t, err)

		assert.Equal(t, []string{"proxy statement is stale"}, res.Warnings)
		assert.Equal(t, []string{"request updated DEF 14A"}, res.Recommendations)
		assert.Equal(t, models.AgentStatusWarning, res.Status())

		committed := s.GetMap(state.KeyLegal)
		require.NotNil(t, committed)
		assert.Contains(t, committed, "litigation_exposure")
	})

	t.Run("garbage completion is a fatal agent error", func(t *testing.T) {
		s := state.New()
		primary := &stubLLM{name: "primary", out: "I cannot answer that."}

		a := NewTaxStructuring()
		_, err := a.Execute(context.Background(), declareAndHandle(t, s, a), newRunContext(primary, nil))
		require.Error(t, err)
		assert.False(t, s.Has(state.KeyTax), "nothing committed on parse failure")
	})
}

func TestDeepDive_ReasonerFallback(t *testing.T) {
	s := state.New()
	reasoner := &stubLLM{name: "reasoner", err: &llm.APIError{Provider: "reasoner", StatusCode: 503}}
	primary := &stubLLM{name: "primary", out: `{"earnings_quality": "high"}`}

	a := NewDeepDive()
	res, err := a.Execute(context.Background(), declareAndHandle(t, s, a), newRunContext(primary, reasoner))
	require.NoError(t, err)

	assert.Equal(t, 1, reasoner.calls)
	assert.Equal(t, 1, primary.calls, "degraded to the standard pipeline")
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "reasoning channel failed")
	assert.True(t, s.Has(state.KeyDeepDive))
}

func TestExternalValidator_NoSearchConfigured(t *testing.T) {
	s := state.New()
	primary := &stubLLM{name: "primary", out: `{"confidence": 80, "validation_checks": []}`}

	a := NewExternalValidator()
	res, err := a.Execute(context.Background(), declareAndHandle(t, s, a), newRunContext(primary, nil))
	require.NoError(t, err)
	assert.Empty(t, res.Warnings, "nil search client is silent, not a warning")
	assert.True(t, s.Has(state.KeyExternalValidation))
}

func TestRoster(t *testing.T) {
	roster := Roster()
	require.Len(t, roster, 15)

	t.Run("unique names", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, a := range roster {
			assert.False(t, seen[a.Name()], "duplicate agent name %s", a.Name())
			seen[a.Name()] = true
		}
	})

	t.Run("no overlapping output declarations", func(t *testing.T) {
		s := state.New()
		for _, a := range roster {
			require.NoError(t, s.DeclareOwner(a.Name(), a.ProducedOutputs()...))
		}
	})

	t.Run("required set", func(t *testing.T) {
		assert.True(t, Required(NameFinancialAnalyst))
		assert.True(t, Required(NameSynthesis))
		assert.False(t, Required(NameLegalCounsel))
	})
}

func TestParseJSONObject(t *testing.T) {
	payload, err := parseJSONObject("```json\n{\"a\": 1,}\n```")
	require.NoError(t, err)
	assert.Equal(t, 1.0, payload["a"])

	_, err = parseJSONObject(`[1, 2, 3]`)
	require.Error(t, err, "top-level arrays rejected")
}
