package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/pkg/config"
	"github.com/dealdesk/dealdesk/pkg/state"
)

const synthAgent = "synthesis"

func validDocument() map[string]any {
	return map[string]any{
		"metadata": map[string]any{
			"agent_coverage":         12,
			"data_version":           "2.0",
			"consolidated_timestamp": "2026-08-24T10:00:00Z",
		},
		"executive_summary": map[string]any{"headline": "x"},
		"detailed_financials": map[string]any{
			"dcf_outputs": map[string]any{
				"base":                 map[string]any{"enterprise_value": 5000.0},
				"optimistic":           map[string]any{"enterprise_value": 6200.0},
				"pessimistic":          map[string]any{"enterprise_value": 3900.0},
				"enterprise_value":     5000.0,
				"equity_value":         4600.0,
				"wacc":                 0.085,
				"terminal_growth_rate": 0.025,
			},
			"normalized_ebitda": 250.0,
		},
		"legal_diligence":       map[string]any{},
		"market_analysis":       map[string]any{},
		"risk_macro":            map[string]any{},
		"validation_summary":    map[string]any{},
		"integration_blueprint": map[string]any{},
		"tax_structure":         map[string]any{},
	}
}

func storeWith(t *testing.T, doc map[string]any) *state.Store {
	t.Helper()
	s := state.New()
	require.NoError(t, s.DeclareOwner(synthAgent, state.KeySynthesizedData))
	require.NoError(t, s.HandleFor(synthAgent).Set(state.KeySynthesizedData, doc))
	return s
}

func TestValidator_ValidDocument(t *testing.T) {
	v := New(&config.ValidatorConfig{MinAgentCoverage: 10})
	report := v.Validate(storeWith(t, validDocument()))

	assert.True(t, report.Valid)
	assert.Empty(t, report.Issues)
	assert.False(t, report.HasBlocker())
}

func TestValidator_MissingSynthesizedData(t *testing.T) {
	v := New(nil)
	report := v.Validate(state.New())

	assert.False(t, report.Valid)
	require.Len(t, report.Issues, 1)
	assert.Equal(t, SeverityBlocker, report.Issues[0].Severity)
	assert.Contains(t, report.BlockerSummary(), "synthesized_data")
}

func TestValidator_Sections(t *testing.T) {
	t.Run("missing section is high severity", func(t *testing.T) {
		doc := validDocument()
		delete(doc, "legal_diligence")

		report := New(nil).Validate(storeWith(t, doc))
		assert.True(t, report.Valid, "high severity does not block")
		require.Len(t, report.Issues, 1)
		assert.Equal(t, SeverityHigh, report.Issues[0].Severity)
		assert.Contains(t, report.Issues[0].Description, "legal_diligence")
	})

	t.Run("missing detailed_financials is a blocker", func(t *testing.T) {
		doc := validDocument()
		delete(doc, "detailed_financials")

		report := New(nil).Validate(storeWith(t, doc))
		assert.False(t, report.Valid)
		assert.True(t, report.HasBlocker())
	})
}

func TestValidator_DCFShape(t *testing.T) {
	detailed := func(doc map[string]any) map[string]any {
		return doc["detailed_financials"].(map[string]any)
	}

	t.Run("missing dcf_outputs blocks", func(t *testing.T) {
		doc := validDocument()
		delete(detailed(doc), "dcf_outputs")

		report := New(nil).Validate(storeWith(t, doc))
		assert.True(t, report.HasBlocker())
		assert.Contains(t, report.BlockerSummary(), "dcf_outputs is missing")
	})

	t.Run("nested scenarios without root promotion blocks", func(t *testing.T) {
		doc := validDocument()
		dcf := detailed(doc)["dcf_outputs"].(map[string]any)
		for _, k := range []string{"enterprise_value", "equity_value", "wacc", "terminal_growth_rate"} {
			delete(dcf, k)
		}

		report := New(nil).Validate(storeWith(t, doc))
		assert.True(t, report.HasBlocker())
		assert.Contains(t, report.BlockerSummary(), "no root-promoted enterprise_value")
	})

	t.Run("non-positive enterprise value blocks", func(t *testing.T) {
		doc := validDocument()
		detailed(doc)["dcf_outputs"].(map[string]any)["enterprise_value"] = -12.5

		report := New(nil).Validate(storeWith(t, doc))
		assert.True(t, report.HasBlocker())
		assert.Contains(t, report.BlockerSummary(), "must be positive")
	})
}

func TestValidator_EBITDA(t *testing.T) {
	t.Run("non-numeric is high severity", func(t *testing.T) {
		doc := validDocument()
		doc["detailed_financials"].(map[string]any)["normalized_ebitda"] = "N/A"

		report := New(nil).Validate(storeWith(t, doc))
		assert.True(t, report.Valid)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, SeverityHigh, report.Issues[0].Severity)
	})

	t.Run("zero passes with a medium issue", func(t *testing.T) {
		doc := validDocument()
		doc["detailed_financials"].(map[string]any)["normalized_ebitda"] = 0.0

		report := New(nil).Validate(storeWith(t, doc))
		assert.True(t, report.Valid)
		require.Len(t, report.Issues, 1)
		assert.Equal(t, SeverityMedium, report.Issues[0].Severity)
	})
}

func TestValidator_Metadata(t *testing.T) {
	t.Run("coverage below floor", func(t *testing.T) {
		doc := validDocument()
		doc["metadata"].(map[string]any)["agent_coverage"] = 6

		report := New(&config.ValidatorConfig{MinAgentCoverage: 10}).Validate(storeWith(t, doc))
		assert.True(t, report.Valid)
		require.Len(t, report.Issues, 1)
		assert.Contains(t, report.Issues[0].Description, "below the required floor")
	})

	t.Run("JSON-decoded float coverage accepted", func(t *testing.T) {
		doc := validDocument()
		doc["metadata"].(map[string]any)["agent_coverage"] = 12.0

		report := New(&config.ValidatorConfig{MinAgentCoverage: 10}).Validate(storeWith(t, doc))
		assert.Empty(t, report.Issues)
	})

	t.Run("empty version stamps", func(t *testing.T) {
		doc := validDocument()
		doc["metadata"].(map[string]any)["data_version"] = ""
		doc["metadata"].(map[string]any)["consolidated_timestamp"] = ""

		report := New(nil).Validate(storeWith(t, doc))
		assert.True(t, report.Valid)
		assert.Len(t, report.Issues, 2)
	})
}

func TestValidator_Idempotent(t *testing.T) {
	s := storeWith(t, validDocument())
	v := New(nil)

	first := v.Validate(s)
	second := v.Validate(s)
	assert.Equal(t, first, second)
}

func TestCheckCrossFormat(t *testing.T) {
	v := New(nil)
	doc := validDocument()

	t.Run("matching metrics raise nothing", func(t *testing.T) {
		alerts := v.CheckCrossFormat(doc, []RenderedMetrics{
			{Format: "spreadsheet", EnterpriseValue: 5000.0, NormalizedEBITDA: 250.0, AgentCount: 12},
		})
		assert.Empty(t, alerts)
	})

	t.Run("mismatch alerts but does not block", func(t *testing.T) {
		alerts := v.CheckCrossFormat(doc, []RenderedMetrics{
			{Format: "slides", EnterpriseValue: 4999.99, NormalizedEBITDA: 250.0, AgentCount: 11},
		})
		require.Len(t, alerts, 2)
		assert.Contains(t, alerts[0], "slides")
	})
}
