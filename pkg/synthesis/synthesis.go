// Package synthesis consolidates every committed agent output into the
// canonical synthesized_data document. The document is written exactly once
// per job and is the only state renderers are allowed to read.
package synthesis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dealdesk/dealdesk/pkg/agent"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// DataVersion stamps the synthesized document schema revision. Renderers
// and the validator key off it.
const DataVersion = "2.0"

// Synthesizer is the synthesis agent. It is deterministic: no LLM calls,
// only consolidation of what the analytical agents already committed.
type Synthesizer struct {
	// contributors is the declared agent list checked during collection.
	contributors []string
}

// New builds the synthesizer over the standard roster.
func New() *Synthesizer {
	roster := agent.Roster()
	names := make([]string, len(roster))
	for i, a := range roster {
		names[i] = a.Name()
	}
	return &Synthesizer{contributors: names}
}

func (s *Synthesizer) Name() string { return agent.NameSynthesis }

func (s *Synthesizer) RequiredInputs() []state.Key {
	return []state.Key{state.KeyNormalizedFinancials}
}

func (s *Synthesizer) ProducedOutputs() []state.Key {
	return []state.Key{state.KeySynthesizedData}
}

// Execute runs the consolidation procedure: collect, serialize, dedupe,
// extract sections, annotate deal value, stamp, commit.
func (s *Synthesizer) Execute(ctx context.Context, h *state.Handle, rc *agent.RunContext) (*agent.Result, error) {
	result := &agent.Result{}

	// 1. Collect. Missing contributors are warnings, never placeholders.
	records := make(map[string]models.AgentRecord)
	for _, rec := range h.Records() {
		records[rec.AgentName] = rec
	}
	var contributing []string
	for _, name := range s.contributors {
		if _, ok := records[name]; ok {
			contributing = append(contributing, name)
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("no output from %s; section left unpopulated", name))
		}
	}

	// The valuation backbone cannot be synthesized around: without the
	// financial analyst there is no document, partial or otherwise.
	finRec, ok := records[agent.NameFinancialAnalyst]
	if !ok {
		return nil, fmt.Errorf("financial-analyst produced no output; refusing to commit a partial document")
	}

	// 2+3. Serialize everything to JSON-clean values, then dedupe findings.
	findings, mergedCount := dedupeFindings(records, s.contributors)

	// 4. Extract sections.
	detailed, warns := s.detailedFinancials(h, finRec)
	result.Warnings = append(result.Warnings, warns...)

	doc := map[string]any{
		"executive_summary":     s.executiveSummary(rc, detailed, findings),
		"detailed_financials":   detailed,
		"legal_diligence":       sectionFrom(records, agent.NameLegalCounsel),
		"market_analysis":       s.marketAnalysis(records),
		"risk_macro":            s.riskMacro(records),
		"validation_summary":    sectionFrom(records, agent.NameExternalValidator),
		"integration_blueprint": sectionFrom(records, agent.NameIntegration),
		"tax_structure":         sectionFrom(records, agent.NameTaxStructuring),
		"deal_structure":        sectionFrom(records, agent.NameDealStructuring),
		"merger_math": map[string]any{
			"accretion_dilution":    sectionFrom(records, agent.NameAccretionDilution),
			"sources_uses":          sectionFrom(records, agent.NameSourcesUses),
			"contribution_analysis": sectionFrom(records, agent.NameContribution),
			"exchange_ratio":        sectionFrom(records, agent.NameExchangeRatio),
		},
		"consolidated_findings": findings,
		"anomaly_log":           serialize(h.Anomalies()),
	}

	// 5. Deal value annotation.
	dealValue, dvWarns := annotateDealValue(rc.Params, detailed)
	doc["deal_value"] = dealValue
	result.Warnings = append(result.Warnings, dvWarns...)

	// 6. Stamp.
	doc["metadata"] = map[string]any{
		"target":                 rc.Params.Target,
		"acquirer":               rc.Params.Acquirer,
		"agent_coverage":         len(contributing),
		"data_version":           DataVersion,
		"consolidated_timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
	doc["synthesis_metadata"] = map[string]any{
		"contributing_agents":  contributing,
		"deduplicated_count":   mergedCount,
		"total_findings":       len(findings),
		"missing_contributors": len(s.contributors) - len(contributing),
	}

	// 7. Commit once. The state layer rejects a second write.
	if err := h.Set(state.KeySynthesizedData, doc); err != nil {
		return nil, err
	}

	result.Payload = doc
	return result, nil
}

// detailedFinancials builds the financial section with the dual-shape
// dcf_outputs contract: nested scenarios plus base-case values promoted to
// the root of dcf_outputs.
func (s *Synthesizer) detailedFinancials(h *state.Handle, finRec models.AgentRecord) (map[string]any, []string) {
	var warnings []string

	section := map[string]any{
		"normalized_financials": serialize(valueOr(h, state.KeyNormalizedFinancials)),
		"valuation_models":      serialize(valueOr(h, state.KeyValuationModels)),
		"advanced_valuation":    serialize(valueOr(h, state.KeyAdvancedValuation)),
		"anomaly_detection":     serialize(valueOr(h, state.KeyAnomalyDetection)),
	}

	// dcf_outputs: scenarios nested under base/optimistic/pessimistic AND
	// the base case promoted to the dcf_outputs root.
	dcf := map[string]any{}
	payload := asMap(serialize(finRec.Payload))
	if adv, ok := asMap(payload["advanced_valuation"])["dcf_analysis"].(map[string]any); ok {
		for _, scenario := range []string{"base", "optimistic", "pessimistic"} {
			if v, ok := adv[scenario]; ok {
				dcf[scenario] = v
			}
		}
	}
	for _, field := range []string{"enterprise_value", "equity_value", "equity_value_per_share", "wacc", "terminal_growth_rate"} {
		if v, ok := payload[field]; ok {
			dcf[field] = v
		}
	}
	section["dcf_outputs"] = dcf

	// normalized_ebitda must be a number: normalization first, raw latest
	// EBITDA second, explicit zero with a warning last.
	ebitda, warn := normalizedEBITDA(h)
	if warn != "" {
		warnings = append(warnings, warn)
	}
	section["normalized_ebitda"] = ebitda

	return section, warnings
}

// normalizedEBITDA resolves the headline EBITDA through the fallback chain.
func normalizedEBITDA(h *state.Handle) (float64, string) {
	if m := asMap(serialize(valueOr(h, state.KeyEBITDA))); m != nil {
		if v, ok := m["normalized_ebitda"].(float64); ok {
			return v, ""
		}
		if v, ok := m["raw_latest_ebitda"].(float64); ok {
			return v, "normalized EBITDA unavailable; using raw latest EBITDA"
		}
	}
	if fd := asMap(serialize(valueOr(h, state.KeyFinancialData))); fd != nil {
		if stmts, ok := fd["statements"].([]any); ok && len(stmts) > 0 {
			if latest, ok := stmts[len(stmts)-1].(map[string]any); ok {
				if v, ok := latest["ebitda"].(float64); ok {
					return v, "normalized EBITDA unavailable; using raw latest EBITDA"
				}
			}
		}
	}
	return 0, "no EBITDA available from any source; defaulting to 0"
}

// marketAnalysis merges the strategist view with the competitive landscape,
// preferring real competitive agent data over placeholders.
func (s *Synthesizer) marketAnalysis(records map[string]models.AgentRecord) map[string]any {
	section := asMap(sectionFrom(records, agent.NameMarketStrategist))
	if section == nil {
		section = map[string]any{}
	}

	landscape := section["competitive_landscape"]
	if isPlaceholder(landscape) {
		if comp := asMap(sectionFrom(records, agent.NameCompetitive)); comp != nil {
			if v, ok := comp["competitive_landscape"]; ok && !isPlaceholder(v) {
				landscape = v
			} else {
				landscape = comp
			}
		}
	}
	if landscape == nil {
		landscape = "N/A"
	}
	section["competitive_landscape"] = landscape
	return section
}

// riskMacro combines the risk register with the macro agent's models.
// Absent macro sections surface as empty values, never fabricated ones.
func (s *Synthesizer) riskMacro(records map[string]models.AgentRecord) map[string]any {
	section := map[string]any{
		"risk_assessment": sectionFrom(records, agent.NameRiskAssessment),
	}
	macro := asMap(sectionFrom(records, agent.NameMacroAnalyst))
	for _, field := range []string{"scenario_models", "correlation_analysis", "sensitivity_analysis"} {
		if v, ok := macro[field]; ok {
			section[field] = v
		} else {
			section[field] = map[string]any{}
		}
	}
	return section
}

// executiveSummary composes the headline narrative from the numbers already
// in the document. Deterministic on purpose: the summary must agree with
// the detailed sections bit for bit.
func (s *Synthesizer) executiveSummary(rc *agent.RunContext, detailed map[string]any, findings []map[string]any) map[string]any {
	dcf := asMap(detailed["dcf_outputs"])
	var headline string
	if ev, ok := dcf["enterprise_value"].(float64); ok {
		headline = fmt.Sprintf("Base-case DCF values %s at an enterprise value of %.0f.", rc.Params.Target, ev)
	} else {
		headline = fmt.Sprintf("Valuation for %s could not be established.", rc.Params.Target)
	}

	topFindings := findings
	if len(topFindings) > 10 {
		topFindings = topFindings[:10]
	}
	return map[string]any{
		"headline":     headline,
		"thesis":       rc.Params.Thesis,
		"top_findings": topFindings,
	}
}

// sectionFrom returns an agent's serialized payload, or nil when it did
// not run. Callers surface nil as a missing section for the validator.
func sectionFrom(records map[string]models.AgentRecord, name string) any {
	rec, ok := records[name]
	if !ok || rec.Payload == nil {
		return nil
	}
	return serialize(rec.Payload)
}

// isPlaceholder reports whether a value carries no real content: nil, empty
// containers, or an explicit not-available marker.
func isPlaceholder(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		s := strings.TrimSpace(strings.ToLower(t))
		return s == "" || s == "n/a" || s == "none" || s == "not available"
	case map[string]any:
		return len(t) == 0
	case []any:
		return len(t) == 0
	}
	return false
}

func valueOr(h *state.Handle, k state.Key) any {
	v, _ := h.Get(k)
	return v
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
