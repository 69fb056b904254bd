// Package validator guards the boundary between synthesis and every
// downstream consumer. It inspects the synthesized document and blocks
// rendering when the required invariants do not hold.
package validator

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/dealdesk/dealdesk/pkg/config"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// Severity grades a validation issue.
type Severity string

// Issue severities. A single critical blocker fails the job; high issues
// are logged but let rendering proceed.
const (
	SeverityBlocker Severity = "critical-blocker"
	SeverityHigh    Severity = "high"
	SeverityMedium  Severity = "medium"
)

// Issue is one validation finding.
type Issue struct {
	Severity    Severity `json:"severity"`
	Description string   `json:"description"`
	Remediation string   `json:"remediation"`
}

// Report is the validator outcome.
type Report struct {
	Valid  bool    `json:"valid"`
	Issues []Issue `json:"issues"`
}

// HasBlocker reports whether any issue is a critical blocker.
func (r *Report) HasBlocker() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityBlocker {
			return true
		}
	}
	return false
}

// BlockerSummary returns the first blocker's description, for the job's
// terminal error message.
func (r *Report) BlockerSummary() string {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityBlocker {
			return issue.Description
		}
	}
	return ""
}

// requiredSections are the top-level sections renderers consume.
var requiredSections = []string{
	"metadata",
	"executive_summary",
	"detailed_financials",
	"legal_diligence",
	"market_analysis",
	"risk_macro",
	"validation_summary",
	"integration_blueprint",
	"tax_structure",
}

// Validator checks the synthesized document. Validation is idempotent and
// read-only; running it twice yields the same report.
type Validator struct {
	minAgentCoverage int
	log              *slog.Logger
}

// New builds a validator from configuration.
func New(cfg *config.ValidatorConfig) *Validator {
	min := 10
	if cfg != nil && cfg.MinAgentCoverage > 0 {
		min = cfg.MinAgentCoverage
	}
	return &Validator{minAgentCoverage: min, log: slog.With("component", "validator")}
}

// Validate inspects the job's synthesized document.
func (v *Validator) Validate(s *state.Store) *Report {
	report := &Report{}

	doc, err := s.Synthesized()
	if errors.Is(err, state.ErrSynthesizedMissing) {
		report.add(SeverityBlocker,
			"synthesized_data is absent from the analysis state",
			"Synthesis must complete before validation; check the synthesis agent's record for its failure")
		return report.finish(v.log)
	}

	v.checkSections(doc, report)
	v.checkDCF(doc, report)
	v.checkEBITDA(doc, report)
	v.checkMetadata(doc, report)

	return report.finish(v.log)
}

func (v *Validator) checkSections(doc map[string]any, report *Report) {
	for _, section := range requiredSections {
		val, ok := doc[section]
		if ok && val != nil {
			continue
		}
		if section == "detailed_financials" {
			report.add(SeverityBlocker,
				"detailed_financials section is missing",
				"Financial analyst must complete valuation before synthesis")
			continue
		}
		report.add(SeverityHigh,
			fmt.Sprintf("required section %q is missing", section),
			fmt.Sprintf("Check the record of the agent that populates %q", section))
	}
}

// checkDCF enforces the dual-shape contract: root-promoted base-case values
// with a positive enterprise value.
func (v *Validator) checkDCF(doc map[string]any, report *Report) {
	detailed, ok := doc["detailed_financials"].(map[string]any)
	if !ok {
		return // section-level blocker already recorded
	}

	dcf, ok := detailed["dcf_outputs"].(map[string]any)
	if !ok {
		report.add(SeverityBlocker,
			"detailed_financials.dcf_outputs is missing",
			"Financial analyst must complete valuation before synthesis")
		return
	}

	ev, ok := dcf["enterprise_value"].(float64)
	if !ok {
		if _, nested := dcf["base"]; nested {
			report.add(SeverityBlocker,
				"dcf_outputs has nested scenarios but no root-promoted enterprise_value",
				"Synthesis must promote base-case DCF values to the dcf_outputs root")
			return
		}
		report.add(SeverityBlocker,
			"dcf_outputs.enterprise_value is missing",
			"Financial analyst must complete valuation before synthesis")
		return
	}
	if ev <= 0 {
		report.add(SeverityBlocker,
			fmt.Sprintf("dcf_outputs.enterprise_value is %.2f; must be positive", ev),
			"Review the DCF inputs; a non-positive enterprise value indicates broken cash flow data")
	}
}

func (v *Validator) checkEBITDA(doc map[string]any, report *Report) {
	detailed, ok := doc["detailed_financials"].(map[string]any)
	if !ok {
		return
	}
	ebitda, ok := detailed["normalized_ebitda"].(float64)
	if !ok {
		report.add(SeverityHigh,
			"detailed_financials.normalized_ebitda is not a number",
			"Synthesis must resolve EBITDA through its fallback chain, ending at an explicit 0")
		return
	}
	if ebitda == 0 {
		report.add(SeverityMedium,
			"normalized_ebitda is 0; no EBITDA was available from any source",
			"Verify statement history coverage for the target")
	}
}

func (v *Validator) checkMetadata(doc map[string]any, report *Report) {
	meta, ok := doc["metadata"].(map[string]any)
	if !ok {
		return // missing metadata already recorded as a section issue
	}

	coverage, ok := asInt(meta["agent_coverage"])
	if !ok || coverage < v.minAgentCoverage {
		report.add(SeverityHigh,
			fmt.Sprintf("agent coverage %d is below the required floor of %d", coverage, v.minAgentCoverage),
			"Inspect the records of the agents that did not contribute")
	}

	if s, _ := meta["data_version"].(string); s == "" {
		report.add(SeverityHigh,
			"metadata.data_version is empty",
			"Synthesis must stamp the document schema version")
	}
	if s, _ := meta["consolidated_timestamp"].(string); s == "" {
		report.add(SeverityHigh,
			"metadata.consolidated_timestamp is empty",
			"Synthesis must stamp the consolidation time")
	}
}

func (r *Report) add(severity Severity, description, remediation string) {
	r.Issues = append(r.Issues, Issue{Severity: severity, Description: description, Remediation: remediation})
}

func (r *Report) finish(log *slog.Logger) *Report {
	r.Valid = !r.HasBlocker()
	for _, issue := range r.Issues {
		if issue.Severity == SeverityBlocker {
			log.Error("Validation blocker", "description", issue.Description)
		} else {
			log.Warn("Validation issue", "severity", issue.Severity, "description", issue.Description)
		}
	}
	return r
}

// asInt tolerates both in-memory int values and JSON-decoded float64.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	}
	return 0, false
}
