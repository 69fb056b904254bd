package validator

import "fmt"

// RenderedMetrics are the headline values a renderer reports back after
// producing an output format.
type RenderedMetrics struct {
	Format           string  `json:"format"`
	EnterpriseValue  float64 `json:"enterprise_value"`
	NormalizedEBITDA float64 `json:"normalized_ebitda"`
	AgentCount       int     `json:"agent_count"`
}

// CheckCrossFormat verifies that every rendered format carries the same
// headline values as the synthesized document, bit for bit. A mismatch is
// a post-generation alert: the artifacts already exist, so it cannot block
// the job, but it means two deliverables disagree and someone must look.
func (v *Validator) CheckCrossFormat(doc map[string]any, rendered []RenderedMetrics) []string {
	if len(rendered) == 0 {
		return nil
	}

	detailed, _ := doc["detailed_financials"].(map[string]any)
	dcf, _ := detailed["dcf_outputs"].(map[string]any)
	ev, _ := dcf["enterprise_value"].(float64)
	ebitda, _ := detailed["normalized_ebitda"].(float64)
	meta, _ := doc["metadata"].(map[string]any)
	coverage, _ := asInt(meta["agent_coverage"])

	var alerts []string
	for _, m := range rendered {
		if m.EnterpriseValue != ev {
			alerts = append(alerts, fmt.Sprintf(
				"%s: enterprise value %v does not match synthesized %v", m.Format, m.EnterpriseValue, ev))
		}
		if m.NormalizedEBITDA != ebitda {
			alerts = append(alerts, fmt.Sprintf(
				"%s: normalized EBITDA %v does not match synthesized %v", m.Format, m.NormalizedEBITDA, ebitda))
		}
		if m.AgentCount != coverage {
			alerts = append(alerts, fmt.Sprintf(
				"%s: agent count %d does not match synthesized %d", m.Format, m.AgentCount, coverage))
		}
	}

	for _, alert := range alerts {
		v.log.Error("Cross-format consistency alert", "alert", alert)
	}
	return alerts
}
