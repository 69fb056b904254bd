package synthesis

import "github.com/dealdesk/dealdesk/pkg/models"

// annotateDealValue resolves the transaction value for the document.
// A user-supplied value keeps its provenance and is compared to the DCF
// base case; absent one, the base-case enterprise value stands in and the
// full scenario range is recorded for context.
func annotateDealValue(params models.JobParams, detailed map[string]any) (map[string]any, []string) {
	dcf := asMap(detailed["dcf_outputs"])
	baseEV, hasBase := dcf["enterprise_value"].(float64)

	if params.DealValue != nil {
		out := map[string]any{
			"value":  *params.DealValue,
			"source": "user_provided",
		}
		if hasBase && baseEV != 0 {
			out["variance_vs_dcf_base"] = (*params.DealValue - baseEV) / baseEV
		}
		return out, nil
	}

	if !hasBase {
		return map[string]any{
				"value":  0.0,
				"source": "auto_calculated",
			}, []string{
				"no deal value supplied and no DCF base case available; deal value set to 0",
			}
	}

	out := map[string]any{
		"value":  baseEV,
		"source": "auto_calculated",
		"scenario_range": map[string]any{
			"optimistic":  scenarioEV(dcf, "optimistic"),
			"base":        baseEV,
			"pessimistic": scenarioEV(dcf, "pessimistic"),
		},
	}
	return out, nil
}

func scenarioEV(dcf map[string]any, scenario string) float64 {
	m := asMap(dcf[scenario])
	ev, _ := m["enterprise_value"].(float64)
	return ev
}
