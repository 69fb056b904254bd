package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/dealdesk/dealdesk/pkg/llm"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// ExternalValidator cross-references the internal conclusions against the
// outside world. It runs last among the analytical agents, reads every
// committed record, and optionally pulls web search results to challenge
// the valuation and the headline findings.
type ExternalValidator struct{}

func NewExternalValidator() *ExternalValidator { return &ExternalValidator{} }

func (a *ExternalValidator) Name() string { return NameExternalValidator }

func (a *ExternalValidator) RequiredInputs() []state.Key {
	return []state.Key{state.KeyValuationModels}
}

func (a *ExternalValidator) ProducedOutputs() []state.Key {
	return []state.Key{state.KeyExternalValidation}
}

const externalValidatorSystem = `You are an independent reviewer challenging an M&A diligence package before it goes to the deal committee. ` +
	`Cross-check the internal conclusions against each other and against the external references provided; flag contradictions, stale data, and overreach. ` +
	`Produce "validation_checks" (list of {check, outcome, detail}), "contradictions", "confidence" (0-100), and a "findings" array of {category, subject, detail} objects.`

func (a *ExternalValidator) Execute(ctx context.Context, h *state.Handle, rc *RunContext) (*Result, error) {
	var warnings []string

	references := a.webReferences(ctx, rc, &warnings)

	var b strings.Builder
	b.WriteString(dealHeader(rc))
	b.WriteString("\n# Committed agent conclusions\n")
	for _, rec := range h.Records() {
		fmt.Fprintf(&b, "## %s (%s)\n%s\n\n", rec.AgentName, rec.Status, jsonBlock(rec.Payload, 6_000))
	}
	b.WriteString("# Valuation models\n")
	b.WriteString(promptInputs(h, []state.Key{state.KeyValuationModels, state.KeyAdvancedValuation}))
	if references != "" {
		b.WriteString("# External references\n")
		b.WriteString(references)
	}

	payload, err := callJSON(ctx, rc, a.Name(), []llm.Message{
		llm.SystemMessage(externalValidatorSystem + jsonOnlyInstruction),
		llm.UserMessage(b.String()),
	})
	if err != nil {
		return nil, err
	}
	if err := h.Set(state.KeyExternalValidation, payload); err != nil {
		return nil, err
	}

	result := resultFromPayload(payload)
	result.Warnings = append(warnings, result.Warnings...)
	return result, nil
}

// webReferences pulls recent outside coverage of the target and, when named,
// the deal itself. Search is optional; failures are warnings, never fatal.
func (a *ExternalValidator) webReferences(ctx context.Context, rc *RunContext, warnings *[]string) string {
	queries := []string{
		fmt.Sprintf("%s acquisition valuation analysis", rc.Params.Target),
	}
	if rc.Params.Acquirer != "" {
		queries = append(queries, fmt.Sprintf("%s %s merger news", rc.Params.Acquirer, rc.Params.Target))
	}

	var b strings.Builder
	for _, q := range queries {
		results, err := rc.Search.Search(ctx, q, 5)
		if err != nil {
			rc.Logger().Warn("Web search failed", "query", q, "error", err)
			*warnings = append(*warnings, fmt.Sprintf("web search unavailable for %q: %v", q, err))
			continue
		}
		for _, r := range results {
			fmt.Fprintf(&b, "- %s (%s): %s\n", r.Title, r.URL, r.Snippet)
		}
	}
	return b.String()
}
