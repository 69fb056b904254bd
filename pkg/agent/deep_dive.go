package agent

import (
	"context"
	"fmt"

	"github.com/dealdesk/dealdesk/pkg/llm"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// DeepDive is the financial deep-dive analyst. It interprets the normalized
// statements and valuation models through the reasoning channel when one is
// configured; a reasoner failure degrades to the standard pipeline with a
// warning rather than failing the agent.
type DeepDive struct{}

func NewDeepDive() *DeepDive { return &DeepDive{} }

func (a *DeepDive) Name() string { return NameDeepDive }

func (a *DeepDive) RequiredInputs() []state.Key {
	return []state.Key{state.KeyNormalizedFinancials, state.KeyValuationModels}
}

func (a *DeepDive) ProducedOutputs() []state.Key {
	return []state.Key{state.KeyDeepDive}
}

const deepDiveSystem = `You are a senior financial analyst performing a second-pass deep dive on an M&A target. ` +
	`Work step by step through earnings quality, cash conversion, margin trajectory, and the sensitivity of the DCF to its key assumptions. ` +
	`Produce "earnings_quality", "cash_conversion", "margin_trajectory", "dcf_sensitivities" (list of {assumption, delta, ev_impact}), and a "findings" array of {category, subject, detail} objects.`

func (a *DeepDive) Execute(ctx context.Context, h *state.Handle, rc *RunContext) (*Result, error) {
	user := fmt.Sprintf("%s\n# Inputs\n%s", dealHeader(rc),
		promptInputs(h, []state.Key{state.KeyNormalizedFinancials, state.KeyValuationModels, state.KeyAnomalyDetection}))
	messages := []llm.Message{
		llm.SystemMessage(deepDiveSystem + jsonOnlyInstruction),
		llm.UserMessage(user),
	}

	var warnings []string
	var out string
	var err error
	if rc.LLM.HasReasoner() {
		out, err = rc.LLM.Reason(ctx, llm.CallContext{Label: a.Name(), Messages: messages})
		if err != nil {
			rc.Logger().Warn("Reasoner unavailable for deep dive, using standard pipeline", "error", err)
			warnings = append(warnings, fmt.Sprintf("reasoning channel failed, fell back to standard pipeline: %v", err))
			out = ""
		}
	}
	if out == "" {
		out, err = rc.LLM.Call(ctx, llm.CallContext{Label: a.Name(), Messages: messages})
		if err != nil {
			return nil, err
		}
	}

	payload, err := parseJSONObject(out)
	if err != nil {
		return nil, err
	}
	if err := h.Set(state.KeyDeepDive, payload); err != nil {
		return nil, err
	}

	result := resultFromPayload(payload)
	result.Warnings = append(warnings, result.Warnings...)
	return result, nil
}
