package agent

import (
	"context"
	"fmt"

	"github.com/dealdesk/dealdesk/pkg/llm"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// promptSpec declares one LLM-backed analyst: its state contract and the
// prompt it sends. Most of the roster shares this shape; only the agents
// with extra collaborators (deep-dive, external-validator) are bespoke.
type promptSpec struct {
	name   string
	inputs []state.Key
	output state.Key

	// system is the role instruction; the JSON-only contract is appended.
	system string

	// extraInputs lists keys embedded in the prompt beyond the required
	// set (optional context like acquirer data).
	extraInputs []state.Key
}

// promptAgent executes a promptSpec: renders the inputs, calls the LLM
// pipeline, parses the JSON payload, and commits it to the output key.
type promptAgent struct {
	spec promptSpec
}

func newPromptAgent(spec promptSpec) *promptAgent { return &promptAgent{spec: spec} }

func (a *promptAgent) Name() string                 { return a.spec.name }
func (a *promptAgent) RequiredInputs() []state.Key  { return a.spec.inputs }
func (a *promptAgent) ProducedOutputs() []state.Key { return []state.Key{a.spec.output} }

func (a *promptAgent) Execute(ctx context.Context, h *state.Handle, rc *RunContext) (*Result, error) {
	payload, err := callJSON(ctx, rc, a.spec.name, a.messages(h, rc))
	if err != nil {
		return nil, err
	}
	if err := h.Set(a.spec.output, payload); err != nil {
		return nil, err
	}
	return resultFromPayload(payload), nil
}

func (a *promptAgent) messages(h *state.Handle, rc *RunContext) []llm.Message {
	keys := append(append([]state.Key{}, a.spec.inputs...), a.spec.extraInputs...)
	user := fmt.Sprintf("%s\n# Inputs\n%s", dealHeader(rc), promptInputs(h, keys))
	return []llm.Message{
		llm.SystemMessage(a.spec.system + jsonOnlyInstruction),
		llm.UserMessage(user),
	}
}
