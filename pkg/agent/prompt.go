package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"github.com/dealdesk/dealdesk/pkg/llm"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// maxInputJSON caps how much of one state key is embedded into a prompt.
const maxInputJSON = 24_000

// callJSON runs an LLM call and parses the completion into a JSON object.
// Model output is routinely wrapped in markdown fences or slightly
// malformed, so the raw text goes through repair before unmarshalling.
func callJSON(ctx context.Context, rc *RunContext, label string, messages []llm.Message) (map[string]any, error) {
	out, err := rc.LLM.Call(ctx, llm.CallContext{Label: label, Messages: messages})
	if err != nil {
		return nil, err
	}
	return parseJSONObject(out)
}

// parseJSONObject extracts a JSON object from model output, repairing
// fence wrappers, trailing commas, and unquoted keys.
func parseJSONObject(raw string) (map[string]any, error) {
	repaired, err := jsonrepair.RepairJSON(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("unrepairable model output: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
		return nil, fmt.Errorf("model output is not a JSON object: %w", err)
	}
	return payload, nil
}

// resultFromPayload lifts the conventional warnings/errors/recommendations
// lists out of an agent payload into the Result.
func resultFromPayload(payload map[string]any) *Result {
	return &Result{
		Payload:         payload,
		Warnings:        stringList(payload["warnings"]),
		Errors:          stringList(payload["errors"]),
		Recommendations: stringList(payload["recommendations"]),
	}
}

// stringList coerces a decoded JSON list into strings, dropping non-string
// entries.
func stringList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}

// jsonBlock renders a value as an indented JSON block for prompt embedding,
// clipped to max bytes.
func jsonBlock(v any, max int) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("(unserializable: %v)", err)
	}
	s := string(b)
	if len(s) > max {
		s = s[:max] + "\n... (truncated)"
	}
	return s
}

// promptInputs renders the named state keys as labelled JSON sections.
func promptInputs(h *state.Handle, keys []state.Key) string {
	var b strings.Builder
	for _, k := range keys {
		v, ok := h.Get(k)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "## %s\n%s\n\n", k, jsonBlock(v, maxInputJSON))
	}
	return b.String()
}

// dealHeader renders the job parameters every prompt opens with.
func dealHeader(rc *RunContext) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target: %s\n", rc.Params.Target)
	if rc.Params.Acquirer != "" {
		fmt.Fprintf(&b, "Acquirer: %s\n", rc.Params.Acquirer)
	}
	if rc.Params.DealValue != nil {
		fmt.Fprintf(&b, "Proposed deal value: %.0f\n", *rc.Params.DealValue)
	}
	if rc.Params.Thesis != "" {
		fmt.Fprintf(&b, "Investment thesis: %s\n", rc.Params.Thesis)
	}
	return b.String()
}

// jsonOnlyInstruction is appended to every system prompt so downstream
// parsing stays uniform.
const jsonOnlyInstruction = ` Respond with a single JSON object and nothing else. Include "warnings", "errors", and "recommendations" string arrays (empty when not applicable) alongside your analysis fields.`
