package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/pkg/agent"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// fakeAgent is a minimal Agent for scheduler and executor tests.
type fakeAgent struct {
	name    string
	inputs  []state.Key
	outputs []state.Key
	execute func(ctx context.Context, h *state.Handle, rc *agent.RunContext) (*agent.Result, error)
}

func (f *fakeAgent) Name() string                 { return f.name }
func (f *fakeAgent) RequiredInputs() []state.Key  { return f.inputs }
func (f *fakeAgent) ProducedOutputs() []state.Key { return f.outputs }

func (f *fakeAgent) Execute(ctx context.Context, h *state.Handle, rc *agent.RunContext) (*agent.Result, error) {
	if f.execute != nil {
		return f.execute(ctx, h, rc)
	}
	for _, k := range f.outputs {
		if err := h.Set(k, map[string]any{"by": f.name}); err != nil {
			return nil, err
		}
	}
	return &agent.Result{Payload: map[string]any{"by": f.name}}, nil
}

func TestWaves_RealRoster(t *testing.T) {
	roster := agent.Roster()
	waves, err := Waves(roster)
	require.NoError(t, err)
	require.NotEmpty(t, waves)

	t.Run("every agent scheduled exactly once", func(t *testing.T) {
		seen := make(map[string]int)
		for _, wave := range waves {
			for _, a := range wave {
				seen[a.Name()]++
			}
		}
		require.Len(t, seen, len(roster))
		for name, n := range seen {
			assert.Equal(t, 1, n, "agent %s scheduled %d times", name, n)
		}
	})

	t.Run("inputs produced before the wave that needs them", func(t *testing.T) {
		available := make(map[state.Key]bool)
		for _, k := range state.RawDataKeys() {
			available[k] = true
		}
		for i, wave := range waves {
			for _, a := range wave {
				if a.Name() == agent.NameExternalValidator {
					continue // pinned last; reads records, not keys
				}
				for _, k := range a.RequiredInputs() {
					assert.True(t, available[k],
						"wave %d: %s requires %s before it is produced", i+1, a.Name(), k)
				}
			}
			for _, a := range wave {
				for _, k := range a.ProducedOutputs() {
					available[k] = true
				}
			}
		}
	})

	t.Run("external validator alone in the final wave", func(t *testing.T) {
		last := waves[len(waves)-1]
		require.Len(t, last, 1)
		assert.Equal(t, agent.NameExternalValidator, last[0].Name())
	})
}

func TestWaves_RejectsOverlappingOutputs(t *testing.T) {
	_, err := Waves([]agent.Agent{
		&fakeAgent{name: "a", outputs: []state.Key{"shared_key"}},
		&fakeAgent{name: "b", outputs: []state.Key{"shared_key"}},
	})
	require.ErrorIs(t, err, ErrOverlappingOutputs)
}

func TestWaves_RejectsRawKeyClaim(t *testing.T) {
	_, err := Waves([]agent.Agent{
		&fakeAgent{name: "a", outputs: []state.Key{state.KeyFinancialData}},
	})
	require.ErrorIs(t, err, ErrOverlappingOutputs)
}

func TestWaves_RejectsDuplicateName(t *testing.T) {
	_, err := Waves([]agent.Agent{
		&fakeAgent{name: "a", outputs: []state.Key{"k1"}},
		&fakeAgent{name: "a", outputs: []state.Key{"k2"}},
	})
	require.ErrorIs(t, err, ErrOverlappingOutputs)
}

func TestWaves_RejectsUnsatisfiedInput(t *testing.T) {
	_, err := Waves([]agent.Agent{
		&fakeAgent{name: "a", inputs: []state.Key{"nobody_makes_this"}, outputs: []state.Key{"k1"}},
	})
	require.ErrorIs(t, err, ErrUnsatisfiedInput)
}

func TestWaves_RejectsCycle(t *testing.T) {
	_, err := Waves([]agent.Agent{
		&fakeAgent{name: "a", inputs: []state.Key{"kb"}, outputs: []state.Key{"ka"}},
		&fakeAgent{name: "b", inputs: []state.Key{"ka"}, outputs: []state.Key{"kb"}},
	})
	require.ErrorIs(t, err, ErrUnsatisfiedInput)
}

func TestWaves_DependencyOrdering(t *testing.T) {
	waves, err := Waves([]agent.Agent{
		&fakeAgent{name: "leaf", inputs: []state.Key{state.KeyFinancialData}, outputs: []state.Key{"k1"}},
		&fakeAgent{name: "mid", inputs: []state.Key{"k1"}, outputs: []state.Key{"k2"}},
		&fakeAgent{name: "top", inputs: []state.Key{"k1", "k2"}, outputs: []state.Key{"k3"}},
	})
	require.NoError(t, err)
	require.Len(t, waves, 3)
	assert.Equal(t, "leaf", waves[0][0].Name())
	assert.Equal(t, "mid", waves[1][0].Name())
	assert.Equal(t, "top", waves[2][0].Name())
}
