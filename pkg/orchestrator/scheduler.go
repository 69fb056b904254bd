package orchestrator

import (
	"errors"
	"fmt"

	"github.com/dealdesk/dealdesk/pkg/agent"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// Scheduling errors. Both are raised before any agent runs, so a bad roster
// fails the job without touching external services.
var (
	// ErrOverlappingOutputs indicates two agents declared the same output
	// key, which would break the single-writer-per-key invariant.
	ErrOverlappingOutputs = errors.New("agents declare overlapping outputs")

	// ErrUnsatisfiedInput indicates an agent requires a key no agent (and
	// not the ingestion stage) produces.
	ErrUnsatisfiedInput = errors.New("agent input has no producer")
)

// Waves computes the dependency-ordered execution plan for a roster: wave N
// contains the agents whose required inputs are all produced by ingestion or
// by agents in waves < N. Agents within one wave have no mutual dependency
// and run concurrently.
//
// The external validator is always placed in a wave of its own after every
// other agent: it reads every committed record, which the key declarations
// cannot express.
func Waves(roster []agent.Agent) ([][]agent.Agent, error) {
	// Producer map, rejecting overlapping output declarations. Raw data
	// keys belong to the ingestion stage and may not be claimed.
	raw := make(map[state.Key]bool)
	for _, k := range state.RawDataKeys() {
		raw[k] = true
	}

	producers := make(map[state.Key]string)
	byName := make(map[string]agent.Agent, len(roster))
	for _, a := range roster {
		if _, dup := byName[a.Name()]; dup {
			return nil, fmt.Errorf("%w: agent %q appears twice in the roster", ErrOverlappingOutputs, a.Name())
		}
		byName[a.Name()] = a
		for _, k := range a.ProducedOutputs() {
			if raw[k] {
				return nil, fmt.Errorf("%w: %q claims raw data key %q owned by ingestion", ErrOverlappingOutputs, a.Name(), k)
			}
			if owner, taken := producers[k]; taken {
				return nil, fmt.Errorf("%w: %q claimed by both %q and %q", ErrOverlappingOutputs, k, owner, a.Name())
			}
			producers[k] = a.Name()
		}
	}

	// Wave index per agent: 1 + max over input producers, ingestion at 0.
	depths := make(map[string]int, len(roster))
	visiting := make(map[string]bool)

	var depth func(a agent.Agent) (int, error)
	depth = func(a agent.Agent) (int, error) {
		if d, ok := depths[a.Name()]; ok {
			return d, nil
		}
		if visiting[a.Name()] {
			return 0, fmt.Errorf("%w: dependency cycle through %q", ErrUnsatisfiedInput, a.Name())
		}
		visiting[a.Name()] = true
		defer delete(visiting, a.Name())

		d := 1
		for _, k := range a.RequiredInputs() {
			if raw[k] {
				continue
			}
			producerName, ok := producers[k]
			if !ok {
				return 0, fmt.Errorf("%w: %q requires %q", ErrUnsatisfiedInput, a.Name(), k)
			}
			pd, err := depth(byName[producerName])
			if err != nil {
				return 0, err
			}
			if pd+1 > d {
				d = pd + 1
			}
		}
		depths[a.Name()] = d
		return d, nil
	}

	maxDepth := 0
	for _, a := range roster {
		if a.Name() == agent.NameExternalValidator {
			continue
		}
		d, err := depth(a)
		if err != nil {
			return nil, err
		}
		if d > maxDepth {
			maxDepth = d
		}
	}

	waveCount := maxDepth
	if _, hasExternal := byName[agent.NameExternalValidator]; hasExternal {
		waveCount++
		depths[agent.NameExternalValidator] = waveCount
	}

	// Roster order within a wave only makes logs deterministic; execution
	// inside a wave is concurrent.
	waves := make([][]agent.Agent, waveCount)
	for _, a := range roster {
		d := depths[a.Name()]
		waves[d-1] = append(waves[d-1], a)
	}
	return waves, nil
}

// DeclareOwners registers every roster agent's outputs (and the synthesis
// agent's) on the store, so the single-writer rule is enforced before the
// first wave starts.
func DeclareOwners(st *state.Store, roster []agent.Agent, synth agent.Agent) error {
	for _, a := range append(append([]agent.Agent{}, roster...), synth) {
		if err := st.DeclareOwner(a.Name(), a.ProducedOutputs()...); err != nil {
			return err
		}
	}
	return nil
}
