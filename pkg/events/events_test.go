package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobChannel(t *testing.T) {
	assert.Equal(t, "job:abc-123", JobChannel("abc-123"))
	assert.Equal(t, "jobs", GlobalJobsChannel)
}

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("small payload passes through", func(t *testing.T) {
		payload := `{"type":"job.status","job_id":"j1"}`
		out, err := truncateIfNeeded(payload)
		require.NoError(t, err)
		assert.Equal(t, payload, out)
	})

	t.Run("oversized payload becomes a routing envelope", func(t *testing.T) {
		big := map[string]any{
			"type":   EventTypeAgentStatus,
			"job_id": "j1",
			"detail": strings.Repeat("x", 9000),
		}
		raw, err := json.Marshal(big)
		require.NoError(t, err)

		out, err := truncateIfNeeded(string(raw))
		require.NoError(t, err)
		assert.Less(t, len(out), 7900)

		var envelope map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &envelope))
		assert.Equal(t, EventTypeAgentStatus, envelope["type"])
		assert.Equal(t, "j1", envelope["job_id"])
		assert.Equal(t, true, envelope["truncated"])
		assert.NotContains(t, envelope, "detail")
	})
}

func TestInjectDBEventID(t *testing.T) {
	raw := []byte(`{"type":"job.complete","job_id":"j1"}`)
	out, err := injectDBEventIDAndTruncate(raw, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, 42.0, m["db_event_id"])
	assert.Equal(t, "j1", m["job_id"])
}

func TestPayloadWireShapes(t *testing.T) {
	t.Run("agent status", func(t *testing.T) {
		raw, err := json.Marshal(AgentStatusPayload{
			Type: EventTypeAgentStatus, JobID: "j1", Agent: "legal-counsel",
			Phase: AgentPhaseWarn, Message: "done with warnings",
			Details: []string{"proxy statement is stale"},
		})
		require.NoError(t, err)

		var m map[string]any
		require.NoError(t, json.Unmarshal(raw, &m))
		assert.Equal(t, "agent.status", m["type"])
		assert.Equal(t, "warn", m["phase"])
	})

	t.Run("progress omits empty current agent", func(t *testing.T) {
		raw, err := json.Marshal(JobProgressPayload{Type: EventTypeJobProgress, JobID: "j1", Percent: 40})
		require.NoError(t, err)
		assert.NotContains(t, string(raw), "current_agent")
	})
}

func TestConnectionManagerSubscriptions(t *testing.T) {
	m := NewConnectionManager(nil, 0)
	c1 := &Connection{ID: "c1", subscriptions: make(map[string]bool)}
	c2 := &Connection{ID: "c2", subscriptions: make(map[string]bool)}

	require.NoError(t, m.subscribe(c1, "job:j1"))
	require.NoError(t, m.subscribe(c2, "job:j1"))
	assert.Equal(t, 2, m.subscriberCount("job:j1"))

	m.unsubscribe(c1, "job:j1")
	assert.Equal(t, 1, m.subscriberCount("job:j1"))
	assert.False(t, c1.subscriptions["job:j1"])

	m.unsubscribe(c2, "job:j1")
	assert.Equal(t, 0, m.subscriberCount("job:j1"))
}
