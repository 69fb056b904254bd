// Package events delivers typed job events to live subscribers via
// WebSocket, with PostgreSQL NOTIFY/LISTEN as the cross-pod fan-out and
// the events table as the durable catch-up source.
//
// Every persistent event is written to the events table and broadcast via
// pg_notify in the same transaction, so a subscriber that reconnects can
// replay from its last seen db_event_id without a gap. Transient events
// (progress ticks) are NOTIFY-only.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// EventTypeAgentStatus reports one agent's phase transition.
	EventTypeAgentStatus = "agent.status"

	// EventTypeJobStatus reports a job lifecycle transition.
	EventTypeJobStatus = "job.status"

	// EventTypeJobComplete reports successful completion with artifact paths.
	EventTypeJobComplete = "job.complete"

	// EventTypeJobError reports a terminal or notable error.
	EventTypeJobError = "job.error"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// EventTypeJobProgress is the high-frequency percent tick.
	EventTypeJobProgress = "job.progress"
)

// Agent phase values used in AgentStatusPayload.Phase.
const (
	AgentPhasePending = "pending"
	AgentPhaseRunning = "running"
	AgentPhaseOK      = "ok"
	AgentPhaseWarn    = "warn"
	AgentPhaseError   = "error"
)

// GlobalJobsChannel carries job-level status for the jobs overview.
const GlobalJobsChannel = "jobs"

// JobChannel returns the channel name for one job's events.
// Format: "job:{job_id}"
func JobChannel(jobID string) string {
	return "job:" + jobID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // e.g. "job:abc-123"
	LastEventID *int   `json:"last_event_id,omitempty"` // for catchup
}
