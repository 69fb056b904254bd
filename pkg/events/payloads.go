package events

import "github.com/dealdesk/dealdesk/pkg/models"

// AgentStatusPayload is the payload for agent.status events. Published
// before each agent starts (phase running) and after it finishes (ok,
// warn, or error) with a summary and any collected warnings.
type AgentStatusPayload struct {
	Type      string   `json:"type"` // always EventTypeAgentStatus
	JobID     string   `json:"job_id"`
	Agent     string   `json:"agent"`
	Phase     string   `json:"phase"` // pending, running, ok, warn, error
	Message   string   `json:"message,omitempty"`
	Details   []string `json:"details,omitempty"` // warnings or error messages
	Timestamp string   `json:"timestamp"`         // RFC3339Nano
}

// JobProgressPayload is the payload for job.progress transient events.
// Percent reflects agents finished, never agents running, and is
// monotonic non-decreasing over a job's lifetime.
type JobProgressPayload struct {
	Type         string `json:"type"` // always EventTypeJobProgress
	JobID        string `json:"job_id"`
	Percent      int    `json:"percent"`
	CurrentAgent string `json:"current_agent,omitempty"`
	Timestamp    string `json:"timestamp"` // RFC3339Nano
}

// JobStatusPayload is the payload for job.status events, published on
// every lifecycle transition.
type JobStatusPayload struct {
	Type      string           `json:"type"` // always EventTypeJobStatus
	JobID     string           `json:"job_id"`
	Status    models.JobStatus `json:"status"`
	Timestamp string           `json:"timestamp"` // RFC3339Nano
}

// JobCompletePayload is the payload for job.complete events. Emitted only
// after the consistency validator passed without blockers.
type JobCompletePayload struct {
	Type          string   `json:"type"` // always EventTypeJobComplete
	JobID         string   `json:"job_id"`
	Outcome       string   `json:"outcome"` // "completed"
	ArtifactPaths []string `json:"artifact_paths,omitempty"`
	Timestamp     string   `json:"timestamp"` // RFC3339Nano
}

// JobErrorPayload is the payload for job.error events.
type JobErrorPayload struct {
	Type      string `json:"type"` // always EventTypeJobError
	JobID     string `json:"job_id"`
	Kind      string `json:"kind"` // agent_failure, validation_blocker, job_timeout, cancelled
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // RFC3339Nano
}
