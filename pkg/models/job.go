// Package models contains request/response structs shared between the
// service layer, the orchestrator, and the API handlers.
package models

import "time"

// JobStatus mirrors the analysisjob status enum for layers that must not
// depend on generated ent code (the orchestrator and its tests).
type JobStatus string

// Job lifecycle statuses.
const (
	JobStatusQueued       JobStatus = "queued"
	JobStatusRunning      JobStatus = "running"
	JobStatusSynthesizing JobStatus = "synthesizing"
	JobStatusValidating   JobStatus = "validating"
	JobStatusCompleted    JobStatus = "completed"
	JobStatusFailed       JobStatus = "failed"
	JobStatusCancelled    JobStatus = "cancelled"
)

// Terminal reports whether the status is a terminal lifecycle state.
func (s JobStatus) Terminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusFailed, JobStatusCancelled:
		return true
	}
	return false
}

// JobParams are the submitted analysis parameters.
type JobParams struct {
	Target    string   `json:"target"`
	Acquirer  string   `json:"acquirer,omitempty"`
	DealValue *float64 `json:"deal_value,omitempty"`
	Thesis    string   `json:"thesis,omitempty"`
}

// Job is the orchestrator-facing view of an analysis job.
type Job struct {
	ID              string
	Params          JobParams
	Status          JobStatus
	CreatedAt       time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	ErrorMessage    string
	FailedAgent     string
	ProgressPercent int
	CurrentAgent    string
	ArtifactPaths   []string
	PodID           string
}

// AgentRecordStatus is the terminal status of a single agent run.
type AgentRecordStatus string

// Agent record statuses.
const (
	AgentStatusOK      AgentRecordStatus = "ok"
	AgentStatusWarning AgentRecordStatus = "warning"
	AgentStatusError   AgentRecordStatus = "error"
)

// AgentRecord is the append-only per-agent output record.
type AgentRecord struct {
	JobID           string
	AgentName       string
	Status          AgentRecordStatus
	StartedAt       time.Time
	CompletedAt     time.Time
	Payload         map[string]any
	Warnings        []string
	Errors          []string
	Recommendations []string
}

// Duration returns the agent's wall-clock run time.
func (r *AgentRecord) Duration() time.Duration {
	return r.CompletedAt.Sub(r.StartedAt)
}
