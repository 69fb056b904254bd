// Package orchestrator drives analysis jobs from queued to terminal: a
// worker pool claims queued jobs from postgres, and a pipeline executor runs
// ingestion, the dependency-ordered agent waves, synthesis, validation, and
// the rendering handoff for each claimed job.
package orchestrator

import (
	"context"
	"errors"
	"time"

	"github.com/dealdesk/dealdesk/pkg/events"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no queued jobs are waiting.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor runs one claimed job to a terminal outcome.
//
// The executor owns the job lifecycle between claim and terminal status:
// status transitions, progress, agent records, the synthesized document, and
// validation issues are all written progressively during execution. The
// worker only handles claiming, heartbeat, and the terminal status update.
type JobExecutor interface {
	Execute(ctx context.Context, job *models.Job) *ExecutionResult
}

// ExecutionResult is the terminal state of one job execution. Everything
// intermediate was already persisted by the executor.
type ExecutionResult struct {
	Status        models.JobStatus // completed, failed, cancelled
	FailedAgent   string           // required agent or validator check that failed the job
	ArtifactPaths []string         // rendered artifacts (completed only)
	Error         error            // error details (failed only)
}

// JobStore is the persistence surface the executor writes through while a
// job is running. Implemented by services.JobService.
type JobStore interface {
	UpdateStatus(ctx context.Context, jobID string, status models.JobStatus) error
	SetProgress(ctx context.Context, jobID string, percent int, currentAgent string) error
	SetCurrentAgent(ctx context.Context, jobID string, currentAgent string) error
	CommitSynthesized(ctx context.Context, jobID string, doc map[string]any) error
	SetValidationIssues(ctx context.Context, jobID string, issues []map[string]any) error
}

// RecordStore persists append-only per-agent records. Implemented by
// services.RecordService.
type RecordStore interface {
	Append(ctx context.Context, rec models.AgentRecord) error
}

// EventSink publishes job events for live subscribers. Implemented by
// events.Publisher.
type EventSink interface {
	PublishAgentStatus(ctx context.Context, payload events.AgentStatusPayload) error
	PublishJobProgress(ctx context.Context, payload events.JobProgressPayload) error
	PublishJobStatus(ctx context.Context, payload events.JobStatusPayload) error
	PublishJobComplete(ctx context.Context, payload events.JobCompletePayload) error
	PublishJobError(ctx context.Context, payload events.JobErrorPayload) error
}

// Ingestor populates the raw data keys before the first agent wave.
// Implemented by ingest.Ingestor.
type Ingestor interface {
	Run(ctx context.Context, h *state.Handle, params models.JobParams) error
}

// Renderer turns the synthesized document into report artifacts. The
// rendering back-ends themselves live outside the orchestrator; it only
// hands the document over and records the produced paths.
type Renderer interface {
	Render(ctx context.Context, jobID string, doc map[string]any) ([]string, error)
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveJobs       int            `json:"active_jobs"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
