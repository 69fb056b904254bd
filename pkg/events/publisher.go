package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Publisher publishes job events for WebSocket delivery. Persistent events
// are stored in the events table then broadcast via NOTIFY in the same
// transaction (pg_notify is transactional, so the insert and the broadcast
// commit atomically). Transient events are NOTIFY-only.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher over the database.Client's *sql.DB.
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishAgentStatus persists and broadcasts an agent.status event.
func (p *Publisher) PublishAgentStatus(ctx context.Context, payload AgentStatusPayload) error {
	payload.Type = EventTypeAgentStatus
	payload.Timestamp = now()
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AgentStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.JobID, JobChannel(payload.JobID), raw)
}

// PublishJobProgress broadcasts a job.progress transient event to the job
// channel and the global jobs channel. Progress ticks are high-frequency
// and recoverable from the job record, so they are not persisted.
func (p *Publisher) PublishJobProgress(ctx context.Context, payload JobProgressPayload) error {
	payload.Type = EventTypeJobProgress
	payload.Timestamp = now()
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobProgressPayload: %w", err)
	}
	if err := p.notifyOnly(ctx, JobChannel(payload.JobID), raw); err != nil {
		return err
	}
	return p.notifyOnly(ctx, GlobalJobsChannel, raw)
}

// PublishJobStatus persists a job status event on the job channel and
// broadcasts a transient copy to the global jobs channel. Both publishes
// are best-effort; the first error encountered is returned.
func (p *Publisher) PublishJobStatus(ctx context.Context, payload JobStatusPayload) error {
	payload.Type = EventTypeJobStatus
	payload.Timestamp = now()
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, payload.JobID, JobChannel(payload.JobID), raw); err != nil {
		slog.Warn("Failed to publish job status to job channel",
			"job_id", payload.JobID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalJobsChannel, raw); err != nil {
		slog.Warn("Failed to publish job status to global channel",
			"job_id", payload.JobID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishJobComplete persists and broadcasts a job.complete event.
func (p *Publisher) PublishJobComplete(ctx context.Context, payload JobCompletePayload) error {
	payload.Type = EventTypeJobComplete
	payload.Timestamp = now()
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobCompletePayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.JobID, JobChannel(payload.JobID), raw)
}

// PublishJobError persists and broadcasts a job.error event.
func (p *Publisher) PublishJobError(ctx context.Context, payload JobErrorPayload) error {
	payload.Type = EventTypeJobError
	payload.Timestamp = now()
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobErrorPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.JobID, JobChannel(payload.JobID), raw)
}

func now() string { return time.Now().UTC().Format(time.RFC3339Nano) }

// persistAndNotify persists a pre-marshaled event and broadcasts via NOTIFY
// in one transaction.
func (p *Publisher) persistAndNotify(ctx context.Context, jobID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (job_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		jobID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// pg_notify within the same transaction, held until COMMIT
	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the NOTIFY copy of the
// payload for catchup position tracking, then applies the size cap.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is when it fits PostgreSQL's
// 8000-byte NOTIFY limit, otherwise a minimal envelope with the routing
// fields the client needs to fetch the full event from the database.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		JobID     string `json:"job_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"job_id":    routing.JobID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	out, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(out), nil
}
