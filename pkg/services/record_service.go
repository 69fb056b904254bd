package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dealdesk/dealdesk/ent"
	"github.com/dealdesk/dealdesk/ent/agentrecord"
	"github.com/dealdesk/dealdesk/pkg/models"
)

// RecordService persists append-only per-agent output records.
type RecordService struct {
	client *ent.Client
}

// NewRecordService creates a RecordService.
func NewRecordService(client *ent.Client) *RecordService {
	return &RecordService{client: client}
}

// Append writes one agent record. Records are never updated afterwards;
// a duplicate (job_id, agent_name) pair is a pipeline bug and surfaces as
// a constraint violation.
func (s *RecordService) Append(ctx context.Context, rec models.AgentRecord) error {
	builder := s.client.AgentRecord.Create().
		SetID(uuid.New().String()).
		SetJobID(rec.JobID).
		SetAgentName(rec.AgentName).
		SetStatus(agentrecord.Status(rec.Status)).
		SetStartedAt(rec.StartedAt).
		SetCompletedAt(rec.CompletedAt).
		SetDurationMs(int(rec.Duration().Milliseconds()))

	if rec.Payload != nil {
		builder = builder.SetPayload(rec.Payload)
	}
	if len(rec.Warnings) > 0 {
		builder = builder.SetWarnings(rec.Warnings)
	}
	if len(rec.Errors) > 0 {
		builder = builder.SetErrors(rec.Errors)
	}
	if len(rec.Recommendations) > 0 {
		builder = builder.SetRecommendations(rec.Recommendations)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append agent record: %w", err)
	}
	return nil
}

// ListByJob returns a job's agent records in completion order.
func (s *RecordService) ListByJob(ctx context.Context, jobID string) ([]*ent.AgentRecord, error) {
	records, err := s.client.AgentRecord.Query().
		Where(agentrecord.JobIDEQ(jobID)).
		Order(ent.Asc(agentrecord.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agent records: %w", err)
	}
	return records, nil
}
