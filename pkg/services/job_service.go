// Package services contains the ent-backed persistence services used by the
// API handlers and the orchestrator.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dealdesk/dealdesk/ent"
	"github.com/dealdesk/dealdesk/ent/analysisjob"
	"github.com/dealdesk/dealdesk/pkg/models"
)

// JobService manages analysis job lifecycle and persistence.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// CreateJob validates the submission and creates a queued job.
func (s *JobService) CreateJob(httpCtx context.Context, params models.JobParams) (*ent.AnalysisJob, error) {
	params.Target = strings.TrimSpace(strings.ToUpper(params.Target))
	if params.Target == "" {
		return nil, NewValidationError("target", "required")
	}
	if params.DealValue != nil && *params.DealValue <= 0 {
		return nil, NewValidationError("deal_value", "must be positive when supplied")
	}

	// Use a background context with timeout for the critical write: an
	// impatient client dropping the HTTP request must not lose the job.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetTarget(params.Target).
		SetStatus(analysisjob.StatusQueued)

	if acq := strings.TrimSpace(strings.ToUpper(params.Acquirer)); acq != "" {
		builder = builder.SetAcquirer(acq)
	}
	if params.DealValue != nil {
		builder = builder.SetDealValue(*params.DealValue)
	}
	if params.Thesis != "" {
		builder = builder.SetThesis(params.Thesis)
	}

	job, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return job, nil
}

// GetJob retrieves a job by ID.
func (s *JobService) GetJob(ctx context.Context, jobID string) (*ent.AnalysisJob, error) {
	job, err := s.client.AnalysisJob.Query().
		Where(
			analysisjob.IDEQ(jobID),
			analysisjob.DeletedAtIsNil(),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return job, nil
}

// JobFilters narrow ListJobs results.
type JobFilters struct {
	Status string // comma-separated statuses
	Target string
	Limit  int
	Offset int
}

// ListJobs returns jobs newest first.
func (s *JobService) ListJobs(ctx context.Context, filters JobFilters) ([]*ent.AnalysisJob, int, error) {
	query := s.client.AnalysisJob.Query().
		Where(analysisjob.DeletedAtIsNil())

	if filters.Status != "" {
		var statuses []analysisjob.Status
		for _, st := range strings.Split(filters.Status, ",") {
			status := analysisjob.Status(strings.TrimSpace(st))
			if err := analysisjob.StatusValidator(status); err != nil {
				return nil, 0, NewValidationError("status", "invalid status: "+st)
			}
			statuses = append(statuses, status)
		}
		query = query.Where(analysisjob.StatusIn(statuses...))
	}
	if filters.Target != "" {
		query = query.Where(analysisjob.TargetEQ(strings.ToUpper(filters.Target)))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count jobs: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 || limit > 100 {
		limit = 25
	}
	jobs, err := query.
		Order(ent.Desc(analysisjob.FieldCreatedAt)).
		Limit(limit).
		Offset(filters.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, total, nil
}

// UpdateStatus transitions a job's lifecycle status.
func (s *JobService) UpdateStatus(ctx context.Context, jobID string, status models.JobStatus) error {
	err := s.client.AnalysisJob.UpdateOneID(jobID).
		SetStatus(analysisjob.Status(status)).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SetProgress records the monotonic progress percent and the agent the
// pipeline is currently running (empty between agents).
func (s *JobService) SetProgress(ctx context.Context, jobID string, percent int, currentAgent string) error {
	update := s.client.AnalysisJob.UpdateOneID(jobID).
		SetProgressPercent(percent)
	if currentAgent == "" {
		update = update.ClearCurrentAgent()
	} else {
		update = update.SetCurrentAgent(currentAgent)
	}
	err := update.Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// SetCurrentAgent records the running agent without touching percent.
func (s *JobService) SetCurrentAgent(ctx context.Context, jobID string, currentAgent string) error {
	err := s.client.AnalysisJob.UpdateOneID(jobID).
		SetCurrentAgent(currentAgent).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// CommitSynthesized persists the canonical synthesized document. The
// document is write-once: a second commit returns ErrImmutable.
func (s *JobService) CommitSynthesized(ctx context.Context, jobID string, doc map[string]any) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.AnalysisJob.Query().
		Where(analysisjob.IDEQ(jobID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load job for synthesis commit: %w", err)
	}
	if len(job.SynthesizedData) > 0 {
		return fmt.Errorf("synthesized_data for job %s: %w", jobID, ErrImmutable)
	}

	if err := tx.AnalysisJob.UpdateOneID(jobID).
		SetSynthesizedData(doc).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to commit synthesized document: %w", err)
	}
	return tx.Commit()
}

// SetValidationIssues persists the consistency validator's issue list.
func (s *JobService) SetValidationIssues(ctx context.Context, jobID string, issues []map[string]any) error {
	err := s.client.AnalysisJob.UpdateOneID(jobID).
		SetValidationIssues(issues).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

// CancelQueued cancels a job that has not been claimed yet. Returns true
// when the job was cancelled directly; false when it is running and must be
// cancelled through the worker pool. Terminal jobs yield ErrNotCancellable.
func (s *JobService) CancelQueued(ctx context.Context, jobID string) (bool, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return false, err
	}

	switch models.JobStatus(job.Status) {
	case models.JobStatusQueued:
		// Guard against a worker claiming between read and write.
		n, err := s.client.AnalysisJob.Update().
			Where(
				analysisjob.IDEQ(jobID),
				analysisjob.StatusEQ(analysisjob.StatusQueued),
			).
			SetStatus(analysisjob.StatusCancelled).
			SetCompletedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to cancel queued job: %w", err)
		}
		return n > 0, nil
	case models.JobStatusCompleted, models.JobStatusFailed, models.JobStatusCancelled:
		return false, ErrNotCancellable
	default:
		return false, nil
	}
}

// Result returns the artifact paths and synthesized document of a
// completed job; ErrNotReady otherwise.
func (s *JobService) Result(ctx context.Context, jobID string) (*ent.AnalysisJob, error) {
	job, err := s.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if models.JobStatus(job.Status) != models.JobStatusCompleted {
		return nil, ErrNotReady
	}
	return job, nil
}

// SoftDeleteOldJobs marks terminal jobs older than retentionDays as
// deleted. The retention sweep itself is operated out of process.
func (s *JobService) SoftDeleteOldJobs(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	n, err := s.client.AnalysisJob.Update().
		Where(
			analysisjob.StatusIn(
				analysisjob.StatusCompleted,
				analysisjob.StatusFailed,
				analysisjob.StatusCancelled,
			),
			analysisjob.CompletedAtLT(cutoff),
			analysisjob.DeletedAtIsNil(),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to soft-delete old jobs: %w", err)
	}
	return n, nil
}
