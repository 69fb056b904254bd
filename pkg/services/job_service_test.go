package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/ent"
	"github.com/dealdesk/dealdesk/ent/analysisjob"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/test/util"
)

func newJobService(t *testing.T) (*JobService, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return NewJobService(client), client
}

func TestCreateJob(t *testing.T) {
	svc, _ := newJobService(t)
	ctx := context.Background()

	t.Run("valid submission is queued", func(t *testing.T) {
		dv := 250.0
		job, err := svc.CreateJob(ctx, models.JobParams{
			Target:    " acme ",
			Acquirer:  "mega",
			DealValue: &dv,
			Thesis:    "scale platform",
		})
		require.NoError(t, err)

		assert.Equal(t, analysisjob.StatusQueued, job.Status)
		assert.Equal(t, "ACME", job.Target, "target normalized to upper case")
		require.NotNil(t, job.Acquirer)
		assert.Equal(t, "MEGA", *job.Acquirer)
		require.NotNil(t, job.DealValue)
		assert.Equal(t, 250.0, *job.DealValue)
		assert.NotEmpty(t, job.ID)
	})

	t.Run("empty target rejected", func(t *testing.T) {
		_, err := svc.CreateJob(ctx, models.JobParams{Target: "  "})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "target", validErr.Field)
	})

	t.Run("non-positive deal value rejected", func(t *testing.T) {
		dv := -10.0
		_, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME", DealValue: &dv})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
		assert.Equal(t, "deal_value", validErr.Field)
	})
}

func TestGetJob(t *testing.T) {
	svc, client := newJobService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetJob(ctx, uuid.New().String())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("soft-deleted job is invisible", func(t *testing.T) {
		require.NoError(t, client.AnalysisJob.UpdateOneID(job.ID).
			SetDeletedAt(time.Now()).
			Exec(ctx))
		_, err := svc.GetJob(ctx, job.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestListJobs(t *testing.T) {
	svc, _ := newJobService(t)
	ctx := context.Background()

	for _, target := range []string{"ACME", "ACME", "GLOBEX"} {
		_, err := svc.CreateJob(ctx, models.JobParams{Target: target})
		require.NoError(t, err)
	}

	t.Run("target filter", func(t *testing.T) {
		jobs, total, err := svc.ListJobs(ctx, JobFilters{Target: "acme"})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, jobs, 2)
	})

	t.Run("status filter validates values", func(t *testing.T) {
		_, _, err := svc.ListJobs(ctx, JobFilters{Status: "bogus"})
		var validErr *ValidationError
		require.ErrorAs(t, err, &validErr)
	})

	t.Run("pagination caps the page size", func(t *testing.T) {
		jobs, total, err := svc.ListJobs(ctx, JobFilters{Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, total)
		assert.Len(t, jobs, 2)
	})
}

func TestCommitSynthesized_WriteOnce(t *testing.T) {
	svc, _ := newJobService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)

	doc := map[string]any{"metadata": map[string]any{"data_version": "2.0"}}
	require.NoError(t, svc.CommitSynthesized(ctx, job.ID, doc))

	err = svc.CommitSynthesized(ctx, job.ID, map[string]any{"metadata": "other"})
	require.ErrorIs(t, err, ErrImmutable)

	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Contains(t, got.SynthesizedData, "metadata", "first commit survives the rejected second")
}

func TestCancelQueued(t *testing.T) {
	svc, client := newJobService(t)
	ctx := context.Background()

	t.Run("queued job cancels immediately", func(t *testing.T) {
		job, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME"})
		require.NoError(t, err)

		cancelled, err := svc.CancelQueued(ctx, job.ID)
		require.NoError(t, err)
		assert.True(t, cancelled)

		got, err := svc.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, analysisjob.StatusCancelled, got.Status)
		assert.NotNil(t, got.CompletedAt)
	})

	t.Run("running job defers to the worker pool", func(t *testing.T) {
		job, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME"})
		require.NoError(t, err)
		require.NoError(t, client.AnalysisJob.UpdateOneID(job.ID).
			SetStatus(analysisjob.StatusRunning).
			Exec(ctx))

		cancelled, err := svc.CancelQueued(ctx, job.ID)
		require.NoError(t, err)
		assert.False(t, cancelled)
	})

	t.Run("terminal job is not cancellable", func(t *testing.T) {
		job, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME"})
		require.NoError(t, err)
		require.NoError(t, client.AnalysisJob.UpdateOneID(job.ID).
			SetStatus(analysisjob.StatusCompleted).
			Exec(ctx))

		_, err = svc.CancelQueued(ctx, job.ID)
		assert.ErrorIs(t, err, ErrNotCancellable)
	})
}

func TestResult(t *testing.T) {
	svc, client := newJobService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)

	t.Run("not ready before completion", func(t *testing.T) {
		_, err := svc.Result(ctx, job.ID)
		assert.ErrorIs(t, err, ErrNotReady)
	})

	t.Run("available once completed", func(t *testing.T) {
		require.NoError(t, svc.CommitSynthesized(ctx, job.ID, map[string]any{"metadata": "v"}))
		require.NoError(t, client.AnalysisJob.UpdateOneID(job.ID).
			SetStatus(analysisjob.StatusCompleted).
			SetArtifactPaths([]string{"/artifacts/a.json"}).
			Exec(ctx))

		got, err := svc.Result(ctx, job.ID)
		require.NoError(t, err)
		assert.Contains(t, got.SynthesizedData, "metadata")
		assert.Equal(t, []string{"/artifacts/a.json"}, got.ArtifactPaths)
	})
}

func TestSetProgressAndCurrentAgent(t *testing.T) {
	svc, _ := newJobService(t)
	ctx := context.Background()

	job, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)

	require.NoError(t, svc.SetCurrentAgent(ctx, job.ID, "legal-counsel"))
	got, err := svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, got.CurrentAgent)
	assert.Equal(t, "legal-counsel", *got.CurrentAgent)

	require.NoError(t, svc.SetProgress(ctx, job.ID, 40, ""))
	got, err = svc.GetJob(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, got.ProgressPercent)
	assert.Nil(t, got.CurrentAgent, "empty current agent clears the column")
}

func TestSoftDeleteOldJobs(t *testing.T) {
	svc, client := newJobService(t)
	ctx := context.Background()

	old, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)
	require.NoError(t, client.AnalysisJob.UpdateOneID(old.ID).
		SetStatus(analysisjob.StatusCompleted).
		SetCompletedAt(time.Now().AddDate(0, 0, -90)).
		Exec(ctx))

	fresh, err := svc.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)
	require.NoError(t, client.AnalysisJob.UpdateOneID(fresh.ID).
		SetStatus(analysisjob.StatusCompleted).
		SetCompletedAt(time.Now()).
		Exec(ctx))

	n, err := svc.SoftDeleteOldJobs(ctx, 30)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = svc.GetJob(ctx, old.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetJob(ctx, fresh.ID)
	assert.NoError(t, err)
}
