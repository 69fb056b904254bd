package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/ent"
	"github.com/dealdesk/dealdesk/ent/analysisjob"
	"github.com/dealdesk/dealdesk/pkg/config"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/test/util"
)

// createQueuedJob inserts a queued analysis job.
func createQueuedJob(ctx context.Context, t *testing.T, client *ent.Client) *ent.AnalysisJob {
	t.Helper()
	job, err := client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetTarget("ACME").
		SetStatus(analysisjob.StatusQueued).
		Save(ctx)
	require.NoError(t, err)
	return job
}

// intTestQueueConfig returns a queue config suitable for integration tests.
func intTestQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             2,
		MaxConcurrentJobs:       10,
		PollInterval:            100 * time.Millisecond,
		PollIntervalJitter:      0,
		JobTimeout:              30 * time.Second,
		AgentSoftTimeout:        30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Second,
		OrphanDetectionInterval: 1 * time.Second,
		OrphanThreshold:         2 * time.Second,
	}
}

// awaitCondition polls until condition returns true or the timeout elapses.
func awaitCondition(t *testing.T, timeout, interval time.Duration, msg string, condition func() bool) {
	t.Helper()
	deadline := time.After(timeout)
	for {
		select {
		case <-deadline:
			t.Fatalf("timed out: %s", msg)
		default:
			if condition() {
				return
			}
			time.Sleep(interval)
		}
	}
}

func jobStatus(ctx context.Context, t *testing.T, client *ent.Client, id string) analysisjob.Status {
	t.Helper()
	job, err := client.AnalysisJob.Get(ctx, id)
	require.NoError(t, err)
	return job.Status
}

func TestForUpdateSkipLockedClaiming(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	job := createQueuedJob(ctx, t, client)

	cfg := intTestQueueConfig()
	w := NewWorker("test-worker-0", "test-pod", client, cfg, nil, nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	require.NotNil(t, claimed, "worker should claim the queued job")
	assert.Equal(t, job.ID, claimed.ID)
	assert.Equal(t, analysisjob.StatusRunning, claimed.Status)
	require.NotNil(t, claimed.PodID)
	assert.Equal(t, "test-pod", *claimed.PodID)
	assert.NotNil(t, claimed.StartedAt)
	assert.NotNil(t, claimed.LastHeartbeatAt)

	// Second claim should return ErrNoJobsAvailable
	claimed2, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
	assert.Nil(t, claimed2, "no more queued jobs should be available")
}

func TestConcurrentClaimsDifferentJobs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	jobIDs := make(map[string]struct{})
	for i := 0; i < 5; i++ {
		j := createQueuedJob(ctx, t, client)
		jobIDs[j.ID] = struct{}{}
	}

	cfg := intTestQueueConfig()
	var mu sync.Mutex
	claimed := make([]string, 0, 5)
	var wg sync.WaitGroup

	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			w := NewWorker(fmt.Sprintf("worker-%d", workerID), "test-pod", client, cfg, nil, nil, nil)
			job, err := w.claimNextJob(ctx)
			if err != nil {
				return
			}
			mu.Lock()
			claimed = append(claimed, job.ID)
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	// Every claim is a distinct job.
	require.Len(t, claimed, 5)
	seen := make(map[string]bool)
	for _, id := range claimed {
		assert.False(t, seen[id], "job %s claimed twice", id)
		assert.Contains(t, jobIDs, id)
		seen[id] = true
	}
}

func TestWorkerPoolProcessesJob(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stub := &StubExecutor{
		Result: &ExecutionResult{
			Status:        models.JobStatusCompleted,
			ArtifactPaths: []string{"/artifacts/x/synthesized_data.json"},
		},
	}
	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), stub, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	job := createQueuedJob(ctx, t, client)

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "job not completed", func() bool {
		return jobStatus(ctx, t, client, job.ID) == analysisjob.StatusCompleted
	})

	final, err := client.AnalysisJob.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, final.ProgressPercent)
	assert.Equal(t, []string{"/artifacts/x/synthesized_data.json"}, final.ArtifactPaths)
	assert.NotNil(t, final.CompletedAt)
	assert.Contains(t, stub.Executed(), job.ID)
}

func TestWorkerPoolFailedJobKeepsErrorDetails(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stub := &StubExecutor{
		Result: &ExecutionResult{
			Status:      models.JobStatusFailed,
			FailedAgent: "financial-analyst",
			Error:       fmt.Errorf("required agent financial-analyst failed: no usable fiscal years"),
		},
	}
	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), stub, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	job := createQueuedJob(ctx, t, client)

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "job not failed", func() bool {
		return jobStatus(ctx, t, client, job.ID) == analysisjob.StatusFailed
	})

	final, err := client.AnalysisJob.Get(ctx, job.ID)
	require.NoError(t, err)
	require.NotNil(t, final.FailedAgent)
	assert.Equal(t, "financial-analyst", *final.FailedAgent)
	require.NotNil(t, final.ErrorMessage)
	assert.Contains(t, *final.ErrorMessage, "no usable fiscal years")
}

func TestWorkerPoolCancellation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Slow executor so the job is still running when we cancel.
	stub := &StubExecutor{Delay: 20 * time.Second}
	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), stub, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	job := createQueuedJob(ctx, t, client)

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "job not claimed", func() bool {
		return jobStatus(ctx, t, client, job.ID) == analysisjob.StatusRunning
	})

	require.True(t, pool.CancelJob(job.ID), "running job should be cancellable on this pod")

	awaitCondition(t, 10*time.Second, 50*time.Millisecond, "job not cancelled", func() bool {
		return jobStatus(ctx, t, client, job.ID) == analysisjob.StatusCancelled
	})

	assert.False(t, pool.CancelJob(job.ID), "finished job is no longer in the registry")
}

func TestOrphanDetectionRecoversStaleJobs(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	stale := time.Now().Add(-time.Minute)
	orphan, err := client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetTarget("ACME").
		SetStatus(analysisjob.StatusRunning).
		SetPodID("dead-pod").
		SetStartedAt(stale).
		SetLastHeartbeatAt(stale).
		Save(ctx)
	require.NoError(t, err)

	// A healthy running job must be left alone.
	healthy, err := client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetTarget("ACME").
		SetStatus(analysisjob.StatusRunning).
		SetPodID("live-pod").
		SetStartedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool("test-pod", client, intTestQueueConfig(), &StubExecutor{}, nil)
	require.NoError(t, pool.detectAndRecoverOrphans(ctx))

	recovered, err := client.AnalysisJob.Get(ctx, orphan.ID)
	require.NoError(t, err)
	assert.Equal(t, analysisjob.StatusFailed, recovered.Status)
	require.NotNil(t, recovered.ErrorMessage)
	assert.Contains(t, *recovered.ErrorMessage, "Orphaned")
	assert.Contains(t, *recovered.ErrorMessage, "dead-pod")

	assert.Equal(t, analysisjob.StatusRunning, jobStatus(ctx, t, client, healthy.ID))

	health := pool.Health()
	assert.Equal(t, 1, health.OrphansRecovered)
}

func TestCleanupStartupOrphans(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	mine, err := client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetTarget("ACME").
		SetStatus(analysisjob.StatusRunning).
		SetPodID("pod-1").
		Save(ctx)
	require.NoError(t, err)

	other, err := client.AnalysisJob.Create().
		SetID(uuid.New().String()).
		SetTarget("ACME").
		SetStatus(analysisjob.StatusRunning).
		SetPodID("pod-2").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, client, "pod-1"))

	assert.Equal(t, analysisjob.StatusFailed, jobStatus(ctx, t, client, mine.ID))
	assert.Equal(t, analysisjob.StatusRunning, jobStatus(ctx, t, client, other.ID),
		"another pod's running job must not be touched")
}
