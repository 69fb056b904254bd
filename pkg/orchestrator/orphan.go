package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dealdesk/dealdesk/ent"
	"github.com/dealdesk/dealdesk/ent/analysisjob"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned jobs. All pods run
// this independently; the operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds running jobs with stale heartbeats and
// marks them failed. An orphaned job cannot be resumed: its in-memory
// analysis state died with its pod.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.AnalysisJob.Query().
		Where(
			analysisjob.StatusEQ(analysisjob.StatusRunning),
			analysisjob.LastHeartbeatAtNotNil(),
			analysisjob.LastHeartbeatAtLT(threshold),
			analysisjob.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned jobs: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned jobs", "count", len(orphans))

	recovered := 0
	for _, job := range orphans {
		if err := recoverOrphanedJob(ctx, job); err != nil {
			slog.Error("Failed to recover orphaned job", "job_id", job.ID, "error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// recoverOrphanedJob marks a single orphaned job as failed.
func recoverOrphanedJob(ctx context.Context, job *ent.AnalysisJob) error {
	lastHeartbeat := "unknown"
	if job.LastHeartbeatAt != nil {
		lastHeartbeat = job.LastHeartbeatAt.Format(time.RFC3339)
	}
	podID := "unknown"
	if job.PodID != nil {
		podID = *job.PodID
	}

	err := job.Update().
		SetStatus(analysisjob.StatusFailed).
		SetCompletedAt(time.Now()).
		SetErrorMessage(fmt.Sprintf("Orphaned: no heartbeat from pod %s since %s", podID, lastHeartbeat)).
		ClearCurrentAgent().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job as failed: %w", err)
	}

	slog.Warn("Orphaned job marked as failed",
		"job_id", job.ID, "old_pod_id", podID, "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of jobs owned by this
// pod that were running when the pod previously crashed. Called once during
// startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.AnalysisJob.Query().
		Where(
			analysisjob.StatusEQ(analysisjob.StatusRunning),
			analysisjob.PodIDEQ(podID),
			analysisjob.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run", "pod_id", podID, "count", len(orphans))

	now := time.Now()
	for _, job := range orphans {
		err := job.Update().
			SetStatus(analysisjob.StatusFailed).
			SetCompletedAt(now).
			SetErrorMessage(fmt.Sprintf("Orphaned: pod %s restarted while analysis was in progress", podID)).
			ClearCurrentAgent().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to mark startup orphan", "job_id", job.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "job_id", job.ID)
	}

	return nil
}
