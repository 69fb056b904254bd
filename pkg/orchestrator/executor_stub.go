package orchestrator

import (
	"context"
	"sync"
	"time"

	"github.com/dealdesk/dealdesk/pkg/models"
)

// StubExecutor is a JobExecutor for worker and pool tests: it waits a
// configurable delay (observing cancellation) and returns a fixed result.
type StubExecutor struct {
	Delay  time.Duration
	Result *ExecutionResult

	mu       sync.Mutex
	executed []string
}

// Execute implements JobExecutor.
func (s *StubExecutor) Execute(ctx context.Context, job *models.Job) *ExecutionResult {
	s.mu.Lock()
	s.executed = append(s.executed, job.ID)
	s.mu.Unlock()

	if s.Delay > 0 {
		select {
		case <-ctx.Done():
			if ctx.Err() == context.DeadlineExceeded {
				return &ExecutionResult{Status: models.JobStatusFailed, Error: ctx.Err()}
			}
			return &ExecutionResult{Status: models.JobStatusCancelled}
		case <-time.After(s.Delay):
		}
	}

	if s.Result != nil {
		return s.Result
	}
	return &ExecutionResult{Status: models.JobStatusCompleted}
}

// Executed returns the job IDs this stub has processed.
func (s *StubExecutor) Executed() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.executed))
	copy(out, s.executed)
	return out
}
