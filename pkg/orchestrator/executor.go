package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"sync"
	"time"

	"github.com/dealdesk/dealdesk/pkg/agent"
	"github.com/dealdesk/dealdesk/pkg/config"
	"github.com/dealdesk/dealdesk/pkg/events"
	"github.com/dealdesk/dealdesk/pkg/llm"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/providers"
	"github.com/dealdesk/dealdesk/pkg/state"
	"github.com/dealdesk/dealdesk/pkg/synthesis"
	"github.com/dealdesk/dealdesk/pkg/validator"
)

// PipelineExecutor implements JobExecutor over the real agent roster.
//
// One Execute call drives one job: ingestion, the scheduler's agent waves,
// synthesis, the consistency validator, and the rendering handoff. All
// writes go through the narrow store interfaces so the pipeline itself
// never touches the database layer directly.
type PipelineExecutor struct {
	cfg      *config.Config
	jobs     JobStore
	records  RecordStore
	sink     EventSink
	ingestor Ingestor
	pipeline *llm.Pipeline
	search   *providers.SearchClient
	renderer Renderer

	roster    []agent.Agent
	synth     agent.Agent
	validator *validator.Validator
}

// NewPipelineExecutor wires the executor over the standard roster.
// search may be nil (web cross-referencing disabled).
func NewPipelineExecutor(cfg *config.Config, jobs JobStore, records RecordStore, sink EventSink, ingestor Ingestor, pipeline *llm.Pipeline, search *providers.SearchClient) *PipelineExecutor {
	return &PipelineExecutor{
		cfg:       cfg,
		jobs:      jobs,
		records:   records,
		sink:      sink,
		ingestor:  ingestor,
		pipeline:  pipeline,
		search:    search,
		renderer:  NewJSONRenderer(cfg.Defaults.ArtifactDir),
		roster:    agent.Roster(),
		synth:     synthesis.New(),
		validator: validator.New(cfg.Validator),
	}
}

// SetRenderer replaces the default artifact renderer.
func (e *PipelineExecutor) SetRenderer(r Renderer) { e.renderer = r }

// SetRoster replaces the agent roster. Used by tests to run reduced or
// misdeclared rosters against the scheduler.
func (e *PipelineExecutor) SetRoster(roster []agent.Agent) { e.roster = roster }

// progress tracks monotonic job progress. Percent counts agents finished
// ok or warn, never agents running or errored.
type progress struct {
	finished int
	total    int
}

func (p *progress) percent() int {
	if p.total == 0 {
		return 0
	}
	return p.finished * 100 / p.total
}

// Execute runs the full pipeline for one claimed job.
func (e *PipelineExecutor) Execute(ctx context.Context, job *models.Job) *ExecutionResult {
	log := slog.With("job_id", job.ID, "target", job.Params.Target)
	log.Info("Pipeline executor: starting analysis",
		"acquirer", job.Params.Acquirer, "deal_value", job.Params.DealValue)

	st := state.New()
	if err := DeclareOwners(st, e.roster, e.synth); err != nil {
		return e.fail(ctx, job.ID, "scheduler", fmt.Errorf("rejecting roster: %w", err))
	}
	waves, err := Waves(e.roster)
	if err != nil {
		return e.fail(ctx, job.ID, "scheduler", fmt.Errorf("rejecting roster: %w", err))
	}

	rc := &agent.RunContext{
		JobID:  job.ID,
		Params: job.Params,
		LLM:    e.pipeline,
		Search: e.search,
		Log:    log,
	}

	// Ingestion, the roster, and synthesis all count toward progress.
	prog := &progress{total: 1 + len(e.roster) + 1}

	// 1. Ingestion. Required: no raw data, no analysis.
	if result := e.runIngestion(ctx, job, st, prog); result != nil {
		return result
	}

	// 2. Dependency-ordered agent waves.
	for i, wave := range waves {
		if result := e.checkBoundary(ctx, job.ID); result != nil {
			return result
		}
		log.Info("Starting agent wave", "wave", i+1, "agents", waveNames(wave))

		var wg sync.WaitGroup
		recs := make([]models.AgentRecord, len(wave))
		for j, a := range wave {
			wg.Add(1)
			go func(j int, a agent.Agent) {
				defer wg.Done()
				recs[j] = e.runAgent(ctx, job.ID, st, a, rc)
			}(j, a)
		}
		wg.Wait()

		for _, rec := range recs {
			if rec.Status != models.AgentStatusError {
				prog.finished++
			}
		}
		e.publishProgress(ctx, job.ID, prog.percent(), "")

		for _, rec := range recs {
			if rec.Status == models.AgentStatusError && agent.Required(rec.AgentName) {
				return e.fail(ctx, job.ID, rec.AgentName,
					fmt.Errorf("required agent %s failed: %s", rec.AgentName, firstOr(rec.Errors, "unknown error")))
			}
		}
	}

	// 3. Synthesis.
	if result := e.checkBoundary(ctx, job.ID); result != nil {
		return result
	}
	e.transition(ctx, job.ID, models.JobStatusSynthesizing)
	synthRec := e.runAgent(ctx, job.ID, st, e.synth, rc)
	if synthRec.Status == models.AgentStatusError {
		return e.fail(ctx, job.ID, e.synth.Name(),
			fmt.Errorf("synthesis failed: %s", firstOr(synthRec.Errors, "unknown error")))
	}
	prog.finished++
	e.publishProgress(ctx, job.ID, prog.percent(), "")

	doc, err := st.Synthesized()
	if err != nil {
		return e.fail(ctx, job.ID, e.synth.Name(), err)
	}
	if err := e.jobs.CommitSynthesized(context.WithoutCancel(ctx), job.ID, doc); err != nil {
		return e.fail(ctx, job.ID, e.synth.Name(), fmt.Errorf("persisting synthesized document: %w", err))
	}

	// 4. Consistency validation. A blocker means no artifacts, no
	// completion event, terminal failed status.
	e.transition(ctx, job.ID, models.JobStatusValidating)
	report := e.validator.Validate(st)
	if err := e.jobs.SetValidationIssues(context.WithoutCancel(ctx), job.ID, issueMaps(report.Issues)); err != nil {
		log.Warn("Failed to persist validation issues", "error", err)
	}
	if report.HasBlocker() {
		return e.fail(ctx, job.ID, "consistency-validator",
			fmt.Errorf("validation blocker: %s", report.BlockerSummary()))
	}

	// 5. Rendering handoff.
	paths, err := e.renderer.Render(context.WithoutCancel(ctx), job.ID, doc)
	if err != nil {
		return e.fail(ctx, job.ID, "renderer", fmt.Errorf("rendering artifacts: %w", err))
	}

	e.publishProgress(ctx, job.ID, 100, "")
	if err := e.sink.PublishJobComplete(context.WithoutCancel(ctx), events.JobCompletePayload{
		JobID:         job.ID,
		Outcome:       string(models.JobStatusCompleted),
		ArtifactPaths: paths,
	}); err != nil {
		log.Warn("Failed to publish job complete event", "error", err)
	}

	log.Info("Analysis complete", "artifacts", len(paths), "issues", len(report.Issues))
	return &ExecutionResult{Status: models.JobStatusCompleted, ArtifactPaths: paths}
}

// runIngestion runs the parallel raw data fetch. Returns a terminal result
// on failure, nil on success.
func (e *PipelineExecutor) runIngestion(ctx context.Context, job *models.Job, st *state.Store, prog *progress) *ExecutionResult {
	e.publishAgentStatus(ctx, job.ID, state.IngestionOwner, events.AgentPhaseRunning, "fetching external data", nil)
	e.publishProgress(ctx, job.ID, prog.percent(), state.IngestionOwner)

	h := st.HandleFor(state.IngestionOwner)
	if err := e.ingestor.Run(ctx, h, job.Params); err != nil {
		e.publishAgentStatus(ctx, job.ID, state.IngestionOwner, events.AgentPhaseError, err.Error(), nil)
		return e.fail(ctx, job.ID, state.IngestionOwner, fmt.Errorf("ingestion failed: %w", err))
	}

	prog.finished++
	e.publishAgentStatus(ctx, job.ID, state.IngestionOwner, events.AgentPhaseOK, "raw data committed", nil)
	e.publishProgress(ctx, job.ID, prog.percent(), "")
	return nil
}

// runAgent executes one agent and commits its record. Never returns before
// the record is appended: a panicking or erroring agent still leaves an
// auditable trail.
func (e *PipelineExecutor) runAgent(ctx context.Context, jobID string, st *state.Store, a agent.Agent, rc *agent.RunContext) models.AgentRecord {
	log := rc.Logger().With("agent", a.Name())

	e.publishAgentStatus(ctx, jobID, a.Name(), events.AgentPhaseRunning, "", nil)
	if err := e.jobs.SetCurrentAgent(context.WithoutCancel(ctx), jobID, a.Name()); err != nil {
		log.Warn("Failed to persist current agent", "error", err)
	}

	rec := models.AgentRecord{
		JobID:     jobID,
		AgentName: a.Name(),
		StartedAt: time.Now(),
	}

	if missing := missingInputs(st, a); len(missing) > 0 {
		rec.Status = models.AgentStatusError
		rec.Errors = []string{fmt.Sprintf("required inputs not available: %v", missing)}
		log.Warn("Agent skipped, required inputs missing", "missing", missing)
	} else {
		res, err := e.executeGuarded(ctx, st, a, rc, log)
		switch {
		case err != nil:
			rec.Status = models.AgentStatusError
			rec.Errors = []string{err.Error()}
			log.Error("Agent failed", "error", err)
		default:
			rec.Status = res.Status()
			rec.Payload = res.Payload
			rec.Warnings = res.Warnings
			rec.Errors = res.Errors
			rec.Recommendations = res.Recommendations
		}
	}

	rec.CompletedAt = time.Now()
	st.AppendRecord(rec)
	if err := e.records.Append(context.WithoutCancel(ctx), rec); err != nil {
		log.Warn("Failed to persist agent record", "error", err)
	}

	phase := events.AgentPhaseOK
	var details []string
	switch rec.Status {
	case models.AgentStatusWarning:
		phase = events.AgentPhaseWarn
		details = rec.Warnings
	case models.AgentStatusError:
		phase = events.AgentPhaseError
		details = rec.Errors
	}
	e.publishAgentStatus(ctx, jobID, a.Name(), phase,
		fmt.Sprintf("finished in %s", rec.Duration().Round(time.Millisecond)), details)

	log.Info("Agent finished", "status", rec.Status, "duration", rec.Duration().Round(time.Millisecond))
	return rec
}

// executeGuarded runs the agent body with panic recovery and the soft
// timeout watchdog. The agent context is detached from job cancellation:
// cancel and hard timeout take effect at wave boundaries, never mid-agent.
func (e *PipelineExecutor) executeGuarded(ctx context.Context, st *state.Store, a agent.Agent, rc *agent.RunContext, log *slog.Logger) (res *agent.Result, err error) {
	h := st.HandleFor(a.Name())

	watchdog := time.AfterFunc(e.cfg.Queue.AgentSoftTimeout, func() {
		log.Warn("Agent exceeded soft timeout, letting it run", "soft_timeout", e.cfg.Queue.AgentSoftTimeout)
		h.AppendAnomaly("soft_timeout", fmt.Sprintf("exceeded soft timeout of %s", e.cfg.Queue.AgentSoftTimeout))
	})
	defer watchdog.Stop()

	defer func() {
		if r := recover(); r != nil {
			log.Error("Agent panicked", "panic", r, "stack", string(debug.Stack()))
			res, err = nil, fmt.Errorf("agent panicked: %v", r)
		}
	}()

	return a.Execute(context.WithoutCancel(ctx), h, rc)
}

// checkBoundary maps job-context termination to a terminal result. Called
// between waves and stages only; running agents always finish first.
func (e *PipelineExecutor) checkBoundary(ctx context.Context, jobID string) *ExecutionResult {
	switch ctx.Err() {
	case nil:
		return nil
	case context.DeadlineExceeded:
		return e.fail(ctx, jobID, "", fmt.Errorf("job_timeout: exceeded %s", e.cfg.Queue.JobTimeout))
	default:
		slog.Info("Job cancelled at stage boundary", "job_id", jobID)
		if err := e.sink.PublishJobError(context.WithoutCancel(ctx), events.JobErrorPayload{
			JobID: jobID, Kind: "cancelled", Message: "job cancelled at agent boundary",
		}); err != nil {
			slog.Warn("Failed to publish cancellation event", "job_id", jobID, "error", err)
		}
		return &ExecutionResult{Status: models.JobStatusCancelled}
	}
}

// fail publishes the terminal error event and returns the failed result.
// The worker persists the terminal status.
func (e *PipelineExecutor) fail(ctx context.Context, jobID, failedAgent string, err error) *ExecutionResult {
	kind := "agent_failure"
	switch failedAgent {
	case "consistency-validator":
		kind = "validation_blocker"
	case "":
		kind = "job_timeout"
	}
	if pubErr := e.sink.PublishJobError(context.WithoutCancel(ctx), events.JobErrorPayload{
		JobID: jobID, Kind: kind, Message: err.Error(),
	}); pubErr != nil {
		slog.Warn("Failed to publish job error event", "job_id", jobID, "error", pubErr)
	}
	return &ExecutionResult{Status: models.JobStatusFailed, FailedAgent: failedAgent, Error: err}
}

// transition updates the job status and publishes the matching event.
func (e *PipelineExecutor) transition(ctx context.Context, jobID string, status models.JobStatus) {
	wctx := context.WithoutCancel(ctx)
	if err := e.jobs.UpdateStatus(wctx, jobID, status); err != nil {
		slog.Warn("Failed to update job status", "job_id", jobID, "status", status, "error", err)
	}
	if err := e.sink.PublishJobStatus(wctx, events.JobStatusPayload{JobID: jobID, Status: status}); err != nil {
		slog.Warn("Failed to publish job status", "job_id", jobID, "status", status, "error", err)
	}
}

// publishProgress persists and broadcasts progress. Percent only ever
// grows because it counts finished agents over a fixed total.
func (e *PipelineExecutor) publishProgress(ctx context.Context, jobID string, percent int, currentAgent string) {
	wctx := context.WithoutCancel(ctx)
	if err := e.jobs.SetProgress(wctx, jobID, percent, currentAgent); err != nil {
		slog.Warn("Failed to persist progress", "job_id", jobID, "error", err)
	}
	if err := e.sink.PublishJobProgress(wctx, events.JobProgressPayload{
		JobID: jobID, Percent: percent, CurrentAgent: currentAgent,
	}); err != nil {
		slog.Warn("Failed to publish progress", "job_id", jobID, "error", err)
	}
}

func (e *PipelineExecutor) publishAgentStatus(ctx context.Context, jobID, agentName, phase, message string, details []string) {
	if err := e.sink.PublishAgentStatus(context.WithoutCancel(ctx), events.AgentStatusPayload{
		JobID: jobID, Agent: agentName, Phase: phase, Message: message, Details: details,
	}); err != nil {
		slog.Warn("Failed to publish agent status", "job_id", jobID, "agent", agentName, "error", err)
	}
}

func missingInputs(st *state.Store, a agent.Agent) []string {
	var missing []string
	for _, k := range a.RequiredInputs() {
		if !st.Has(k) {
			missing = append(missing, string(k))
		}
	}
	return missing
}

func waveNames(wave []agent.Agent) []string {
	names := make([]string, len(wave))
	for i, a := range wave {
		names[i] = a.Name()
	}
	return names
}

func issueMaps(issues []validator.Issue) []map[string]any {
	out := make([]map[string]any, len(issues))
	for i, issue := range issues {
		out[i] = map[string]any{
			"severity":    string(issue.Severity),
			"description": issue.Description,
			"remediation": issue.Remediation,
		}
	}
	return out
}

func firstOr(list []string, fallback string) string {
	if len(list) > 0 {
		return list[0]
	}
	return fallback
}
