package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/pkg/agent"
	"github.com/dealdesk/dealdesk/pkg/config"
	"github.com/dealdesk/dealdesk/pkg/events"
	"github.com/dealdesk/dealdesk/pkg/finance"
	"github.com/dealdesk/dealdesk/pkg/ingest"
	"github.com/dealdesk/dealdesk/pkg/llm"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/providers"
	"github.com/dealdesk/dealdesk/pkg/state"
)

// stubLLM answers every completion with a fixed response.
type stubLLM struct {
	name string
	out  string
	err  error
}

func (s *stubLLM) Name() string { return s.name }

func (s *stubLLM) Complete(_ context.Context, _ []llm.Message) (string, error) {
	return s.out, s.err
}

// memJobs is an in-memory JobStore recording every write.
type memJobs struct {
	mu            sync.Mutex
	statuses      []models.JobStatus
	progress      []int
	currentAgents []string
	synthesized   map[string]any
	commits       int
	issues        []map[string]any
}

func (m *memJobs) UpdateStatus(_ context.Context, _ string, status models.JobStatus) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, status)
	return nil
}

func (m *memJobs) SetProgress(_ context.Context, _ string, percent int, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = append(m.progress, percent)
	return nil
}

func (m *memJobs) SetCurrentAgent(_ context.Context, _ string, currentAgent string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentAgents = append(m.currentAgents, currentAgent)
	return nil
}

func (m *memJobs) CommitSynthesized(_ context.Context, _ string, doc map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commits++
	if m.commits > 1 {
		return errors.New("synthesized_data already committed")
	}
	m.synthesized = doc
	return nil
}

func (m *memJobs) SetValidationIssues(_ context.Context, _ string, issues []map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.issues = issues
	return nil
}

// memRecords is an in-memory RecordStore.
type memRecords struct {
	mu   sync.Mutex
	recs []models.AgentRecord
}

func (m *memRecords) Append(_ context.Context, rec models.AgentRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs = append(m.recs, rec)
	return nil
}

func (m *memRecords) byName(name string) (models.AgentRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.recs {
		if rec.AgentName == name {
			return rec, true
		}
	}
	return models.AgentRecord{}, false
}

// memSink is an in-memory EventSink.
type memSink struct {
	mu        sync.Mutex
	agents    []events.AgentStatusPayload
	progress  []events.JobProgressPayload
	statuses  []events.JobStatusPayload
	completes []events.JobCompletePayload
	errs      []events.JobErrorPayload
}

func (m *memSink) PublishAgentStatus(_ context.Context, p events.AgentStatusPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.agents = append(m.agents, p)
	return nil
}

func (m *memSink) PublishJobProgress(_ context.Context, p events.JobProgressPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = append(m.progress, p)
	return nil
}

func (m *memSink) PublishJobStatus(_ context.Context, p events.JobStatusPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.statuses = append(m.statuses, p)
	return nil
}

func (m *memSink) PublishJobComplete(_ context.Context, p events.JobCompletePayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.completes = append(m.completes, p)
	return nil
}

func (m *memSink) PublishJobError(_ context.Context, p events.JobErrorPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, p)
	return nil
}

// stubIngestor seeds every raw data key with fixture data.
type stubIngestor struct {
	err error
}

func (s *stubIngestor) Run(_ context.Context, h *state.Handle, _ models.JobParams) error {
	if s.err != nil {
		return s.err
	}
	if err := h.Set(state.KeyFinancialData, ingest.FinancialData{
		Statements: []finance.AnnualFinancials{
			{Year: 2020, Revenue: 1000, NetIncome: 80, OperatingIncome: 120, EBITDA: 180, CFO: 150, Capex: -60, RnD: 40},
			{Year: 2021, Revenue: 1150, NetIncome: 95, OperatingIncome: 140, EBITDA: 205, CFO: 170, Capex: -65, RnD: 44},
			{Year: 2022, Revenue: 1280, NetIncome: 105, OperatingIncome: 155, EBITDA: 225, CFO: 185, Capex: -72, RnD: 46},
			{Year: 2023, Revenue: 1400, NetIncome: 120, OperatingIncome: 175, EBITDA: 250, CFO: 210, Capex: -80, RnD: 52},
		},
		Profile:    &providers.CompanyProfile{Symbol: "ACME", Beta: 1.2, MktCap: 5000, Price: 50},
		KeyMetrics: []map[string]any{{"netDebt": 400.0}},
	}); err != nil {
		return err
	}
	if err := h.Set(state.KeyTreasuryData, ingest.TreasuryData{Rates: []map[string]any{{"year10": 4.3}}}); err != nil {
		return err
	}
	if err := h.Set(state.KeySECFilings, ingest.FilingsData{}); err != nil {
		return err
	}
	if err := h.Set(state.KeyProxyData, ingest.ProxyData{}); err != nil {
		return err
	}
	if err := h.Set(state.KeyMarketData, ingest.MarketData{}); err != nil {
		return err
	}
	return h.Set(state.KeyAcquirerData, ingest.AcquirerData{})
}

// memRenderer records the handed-over document.
type memRenderer struct {
	mu    sync.Mutex
	docs  []map[string]any
	paths []string
	err   error
}

func (m *memRenderer) Render(_ context.Context, jobID string, doc map[string]any) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.docs = append(m.docs, doc)
	m.paths = []string{"/artifacts/" + jobID + "/synthesized_data.json"}
	return m.paths, nil
}

func testConfig() *config.Config {
	return &config.Config{
		Defaults: &config.Defaults{ArtifactDir: "/tmp/artifacts"},
		Queue: &config.QueueConfig{
			JobTimeout:       time.Minute,
			AgentSoftTimeout: 5 * time.Minute,
		},
		Validator: &config.ValidatorConfig{MinAgentCoverage: 10},
	}
}

type executorFixture struct {
	exec     *PipelineExecutor
	jobs     *memJobs
	records  *memRecords
	sink     *memSink
	renderer *memRenderer
}

func newExecutorFixture(llmOut string) *executorFixture {
	f := &executorFixture{
		jobs:     &memJobs{},
		records:  &memRecords{},
		sink:     &memSink{},
		renderer: &memRenderer{},
	}
	pipeline := llm.NewPipeline(&stubLLM{name: "primary", out: llmOut}, nil, nil, nil)
	f.exec = NewPipelineExecutor(testConfig(), f.jobs, f.records, f.sink, &stubIngestor{}, pipeline, nil)
	f.exec.SetRenderer(f.renderer)
	return f
}

func testJob() *models.Job {
	return &models.Job{
		ID:     "job-1",
		Status: models.JobStatusRunning,
		Params: models.JobParams{Target: "ACME", Thesis: "scale platform"},
	}
}

func TestPipelineExecutor_HappyPath(t *testing.T) {
	f := newExecutorFixture(`{"assessment": "stable", "confidence": 80, "validation_checks": []}`)

	result := f.exec.Execute(context.Background(), testJob())
	require.NotNil(t, result)
	require.NoError(t, result.Error)
	assert.Equal(t, models.JobStatusCompleted, result.Status)
	assert.Equal(t, f.renderer.paths, result.ArtifactPaths)

	t.Run("lifecycle transitions in order", func(t *testing.T) {
		assert.Equal(t, []models.JobStatus{
			models.JobStatusSynthesizing,
			models.JobStatusValidating,
		}, f.jobs.statuses)
	})

	t.Run("progress is monotonic and ends at 100", func(t *testing.T) {
		require.NotEmpty(t, f.jobs.progress)
		prev := -1
		for _, p := range f.jobs.progress {
			assert.GreaterOrEqual(t, p, prev)
			prev = p
		}
		assert.Equal(t, 100, f.jobs.progress[len(f.jobs.progress)-1])
	})

	t.Run("one record per roster agent plus synthesis", func(t *testing.T) {
		assert.Len(t, f.records.recs, len(agent.Roster())+1)
		fin, ok := f.records.byName(agent.NameFinancialAnalyst)
		require.True(t, ok)
		assert.NotEqual(t, models.AgentStatusError, fin.Status)
	})

	t.Run("synthesized document committed exactly once", func(t *testing.T) {
		assert.Equal(t, 1, f.jobs.commits)
		require.NotNil(t, f.jobs.synthesized)
		assert.Contains(t, f.jobs.synthesized, "metadata")
		assert.Contains(t, f.jobs.synthesized, "detailed_financials")
	})

	t.Run("renderer received the committed document", func(t *testing.T) {
		require.Len(t, f.renderer.docs, 1)
		assert.Equal(t, f.jobs.synthesized, f.renderer.docs[0])
	})

	t.Run("completion event carries artifact paths", func(t *testing.T) {
		require.Len(t, f.sink.completes, 1)
		assert.Equal(t, f.renderer.paths, f.sink.completes[0].ArtifactPaths)
		assert.Empty(t, f.sink.errs)
	})
}

func TestPipelineExecutor_DependentsStartAfterProducersFinish(t *testing.T) {
	f := newExecutorFixture(`{"assessment": "stable", "confidence": 80, "validation_checks": []}`)

	result := f.exec.Execute(context.Background(), testJob())
	require.NoError(t, result.Error)

	// Map every derived key to the agent that produced it, then check each
	// consumer's record never starts before its producer's record finished.
	producers := make(map[state.Key]string)
	for _, a := range agent.Roster() {
		for _, out := range a.ProducedOutputs() {
			producers[out] = a.Name()
		}
	}

	for _, a := range agent.Roster() {
		consumer, ok := f.records.byName(a.Name())
		require.True(t, ok, "missing record for %s", a.Name())
		for _, in := range a.RequiredInputs() {
			producerName, derived := producers[in]
			if !derived {
				continue // raw key, seeded by ingestion before any wave
			}
			producer, ok := f.records.byName(producerName)
			require.True(t, ok, "missing record for %s", producerName)
			assert.False(t, consumer.StartedAt.Before(producer.CompletedAt),
				"%s started at %v before %s finished at %v",
				a.Name(), consumer.StartedAt, producerName, producer.CompletedAt)
		}
	}
}

func TestPipelineExecutor_OptionalAgentFailuresTolerated(t *testing.T) {
	// Garbage completions fail every prompt agent; the deterministic
	// financial analyst and synthesis still carry the job home.
	f := newExecutorFixture("I cannot answer that.")

	result := f.exec.Execute(context.Background(), testJob())
	assert.Equal(t, models.JobStatusCompleted, result.Status)

	legal, ok := f.records.byName(agent.NameLegalCounsel)
	require.True(t, ok)
	assert.Equal(t, models.AgentStatusError, legal.Status)

	fin, ok := f.records.byName(agent.NameFinancialAnalyst)
	require.True(t, ok)
	assert.NotEqual(t, models.AgentStatusError, fin.Status)

	require.Len(t, f.sink.completes, 1)
}

func TestPipelineExecutor_RequiredAgentFailureFailsJob(t *testing.T) {
	f := newExecutorFixture(`{}`)
	f.exec.SetRoster([]agent.Agent{
		&fakeAgent{
			name:    agent.NameFinancialAnalyst,
			inputs:  []state.Key{state.KeyFinancialData},
			outputs: []state.Key{state.KeyNormalizedFinancials},
			execute: func(context.Context, *state.Handle, *agent.RunContext) (*agent.Result, error) {
				return nil, errors.New("model universe is empty")
			},
		},
	})

	result := f.exec.Execute(context.Background(), testJob())
	assert.Equal(t, models.JobStatusFailed, result.Status)
	assert.Equal(t, agent.NameFinancialAnalyst, result.FailedAgent)
	require.Error(t, result.Error)

	require.Len(t, f.sink.errs, 1)
	assert.Equal(t, "agent_failure", f.sink.errs[0].Kind)
	assert.Zero(t, f.jobs.commits, "no synthesis after a required failure")
}

func TestPipelineExecutor_IngestionFailureFailsJob(t *testing.T) {
	f := newExecutorFixture(`{}`)
	pipeline := llm.NewPipeline(&stubLLM{name: "primary", out: "{}"}, nil, nil, nil)
	f.exec = NewPipelineExecutor(testConfig(), f.jobs, f.records, f.sink,
		&stubIngestor{err: errors.New("data provider unreachable")}, pipeline, nil)

	result := f.exec.Execute(context.Background(), testJob())
	assert.Equal(t, models.JobStatusFailed, result.Status)
	assert.Equal(t, state.IngestionOwner, result.FailedAgent)
	assert.Empty(t, f.records.recs, "no agents ran without raw data")
}

func TestPipelineExecutor_SchedulerRejectsBadRoster(t *testing.T) {
	f := newExecutorFixture(`{}`)
	f.exec.SetRoster([]agent.Agent{
		&fakeAgent{name: "a", outputs: []state.Key{"shared"}},
		&fakeAgent{name: "b", outputs: []state.Key{"shared"}},
	})

	result := f.exec.Execute(context.Background(), testJob())
	assert.Equal(t, models.JobStatusFailed, result.Status)
	assert.Equal(t, "scheduler", result.FailedAgent)
}

func TestPipelineExecutor_CancelledAtBoundary(t *testing.T) {
	f := newExecutorFixture(`{}`)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := f.exec.Execute(ctx, testJob())
	assert.Equal(t, models.JobStatusCancelled, result.Status)

	// Cancellation is observed at the first wave boundary: ingestion ran,
	// no analytical agent did.
	assert.Empty(t, f.records.recs)
	require.Len(t, f.sink.errs, 1)
	assert.Equal(t, "cancelled", f.sink.errs[0].Kind)
}

func TestPipelineExecutor_HardTimeoutAtBoundary(t *testing.T) {
	f := newExecutorFixture(`{}`)
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	result := f.exec.Execute(ctx, testJob())
	assert.Equal(t, models.JobStatusFailed, result.Status)
	require.Error(t, result.Error)
	assert.Contains(t, result.Error.Error(), "job_timeout")

	require.Len(t, f.sink.errs, 1)
	assert.Equal(t, "job_timeout", f.sink.errs[0].Kind)
}

func TestPipelineExecutor_PanickingAgentBecomesErrorRecord(t *testing.T) {
	f := newExecutorFixture(`{}`)
	f.exec.SetRoster([]agent.Agent{
		&fakeAgent{
			name:    "panicky",
			inputs:  []state.Key{state.KeyFinancialData},
			outputs: []state.Key{"panicky_output"},
			execute: func(context.Context, *state.Handle, *agent.RunContext) (*agent.Result, error) {
				panic("nil map write")
			},
		},
		&fakeAgent{
			name:    agent.NameFinancialAnalyst,
			inputs:  []state.Key{state.KeyFinancialData},
			outputs: []state.Key{state.KeyNormalizedFinancials},
		},
	})

	result := f.exec.Execute(context.Background(), testJob())
	// The optional agent's panic is contained in an error record and the
	// pipeline keeps running; whatever happens downstream, the panic
	// itself never takes the process down.
	rec, ok := f.records.byName("panicky")
	require.True(t, ok)
	assert.Equal(t, models.AgentStatusError, rec.Status)
	require.Len(t, rec.Errors, 1)
	assert.Contains(t, rec.Errors[0], "agent panicked")
	assert.NotEqual(t, models.JobStatusCancelled, result.Status)
}

func TestPipelineExecutor_MissingInputSkipsAgent(t *testing.T) {
	f := newExecutorFixture(`{}`)
	executed := false
	f.exec.SetRoster([]agent.Agent{
		&fakeAgent{
			name:    agent.NameFinancialAnalyst,
			inputs:  []state.Key{state.KeyFinancialData},
			outputs: []state.Key{state.KeyNormalizedFinancials},
			execute: func(ctx context.Context, h *state.Handle, rc *agent.RunContext) (*agent.Result, error) {
				// Produces nothing: downstream input stays missing.
				return &agent.Result{}, nil
			},
		},
		&fakeAgent{
			name:    "downstream",
			inputs:  []state.Key{state.KeyNormalizedFinancials},
			outputs: []state.Key{"downstream_output"},
			execute: func(context.Context, *state.Handle, *agent.RunContext) (*agent.Result, error) {
				executed = true
				return &agent.Result{}, nil
			},
		},
	})

	f.exec.Execute(context.Background(), testJob())

	assert.False(t, executed, "agent body must not run with missing inputs")
	rec, ok := f.records.byName("downstream")
	require.True(t, ok)
	assert.Equal(t, models.AgentStatusError, rec.Status)
	require.Len(t, rec.Errors, 1)
	assert.Contains(t, rec.Errors[0], "required inputs not available")
}
