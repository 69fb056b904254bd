package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/ent/analysisjob"
	"github.com/dealdesk/dealdesk/pkg/database"
	"github.com/dealdesk/dealdesk/pkg/events"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/services"
	testdb "github.com/dealdesk/dealdesk/test/database"
)

type apiFixture struct {
	router *gin.Engine
	jobs   *services.JobService
	db     *database.Client
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	dbClient := testdb.NewTestClient(t)

	jobs := services.NewJobService(dbClient.Client)
	records := services.NewRecordService(dbClient.Client)
	eventLog := services.NewEventService(dbClient.Client)
	publisher := events.NewPublisher(dbClient.DB())
	connManager := events.NewConnectionManager(eventLog, 10*time.Second)

	srv := NewServer(jobs, records, eventLog, publisher, connManager, nil, dbClient)
	return &apiFixture{router: srv.Router(), jobs: jobs, db: dbClient}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestSubmitAnalysis(t *testing.T) {
	f := newAPIFixture(t)

	t.Run("valid submission accepted", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/analysis", SubmitAnalysisRequest{
			Target: "acme",
			Thesis: "scale platform",
		})
		require.Equal(t, http.StatusAccepted, w.Code)

		var resp SubmitAnalysisResponse
		decodeJSON(t, w, &resp)
		assert.NotEmpty(t, resp.JobID)
		assert.Equal(t, "queued", resp.Status)

		job, err := f.jobs.GetJob(context.Background(), resp.JobID)
		require.NoError(t, err)
		assert.Equal(t, "ACME", job.Target)
	})

	t.Run("missing target rejected", func(t *testing.T) {
		w := f.do(t, http.MethodPost, "/api/v1/analysis", SubmitAnalysisRequest{Thesis: "no target"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "target")
	})

	t.Run("malformed body rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		f.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetAnalysis(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	job, err := f.jobs.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)

	t.Run("status view", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/analysis/"+job.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp AnalysisResponse
		decodeJSON(t, w, &resp)
		assert.Equal(t, job.ID, resp.JobID)
		assert.Equal(t, "queued", resp.Status)
		assert.Zero(t, resp.ProgressPercent)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/analysis/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestGetResult(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	job, err := f.jobs.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)

	t.Run("conflict before completion", func(t *testing.T) {
		w := f.do(t, http.MethodGet, "/api/v1/analysis/"+job.ID+"/result", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("result after completion", func(t *testing.T) {
		require.NoError(t, f.jobs.CommitSynthesized(ctx, job.ID, map[string]any{
			"metadata": map[string]any{"data_version": "2.0"},
		}))
		require.NoError(t, f.db.AnalysisJob.UpdateOneID(job.ID).
			SetStatus(analysisjob.StatusCompleted).
			SetArtifactPaths([]string{"/artifacts/a.json"}).
			Exec(ctx))

		w := f.do(t, http.MethodGet, "/api/v1/analysis/"+job.ID+"/result", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp ResultResponse
		decodeJSON(t, w, &resp)
		assert.Contains(t, resp.SynthesizedData, "metadata")
		assert.Equal(t, []string{"/artifacts/a.json"}, resp.ArtifactPaths)
	})
}

func TestCancelAnalysis(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	t.Run("queued job cancels", func(t *testing.T) {
		job, err := f.jobs.CreateJob(ctx, models.JobParams{Target: "ACME"})
		require.NoError(t, err)

		w := f.do(t, http.MethodPost, "/api/v1/analysis/"+job.ID+"/cancel", nil)
		require.Equal(t, http.StatusOK, w.Code)

		got, err := f.jobs.GetJob(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, analysisjob.StatusCancelled, got.Status)
	})

	t.Run("terminal job conflicts", func(t *testing.T) {
		job, err := f.jobs.CreateJob(ctx, models.JobParams{Target: "ACME"})
		require.NoError(t, err)
		require.NoError(t, f.db.AnalysisJob.UpdateOneID(job.ID).
			SetStatus(analysisjob.StatusFailed).
			Exec(ctx))

		w := f.do(t, http.MethodPost, "/api/v1/analysis/"+job.ID+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("running job without a local pool conflicts", func(t *testing.T) {
		job, err := f.jobs.CreateJob(ctx, models.JobParams{Target: "ACME"})
		require.NoError(t, err)
		require.NoError(t, f.db.AnalysisJob.UpdateOneID(job.ID).
			SetStatus(analysisjob.StatusRunning).
			Exec(ctx))

		w := f.do(t, http.MethodPost, "/api/v1/analysis/"+job.ID+"/cancel", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestListAnalyses(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	for _, target := range []string{"ACME", "GLOBEX"} {
		_, err := f.jobs.CreateJob(ctx, models.JobParams{Target: target})
		require.NoError(t, err)
	}

	w := f.do(t, http.MethodGet, "/api/v1/analysis?target=acme", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ListAnalysesResponse
	decodeJSON(t, w, &resp)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "ACME", resp.Jobs[0].Target)
}

func TestHealthEndpoint(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(t, http.MethodGet, "/api/v1/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	decodeJSON(t, w, &resp)
	assert.Equal(t, "healthy", resp["status"])
	assert.Contains(t, resp, "database")
}
