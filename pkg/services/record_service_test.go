package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/ent/agentrecord"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/test/util"
)

func TestRecordService_AppendAndList(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	jobs := NewJobService(client)
	svc := NewRecordService(client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)

	start := time.Now().Add(-3 * time.Second)
	require.NoError(t, svc.Append(ctx, models.AgentRecord{
		JobID:       job.ID,
		AgentName:   "financial-analyst",
		Status:      models.AgentStatusOK,
		StartedAt:   start,
		CompletedAt: start.Add(2 * time.Second),
		Payload:     map[string]any{"enterprise_value": 4200.0},
	}))
	require.NoError(t, svc.Append(ctx, models.AgentRecord{
		JobID:       job.ID,
		AgentName:   "legal-counsel",
		Status:      models.AgentStatusWarning,
		StartedAt:   start,
		CompletedAt: start.Add(3 * time.Second),
		Warnings:    []string{"proxy statement is stale"},
	}))

	records, err := svc.ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, records, 2)

	t.Run("completion order", func(t *testing.T) {
		assert.Equal(t, "financial-analyst", records[0].AgentName)
		assert.Equal(t, "legal-counsel", records[1].AgentName)
	})

	t.Run("duration computed from timestamps", func(t *testing.T) {
		require.NotNil(t, records[0].DurationMs)
		assert.Equal(t, 2000, *records[0].DurationMs)
	})

	t.Run("payload and warnings round-trip", func(t *testing.T) {
		assert.Equal(t, 4200.0, records[0].Payload["enterprise_value"])
		assert.Equal(t, agentrecord.StatusWarning, records[1].Status)
		assert.Equal(t, []string{"proxy statement is stale"}, records[1].Warnings)
	})

	t.Run("duplicate agent record rejected", func(t *testing.T) {
		err := svc.Append(ctx, models.AgentRecord{
			JobID:       job.ID,
			AgentName:   "financial-analyst",
			Status:      models.AgentStatusOK,
			StartedAt:   start,
			CompletedAt: start.Add(time.Second),
		})
		require.Error(t, err, "records are append-once per (job, agent)")
	})
}
