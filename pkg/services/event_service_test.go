package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/ent"
	"github.com/dealdesk/dealdesk/pkg/events"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/test/util"
)

func seedEvents(ctx context.Context, t *testing.T, client *ent.Client, jobID, channel string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, err := client.Event.Create().
			SetJobID(jobID).
			SetChannel(channel).
			SetPayload(map[string]any{"type": events.EventTypeJobProgress, "seq": i}).
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestEventService_Catchup(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	jobs := NewJobService(client)
	svc := NewEventService(client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)
	channel := events.JobChannel(job.ID)
	seedEvents(ctx, t, client, job.ID, channel, 5)

	all, err := svc.GetCatchupEvents(ctx, channel, 0, 10)
	require.NoError(t, err)
	require.Len(t, all, 5)

	t.Run("ascending IDs", func(t *testing.T) {
		for i := 1; i < len(all); i++ {
			assert.Greater(t, all[i].ID, all[i-1].ID)
		}
	})

	t.Run("resumes after sinceID", func(t *testing.T) {
		rest, err := svc.GetCatchupEvents(ctx, channel, all[2].ID, 10)
		require.NoError(t, err)
		require.Len(t, rest, 2)
		assert.Equal(t, all[3].ID, rest[0].ID)
	})

	t.Run("limit respected", func(t *testing.T) {
		page, err := svc.GetCatchupEvents(ctx, channel, 0, 2)
		require.NoError(t, err)
		assert.Len(t, page, 2)
	})

	t.Run("other channels excluded", func(t *testing.T) {
		other, err := jobs.CreateJob(ctx, models.JobParams{Target: "GLOBEX"})
		require.NoError(t, err)
		seedEvents(ctx, t, client, other.ID, events.JobChannel(other.ID), 2)

		batch, err := svc.GetCatchupEvents(ctx, channel, 0, 10)
		require.NoError(t, err)
		assert.Len(t, batch, 5)
	})
}

func TestEventService_ListByJob(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	jobs := NewJobService(client)
	svc := NewEventService(client)
	ctx := context.Background()

	job, err := jobs.CreateJob(ctx, models.JobParams{Target: "ACME"})
	require.NoError(t, err)
	seedEvents(ctx, t, client, job.ID, events.JobChannel(job.ID), 3)

	rows, err := svc.ListByJob(ctx, job.ID, 0, 0)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, float64(0), rows[0].Payload["seq"], "JSON numbers decode as float64")

	limited, err := svc.ListByJob(ctx, job.ID, rows[0].ID, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, rows[1].ID, limited[0].ID)
}
