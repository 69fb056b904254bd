package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dealdesk/dealdesk/ent"
	"github.com/dealdesk/dealdesk/ent/event"
	"github.com/dealdesk/dealdesk/pkg/database"
	"github.com/dealdesk/dealdesk/pkg/models"
	testdb "github.com/dealdesk/dealdesk/test/database"
)

// entCatchupQuerier reads the persisted event log directly. The production
// catchup querier lives in pkg/services; that package depends on this one,
// so the integration test carries its own copy of the query.
type entCatchupQuerier struct {
	client *ent.Client
}

func (q *entCatchupQuerier) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := q.client.Event.Query().
		Where(event.ChannelEQ(channel), event.IDGT(sinceID)).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CatchupEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, CatchupEvent{ID: row.ID, Payload: row.Payload})
	}
	return out, nil
}

// eventsFixture wires the full delivery path against a real database:
// Publisher -> events table + pg_notify -> NotifyListener -> ConnectionManager
// -> WebSocket clients served by an httptest server.
type eventsFixture struct {
	db        *database.Client
	manager   *ConnectionManager
	publisher *Publisher
	server    *httptest.Server
}

func newEventsFixture(t *testing.T) *eventsFixture {
	t.Helper()
	ctx := context.Background()

	shared := testdb.NewSharedTestDB(t)
	db := shared.NewClient(t)

	manager := NewConnectionManager(&entCatchupQuerier{client: db.Client}, 5*time.Second)

	// LISTEN/NOTIFY is database-global, so the listener's dedicated
	// connection does not need the test schema's search_path.
	listener := NewNotifyListener(shared.BaseConnStr(), manager)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(context.Background()) })
	manager.SetListener(listener)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(server.Close)

	return &eventsFixture{
		db:        db,
		manager:   manager,
		publisher: NewPublisher(db.DB()),
		server:    server,
	}
}

func (f *eventsFixture) createJob(t *testing.T) string {
	t.Helper()
	jobID := uuid.New().String()
	_, err := f.db.AnalysisJob.Create().
		SetID(jobID).
		SetTarget("ACME").
		Save(context.Background())
	require.NoError(t, err)
	return jobID
}

// wsClient is a test WebSocket subscriber.
type wsClient struct {
	conn *websocket.Conn
	ctx  context.Context
}

func (f *eventsFixture) dial(t *testing.T) *wsClient {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	t.Cleanup(cancel)

	url := "ws" + strings.TrimPrefix(f.server.URL, "http")
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	c := &wsClient{conn: conn, ctx: ctx}
	established := c.read(t)
	require.Equal(t, "connection.established", established["type"])
	return c
}

func (c *wsClient) send(t *testing.T, msg ClientMessage) {
	t.Helper()
	data, err := json.Marshal(msg)
	require.NoError(t, err)
	require.NoError(t, c.conn.Write(c.ctx, websocket.MessageText, data))
}

func (c *wsClient) read(t *testing.T) map[string]any {
	t.Helper()
	_, data, err := c.conn.Read(c.ctx)
	require.NoError(t, err)
	var msg map[string]any
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

// readUntil skips messages until one of the wanted type arrives.
func (c *wsClient) readUntil(t *testing.T, eventType string) map[string]any {
	t.Helper()
	for {
		msg := c.read(t)
		if msg["type"] == eventType {
			return msg
		}
	}
}

func (c *wsClient) subscribe(t *testing.T, channel string) {
	t.Helper()
	c.send(t, ClientMessage{Action: "subscribe", Channel: channel})
	confirmed := c.readUntil(t, "subscription.confirmed")
	require.Equal(t, channel, confirmed["channel"])
}

func TestEventDelivery_LiveSubscriber(t *testing.T) {
	f := newEventsFixture(t)
	ctx := context.Background()
	jobID := f.createJob(t)

	client := f.dial(t)
	client.subscribe(t, JobChannel(jobID))

	require.NoError(t, f.publisher.PublishJobStatus(ctx, JobStatusPayload{
		JobID:  jobID,
		Status: models.JobStatusRunning,
	}))

	msg := client.readUntil(t, EventTypeJobStatus)
	assert.Equal(t, jobID, msg["job_id"])
	assert.Equal(t, "running", msg["status"])
	assert.NotEmpty(t, msg["timestamp"])

	// The NOTIFY copy carries the persisted row's ID for resume.
	dbEventID, ok := msg["db_event_id"].(float64)
	require.True(t, ok, "db_event_id missing from live event")
	assert.Greater(t, dbEventID, float64(0))
}

func TestEventDelivery_CatchupOnSubscribe(t *testing.T) {
	f := newEventsFixture(t)
	ctx := context.Background()
	jobID := f.createJob(t)

	// Events published before anyone subscribes. The progress tick is
	// NOTIFY-only and must not appear in the replay.
	require.NoError(t, f.publisher.PublishJobStatus(ctx, JobStatusPayload{
		JobID:  jobID,
		Status: models.JobStatusRunning,
	}))
	require.NoError(t, f.publisher.PublishJobProgress(ctx, JobProgressPayload{
		JobID:   jobID,
		Percent: 25,
	}))
	require.NoError(t, f.publisher.PublishAgentStatus(ctx, AgentStatusPayload{
		JobID: jobID,
		Agent: "financial-analyst",
		Phase: AgentPhaseOK,
	}))

	client := f.dial(t)
	client.subscribe(t, JobChannel(jobID))

	first := client.readUntil(t, EventTypeJobStatus)
	assert.Equal(t, "running", first["status"])
	assert.NotZero(t, first["db_event_id"])

	second := client.readUntil(t, EventTypeAgentStatus)
	assert.Equal(t, "financial-analyst", second["agent"])

	// Resume from the middle of the log replays only the tail.
	resumeFrom := int(first["db_event_id"].(float64))
	client.send(t, ClientMessage{
		Action:      "catchup",
		Channel:     JobChannel(jobID),
		LastEventID: &resumeFrom,
	})
	tail := client.readUntil(t, EventTypeAgentStatus)
	assert.Equal(t, "financial-analyst", tail["agent"])
}

func TestEventDelivery_ChannelIsolation(t *testing.T) {
	f := newEventsFixture(t)
	ctx := context.Background()
	jobA := f.createJob(t)
	jobB := f.createJob(t)

	client := f.dial(t)
	client.subscribe(t, JobChannel(jobA))

	require.NoError(t, f.publisher.PublishJobStatus(ctx, JobStatusPayload{
		JobID:  jobB,
		Status: models.JobStatusRunning,
	}))
	require.NoError(t, f.publisher.PublishJobStatus(ctx, JobStatusPayload{
		JobID:  jobA,
		Status: models.JobStatusCompleted,
	}))

	// Only jobA's event arrives; jobB's was published first and would have
	// been delivered first if the channels leaked.
	msg := client.readUntil(t, EventTypeJobStatus)
	assert.Equal(t, jobA, msg["job_id"])
	assert.Equal(t, "completed", msg["status"])
}

func TestEventDelivery_UnsubscribeStopsDelivery(t *testing.T) {
	f := newEventsFixture(t)
	ctx := context.Background()
	jobID := f.createJob(t)

	client := f.dial(t)
	client.subscribe(t, JobChannel(jobID))
	client.send(t, ClientMessage{Action: "unsubscribe", Channel: JobChannel(jobID)})

	// Poll the manager rather than sleeping; unsubscribe is processed by
	// the connection's read loop.
	require.Eventually(t, func() bool {
		return f.manager.subscriberCount(JobChannel(jobID)) == 0
	}, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, f.publisher.PublishJobStatus(ctx, JobStatusPayload{
		JobID:  jobID,
		Status: models.JobStatusRunning,
	}))

	// Ping/pong round-trip proves the job.status event was not queued ahead
	// of it for this connection.
	client.send(t, ClientMessage{Action: "ping"})
	msg := client.readUntil(t, "pong")
	assert.Equal(t, "pong", msg["type"])
}
