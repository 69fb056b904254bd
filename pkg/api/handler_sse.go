package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/dealdesk/pkg/events"
	"github.com/dealdesk/dealdesk/pkg/models"
)

// ssePollInterval is how often the SSE handler polls the persisted event
// log. SSE trades the NOTIFY fan-out's latency for a dependency-free
// consumer; anything latency-sensitive should use the WebSocket endpoint.
const ssePollInterval = time.Second

// sseHandler handles GET /api/v1/analysis/:id/events/stream. It replays
// the persisted event log as Server-Sent Events, resuming from
// Last-Event-ID, and closes after the job reaches a terminal status.
func (s *Server) sseHandler(c *gin.Context) {
	jobID := c.Param("id")

	job, err := s.jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "streaming not supported"})
		return
	}

	h := c.Writer.Header()
	h.Set("Content-Type", "text/event-stream")
	h.Set("Cache-Control", "no-cache")
	h.Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)

	lastID := 0
	if v := c.GetHeader("Last-Event-ID"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			lastID = n
		}
	}

	// Snapshot first so late subscribers see the current state without
	// waiting for the next lifecycle transition.
	snapshot, _ := json.Marshal(gin.H{
		"type":             "snapshot",
		"job_id":           job.ID,
		"status":           string(job.Status),
		"progress_percent": job.ProgressPercent,
	})
	fmt.Fprintf(c.Writer, "event: snapshot\ndata: %s\n\n", snapshot)
	flusher.Flush()

	channel := events.JobChannel(jobID)
	ctx := c.Request.Context()
	ticker := time.NewTicker(ssePollInterval)
	defer ticker.Stop()

	for {
		batch, err := s.eventLog.GetCatchupEvents(ctx, channel, lastID, 200)
		if err != nil {
			fmt.Fprintf(c.Writer, "event: error\ndata: {\"error\":\"event log unavailable\"}\n\n")
			flusher.Flush()
			return
		}

		terminal := false
		for _, ev := range batch {
			data, err := json.Marshal(ev.Payload)
			if err != nil {
				continue
			}
			fmt.Fprintf(c.Writer, "id: %d\ndata: %s\n\n", ev.ID, data)
			lastID = ev.ID
			if isTerminalEvent(ev.Payload) {
				terminal = true
			}
		}
		if len(batch) > 0 {
			flusher.Flush()
		}
		if terminal {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// isTerminalEvent reports whether a persisted event marks the end of the
// job's stream: a completion, a job-level error, or a terminal status.
func isTerminalEvent(payload map[string]any) bool {
	switch payload["type"] {
	case events.EventTypeJobComplete, events.EventTypeJobError:
		return true
	case events.EventTypeJobStatus:
		status, _ := payload["status"].(string)
		return models.JobStatus(status).Terminal()
	default:
		return false
	}
}
