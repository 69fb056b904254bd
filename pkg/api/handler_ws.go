package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler handles GET /api/v1/analysis/:id/events. It upgrades the
// connection and hands it to the ConnectionManager; the client then
// subscribes to "job:{id}" (and optionally the global jobs channel) via
// the subscription protocol, with catchup from the persisted event log.
func (s *Server) wsHandler(c *gin.Context) {
	if s.connManager == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event streaming not available"})
		return
	}

	// The job must exist before we hold a socket open for it.
	if _, err := s.jobs.GetJob(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// TODO: replace with an OriginPatterns allowlist from server config.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return
	}

	// Blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request.Context(), conn)
}
