package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/dealdesk/pkg/database"
	"github.com/dealdesk/dealdesk/pkg/version"
)

// healthHandler handles GET /api/v1/health. Reports database reachability
// and worker pool state; 503 when either is unhealthy.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := gin.H{
		"status":  "healthy",
		"version": version.Full(),
	}
	httpStatus := http.StatusOK

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp["database"] = dbHealth
	if err != nil {
		resp["status"] = "unhealthy"
		resp["error"] = err.Error()
		httpStatus = http.StatusServiceUnavailable
	}

	if s.pool != nil {
		poolHealth := s.pool.Health()
		resp["pool"] = poolHealth
		if !poolHealth.IsHealthy {
			resp["status"] = "unhealthy"
			httpStatus = http.StatusServiceUnavailable
		}
	}

	if s.connManager != nil {
		resp["websocket_connections"] = s.connManager.ActiveConnections()
	}

	c.JSON(httpStatus, resp)
}
