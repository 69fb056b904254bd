package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/dealdesk/dealdesk/pkg/events"
	"github.com/dealdesk/dealdesk/pkg/models"
	"github.com/dealdesk/dealdesk/pkg/services"
)

// submitAnalysisHandler handles POST /api/v1/analysis.
func (s *Server) submitAnalysisHandler(c *gin.Context) {
	var req SubmitAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	job, err := s.jobs.CreateJob(c.Request.Context(), models.JobParams{
		Target:    req.Target,
		Acquirer:  req.Acquirer,
		DealValue: req.DealValue,
		Thesis:    req.Thesis,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// Announce the queued job so dashboards see it before a worker claims
	// it. Failures here are non-fatal: the job is already persisted.
	if err := s.publisher.PublishJobStatus(c.Request.Context(), events.JobStatusPayload{
		JobID:  job.ID,
		Status: models.JobStatusQueued,
	}); err != nil {
		slog.Warn("Failed to publish queued status", "job_id", job.ID, "error", err)
	}
	if err := s.publisher.PublishJobProgress(c.Request.Context(), events.JobProgressPayload{
		JobID:   job.ID,
		Percent: 0,
	}); err != nil {
		slog.Warn("Failed to publish initial progress", "job_id", job.ID, "error", err)
	}

	c.JSON(http.StatusAccepted, SubmitAnalysisResponse{
		JobID:  job.ID,
		Status: string(job.Status),
	})
}

// getAnalysisHandler handles GET /api/v1/analysis/:id.
func (s *Server) getAnalysisHandler(c *gin.Context) {
	jobID := c.Param("id")

	job, err := s.jobs.GetJob(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := toAnalysisResponse(job)
	records, err := s.records.ListByJob(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	for _, rec := range records {
		resp.AgentRecords = append(resp.AgentRecords, toRecordDTO(rec))
	}

	c.JSON(http.StatusOK, resp)
}

// listAnalysesHandler handles GET /api/v1/analysis.
func (s *Server) listAnalysesHandler(c *gin.Context) {
	filters := services.JobFilters{
		Status: c.Query("status"),
		Target: c.Query("target"),
	}
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filters.Limit = n
		}
	}
	if v := c.Query("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			filters.Offset = n
		}
	}

	jobs, total, err := s.jobs.ListJobs(c.Request.Context(), filters)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := ListAnalysesResponse{
		Jobs:  make([]AnalysisResponse, 0, len(jobs)),
		Total: total,
	}
	for _, job := range jobs {
		resp.Jobs = append(resp.Jobs, toAnalysisResponse(job))
	}

	c.JSON(http.StatusOK, resp)
}

// getResultHandler handles GET /api/v1/analysis/:id/result. Results exist
// only for completed jobs; anything else is a conflict.
func (s *Server) getResultHandler(c *gin.Context) {
	job, err := s.jobs.Result(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResultResponse{
		JobID:            job.ID,
		Target:           job.Target,
		Status:           string(job.Status),
		SynthesizedData:  job.SynthesizedData,
		ValidationIssues: job.ValidationIssues,
		ArtifactPaths:    job.ArtifactPaths,
		CompletedAt:      job.CompletedAt,
	})
}

// cancelAnalysisHandler handles POST /api/v1/analysis/:id/cancel.
//
// Queued jobs cancel immediately. Running jobs get their context cancelled
// through the worker pool; the pipeline observes it at the next agent
// boundary, so the response is 202 rather than 200.
func (s *Server) cancelAnalysisHandler(c *gin.Context) {
	jobID := c.Param("id")

	cancelled, err := s.jobs.CancelQueued(c.Request.Context(), jobID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if cancelled {
		c.JSON(http.StatusOK, gin.H{"job_id": jobID, "status": string(models.JobStatusCancelled)})
		return
	}

	if s.pool == nil || !s.pool.CancelJob(jobID) {
		// Claimed by another replica; only the owning pod can cancel it.
		c.JSON(http.StatusConflict, gin.H{"error": "analysis is not running on this replica"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"job_id": jobID, "status": "cancelling"})
}
