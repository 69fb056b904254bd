package api

import (
	"time"

	"github.com/dealdesk/dealdesk/ent"
)

// SubmitAnalysisResponse is the body of a 202 Accepted on submission.
type SubmitAnalysisResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// AnalysisResponse is the status view of a job.
type AnalysisResponse struct {
	JobID           string           `json:"job_id"`
	Target          string           `json:"target"`
	Acquirer        string           `json:"acquirer,omitempty"`
	DealValue       *float64         `json:"deal_value,omitempty"`
	Thesis          string           `json:"thesis,omitempty"`
	Status          string           `json:"status"`
	ProgressPercent int              `json:"progress_percent"`
	CurrentAgent    string           `json:"current_agent,omitempty"`
	ErrorMessage    string           `json:"error_message,omitempty"`
	FailedAgent     string           `json:"failed_agent,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	StartedAt       *time.Time       `json:"started_at,omitempty"`
	CompletedAt     *time.Time       `json:"completed_at,omitempty"`
	AgentRecords    []AgentRecordDTO `json:"agent_records,omitempty"`
}

// AgentRecordDTO is one agent's record in the status view.
type AgentRecordDTO struct {
	AgentName       string         `json:"agent_name"`
	Status          string         `json:"status"`
	StartedAt       time.Time      `json:"started_at"`
	CompletedAt     time.Time      `json:"completed_at"`
	DurationMs      int            `json:"duration_ms,omitempty"`
	Warnings        []string       `json:"warnings,omitempty"`
	Errors          []string       `json:"errors,omitempty"`
	Recommendations []string       `json:"recommendations,omitempty"`
	Payload         map[string]any `json:"payload,omitempty"`
}

// ListAnalysesResponse is the paginated list view.
type ListAnalysesResponse struct {
	Jobs  []AnalysisResponse `json:"jobs"`
	Total int                `json:"total"`
}

// ResultResponse is the body of GET /api/v1/analysis/:id/result.
type ResultResponse struct {
	JobID            string           `json:"job_id"`
	Target           string           `json:"target"`
	Status           string           `json:"status"`
	SynthesizedData  map[string]any   `json:"synthesized_data"`
	ValidationIssues []map[string]any `json:"validation_issues,omitempty"`
	ArtifactPaths    []string         `json:"artifact_paths,omitempty"`
	CompletedAt      *time.Time       `json:"completed_at,omitempty"`
}

func toAnalysisResponse(job *ent.AnalysisJob) AnalysisResponse {
	resp := AnalysisResponse{
		JobID:           job.ID,
		Target:          job.Target,
		DealValue:       job.DealValue,
		Status:          string(job.Status),
		ProgressPercent: job.ProgressPercent,
		CreatedAt:       job.CreatedAt,
		StartedAt:       job.StartedAt,
		CompletedAt:     job.CompletedAt,
	}
	if job.Acquirer != nil {
		resp.Acquirer = *job.Acquirer
	}
	if job.Thesis != nil {
		resp.Thesis = *job.Thesis
	}
	if job.CurrentAgent != nil {
		resp.CurrentAgent = *job.CurrentAgent
	}
	if job.ErrorMessage != nil {
		resp.ErrorMessage = *job.ErrorMessage
	}
	if job.FailedAgent != nil {
		resp.FailedAgent = *job.FailedAgent
	}
	return resp
}

func toRecordDTO(rec *ent.AgentRecord) AgentRecordDTO {
	dto := AgentRecordDTO{
		AgentName:       rec.AgentName,
		Status:          string(rec.Status),
		StartedAt:       rec.StartedAt,
		CompletedAt:     rec.CompletedAt,
		Warnings:        rec.Warnings,
		Errors:          rec.Errors,
		Recommendations: rec.Recommendations,
		Payload:         rec.Payload,
	}
	if rec.DurationMs != nil {
		dto.DurationMs = *rec.DurationMs
	}
	return dto
}
