package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/kina-health/kina/internal/domain/entities"
	"github.com/kina-health/kina/internal/usecase/scoring"
)

// AnalyzeTextRequest is the synchronous text analysis request
type AnalyzeTextRequest struct {
	Text            string  `json:"text" validate:"required"`
	DurationSeconds float64 `json:"duration_seconds" validate:"gte=0"`
	Language        string  `json:"language,omitempty"`
}

// AnalysisResponse is the synchronous analysis response
type AnalysisResponse struct {
	AssessmentID uuid.UUID       `json:"assessment_id"`
	Cached       bool            `json:"cached"`
	Result       *scoring.Result `json:"result"`
}

// JobResponse describes an analysis job's progress
type JobResponse struct {
	ID           uuid.UUID  `json:"id"`
	Status       string     `json:"status"`
	RetryCount   int        `json:"retry_count"`
	LastError    *string    `json:"last_error,omitempty"`
	TranscriptID *uuid.UUID `json:"transcript_id,omitempty"`
	AssessmentID *uuid.UUID `json:"assessment_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
}

// RecordingResponse describes an uploaded recording and its pipeline state
type RecordingResponse struct {
	ID        uuid.UUID    `json:"id"`
	FileName  string       `json:"file_name,omitempty"`
	Language  string       `json:"language,omitempty"`
	SizeBytes int64        `json:"size_bytes,omitempty"`
	Status    string       `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	Job       *JobResponse `json:"job,omitempty"`
}

// AssessmentSummary is one row of the assessment listing
type AssessmentSummary struct {
	ID              uuid.UUID `json:"id"`
	Language        string    `json:"language,omitempty"`
	DurationSeconds float64   `json:"duration_seconds"`
	OverallScore    float64   `json:"overall_score"`
	RiskTier        string    `json:"risk_tier"`
	CognitiveAge    float64   `json:"cognitive_age"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewJobResponse maps an analysis job entity
func NewJobResponse(job *entities.AnalysisJob) *JobResponse {
	if job == nil {
		return nil
	}
	return &JobResponse{
		ID:           job.ID,
		Status:       string(job.Status),
		RetryCount:   job.RetryCount,
		LastError:    job.LastError,
		TranscriptID: job.TranscriptID,
		AssessmentID: job.AssessmentID,
		CreatedAt:    job.CreatedAt,
		CompletedAt:  job.CompletedAt,
	}
}

// NewRecordingResponse maps a recording entity with its latest job
func NewRecordingResponse(recording *entities.Recording, job *entities.AnalysisJob) *RecordingResponse {
	return &RecordingResponse{
		ID:        recording.ID,
		FileName:  recording.FileName,
		Language:  recording.Language,
		SizeBytes: recording.SizeBytes,
		Status:    recording.Status,
		CreatedAt: recording.CreatedAt,
		Job:       NewJobResponse(job),
	}
}

// NewAssessmentSummary maps an assessment entity to its listing row
func NewAssessmentSummary(a *entities.Assessment) AssessmentSummary {
	return AssessmentSummary{
		ID:              a.ID,
		Language:        a.Language,
		DurationSeconds: a.DurationSeconds,
		OverallScore:    a.OverallScore,
		RiskTier:        a.RiskTier,
		CognitiveAge:    a.CognitiveAge,
		CreatedAt:       a.CreatedAt,
	}
}
