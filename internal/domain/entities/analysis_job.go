package entities

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisJobStatus represents the status of an analysis pipeline job
type AnalysisJobStatus string

const (
	AnalysisJobStatusPending   AnalysisJobStatus = "pending"   // Waiting to be submitted for transcription
	AnalysisJobStatusSubmitted AnalysisJobStatus = "submitted" // Submitted to AssemblyAI, waiting for the webhook
	AnalysisJobStatusScoring   AnalysisJobStatus = "scoring"   // Transcript received, engine running
	AnalysisJobStatusCompleted AnalysisJobStatus = "completed" // Assessment stored
	AnalysisJobStatusFailed    AnalysisJobStatus = "failed"    // Pipeline failed
	AnalysisJobStatusRetrying  AnalysisJobStatus = "retrying"  // Retrying after a failed submission
)

// AnalysisJobMetadata stores additional metadata for analysis jobs
type AnalysisJobMetadata struct {
	Language        string  `json:"language,omitempty"`
	DurationSeconds float64 `json:"duration_seconds,omitempty"`
	AudioURL        string  `json:"audio_url,omitempty"`
}

// AnalysisJob tracks one recording through the transcription-and-scoring
// pipeline.
type AnalysisJob struct {
	ID            uuid.UUID         `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RecordingID   uuid.UUID         `json:"recording_id" gorm:"type:uuid;not null;index"`
	Status        AnalysisJobStatus `json:"status" gorm:"type:varchar(50);not null;index;default:'pending'"`
	ExternalJobID *string           `json:"external_job_id,omitempty" gorm:"type:varchar(255);index"` // AssemblyAI transcript ID (nullable)
	TranscriptID  *uuid.UUID        `json:"transcript_id,omitempty" gorm:"type:uuid;index"`
	AssessmentID  *uuid.UUID        `json:"assessment_id,omitempty" gorm:"type:uuid;index"`

	StartedAt   *time.Time `json:"started_at,omitempty" gorm:"type:timestamp"`
	CompletedAt *time.Time `json:"completed_at,omitempty" gorm:"type:timestamp"`
	RetryCount  int        `json:"retry_count" gorm:"type:integer;default:0"`
	MaxRetries  int        `json:"max_retries" gorm:"type:integer;default:3"`
	LastError   *string    `json:"last_error,omitempty" gorm:"type:text"`

	Metadata AnalysisJobMetadata `json:"metadata,omitempty" gorm:"type:jsonb;serializer:json"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for AnalysisJob
func (AnalysisJob) TableName() string {
	return "analysis_jobs"
}

// NewAnalysisJob creates a pending job for a recording
func NewAnalysisJob(recordingID uuid.UUID, language string) *AnalysisJob {
	return &AnalysisJob{
		ID:          uuid.New(),
		RecordingID: recordingID,
		Status:      AnalysisJobStatusPending,
		MaxRetries:  3,
		Metadata:    AnalysisJobMetadata{Language: language},
	}
}

// CanRetry reports whether the job has retry budget left
func (j *AnalysisJob) CanRetry() bool {
	return j.RetryCount < j.MaxRetries
}
