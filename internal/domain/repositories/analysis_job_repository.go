package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kina-health/kina/internal/domain/entities"
)

// AnalysisJobRepository defines persistence operations for analysis jobs
type AnalysisJobRepository interface {
	Create(ctx context.Context, job *entities.AnalysisJob) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error)
	GetByExternalJobID(ctx context.Context, externalJobID string) (*entities.AnalysisJob, error)
	GetByRecordingID(ctx context.Context, recordingID uuid.UUID) (*entities.AnalysisJob, error)
	Update(ctx context.Context, job *entities.AnalysisJob) error
	GetJobsByStatus(ctx context.Context, status entities.AnalysisJobStatus, limit int) ([]*entities.AnalysisJob, error)
	GetStuckJobs(ctx context.Context, status entities.AnalysisJobStatus, olderThan time.Time, limit int) ([]*entities.AnalysisJob, error)

	// ClaimJob transitions a job from fromStatus to toStatus atomically.
	// Returns false when another worker already claimed it.
	ClaimJob(ctx context.Context, id uuid.UUID, fromStatus, toStatus entities.AnalysisJobStatus) (bool, error)

	MarkSubmitted(ctx context.Context, id uuid.UUID, externalJobID string) error
	MarkCompleted(ctx context.Context, id uuid.UUID, transcriptID, assessmentID *uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error
	IncrementRetry(ctx context.Context, id uuid.UUID, errMsg string) error
	Touch(ctx context.Context, id uuid.UUID) error
}
