package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kina-health/kina/internal/domain/entities"
)

// AnalysisJobRepository handles analysis job data operations
type AnalysisJobRepository struct {
	db *gorm.DB
}

// NewAnalysisJobRepository creates a new analysis job repository
func NewAnalysisJobRepository(db *gorm.DB) *AnalysisJobRepository {
	return &AnalysisJobRepository{db: db}
}

// Create creates a new analysis job
func (r *AnalysisJobRepository) Create(ctx context.Context, job *entities.AnalysisJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID retrieves an analysis job by ID
func (r *AnalysisJobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// GetByExternalJobID retrieves a job by AssemblyAI transcript ID
func (r *AnalysisJobRepository) GetByExternalJobID(ctx context.Context, externalJobID string) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).Where("external_job_id = ?", externalJobID).First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// GetByRecordingID retrieves the latest job for a recording
func (r *AnalysisJobRepository) GetByRecordingID(ctx context.Context, recordingID uuid.UUID) (*entities.AnalysisJob, error) {
	var job entities.AnalysisJob
	if err := r.db.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Order("created_at DESC").
		First(&job).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

// Update updates an analysis job
func (r *AnalysisJobRepository) Update(ctx context.Context, job *entities.AnalysisJob) error {
	if job == nil {
		return errors.New("job cannot be nil")
	}
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", job.ID).
		Save(job).Error
}

// GetJobsByStatus retrieves jobs with a specific status, oldest first
func (r *AnalysisJobRepository) GetJobsByStatus(ctx context.Context, status entities.AnalysisJobStatus, limit int) ([]*entities.AnalysisJob, error) {
	var jobs []*entities.AnalysisJob
	if limit == 0 {
		limit = 10
	}
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// GetStuckJobs retrieves jobs sitting in a status longer than olderThan
func (r *AnalysisJobRepository) GetStuckJobs(ctx context.Context, status entities.AnalysisJobStatus, olderThan time.Time, limit int) ([]*entities.AnalysisJob, error) {
	var jobs []*entities.AnalysisJob
	if limit == 0 {
		limit = 10
	}
	if err := r.db.WithContext(ctx).
		Where("status = ? AND updated_at < ?", status, olderThan).
		Order("updated_at ASC").
		Limit(limit).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ClaimJob transitions a job between statuses with a conditional update.
// The WHERE clause on the old status makes concurrent workers race
// safely: only one of them sees RowsAffected == 1.
func (r *AnalysisJobRepository) ClaimJob(ctx context.Context, id uuid.UUID, fromStatus, toStatus entities.AnalysisJobStatus) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(map[string]interface{}{
			"status":     toStatus,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// MarkSubmitted marks a job as submitted with its external transcript ID
func (r *AnalysisJobRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, externalJobID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":          entities.AnalysisJobStatusSubmitted,
			"external_job_id": externalJobID,
			"started_at":      now,
			"updated_at":      now,
		}).Error
}

// MarkCompleted marks a job as completed with its result references
func (r *AnalysisJobRepository) MarkCompleted(ctx context.Context, id uuid.UUID, transcriptID, assessmentID *uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        entities.AnalysisJobStatusCompleted,
			"transcript_id": transcriptID,
			"assessment_id": assessmentID,
			"completed_at":  now,
			"updated_at":    now,
		}).Error
}

// MarkFailed marks a job as failed with an error message
func (r *AnalysisJobRepository) MarkFailed(ctx context.Context, id uuid.UUID, errMsg string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     entities.AnalysisJobStatusFailed,
			"last_error": errMsg,
			"updated_at": now,
		}).Error
}

// IncrementRetry bumps the retry count and moves the job to retrying
func (r *AnalysisJobRepository) IncrementRetry(ctx context.Context, id uuid.UUID, errMsg string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"retry_count": gorm.Expr("retry_count + 1"),
			"status":      entities.AnalysisJobStatusRetrying,
			"last_error":  errMsg,
			"updated_at":  now,
		}).Error
}

// Touch resets the updated_at timestamp so the stuck-job reaper gives
// a still-processing job more time.
func (r *AnalysisJobRepository) Touch(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&entities.AnalysisJob{}).
		Where("id = ?", id).
		Update("updated_at", time.Now()).Error
}
