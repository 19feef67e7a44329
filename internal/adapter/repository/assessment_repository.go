package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kina-health/kina/internal/domain/entities"
)

// AssessmentRepository handles assessment data operations
type AssessmentRepository struct {
	db *gorm.DB
}

// NewAssessmentRepository creates a new assessment repository
func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{db: db}
}

// Create creates a new assessment
func (r *AssessmentRepository) Create(ctx context.Context, assessment *entities.Assessment) error {
	if assessment == nil {
		return errors.New("assessment cannot be nil")
	}
	return r.db.WithContext(ctx).Create(assessment).Error
}

// GetByID retrieves an assessment by ID
func (r *AssessmentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Assessment, error) {
	var assessment entities.Assessment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assessment, nil
}

// GetByTranscriptID retrieves the latest assessment for a transcript
func (r *AssessmentRepository) GetByTranscriptID(ctx context.Context, transcriptID uuid.UUID) (*entities.Assessment, error) {
	var assessment entities.Assessment
	if err := r.db.WithContext(ctx).
		Where("transcript_id = ?", transcriptID).
		Order("created_at DESC").
		First(&assessment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assessment, nil
}

// List retrieves assessments, newest first
func (r *AssessmentRepository) List(ctx context.Context, limit, offset int) ([]*entities.Assessment, error) {
	var assessments []*entities.Assessment
	if limit == 0 {
		limit = 20
	}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&assessments).Error; err != nil {
		return nil, err
	}
	return assessments, nil
}
