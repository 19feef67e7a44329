package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kina-health/kina/internal/domain/entities"
)

// RecordingRepository handles recording data operations
type RecordingRepository struct {
	db *gorm.DB
}

// NewRecordingRepository creates a new recording repository
func NewRecordingRepository(db *gorm.DB) *RecordingRepository {
	return &RecordingRepository{db: db}
}

// Create creates a new recording
func (r *RecordingRepository) Create(ctx context.Context, recording *entities.Recording) error {
	if recording == nil {
		return errors.New("recording cannot be nil")
	}
	return r.db.WithContext(ctx).Create(recording).Error
}

// GetByID retrieves a recording by ID
func (r *RecordingRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Recording, error) {
	var recording entities.Recording
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recording).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &recording, nil
}

// UpdateStatus updates the status of a recording
func (r *RecordingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.Recording{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// List retrieves recordings, newest first
func (r *RecordingRepository) List(ctx context.Context, limit, offset int) ([]*entities.Recording, error) {
	var recordings []*entities.Recording
	if limit == 0 {
		limit = 20
	}
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recordings).Error; err != nil {
		return nil, err
	}
	return recordings, nil
}
