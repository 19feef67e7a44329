package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kina-health/kina/internal/domain/entities"
)

// TranscriptRepository handles transcript data operations
type TranscriptRepository struct {
	db *gorm.DB
}

// NewTranscriptRepository creates a new transcript repository
func NewTranscriptRepository(db *gorm.DB) *TranscriptRepository {
	return &TranscriptRepository{db: db}
}

// Create creates a new transcript
func (r *TranscriptRepository) Create(ctx context.Context, transcript *entities.Transcript) error {
	if transcript == nil {
		return errors.New("transcript cannot be nil")
	}
	return r.db.WithContext(ctx).Create(transcript).Error
}

// GetByID retrieves a transcript by ID
func (r *TranscriptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error) {
	var transcript entities.Transcript
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}

// GetByRecordingID retrieves the latest transcript for a recording
func (r *TranscriptRepository) GetByRecordingID(ctx context.Context, recordingID uuid.UUID) (*entities.Transcript, error) {
	var transcript entities.Transcript
	if err := r.db.WithContext(ctx).
		Where("recording_id = ?", recordingID).
		Order("created_at DESC").
		First(&transcript).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transcript, nil
}
