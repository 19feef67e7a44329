package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/kina-health/kina/internal/domain/entities"
)

// TranscriptRepository defines persistence operations for transcripts
type TranscriptRepository interface {
	Create(ctx context.Context, transcript *entities.Transcript) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Transcript, error)
	GetByRecordingID(ctx context.Context, recordingID uuid.UUID) (*entities.Transcript, error)
}
