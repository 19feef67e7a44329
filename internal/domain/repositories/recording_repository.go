package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/kina-health/kina/internal/domain/entities"
)

// RecordingRepository defines persistence operations for recordings
type RecordingRepository interface {
	Create(ctx context.Context, recording *entities.Recording) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Recording, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	List(ctx context.Context, limit, offset int) ([]*entities.Recording, error)
}
