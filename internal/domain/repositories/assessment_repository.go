package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/kina-health/kina/internal/domain/entities"
)

// AssessmentRepository defines persistence operations for assessments
type AssessmentRepository interface {
	Create(ctx context.Context, assessment *entities.Assessment) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Assessment, error)
	GetByTranscriptID(ctx context.Context, transcriptID uuid.UUID) (*entities.Assessment, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Assessment, error)
}
