package entities

import (
	"time"

	"github.com/google/uuid"
)

// RecordingStatus constants
const (
	RecordingStatusUploaded   = "uploaded"
	RecordingStatusProcessing = "processing"
	RecordingStatusAnalyzed   = "analyzed"
	RecordingStatusFailed     = "failed"
)

// Recording is an uploaded speech sample stored in object storage.
type Recording struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ObjectKey   string    `json:"object_key" gorm:"type:varchar(512);not null"`
	FileName    string    `json:"file_name,omitempty" gorm:"type:varchar(255)"`
	ContentType string    `json:"content_type,omitempty" gorm:"type:varchar(100)"`
	SizeBytes   int64     `json:"size_bytes,omitempty"`
	Language    string    `json:"language,omitempty" gorm:"type:varchar(20)"`
	Status      string    `json:"status" gorm:"type:varchar(20);default:'uploaded'"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Recording
func (Recording) TableName() string {
	return "recordings"
}

// NewRecording creates a new recording entity
func NewRecording(objectKey, fileName, contentType, language string, size int64) *Recording {
	return &Recording{
		ID:          uuid.New(),
		ObjectKey:   objectKey,
		FileName:    fileName,
		ContentType: contentType,
		SizeBytes:   size,
		Language:    language,
		Status:      RecordingStatusUploaded,
	}
}
