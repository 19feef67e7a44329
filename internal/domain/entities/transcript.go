package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Transcript is the stored speech-to-text output for one recording.
type Transcript struct {
	ID              uuid.UUID                                  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	RecordingID     *uuid.UUID                                 `json:"recording_id,omitempty" gorm:"type:uuid;index"`
	Text            string                                     `json:"text" gorm:"type:text"`
	Language        string                                     `json:"language,omitempty" gorm:"type:varchar(20)"`
	DurationSeconds float64                                    `json:"duration_seconds"`
	ConfidenceScore float64                                    `json:"confidence_score,omitempty"`
	Polarity        float64                                    `json:"polarity"`
	WordCount       int                                        `json:"word_count,omitempty"`
	ModelUsed       string                                     `json:"model_used,omitempty" gorm:"type:varchar(100)"`
	RawData         datatypes.JSONType[map[string]interface{}] `json:"raw_data,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt       time.Time                                  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time                                  `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Transcript) TableName() string {
	return "transcripts"
}

// NewTranscript creates a new transcript for a recording
func NewTranscript(recordingID *uuid.UUID) *Transcript {
	return &Transcript{
		ID:          uuid.New(),
		RecordingID: recordingID,
	}
}
