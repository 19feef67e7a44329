package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Assessment is one stored cognitive-health analysis: the four
// component scores, the weighted overall score, the risk tier, the
// estimated cognitive age, and the advisory messages. The full engine
// output is kept verbatim in Result; the hot columns are extracted for
// querying.
type Assessment struct {
	ID              uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	TranscriptID    *uuid.UUID `json:"transcript_id,omitempty" gorm:"type:uuid;index"`
	Language        string     `json:"language,omitempty" gorm:"type:varchar(20)"`
	DurationSeconds float64    `json:"duration_seconds"`

	OverallScore    float64 `json:"overall_score" gorm:"not null"`
	RiskTier        string  `json:"risk_tier" gorm:"type:varchar(20);not null;index"`
	CognitiveAge    float64 `json:"cognitive_age"`
	LexicalScore    float64 `json:"lexical_score"`
	FluencyScore    float64 `json:"fluency_score"`
	ComplexityScore float64 `json:"complexity_score"`
	EmotionalScore  float64 `json:"emotional_score"`

	Result          datatypes.JSON              `json:"result" gorm:"type:jsonb"`
	Recommendations datatypes.JSONSlice[string] `json:"recommendations" gorm:"type:jsonb"`
	Warnings        datatypes.JSONSlice[string] `json:"warnings,omitempty" gorm:"type:jsonb"`

	EngineVersion string    `json:"engine_version,omitempty" gorm:"type:varchar(50)"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for Assessment
func (Assessment) TableName() string {
	return "assessments"
}

// NewAssessment creates a new assessment entity
func NewAssessment(transcriptID *uuid.UUID) *Assessment {
	return &Assessment{
		ID:           uuid.New(),
		TranscriptID: transcriptID,
	}
}
