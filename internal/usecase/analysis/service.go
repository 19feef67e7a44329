// Package analysis orchestrates the speech assessment pipeline: inline
// text scoring, recording submission through AssemblyAI, webhook
// handling, and the background workers that drive jobs to completion.
package analysis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/kina-health/kina/errors"
	"github.com/kina-health/kina/internal/domain/entities"
	"github.com/kina-health/kina/internal/domain/repositories"
	"github.com/kina-health/kina/internal/infrastructure/cache"
	"github.com/kina-health/kina/internal/infrastructure/storage"
	"github.com/kina-health/kina/internal/usecase/scoring"
	"github.com/kina-health/kina/pkg/ai"
	"github.com/kina-health/kina/pkg/config"
)

const engineVersion = "v1"

// AnalyzeTextRequest is a synchronous scoring request for an already
// transcribed speech sample.
type AnalyzeTextRequest struct {
	Text            string
	DurationSeconds float64
	Language        string
}

// SubmitRecordingRequest carries an uploaded audio file into the
// asynchronous pipeline.
type SubmitRecordingRequest struct {
	FileName    string
	ContentType string
	Size        int64
	Language    string
	Audio       io.Reader
}

// TextAnalysis is the outcome of a synchronous analysis
type TextAnalysis struct {
	AssessmentID uuid.UUID
	Result       *scoring.Result
	Cached       bool
}

// Service is the analysis use case surface
type Service interface {
	AnalyzeText(ctx context.Context, req AnalyzeTextRequest) (*TextAnalysis, error)
	SubmitRecording(ctx context.Context, req SubmitRecordingRequest) (*entities.Recording, *entities.AnalysisJob, error)
	GetRecordingStatus(ctx context.Context, recordingID uuid.UUID) (*entities.Recording, *entities.AnalysisJob, error)
	GetAssessment(ctx context.Context, id uuid.UUID) (*entities.Assessment, *scoring.Result, error)
	ListAssessments(ctx context.Context, limit, offset int) ([]*entities.Assessment, error)
	HandleAssemblyAIWebhook(ctx context.Context, payload []byte, signature string) error
	StartWorkerPool(ctx context.Context)
	StopWorkerPool()
}

type analysisService struct {
	cfg    *config.Config
	logger *zap.Logger

	engine    *scoring.Engine
	asmClient *ai.AssemblyAIClient
	storage   *storage.MinIOClient
	cache     cache.Store

	recordingRepo  repositories.RecordingRepository
	transcriptRepo repositories.TranscriptRepository
	assessmentRepo repositories.AssessmentRepository
	jobRepo        repositories.AnalysisJobRepository

	workers *workerPool
}

// NewService creates the analysis service
func NewService(
	cfg *config.Config,
	logger *zap.Logger,
	engine *scoring.Engine,
	asmClient *ai.AssemblyAIClient,
	storageClient *storage.MinIOClient,
	cacheStore cache.Store,
	recordingRepo repositories.RecordingRepository,
	transcriptRepo repositories.TranscriptRepository,
	assessmentRepo repositories.AssessmentRepository,
	jobRepo repositories.AnalysisJobRepository,
) Service {
	s := &analysisService{
		cfg:            cfg,
		logger:         logger,
		engine:         engine,
		asmClient:      asmClient,
		storage:        storageClient,
		cache:          cacheStore,
		recordingRepo:  recordingRepo,
		transcriptRepo: transcriptRepo,
		assessmentRepo: assessmentRepo,
		jobRepo:        jobRepo,
	}
	s.workers = newWorkerPool(s)
	return s
}

// cachedAnalysis is the cache payload for memoized text analyses
type cachedAnalysis struct {
	AssessmentID uuid.UUID       `json:"assessment_id"`
	Result       *scoring.Result `json:"result"`
}

// AnalyzeText scores a transcript synchronously. The engine is a pure
// function of its input, so results are memoized by content hash.
func (s *analysisService) AnalyzeText(ctx context.Context, req AnalyzeTextRequest) (*TextAnalysis, error) {
	key := analysisCacheKey(req)

	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, key); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Cache lookup failed, scoring fresh", zap.Error(err))
			}
		} else if ok {
			var cached cachedAnalysis
			if err := json.Unmarshal([]byte(raw), &cached); err == nil && cached.Result != nil {
				return &TextAnalysis{
					AssessmentID: cached.AssessmentID,
					Result:       cached.Result,
					Cached:       true,
				}, nil
			}
		}
	}

	result, err := s.engine.Analyze(ctx, scoring.Input{
		Text:            req.Text,
		DurationSeconds: req.DurationSeconds,
		Language:        req.Language,
	})
	if err != nil {
		return nil, err
	}

	// Persist the inline transcript and its assessment so reports can be
	// fetched later through the same endpoints as recording analyses.
	transcript := entities.NewTranscript(nil)
	transcript.Text = req.Text
	transcript.Language = req.Language
	transcript.DurationSeconds = req.DurationSeconds
	transcript.Polarity = result.Polarity
	transcript.WordCount = result.TotalWords
	transcript.ModelUsed = "inline"
	if err := s.transcriptRepo.Create(ctx, transcript); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create transcript", err)
	}

	assessment, err := buildAssessment(&transcript.ID, result)
	if err != nil {
		return nil, apperrors.ErrAnalysisFailed(err)
	}
	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return nil, apperrors.ErrDBQueryFailed("create assessment", err)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(cachedAnalysis{AssessmentID: assessment.ID, Result: result}); err == nil {
			if err := s.cache.Set(ctx, key, string(raw), s.cfg.Redis.CacheTTL); err != nil && s.logger != nil {
				s.logger.Warn("⚠️ Failed to cache analysis", zap.Error(err))
			}
		}
	}

	if s.logger != nil {
		s.logger.Info("✅ Text analysis completed",
			zap.String("assessment_id", assessment.ID.String()),
			zap.Float64("overall", result.Overall),
			zap.String("risk_tier", string(result.RiskTier)),
		)
	}

	return &TextAnalysis{AssessmentID: assessment.ID, Result: result}, nil
}

// GetRecordingStatus returns a recording together with its latest job
func (s *analysisService) GetRecordingStatus(ctx context.Context, recordingID uuid.UUID) (*entities.Recording, *entities.AnalysisJob, error) {
	recording, err := s.recordingRepo.GetByID(ctx, recordingID)
	if err != nil {
		return nil, nil, apperrors.ErrDBQueryFailed("get recording", err)
	}
	if recording == nil {
		return nil, nil, apperrors.ErrRecordingNotFound(recordingID.String())
	}

	job, err := s.jobRepo.GetByRecordingID(ctx, recordingID)
	if err != nil {
		return nil, nil, apperrors.ErrDBQueryFailed("get analysis job", err)
	}
	return recording, job, nil
}

// GetAssessment returns a stored assessment with its decoded result
func (s *analysisService) GetAssessment(ctx context.Context, id uuid.UUID) (*entities.Assessment, *scoring.Result, error) {
	assessment, err := s.assessmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, apperrors.ErrDBQueryFailed("get assessment", err)
	}
	if assessment == nil {
		return nil, nil, apperrors.ErrNotFound("Assessment")
	}

	var result scoring.Result
	if err := json.Unmarshal(assessment.Result, &result); err != nil {
		return nil, nil, apperrors.ErrInternal(fmt.Errorf("corrupt assessment result: %w", err))
	}
	return assessment, &result, nil
}

// ListAssessments returns stored assessments, newest first
func (s *analysisService) ListAssessments(ctx context.Context, limit, offset int) ([]*entities.Assessment, error) {
	limit, offset = clampListParams(limit, offset)
	assessments, err := s.assessmentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.ErrDBQueryFailed("list assessments", err)
	}
	return assessments, nil
}

// analysisCacheKey derives the memoization key for a text analysis
func analysisCacheKey(req AnalyzeTextRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%.6f|%s", req.Text, req.DurationSeconds, req.Language)
	return "analysis:" + hex.EncodeToString(h.Sum(nil))
}

// buildAssessment maps an engine result onto the persistence entity
func buildAssessment(transcriptID *uuid.UUID, result *scoring.Result) (*entities.Assessment, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}

	a := entities.NewAssessment(transcriptID)
	a.Language = result.Language
	a.DurationSeconds = result.DurationSeconds
	a.OverallScore = result.Overall
	a.RiskTier = string(result.RiskTier)
	a.CognitiveAge = result.CognitiveAge
	a.LexicalScore = result.Lexical.Score
	a.FluencyScore = result.Fluency.Score
	a.ComplexityScore = result.Complexity.Score
	a.EmotionalScore = result.Emotional.Score
	a.Result = datatypes.JSON(raw)
	a.Recommendations = datatypes.NewJSONSlice(result.Recommendations)
	a.Warnings = datatypes.NewJSONSlice(result.Warnings)
	a.EngineVersion = engineVersion
	return a, nil
}

// StartWorkerPool starts the background workers
func (s *analysisService) StartWorkerPool(ctx context.Context) {
	s.workers.start(ctx)
}

// StopWorkerPool stops the background workers and waits for them
func (s *analysisService) StopWorkerPool() {
	s.workers.stop()
}

// clampListParams bounds pagination inputs
func clampListParams(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
