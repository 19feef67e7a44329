package analysis

import (
	"context"
	"crypto/hmac"
	"encoding/json"
	"fmt"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	apperrors "github.com/kina-health/kina/errors"
	"github.com/kina-health/kina/internal/domain/entities"
	"github.com/kina-health/kina/internal/usecase/scoring"
	"github.com/kina-health/kina/pkg/ai"
)

// webhookAuthHeader is the header AssemblyAI echoes back on callbacks
const webhookAuthHeader = "X-Kina-Webhook-Secret"

// SubmitRecording stores the audio in object storage and enqueues an
// analysis job. The background workers pick the job up from there.
func (s *analysisService) SubmitRecording(ctx context.Context, req SubmitRecordingRequest) (*entities.Recording, *entities.AnalysisJob, error) {
	if req.Audio == nil {
		return nil, nil, apperrors.ErrMissingAudioFile()
	}

	recording := entities.NewRecording("", req.FileName, req.ContentType, req.Language, req.Size)
	recording.ObjectKey = fmt.Sprintf("recordings/%s/%s", recording.ID.String(), req.FileName)

	if err := s.storage.UploadFile(ctx, recording.ObjectKey, req.Audio, req.Size, req.ContentType); err != nil {
		return nil, nil, apperrors.ErrRecordingUploadFailed(err)
	}

	if err := s.recordingRepo.Create(ctx, recording); err != nil {
		return nil, nil, apperrors.ErrDBQueryFailed("create recording", err)
	}

	job := entities.NewAnalysisJob(recording.ID, req.Language)
	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, nil, apperrors.ErrDBQueryFailed("create analysis job", err)
	}

	if s.logger != nil {
		s.logger.Info("📥 Recording submitted",
			zap.String("recording_id", recording.ID.String()),
			zap.String("job_id", job.ID.String()),
			zap.String("file_name", req.FileName),
			zap.Int64("size_bytes", req.Size),
		)
	}

	return recording, job, nil
}

// submitJob uploads a claimed job's audio to AssemblyAI and requests a
// transcription with sentiment analysis. The job must already be in the
// submitted status; its external ID is written as soon as AssemblyAI
// answers, before the webhook can race us.
func (s *analysisService) submitJob(ctx context.Context, job *entities.AnalysisJob) error {
	recording, err := s.recordingRepo.GetByID(ctx, job.RecordingID)
	if err != nil {
		return fmt.Errorf("failed to load recording: %w", err)
	}
	if recording == nil {
		s.jobRepo.MarkFailed(ctx, job.ID, "recording not found")
		return fmt.Errorf("recording %s not found", job.RecordingID)
	}

	if err := s.recordingRepo.UpdateStatus(ctx, recording.ID, entities.RecordingStatusProcessing); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to update recording status", zap.Error(err))
	}

	submitFn := func() error {
		audio, err := s.storage.GetFile(ctx, recording.ObjectKey)
		if err != nil {
			return fmt.Errorf("failed to open recording: %w", err)
		}
		defer audio.Close()

		uploadURL, err := s.asmClient.Upload(ctx, audio)
		if err != nil {
			return fmt.Errorf("failed to upload to AssemblyAI: %w", err)
		}

		opts := ai.SubmitOptions{
			LanguageCode: job.Metadata.Language,
			WebhookURL:   s.cfg.Server.PublicBaseURL + "/v1/webhooks/assemblyai",
		}
		if s.cfg.Assembly.WebhookSecret != "" {
			opts.WebhookAuthHeaderName = webhookAuthHeader
			opts.WebhookAuthHeaderValue = s.cfg.Assembly.WebhookSecret
		}

		transcriptID, err := s.asmClient.Submit(ctx, uploadURL, opts)
		if err != nil {
			return err
		}

		// Write external_job_id immediately: the webhook can arrive
		// within seconds and looks the job up by this ID.
		if err := s.jobRepo.MarkSubmitted(ctx, job.ID, transcriptID); err != nil {
			return fmt.Errorf("failed to record external job ID: %w", err)
		}

		if s.logger != nil {
			s.logger.Info("🎙️ Transcription job submitted",
				zap.String("job_id", job.ID.String()),
				zap.String("transcript_id", transcriptID),
			)
		}
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 2 * time.Second
	bo.MaxInterval = 10 * time.Second
	bo.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(submitFn, backoff.WithContext(bo, ctx)); err != nil {
		s.failJob(ctx, job, fmt.Sprintf("failed to submit to AssemblyAI: %v", err))
		return err
	}

	return nil
}

// failJob either schedules a retry or marks the job permanently failed
func (s *analysisService) failJob(ctx context.Context, job *entities.AnalysisJob, reason string) {
	if job.CanRetry() {
		if err := s.jobRepo.IncrementRetry(ctx, job.ID, reason); err != nil && s.logger != nil {
			s.logger.Error("❌ Failed to schedule retry", zap.Error(err))
		}
		if s.logger != nil {
			s.logger.Warn("🔁 Job scheduled for retry",
				zap.String("job_id", job.ID.String()),
				zap.Int("retry_count", job.RetryCount+1),
				zap.String("reason", reason),
			)
		}
		return
	}

	if err := s.jobRepo.MarkFailed(ctx, job.ID, reason); err != nil && s.logger != nil {
		s.logger.Error("❌ Failed to mark job as failed", zap.Error(err))
	}
	if err := s.recordingRepo.UpdateStatus(ctx, job.RecordingID, entities.RecordingStatusFailed); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to update recording status", zap.Error(err))
	}
	if s.logger != nil {
		s.logger.Error("💀 Job permanently failed",
			zap.String("job_id", job.ID.String()),
			zap.String("reason", reason),
		)
	}
}

// HandleAssemblyAIWebhook processes AssemblyAI completion callbacks
func (s *analysisService) HandleAssemblyAIWebhook(ctx context.Context, payload []byte, signature string) error {
	if !s.verifyWebhook(payload, signature) {
		if s.logger != nil {
			s.logger.Warn("🚫 Rejected webhook with invalid signature")
		}
		return apperrors.ErrWebhookSignatureInvalid()
	}

	var body struct {
		TranscriptID string `json:"transcript_id"`
		ID           string `json:"id"`
		Status       string `json:"status"`
		Error        string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err != nil {
		return apperrors.ErrInvalidPayload()
	}

	transcriptID := body.TranscriptID
	if transcriptID == "" {
		transcriptID = body.ID
	}
	if transcriptID == "" {
		return apperrors.ErrInvalidArgument("transcript ID missing in webhook")
	}

	job, err := s.jobRepo.GetByExternalJobID(ctx, transcriptID)
	if err != nil {
		return apperrors.ErrDBQueryFailed("get job by external ID", err)
	}
	if job == nil {
		return apperrors.ErrNotFound("Analysis job")
	}

	if s.logger != nil {
		s.logger.Info("📥 Received AssemblyAI webhook",
			zap.String("transcript_id", transcriptID),
			zap.String("status", body.Status),
			zap.String("job_id", job.ID.String()),
		)
	}

	switch body.Status {
	case "completed":
		// Claim before processing: the stuck-job reaper may be polling
		// the same transcript concurrently.
		claimed, err := s.jobRepo.ClaimJob(ctx, job.ID, entities.AnalysisJobStatusSubmitted, entities.AnalysisJobStatusScoring)
		if err != nil {
			return apperrors.ErrDBQueryFailed("claim job", err)
		}
		if !claimed {
			if s.logger != nil {
				s.logger.Info("⏭️ Job already being processed", zap.String("job_id", job.ID.String()))
			}
			return nil
		}
		if err := s.handleCompletedTranscript(ctx, job, transcriptID); err != nil {
			s.failJob(ctx, job, fmt.Sprintf("failed to process transcript: %v", err))
			return apperrors.ErrProcessingFailed(err)
		}

	case "error":
		reason := "AssemblyAI transcription failed"
		if body.Error != "" {
			reason = fmt.Sprintf("AssemblyAI error: %s", body.Error)
		}
		s.failJob(ctx, job, reason)

	default:
		// Still queued or processing; nothing to do yet.
	}

	return nil
}

// verifyWebhook checks the configured shared secret. It accepts either
// the raw header value AssemblyAI echoes back or an HMAC hex digest of
// the payload (for deployments that re-sign behind a proxy).
func (s *analysisService) verifyWebhook(payload []byte, signature string) bool {
	secret := s.cfg.Assembly.WebhookSecret
	if secret == "" {
		return true
	}
	if signature == "" {
		return false
	}
	if hmac.Equal([]byte(signature), []byte(secret)) {
		return true
	}
	return ai.VerifyHMAC(secret, payload, signature)
}

// handleCompletedTranscript fetches the finished transcript, runs the
// scoring engine, and persists the transcript and assessment. The job
// must be in the scoring status when called.
func (s *analysisService) handleCompletedTranscript(ctx context.Context, job *entities.AnalysisJob, transcriptID string) error {
	transcript, err := s.asmClient.GetTranscript(ctx, transcriptID)
	if err != nil {
		return fmt.Errorf("failed to fetch transcript: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		reason := "AssemblyAI transcription failed"
		if transcript.Error != nil {
			reason = fmt.Sprintf("AssemblyAI error: %s", *transcript.Error)
		}
		return fmt.Errorf("%s", reason)
	}
	if transcript.Status != aai.TranscriptStatusCompleted {
		return fmt.Errorf("transcript %s not completed yet (status %s)", transcriptID, transcript.Status)
	}

	text := ""
	if transcript.Text != nil {
		text = *transcript.Text
	}
	var duration float64
	if transcript.AudioDuration != nil {
		duration = float64(*transcript.AudioDuration)
	}
	language := job.Metadata.Language
	if transcript.LanguageCode != "" {
		language = string(transcript.LanguageCode)
	}

	polarity := ai.AggregatePolarity(transcript.SentimentAnalysisResults)

	result, err := s.engine.Analyze(ctx, scoring.Input{
		Text:            text,
		DurationSeconds: duration,
		Language:        language,
		Polarity:        &polarity,
	})
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	entity := entities.NewTranscript(&job.RecordingID)
	entity.Text = text
	entity.Language = language
	entity.DurationSeconds = duration
	entity.Polarity = polarity
	entity.WordCount = result.TotalWords
	entity.ModelUsed = "assemblyai"
	if transcript.Confidence != nil {
		entity.ConfidenceScore = *transcript.Confidence
	}
	entity.RawData = datatypes.NewJSONType(map[string]interface{}{
		"transcript_id":   transcriptID,
		"status":          string(transcript.Status),
		"sentiment_count": len(transcript.SentimentAnalysisResults),
	})
	if err := s.transcriptRepo.Create(ctx, entity); err != nil {
		return fmt.Errorf("failed to store transcript: %w", err)
	}

	assessment, err := buildAssessment(&entity.ID, result)
	if err != nil {
		return err
	}
	if err := s.assessmentRepo.Create(ctx, assessment); err != nil {
		return fmt.Errorf("failed to store assessment: %w", err)
	}

	if err := s.jobRepo.MarkCompleted(ctx, job.ID, &entity.ID, &assessment.ID); err != nil {
		return fmt.Errorf("failed to complete job: %w", err)
	}
	if err := s.recordingRepo.UpdateStatus(ctx, job.RecordingID, entities.RecordingStatusAnalyzed); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to update recording status", zap.Error(err))
	}

	if s.logger != nil {
		s.logger.Info("✅ Recording analysis completed",
			zap.String("job_id", job.ID.String()),
			zap.String("assessment_id", assessment.ID.String()),
			zap.Float64("overall", result.Overall),
			zap.String("risk_tier", string(result.RiskTier)),
		)
	}

	return nil
}
