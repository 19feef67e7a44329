package analysis

import (
	"context"
	"fmt"
	"sync"
	"time"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/kina-health/kina/internal/domain/entities"
)

// workerPool drives pending jobs into AssemblyAI and recovers jobs whose
// webhook never arrived.
type workerPool struct {
	svc      *analysisService
	stopChan chan struct{}
	wg       sync.WaitGroup
	started  bool
	mu       sync.Mutex
}

func newWorkerPool(svc *analysisService) *workerPool {
	return &workerPool{svc: svc}
}

func (p *workerPool) start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	p.started = true
	p.stopChan = make(chan struct{})

	for i := 0; i < p.svc.cfg.Workers.PoolSize; i++ {
		p.wg.Add(1)
		go p.pendingJobWorker(ctx, i)
	}

	p.wg.Add(1)
	go p.stuckJobReaper(ctx)

	if p.svc.logger != nil {
		p.svc.logger.Info("👷 Worker pool started",
			zap.Int("pool_size", p.svc.cfg.Workers.PoolSize),
			zap.Duration("poll_interval", p.svc.cfg.Workers.PollInterval),
		)
	}
}

func (p *workerPool) stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}
	close(p.stopChan)
	p.wg.Wait()
	p.started = false

	if p.svc.logger != nil {
		p.svc.logger.Info("👷 Worker pool stopped")
	}
}

// pendingJobWorker polls for pending and retrying jobs, claims them with
// a conditional update, and submits them to AssemblyAI.
func (p *workerPool) pendingJobWorker(ctx context.Context, id int) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.svc.cfg.Workers.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.drainPendingJobs(ctx, id)
		}
	}
}

func (p *workerPool) drainPendingJobs(ctx context.Context, workerID int) {
	for _, status := range []entities.AnalysisJobStatus{
		entities.AnalysisJobStatusPending,
		entities.AnalysisJobStatusRetrying,
	} {
		jobs, err := p.svc.jobRepo.GetJobsByStatus(ctx, status, p.svc.cfg.Workers.MaxConcurrent)
		if err != nil {
			if p.svc.logger != nil {
				p.svc.logger.Error("❌ Failed to poll jobs", zap.Error(err))
			}
			continue
		}

		for _, job := range jobs {
			claimed, err := p.svc.jobRepo.ClaimJob(ctx, job.ID, status, entities.AnalysisJobStatusSubmitted)
			if err != nil {
				if p.svc.logger != nil {
					p.svc.logger.Error("❌ Failed to claim job",
						zap.String("job_id", job.ID.String()),
						zap.Error(err),
					)
				}
				continue
			}
			if !claimed {
				// Another worker got there first.
				continue
			}

			if p.svc.logger != nil {
				p.svc.logger.Info("📤 Worker claimed job",
					zap.Int("worker", workerID),
					zap.String("job_id", job.ID.String()),
					zap.Int("retry_count", job.RetryCount),
				)
			}

			if err := p.svc.submitJob(ctx, job); err != nil && p.svc.logger != nil {
				// submitJob already scheduled the retry or failed the job.
				p.svc.logger.Error("❌ Job submission failed",
					zap.String("job_id", job.ID.String()),
					zap.Error(err),
				)
			}
		}
	}
}

// stuckJobReaper polls AssemblyAI for jobs whose webhook never arrived
// and drives them to a terminal state.
func (p *workerPool) stuckJobReaper(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.svc.cfg.Workers.StuckJobThreshold / 2)
	defer ticker.Stop()

	for {
		select {
		case <-p.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.reapStuckJobs(ctx)
		}
	}
}

func (p *workerPool) reapStuckJobs(ctx context.Context) {
	cutoff := time.Now().Add(-p.svc.cfg.Workers.StuckJobThreshold)
	jobs, err := p.svc.jobRepo.GetStuckJobs(ctx, entities.AnalysisJobStatusSubmitted, cutoff, p.svc.cfg.Workers.MaxConcurrent)
	if err != nil {
		if p.svc.logger != nil {
			p.svc.logger.Error("❌ Failed to query stuck jobs", zap.Error(err))
		}
		return
	}
	if len(jobs) == 0 {
		return
	}

	if p.svc.logger != nil {
		p.svc.logger.Warn("⏰ Found jobs stuck in submitted status (webhook timeout)",
			zap.Int("count", len(jobs)),
		)
	}

	for _, job := range jobs {
		if job.ExternalJobID == nil || *job.ExternalJobID == "" {
			p.svc.failJob(ctx, job, "no external transcript ID")
			continue
		}
		transcriptID := *job.ExternalJobID

		transcript, err := p.svc.asmClient.GetTranscript(ctx, transcriptID)
		if err != nil {
			// Possibly a transient API error; leave the job for the
			// next sweep.
			if p.svc.logger != nil {
				p.svc.logger.Error("❌ Failed to poll AssemblyAI",
					zap.String("transcript_id", transcriptID),
					zap.Error(err),
				)
			}
			continue
		}

		switch transcript.Status {
		case aai.TranscriptStatusCompleted:
			claimed, err := p.svc.jobRepo.ClaimJob(ctx, job.ID, entities.AnalysisJobStatusSubmitted, entities.AnalysisJobStatusScoring)
			if err != nil || !claimed {
				continue
			}
			if p.svc.logger != nil {
				p.svc.logger.Info("✅ Transcript completed (webhook missed), processing now",
					zap.String("job_id", job.ID.String()),
					zap.String("transcript_id", transcriptID),
				)
			}
			if err := p.svc.handleCompletedTranscript(ctx, job, transcriptID); err != nil {
				p.svc.failJob(ctx, job, fmt.Sprintf("failed to process transcript: %v", err))
			}

		case aai.TranscriptStatusError:
			reason := "AssemblyAI transcription failed"
			if transcript.Error != nil {
				reason = fmt.Sprintf("AssemblyAI error: %s", *transcript.Error)
			}
			p.svc.failJob(ctx, job, reason)

		case aai.TranscriptStatusQueued, aai.TranscriptStatusProcessing:
			// Still working; reset the timeout window.
			if err := p.svc.jobRepo.Touch(ctx, job.ID); err != nil && p.svc.logger != nil {
				p.svc.logger.Warn("⚠️ Failed to touch job", zap.Error(err))
			}

		default:
			if p.svc.logger != nil {
				p.svc.logger.Warn("⚠️ Unknown transcript status",
					zap.String("job_id", job.ID.String()),
					zap.String("status", string(transcript.Status)),
				)
			}
		}
	}
}
