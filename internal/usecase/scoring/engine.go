// Package scoring implements the signal scoring engine: a deterministic
// pipeline that maps a transcript and its recording duration into four
// banded component scores, a weighted overall score, a risk tier, an
// estimated cognitive age, and templated recommendations.
//
// The engine is pure and reentrant: it holds no mutable state, performs
// no I/O of its own, and is safe to call concurrently. The only
// collaborator is the sentiment provider, and callers that already have
// a polarity (for example from the transcription pipeline) can bypass
// it via Input.Polarity.
package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
)

// ErrInvalidInput marks boundary validation failures: malformed numeric
// input is rejected at the engine edge instead of being coerced.
var ErrInvalidInput = errors.New("invalid analysis input")

// SentimentProvider supplies a sentiment polarity in [-1,1] for a
// transcript. Implementations are external collaborators; the engine
// clamps out-of-range values defensively.
type SentimentProvider interface {
	Polarity(ctx context.Context, text string) (float64, error)
}

// PolarityFunc adapts a plain function to SentimentProvider.
type PolarityFunc func(ctx context.Context, text string) (float64, error)

// Polarity implements SentimentProvider.
func (f PolarityFunc) Polarity(ctx context.Context, text string) (float64, error) {
	return f(ctx, text)
}

// NeutralSentiment returns a provider that always reports neutral
// polarity, used when no sentiment collaborator is configured.
func NeutralSentiment() SentimentProvider {
	return PolarityFunc(func(context.Context, string) (float64, error) {
		return 0, nil
	})
}

// Engine runs analyses against one immutable configuration.
type Engine struct {
	cfg       Config
	sentiment SentimentProvider
}

// NewEngine validates the configuration and constructs an engine. A nil
// sentiment provider falls back to neutral polarity.
func NewEngine(cfg Config, sentiment SentimentProvider) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("scoring config: %w", err)
	}
	if sentiment == nil {
		sentiment = NeutralSentiment()
	}
	return &Engine{cfg: cfg, sentiment: sentiment}, nil
}

// Config returns the engine's configuration for inspection.
func (e *Engine) Config() Config {
	return e.cfg
}

// Analyze scores one transcript. Degenerate inputs (empty text, zero
// duration) produce lowest-band scores rather than errors; NaN,
// infinite, or negative durations fail fast with ErrInvalidInput.
func (e *Engine) Analyze(ctx context.Context, in Input) (*Result, error) {
	if math.IsNaN(in.DurationSeconds) || math.IsInf(in.DurationSeconds, 0) {
		return nil, fmt.Errorf("%w: duration is not a finite number", ErrInvalidInput)
	}
	if in.DurationSeconds < 0 {
		return nil, fmt.Errorf("%w: duration %v is negative", ErrInvalidInput, in.DurationSeconds)
	}
	if in.Polarity != nil && (math.IsNaN(*in.Polarity) || math.IsInf(*in.Polarity, 0)) {
		return nil, fmt.Errorf("%w: polarity is not a finite number", ErrInvalidInput)
	}

	words := Words(in.Text)
	sentences := Sentences(in.Text)

	polarity, err := e.resolvePolarity(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("sentiment provider: %w", err)
	}

	r := &Result{
		Language:        in.Language,
		DurationSeconds: in.DurationSeconds,
		TotalWords:      len(words),
		SentenceCount:   len(sentences),
	}

	// The four calculators have no data dependencies on each other;
	// they fan out and the aggregation below joins on all of them.
	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		r.Lexical, r.UniqueWords = scoreLexical(&e.cfg, words)
	}()
	go func() {
		defer wg.Done()
		r.Fluency = scoreFluency(&e.cfg, len(words), in.DurationSeconds)
	}()
	go func() {
		defer wg.Done()
		r.Complexity, r.AvgSentenceLength, r.ConjunctionCount = scoreComplexity(&e.cfg, words, len(sentences))
	}()
	go func() {
		defer wg.Done()
		r.Emotional = scoreEmotional(&e.cfg, polarity, len(words))
	}()
	wg.Wait()

	r.WordsPerSecond = r.Fluency.Raw
	r.Polarity = r.Emotional.Raw

	r.Overall = aggregate(&e.cfg, r.Lexical.Score, r.Fluency.Score, r.Complexity.Score, r.Emotional.Score)
	r.RiskTier = classifyRisk(&e.cfg, r.Overall)
	r.CognitiveAge = cognitiveAge(&e.cfg, r.Overall)
	r.Recommendations = recommend(&e.cfg, r)

	if in.DurationSeconds < e.cfg.MinDurationSeconds || in.DurationSeconds > e.cfg.MaxDurationSeconds {
		r.Warnings = append(r.Warnings, fmt.Sprintf(
			"recording duration %.1fs is outside the recommended %.0f-%.0fs range; fluency scoring quality is degraded",
			in.DurationSeconds, e.cfg.MinDurationSeconds, e.cfg.MaxDurationSeconds))
	}

	return r, nil
}

func (e *Engine) resolvePolarity(ctx context.Context, in Input) (float64, error) {
	if in.Polarity != nil {
		return *in.Polarity, nil
	}
	if in.Text == "" {
		// Nothing to analyze; the emotional calculator pins empty
		// transcripts to its lowest band regardless.
		return 0, nil
	}
	return e.sentiment.Polarity(ctx, in.Text)
}
