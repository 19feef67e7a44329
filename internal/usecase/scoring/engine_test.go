package scoring

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(DefaultConfig(), nil)
	require.NoError(t, err)
	return e
}

func floatPtr(v float64) *float64 { return &v }

func TestAnalyzeScoresAreBounded(t *testing.T) {
	e := newTestEngine(t)

	inputs := []Input{
		{Text: "", DurationSeconds: 0},
		{Text: "one two three.", DurationSeconds: 5},
		{Text: strings.Repeat("the same words over and over again. ", 20), DurationSeconds: 30},
		{Text: "I walked to the park because the weather was lovely, and I watched the birds while eating lunch.", DurationSeconds: 12, Polarity: floatPtr(0.2)},
	}

	for i, in := range inputs {
		r, err := e.Analyze(context.Background(), in)
		require.NoError(t, err, "input %d", i)
		for _, c := range r.Components() {
			assert.GreaterOrEqual(t, c.Score, 0.0)
			assert.LessOrEqual(t, c.Score, 100.0)
		}
		assert.GreaterOrEqual(t, r.Overall, 0.0)
		assert.LessOrEqual(t, r.Overall, 100.0)
		assert.GreaterOrEqual(t, r.CognitiveAge, 20.0)
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	e := newTestEngine(t)
	in := Input{
		Text:            "I visited my sister on Sunday because she had just moved, and we spent the afternoon unpacking boxes while talking about our childhood.",
		DurationSeconds: 15,
		Language:        "en",
	}

	first, err := e.Analyze(context.Background(), in)
	require.NoError(t, err)
	second, err := e.Analyze(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzeEmptyTranscriptZeroDuration(t *testing.T) {
	e := newTestEngine(t)

	r, err := e.Analyze(context.Background(), Input{Text: "", DurationSeconds: 0})
	require.NoError(t, err)

	cfg := e.Config()
	assert.Equal(t, lowestBand(cfg.Lexical).Score, r.Lexical.Score)
	assert.Equal(t, 0.0, r.Fluency.Score)
	assert.Equal(t, lowestBand(cfg.Complexity).Score, r.Complexity.Score)
	assert.Equal(t, lowestBand(cfg.Emotional).Score, r.Emotional.Score)
	assert.Equal(t, RiskHigher, r.RiskTier)
	assert.Equal(t, 0, r.TotalWords)
	assert.Equal(t, 0, r.SentenceCount)
}

func TestAnalyzeFluencyExample(t *testing.T) {
	e := newTestEngine(t)

	// 75 words over 30 seconds: 2.5 words/sec, optimal.
	words := make([]string, 75)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	r, err := e.Analyze(context.Background(), Input{
		Text:            strings.Join(words, " ") + ".",
		DurationSeconds: 30,
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, r.WordsPerSecond, 1e-9)
	assert.Equal(t, 100.0, r.Fluency.Score)
	assert.Equal(t, LabelOptimal, r.Fluency.Label)
}

func TestAnalyzeCognitiveAgeBaseline(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 35.0, cognitiveAge(&cfg, 85))
	assert.Equal(t, 36.5, cognitiveAge(&cfg, 80))
	// Overall above the baseline cannot push the age below the floor.
	assert.Equal(t, 20.0, cognitiveAge(&cfg, 100+200))
}

func TestClassifyRiskBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		overall float64
		want    RiskTier
	}{
		{100, RiskLow},
		{80, RiskLow},
		{79.99, RiskLowModerate},
		{65, RiskLowModerate},
		{64.99, RiskModerate},
		{50, RiskModerate},
		{49.99, RiskHigher},
		{0, RiskHigher},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifyRisk(&cfg, tt.overall), "overall=%v", tt.overall)
	}
}

func TestLexicalMonotonicity(t *testing.T) {
	cfg := DefaultConfig()

	prev := -1.0
	for ratio := 0.0; ratio <= 1.0; ratio += 0.005 {
		b := bandFor(cfg.Lexical, ratio)
		assert.GreaterOrEqual(t, b.Score, prev, "ratio=%v", ratio)
		prev = b.Score
	}
}

func TestRecommendationGating(t *testing.T) {
	e := newTestEngine(t)

	// Varied vocabulary, healthy rate, optimal sentence shape, neutral
	// sentiment: every component clears 70, so exactly one message.
	text := "I spent the morning repotting tomato seedlings because the roots had outgrown their trays. Afterwards I cleaned the greenhouse shelves while listening to an old radio drama about lighthouse keepers."
	r, err := e.Analyze(context.Background(), Input{Text: text, DurationSeconds: 13})
	require.NoError(t, err)

	require.Len(t, r.Recommendations, 1)
	assert.Equal(t, RecommendAllGood, r.Recommendations[0])
}

func TestRecommendationOrderAndVariants(t *testing.T) {
	e := newTestEngine(t)

	// Repetitive, slow, fragmented, empty-ish speech trips everything,
	// with the slow fluency variant.
	r, err := e.Analyze(context.Background(), Input{
		Text:            "yes. yes. yes. yes.",
		DurationSeconds: 40,
		Polarity:        floatPtr(-0.9),
	})
	require.NoError(t, err)

	require.Equal(t, []string{
		RecommendLexical,
		RecommendFluencySlow,
		RecommendComplexity,
		RecommendEmotional,
	}, r.Recommendations)
}

func TestRecommendationFastVariant(t *testing.T) {
	cfg := DefaultConfig()
	r := &Result{
		Lexical:        ComponentScore{Score: 80},
		Fluency:        ComponentScore{Score: 40, Raw: 4.5},
		Complexity:     ComponentScore{Score: 80},
		Emotional:      ComponentScore{Score: 100},
		WordsPerSecond: 4.5,
	}
	assert.Equal(t, []string{RecommendFluencyFast}, recommend(&cfg, r))
}

func TestAnalyzeDurationWarning(t *testing.T) {
	e := newTestEngine(t)

	r, err := e.Analyze(context.Background(), Input{Text: "short clip.", DurationSeconds: 4})
	require.NoError(t, err)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "outside the recommended")

	r, err = e.Analyze(context.Background(), Input{Text: "short clip.", DurationSeconds: 30})
	require.NoError(t, err)
	assert.Empty(t, r.Warnings)
}

func TestAnalyzeRejectsMalformedInput(t *testing.T) {
	e := newTestEngine(t)

	for _, dur := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -3} {
		_, err := e.Analyze(context.Background(), Input{Text: "hello.", DurationSeconds: dur})
		assert.ErrorIs(t, err, ErrInvalidInput, "duration=%v", dur)
	}

	_, err := e.Analyze(context.Background(), Input{Text: "hello.", DurationSeconds: 10, Polarity: floatPtr(math.NaN())})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAnalyzeSentimentProviderFailure(t *testing.T) {
	boom := errors.New("model offline")
	e, err := NewEngine(DefaultConfig(), PolarityFunc(func(context.Context, string) (float64, error) {
		return 0, boom
	}))
	require.NoError(t, err)

	_, err = e.Analyze(context.Background(), Input{Text: "hello there.", DurationSeconds: 10})
	assert.ErrorIs(t, err, boom)
}

func TestAnalyzeConcurrentCallers(t *testing.T) {
	e := newTestEngine(t)
	in := Input{Text: "The quick brown fox jumps over the lazy dog because it can.", DurationSeconds: 12}

	base, err := e.Analyze(context.Background(), in)
	require.NoError(t, err)

	done := make(chan *Result, 16)
	for i := 0; i < 16; i++ {
		go func() {
			r, err := e.Analyze(context.Background(), in)
			assert.NoError(t, err)
			done <- r
		}()
	}
	for i := 0; i < 16; i++ {
		assert.Equal(t, base, <-done)
	}
}
