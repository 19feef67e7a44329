package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreLexicalBands(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		words     []string
		wantRaw   float64
		wantScore float64
		wantLabel Label
	}{
		{"all unique is optimal", []string{"one", "two", "three", "four"}, 1.0, 100, LabelOptimal},
		{"two thirds is good", []string{"a", "b", "c", "d", "a", "b"}, 2.0 / 3.0, 80, LabelGood},
		{"half is fair", []string{"a", "b", "a", "b"}, 0.5, 60, LabelFair},
		{"quarter is poor", []string{"a", "a", "a", "a"}, 0.25, 30, LabelPoor},
		{"heavy repetition is very poor", []string{"a", "a", "a", "a", "a", "a", "a", "a", "a", "b"}, 0.2, 30, LabelPoor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := scoreLexical(&cfg, tt.words)
			assert.InDelta(t, tt.wantRaw, got.Raw, 1e-9)
			assert.Equal(t, tt.wantScore, got.Score)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestScoreLexicalEmpty(t *testing.T) {
	cfg := DefaultConfig()
	got, unique := scoreLexical(&cfg, nil)
	assert.Equal(t, 0, unique)
	assert.Equal(t, 0.0, got.Raw)
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, LabelVeryPoor, got.Label)
}

func TestScoreLexicalBoundaries(t *testing.T) {
	cfg := DefaultConfig()

	// Exactly 0.75 belongs to the optimal band, 0.6 to the good band.
	got, _ := scoreLexical(&cfg, []string{"a", "b", "c", "a"})
	assert.Equal(t, 100.0, got.Score)

	got, _ = scoreLexical(&cfg, []string{"a", "b", "c", "a", "b"})
	assert.Equal(t, 80.0, got.Score)
}

func TestScoreFluencyBands(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		words     int
		duration  float64
		wantRate  float64
		wantScore float64
	}{
		{"optimal center", 75, 30, 2.5, 100},
		{"optimal lower edge", 60, 30, 2.0, 100},
		{"optimal upper edge", 90, 30, 3.0, 100},
		{"slightly slow", 54, 30, 1.8, 80},
		{"slightly fast", 99, 30, 3.3, 80},
		{"slow", 36, 30, 1.2, 60},
		{"fast", 114, 30, 3.8, 60},
		{"very slow", 21, 30, 0.7, 40},
		{"very fast", 135, 30, 4.5, 40},
		{"crawling", 6, 30, 0.2, 20},
		{"racing", 180, 30, 6.0, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreFluency(&cfg, tt.words, tt.duration)
			assert.InDelta(t, tt.wantRate, got.Raw, 1e-9)
			assert.Equal(t, tt.wantScore, got.Score)
		})
	}
}

func TestScoreFluencyZeroDuration(t *testing.T) {
	cfg := DefaultConfig()
	got := scoreFluency(&cfg, 50, 0)
	assert.Equal(t, 0.0, got.Score)
	assert.Equal(t, LabelVeryPoor, got.Label)
}

func TestScoreComplexityBands(t *testing.T) {
	cfg := DefaultConfig()

	long := func(n int) []string {
		words := make([]string, n)
		for i := range words {
			words[i] = "word"
		}
		return words
	}

	tests := []struct {
		name      string
		words     []string
		sentences int
		wantScore float64
	}{
		{"optimal length with conjunction", append(long(14), "because"), 1, 100},
		{"good length", long(10), 1, 80},
		{"long-winded but good", long(23), 1, 80},
		{"fair", long(7), 1, 60},
		{"rambling", long(28), 1, 60},
		{"short", long(5), 1, 40},
		{"run-on", long(35), 1, 40},
		{"fragments", long(3), 1, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _ := scoreComplexity(&cfg, tt.words, tt.sentences)
			assert.Equal(t, tt.wantScore, got.Score)
		})
	}
}

func TestScoreComplexityConjunctionGate(t *testing.T) {
	cfg := DefaultConfig()

	// 15 words/sentence is in the optimal range, but without a single
	// conjunction the optimal band is out of reach and the length falls
	// into the next band that covers it.
	words := make([]string, 15)
	for i := range words {
		words[i] = "word"
	}
	got, avgLen, conj := scoreComplexity(&cfg, words, 1)
	assert.Equal(t, 15.0, avgLen)
	assert.Equal(t, 0, conj)
	assert.Equal(t, 80.0, got.Score)
	assert.Equal(t, LabelGood, got.Label)
}

func TestScoreComplexitySpecExample(t *testing.T) {
	cfg := DefaultConfig()

	words := Words("I went to the store because I needed groceries, and I also wanted to buy flowers.")
	sentences := Sentences("I went to the store because I needed groceries, and I also wanted to buy flowers.")

	got, avgLen, conj := scoreComplexity(&cfg, words, len(sentences))
	assert.Equal(t, 1, len(sentences))
	assert.Equal(t, 2, conj)
	assert.GreaterOrEqual(t, avgLen, 12.0)
	assert.LessOrEqual(t, avgLen, 20.0)
	assert.Equal(t, 100.0, got.Score)
	assert.Equal(t, LabelOptimal, got.Label)
}

func TestScoreComplexityZeroSentences(t *testing.T) {
	cfg := DefaultConfig()
	got, avgLen, _ := scoreComplexity(&cfg, nil, 0)
	assert.Equal(t, 0.0, avgLen)
	assert.Equal(t, 20.0, got.Score)
	assert.Equal(t, LabelVeryPoor, got.Label)
}

func TestScoreEmotionalBands(t *testing.T) {
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		polarity  float64
		wantScore float64
	}{
		{"neutral is optimal", 0.0, 100},
		{"mildly positive is optimal", 0.25, 100},
		{"slightly negative is good", -0.2, 80},
		{"notably positive is good", 0.4, 80},
		{"negative is fair", -0.4, 60},
		{"euphoric is fair", 0.6, 60},
		{"despondent is poor", -0.8, 40},
		{"manic is poor", 0.9, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreEmotional(&cfg, tt.polarity, 10)
			assert.Equal(t, tt.wantScore, got.Score)
		})
	}
}

func TestScoreEmotionalClampsOutOfRange(t *testing.T) {
	cfg := DefaultConfig()

	got := scoreEmotional(&cfg, 3.7, 10)
	assert.Equal(t, 1.0, got.Raw)
	assert.Equal(t, 40.0, got.Score)

	got = scoreEmotional(&cfg, -9.9, 10)
	assert.Equal(t, -1.0, got.Raw)
	assert.Equal(t, 40.0, got.Score)
}

func TestScoreEmotionalEmptyTranscript(t *testing.T) {
	cfg := DefaultConfig()
	got := scoreEmotional(&cfg, 0, 0)
	assert.Equal(t, 40.0, got.Score)
	assert.Equal(t, LabelPoor, got.Label)
}
