package presenter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kina-health/kina/internal/usecase/scoring"
)

func sampleResult() *scoring.Result {
	return &scoring.Result{
		Language:          "en",
		DurationSeconds:   30,
		TotalWords:        75,
		UniqueWords:       50,
		SentenceCount:     5,
		ConjunctionCount:  2,
		WordsPerSecond:    2.5,
		AvgSentenceLength: 15,
		Polarity:          0.12,
		Lexical:           scoring.ComponentScore{Signal: scoring.SignalLexical, Raw: 0.67, Score: 80, Label: scoring.LabelGood},
		Fluency:           scoring.ComponentScore{Signal: scoring.SignalFluency, Raw: 2.5, Score: 100, Label: scoring.LabelOptimal},
		Complexity:        scoring.ComponentScore{Signal: scoring.SignalComplexity, Raw: 15, Score: 100, Label: scoring.LabelOptimal},
		Emotional:         scoring.ComponentScore{Signal: scoring.SignalEmotional, Raw: 0.12, Score: 100, Label: scoring.LabelOptimal},
		Overall:           89,
		RiskTier:          scoring.RiskLow,
		CognitiveAge:      33.8,
		Recommendations:   []string{"Keep up your current communication habits; all signals look healthy."},
	}
}

func TestReportSections(t *testing.T) {
	report := Report(sampleResult())

	for _, section := range []string{
		"--- Lexical Diversity ---",
		"--- Speech Fluency ---",
		"--- Sentence Complexity ---",
		"--- Sentiment Score ---",
		"--- Overall ---",
		"--- Recommendations ---",
	} {
		assert.Contains(t, report, section)
	}

	assert.Contains(t, report, "Total Words       : 75")
	assert.Contains(t, report, "Unique Words      : 50")
	assert.Contains(t, report, "Words Per Second  : 2.50")
	assert.Contains(t, report, "Risk Tier         : Low")
	assert.Contains(t, report, "Cognitive Age     : 33.8 years")
}

func TestReportOmitsEmptySections(t *testing.T) {
	result := sampleResult()
	result.Recommendations = nil
	result.Warnings = nil

	report := Report(result)
	assert.False(t, strings.Contains(report, "--- Recommendations ---"))
	assert.False(t, strings.Contains(report, "--- Warnings ---"))
}

func TestReportIncludesWarnings(t *testing.T) {
	result := sampleResult()
	result.Warnings = []string{"recording duration 5.0s is outside the recommended 10-60s range; fluency scoring quality is degraded"}

	report := Report(result)
	assert.Contains(t, report, "--- Warnings ---")
	assert.Contains(t, report, "outside the recommended")
}
