// Package presenter renders stored assessments into human-readable
// reports.
package presenter

import (
	"fmt"
	"strings"

	"github.com/kina-health/kina/internal/usecase/scoring"
)

// Report renders a plain-text assessment report. The layout follows the
// section style of the original clinical printouts: one block per
// signal, then the overall classification.
func Report(result *scoring.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "=== Kina Speech Assessment ===\n")
	if result.Language != "" {
		fmt.Fprintf(&b, "Language          : %s\n", result.Language)
	}
	fmt.Fprintf(&b, "Duration          : %.1f seconds\n", result.DurationSeconds)

	fmt.Fprintf(&b, "\n--- Lexical Diversity ---\n")
	fmt.Fprintf(&b, "Total Words       : %d\n", result.TotalWords)
	fmt.Fprintf(&b, "Unique Words      : %d\n", result.UniqueWords)
	fmt.Fprintf(&b, "Diversity Score   : %.2f (Unique / Total)\n", result.Lexical.Raw)
	fmt.Fprintf(&b, "Diversity Band    : %s (%.0f)\n", result.Lexical.Label, result.Lexical.Score)

	fmt.Fprintf(&b, "\n--- Speech Fluency ---\n")
	fmt.Fprintf(&b, "Words Per Second  : %.2f\n", result.WordsPerSecond)
	fmt.Fprintf(&b, "Fluency Band      : %s (%.0f)\n", result.Fluency.Label, result.Fluency.Score)

	fmt.Fprintf(&b, "\n--- Sentence Complexity ---\n")
	fmt.Fprintf(&b, "Average Sentence Length : %.2f words\n", result.AvgSentenceLength)
	fmt.Fprintf(&b, "Sentence Count          : %d\n", result.SentenceCount)
	fmt.Fprintf(&b, "Conjunction Count       : %d\n", result.ConjunctionCount)
	fmt.Fprintf(&b, "Complexity Band         : %s (%.0f)\n", result.Complexity.Label, result.Complexity.Score)

	fmt.Fprintf(&b, "\n--- Sentiment Score ---\n")
	fmt.Fprintf(&b, "Polarity Score    : %.2f (-1 = negative, +1 = positive)\n", result.Polarity)
	fmt.Fprintf(&b, "Expression Band   : %s (%.0f)\n", result.Emotional.Label, result.Emotional.Score)

	fmt.Fprintf(&b, "\n--- Overall ---\n")
	fmt.Fprintf(&b, "Overall Score     : %.1f / 100\n", result.Overall)
	fmt.Fprintf(&b, "Risk Tier         : %s\n", result.RiskTier.Display())
	fmt.Fprintf(&b, "Cognitive Age     : %.1f years\n", result.CognitiveAge)

	if len(result.Recommendations) > 0 {
		fmt.Fprintf(&b, "\n--- Recommendations ---\n")
		for i, rec := range result.Recommendations {
			fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
		}
	}

	if len(result.Warnings) > 0 {
		fmt.Fprintf(&b, "\n--- Warnings ---\n")
		for _, w := range result.Warnings {
			fmt.Fprintf(&b, "- %s\n", w)
		}
	}

	return b.String()
}
