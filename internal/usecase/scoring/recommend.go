package scoring

// Advisory messages. One per component, with two fluency variants
// selected by the raw rate, and a single message when nothing triggers.
const (
	RecommendLexical = "Vocabulary variety is lower than expected. Reading aloud, word games, and describing objects in detail can help broaden everyday word choice."

	RecommendFluencySlow = "Speech rate is on the slow side. Practice speaking in longer unbroken stretches, for example by describing your day out loud."

	RecommendFluencyFast = "Speech rate is on the fast side. Practice pacing yourself and pausing briefly between thoughts."

	RecommendComplexity = "Sentence structure is simple or flat. Try building longer sentences with connecting words such as 'because', 'although', and 'while'."

	RecommendEmotional = "Emotional tone is outside the typical range. Try including how you felt about events when describing them."

	RecommendAllGood = "Excellent! All speech signals are within a healthy range. Keep up regular conversation and storytelling."
)

// recommend emits advisories in fixed order (lexical, fluency,
// complexity, emotional) for components below the threshold. When every
// component clears the threshold it emits exactly the one celebratory
// message, never an empty list.
func recommend(cfg *Config, r *Result) []string {
	threshold := cfg.RecommendationThreshold
	var recs []string

	if r.Lexical.Score < threshold {
		recs = append(recs, RecommendLexical)
	}
	if r.Fluency.Score < threshold {
		// The direction gate deliberately uses its own threshold, not
		// the fluency band edges.
		if r.WordsPerSecond < cfg.SlowRateThreshold {
			recs = append(recs, RecommendFluencySlow)
		} else {
			recs = append(recs, RecommendFluencyFast)
		}
	}
	if r.Complexity.Score < threshold {
		recs = append(recs, RecommendComplexity)
	}
	if r.Emotional.Score < threshold {
		recs = append(recs, RecommendEmotional)
	}

	if len(recs) == 0 {
		return []string{RecommendAllGood}
	}
	return recs
}
