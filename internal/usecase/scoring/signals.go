package scoring

// The four signal calculators are stateless pure functions. Each one
// defines its own degenerate-input behavior: zero denominators never
// propagate, they resolve to the table's lowest band.

// scoreLexical computes the type-token ratio and bands it.
func scoreLexical(cfg *Config, words []string) (ComponentScore, int) {
	unique := uniqueCount(words)
	ratio := 0.0
	if len(words) > 0 {
		ratio = float64(unique) / float64(len(words))
	}
	b := bandFor(cfg.Lexical, ratio)
	if len(words) == 0 {
		b = lowestBand(cfg.Lexical)
	}
	return ComponentScore{Signal: SignalLexical, Raw: ratio, Score: b.Score, Label: b.Label}, unique
}

// scoreFluency computes words per second and bands it. A zero duration
// cannot produce a rate; the component pins to score 0 in the lowest
// band rather than dividing.
func scoreFluency(cfg *Config, wordCount int, duration float64) ComponentScore {
	if duration <= 0 {
		low := lowestBand(cfg.Fluency)
		return ComponentScore{Signal: SignalFluency, Raw: 0, Score: 0, Label: low.Label}
	}
	rate := float64(wordCount) / duration
	b := bandFor(cfg.Fluency, rate)
	return ComponentScore{Signal: SignalFluency, Raw: rate, Score: b.Score, Label: b.Label}
}

// scoreComplexity bands the average sentence length, with the top band
// gated on the conjunction count. The gate is a hard AND: an optimal
// length with too few conjunctions falls through to the next band that
// covers the length.
func scoreComplexity(cfg *Config, words []string, sentenceCount int) (ComponentScore, float64, int) {
	conjunctions := countConjunctions(words, cfg.Conjunctions)
	avgLen := 0.0
	if sentenceCount > 0 {
		avgLen = float64(len(words)) / float64(sentenceCount)
	}

	if sentenceCount == 0 {
		low := lowestBand(cfg.Complexity)
		return ComponentScore{Signal: SignalComplexity, Raw: 0, Score: low.Score, Label: low.Label}, 0, conjunctions
	}

	table := cfg.Complexity
	if conjunctions < cfg.MinConjunctions && len(table) > 1 {
		// Skip the gated optimal band.
		table = table[1:]
	}
	b := bandFor(table, avgLen)
	return ComponentScore{Signal: SignalComplexity, Raw: avgLen, Score: b.Score, Label: b.Label}, avgLen, conjunctions
}

// scoreEmotional bands a sentiment polarity. Out-of-range polarity is
// clamped, never rejected. An empty transcript has no emotional content
// to score; it pins to the lowest band so degenerate inputs land in the
// bottom band across all four signals.
func scoreEmotional(cfg *Config, polarity float64, wordCount int) ComponentScore {
	if polarity > 1.0 {
		polarity = 1.0
	}
	if polarity < -1.0 {
		polarity = -1.0
	}
	if wordCount == 0 {
		low := lowestBand(cfg.Emotional)
		return ComponentScore{Signal: SignalEmotional, Raw: 0, Score: low.Score, Label: low.Label}
	}
	b := bandFor(cfg.Emotional, polarity)
	return ComponentScore{Signal: SignalEmotional, Raw: polarity, Score: b.Score, Label: b.Label}
}
