package scoring

// aggregate combines the four component scores with the configured
// weights. The weights sum to 1, so the clamp is an invariant check
// against misconfigured tables rather than a correction.
func aggregate(cfg *Config, lexical, fluency, complexity, emotional float64) float64 {
	overall := cfg.Weights.Lexical*lexical +
		cfg.Weights.Fluency*fluency +
		cfg.Weights.Complexity*complexity +
		cfg.Weights.Emotional*emotional
	if overall < 0 {
		return 0
	}
	if overall > 100 {
		return 100
	}
	return overall
}

// classifyRisk maps the overall score to a risk tier. Bands are
// evaluated in order; the first whose lower bound is met wins, making
// every boundary half-open except the closed top at 100.
func classifyRisk(cfg *Config, overall float64) RiskTier {
	for _, b := range cfg.Risk {
		if overall >= b.Lo {
			return b.Tier
		}
	}
	return cfg.Risk[len(cfg.Risk)-1].Tier
}

// cognitiveAge derives an age estimate by linearly penalizing the
// deviation from the assumed-optimal baseline score, floored at the
// configured minimum.
func cognitiveAge(cfg *Config, overall float64) float64 {
	deviation := cfg.BaselineScore - overall
	age := cfg.BaselineAge + cfg.AgeSlope*deviation
	if age < cfg.MinimumAge {
		return cfg.MinimumAge
	}
	return age
}
