package scoring

import (
	"fmt"
	"math"
)

// Label is the qualitative band a component score fell into.
type Label string

const (
	LabelOptimal  Label = "optimal"
	LabelGood     Label = "good"
	LabelFair     Label = "fair"
	LabelPoor     Label = "poor"
	LabelVeryPoor Label = "very_poor"
)

// RiskTier buckets the overall score into one of four ordered categories.
type RiskTier string

const (
	RiskLow         RiskTier = "low"
	RiskLowModerate RiskTier = "low_moderate"
	RiskModerate    RiskTier = "moderate"
	RiskHigher      RiskTier = "higher"
)

// Display returns the human-readable tier name used in reports.
func (t RiskTier) Display() string {
	switch t {
	case RiskLow:
		return "Low"
	case RiskLowModerate:
		return "Low-Moderate"
	case RiskModerate:
		return "Moderate"
	case RiskHigher:
		return "Higher"
	}
	return string(t)
}

// Band is one step of a component scoring table: a closed interval
// [Lo, Hi] mapped to a fixed score and label. Tables are evaluated in
// order and the first matching band wins, so bands listed earlier take
// the shared boundary points. Symmetric tables (fluency, emotional)
// exploit this: a later band may span the whole range between its two
// intervals because the better inner bands are matched first.
type Band struct {
	Lo    float64 `json:"lo" mapstructure:"lo"`
	Hi    float64 `json:"hi" mapstructure:"hi"`
	Score float64 `json:"score" mapstructure:"score"`
	Label Label   `json:"label" mapstructure:"label"`
}

func (b Band) contains(v float64) bool {
	return v >= b.Lo && v <= b.Hi
}

// RiskBand maps a minimum overall score to a risk tier. Evaluated in
// order, first band whose Lo <= overall wins.
type RiskBand struct {
	Lo   float64  `json:"lo" mapstructure:"lo"`
	Tier RiskTier `json:"tier" mapstructure:"tier"`
}

// Weights are the fixed aggregation weights for the four components.
// They must sum to 1.
type Weights struct {
	Lexical    float64 `json:"lexical" mapstructure:"lexical"`
	Fluency    float64 `json:"fluency" mapstructure:"fluency"`
	Complexity float64 `json:"complexity" mapstructure:"complexity"`
	Emotional  float64 `json:"emotional" mapstructure:"emotional"`
}

// Config holds every threshold the engine uses. It is an immutable
// value passed in at construction, not a set of package globals, so
// callers can inspect it or override individual tables (the CLI loads
// overrides from YAML). DefaultConfig returns the documented tables.
type Config struct {
	Weights Weights `json:"weights" mapstructure:"weights"`

	Lexical    []Band `json:"lexical" mapstructure:"lexical"`
	Fluency    []Band `json:"fluency" mapstructure:"fluency"`
	Complexity []Band `json:"complexity" mapstructure:"complexity"`
	Emotional  []Band `json:"emotional" mapstructure:"emotional"`

	Risk []RiskBand `json:"risk" mapstructure:"risk"`

	// Conjunctions is the fixed set of connecting words counted by the
	// sentence-complexity signal (whole-token, case-insensitive).
	Conjunctions []string `json:"conjunctions" mapstructure:"conjunctions"`

	// The complexity table's top band additionally requires at least
	// MinConjunctions connecting words; a transcript with optimal
	// sentence length but no conjunctions falls through to the next band.
	MinConjunctions int `json:"min_conjunctions" mapstructure:"min_conjunctions"`

	// SlowRateThreshold separates the slow-speech and fast-speech
	// recommendation variants (words/sec). Intentionally narrower than
	// the fluency bands themselves.
	SlowRateThreshold float64 `json:"slow_rate_threshold" mapstructure:"slow_rate_threshold"`

	// RecommendationThreshold is the component score below which an
	// advisory is emitted.
	RecommendationThreshold float64 `json:"recommendation_threshold" mapstructure:"recommendation_threshold"`

	// MinDurationSeconds/MaxDurationSeconds bound the soft valid range
	// for a recording; out-of-range durations produce a warning, not an
	// error.
	MinDurationSeconds float64 `json:"min_duration_seconds" mapstructure:"min_duration_seconds"`
	MaxDurationSeconds float64 `json:"max_duration_seconds" mapstructure:"max_duration_seconds"`

	// Cognitive-age model: age = max(MinimumAge, BaselineAge +
	// AgeSlope*(BaselineScore-overall)).
	BaselineScore float64 `json:"baseline_score" mapstructure:"baseline_score"`
	BaselineAge   float64 `json:"baseline_age" mapstructure:"baseline_age"`
	AgeSlope      float64 `json:"age_slope" mapstructure:"age_slope"`
	MinimumAge    float64 `json:"minimum_age" mapstructure:"minimum_age"`
}

// DefaultConfig returns the documented scoring tables.
func DefaultConfig() Config {
	return Config{
		Weights: Weights{
			Lexical:    0.30,
			Fluency:    0.25,
			Complexity: 0.25,
			Emotional:  0.20,
		},
		Lexical: []Band{
			{Lo: 0.75, Hi: 1.0, Score: 100, Label: LabelOptimal},
			{Lo: 0.60, Hi: 0.75, Score: 80, Label: LabelGood},
			{Lo: 0.40, Hi: 0.60, Score: 60, Label: LabelFair},
			{Lo: 0.20, Hi: 0.40, Score: 30, Label: LabelPoor},
			{Lo: 0, Hi: 0.20, Score: 0, Label: LabelVeryPoor},
		},
		Fluency: []Band{
			{Lo: 2.0, Hi: 3.0, Score: 100, Label: LabelOptimal},
			{Lo: 1.5, Hi: 3.5, Score: 80, Label: LabelGood},
			{Lo: 1.0, Hi: 4.0, Score: 60, Label: LabelFair},
			{Lo: 0.5, Hi: 5.0, Score: 40, Label: LabelPoor},
			{Lo: 0, Hi: math.Inf(1), Score: 20, Label: LabelVeryPoor},
		},
		Complexity: []Band{
			{Lo: 12, Hi: 20, Score: 100, Label: LabelOptimal},
			{Lo: 8, Hi: 25, Score: 80, Label: LabelGood},
			{Lo: 6, Hi: 30, Score: 60, Label: LabelFair},
			{Lo: 4, Hi: math.Inf(1), Score: 40, Label: LabelPoor},
			{Lo: 0, Hi: math.Inf(1), Score: 20, Label: LabelVeryPoor},
		},
		Emotional: []Band{
			{Lo: -0.1, Hi: 0.3, Score: 100, Label: LabelOptimal},
			{Lo: -0.3, Hi: 0.5, Score: 80, Label: LabelGood},
			{Lo: -0.5, Hi: 0.7, Score: 60, Label: LabelFair},
			{Lo: -1.0, Hi: 1.0, Score: 40, Label: LabelPoor},
		},
		Risk: []RiskBand{
			{Lo: 80, Tier: RiskLow},
			{Lo: 65, Tier: RiskLowModerate},
			{Lo: 50, Tier: RiskModerate},
			{Lo: 0, Tier: RiskHigher},
		},
		Conjunctions: []string{
			"and", "but", "or", "because", "although",
			"since", "while", "if", "when", "though",
		},
		MinConjunctions:         1,
		SlowRateThreshold:       1.5,
		RecommendationThreshold: 70,
		MinDurationSeconds:      10,
		MaxDurationSeconds:      60,
		BaselineScore:           85,
		BaselineAge:             35,
		AgeSlope:                0.3,
		MinimumAge:              20,
	}
}

// Validate checks the configuration invariants the engine relies on.
func (c Config) Validate() error {
	sum := c.Weights.Lexical + c.Weights.Fluency + c.Weights.Complexity + c.Weights.Emotional
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("component weights must sum to 1.0, got %v", sum)
	}
	tables := map[string][]Band{
		"lexical":    c.Lexical,
		"fluency":    c.Fluency,
		"complexity": c.Complexity,
		"emotional":  c.Emotional,
	}
	for name, bands := range tables {
		if len(bands) == 0 {
			return fmt.Errorf("%s band table is empty", name)
		}
		for i, b := range bands {
			if b.Lo > b.Hi {
				return fmt.Errorf("%s band %d: lower bound %v above upper bound %v", name, i, b.Lo, b.Hi)
			}
			if b.Score < 0 || b.Score > 100 {
				return fmt.Errorf("%s band %d: score %v outside [0,100]", name, i, b.Score)
			}
		}
	}
	if len(c.Risk) == 0 {
		return fmt.Errorf("risk band table is empty")
	}
	if len(c.Conjunctions) == 0 {
		return fmt.Errorf("conjunction set is empty")
	}
	if c.RecommendationThreshold < 0 || c.RecommendationThreshold > 100 {
		return fmt.Errorf("recommendation threshold %v outside [0,100]", c.RecommendationThreshold)
	}
	if c.MinDurationSeconds > c.MaxDurationSeconds {
		return fmt.Errorf("duration range [%v,%v] inverted", c.MinDurationSeconds, c.MaxDurationSeconds)
	}
	return nil
}

// bandFor returns the first band containing v. The last band of every
// default table is a catch-all, but a custom table may leave gaps; in
// that case the final band is used so scoring stays total.
func bandFor(table []Band, v float64) Band {
	for _, b := range table {
		if b.contains(v) {
			return b
		}
	}
	return table[len(table)-1]
}

// lowestBand returns the band with the smallest score in the table,
// used for degenerate inputs (empty transcript, zero duration).
func lowestBand(table []Band) Band {
	low := table[0]
	for _, b := range table[1:] {
		if b.Score < low.Score {
			low = b
		}
	}
	return low
}
