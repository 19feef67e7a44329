package scoring

// Signal names the four independent speech signals.
type Signal string

const (
	SignalLexical    Signal = "lexical_diversity"
	SignalFluency    Signal = "speech_fluency"
	SignalComplexity Signal = "sentence_complexity"
	SignalEmotional  Signal = "emotional_expression"
)

// Input is one analysis request. Text is the transcript as returned by
// the transcription collaborator; DurationSeconds is the recording
// length. Polarity, when set, is a precomputed sentiment value from the
// transcription pipeline and bypasses the engine's sentiment provider.
type Input struct {
	Text            string   `json:"text"`
	DurationSeconds float64  `json:"duration_seconds"`
	Language        string   `json:"language"`
	Polarity        *float64 `json:"polarity,omitempty"`
}

// ComponentScore is the banded outcome of a single signal. Raw is the
// signal's primary metric (diversity ratio, words/sec, average sentence
// length, or polarity).
type ComponentScore struct {
	Signal Signal  `json:"signal"`
	Raw    float64 `json:"raw"`
	Score  float64 `json:"score"`
	Label  Label   `json:"label"`
}

// Result is the immutable outcome of one analysis. It is a pure
// function of the input; identical inputs produce identical results.
type Result struct {
	Language        string  `json:"language"`
	DurationSeconds float64 `json:"duration_seconds"`

	TotalWords        int     `json:"total_words"`
	UniqueWords       int     `json:"unique_words"`
	SentenceCount     int     `json:"sentence_count"`
	ConjunctionCount  int     `json:"conjunction_count"`
	WordsPerSecond    float64 `json:"words_per_second"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	Polarity          float64 `json:"polarity"`

	Lexical    ComponentScore `json:"lexical"`
	Fluency    ComponentScore `json:"fluency"`
	Complexity ComponentScore `json:"complexity"`
	Emotional  ComponentScore `json:"emotional"`

	Overall      float64  `json:"overall"`
	RiskTier     RiskTier `json:"risk_tier"`
	CognitiveAge float64  `json:"cognitive_age"`

	Recommendations []string `json:"recommendations"`
	Warnings        []string `json:"warnings,omitempty"`
}

// Components returns the four component scores in the fixed report
// order: lexical, fluency, complexity, emotional.
func (r *Result) Components() []ComponentScore {
	return []ComponentScore{r.Lexical, r.Fluency, r.Complexity, r.Emotional}
}
