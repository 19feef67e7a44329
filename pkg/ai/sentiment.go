package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// HuggingFaceSentiment scores transcript polarity through the Hugging
// Face inference API. It satisfies the scoring engine's sentiment
// provider contract.
type HuggingFaceSentiment struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

// NewHuggingFaceSentiment creates a Hugging Face sentiment provider
func NewHuggingFaceSentiment(baseURL, apiKey, model string) *HuggingFaceSentiment {
	return &HuggingFaceSentiment{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type hfRequest struct {
	Inputs string `json:"inputs"`
}

type hfLabelScore struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Polarity returns P(positive) minus P(negative) for the text, in [-1,1]
func (h *HuggingFaceSentiment) Polarity(ctx context.Context, text string) (float64, error) {
	body, err := json.Marshal(hfRequest{Inputs: text})
	if err != nil {
		return 0, err
	}

	url := fmt.Sprintf("%s/models/%s", h.baseURL, h.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return 0, fmt.Errorf("sentiment API returned status %d", resp.StatusCode)
	}

	var out [][]hfLabelScore
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("failed to decode sentiment response: %w", err)
	}
	if len(out) == 0 || len(out[0]) == 0 {
		return 0, fmt.Errorf("sentiment API returned no predictions")
	}

	var polarity float64
	for _, ls := range out[0] {
		switch strings.ToUpper(ls.Label) {
		case "POSITIVE", "LABEL_1":
			polarity += ls.Score
		case "NEGATIVE", "LABEL_0":
			polarity -= ls.Score
		}
	}
	return polarity, nil
}

// polarityLexicon is a small wordlist for the offline provider. Values
// follow the usual sentiment lexicon convention of [-1,1] per word.
var polarityLexicon = map[string]float64{
	"good": 0.7, "great": 0.8, "wonderful": 1.0, "happy": 0.8,
	"love": 0.5, "loved": 0.7, "enjoy": 0.4, "enjoyed": 0.5,
	"beautiful": 0.85, "excited": 0.4, "calm": 0.3, "hopeful": 0.5,
	"pleasant": 0.5, "fine": 0.4, "nice": 0.6, "glad": 0.5,

	"bad": -0.7, "terrible": -1.0, "sad": -0.5, "angry": -0.5,
	"worried": -0.3, "afraid": -0.6, "tired": -0.4, "lonely": -0.5,
	"pain": -0.7, "hate": -0.8, "awful": -1.0, "confused": -0.3,
	"difficult": -0.5, "hard": -0.3, "forgot": -0.2, "lost": -0.4,
}

// LexiconSentiment is the offline fallback provider: average polarity of
// recognized lexicon words, zero when none match. It keeps the pipeline
// deterministic when no inference API is configured.
type LexiconSentiment struct{}

// NewLexiconSentiment creates the offline lexicon provider
func NewLexiconSentiment() *LexiconSentiment {
	return &LexiconSentiment{}
}

// Polarity implements the sentiment provider contract
func (l *LexiconSentiment) Polarity(_ context.Context, text string) (float64, error) {
	var sum float64
	var matched int
	for _, raw := range strings.Fields(strings.ToLower(text)) {
		word := strings.Trim(raw, ".,!?;:'\"()")
		if v, ok := polarityLexicon[word]; ok {
			sum += v
			matched++
		}
	}
	if matched == 0 {
		return 0, nil
	}
	return sum / float64(matched), nil
}
