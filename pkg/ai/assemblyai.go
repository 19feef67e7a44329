package ai

import (
	"context"
	"fmt"
	"io"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

// AssemblyAIClient wraps the official SDK client with the operations the
// analysis pipeline needs: upload, webhook-based submit, and fetch.
type AssemblyAIClient struct {
	client *aai.Client
}

// NewAssemblyAIClient creates an AssemblyAI client
func NewAssemblyAIClient(apiKey string) *AssemblyAIClient {
	return &AssemblyAIClient{client: aai.NewClient(apiKey)}
}

// NewAssemblyAIClientWithBaseURL creates a client pointed at a custom API
// endpoint, used by tests.
func NewAssemblyAIClientWithBaseURL(apiKey, baseURL string) *AssemblyAIClient {
	return &AssemblyAIClient{client: aai.NewClientWithOptions(
		aai.WithAPIKey(apiKey),
		aai.WithBaseURL(baseURL),
	)}
}

// Upload streams an audio file to AssemblyAI and returns its upload URL
func (c *AssemblyAIClient) Upload(ctx context.Context, audio io.Reader) (string, error) {
	return c.client.Upload(ctx, audio)
}

// SubmitOptions controls a transcription submission
type SubmitOptions struct {
	LanguageCode           string
	WebhookURL             string
	WebhookAuthHeaderName  string
	WebhookAuthHeaderValue string
}

// Submit requests a transcription with sentiment analysis enabled and
// returns the transcript ID. AssemblyAI calls the webhook URL when done.
func (c *AssemblyAIClient) Submit(ctx context.Context, audioURL string, opts SubmitOptions) (string, error) {
	params := &aai.TranscriptOptionalParams{
		SentimentAnalysis: aai.Bool(true),
		Punctuate:         aai.Bool(true),
	}
	if opts.LanguageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(opts.LanguageCode)
	} else {
		params.LanguageDetection = aai.Bool(true)
	}
	if opts.WebhookURL != "" {
		params.WebhookURL = aai.String(opts.WebhookURL)
	}
	if opts.WebhookAuthHeaderName != "" {
		params.WebhookAuthHeaderName = aai.String(opts.WebhookAuthHeaderName)
		params.WebhookAuthHeaderValue = aai.String(opts.WebhookAuthHeaderValue)
	}

	transcript, err := c.client.Transcripts.SubmitFromURL(ctx, audioURL, params)
	if err != nil {
		return "", err
	}
	if transcript.ID == nil {
		return "", fmt.Errorf("assemblyai returned no transcript ID")
	}
	return *transcript.ID, nil
}

// GetTranscript fetches a transcript by ID
func (c *AssemblyAIClient) GetTranscript(ctx context.Context, id string) (aai.Transcript, error) {
	return c.client.Transcripts.Get(ctx, id)
}

// AggregatePolarity collapses AssemblyAI's per-sentence sentiment labels
// into a single polarity in [-1,1]: positive sentences add their
// confidence, negative sentences subtract it, neutral sentences count
// toward the denominator only.
func AggregatePolarity(results []aai.SentimentAnalysisResult) float64 {
	if len(results) == 0 {
		return 0
	}
	var sum float64
	for _, r := range results {
		conf := 1.0
		if r.Confidence != nil {
			conf = *r.Confidence
		}
		switch string(r.Sentiment) {
		case "POSITIVE":
			sum += conf
		case "NEGATIVE":
			sum -= conf
		}
	}
	return sum / float64(len(results))
}
