package ai

import (
	"math"
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
)

func f64(v float64) *float64 { return &v }

func TestAggregatePolarity(t *testing.T) {
	results := []aai.SentimentAnalysisResult{
		{Sentiment: "POSITIVE", Confidence: f64(0.9)},
		{Sentiment: "NEGATIVE", Confidence: f64(0.3)},
		{Sentiment: "NEUTRAL", Confidence: f64(0.8)},
	}

	got := AggregatePolarity(results)
	want := (0.9 - 0.3) / 3.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %f, got %f", want, got)
	}
}

func TestAggregatePolarity_Empty(t *testing.T) {
	if got := AggregatePolarity(nil); got != 0 {
		t.Fatalf("expected 0 for no results, got %f", got)
	}
}

func TestAggregatePolarity_MissingConfidence(t *testing.T) {
	results := []aai.SentimentAnalysisResult{
		{Sentiment: "POSITIVE"},
		{Sentiment: "POSITIVE"},
	}
	if got := AggregatePolarity(results); got != 1.0 {
		t.Fatalf("expected full-confidence fallback, got %f", got)
	}
}

func TestVerifyHMAC(t *testing.T) {
	payload := []byte(`{"transcript_id":"abc","status":"completed"}`)

	// Signature computed with secret "test-secret" over the payload above.
	const valid = "a51878996d1a85f0023504cfe007522dc824453f402b97cbc1b41fcbba1f0591"

	if !VerifyHMAC("test-secret", payload, valid) {
		t.Fatalf("valid signature must verify")
	}
	if VerifyHMAC("other-secret", payload, valid) {
		t.Fatalf("wrong secret must not verify")
	}
	if VerifyHMAC("", payload, "deadbeef") {
		t.Fatalf("empty secret must never verify")
	}
	if VerifyHMAC("test-secret", payload, "") {
		t.Fatalf("empty signature must never verify")
	}
	if VerifyHMAC("test-secret", payload, "not-a-real-signature") {
		t.Fatalf("bogus signature must not verify")
	}
}
