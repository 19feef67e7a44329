package ai

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHuggingFacePolarity_Positive(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("expected POST got %s", r.Method)
		}
		var payload map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if payload["inputs"] == "" {
			t.Fatalf("missing inputs field")
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode([][]map[string]interface{}{{
			{"label": "POSITIVE", "score": 0.9},
			{"label": "NEGATIVE", "score": 0.1},
		}})
	}))
	defer ts.Close()

	provider := NewHuggingFaceSentiment(ts.URL, "test-key", "test-model")
	polarity, err := provider.Polarity(context.Background(), "I had a wonderful day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(polarity-0.8) > 1e-9 {
		t.Fatalf("expected polarity 0.8, got %f", polarity)
	}
}

func TestHuggingFacePolarity_ServerError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	provider := NewHuggingFaceSentiment(ts.URL, "", "test-model")
	if _, err := provider.Polarity(context.Background(), "hello"); err == nil {
		t.Fatalf("expected error on 503 response")
	}
}

func TestLexiconPolarity(t *testing.T) {
	provider := NewLexiconSentiment()

	polarity, err := provider.Polarity(context.Background(), "Today was a wonderful, happy day.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if polarity <= 0 {
		t.Fatalf("expected positive polarity, got %f", polarity)
	}

	polarity, err = provider.Polarity(context.Background(), "It was a terrible and sad time.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if polarity >= 0 {
		t.Fatalf("expected negative polarity, got %f", polarity)
	}

	polarity, err = provider.Polarity(context.Background(), "The meeting starts at noon.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if polarity != 0 {
		t.Fatalf("expected neutral polarity for unmatched text, got %f", polarity)
	}
}
