package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kina-health/kina/internal/usecase/scoring"
)

func TestReadTranscriptFromFlag(t *testing.T) {
	got, err := readTranscript("hello world", "")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestReadTranscriptFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	require.NoError(t, os.WriteFile(path, []byte("from a file"), 0o600))

	got, err := readTranscript("", path)
	require.NoError(t, err)
	assert.Equal(t, "from a file", got)
}

func TestReadTranscriptRejectsBothSources(t *testing.T) {
	_, err := readTranscript("text", "file.txt")
	assert.Error(t, err)
}

func TestReadTranscriptRequiresASource(t *testing.T) {
	_, err := readTranscript("", "")
	assert.Error(t, err)
}

func TestScoringConfigOverrides(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("scoring.recommendation_threshold", 55.0)
	viper.Set("scoring.minimum_age", 25.0)

	cfg, err := scoringConfig("")
	require.NoError(t, err)

	assert.Equal(t, 55.0, cfg.RecommendationThreshold)
	assert.Equal(t, 25.0, cfg.MinimumAge)
	// Untouched defaults survive the merge.
	assert.Equal(t, scoring.DefaultConfig().Weights, cfg.Weights)
	assert.Len(t, cfg.Lexical, 5)
}

func TestScoringConfigBandsFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "bands.yaml")
	require.NoError(t, os.WriteFile(path, []byte("slow_rate_threshold: 1.2\n"), 0o600))

	cfg, err := scoringConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1.2, cfg.SlowRateThreshold)
	assert.Equal(t, scoring.DefaultConfig().Risk, cfg.Risk)
}
