package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"weights not summing to one", func(c *Config) { c.Weights.Lexical = 0.5 }},
		{"empty band table", func(c *Config) { c.Fluency = nil }},
		{"inverted band", func(c *Config) { c.Lexical[0] = Band{Lo: 1, Hi: 0, Score: 100} }},
		{"score out of range", func(c *Config) { c.Emotional[0].Score = 150 }},
		{"empty risk table", func(c *Config) { c.Risk = nil }},
		{"empty conjunction set", func(c *Config) { c.Conjunctions = nil }},
		{"inverted duration range", func(c *Config) { c.MinDurationSeconds = 90 }},
		{"recommendation threshold out of range", func(c *Config) { c.RecommendationThreshold = 120 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestBandForFirstMatchWins(t *testing.T) {
	cfg := DefaultConfig()

	// Shared boundaries resolve to the earlier, better band.
	assert.Equal(t, 100.0, bandFor(cfg.Fluency, 3.0).Score)
	assert.Equal(t, 80.0, bandFor(cfg.Fluency, 3.5).Score)
	assert.Equal(t, 100.0, bandFor(cfg.Fluency, 2.0).Score)
	assert.Equal(t, 80.0, bandFor(cfg.Fluency, 1.5).Score)
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Weights.Emotional = 0.9
	_, err := NewEngine(cfg, nil)
	assert.Error(t, err)
}
