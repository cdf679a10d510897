package application

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swamyakshitha/debate-referee/internal/scoring"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()
	require.NoError(t, config.Validate())

	assert.Equal(t, scoring.DefaultRubricWeights(), config.Weights)
	assert.Equal(t, scoring.DefaultTieThreshold, config.TieThreshold)
	assert.Equal(t, DefaultJudgeTemperature, config.JudgeTemperature)
	assert.Equal(t, DefaultJudgeMaxTokens, config.JudgeMaxTokens)
}

func TestLoadConfigEmptyPathReturnsDefaults(t *testing.T) {
	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)
}

func TestLoadConfigOverlaysFile(t *testing.T) {
	path := writeConfig(t, `
tie_threshold: 0.25
judge_temperature: 0.7
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 0.25, config.TieThreshold)
	assert.Equal(t, 0.7, config.JudgeTemperature)
	assert.Equal(t, scoring.DefaultRubricWeights(), config.Weights,
		"unset keys keep their defaults")
}

func TestLoadConfigCustomWeights(t *testing.T) {
	path := writeConfig(t, `
weights:
  clarity: 0.4
  logic: 0.3
  evidence: 0.2
  relevance: 0.1
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.4, config.Weights.Clarity)
}

func TestLoadConfigRejectsInvalidWeights(t *testing.T) {
	path := writeConfig(t, `
weights:
  clarity: 0.9
  logic: 0.9
  evidence: 0.9
  relevance: 0.9
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "weights: [not a mapping")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}
