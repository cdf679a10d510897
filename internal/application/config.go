package application

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Swamyakshitha/debate-referee/internal/scoring"
)

// Default judge sampling parameters. Low temperature keeps scoring
// consistent across runs; the token budget leaves room for per-participant
// reasoning strings.
const (
	DefaultJudgeTemperature = 0.3
	DefaultJudgeMaxTokens   = 1024
)

// Config holds the tunable parameters of the analysis engine. All values
// have working defaults; a YAML file can override them for deployments
// that need a different rubric weighting or tie sensitivity.
type Config struct {
	// Weights is the rubric weighting applied during aggregation.
	// The four weights must sum to 1.0.
	Weights scoring.RubricWeights `yaml:"weights"`

	// TieThreshold is the absolute final-score gap below which the top
	// two participants tie. Zero selects the engine default.
	TieThreshold float64 `yaml:"tie_threshold" validate:"min=0,max=10"`

	// SimilarityThreshold flags near-duplicate argument pairs. Zero
	// selects the engine default.
	SimilarityThreshold float64 `yaml:"similarity_threshold" validate:"min=0,max=1"`

	// JudgeTemperature is the sampling temperature for the judge call.
	JudgeTemperature float64 `yaml:"judge_temperature" validate:"min=0,max=2"`

	// JudgeMaxTokens bounds the judge's response length.
	JudgeMaxTokens int `yaml:"judge_max_tokens" validate:"min=50,max=8192"`
}

// Package-level validator for configuration structs.
var validate = validator.New()

// DefaultConfig returns the engine defaults: the standard rubric
// weighting, the 0.1 tie threshold, and low-temperature judging.
func DefaultConfig() Config {
	return Config{
		Weights:             scoring.DefaultRubricWeights(),
		TieThreshold:        scoring.DefaultTieThreshold,
		SimilarityThreshold: scoring.DefaultSimilarityThreshold,
		JudgeTemperature:    DefaultJudgeTemperature,
		JudgeMaxTokens:      DefaultJudgeMaxTokens,
	}
}

// Validate checks the configuration's struct tags and the rubric weight
// invariants.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return c.Weights.Validate()
}

// LoadConfig reads a YAML config file, overlaying it on the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
