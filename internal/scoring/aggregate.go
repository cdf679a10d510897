package scoring

import (
	"fmt"
	"math"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

// RubricWeights defines the fixed weighting of the four rubric criteria.
// The weights must sum to exactly 1.0 so final scores stay within the
// sub-score range.
type RubricWeights struct {
	Clarity   float64 `yaml:"clarity" json:"clarity" validate:"min=0,max=1"`
	Logic     float64 `yaml:"logic" json:"logic" validate:"min=0,max=1"`
	Evidence  float64 `yaml:"evidence" json:"evidence" validate:"min=0,max=1"`
	Relevance float64 `yaml:"relevance" json:"relevance" validate:"min=0,max=1"`
}

// DefaultRubricWeights returns the standard debate rubric weighting:
// clarity 0.25, logic 0.30, evidence 0.25, relevance 0.20.
func DefaultRubricWeights() RubricWeights {
	return RubricWeights{
		Clarity:   0.25,
		Logic:     0.30,
		Evidence:  0.25,
		Relevance: 0.20,
	}
}

// Sum returns the total of the four weights.
func (w RubricWeights) Sum() float64 {
	return w.Clarity + w.Logic + w.Evidence + w.Relevance
}

// Validate checks the individual weight ranges and that the weights sum
// to 1.0 within floating-point tolerance.
func (w RubricWeights) Validate() error {
	if err := validate.Struct(w); err != nil {
		return fmt.Errorf("weight validation failed: %w", err)
	}
	if math.Abs(w.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("rubric weights must sum to 1.0, got %.4f", w.Sum())
	}
	return nil
}

// Aggregator converts validated raw scores into scored results using a
// weighted sum. It is a pure function of its input: the raw scores are
// already range-checked, so aggregation has no failure modes.
type Aggregator struct {
	weights RubricWeights
}

// NewAggregator creates an Aggregator with the given weights.
// Returns an error if the weights are out of range or do not sum to 1.0.
func NewAggregator(weights RubricWeights) (*Aggregator, error) {
	if err := weights.Validate(); err != nil {
		return nil, err
	}
	return &Aggregator{weights: weights}, nil
}

// Aggregate produces a ScoredResult for every participant in the raw
// score mapping. Sub-scores are rounded to one decimal for display and
// the final score is the weighted sum rounded to two decimals, half-up.
// Participant display names are left blank here; the orchestrator fills
// them in from session data.
func (a *Aggregator) Aggregate(raw map[string]domain.RawScore) map[string]domain.ScoredResult {
	results := make(map[string]domain.ScoredResult, len(raw))
	for pid, score := range raw {
		final := score.Clarity*a.weights.Clarity +
			score.Logic*a.weights.Logic +
			score.Evidence*a.weights.Evidence +
			score.Relevance*a.weights.Relevance

		results[pid] = domain.ScoredResult{
			Clarity:    Round1(score.Clarity),
			Logic:      Round1(score.Logic),
			Evidence:   Round1(score.Evidence),
			Relevance:  Round1(score.Relevance),
			FinalScore: Round2(final),
			Reasoning:  score.Reasoning,
		}
	}
	return results
}
