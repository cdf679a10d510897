package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "solar power works", b: "solar power works", want: 1.0},
		{name: "case differences fold away", a: "Solar Power Works", b: "solar power works", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "one empty", a: "abcd", b: "", want: 0.0},
		{name: "single edit", a: "abcd", b: "abce", want: 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarityIsSymmetric(t *testing.T) {
	a, b := "nuclear energy is reliable", "nuclear power is reliable"
	assert.Equal(t, Similarity(a, b), Similarity(b, a))
}

func TestSimilarityCheckerFlagsNearDuplicates(t *testing.T) {
	checker := NewSimilarityChecker(0.9)

	texts := map[string]string{
		"p1": "Renewable energy reduces long term costs for households.",
		"p2": "Renewable energy reduces long term costs for households!",
		"p3": "Cats are better than dogs.",
	}
	warnings := checker.Check([]string{"p1", "p2", "p3"}, texts)

	require.Len(t, warnings, 1)
	assert.Equal(t, "p1", warnings[0].ParticipantA)
	assert.Equal(t, "p2", warnings[0].ParticipantB)
	assert.GreaterOrEqual(t, warnings[0].Similarity, 0.9)
}

func TestSimilarityCheckerNoWarningsBelowThreshold(t *testing.T) {
	checker := NewSimilarityChecker(0.9)

	warnings := checker.Check([]string{"p1", "p2"}, map[string]string{
		"p1": "Remote work increases productivity.",
		"p2": "Cities should invest in public transit.",
	})
	assert.Empty(t, warnings)
}

func TestNewSimilarityCheckerDefaultsThreshold(t *testing.T) {
	checker := NewSimilarityChecker(-1)
	assert.Equal(t, DefaultSimilarityThreshold, checker.threshold)

	checker = NewSimilarityChecker(1.5)
	assert.Equal(t, DefaultSimilarityThreshold, checker.threshold)
}
