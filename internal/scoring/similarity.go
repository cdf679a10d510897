package scoring

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// DefaultSimilarityThreshold flags argument pairs whose normalized edit
// similarity is at or above this value as near-duplicates.
const DefaultSimilarityThreshold = 0.9

// SimilarityWarning reports a pair of participants who submitted
// near-identical text. Warnings are informational only and never affect
// scores.
type SimilarityWarning struct {
	// ParticipantA and ParticipantB identify the pair, in first-submission order.
	ParticipantA string
	ParticipantB string

	// Similarity is the normalized edit similarity in [0,1], where 1.0
	// means identical after case folding.
	Similarity float64
}

// SimilarityChecker detects near-duplicate arguments across participants
// using normalized Levenshtein distance on case-folded text.
type SimilarityChecker struct {
	threshold float64
}

// NewSimilarityChecker creates a checker with the given threshold.
// Thresholds outside (0,1] fall back to DefaultSimilarityThreshold.
func NewSimilarityChecker(threshold float64) *SimilarityChecker {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultSimilarityThreshold
	}
	return &SimilarityChecker{threshold: threshold}
}

// Check compares every pair of participant texts and returns a warning
// for each pair at or above the threshold. Pairs follow first-submission
// order so output is deterministic.
func (c *SimilarityChecker) Check(order []string, texts map[string]string) []SimilarityWarning {
	var warnings []SimilarityWarning
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			a, b := order[i], order[j]
			sim := Similarity(texts[a], texts[b])
			if sim >= c.threshold {
				warnings = append(warnings, SimilarityWarning{
					ParticipantA: a,
					ParticipantB: b,
					Similarity:   sim,
				})
			}
		}
	}
	return warnings
}

// Similarity computes normalized edit similarity between two strings:
// 1 - distance/maxRuneLength, on case-folded text. Two empty strings are
// identical by definition.
func Similarity(a, b string) float64 {
	fa := strings.TrimSpace(foldCaser.String(a))
	fb := strings.TrimSpace(foldCaser.String(b))

	longest := len([]rune(fa))
	if l := len([]rune(fb)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}

	// The levenshtein library handles multi-byte UTF-8 correctly.
	distance := levenshtein.ComputeDistance(fa, fb)
	return 1.0 - float64(distance)/float64(longest)
}
