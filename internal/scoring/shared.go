// Package scoring implements the rubric scoring engine for debates:
// deterministic heuristic scoring, judge payload parsing and validation,
// weighted aggregation, and winner resolution.
package scoring

import (
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
)

// Rubric bounds and thresholds. These values are observable behavior:
// changing them changes scores and tie decisions, so they are named
// constants rather than re-derived.
const (
	// ClarityBase is the clarity score for unstructured text.
	ClarityBase = 6.0
	// ClarityStructured is the clarity score when a structure marker occurs.
	ClarityStructured = 8.0
	// ClarityMin and ClarityMax clamp the clarity sub-score.
	ClarityMin = 5.0
	ClarityMax = 10.0

	// LogicDeveloped is the logic score for arguments longer than
	// LogicWordThreshold words; LogicBase applies otherwise.
	LogicDeveloped     = 7.0
	LogicBase          = 5.0
	LogicWordThreshold = 50
	// LogicMin and LogicMax clamp the logic sub-score.
	LogicMin = 4.0
	LogicMax = 10.0

	// EvidenceCited is the evidence score when an evidence marker occurs;
	// EvidenceBase applies otherwise.
	EvidenceCited = 8.0
	EvidenceBase  = 4.0
	// EvidenceMin and EvidenceMax clamp the evidence sub-score.
	EvidenceMin = 3.0
	EvidenceMax = 10.0

	// RelevanceFloor is added to the scaled topic-overlap ratio.
	RelevanceFloor = 5.0
	// RelevanceMin and RelevanceMax clamp the relevance sub-score.
	RelevanceMin = 5.0
	RelevanceMax = 10.0

	// ScoreMin and ScoreMax bound every rubric sub-score.
	ScoreMin = 0.0
	ScoreMax = 10.0

	// DefaultTieThreshold is the absolute final-score gap below which the
	// top two participants are declared tied. It applies to the rounded
	// final scores, not a relative percentage.
	DefaultTieThreshold = 0.1
)

// structureMarkers are the discourse markers whose presence raises the
// clarity score. Matching is case-insensitive substring matching.
var structureMarkers = []string{
	"first", "second", "third", "furthermore", "moreover", "additionally",
	"however", "therefore", "consequently", "in conclusion", "to summarize",
}

// evidenceMarkers are the citation phrases whose presence raises the
// evidence score. Matching is case-insensitive substring matching.
var evidenceMarkers = []string{
	"according to", "research shows", "studies indicate", "data suggests",
	"statistics show", "evidence shows", "proven", "demonstrated",
	"example", "for instance", "case study", "survey", "poll",
}

// Package-level validator instance for configuration validation.
// Uses go-playground/validator v10 for struct tag-based validation.
var validate = validator.New()

// foldCaser performs Unicode case folding for case-insensitive matching.
var foldCaser = cases.Fold()

// containsAnyMarker reports whether the folded text contains any of the
// given markers as a substring.
func containsAnyMarker(text string, markers []string) bool {
	folded := foldCaser.String(text)
	for _, marker := range markers {
		if strings.Contains(folded, foldCaser.String(marker)) {
			return true
		}
	}
	return false
}

// tokenize splits text into case-folded whitespace-delimited words.
func tokenize(text string) []string {
	return strings.Fields(foldCaser.String(text))
}

// clampScore restricts a sub-score to the [min, max] range.
func clampScore(score, min, max float64) float64 {
	if score < min {
		return min
	}
	if score > max {
		return max
	}
	return score
}

// roundTo rounds half-up at the given number of decimal places.
// Scores are non-negative so the floor+0.5 form is exact half-up.
func roundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Floor(value*shift+0.5) / shift
}

// Round1 rounds a sub-score to one decimal place for display.
func Round1(value float64) float64 { return roundTo(value, 1) }

// Round2 rounds a final score to two decimal places.
func Round2(value float64) float64 { return roundTo(value, 2) }
