package scoring

import (
	"fmt"
	"strings"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

// HeuristicScorer produces deterministic rule-based rubric scores when no
// external judge is available. It is a pure function of the session text:
// no external calls, no failure modes. Empty text still receives the base
// scores.
//
// The scorer guarantees by construction that every participant id present
// in the session receives exactly one RawScore and no others.
type HeuristicScorer struct{}

// NewHeuristicScorer creates a heuristic scorer.
func NewHeuristicScorer() *HeuristicScorer { return &HeuristicScorer{} }

// Score computes a RawScore for every participant in the session plus a
// consensus statement. Participants with multiple submissions are scored
// on their combined text. Evaluation is sequential in first-submission
// order so reasoning strings and downstream tie-breaking stay
// reproducible.
func (h *HeuristicScorer) Score(session *domain.DebateSession) (map[string]domain.RawScore, string) {
	texts := session.ArgumentsByParticipant()

	scores := make(map[string]domain.RawScore, len(texts))
	for _, pid := range session.ParticipantIDs() {
		scores[pid] = h.scoreText(session.Topic, texts[pid])
	}

	consensus := fmt.Sprintf(
		"Heuristic analysis of %d argument(s) on %q. Scores were derived from "+
			"structure, length, evidence markers and topic overlap; results may "+
			"differ from judge-based analysis.",
		len(session.Arguments), session.Topic)

	return scores, consensus
}

// scoreText applies the rubric rules to one participant's text.
func (h *HeuristicScorer) scoreText(topic, text string) domain.RawScore {
	hasStructure := containsAnyMarker(text, structureMarkers)
	hasEvidence := containsAnyMarker(text, evidenceMarkers)
	wordCount := len(strings.Fields(text))

	clarity := ClarityBase
	if hasStructure {
		clarity = ClarityStructured
	}

	logic := LogicBase
	if wordCount > LogicWordThreshold {
		logic = LogicDeveloped
	}

	evidence := EvidenceBase
	if hasEvidence {
		evidence = EvidenceCited
	}

	return domain.RawScore{
		Clarity:   clampScore(clarity, ClarityMin, ClarityMax),
		Logic:     clampScore(logic, LogicMin, LogicMax),
		Evidence:  clampScore(evidence, EvidenceMin, EvidenceMax),
		Relevance: clampScore(relevanceScore(topic, text), RelevanceMin, RelevanceMax),
		Reasoning: heuristicReasoning(hasStructure, hasEvidence, wordCount),
	}
}

// relevanceScore measures topic overlap: the fraction of topic words that
// appear as a substring of some argument word, or contain one, scaled to
// the rubric range with a floor.
func relevanceScore(topic, text string) float64 {
	topicWords := tokenize(topic)
	if len(topicWords) == 0 {
		return RelevanceFloor
	}
	argWords := tokenize(text)

	matched := 0
	for _, tw := range topicWords {
		for _, aw := range argWords {
			if strings.Contains(aw, tw) || strings.Contains(tw, aw) {
				matched++
				break
			}
		}
	}

	ratio := float64(matched) / float64(len(topicWords))
	return ratio*10 + RelevanceFloor
}

// heuristicReasoning renders the fixed reasoning template for one
// participant's rubric assessment.
func heuristicReasoning(hasStructure, hasEvidence bool, wordCount int) string {
	structure := "no structure markers"
	if hasStructure {
		structure = "structure markers present"
	}
	evidence := "no evidence markers"
	if hasEvidence {
		evidence = "evidence markers present"
	}
	return fmt.Sprintf("Heuristic assessment: %s, %s, %d words.", structure, evidence, wordCount)
}
