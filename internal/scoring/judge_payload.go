package scoring

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

// judgePayload is the exact JSON shape the judge is instructed to return.
type judgePayload struct {
	// Scores maps participant id to that participant's rubric entry.
	Scores map[string]judgeEntry `json:"scores"`

	// ConsensusStatement is the judge's neutral summary of the debate.
	ConsensusStatement string `json:"consensusStatement"`
}

// judgeEntry is one participant's rubric entry in the judge payload.
type judgeEntry struct {
	Clarity   float64 `json:"clarity"`
	Logic     float64 `json:"logic"`
	Evidence  float64 `json:"evidence"`
	Relevance float64 `json:"relevance"`
	Reasoning string  `json:"reasoning"`
}

// ParseJudgePayload extracts and validates the scoring payload from raw
// judge output. It returns a RawScore for every participant id in
// participantIDs plus the consensus statement.
//
// Failure modes: domain.ErrNoJudgePayload when the text contains no JSON
// object, a domain.JudgePayloadError when the JSON cannot be decoded, and
// a domain.ScoreValidationError naming the first missing participant or
// out-of-range field. Extra participant entries beyond the session are
// tolerated and ignored.
func ParseJudgePayload(raw string, participantIDs []string) (map[string]domain.RawScore, string, error) {
	jsonStr := ExtractJSONObject(raw)
	if jsonStr == "" {
		return nil, "", fmt.Errorf("judge output %d chars: %w", len(raw), domain.ErrNoJudgePayload)
	}

	var payload judgePayload
	if err := json.Unmarshal([]byte(jsonStr), &payload); err != nil {
		return nil, "", &domain.JudgePayloadError{RawLength: len(raw), Err: err}
	}

	scores := make(map[string]domain.RawScore, len(participantIDs))
	for _, pid := range participantIDs {
		entry, ok := payload.Scores[pid]
		if !ok {
			return nil, "", &domain.ScoreValidationError{ParticipantID: pid, Field: "scores", Missing: true}
		}

		// Fail fast on the first out-of-range field, in rubric order.
		fields := []struct {
			name  string
			value float64
		}{
			{"clarity", entry.Clarity},
			{"logic", entry.Logic},
			{"evidence", entry.Evidence},
			{"relevance", entry.Relevance},
		}
		for _, f := range fields {
			if f.value < ScoreMin || f.value > ScoreMax {
				return nil, "", &domain.ScoreValidationError{
					ParticipantID: pid,
					Field:         f.name,
					Value:         f.value,
				}
			}
		}

		scores[pid] = domain.RawScore{
			Clarity:   entry.Clarity,
			Logic:     entry.Logic,
			Evidence:  entry.Evidence,
			Relevance: entry.Relevance,
			Reasoning: entry.Reasoning,
		}
	}

	return scores, payload.ConsensusStatement, nil
}

// ExtractJSONObject extracts the first balanced JSON object from text
// that may contain surrounding prose or markdown code fences. It returns
// an empty string when no object is found.
func ExtractJSONObject(response string) string {
	response = strings.TrimSpace(response)

	// Prefer an explicit ```json fence when present.
	if idx := strings.Index(response, "```json"); idx != -1 {
		start := idx + len("```json")
		if end := strings.Index(response[start:], "```"); end != -1 {
			return strings.TrimSpace(response[start : start+end])
		}
	}

	// A generic fence may also wrap the object.
	if idx := strings.Index(response, "```"); idx != -1 {
		start := idx + 3
		if nl := strings.Index(response[start:], "\n"); nl != -1 {
			start += nl + 1
		}
		if end := strings.Index(response[start:], "```"); end != -1 {
			candidate := strings.TrimSpace(response[start : start+end])
			if strings.HasPrefix(candidate, "{") {
				return candidate
			}
		}
	}

	start := strings.Index(response, "{")
	if start == -1 {
		return ""
	}

	// Find the matching closing brace, skipping braces inside strings.
	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(response); i++ {
		c := response[i]

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch c {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return response[start : i+1]
			}
		}
	}

	return ""
}
