package domain

import (
	"time"
)

// RawScore holds the four rubric sub-scores for one participant, each
// constrained to [0,10], plus a short human-readable reasoning string.
// A RawScore is produced by either the judge path or the heuristic
// scorer, never both for the same run.
type RawScore struct {
	// Clarity measures how clearly the argument is structured (0-10).
	Clarity float64 `json:"clarity" validate:"min=0,max=10"`

	// Logic measures the soundness and development of the reasoning (0-10).
	Logic float64 `json:"logic" validate:"min=0,max=10"`

	// Evidence measures the use of supporting facts and examples (0-10).
	Evidence float64 `json:"evidence" validate:"min=0,max=10"`

	// Relevance measures how closely the argument addresses the topic (0-10).
	Relevance float64 `json:"relevance" validate:"min=0,max=10"`

	// Reasoning explains why the sub-scores were assigned.
	Reasoning string `json:"reasoning"`
}

// ScoredResult is the derived, per-participant outcome of aggregation.
// Sub-scores are rounded to one decimal for display and FinalScore is
// the weighted sum rounded to two decimals. Never mutated after creation.
type ScoredResult struct {
	// ParticipantName is the display name, populated by the orchestrator
	// from session data; the scoring layer works on participant ids only.
	ParticipantName string `json:"participant_name"`

	// Clarity, Logic, Evidence and Relevance are the display-rounded
	// rubric sub-scores.
	Clarity   float64 `json:"clarity"`
	Logic     float64 `json:"logic"`
	Evidence  float64 `json:"evidence"`
	Relevance float64 `json:"relevance"`

	// FinalScore is the weighted sum of the sub-scores, rounded to two
	// decimal places.
	FinalScore float64 `json:"final_score"`

	// Reasoning carries the scorer's explanation through to presentation.
	Reasoning string `json:"reasoning"`
}

// Winner references the participant declared winner of a debate.
type Winner struct {
	// ParticipantID identifies the winning participant.
	ParticipantID string `json:"participant_id"`

	// ParticipantName is the winner's display name.
	ParticipantName string `json:"participant_name"`

	// FinalScore is the winner's aggregated score.
	FinalScore float64 `json:"final_score"`
}

// DebateDecision is the final outcome of analyzing one session.
//
// Invariant: Winner is nil if and only if IsTie is true or Results is
// empty; with exactly one participant IsTie is always false and that
// participant is the winner. Every participant id present in the
// session's arguments appears exactly once in Results.
type DebateDecision struct {
	// SessionID identifies the analyzed session.
	SessionID string `json:"session_id"`

	// Topic is the debate topic, copied from the session.
	Topic string `json:"topic"`

	// Results maps participant id to that participant's scored result.
	Results map[string]ScoredResult `json:"results"`

	// Winner is the winning participant, or nil on a tie or when there
	// are no results.
	Winner *Winner `json:"winner,omitempty"`

	// IsTie reports that the top two final scores were too close to call.
	IsTie bool `json:"is_tie"`

	// Consensus is a neutral natural-language summary of the outcome,
	// produced by whichever scoring path ran.
	Consensus string `json:"consensus"`

	// CompletedAt records when the analysis finished.
	CompletedAt time.Time `json:"completed_at"`
}
