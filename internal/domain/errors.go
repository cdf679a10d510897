package domain

import (
	"errors"
	"fmt"
)

// Common domain errors that can occur during debate analysis.
var (
	// ErrNoArguments indicates analysis was requested on a session with
	// no arguments. This is a precondition violation surfaced to the
	// caller, never recovered by falling back to heuristic scoring.
	ErrNoArguments = errors.New("session has no arguments")

	// ErrNoJudgePayload indicates the judge's raw output contained no
	// JSON object to parse.
	ErrNoJudgePayload = errors.New("no JSON payload found in judge output")

	// ErrEmptyTopic indicates a session was created without a topic.
	ErrEmptyTopic = errors.New("topic cannot be empty")

	// ErrEmptyContent indicates an argument was submitted with no text.
	ErrEmptyContent = errors.New("argument content cannot be empty")
)

// JudgePayloadError reports that the judge's output contained JSON that
// could not be decoded into the expected scoring payload.
type JudgePayloadError struct {
	// RawLength is the length of the raw judge output, kept for
	// diagnostics without logging potentially large text twice.
	RawLength int

	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface for JudgePayloadError.
func (e *JudgePayloadError) Error() string {
	return fmt.Sprintf("malformed judge payload (raw output %d chars): %v", e.RawLength, e.Err)
}

// Unwrap returns the underlying error for errors.Is / errors.As.
func (e *JudgePayloadError) Unwrap() error { return e.Err }

// ScoreValidationError reports the first participant and field that
// violated the scoring contract in a judge payload. Validation fails
// fast: only the first violation is reported.
type ScoreValidationError struct {
	// ParticipantID is the participant whose entry was missing or invalid.
	ParticipantID string

	// Field is the offending sub-score name, or "scores" when the whole
	// participant entry is absent.
	Field string

	// Value is the out-of-range value, meaningful only when Field names
	// a sub-score.
	Value float64

	// Missing is true when the participant entry was absent entirely.
	Missing bool
}

// Error implements the error interface for ScoreValidationError.
func (e *ScoreValidationError) Error() string {
	if e.Missing {
		return fmt.Sprintf("judge payload missing scores for participant %q", e.ParticipantID)
	}
	return fmt.Sprintf("judge payload field %q for participant %q out of range [0,10]: %v",
		e.Field, e.ParticipantID, e.Value)
}
