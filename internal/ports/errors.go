package ports

import (
	"errors"
	"fmt"
)

// Common infrastructure errors returned by collaborators.
var (
	// ErrSessionNotFound indicates a session id unknown to the store.
	ErrSessionNotFound = errors.New("session not found")

	// ErrDecisionNotFound indicates no decision has been stored for the
	// requested session.
	ErrDecisionNotFound = errors.New("decision not found")

	// ErrJudgeUnavailable indicates the external judge could not be
	// reached or refused the request. The orchestrator recovers from it
	// by heuristic scoring; it is never surfaced to the caller.
	ErrJudgeUnavailable = errors.New("judge unavailable")
)

// StorageError wraps a failure from the persistence collaborator with
// the operation and session involved. Storage failures propagate
// unchanged to the top-level caller; the core does not retry them.
type StorageError struct {
	// Operation names the store operation that failed.
	Operation string

	// SessionID is the session involved, when applicable.
	SessionID string

	// Err is the underlying failure.
	Err error
}

// Error implements the error interface for StorageError.
func (e *StorageError) Error() string {
	if e.SessionID == "" {
		return fmt.Sprintf("storage error: operation=%s, err=%v", e.Operation, e.Err)
	}
	return fmt.Sprintf("storage error: operation=%s, session=%s, err=%v", e.Operation, e.SessionID, e.Err)
}

// Unwrap returns the underlying error, supporting errors.Is and errors.As.
func (e *StorageError) Unwrap() error { return e.Err }

// NewStorageError creates a StorageError with the given details.
func NewStorageError(operation, sessionID string, err error) *StorageError {
	return &StorageError{
		Operation: operation,
		SessionID: sessionID,
		Err:       err,
	}
}
