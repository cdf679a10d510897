package ports

import (
	"context"
	"time"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

// LLMClient defines the interface for the external judge: a black-box
// text generator that may fail or return malformed output.
// Implementations handle provider-specific details like authentication,
// request formatting, and response parsing; the scoring core treats the
// client as opaque and does not retry it.
type LLMClient interface {
	// Complete sends a prompt to the judge and returns the raw generated
	// text. The options map carries provider-agnostic sampling settings:
	//   - "temperature": float64
	//   - "max_tokens": int
	//   - "model": string (override the configured model)
	Complete(ctx context.Context, prompt string, options map[string]any) (string, error)

	// EstimateTokens returns an approximate token count for the given
	// text, used for prompt budgeting before a request is made.
	EstimateTokens(text string) (int, error)

	// GetModel returns the model identifier used by this client.
	GetModel() string
}

// SessionStore defines the persistence collaborator for sessions and
// decisions. Implementations may use flat files, a database, or memory;
// the scoring core only depends on this contract.
type SessionStore interface {
	// GetSession loads a session by id.
	// Returns an error wrapping ErrSessionNotFound for unknown ids.
	GetSession(ctx context.Context, id string) (*domain.DebateSession, error)

	// SaveSession persists a new or updated session.
	SaveSession(ctx context.Context, session *domain.DebateSession) error

	// SaveDecision persists the decision produced for a session.
	SaveDecision(ctx context.Context, decision *domain.DebateDecision) error

	// GetDecision loads the persisted decision for a session id.
	// Returns an error wrapping ErrDecisionNotFound when analysis has
	// not been run or its result was not stored.
	GetDecision(ctx context.Context, sessionID string) (*domain.DebateDecision, error)

	// MarkProcessed stamps the session's processed timestamp.
	MarkProcessed(ctx context.Context, sessionID string, at time.Time) error

	// ListSessions returns all known sessions, newest first.
	ListSessions(ctx context.Context) ([]*domain.DebateSession, error)
}

// MetricsCollector defines the interface for collecting operational
// metrics. Implementations integrate with observability platforms such
// as Prometheus; a nil collector disables metrics.
type MetricsCollector interface {
	// RecordLatency records the execution time of an operation.
	RecordLatency(operation string, duration time.Duration, labels map[string]string)

	// RecordCounter increments a counter metric.
	RecordCounter(metric string, value float64, labels map[string]string)

	// RecordHistogram records a value in a histogram, used for score
	// distributions and request latencies.
	RecordHistogram(metric string, value float64, labels map[string]string)
}
