package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

func sampleDecision() *domain.DebateDecision {
	return &domain.DebateDecision{
		SessionID: "s1",
		Topic:     "universal basic income",
		Results: map[string]domain.ScoredResult{
			"p1": {ParticipantName: "Alice", Clarity: 8, Logic: 7.5, Evidence: 6, Relevance: 9, FinalScore: 7.55},
			"p2": {ParticipantName: "Bob", Clarity: 5, Logic: 6, Evidence: 4, Relevance: 7, FinalScore: 5.45},
		},
		Winner:      &domain.Winner{ParticipantID: "p1", ParticipantName: "Alice", FinalScore: 7.55},
		Consensus:   "Alice argued from evidence.",
		CompletedAt: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestDecision(t *testing.T) {
	out := Decision(sampleDecision())

	assert.Contains(t, out, "universal basic income")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "7.55")
	assert.Contains(t, out, "Winner: Alice (7.55)")
	assert.Contains(t, out, "Consensus: Alice argued from evidence.")

	// Higher score listed first.
	assert.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Bob"))
}

func TestDecisionTie(t *testing.T) {
	decision := sampleDecision()
	decision.Winner = nil
	decision.IsTie = true

	out := Decision(decision)
	assert.Contains(t, out, "tie")
	assert.NotContains(t, out, "Winner:")
}

func TestSessionList(t *testing.T) {
	processed := domain.NewDebateSession("first topic")
	processed.MarkProcessed(time.Now())
	open := domain.NewDebateSession("second topic")

	out := SessionList([]*domain.DebateSession{processed, open})
	assert.Contains(t, out, "first topic")
	assert.Contains(t, out, "processed")
	assert.Contains(t, out, "open")
}

func TestSessionListEmpty(t *testing.T) {
	assert.Contains(t, SessionList(nil), "No sessions yet")
}

func TestSession(t *testing.T) {
	session := domain.NewDebateSession("transit funding")
	session.AddArgument("p1", "Alice", "Buses move more people per lane.")

	out := Session(session)
	assert.Contains(t, out, "transit funding")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Buses move more people per lane.")
}

func TestSimilarityWarning(t *testing.T) {
	out := SimilarityWarning("Alice", "Bob", 0.95)
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, "Bob")
	assert.Contains(t, out, "95%")
}
