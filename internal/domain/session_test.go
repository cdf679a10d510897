package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDebateSession(t *testing.T) {
	session := NewDebateSession("  Should cities ban cars?  ")

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, "Should cities ban cars?", session.Topic, "topic should be trimmed")
	assert.False(t, session.CreatedAt.IsZero())
	assert.Nil(t, session.ProcessedAt)
	assert.Empty(t, session.Arguments)
}

func TestAddArgument(t *testing.T) {
	session := NewDebateSession("remote work")

	first := session.AddArgument("p1", "Alice", "remote work boosts focus")
	second := session.AddArgument("p2", "Bob", "offices build culture")

	require.Len(t, session.Arguments, 2)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "remote work", first.Topic, "argument inherits the session topic")
	assert.Equal(t, "p1", session.Arguments[0].ParticipantID, "submission order is preserved")
	assert.Equal(t, "p2", session.Arguments[1].ParticipantID)
	assert.False(t, first.SubmittedAt.IsZero())
}

func TestMarkProcessedIsIdempotent(t *testing.T) {
	session := NewDebateSession("topic")
	first := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	later := first.Add(time.Hour)

	session.MarkProcessed(first)
	require.True(t, session.Processed())
	session.MarkProcessed(later)

	assert.Equal(t, first, *session.ProcessedAt, "first completion timestamp is preserved")
}

func TestParticipantIDs(t *testing.T) {
	session := NewDebateSession("topic")
	session.AddArgument("p2", "Bob", "one")
	session.AddArgument("p1", "Alice", "two")
	session.AddArgument("p2", "Bob", "three")

	assert.Equal(t, []string{"p2", "p1"}, session.ParticipantIDs(),
		"ids follow first-submission order without duplicates")
}

func TestParticipantNames(t *testing.T) {
	session := NewDebateSession("topic")
	session.AddArgument("p1", "Alice", "one")
	session.AddArgument("p1", "Alice the Second", "two")

	names := session.ParticipantNames()
	assert.Equal(t, "Alice", names["p1"], "the first-seen name wins")
}

func TestArgumentsByParticipant(t *testing.T) {
	tests := []struct {
		name string
		args [][3]string // participantID, name, content
		want map[string]string
	}{
		{
			name: "single submission each",
			args: [][3]string{{"p1", "A", "alpha"}, {"p2", "B", "beta"}},
			want: map[string]string{"p1": "alpha", "p2": "beta"},
		},
		{
			name: "multiple submissions are combined in order",
			args: [][3]string{{"p1", "A", "alpha"}, {"p2", "B", "beta"}, {"p1", "A", "gamma"}},
			want: map[string]string{"p1": "alpha\ngamma", "p2": "beta"},
		},
		{
			name: "no arguments",
			args: nil,
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := NewDebateSession("topic")
			for _, a := range tt.args {
				session.AddArgument(a[0], a[1], a[2])
			}
			assert.Equal(t, tt.want, session.ArgumentsByParticipant())
		})
	}
}
