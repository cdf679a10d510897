package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Argument represents one participant's submission to a debate.
// An argument is immutable once created; it is owned by its session
// and is never mutated or deleted afterwards.
type Argument struct {
	// ID uniquely identifies this argument (a UUID).
	ID string `json:"id"`

	// ParticipantID identifies the participant who submitted the argument.
	ParticipantID string `json:"participant_id"`

	// ParticipantName is the participant's display name at submission time.
	ParticipantName string `json:"participant_name"`

	// Topic is the session topic, denormalized at submission time so an
	// argument remains self-describing when rendered on its own.
	Topic string `json:"topic"`

	// Content is the free-text body of the argument.
	Content string `json:"content"`

	// SubmittedAt records when the participant submitted the argument.
	SubmittedAt time.Time `json:"submitted_at"`
}

// DebateSession is a topic plus an ordered sequence of arguments.
// Argument order is submission order; it matters for display but not
// for scoring. A session is mutated only by AddArgument and
// MarkProcessed.
type DebateSession struct {
	// ID uniquely identifies this session (a UUID).
	ID string `json:"id"`

	// Topic is the debate topic participants argue about.
	Topic string `json:"topic"`

	// CreatedAt records when the session was opened.
	CreatedAt time.Time `json:"created_at"`

	// ProcessedAt is set exactly once, when analysis completes.
	// A non-nil value marks the session as terminal ("processed").
	ProcessedAt *time.Time `json:"processed_at,omitempty"`

	// Arguments holds all submissions in submission order.
	Arguments []Argument `json:"arguments"`
}

// NewDebateSession creates an empty session for the given topic.
func NewDebateSession(topic string) *DebateSession {
	return &DebateSession{
		ID:        uuid.NewString(),
		Topic:     strings.TrimSpace(topic),
		CreatedAt: time.Now().UTC(),
	}
}

// AddArgument appends a new argument for the given participant and
// returns it. The argument inherits the session topic and receives a
// fresh ID and timestamp.
func (s *DebateSession) AddArgument(participantID, participantName, content string) Argument {
	arg := Argument{
		ID:              uuid.NewString(),
		ParticipantID:   participantID,
		ParticipantName: participantName,
		Topic:           s.Topic,
		Content:         content,
		SubmittedAt:     time.Now().UTC(),
	}
	s.Arguments = append(s.Arguments, arg)
	return arg
}

// MarkProcessed stamps the session as processed at the given time.
// Calling it again on an already processed session is a no-op, so the
// first completion timestamp is preserved.
func (s *DebateSession) MarkProcessed(at time.Time) {
	if s.ProcessedAt != nil {
		return
	}
	t := at.UTC()
	s.ProcessedAt = &t
}

// Processed reports whether analysis has completed for this session.
func (s *DebateSession) Processed() bool { return s.ProcessedAt != nil }

// ParticipantIDs returns the distinct participant ids in first-submission
// order. Deterministic ordering keeps scoring and tie-breaking
// reproducible across runs.
func (s *DebateSession) ParticipantIDs() []string {
	seen := make(map[string]struct{}, len(s.Arguments))
	ids := make([]string, 0, len(s.Arguments))
	for _, arg := range s.Arguments {
		if _, ok := seen[arg.ParticipantID]; ok {
			continue
		}
		seen[arg.ParticipantID] = struct{}{}
		ids = append(ids, arg.ParticipantID)
	}
	return ids
}

// ParticipantNames returns a mapping from participant id to display name,
// taking the name from the participant's first submission.
func (s *DebateSession) ParticipantNames() map[string]string {
	names := make(map[string]string, len(s.Arguments))
	for _, arg := range s.Arguments {
		if _, ok := names[arg.ParticipantID]; !ok {
			names[arg.ParticipantID] = arg.ParticipantName
		}
	}
	return names
}

// ArgumentsByParticipant returns each participant's submissions
// concatenated in submission order, keyed by participant id.
// Participants with multiple submissions are scored on the combined text.
func (s *DebateSession) ArgumentsByParticipant() map[string]string {
	combined := make(map[string]string, len(s.Arguments))
	for _, arg := range s.Arguments {
		if existing, ok := combined[arg.ParticipantID]; ok {
			combined[arg.ParticipantID] = existing + "\n" + arg.Content
			continue
		}
		combined[arg.ParticipantID] = arg.Content
	}
	return combined
}
