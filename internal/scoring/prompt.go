package scoring

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

// scoringPromptText is the instruction sent to the external judge. It
// embeds the topic and every argument labeled by participant, requests
// rubric scores keyed by participant id, and demands a JSON-only reply
// in the exact shape ParseJudgePayload expects.
const scoringPromptText = `You are an impartial debate judge. Score every argument below on the topic {{printf "%q" .Topic}}.

Rate each participant on four criteria, each from 0 to 10:
- clarity: how clearly the argument is structured and expressed
- logic: how sound and well developed the reasoning is
- evidence: how well the argument is supported by facts and examples
- relevance: how directly the argument addresses the topic
{{range .Arguments}}
Participant {{.ParticipantName}} (id: {{.ParticipantID}}):
{{.Content}}
{{end}}
Respond with ONLY a JSON object in exactly this format, using the participant ids shown above as keys:
{"scores": {"<participantId>": {"clarity": n, "logic": n, "evidence": n, "relevance": n, "reasoning": "..."}}, "consensusStatement": "..."}`

// scoringPromptTemplate is compiled once; template substitution keeps
// argument text from being interpreted as template syntax.
var scoringPromptTemplate = template.Must(template.New("scoringPrompt").Parse(scoringPromptText))

// BuildScoringPrompt renders the judge instruction for a session.
func BuildScoringPrompt(session *domain.DebateSession) (string, error) {
	var buf bytes.Buffer
	data := struct {
		Topic     string
		Arguments []domain.Argument
	}{
		Topic:     session.Topic,
		Arguments: session.Arguments,
	}
	if err := scoringPromptTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render scoring prompt: %w", err)
	}
	return buf.String(), nil
}
