package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

func TestBuildScoringPrompt(t *testing.T) {
	session := domain.NewDebateSession("universal basic income")
	session.AddArgument("p1", "Alice", "It simplifies welfare.")
	session.AddArgument("p2", "Bob", "It is too expensive.")

	prompt, err := BuildScoringPrompt(session)
	require.NoError(t, err)

	assert.Contains(t, prompt, `"universal basic income"`)
	assert.Contains(t, prompt, "Participant Alice (id: p1):")
	assert.Contains(t, prompt, "Participant Bob (id: p2):")
	assert.Contains(t, prompt, "It simplifies welfare.")
	assert.Contains(t, prompt, `"consensusStatement"`)
	assert.Contains(t, prompt, "ONLY a JSON object")
}

func TestBuildScoringPromptEscapesTemplateSyntax(t *testing.T) {
	session := domain.NewDebateSession("templating")
	session.AddArgument("p1", "Alice", "Consider {{.Secret}} and {{end}} literally.")

	prompt, err := BuildScoringPrompt(session)
	require.NoError(t, err)
	assert.Contains(t, prompt, "Consider {{.Secret}} and {{end}} literally.",
		"argument text passes through verbatim")
}
