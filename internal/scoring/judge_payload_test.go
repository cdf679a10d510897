package scoring

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

const validPayload = `{
  "scores": {
    "p1": {"clarity": 8, "logic": 7.5, "evidence": 6, "relevance": 9, "reasoning": "well structured"},
    "p2": {"clarity": 5, "logic": 6, "evidence": 4, "relevance": 7, "reasoning": "thin evidence"}
  },
  "consensusStatement": "Both sides engaged the topic directly."
}`

func TestParseJudgePayload(t *testing.T) {
	ids := []string{"p1", "p2"}

	t.Run("bare JSON", func(t *testing.T) {
		scores, consensus, err := ParseJudgePayload(validPayload, ids)
		require.NoError(t, err)

		assert.Equal(t, "Both sides engaged the topic directly.", consensus)
		require.Len(t, scores, 2)
		assert.Equal(t, 7.5, scores["p1"].Logic)
		assert.Equal(t, "thin evidence", scores["p2"].Reasoning)
	})

	t.Run("JSON wrapped in prose and fences", func(t *testing.T) {
		raw := "Here is my assessment:\n```json\n" + validPayload + "\n```\nLet me know if you need more."
		scores, _, err := ParseJudgePayload(raw, ids)
		require.NoError(t, err)
		assert.Len(t, scores, 2)
	})

	t.Run("extra participant entries are ignored", func(t *testing.T) {
		scores, _, err := ParseJudgePayload(validPayload, []string{"p1"})
		require.NoError(t, err)
		assert.Len(t, scores, 1)
		assert.NotContains(t, scores, "p2")
	})

	t.Run("no JSON at all", func(t *testing.T) {
		_, _, err := ParseJudgePayload("I cannot score this debate.", ids)
		assert.ErrorIs(t, err, domain.ErrNoJudgePayload)
	})

	t.Run("empty output", func(t *testing.T) {
		_, _, err := ParseJudgePayload("", ids)
		assert.ErrorIs(t, err, domain.ErrNoJudgePayload)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		_, _, err := ParseJudgePayload(`{"scores": {"p1": nope}}`, ids)

		var payloadErr *domain.JudgePayloadError
		require.ErrorAs(t, err, &payloadErr)
	})

	t.Run("missing participant", func(t *testing.T) {
		raw := `{"scores": {"p1": {"clarity": 8, "logic": 7, "evidence": 6, "relevance": 9}}, "consensusStatement": "x"}`
		_, _, err := ParseJudgePayload(raw, ids)

		var valErr *domain.ScoreValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "p2", valErr.ParticipantID)
		assert.True(t, valErr.Missing)
	})

	t.Run("out-of-range score reports the first offending field", func(t *testing.T) {
		raw := `{"scores": {"p1": {"clarity": 11, "logic": -2, "evidence": 6, "relevance": 9}}, "consensusStatement": "x"}`
		_, _, err := ParseJudgePayload(raw, []string{"p1"})

		var valErr *domain.ScoreValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "clarity", valErr.Field)
		assert.Equal(t, 11.0, valErr.Value)
	})

	t.Run("negative score rejected", func(t *testing.T) {
		raw := `{"scores": {"p1": {"clarity": 8, "logic": 7, "evidence": -0.5, "relevance": 9}}, "consensusStatement": "x"}`
		_, _, err := ParseJudgePayload(raw, []string{"p1"})

		var valErr *domain.ScoreValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "evidence", valErr.Field)
	})

	t.Run("boundary scores are accepted", func(t *testing.T) {
		raw := `{"scores": {"p1": {"clarity": 0, "logic": 10, "evidence": 0, "relevance": 10, "reasoning": ""}}, "consensusStatement": "x"}`
		scores, _, err := ParseJudgePayload(raw, []string{"p1"})
		require.NoError(t, err)
		assert.Equal(t, 0.0, scores["p1"].Clarity)
		assert.Equal(t, 10.0, scores["p1"].Logic)
	})

	t.Run("nothing is returned on validation failure", func(t *testing.T) {
		raw := `{"scores": {"p1": {"clarity": 8, "logic": 7, "evidence": 6, "relevance": 9}}, "consensusStatement": "x"}`
		scores, consensus, err := ParseJudgePayload(raw, ids)
		require.Error(t, err)
		assert.Nil(t, scores)
		assert.Empty(t, consensus)
	})
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     string
	}{
		{
			name:     "plain object",
			response: `{"a": 1}`,
			want:     `{"a": 1}`,
		},
		{
			name:     "object with surrounding prose",
			response: `Sure! {"a": 1} Hope that helps.`,
			want:     `{"a": 1}`,
		},
		{
			name:     "json fence",
			response: "```json\n{\"a\": 1}\n```",
			want:     `{"a": 1}`,
		},
		{
			name:     "generic fence",
			response: "```\n{\"a\": 1}\n```",
			want:     `{"a": 1}`,
		},
		{
			name:     "nested objects",
			response: `{"a": {"b": {"c": 1}}}`,
			want:     `{"a": {"b": {"c": 1}}}`,
		},
		{
			name:     "braces inside strings are skipped",
			response: `{"a": "not a } brace", "b": 2}`,
			want:     `{"a": "not a } brace", "b": 2}`,
		},
		{
			name:     "escaped quotes inside strings",
			response: `{"a": "he said \"}\"", "b": 2}`,
			want:     `{"a": "he said \"}\"", "b": 2}`,
		},
		{
			name:     "no object",
			response: "there is nothing here",
			want:     "",
		},
		{
			name:     "unbalanced object",
			response: `{"a": 1`,
			want:     "",
		},
		{
			name:     "empty input",
			response: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractJSONObject(tt.response))
		})
	}
}

func TestParseJudgePayloadWrapsRawLength(t *testing.T) {
	raw := `{"scores": broken}`
	_, _, err := ParseJudgePayload(raw, []string{"p1"})

	var payloadErr *domain.JudgePayloadError
	require.ErrorAs(t, err, &payloadErr)
	assert.Equal(t, len(raw), payloadErr.RawLength)
	assert.True(t, errors.Unwrap(payloadErr) != nil)
}
