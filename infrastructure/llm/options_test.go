package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		options := ParseRequestOptions(nil, "default-model")

		assert.Equal(t, DefaultMaxTokens, options.MaxTokens)
		assert.Equal(t, "default-model", options.Model)
		assert.Nil(t, options.Temperature)
		assert.Empty(t, options.System)
	})

	t.Run("explicit values", func(t *testing.T) {
		options := ParseRequestOptions(map[string]any{
			"max_tokens":  256,
			"model":       "other-model",
			"temperature": 0.3,
			"system":      "be brief",
		}, "default-model")

		assert.Equal(t, 256, options.MaxTokens)
		assert.Equal(t, "other-model", options.Model)
		require.NotNil(t, options.Temperature)
		assert.Equal(t, 0.3, *options.Temperature)
		assert.Equal(t, "be brief", options.System)
	})

	t.Run("integer temperature is accepted", func(t *testing.T) {
		options := ParseRequestOptions(map[string]any{"temperature": 1}, "m")
		require.NotNil(t, options.Temperature)
		assert.Equal(t, 1.0, *options.Temperature)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		options := ParseRequestOptions(map[string]any{
			"max_tokens":  -5,
			"model":       "",
			"temperature": 9.5,
		}, "default-model")

		assert.Equal(t, DefaultMaxTokens, options.MaxTokens)
		assert.Equal(t, "default-model", options.Model)
		assert.Nil(t, options.Temperature, "out-of-range temperature is dropped")
	})
}

func TestBaseProviderModel(t *testing.T) {
	var provider BaseProvider
	provider.SetModel("model-a")
	assert.Equal(t, "model-a", provider.GetModel())

	provider.SetModel("model-b")
	assert.Equal(t, "model-b", provider.GetModel())
}

func TestEstimateTokens(t *testing.T) {
	assert.Equal(t, 0, estimateTokens(""))
	assert.Equal(t, 1, estimateTokens("abc"))
	assert.Equal(t, 2, estimateTokens("abcdefgh"))
}
