package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProviderErrorRetryability(t *testing.T) {
	tests := []struct {
		name      string
		errType   ErrorType
		retryable bool
	}{
		{name: "rate limit", errType: ErrorTypeRateLimit, retryable: true},
		{name: "server error", errType: ErrorTypeServerError, retryable: true},
		{name: "network", errType: ErrorTypeNetwork, retryable: true},
		{name: "authentication", errType: ErrorTypeAuthentication, retryable: false},
		{name: "bad request", errType: ErrorTypeBadRequest, retryable: false},
		{name: "not found", errType: ErrorTypeNotFound, retryable: false},
		{name: "content policy", errType: ErrorTypeContentPolicy, retryable: false},
		{name: "unknown", errType: ErrorTypeUnknown, retryable: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewProviderError("fake", tt.errType, 0, "", nil)
			assert.Equal(t, tt.retryable, err.IsRetryable())
		})
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	underlying := errors.New("socket closed")
	err := NewProviderError("fake", ErrorTypeNetwork, 0, "connection lost", underlying)

	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "fake error")
	assert.Contains(t, err.Error(), "connection lost")
}

func TestClassifyHTTPError(t *testing.T) {
	classifier := &ErrorClassifier{Provider: "fake"}

	tests := []struct {
		status int
		want   ErrorType
	}{
		{status: 401, want: ErrorTypeAuthentication},
		{status: 403, want: ErrorTypeAuthentication},
		{status: 404, want: ErrorTypeNotFound},
		{status: 429, want: ErrorTypeRateLimit},
		{status: 400, want: ErrorTypeBadRequest},
		{status: 422, want: ErrorTypeBadRequest},
		{status: 500, want: ErrorTypeServerError},
		{status: 503, want: ErrorTypeServerError},
		{status: 0, want: ErrorTypeUnknown},
	}

	for _, tt := range tests {
		err := classifier.ClassifyHTTPError(tt.status, "boom", nil)
		assert.Equal(t, tt.want, err.Type, "status %d", tt.status)
		assert.Equal(t, tt.status, err.StatusCode)
	}
}

func TestClassifyContextError(t *testing.T) {
	classifier := &ErrorClassifier{Provider: "fake"}

	assert.Equal(t, ErrorTypeNetwork, classifier.ClassifyContextError(context.DeadlineExceeded).Type)
	assert.Equal(t, ErrorTypeNetwork, classifier.ClassifyContextError(context.Canceled).Type)
	assert.Equal(t, ErrorTypeUnknown, classifier.ClassifyContextError(errors.New("other")).Type)
}
