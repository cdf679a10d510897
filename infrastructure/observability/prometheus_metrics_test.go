package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics(t *testing.T) {
	// One collector per process: promauto registers with the default
	// registry, so all subtests share this instance.
	pm := NewPrometheusMetrics()

	pm.RecordLatency("analyze_session", 150*time.Millisecond, map[string]string{"path": "judge"})
	pm.RecordCounter("debate_analyses_total", 1, map[string]string{"path": "heuristic"})
	pm.RecordCounter("judge_tokens_total", 42, map[string]string{"model": "m", "direction": "input"})
	pm.RecordHistogram("debate_final_score", 7.55, map[string]string{"path": "judge"})

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}

	assert.True(t, names["debate_operation_duration_seconds"])
	assert.True(t, names["debate_events_total"])
	assert.True(t, names["debate_values"])
}
