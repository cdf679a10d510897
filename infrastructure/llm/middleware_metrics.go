package llm

import (
	"context"
	"time"

	"github.com/Swamyakshitha/debate-referee/internal/ports"
)

// metricsLLM records latency, request counts and token usage for every
// judge call.
type metricsLLM struct {
	next      CoreLLM
	collector ports.MetricsCollector
}

// MetricsMiddleware creates middleware that reports judge request
// metrics to the given collector. A nil collector disables collection.
func MetricsMiddleware(collector ports.MetricsCollector) Middleware {
	return func(next CoreLLM) CoreLLM {
		return &metricsLLM{next: next, collector: collector}
	}
}

// DoRequest executes the request and records its outcome.
func (m *metricsLLM) DoRequest(ctx context.Context, prompt string, opts map[string]any) (string, int, int, error) {
	start := time.Now()
	response, tokensIn, tokensOut, err := m.next.DoRequest(ctx, prompt, opts)

	if m.collector != nil {
		labels := map[string]string{
			"model":  m.next.GetModel(),
			"status": "success",
		}
		if err != nil {
			labels["status"] = "error"
			if ctx.Err() == context.DeadlineExceeded {
				labels["status"] = "timeout"
			}
		}

		m.collector.RecordHistogram("judge_request_seconds", time.Since(start).Seconds(), labels)
		m.collector.RecordCounter("judge_requests_total", 1, labels)

		if err == nil {
			m.collector.RecordCounter("judge_tokens_total", float64(tokensIn),
				map[string]string{"model": labels["model"], "direction": "input"})
			m.collector.RecordCounter("judge_tokens_total", float64(tokensOut),
				map[string]string{"model": labels["model"], "direction": "output"})
		}
	}

	return response, tokensIn, tokensOut, err
}

// GetModel returns the model name from the wrapped implementation.
func (m *metricsLLM) GetModel() string { return m.next.GetModel() }

// SetModel updates the model name in the wrapped implementation.
func (m *metricsLLM) SetModel(s string) { m.next.SetModel(s) }
