// Package application orchestrates debate analysis: it drives the
// judge-attempt / heuristic-fallback state machine and composes the
// scoring pipeline into a final decision.
package application

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
	"github.com/Swamyakshitha/debate-referee/internal/ports"
	"github.com/Swamyakshitha/debate-referee/internal/scoring"
)

// Scoring paths recorded in logs, metrics and trace attributes.
const (
	pathJudge     = "judge"
	pathHeuristic = "heuristic"
)

// Analyzer produces a DebateDecision for a session. The external judge
// is best effort: any failure of the judge call, or of parsing and
// validating its output, falls back to heuristic scoring and is never
// surfaced to the caller. Only the zero-argument precondition violation
// is returned as an error.
//
// Analysis is synchronous and sequential per call; the judge call is the
// single blocking step. The Analyzer holds no per-session state, so one
// instance can serve successive sessions.
type Analyzer struct {
	judge      ports.LLMClient
	heuristic  *scoring.HeuristicScorer
	aggregator *scoring.Aggregator
	resolver   *scoring.WinnerResolver
	metrics    ports.MetricsCollector
	logger     *slog.Logger
	tracer     trace.Tracer
	config     Config
}

// NewAnalyzer creates an Analyzer from the given configuration.
// The judge client may be nil, which forces the heuristic path. The
// metrics collector may be nil to disable metrics; a nil logger falls
// back to slog.Default.
func NewAnalyzer(config Config, judge ports.LLMClient, metrics ports.MetricsCollector, logger *slog.Logger) (*Analyzer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	aggregator, err := scoring.NewAggregator(config.Weights)
	if err != nil {
		return nil, err
	}

	return &Analyzer{
		judge:      judge,
		heuristic:  scoring.NewHeuristicScorer(),
		aggregator: aggregator,
		resolver:   scoring.NewWinnerResolver(config.TieThreshold),
		metrics:    metrics,
		logger:     logger,
		tracer:     otel.Tracer("debate-analyzer"),
		config:     config,
	}, nil
}

// Analyze scores every participant in the session and returns the final
// decision. It fails only when the session has no arguments
// (domain.ErrNoArguments); judge failures silently route to heuristic
// scoring. The caller remains responsible for persisting the decision
// and marking the session processed.
func (a *Analyzer) Analyze(ctx context.Context, session *domain.DebateSession) (*domain.DebateDecision, error) {
	ctx, span := a.tracer.Start(ctx, "Analyzer.Analyze")
	defer span.End()

	if session == nil || len(session.Arguments) == 0 {
		span.SetStatus(codes.Error, domain.ErrNoArguments.Error())
		return nil, domain.ErrNoArguments
	}

	span.SetAttributes(
		attribute.String("debate.session_id", session.ID),
		attribute.Int("debate.arguments", len(session.Arguments)),
	)

	start := time.Now()
	raw, consensus, path := a.rawScores(ctx, session)

	results := a.aggregator.Aggregate(raw)

	// The scoring layer works on participant ids; display names come
	// from session data.
	names := session.ParticipantNames()
	order := session.ParticipantIDs()
	for _, pid := range order {
		result := results[pid]
		result.ParticipantName = names[pid]
		results[pid] = result
	}

	winner, isTie := a.resolver.Resolve(results, order)

	decision := &domain.DebateDecision{
		SessionID:   session.ID,
		Topic:       session.Topic,
		Results:     results,
		Winner:      winner,
		IsTie:       isTie,
		Consensus:   consensus,
		CompletedAt: time.Now().UTC(),
	}

	span.SetAttributes(
		attribute.String("debate.scoring_path", path),
		attribute.Bool("debate.is_tie", isTie),
	)
	span.SetStatus(codes.Ok, "analysis complete")

	if a.metrics != nil {
		labels := map[string]string{"path": path}
		a.metrics.RecordLatency("analyze_session", time.Since(start), labels)
		a.metrics.RecordCounter("debate_analyses_total", 1, labels)
		for _, result := range results {
			a.metrics.RecordHistogram("debate_final_score", result.FinalScore, labels)
		}
	}

	a.logger.Info("debate analyzed",
		"session_id", session.ID,
		"participants", len(results),
		"path", path,
		"is_tie", isTie)

	return decision, nil
}

// rawScores runs the two-branch scoring state machine: attempt the judge
// and validate its output, and on any failure of either step take the
// heuristic branch. It returns the raw score mapping, the consensus
// statement, and which path produced them.
func (a *Analyzer) rawScores(ctx context.Context, session *domain.DebateSession) (map[string]domain.RawScore, string, string) {
	if a.judge == nil {
		scores, consensus := a.heuristic.Score(session)
		return scores, consensus, pathHeuristic
	}

	raw, err := a.attemptJudge(ctx, session)
	if err != nil {
		a.fallback(session.ID, "judge_call", err, "")
		scores, consensus := a.heuristic.Score(session)
		return scores, consensus, pathHeuristic
	}

	scores, consensus, err := scoring.ParseJudgePayload(raw, session.ParticipantIDs())
	if err != nil {
		// Keep the offending output for diagnosis; it never reaches the
		// caller.
		a.fallback(session.ID, "judge_payload", err, raw)
		scores, consensus := a.heuristic.Score(session)
		return scores, consensus, pathHeuristic
	}

	return scores, consensus, pathJudge
}

// attemptJudge builds the scoring prompt and performs the single
// best-effort judge call. Retries and timeouts belong to the client's
// middleware chain, not to the orchestrator.
func (a *Analyzer) attemptJudge(ctx context.Context, session *domain.DebateSession) (string, error) {
	prompt, err := scoring.BuildScoringPrompt(session)
	if err != nil {
		return "", err
	}

	return a.judge.Complete(ctx, prompt, map[string]any{
		"temperature": a.config.JudgeTemperature,
		"max_tokens":  a.config.JudgeMaxTokens,
	})
}

// fallback logs a judge failure and counts it; the failure itself stays
// internal to the analyzer.
func (a *Analyzer) fallback(sessionID, reason string, err error, rawOutput string) {
	attrs := []any{
		"session_id", sessionID,
		"reason", reason,
		"error", err,
	}
	if rawOutput != "" {
		attrs = append(attrs, "judge_output", rawOutput)
	}
	a.logger.Warn("judge unavailable, falling back to heuristic scoring", attrs...)

	if a.metrics != nil {
		a.metrics.RecordCounter("debate_judge_fallbacks_total", 1, map[string]string{"reason": reason})
	}
}
