package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/Swamyakshitha/debate-referee/infrastructure/llm"
	"github.com/Swamyakshitha/debate-referee/infrastructure/observability"
	"github.com/Swamyakshitha/debate-referee/internal/application"
	"github.com/Swamyakshitha/debate-referee/internal/ports"
	"github.com/Swamyakshitha/debate-referee/internal/render"
	"github.com/Swamyakshitha/debate-referee/internal/scoring"
)

var (
	analyzeProvider string
	analyzeModel    string
	analyzeNoJudge  bool
	analyzeTimeout  time.Duration
	analyzeForce    bool
)

// Judge client hardening defaults. Tuned for an interactive CLI: a
// couple of retries and a pace well under every provider's free-tier
// request limit.
const (
	judgeMaxRetries = 2
	judgeBaseDelay  = 500 * time.Millisecond
	judgeMaxDelay   = 5 * time.Second
	judgeRateLimit  = rate.Limit(1)
	judgeRateBurst  = 3
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <session-id>",
	Short: "Score a session and declare the winner",
	Long: `Score every participant's arguments against the rubric and persist
the resulting decision. When a judge provider is configured and its API
key is present, scoring is delegated to the LLM judge; otherwise, or on
any judge failure, deterministic heuristic scoring is used.

API keys are read from the environment (or a local .env file):
ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := newLogger()

		store, err := openStore()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		session, err := store.GetSession(ctx, args[0])
		if err != nil {
			return err
		}
		if session.Processed() && !analyzeForce {
			return errors.New("session already processed; use --force to re-analyze")
		}

		config, err := loadEngineConfig()
		if err != nil {
			return err
		}

		// Near-duplicate arguments are worth a heads-up before scoring,
		// but they never block the analysis.
		checker := scoring.NewSimilarityChecker(config.SimilarityThreshold)
		names := session.ParticipantNames()
		for _, w := range checker.Check(session.ParticipantIDs(), session.ArgumentsByParticipant()) {
			fmt.Fprintln(cmd.ErrOrStderr(),
				render.SimilarityWarning(names[w.ParticipantA], names[w.ParticipantB], w.Similarity))
		}

		metrics := observability.NewPrometheusMetrics()

		judge, err := buildJudge(metrics)
		if err != nil {
			return err
		}
		if judge == nil {
			logger.Debug("no judge configured, using heuristic scoring")
		}

		analyzer, err := application.NewAnalyzer(config, judge, metrics, logger)
		if err != nil {
			return err
		}

		decision, err := analyzer.Analyze(ctx, session)
		if err != nil {
			return err
		}

		if err := store.SaveDecision(ctx, decision); err != nil {
			return err
		}
		if err := store.MarkProcessed(ctx, session.ID, decision.CompletedAt); err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), render.Decision(decision))
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeProvider, "provider", "anthropic", "judge provider: anthropic, openai, or google")
	analyzeCmd.Flags().StringVar(&analyzeModel, "model", "", "judge model (empty uses the provider default)")
	analyzeCmd.Flags().BoolVar(&analyzeNoJudge, "no-judge", false, "skip the LLM judge and score heuristically")
	analyzeCmd.Flags().DurationVar(&analyzeTimeout, "judge-timeout", 30*time.Second, "per-request judge timeout")
	analyzeCmd.Flags().BoolVar(&analyzeForce, "force", false, "re-analyze an already processed session")
}

// buildJudge constructs the middleware-wrapped judge client, or returns
// nil when judging is disabled or no API key is available.
func buildJudge(metrics ports.MetricsCollector) (ports.LLMClient, error) {
	if analyzeNoJudge {
		return nil, nil
	}

	apiKey := os.Getenv(apiKeyEnv(analyzeProvider))
	if apiKey == "" {
		// Missing key degrades to heuristic scoring rather than failing
		// the whole analysis.
		return nil, nil
	}

	client, err := llm.NewClient(analyzeProvider, llm.ClientConfig{
		APIKey: apiKey,
		Model:  analyzeModel,
		Middleware: []llm.Middleware{
			llm.MetricsMiddleware(metrics),
			llm.RetryMiddleware(judgeMaxRetries, judgeBaseDelay, judgeMaxDelay),
			llm.RateLimitMiddleware(judgeRateLimit, judgeRateBurst),
			llm.TimeoutMiddleware(analyzeTimeout),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build judge client: %w", err)
	}
	return client, nil
}

func apiKeyEnv(provider string) string {
	switch provider {
	case "openai":
		return "OPENAI_API_KEY"
	case "google":
		return "GEMINI_API_KEY"
	default:
		return "ANTHROPIC_API_KEY"
	}
}
