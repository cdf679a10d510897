package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Swamyakshitha/debate-referee/infrastructure/storage"
	"github.com/Swamyakshitha/debate-referee/internal/application"
)

var rootCmd = &cobra.Command{
	Use:   "debate-referee",
	Short: "Score debates and declare winners",
	Long: `debate-referee collects arguments on a topic, scores each one against
a weighted rubric (clarity, logic, evidence, relevance), and declares a
winner with a neutral consensus statement.

Scoring uses an external LLM judge when one is configured and falls back
to deterministic heuristics when the judge is unavailable.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("data-dir", defaultDataDir(), "directory for session and decision files")
	flags.String("config", "", "path to a YAML config file overriding engine defaults")
	flags.Bool("verbose", false, "enable debug logging")

	viper.SetEnvPrefix("DEBATE")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	for _, name := range []string{"data-dir", "config", "verbose"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(createCmd, argueCmd, analyzeCmd, showCmd, listCmd)
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".debate-referee")
	}
	return ".debate-referee"
}

// newLogger builds the process logger. Debug level is opt-in; logs go to
// stderr so command output stays pipeable.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// openStore opens the flat-file store under the configured data directory.
func openStore() (*storage.FileStore, error) {
	store, err := storage.NewFileStore(viper.GetString("data-dir"))
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}
	return store, nil
}

// loadEngineConfig loads engine settings, overlaying the optional config
// file on the defaults.
func loadEngineConfig() (application.Config, error) {
	return application.LoadConfig(viper.GetString("config"))
}
