// Command debate-referee manages debate sessions from the terminal:
// create a session, collect arguments, run the analysis, and inspect
// decisions.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// Provider API keys are commonly kept in a local .env file; a missing
	// file is not an error.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
