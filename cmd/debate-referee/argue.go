package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

var (
	argueParticipant string
	argueName        string
	argueText        string
	argueFile        string
)

var argueCmd = &cobra.Command{
	Use:   "argue <session-id>",
	Short: "Submit an argument to an open session",
	Long: `Submit an argument for a participant. The argument text comes from
--text, from the file named by --file, or from stdin when neither flag
is set. A participant may submit more than once; submissions are scored
as combined text.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, err := readArgument(cmd.InOrStdin())
		if err != nil {
			return err
		}
		if strings.TrimSpace(content) == "" {
			return domain.ErrEmptyContent
		}

		name := argueName
		if name == "" {
			name = argueParticipant
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		session, err := store.GetSession(ctx, args[0])
		if err != nil {
			return err
		}
		if session.Processed() {
			return errors.New("session already processed; open a new session to continue the debate")
		}

		arg := session.AddArgument(argueParticipant, name, content)
		if err := store.SaveSession(ctx, session); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Recorded argument %s for %s (%d total in session)\n",
			arg.ID, name, len(session.Arguments))
		return nil
	},
}

func init() {
	argueCmd.Flags().StringVarP(&argueParticipant, "participant", "p", "", "participant id (required)")
	argueCmd.Flags().StringVarP(&argueName, "name", "n", "", "participant display name (defaults to the id)")
	argueCmd.Flags().StringVarP(&argueText, "text", "t", "", "argument text")
	argueCmd.Flags().StringVarP(&argueFile, "file", "f", "", "read the argument text from a file")
	_ = argueCmd.MarkFlagRequired("participant")
	argueCmd.MarkFlagsMutuallyExclusive("text", "file")
}

// readArgument resolves the argument text from flag, file, or stdin.
func readArgument(stdin io.Reader) (string, error) {
	switch {
	case argueText != "":
		return argueText, nil
	case argueFile != "":
		data, err := os.ReadFile(argueFile)
		if err != nil {
			return "", fmt.Errorf("failed to read argument file: %w", err)
		}
		return string(data), nil
	default:
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read argument from stdin: %w", err)
		}
		return string(data), nil
	}
}
