package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Swamyakshitha/debate-referee/internal/domain"
)

var createCmd = &cobra.Command{
	Use:   "create <topic>",
	Short: "Open a new debate session on a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := strings.TrimSpace(args[0])
		if topic == "" {
			return domain.ErrEmptyTopic
		}

		store, err := openStore()
		if err != nil {
			return err
		}

		session := domain.NewDebateSession(topic)
		if err := store.SaveSession(cmd.Context(), session); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created session %s\nTopic: %s\n", session.ID, session.Topic)
		return nil
	},
}
