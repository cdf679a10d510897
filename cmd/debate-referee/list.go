package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Swamyakshitha/debate-referee/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all sessions, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		sessions, err := store.ListSessions(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), render.SessionList(sessions))
		return nil
	},
}
