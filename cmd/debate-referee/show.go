package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Swamyakshitha/debate-referee/internal/ports"
	"github.com/Swamyakshitha/debate-referee/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session's arguments and its decision, if analyzed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		session, err := store.GetSession(ctx, args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprint(out, render.Session(session))

		decision, err := store.GetDecision(ctx, session.ID)
		if err != nil {
			if errors.Is(err, ports.ErrDecisionNotFound) {
				fmt.Fprintln(out, "No decision yet. Run `debate-referee analyze` to score this session.")
				return nil
			}
			return err
		}

		fmt.Fprint(out, render.Decision(decision))
		return nil
	},
}
