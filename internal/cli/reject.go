package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newRejectCmd() *cobra.Command {
	var (
		by     string
		reason string
	)

	cmd := &cobra.Command{
		Use:   "reject <action_id>",
		Short: "Reject a pending scaling action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid action id %q: %w", args[0], err)
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			action, err := a.svc.Reject(cmd.Context(), id, by, reason)
			if err != nil {
				return err
			}
			fmt.Printf("action %s: %s\n", action.ID, action.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "cli", "user rejecting the action")
	cmd.Flags().StringVar(&reason, "reason", "", "why the action is rejected")
	return cmd
}
