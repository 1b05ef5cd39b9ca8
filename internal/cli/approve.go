package cli

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newApproveCmd() *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "approve <action_id>",
		Short: "Approve a pending scaling action and execute it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid action id %q: %w", args[0], err)
			}
			if by == "" {
				return errors.New("--by is required")
			}

			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			action, err := a.svc.Approve(cmd.Context(), id, by)
			if err != nil {
				return err
			}
			fmt.Printf("action %s: %s\n", action.ID, action.Status)
			if action.Error != nil {
				fmt.Printf("execution error: %s\n", *action.Error)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&by, "by", "", "user approving the action")
	return cmd
}
