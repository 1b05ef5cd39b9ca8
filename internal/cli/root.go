package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the adpilotctl command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "adpilotctl",
		Short:         "Operate the campaign budget autoscaler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCycleCmd(),
		newApproveCmd(),
		newRejectCmd(),
		newActionsCmd(),
		newSeedCmd(),
	)
	return root
}
