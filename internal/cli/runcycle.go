package cli

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"adpilot/internal/core/port"
)

func newRunCycleCmd() *cobra.Command {
	var (
		accountID string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "run-cycle",
		Short: "Evaluate all eligible campaigns once",
		Long: `Runs one evaluation cycle. With --dry-run the decision pipeline runs
in full but nothing is persisted and the ad platform is never called;
the decisions are printed instead.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			report, err := a.svc.RunCycle(cmd.Context(), port.CycleOptions{
				AccountID: accountID,
				DryRun:    dryRun,
			})
			if err != nil {
				return err
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "limit the cycle to one account")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "decide without persisting or executing")
	return cmd
}
