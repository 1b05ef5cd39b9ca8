package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"adpilot/internal/core/domain"
	"adpilot/internal/core/port"
)

func newActionsCmd() *cobra.Command {
	var (
		accountID  string
		campaignID string
		status     string
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "actions",
		Short: "List scaling action audit records",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			actions, err := a.svc.ListActions(cmd.Context(), port.ActionFilter{
				AccountID:  accountID,
				CampaignID: campaignID,
				Status:     domain.ActionStatus(status),
				Limit:      limit,
			})
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tCAMPAIGN\tACTION\tSTATUS\tBEFORE\tAFTER\tCREATED")
			for i := range actions {
				ac := &actions[i]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%.2f\t%.2f\t%s\n",
					ac.ID, ac.CampaignID, ac.ActionType, ac.Status,
					float64(ac.BudgetBeforeCents)/100, float64(ac.BudgetAfterCents)/100,
					ac.CreatedAt.Format("2006-01-02 15:04"))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "", "filter by account")
	cmd.Flags().StringVar(&campaignID, "campaign", "", "filter by campaign")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (PENDING, APPROVED, ...)")
	cmd.Flags().IntVar(&limit, "limit", 50, "maximum rows")
	return cmd
}
