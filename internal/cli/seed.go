package cli

import (
	"github.com/spf13/cobra"

	"adpilot/internal/db"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo campaigns and metrics",
		Long: `Seeds the database with a handful of demo campaigns and 24 hours of
hourly metrics, covering the interesting decision outcomes: a strong
performer, a steady one, one below break-even, and one without enough
data. Intended for local development only.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err = db.Seed(cmd.Context(), a.pool); err != nil {
				return err
			}
			a.logger.Info("demo data seeded")
			return nil
		},
	}
}
