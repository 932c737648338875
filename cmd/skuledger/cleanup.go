package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skuledger/skuledger/internal/config"
	"github.com/skuledger/skuledger/internal/models"
)

func newCleanupCommand(cfg *config.Configuration) *cobra.Command {
	var before string

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete snapshots, changes and metrics older than the retention window",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			var result *models.RetentionResult
			if before != "" {
				result, err = a.retention.Prune(cmd.Context(), before)
			} else {
				result, err = a.retention.PruneExpired(cmd.Context())
			}
			if err != nil {
				return err
			}
			if result.Cutoff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("retention disabled, nothing removed"))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "removed before %s: %d snapshot rows, %d changes, %d metrics\n",
				color.CyanString(result.Cutoff), result.SnapshotsDeleted, result.ChangesDeleted, result.MetricsDeleted)
			return nil
		},
	}

	cmd.Flags().StringVar(&before, "before", "", "Remove everything dated before this date instead of using --retention-days")
	return cmd
}
