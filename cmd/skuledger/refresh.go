package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skuledger/skuledger/internal/config"
)

func newRefreshCommand(cfg *config.Configuration) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Rebuild the current inventory view",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			var rows int
			if date == "" {
				date, rows, err = a.view.RefreshLatest(cmd.Context())
			} else {
				rows, err = a.view.Refresh(cmd.Context(), date)
			}
			if err != nil {
				return err
			}
			if date == "" {
				fmt.Fprintln(cmd.OutOrStdout(), color.YellowString("no snapshot ingested yet"))
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "view as of %s (%d rows)\n", color.CyanString(date), rows)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "As-of date (YYYY-MM-DD); defaults to the latest snapshot")
	return cmd
}
