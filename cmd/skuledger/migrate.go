package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skuledger/skuledger/internal/config"
)

func newMigrateCommand(cfg *config.Configuration) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			fmt.Fprintf(cmd.OutOrStdout(), "database %s is up to date\n", cfg.Storage.DatabasePath())
			return nil
		},
	}
}
