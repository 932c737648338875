package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skuledger/skuledger/internal/config"
	"github.com/skuledger/skuledger/internal/export"
	"github.com/skuledger/skuledger/internal/models"
)

func newIngestCommand(cfg *config.Configuration) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "ingest FILE...",
		Short: "Ingest export files and update deltas, metrics and the view",
		Long: `Ingest one or more csv/xlsx exports. The snapshot date of each file is
taken from its name (flxpoint-export-2025-08-09T07-08-52.csv, export-8-8-25.csv)
unless --date is given for a single file. Files are processed in date order.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exports, err := loadExports(args, date)
			if err != nil {
				return err
			}

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			results, err := a.pipeline.Backfill(cmd.Context(), exports)
			printIngestSummary(cmd.OutOrStdout(), results)
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Snapshot date (YYYY-MM-DD) when ingesting a single file")
	return cmd
}

func loadExports(paths []string, date string) ([]models.DatedExport, error) {
	if date == "" {
		return export.Load(paths...)
	}
	if len(paths) != 1 {
		return nil, fmt.Errorf("--date can only be used with a single file")
	}
	date, err := models.ParseDate("date", date)
	if err != nil {
		return nil, err
	}
	rows, err := export.ReadFile(paths[0])
	if err != nil {
		return nil, err
	}
	return []models.DatedExport{{Date: date, Source: paths[0], Rows: rows}}, nil
}

func printIngestSummary(w io.Writer, results []models.PipelineResult) {
	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	for _, r := range results {
		fmt.Fprintf(w, "%s %s  saved %s", green("✔"), cyan(r.Ingest.Date), green(r.Ingest.Saved))
		if r.Ingest.Skipped > 0 {
			fmt.Fprintf(w, "  skipped %s", yellow(r.Ingest.Skipped))
		}
		if r.Delta != nil && r.PreviousDate != "" {
			fmt.Fprintf(w, "  vs %s: %s up, %s down", r.PreviousDate, green(r.Delta.Increases), yellow(r.Delta.Decreases))
		}
		fmt.Fprintln(w)
	}
	if n := len(results); n > 0 {
		last := results[n-1]
		fmt.Fprintf(w, "view as of %s (%d rows)\n", cyan(last.ViewDate), last.ViewRows)
	}
}
