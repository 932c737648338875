package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/skuledger/skuledger/internal/config"
	"github.com/skuledger/skuledger/internal/models"
)

func newMetricsCommand(cfg *config.Configuration) *cobra.Command {
	var (
		from, to  string
		recompute bool
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "metrics [DATE]",
		Short: "Show daily metrics, for one date or a range",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			var list []models.DailyMetrics
			switch {
			case len(args) == 1 && recompute:
				m, err := a.metrics.Compute(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				list = append(list, *m)
			case len(args) == 1:
				m, err := a.metrics.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				list = append(list, *m)
			default:
				if list, err = a.metrics.List(cmd.Context(), from, to); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(list)
			}

			for _, m := range list {
				net := color.GreenString("%+d", m.NetChangeUnits)
				if m.NetChangeUnits < 0 {
					net = color.RedString("%+d", m.NetChangeUnits)
				}
				fmt.Fprintf(out, "%s  products %d  value $%.2f  out %d  low %d  up %d  down %d  net %s\n",
					color.CyanString(m.Date), m.TotalProducts, m.TotalValue, m.OutOfStock, m.LowStock,
					m.Increases, m.Decreases, net)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "First date of the range")
	cmd.Flags().StringVar(&to, "to", "", "Last date of the range")
	cmd.Flags().BoolVar(&recompute, "recompute", false, "Recompute the metrics of DATE before showing them")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}
