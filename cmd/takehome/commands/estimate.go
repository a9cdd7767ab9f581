package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warp/takehome-engine/salary"
)

func estimateCmd() *cobra.Command {
	var basicDA string

	cmd := &cobra.Command{
		Use:   "estimate <target-monthly>",
		Short: "Estimate the annual gross needed for a monthly take-home",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Out-of-range targets resolve to a search bound.
			target, err := parseTarget("target-monthly", args[0])
			if err != nil {
				return err
			}
			percent, err := parsePercent("basic-da", basicDA)
			if err != nil {
				return err
			}

			e := salary.Estimate(target, percent)
			out := cmd.OutOrStdout()
			row(out, "Target take-home", inr(e.TargetMonthly))
			row(out, "Annual gross", inr(e.AnnualGross))
			row(out, "Monthly gross", inr(e.MonthlyGross))
			row(out, "Annual tax", inr(e.AnnualTax))
			row(out, "Monthly tax", inr(e.MonthlyTax))
			if e.AtSearchBound {
				fmt.Fprintf(out, "note: target is outside what %s to %s gross can produce\n",
					inr(salary.SearchLow), inr(salary.SearchHigh))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&basicDA, "basic-da", defaultBasicDA, "Basic + DA as a percentage of gross (0-100)")
	return cmd
}
