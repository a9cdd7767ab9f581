package commands

import (
	"github.com/spf13/cobra"

	"github.com/warp/takehome-engine/salary"
)

func salaryCmd() *cobra.Command {
	var basicDA string

	cmd := &cobra.Command{
		Use:   "salary <annual-gross>",
		Short: "Project monthly take-home from annual gross income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			gross, err := parseNonNegative("annual-gross", args[0])
			if err != nil {
				return err
			}
			percent, err := parsePercent("basic-da", basicDA)
			if err != nil {
				return err
			}

			b := salary.CalculateTakeHome(gross, percent)
			out := cmd.OutOrStdout()
			row(out, "Annual gross", inr(b.AnnualGross))
			row(out, "Standard deduction", inr(b.StandardDeduction))
			row(out, "Taxable income", inr(b.TaxableIncome))
			row(out, "Income tax", inr(b.Tax))
			row(out, "Post-tax annual", inr(b.PostTaxAnnual))
			row(out, "EPF (monthly)", inr(b.EPFMonthly))
			row(out, "Take-home (monthly)", inr(b.TakeHomeMonthly))
			return nil
		},
	}

	cmd.Flags().StringVar(&basicDA, "basic-da", defaultBasicDA, "Basic + DA as a percentage of gross (0-100)")
	return cmd
}
