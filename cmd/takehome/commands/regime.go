package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/warp/takehome-engine/salary"
	"github.com/warp/takehome-engine/tax"
)

func regimeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "regime",
		Short: "Print the tax tables in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := tax.NewRegime25()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "FY %s, %s regime\n\nSlabs:\n", r.FiscalYear, r.Name)
			from := inr(decimal.Zero)
			for _, s := range r.Slabs.Slabs() {
				if s.Unbounded {
					fmt.Fprintf(out, "  above %-16s %s\n", from, pct(s.Rate))
					continue
				}
				to := inr(s.Upper)
				fmt.Fprintf(out, "  %s - %-16s %s\n", from, to, pct(s.Rate))
				from = to
			}

			fmt.Fprintln(out, "\nSurcharge:")
			for _, b := range r.Surcharge.Brackets() {
				fmt.Fprintf(out, "  above %-16s %s\n", inr(b.Threshold), pct(b.Rate))
			}

			fmt.Fprintln(out)
			row(out, "Rebate limit", inr(r.RebateLimit))
			row(out, "Cess", pct(r.CessRate))
			row(out, "Standard deduction", inr(salary.StandardDeduction))
			row(out, "EPF rate", pct(salary.EPFRate))
			return nil
		},
	}
}
