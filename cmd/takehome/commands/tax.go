package commands

import (
	"github.com/spf13/cobra"

	"github.com/warp/takehome-engine/tax"
)

func taxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tax <taxable-income>",
		Short: "Compute tax on taxable income (after the standard deduction)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			taxable, err := parseNonNegative("taxable-income", args[0])
			if err != nil {
				return err
			}

			a := tax.Assess(taxable)
			out := cmd.OutOrStdout()
			row(out, "Taxable income", inr(a.TaxableIncome))
			row(out, "Slab tax", inr(a.SlabTax))
			if a.Rebated {
				row(out, "Rebate (87A)", "full, taxable income within "+inr(tax.RebateLimit))
			}
			row(out, "Surcharge ("+pct(a.SurchargeRate)+")", inr(a.Surcharge))
			row(out, "Cess ("+pct(tax.CessRate)+")", inr(a.Cess))
			row(out, "Total tax", inr(a.Total))
			return nil
		},
	}
	return cmd
}
