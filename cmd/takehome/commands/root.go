package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/warp/takehome-engine/generic"
	"github.com/warp/takehome-engine/salary"
)

const defaultBasicDA = "40"

func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. Output goes to cmd.OutOrStdout.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "takehome",
		Short:        "Indian income tax and take-home salary calculator (FY 2025-26, new regime)",
		SilenceUsage: true,
	}

	root.AddCommand(taxCmd(), salaryCmd(), estimateCmd(), regimeCmd())
	return root
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, &generic.ValidationError{Field: field, Value: raw, Message: "must be a number"}
	}
	return d, nil
}

func parseNonNegative(field, raw string) (decimal.Decimal, error) {
	d, err := parseAmount(field, raw)
	if err != nil {
		return d, err
	}
	return d, salary.ValidateAmount(field, d)
}

func parseTarget(field, raw string) (decimal.Decimal, error) {
	d, err := parseAmount(field, raw)
	if err != nil {
		return d, err
	}
	return d, salary.ValidateTarget(field, d)
}

func parsePercent(field, raw string) (decimal.Decimal, error) {
	d, err := parseAmount(field, raw)
	if err != nil {
		return d, err
	}
	return d, salary.ValidatePercent(field, d)
}

// inr formats with two decimals: ₹1,40,633.33, -₹2,500.00.
func inr(d decimal.Decimal) string {
	if d.Round(2).IsNegative() {
		return "-" + generic.RupeeSign + generic.GroupIndian(d.Abs(), 2)
	}
	return generic.RupeeSign + generic.GroupIndian(d, 2)
}

func pct(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).String() + "%"
}

func row(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-22s %s\n", label+":", value)
}
