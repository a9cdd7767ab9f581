package generic

import (
	"strings"

	"github.com/shopspring/decimal"
)

// RupeeSign prefixes FormatINR output.
const RupeeSign = "₹"

// FormatINR renders an amount the way en-IN currency display does with no
// fraction digits: ₹1,40,633 and -₹2,500.
func FormatINR(amount decimal.Decimal) string {
	grouped := GroupIndian(amount.Abs(), 0)
	if amount.Round(0).IsNegative() {
		return "-" + RupeeSign + grouped
	}
	return RupeeSign + grouped
}

// GroupIndian rounds amount to places decimals and groups the integer part
// in the Indian system: the last three digits, then pairs (12,34,56,789).
func GroupIndian(amount decimal.Decimal, places int32) string {
	s := amount.StringFixed(places)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}
	if len(intPart) <= 3 {
		return sign + intPart + frac
	}

	head, tail := intPart[:len(intPart)-3], intPart[len(intPart)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + strings.Join(groups, ",") + "," + tail + frac
}
