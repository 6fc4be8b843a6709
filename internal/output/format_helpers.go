package output

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD with thousands separators and
// two decimals, e.g. $1,234,567.89. Kept here so it can be reused by
// multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + groupThousands(amount.StringFixed(2))
}

// FormatRate echoes a percentage input the way the user supplied it,
// e.g. 4 -> "4%", 2.5 -> "2.5%".
func FormatRate(rate decimal.Decimal) string { return rate.String() + "%" }

// groupThousands inserts commas into the integer part of a fixed-point
// number string, preserving sign and fraction.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) > 3 {
		var b strings.Builder
		head := len(intPart) % 3
		if head > 0 {
			b.WriteString(intPart[:head])
		}
		for i := head; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}
	if hasFrac {
		return sign + intPart + "." + fracPart
	}
	return sign + intPart
}
