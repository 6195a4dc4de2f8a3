package exporter

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes every monetary value in reports
const CurrencySymbol = "$"

// FormatDecimal formats a monetary value for CSV output with exactly 2 decimal places
func FormatDecimal(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// FormatInt formats an int64 value for CSV output
func FormatInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// FormatCurrency formats a monetary value for display, e.g. "$12,345.60"
func FormatCurrency(d decimal.Decimal) string {
	fixed := d.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, frac, _ := strings.Cut(fixed, ".")
	return sign + CurrencySymbol + groupThousands(whole) + "." + frac
}

// FormatCount formats an integer for display with thousands separators, e.g. "1,024"
func FormatCount(i int64) string {
	s := strconv.FormatInt(i, 10)
	if i < 0 {
		return "-" + groupThousands(s[1:])
	}
	return groupThousands(s)
}

// groupThousands inserts commas into a string of digits
func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
