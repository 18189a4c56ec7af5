// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatUSD formats an amount as US dollars with thousands separators.
func FormatUSD(amount decimal.Decimal) string {
	negative := amount.IsNegative()
	if negative {
		amount = amount.Neg()
	}

	str := amount.StringFixed(2)
	parts := strings.Split(str, ".")
	intPart := groupThousands(parts[0])

	result := "$" + intPart + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// FormatPercent formats a percentage with an explicit sign.
func FormatPercent(value decimal.Decimal) string {
	sign := ""
	if value.IsPositive() {
		sign = "+"
	}
	return sign + value.StringFixed(2) + "%"
}

// FormatPnL formats a profit/loss amount with an explicit sign.
func FormatPnL(pnl decimal.Decimal) string {
	formatted := FormatUSD(pnl)
	if pnl.IsPositive() {
		return "+" + formatted
	}
	return formatted
}

// FormatVolume formats a share volume in compact form (K/M/B).
func FormatVolume(vol int64) string {
	switch {
	case vol >= 1e9:
		return fmt.Sprintf("%.1fB", float64(vol)/1e9)
	case vol >= 1e6:
		return fmt.Sprintf("%.1fM", float64(vol)/1e6)
	case vol >= 1e3:
		return fmt.Sprintf("%.1fK", float64(vol)/1e3)
	default:
		return fmt.Sprintf("%d", vol)
	}
}

// FormatMarketCap formats a market capitalization in compact form (M/B/T).
func FormatMarketCap(cap decimal.Decimal) string {
	v, _ := cap.Float64()
	switch {
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	case v > 0:
		return FormatUSD(cap)
	default:
		return "N/A"
	}
}
