// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatMoney formats a currency amount with the given symbol, comma
// grouping, and two decimals. e.g., ("RM", 30000) -> "RM 30,000.00"
func FormatMoney(symbol string, v float64) string {
	neg := math.Signbit(v)
	if neg {
		v = -v
	}

	cents := int64(math.Round(v * 100))
	whole := cents / 100
	frac := cents % 100

	s := fmt.Sprintf("%s %s.%02d", symbol, FormatNumber(whole), frac)
	if neg {
		return "-" + s
	}
	return s
}

// FormatMoneyCompact formats a currency amount with k/M suffixes for tight
// columns. e.g., ("RM", 30000) -> "RM 30k"
func FormatMoneyCompact(symbol string, v float64) string {
	neg := math.Signbit(v)
	abs := math.Abs(v)

	var s string
	switch {
	case abs >= 1_000_000:
		s = strconv.FormatFloat(abs/1_000_000, 'f', 1, 64) + "M"
	case abs >= 10_000:
		s = strconv.FormatFloat(abs/1_000, 'f', 0, 64) + "k"
	case abs >= 1_000:
		s = strconv.FormatFloat(abs/1_000, 'f', 1, 64) + "k"
	default:
		s = strconv.FormatFloat(abs, 'f', 0, 64)
	}

	if neg {
		return "-" + symbol + " " + s
	}
	return symbol + " " + s
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}
