// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatCurrency formats a monetary value in BRL notation: dot-separated
// thousands, comma decimals. e.g., 1234.5 -> "R$ 1.234,50"
func FormatCurrency(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}

	s := strconv.FormatFloat(v, 'f', 2, 64)
	intPart, decPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	remainder := len(intPart) % 3
	if remainder > 0 {
		grouped.WriteString(intPart[:remainder])
	}
	for i := remainder; i < len(intPart); i += 3 {
		if grouped.Len() > 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteString(intPart[i : i+3])
	}

	out := "R$ " + grouped.String() + "," + decPart
	if neg {
		return "-" + out
	}
	return out
}

// FormatHours formats an hour count. Whole values drop the decimals.
// e.g., 8 -> "8h", 7.5 -> "7.5h"
func FormatHours(h float64) string {
	if h == float64(int64(h)) {
		return fmt.Sprintf("%dh", int64(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// FormatPercent formats a 0-100 percentage with one decimal.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", pct)
}

// FormatQuantity formats a physical quantity with its unit label.
// e.g., (40, "m2") -> "40 m2", (2.5, "m3") -> "2.50 m3"
func FormatQuantity(q float64, unit string) string {
	var s string
	if q == float64(int64(q)) {
		s = strconv.FormatInt(int64(q), 10)
	} else {
		s = strconv.FormatFloat(q, 'f', 2, 64)
	}
	if unit == "" {
		return s
	}
	return s + " " + unit
}

// FormatProductivity formats an hours-per-unit ratio.
func FormatProductivity(p float64) string {
	return strconv.FormatFloat(p, 'f', 2, 64)
}

// FormatDeviation formats a cost deviation with an explicit sign, positive
// meaning under budget.
func FormatDeviation(d float64) string {
	if d >= 0 {
		return "+" + FormatCurrency(d)
	}
	return FormatCurrency(d)
}
