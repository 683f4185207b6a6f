// Package currency formats monetary amounts the way German quotes and
// invoices expect them. The pricing engine returns raw floats; this is
// purely a presentation concern shared by every renderer.
package currency

import (
	"fmt"
	"strings"
)

// FormatEUR renders an amount as "1.234,56 €": comma decimal separator,
// dot thousands grouping, always two decimals.
func FormatEUR(amount float64) string {
	negative := false
	if amount < 0 {
		negative = true
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(raw, ".", 2)
	intPart := groupThousands(parts[0])

	result := intPart + "," + parts[1] + " €"
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
	result := s[n-3:]
	remaining := s[:n-3]
	for len(remaining) > 3 {
		result = remaining[len(remaining)-3:] + "." + result
		remaining = remaining[:len(remaining)-3]
	}
	return remaining + "." + result
}
