// Package cli provides formatting and rendering utilities for terminal
// output.
package cli

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with the currency symbol, thousands
// separators, and two decimal places. e.g. 1234.5 -> "$1,234.50".
func FormatMoney(amount decimal.Decimal, currency string) string {
	neg := amount.IsNegative()
	s := amount.Abs().StringFixed(2)

	intPart := s
	frac := ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, frac = s[:dot], s[dot:]
	}

	var b strings.Builder
	remainder := len(intPart) % 3
	if remainder > 0 {
		b.WriteString(intPart[:remainder])
	}
	for i := remainder; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}

	out := currency + b.String() + frac
	if neg {
		return "-" + out
	}
	return out
}

// FormatSigned prefixes income with "+" and expense with "-".
func FormatSigned(amount decimal.Decimal, income bool, currency string) string {
	if income {
		return "+" + FormatMoney(amount, currency)
	}
	return "-" + FormatMoney(amount, currency)
}

// Truncate shortens a string to max runes, appending an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}

// ShortID returns the first segment of a prefixed uuid id, enough to
// identify a record in a listing. e.g. "txn_6ba7b810-..." -> "6ba7b810".
func ShortID(id string) string {
	if i := strings.IndexByte(id, '_'); i >= 0 {
		id = id[i+1:]
	}
	if i := strings.IndexByte(id, '-'); i >= 0 {
		return id[:i]
	}
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
