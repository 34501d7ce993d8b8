// Package money centralizes parsing of the loosely formatted numeric strings
// found in report rows. Every caller that needs a number out of a report cell
// goes through this package, so the "invalid means zero" rule lives in exactly
// one place.
package money

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Parse converts an upstream amount string into a decimal. Amounts arrive
// comma-grouped ("1,234.50"); commas and surrounding whitespace are stripped
// before parsing. Empty or unparseable input yields zero, never an error.
func Parse(s string) decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// ParseInt reads an identifier-like column (IIN/BIN, KBK) as an integer for
// numeric sorting. Invalid input yields zero.
func ParseInt(s string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0
	}

	return n
}
