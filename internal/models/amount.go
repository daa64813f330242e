package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a statement amount in the bank's number format,
// where '.' is the thousands separator and ',' the decimal separator
// (e.g. "-12.345,67"). The boolean is false when the text is empty or
// malformed; that is never an error, the caller leaves the field unset.
func ParseAmount(text string) (decimal.Decimal, bool) {
	if text == "" {
		return decimal.Decimal{}, false
	}
	t := strings.ReplaceAll(text, ".", "")
	t = strings.ReplaceAll(t, ",", ".")
	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
