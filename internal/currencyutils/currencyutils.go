// Package currencyutils provides amount normalization and the
// withdrawal/deposit classification used by the statement transformer.
package currencyutils

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountPattern matches the first contiguous run of digits and decimal
// points in a cell. Only the first run is used; anything after it is
// treated as annotation text.
var amountPattern = regexp.MustCompile(`[\d.]+`)

// StandardizeAmount strips whitespace, currency symbols and thousands
// separators from a raw withdrawal/deposit cell so the numeric run can be
// extracted. Handles values like "$1,234.56 CR" or "฿500.00".
func StandardizeAmount(value string) string {
	value = strings.TrimSpace(value)
	replacer := strings.NewReplacer("$", "", "฿", "", ",", "")
	return replacer.Replace(value)
}

// ClassifyAmount parses a combined withdrawal/deposit cell and splits it
// into a (withdrawal, deposit) pair. Exactly one of the results is non-nil
// when an amount is present; both are nil when the cell holds no amount.
//
// Direction indicators, checked on the normalized value:
//   - "dr", "withdrawal" or a leading "-"  -> withdrawal
//   - "cr", "deposit" or a leading "+"     -> deposit
//
// A value with no indicator is classified as a deposit. Statement formats
// downstream rely on this fallback, so it must not be changed even though
// it cannot tell an unsigned withdrawal from a deposit.
func ClassifyAmount(value string) (withdrawal, deposit *decimal.Decimal) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}

	cleaned := StandardizeAmount(value)

	match := amountPattern.FindString(cleaned)
	if match == "" {
		return nil, nil
	}

	amount, err := decimal.NewFromString(match)
	if err != nil {
		// Runs like "1.2.3" are not parseable amounts; drop the value.
		return nil, nil
	}

	lower := strings.ToLower(cleaned)
	switch {
	case strings.Contains(lower, "dr") ||
		strings.Contains(lower, "withdrawal") ||
		strings.HasPrefix(cleaned, "-"):
		return &amount, nil
	case strings.Contains(lower, "cr") ||
		strings.Contains(lower, "deposit") ||
		strings.HasPrefix(cleaned, "+"):
		return nil, &amount
	default:
		return nil, &amount
	}
}
