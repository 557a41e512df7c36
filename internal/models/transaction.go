// Package models provides the data structures used throughout the application.
package models

import (
	"github.com/shopspring/decimal"
)

// Transaction represents a single statement line in the Firefly III import
// format. Field order matches the output CSV column order exactly.
//
// Withdrawal and Deposit carry the formatted amount ("45.00") or the empty
// string. At most one of them is set; a Transaction with neither set is never
// emitted by the transformer.
type Transaction struct {
	Date        string `csv:"Date" json:"Date"`
	Description string `csv:"Description" json:"Description"`
	Withdrawal  string `csv:"Withdrawal" json:"Withdrawal"`
	Deposit     string `csv:"Deposit" json:"Deposit"`
	Category    string `csv:"Category" json:"Category"`
	Notes       string `csv:"Notes" json:"Notes"`
}

// HasAmount reports whether at least one of Withdrawal/Deposit is set.
func (t Transaction) HasAmount() bool {
	return t.Withdrawal != "" || t.Deposit != ""
}

// FormatAmount renders a decimal amount the way the output CSV carries it,
// always with two decimal places. A nil amount renders as the empty string.
func FormatAmount(amount *decimal.Decimal) string {
	if amount == nil {
		return ""
	}
	return amount.StringFixed(2)
}
