package statement

import (
	"fmt"

	"fjacquet/pdf2firefly/internal/currencyutils"
	"fjacquet/pdf2firefly/internal/models"
)

// Transactions converts the table's data rows into output transactions.
//
// Per row: the combined Withdrawal/Deposit cell is classified into exactly
// one amount, Descriptions and Details are joined with " - " when both are
// present, Channel is copied into Category, and Notes carries the
// Time/Eff.Date value when one exists. Rows that are entirely empty or whose
// cell classifies to no amount are dropped.
func (t *Table) Transactions() []models.Transaction {
	transactions := make([]models.Transaction, 0, t.Len())

	for i := 0; i < t.Len(); i++ {
		if t.rowEmpty(i) {
			continue
		}

		withdrawal, deposit := currencyutils.ClassifyAmount(t.Get(i, ColumnAmount))
		if withdrawal == nil && deposit == nil {
			continue
		}

		transactions = append(transactions, models.Transaction{
			Date:        t.Get(i, ColumnDate),
			Description: joinDescription(t.Get(i, ColumnDescription), t.Get(i, ColumnDetails)),
			Withdrawal:  models.FormatAmount(withdrawal),
			Deposit:     models.FormatAmount(deposit),
			Category:    t.Get(i, ColumnChannel),
			Notes:       formatNotes(t.Get(i, ColumnTime)),
		})
	}

	return transactions
}

// joinDescription concatenates the Descriptions and Details cells with a
// " - " separator when both are non-empty, and uses whichever is non-empty
// otherwise.
func joinDescription(description, details string) string {
	if description != "" && details != "" {
		return description + " - " + details
	}
	if description != "" {
		return description
	}
	return details
}

// formatNotes renders the Notes column from the Time/Eff.Date value.
func formatNotes(timeValue string) string {
	if timeValue == "" {
		return ""
	}
	return fmt.Sprintf("Time/Eff.Date: %s", timeValue)
}
