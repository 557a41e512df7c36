// Package statement transforms raw table rows extracted from a PDF bank
// statement into Firefly III import transactions.
package statement

import (
	"strings"

	"fjacquet/pdf2firefly/internal/parsererror"
)

// Column names looked up in the statement header row.
const (
	ColumnDate        = "Date"
	ColumnTime        = "Time/Eff.Date"
	ColumnDescription = "Descriptions"
	ColumnAmount      = "Withdrawal / Deposit"
	ColumnChannel     = "Channel"
	ColumnDetails     = "Details"
)

// Table is a header-indexed view over raw statement rows. The first raw row
// defines the column names; every following row is data. The header index is
// built once, replacing per-row name lookups.
type Table struct {
	index map[string]int
	rows  [][]string
}

// NewTable builds a Table from the flattened raw rows of a statement.
// It returns a *parsererror.DataError when rows is empty, because without a
// header row no column can be resolved.
func NewTable(rows [][]string) (*Table, error) {
	if len(rows) == 0 {
		return nil, &parsererror.DataError{Reason: "no data extracted from PDF"}
	}

	index := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		// First occurrence wins when a header name repeats.
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}

	return &Table{
		index: index,
		rows:  rows[1:],
	}, nil
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Has reports whether the header row defined the given column.
func (t *Table) Has(column string) bool {
	_, ok := t.index[column]
	return ok
}

// Get returns the trimmed cell value of the given column in data row i.
// Missing columns and rows shorter than the header degrade to the empty
// string rather than failing.
func (t *Table) Get(i int, column string) string {
	col, ok := t.index[column]
	if !ok {
		return ""
	}
	row := t.rows[i]
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// rowEmpty reports whether every cell of data row i is empty.
func (t *Table) rowEmpty(i int) bool {
	for _, cell := range t.rows[i] {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
