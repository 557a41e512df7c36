package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/pdf2firefly/internal/parsererror"
)

func TestNewTableEmptyInput(t *testing.T) {
	table, err := NewTable(nil)
	assert.Nil(t, table)
	require.Error(t, err)

	var dataErr *parsererror.DataError
	assert.ErrorAs(t, err, &dataErr)
}

func TestNewTableHeaderOnly(t *testing.T) {
	table, err := NewTable([][]string{{ColumnDate, ColumnDescription}})
	require.NoError(t, err)
	assert.Equal(t, 0, table.Len())
	assert.True(t, table.Has(ColumnDate))
	assert.False(t, table.Has(ColumnChannel))
}

func TestTableGet(t *testing.T) {
	table, err := NewTable([][]string{
		{ColumnDate, ColumnDescription, ColumnChannel},
		{"2024-01-05", " Grocery ", "POS"},
		{"2024-01-06"}, // shorter than the header
	})
	require.NoError(t, err)
	require.Equal(t, 2, table.Len())

	assert.Equal(t, "Grocery", table.Get(0, ColumnDescription))
	assert.Equal(t, "POS", table.Get(0, ColumnChannel))

	// Trailing columns missing from a short row degrade to empty values.
	assert.Equal(t, "2024-01-06", table.Get(1, ColumnDate))
	assert.Equal(t, "", table.Get(1, ColumnChannel))

	// Columns the header never defined degrade to empty values too.
	assert.Equal(t, "", table.Get(0, ColumnDetails))
}

func TestTableDuplicateHeaderFirstWins(t *testing.T) {
	table, err := NewTable([][]string{
		{ColumnDate, ColumnDate},
		{"first", "second"},
	})
	require.NoError(t, err)
	assert.Equal(t, "first", table.Get(0, ColumnDate))
}
