package ingest

import (
	"testing"

	"github.com/Veraticus/formal-bridge/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnMapping_Validate(t *testing.T) {
	columns := []string{"Creditor", "Amount", "Type"}

	tests := []struct {
		name    string
		mapping ColumnMapping
		wantErr error
	}{
		{"complete", ColumnMapping{Name: "Creditor", Amount: "Amount", Tier: "Type"}, nil},
		{"tier optional", ColumnMapping{Name: "Creditor", Amount: "Amount"}, nil},
		{"name missing", ColumnMapping{Amount: "Amount"}, common.ErrMissingColumn},
		{"amount missing", ColumnMapping{Name: "Creditor"}, common.ErrMissingColumn},
		{"unknown column", ColumnMapping{Name: "Creditor", Amount: "Balance"}, common.ErrMissingColumn},
		{"unknown date column", ColumnMapping{Name: "Creditor", Amount: "Amount", Date: "Date"}, common.ErrMissingColumn},
		{"negative header row", ColumnMapping{Name: "Creditor", Amount: "Amount", HeaderRow: -1}, common.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mapping.Validate(columns)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestColumnMapping_RowNumber(t *testing.T) {
	assert.Equal(t, 2, ColumnMapping{}.RowNumber(0))
	assert.Equal(t, 11, ColumnMapping{}.RowNumber(9))
	assert.Equal(t, 5, ColumnMapping{HeaderRow: 4}.RowNumber(0))
}

func TestCellString(t *testing.T) {
	assert.Empty(t, CellString(nil))
	assert.Equal(t, "TBC", CellString("TBC"))
	assert.Equal(t, "1234.5", CellString(1234.5))
	assert.Equal(t, "42", CellString(42))
	assert.Equal(t, "100000", CellString(100000.0))
}
