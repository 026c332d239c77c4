// Package ingest turns decoded spreadsheet rows into creditor records ready for
// the integrity report and classification engines.
package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Veraticus/formal-bridge/internal/common"
)

// Row is one data row keyed by column header. Cells are nil, string, or numeric.
type Row map[string]any

// Sheet is a decoded worksheet. Columns preserves header order.
type Sheet struct {
	Columns []string
	Rows    []Row
}

// ColumnMapping names the columns that carry each creditor field.
// Tier and Date are optional.
type ColumnMapping struct {
	Name   string `mapstructure:"name" json:"name"`
	Amount string `mapstructure:"amount" json:"amount"`
	Tier   string `mapstructure:"tier" json:"tier,omitempty"`
	Date   string `mapstructure:"date" json:"date,omitempty"`
	// HeaderRow is the 1-based spreadsheet row holding the headers. Zero means 1.
	HeaderRow int `mapstructure:"header_row" json:"header_row,omitempty"`
}

// Validate checks that the required columns are mapped and that every mapped
// column exists in columns.
func (m ColumnMapping) Validate(columns []string) error {
	if m.Name == "" {
		return fmt.Errorf("%w: creditor name column is not mapped", common.ErrMissingColumn)
	}
	if m.Amount == "" {
		return fmt.Errorf("%w: amount column is not mapped", common.ErrMissingColumn)
	}
	if m.HeaderRow < 0 {
		return fmt.Errorf("%w: header row %d", common.ErrInvalidConfig, m.HeaderRow)
	}

	present := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		present[c] = struct{}{}
	}
	for _, c := range m.Columns() {
		if _, ok := present[c]; !ok {
			return fmt.Errorf("%w: %q", common.ErrMissingColumn, c)
		}
	}
	return nil
}

// Columns returns the mapped column names in field order.
func (m ColumnMapping) Columns() []string {
	cols := make([]string, 0, 4)
	for _, c := range []string{m.Name, m.Amount, m.Tier, m.Date} {
		if c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

// RowNumber returns the spreadsheet row number of data row index i.
func (m ColumnMapping) RowNumber(i int) int {
	header := m.HeaderRow
	if header == 0 {
		header = 1
	}
	return i + header + 1
}

// CellString renders a cell the way it appeared in the sheet.
func CellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return strconv.FormatFloat(c, 'g', -1, 64)
		}
		return strconv.FormatFloat(c, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(c), 'f', -1, 32)
	case fmt.Stringer:
		return c.String()
	default:
		return fmt.Sprint(c)
	}
}

func isBlank(v any) bool {
	return strings.TrimSpace(CellString(v)) == ""
}
