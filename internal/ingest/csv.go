package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/formal-bridge/internal/common"
)

// ReadCSV decodes a CSV document whose first record is the header row.
// Empty cells become nil. Short records are padded with nil cells.
func ReadCSV(r io.Reader) (Sheet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return Sheet{}, fmt.Errorf("read header: %w", common.ErrEmptyBatch)
	}
	if err != nil {
		return Sheet{}, fmt.Errorf("read header: %w", err)
	}

	columns := make([]string, len(header))
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == "" {
			h = fmt.Sprintf("Column %d", i+1)
		}
		if _, dup := seen[h]; dup {
			return Sheet{}, fmt.Errorf("%w: duplicate column %q", common.ErrInvalidConfig, h)
		}
		seen[h] = struct{}{}
		columns[i] = h
	}

	sheet := Sheet{Columns: columns}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Sheet{}, fmt.Errorf("read row: %w", err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			var cell any
			if i < len(record) && strings.TrimSpace(record[i]) != "" {
				cell = record[i]
			}
			row[col] = cell
		}
		sheet.Rows = append(sheet.Rows, row)
	}

	if len(sheet.Rows) == 0 {
		return Sheet{}, fmt.Errorf("no data rows: %w", common.ErrEmptyBatch)
	}
	return sheet, nil
}
