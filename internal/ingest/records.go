package ingest

import (
	"context"
	"fmt"
	"strings"

	"github.com/Veraticus/formal-bridge/internal/classification"
	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/Veraticus/formal-bridge/internal/sanitize"
)

// BuildOptions controls record construction.
type BuildOptions struct {
	// Progress is called once per sanitized amount.
	Progress func()
	// Workers bounds concurrent amount sanitization.
	Workers int
}

// BuildRecords converts sheet rows into creditor records. Rows with a blank
// creditor name are dropped. When no tier column is mapped, or the cell is
// empty, the record is placed in tier 6 as a placeholder.
func BuildRecords(ctx context.Context, sheet Sheet, mapping ColumnMapping, opts BuildOptions) ([]model.CreditorRecord, error) {
	if err := mapping.Validate(sheet.Columns); err != nil {
		return nil, err
	}

	records := make([]model.CreditorRecord, 0, len(sheet.Rows))
	amounts := make([]any, 0, len(sheet.Rows))

	for i, row := range sheet.Rows {
		name := strings.TrimSpace(CellString(row[mapping.Name]))
		if name == "" {
			continue
		}

		raw := row[mapping.Amount]
		rec := model.CreditorRecord{
			RowNumber: mapping.RowNumber(i),
			Name:      name,
			RawAmount: CellString(raw),
			Tier:      model.TierUnsecured,
		}

		if mapping.Tier != "" && !isBlank(row[mapping.Tier]) {
			rec.RawTier = strings.TrimSpace(CellString(row[mapping.Tier]))
			tier, ok := classification.NormalizeTier(rec.RawTier)
			if !ok {
				tier = model.TierUnrecognized
			}
			rec.Tier = tier
		}

		if mapping.Date != "" {
			d := sanitize.Date(row[mapping.Date])
			rec.ClaimDate = &d
		}

		records = append(records, rec)
		amounts = append(amounts, raw)
	}

	sanitized, err := sanitize.Amounts(ctx, amounts, sanitize.BatchOptions{
		Progress: opts.Progress,
		Workers:  opts.Workers,
	})
	if err != nil {
		return nil, fmt.Errorf("build records: %w", err)
	}
	for i := range records {
		records[i].SanitizedAmount = sanitized[i]
	}

	return records, nil
}

// DateIssues lists non-informational date warnings across records.
func DateIssues(records []model.CreditorRecord) []model.RowIssue {
	issues := []model.RowIssue{}
	for _, r := range records {
		if r.ClaimDate == nil {
			continue
		}
		for _, w := range r.ClaimDate.Warnings {
			if w.Severity == model.SeverityInfo {
				continue
			}
			issues = append(issues, model.RowIssue{
				RowNumber:    r.RowNumber,
				CreditorName: r.Name,
				Warning:      w,
			})
		}
	}
	return issues
}
