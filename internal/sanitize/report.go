package sanitize

import (
	"fmt"

	"github.com/Veraticus/formal-bridge/internal/model"
)

// GenerateIntegrityReport aggregates the sanitization findings of a batch.
// Duplicate groups are attached to the report but never counted as issues.
func GenerateIntegrityReport(records []model.CreditorRecord) model.IntegrityReport {
	report := model.IntegrityReport{
		TotalRows:    len(records),
		AmountIssues: []model.RowIssue{},
	}

	for _, r := range records {
		if r.SanitizedAmount.IsValid {
			report.ValidRows++
		}

		for _, w := range r.SanitizedAmount.Warnings {
			switch w.Severity {
			case model.SeverityBlocking:
				report.BlockingIssues++
			case model.SeverityWarning:
				report.WarningIssues++
			case model.SeverityInfo:
				report.InfoIssues++
				continue
			}

			report.AmountIssues = append(report.AmountIssues, model.RowIssue{
				RowNumber:    r.RowNumber,
				CreditorName: r.Name,
				Warning:      w,
			})
		}
	}

	report.DuplicateGroups = DetectDuplicates(MembersOf(records))
	report.CanProceed = report.BlockingIssues == 0
	report.Summary = summarize(report)

	return report
}

func summarize(report model.IntegrityReport) []string {
	var summary []string

	if n := report.BlockingIssues; n > 0 {
		summary = append(summary, fmt.Sprintf("%d %s correction before certification", n, plural(n, "value requires", "values require")))
	}
	if n := report.WarningIssues; n > 0 {
		summary = append(summary, fmt.Sprintf("%d %s flagged for review", n, plural(n, "item", "items")))
	}
	if n := len(report.DuplicateGroups); n > 0 {
		summary = append(summary, fmt.Sprintf("%d potential %s detected", n, plural(n, "duplicate", "duplicates")))
	}
	if len(summary) == 0 {
		summary = append(summary, "All values validated successfully")
	}

	return summary
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
