// Package pipeline runs one creditor batch through PII stripping, sanitization,
// the integrity gate, and classification.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/formal-bridge/internal/classification"
	"github.com/Veraticus/formal-bridge/internal/common"
	"github.com/Veraticus/formal-bridge/internal/ingest"
	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/Veraticus/formal-bridge/internal/sanitize"
)

// Options configures a pipeline run.
type Options struct {
	Analyzer    *classification.Analyzer // nil uses the default vocabulary
	Progress    func()                   // called once per sanitized amount
	Workers     int                      // concurrent amount sanitization
	AutoCorrect bool                     // apply suggested tiers and re-analyze
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// Outcome is everything a run produced. It is plain data.
type Outcome struct {
	Classification *model.ClassificationResult `json:"classification,omitempty"`
	// Initial holds the analysis before corrections when AutoCorrect was set.
	Initial     *model.ClassificationResult `json:"initial_classification,omitempty"`
	TierTotals  classification.TierTotals   `json:"tier_totals,omitempty"`
	Stripped    ingest.StripResult          `json:"pii"`
	Report      model.IntegrityReport       `json:"integrity_report"`
	Records     []model.CreditorRecord      `json:"records"`
	Eligible    []model.CreditorRecord      `json:"eligible"`
	DateIssues  []model.RowIssue            `json:"date_issues"`
	Corrections []classification.Correction `json:"corrections"`
	Duration    time.Duration               `json:"duration"`
}

// Blocked reports whether the integrity gate stopped the run.
func (o *Outcome) Blocked() bool {
	return !o.Report.CanProceed
}

// Run processes one batch. A batch with blocking integrity issues is not an
// error: the outcome carries the report and no classification.
func Run(ctx context.Context, sheet ingest.Sheet, mapping ingest.ColumnMapping, opts Options) (*Outcome, error) {
	start := time.Now()

	if len(sheet.Rows) == 0 {
		return nil, common.ErrEmptyBatch
	}
	if err := mapping.Validate(sheet.Columns); err != nil {
		return nil, err
	}

	cleaned, stripped := ingest.StripPII(sheet, mapping.Columns()...)
	if len(stripped.StrippedColumns) > 0 {
		common.LogInfo("Stripped sensitive columns", common.Fields{
			"columns": stripped.StrippedColumns,
		})
	}

	records, err := ingest.BuildRecords(ctx, cleaned, mapping, ingest.BuildOptions{
		Progress: opts.Progress,
		Workers:  opts.Workers,
	})
	if err != nil {
		return nil, fmt.Errorf("sanitize batch: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("every row has a blank creditor name: %w", common.ErrEmptyBatch)
	}

	report := sanitize.GenerateIntegrityReport(records)
	common.LogDebug("Integrity report generated", common.Fields{
		"rows":     report.TotalRows,
		"valid":    report.ValidRows,
		"blocking": report.BlockingIssues,
		"warnings": report.WarningIssues,
	})

	out := &Outcome{
		Stripped:    stripped,
		Records:     records,
		Report:      report,
		DateIssues:  ingest.DateIssues(records),
		Eligible:    []model.CreditorRecord{},
		Corrections: []classification.Correction{},
	}

	if !report.CanProceed {
		common.LogInfo("Batch blocked by integrity issues", common.Fields{
			"blocking": report.BlockingIssues,
		})
		out.Duration = time.Since(start)
		return out, nil
	}

	if err := out.classify(opts); err != nil {
		return nil, err
	}

	out.Duration = time.Since(start)
	return out, nil
}

func (o *Outcome) classify(opts Options) error {
	analyzer := opts.Analyzer
	if analyzer == nil {
		analyzer = classification.NewAnalyzer(nil)
	}

	eligible, result, err := Classify(analyzer, o.Records, o.Report)
	if err != nil {
		return err
	}
	o.Eligible = eligible
	o.Classification = &result
	common.LogDebug("Classification complete", common.Fields{
		"eligible": len(eligible),
		"critical": result.Summary.CriticalCount,
		"warnings": result.Summary.WarningCount,
	})

	if opts.AutoCorrect && len(result.Warnings) > 0 {
		corrected := classification.ApplyCorrections(eligible, result.Warnings)
		again := analyzer.Analyze(corrected)

		o.Initial = &result
		o.Corrections = classification.DiffCorrections(eligible, corrected)
		o.Eligible = corrected
		o.Classification = &again
		common.LogInfo("Applied tier corrections", common.Fields{
			"corrections": len(o.Corrections),
			"remaining":   len(again.Warnings),
		})
	}

	o.TierTotals = classification.SumTiers(o.Eligible)
	return nil
}

// Classify analyzes the records that can carry a classification: valid,
// positive amounts in a recognised tier. It refuses a batch whose integrity
// report has blocking issues.
func Classify(analyzer *classification.Analyzer, records []model.CreditorRecord, report model.IntegrityReport) ([]model.CreditorRecord, model.ClassificationResult, error) {
	if !report.CanProceed {
		return nil, model.ClassificationResult{}, fmt.Errorf("%w: %d unresolved", common.ErrBlockingIssues, report.BlockingIssues)
	}

	eligible := Eligible(records)
	return eligible, analyzer.Analyze(eligible), nil
}

// Eligible filters records to those with a valid positive amount and a
// recognised tier.
func Eligible(records []model.CreditorRecord) []model.CreditorRecord {
	out := make([]model.CreditorRecord, 0, len(records))
	for _, r := range records {
		if !r.SanitizedAmount.IsValid || r.Amount() <= 0 || !r.Tier.IsValid() {
			continue
		}
		out = append(out, r)
	}
	return out
}
