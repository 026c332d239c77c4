package classification

import (
	"testing"

	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func creditor(row int, name string, amount float64, tier model.TierCode) model.CreditorRecord {
	return model.CreditorRecord{
		RowNumber: row,
		Name:      name,
		Tier:      tier,
		SanitizedAmount: model.SanitizedValue[float64]{
			Value:    amount,
			IsValid:  true,
			Warnings: []model.SanitizationWarning{},
		},
	}
}

func TestAnalyzeClassifications_Crown(t *testing.T) {
	tests := []struct {
		name string
		crt  string
	}{
		{"HMRC Corporation Tax", "HMRC"},
		{"VAT Liability Q4", "VAT"},
		{"PAYE Settlement", "PAYE"},
		{"CIS Deductions Owing", "CIS"},
		{"National Insurance Contributions", "National Insurance"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeClassifications([]model.CreditorRecord{
				creditor(1, tt.name, 100000, model.TierUnsecured),
			})

			require.Len(t, result.Warnings, 1)
			w := result.Warnings[0]
			assert.Equal(t, model.ClassificationCritical, w.Severity)
			assert.Equal(t, model.TierSecondaryPreferential, w.SuggestedTier)
			assert.Equal(t, model.TierUnsecured, w.CurrentTier)
			assert.Equal(t, RuleCrownPreference, w.Rule)
			assert.Contains(t, w.RegulatoryBreach, tt.crt)
			assert.Contains(t, w.ImpactDescription, "£100,000")
			assert.InDelta(t, 100000.0, result.CrownGapTotal, 1e-9)
			assert.InDelta(t, 100000.0, result.TotalAtRisk, 1e-9)
			assert.Equal(t, 1, result.Summary.CriticalCount)
		})
	}
}

func TestAnalyzeClassifications_CrownAlreadyCorrect(t *testing.T) {
	result := AnalyzeClassifications([]model.CreditorRecord{
		creditor(1, "HMRC VAT", 50000, model.TierSecondaryPreferential),
		creditor(2, "HMRC PAYE", 50000, model.TierEmployeePreferential),
	})

	assert.Empty(t, result.Warnings)
	assert.Zero(t, result.TotalAtRisk)
}

func TestAnalyzeClassifications_CompanyNamesIgnored(t *testing.T) {
	result := AnalyzeClassifications([]model.CreditorRecord{
		creditor(1, "VAT Consulting Ltd", 5000, model.TierUnsecured),
		creditor(2, "Holiday Inn Conference", 3000, model.TierUnsecured),
		creditor(3, "Wageworks", 9000, model.TierUnsecured),
		creditor(4, "ABC Supplies Ltd", 4200, model.TierUnsecured),
	})

	assert.Empty(t, result.Warnings)
}

func TestAnalyzeClassifications_HolidayInnNeverSuggests3a(t *testing.T) {
	for _, tier := range model.AllTiers() {
		result := AnalyzeClassifications([]model.CreditorRecord{
			creditor(1, "Holiday Inn Conference", 12000, tier),
		})
		for _, w := range result.Warnings {
			assert.NotEqual(t, model.TierEmployeePreferential, w.SuggestedTier)
		}
	}
}

func TestAnalyzeClassifications_Employee(t *testing.T) {
	result := AnalyzeClassifications([]model.CreditorRecord{
		creditor(2, "Holiday Pay - M Jones", 600, model.TierUnsecured),
		creditor(3, "Employee Wages - J Smith", 2500, model.TierUnsecured),
	})

	require.Len(t, result.Warnings, 2, "tier 6 wages produce a single critical entry, not a threshold duplicate")
	for _, w := range result.Warnings {
		assert.Equal(t, model.ClassificationCritical, w.Severity)
		assert.Equal(t, model.TierEmployeePreferential, w.SuggestedTier)
		assert.Equal(t, RulePreferential, w.Rule)
	}
	assert.InDelta(t, 3100.0, result.WagesGapTotal, 1e-9)
	assert.Zero(t, result.CrownGapTotal)
}

func TestAnalyzeClassifications_WagesThreshold(t *testing.T) {
	tests := []struct {
		name      string
		record    model.CreditorRecord
		wantWarns int
	}{
		{
			name:      "wages above threshold in floating tier",
			record:    creditor(4, "Wages - K Patel", 1200, model.TierFloatingCharge),
			wantWarns: 1,
		},
		{
			name:   "wages at threshold",
			record: creditor(4, "Wages - K Patel", 800, model.TierFloatingCharge),
		},
		{
			name:   "wages already preferential",
			record: creditor(4, "Wages - K Patel", 5000, model.TierEmployeePreferential),
		},
		{
			name:   "holiday pay is not subject to the wages note",
			record: creditor(4, "Holiday Pay - K Patel", 5000, model.TierFloatingCharge),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AnalyzeClassifications([]model.CreditorRecord{tt.record})

			require.Len(t, result.Warnings, tt.wantWarns)
			if tt.wantWarns == 0 {
				return
			}
			w := result.Warnings[0]
			assert.Equal(t, model.ClassificationAdvisory, w.Severity)
			assert.Equal(t, RuleWagesThreshold, w.Rule)
			assert.Equal(t, model.TierEmployeePreferential, w.SuggestedTier)
			assert.Contains(t, w.RegulatoryBreach, "£800")
			assert.Zero(t, result.TotalAtRisk, "threshold notes carry no exposure")
			assert.Equal(t, 1, result.Summary.WarningCount)
		})
	}
}

func TestAnalyzeClassifications_UnrecognizedTierSkipped(t *testing.T) {
	result := AnalyzeClassifications([]model.CreditorRecord{
		creditor(1, "HMRC VAT", 50000, model.TierUnrecognized),
		creditor(2, "Wages - A Person", 50000, model.TierUnrecognized),
	})

	assert.Empty(t, result.Warnings)
}

func TestAnalyzeClassifications_Ordering(t *testing.T) {
	result := AnalyzeClassifications([]model.CreditorRecord{
		creditor(2, "Wages - First", 1500, model.TierFloatingCharge),
		creditor(3, "HMRC PAYE", 8500, model.TierUnsecured),
		creditor(4, "Wages - Second", 2500, model.TierFixedCharge),
		creditor(5, "VAT Q1", 4000, model.TierUnsecured),
		creditor(6, "Redundancy - Third", 900, model.TierUnsecured),
	})

	rows := make([]int, len(result.Warnings))
	for i, w := range result.Warnings {
		rows[i] = w.RowNumber
	}

	assert.Equal(t, []int{3, 5, 6, 2, 4}, rows)
	assert.Equal(t, 3, result.Summary.CriticalCount)
	assert.Equal(t, 2, result.Summary.WarningCount)
	assert.InDelta(t, 12500.0, result.CrownGapTotal, 1e-9)
	assert.InDelta(t, 900.0, result.WagesGapTotal, 1e-9)
	assert.InDelta(t, 13400.0, result.TotalAtRisk, 1e-9)
}

func TestAnalyzeClassifications_CrownAndEmployeeOnSameRow(t *testing.T) {
	result := AnalyzeClassifications([]model.CreditorRecord{
		creditor(7, "PAYE on wages", 4000, model.TierUnsecured),
	})

	require.Len(t, result.Warnings, 2)
	assert.Equal(t, model.TierSecondaryPreferential, result.Warnings[0].SuggestedTier)
	assert.Equal(t, model.TierEmployeePreferential, result.Warnings[1].SuggestedTier)
	assert.InDelta(t, 8000.0, result.TotalAtRisk, 1e-9)
}

func TestAnalyzer_CustomVocabulary(t *testing.T) {
	vocab := DefaultVocabulary()
	vocab.FalsePositives = append(vocab.FalsePositives, `vat\s*19`)
	analyzer := NewAnalyzer(MustNewDetector(vocab))

	result := analyzer.Analyze([]model.CreditorRecord{
		creditor(1, "VAT 19 Bar", 2000, model.TierUnsecured),
		creditor(2, "VAT Return", 2000, model.TierUnsecured),
	})

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, 2, result.Warnings[0].RowNumber)
}

func TestAnalyzeClassifications_Empty(t *testing.T) {
	result := AnalyzeClassifications(nil)

	assert.NotNil(t, result.Warnings)
	assert.Empty(t, result.Warnings)
	assert.Zero(t, result.TotalAtRisk)
}
