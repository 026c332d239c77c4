package pipeline

import (
	"context"
	"testing"

	"github.com/Veraticus/formal-bridge/internal/classification"
	"github.com/Veraticus/formal-bridge/internal/common"
	"github.com/Veraticus/formal-bridge/internal/ingest"
	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var mapping = ingest.ColumnMapping{Name: "Creditor", Amount: "Amount", Tier: "Type"}

func cleanSheet() ingest.Sheet {
	return ingest.Sheet{
		Columns: []string{"Creditor", "Amount", "Type", "Email"},
		Rows: []ingest.Row{
			{"Creditor": "HMRC - VAT Liability", "Amount": "£15,000", "Type": "6", "Email": "vat@hmrc.example"},
			{"Creditor": "ABC Supplies Ltd", "Amount": "4,200", "Type": "Unsecured", "Email": nil},
			{"Creditor": "Employee Wages - J Smith", "Amount": "2500", "Type": "6", "Email": nil},
			{"Creditor": "Barclays Bank", "Amount": "150000", "Type": "Fixed", "Email": nil},
			{"Creditor": "Credit Note", "Amount": "(500)", "Type": "6", "Email": nil},
			{"Creditor": "", "Amount": "1", "Type": "6", "Email": nil},
		},
	}
}

func TestRun(t *testing.T) {
	out, err := Run(context.Background(), cleanSheet(), mapping, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"Email"}, out.Stripped.StrippedColumns)
	assert.Len(t, out.Records, 5)
	assert.False(t, out.Blocked())
	assert.Equal(t, 2, out.Report.WarningIssues, "contra and negative on the credit note")

	// The contra entry is excluded from classification.
	require.Len(t, out.Eligible, 4)
	require.NotNil(t, out.Classification)
	assert.Nil(t, out.Initial)
	assert.Equal(t, 2, out.Classification.Summary.CriticalCount)
	assert.InDelta(t, 15000.0, out.Classification.CrownGapTotal, 1e-9)
	assert.InDelta(t, 2500.0, out.Classification.WagesGapTotal, 1e-9)

	assert.InDelta(t, 150000.0, out.TierTotals[model.TierFixedCharge], 1e-9)
	assert.InDelta(t, 21700.0, out.TierTotals[model.TierUnsecured], 1e-9)
	assert.Empty(t, out.Corrections)
}

func TestRun_AutoCorrect(t *testing.T) {
	opts := DefaultOptions()
	opts.AutoCorrect = true
	opts.Workers = 3

	out, err := Run(context.Background(), cleanSheet(), mapping, opts)
	require.NoError(t, err)

	require.NotNil(t, out.Initial)
	assert.Len(t, out.Initial.Warnings, 2)
	assert.Empty(t, out.Classification.Warnings)
	assert.Len(t, out.Corrections, 2)

	assert.InDelta(t, 15000.0, out.TierTotals[model.TierSecondaryPreferential], 1e-9)
	assert.InDelta(t, 2500.0, out.TierTotals[model.TierEmployeePreferential], 1e-9)
	assert.InDelta(t, 4200.0, out.TierTotals[model.TierUnsecured], 1e-9)

	// Records keep their original tiers; only the eligible set is corrected.
	assert.Equal(t, model.TierUnsecured, out.Records[0].Tier)
}

func TestRun_Blocked(t *testing.T) {
	sheet := cleanSheet()
	sheet.Rows[1]["Amount"] = "TBC"

	out, err := Run(context.Background(), sheet, mapping, DefaultOptions())
	require.NoError(t, err)

	assert.True(t, out.Blocked())
	assert.Equal(t, 1, out.Report.BlockingIssues)
	assert.Nil(t, out.Classification)
	assert.Empty(t, out.Eligible)
	assert.Nil(t, out.TierTotals)
}

func TestRun_UnrecognizedTierExcluded(t *testing.T) {
	sheet := cleanSheet()
	sheet.Rows[0]["Type"] = "Disputed"

	out, err := Run(context.Background(), sheet, mapping, DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, model.TierUnrecognized, out.Records[0].Tier)
	assert.Len(t, out.Eligible, 3)
	assert.Zero(t, out.Classification.CrownGapTotal)
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		sheet   ingest.Sheet
		mapping ingest.ColumnMapping
		wantErr error
	}{
		{"no rows", ingest.Sheet{Columns: []string{"Creditor", "Amount"}}, mapping, common.ErrEmptyBatch},
		{"missing column", cleanSheet(), ingest.ColumnMapping{Name: "Creditor", Amount: "Balance"}, common.ErrMissingColumn},
		{
			"all names blank",
			ingest.Sheet{
				Columns: []string{"Creditor", "Amount"},
				Rows:    []ingest.Row{{"Creditor": nil, "Amount": "1"}},
			},
			ingest.ColumnMapping{Name: "Creditor", Amount: "Amount"},
			common.ErrEmptyBatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Run(context.Background(), tt.sheet, tt.mapping, DefaultOptions())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClassify_RefusesBlockedBatch(t *testing.T) {
	report := model.IntegrityReport{BlockingIssues: 2}

	_, _, err := Classify(classification.NewAnalyzer(nil), nil, report)
	require.ErrorIs(t, err, common.ErrBlockingIssues)
}

func TestEligible(t *testing.T) {
	valid := func(name string, amount float64, tier model.TierCode) model.CreditorRecord {
		return model.CreditorRecord{
			Name:            name,
			Tier:            tier,
			SanitizedAmount: model.SanitizedValue[float64]{Value: amount, IsValid: true},
		}
	}
	invalid := valid("Pending", 0, model.TierUnsecured)
	invalid.SanitizedAmount.IsValid = false

	got := Eligible([]model.CreditorRecord{
		valid("A", 100, model.TierUnsecured),
		valid("Zero", 0, model.TierUnsecured),
		valid("Contra", -50, model.TierUnsecured),
		valid("Unknown", 100, model.TierUnrecognized),
		invalid,
	})

	require.Len(t, got, 1)
	assert.Equal(t, "A", got[0].Name)
}
