package classification

import (
	"testing"

	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestSumTiers(t *testing.T) {
	invalid := creditor(9, "Pending", 0, model.TierUnsecured)
	invalid.SanitizedAmount.IsValid = false

	totals := SumTiers([]model.CreditorRecord{
		creditor(2, "Bank", 100000, model.TierFixedCharge),
		creditor(3, "Wages", 1500, model.TierEmployeePreferential),
		creditor(4, "HMRC", 2500, model.TierSecondaryPreferential),
		creditor(5, "Supplier A", 400, model.TierUnsecured),
		creditor(6, "Supplier B", 600, model.TierUnsecured),
		creditor(7, "Mystery", 999, model.TierUnrecognized),
		invalid,
	})

	assert.Len(t, totals, len(model.AllTiers()))
	assert.InDelta(t, 100000.0, totals[model.TierFixedCharge], 1e-9)
	assert.InDelta(t, 1000.0, totals[model.TierUnsecured], 1e-9)
	assert.InDelta(t, 4000.0, totals.Preferential(), 1e-9)
	assert.Zero(t, totals[model.TierShareholders])
	_, hasUnrecognized := totals[model.TierUnrecognized]
	assert.False(t, hasUnrecognized)
}

func TestCalculateNetProperty(t *testing.T) {
	records := []model.CreditorRecord{
		creditor(2, "Bank", 150000, model.TierFixedCharge),
		creditor(3, "Wages", 1500, model.TierEmployeePreferential),
		creditor(4, "HMRC", 2500, model.TierSecondaryPreferential),
	}

	got := CalculateNetProperty(600000, records)
	assert.InDelta(t, 450000.0, got.NetProperty, 1e-9)
	assert.InDelta(t, 150000.0, got.FixedChargesTotal, 1e-9)
	assert.InDelta(t, 4000.0, got.PreferentialTotal, 1e-9)

	floored := CalculateNetProperty(100000, records)
	assert.Zero(t, floored.NetProperty)
}
