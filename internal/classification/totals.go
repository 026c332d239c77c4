package classification

import (
	"math"

	"github.com/Veraticus/formal-bridge/internal/model"
)

// TierTotals maps each statutory tier to the sum of its valid claim amounts.
type TierTotals map[model.TierCode]float64

// SumTiers totals valid records by tier. Unrecognised tiers are skipped.
func SumTiers(records []model.CreditorRecord) TierTotals {
	totals := make(TierTotals, len(model.AllTiers()))
	for _, tier := range model.AllTiers() {
		totals[tier] = 0
	}
	for _, r := range records {
		if !r.SanitizedAmount.IsValid || !r.Tier.IsValid() {
			continue
		}
		totals[r.Tier] += r.Amount()
	}
	return totals
}

// Preferential returns the combined total of tiers 2, 3a and 3b.
func (t TierTotals) Preferential() float64 {
	return t[model.TierPreferential] + t[model.TierEmployeePreferential] + t[model.TierSecondaryPreferential]
}

// NetProperty is the asset position after fixed charges are deducted.
type NetProperty struct {
	NetProperty       float64 `json:"net_property"`
	FixedChargesTotal float64 `json:"fixed_charges_total"`
	PreferentialTotal float64 `json:"preferential_total"`
}

// CalculateNetProperty deducts fixed charge claims (tier 1) from totalAssets.
// The result is floored at zero.
func CalculateNetProperty(totalAssets float64, records []model.CreditorRecord) NetProperty {
	totals := SumTiers(records)
	fixed := totals[model.TierFixedCharge]

	return NetProperty{
		NetProperty:       math.Max(0, totalAssets-fixed),
		FixedChargesTotal: fixed,
		PreferentialTotal: totals.Preferential(),
	}
}
