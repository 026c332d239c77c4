// Package model defines the core data structures for the bridge application.
package model

// TierCode is a statutory priority class under the Insolvency Act 1986.
type TierCode string

// Tier constants in distribution order.
const (
	// TierUnrecognized marks a label that could not be mapped to a statutory tier.
	TierUnrecognized TierCode = ""
	// TierFixedCharge covers fixed charge holders.
	TierFixedCharge TierCode = "1"
	// TierPreferential covers preferential creditors ranking before the 2020 reforms.
	TierPreferential TierCode = "2"
	// TierEmployeePreferential covers employee preferential claims.
	TierEmployeePreferential TierCode = "3a"
	// TierSecondaryPreferential covers Crown claims elevated by the Finance Act 2020.
	TierSecondaryPreferential TierCode = "3b"
	// TierPrescribedPart covers the s.176A carve-out for unsecured creditors.
	TierPrescribedPart TierCode = "4"
	// TierFloatingCharge covers floating charge holders.
	TierFloatingCharge TierCode = "5"
	// TierUnsecured covers ordinary unsecured creditors.
	TierUnsecured TierCode = "6"
	// TierStatutoryInterest covers statutory interest on proved debts.
	TierStatutoryInterest TierCode = "7"
	// TierShareholders covers members of the company.
	TierShareholders TierCode = "8"
)

// AllTiers returns every recognised tier in distribution order.
func AllTiers() []TierCode {
	return []TierCode{
		TierFixedCharge,
		TierPreferential,
		TierEmployeePreferential,
		TierSecondaryPreferential,
		TierPrescribedPart,
		TierFloatingCharge,
		TierUnsecured,
		TierStatutoryInterest,
		TierShareholders,
	}
}

// IsValid reports whether t is one of the statutory tiers.
func (t TierCode) IsValid() bool {
	switch t {
	case TierFixedCharge, TierPreferential, TierEmployeePreferential, TierSecondaryPreferential,
		TierPrescribedPart, TierFloatingCharge, TierUnsecured, TierStatutoryInterest, TierShareholders:
		return true
	case TierUnrecognized:
		return false
	}
	return false
}

// Description returns the statutory meaning of the tier.
func (t TierCode) Description() string {
	switch t {
	case TierFixedCharge:
		return "Fixed Charge Holders"
	case TierPreferential:
		return "Preferential Creditors (pre-FA2020)"
	case TierEmployeePreferential:
		return "Preferential Creditors (employees)"
	case TierSecondaryPreferential:
		return "Secondary Preferential (Crown, FA2020)"
	case TierPrescribedPart:
		return "Prescribed Part (s.176A)"
	case TierFloatingCharge:
		return "Floating Charge Holders"
	case TierUnsecured:
		return "Unsecured Creditors"
	case TierStatutoryInterest:
		return "Statutory Interest"
	case TierShareholders:
		return "Shareholders"
	case TierUnrecognized:
		return "Unrecognized"
	}
	return "Unrecognized"
}

// String returns the tier code, or "unrecognized".
func (t TierCode) String() string {
	if t == TierUnrecognized {
		return "unrecognized"
	}
	return string(t)
}
