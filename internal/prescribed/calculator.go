// Package prescribed computes the s.176A Insolvency Act 1986 prescribed part
// together with a literal trace of every step, for inclusion in certificates.
package prescribed

import (
	"fmt"
	"math"
	"time"
)

// Statutory constants.
const (
	// CapBeforeThreshold applies to floating charges created before 6 April 2020.
	CapBeforeThreshold = 600000.0
	// CapFromThreshold applies to floating charges created on or after 6 April 2020.
	CapFromThreshold = 800000.0
	// TrancheBoundary is the net property covered by the first tranche.
	TrancheBoundary = 10000.0
	// FirstTrancheRate applies to net property up to TrancheBoundary.
	FirstTrancheRate = 0.5
	// SecondTrancheRate applies to net property above TrancheBoundary.
	SecondTrancheRate = 0.2
)

// Legislative bases recorded on each result.
const (
	BasisOriginal = "Insolvency Act 1986 s.176A"
	BasisAmended  = "Insolvency Act 1986 s.176A (as amended SI 2020/211)"
)

// ThresholdDate is the day the higher cap takes effect.
var ThresholdDate = time.Date(2020, time.April, 6, 0, 0, 0, 0, time.UTC)

// Result is an immutable prescribed part computation.
type Result struct {
	ReferenceDate     time.Time `json:"reference_date"`
	LegislativeBasis  string    `json:"legislative_basis"`
	VerificationSteps []string  `json:"verification_steps"`
	NetProperty       float64   `json:"net_property"`
	FirstTranche      float64   `json:"first_tranche"`
	SecondTranche     float64   `json:"second_tranche"`
	UncappedTotal     float64   `json:"uncapped_total"`
	CapApplied        float64   `json:"cap_applied"`
	FinalAmount       float64   `json:"final_amount"`
	WasCapped         bool      `json:"was_capped"`
	DeMinimisEligible bool      `json:"de_minimis_eligible"`
}

// ApplicableCap returns the cap for a floating charge created on date.
// Only the calendar day of date matters; its location is respected.
func ApplicableCap(date time.Time) float64 {
	if isBeforeThreshold(date) {
		return CapBeforeThreshold
	}
	return CapFromThreshold
}

func isBeforeThreshold(date time.Time) bool {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Before(ThresholdDate)
}

// Calculate computes the prescribed part of netProperty for a floating charge
// created on date. It is defined for every input; non-finite values and
// values at or below zero produce a zero result with one explanatory step.
func Calculate(netProperty float64, date time.Time) Result {
	limit := ApplicableCap(date)
	result := Result{
		NetProperty:      netProperty,
		ReferenceDate:    date,
		CapApplied:       limit,
		LegislativeBasis: BasisOriginal,
	}
	if !isBeforeThreshold(date) {
		result.LegislativeBasis = BasisAmended
	}

	if math.IsNaN(netProperty) || math.IsInf(netProperty, 0) {
		result.NetProperty = 0
		result.VerificationSteps = []string{"Net Property is not a finite amount. No prescribed part."}
		return result
	}

	if netProperty <= 0 {
		result.VerificationSteps = []string{
			fmt.Sprintf("Net Property %s ≤ £0. No prescribed part.", FormatAmount(netProperty)),
		}
		return result
	}

	steps := []string{fmt.Sprintf("Net Property: %s", FormatAmount(netProperty))}

	switch {
	case netProperty > TrancheBoundary:
		steps = append(steps, fmt.Sprintf("Net Property %s > %s threshold.",
			FormatAmount(netProperty), FormatAmount(TrancheBoundary)))
	case netProperty == TrancheBoundary:
		steps = append(steps, fmt.Sprintf("Net Property %s = %s threshold.",
			FormatAmount(netProperty), FormatAmount(TrancheBoundary)))
	default:
		result.DeMinimisEligible = true
		steps = append(steps, fmt.Sprintf("Net Property %s < %s threshold. De minimis exception (s.176A(3)) may be considered.",
			FormatAmount(netProperty), FormatAmount(TrancheBoundary)))
	}

	firstBase := math.Min(netProperty, TrancheBoundary)
	result.FirstTranche = math.Floor(firstBase * FirstTrancheRate)
	steps = append(steps, fmt.Sprintf("First Tranche: 50%% of %s = %s",
		FormatAmount(firstBase), FormatAmount(result.FirstTranche)))

	remainder := math.Max(0, netProperty-TrancheBoundary)
	result.SecondTranche = math.Floor(remainder * SecondTrancheRate)
	if remainder > 0 {
		steps = append(steps, fmt.Sprintf("Excess: %s. Second Tranche: 20%% of Excess = %s",
			FormatAmount(remainder), FormatAmount(result.SecondTranche)))
	} else {
		steps = append(steps, "Excess: £0. Second Tranche: £0")
	}

	result.UncappedTotal = result.FirstTranche + result.SecondTranche
	steps = append(steps, fmt.Sprintf("Total Calculated: %s", FormatAmount(result.UncappedTotal)))

	result.WasCapped = result.UncappedTotal > limit
	result.FinalAmount = math.Min(result.UncappedTotal, limit)
	if result.WasCapped {
		steps = append(steps, fmt.Sprintf("Cap Check: %s > %s. Cap Applied.",
			FormatAmount(result.UncappedTotal), FormatAmount(limit)))
	} else {
		steps = append(steps, fmt.Sprintf("Cap Check: %s ≤ %s. No Cap Applied.",
			FormatAmount(result.UncappedTotal), FormatAmount(limit)))
	}

	steps = append(steps, fmt.Sprintf("Prescribed Part: %s (%s, cap for charges created %s %s).",
		FormatAmount(result.FinalAmount), result.LegislativeBasis, capPeriod(date), FormatDate(ThresholdDate)))
	steps = append(steps, fmt.Sprintf("Check: %s ≤ %s and %s ≤ %s.",
		FormatAmount(result.FinalAmount), FormatAmount(limit),
		FormatAmount(result.FinalAmount), FormatAmount(netProperty)))

	result.VerificationSteps = steps
	return result
}

func capPeriod(date time.Time) string {
	if isBeforeThreshold(date) {
		return "before"
	}
	return "on or after"
}
