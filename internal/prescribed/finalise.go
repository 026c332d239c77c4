package prescribed

import (
	"fmt"
	"math"
	"time"
)

// Finalisation describes the end-of-case inputs to the prescribed part.
type Finalisation struct {
	ChargeDate                time.Time `json:"charge_date"`
	NetFloatingChargeProperty float64   `json:"net_floating_charge_property"`
	Costs                     float64   `json:"costs"`
	ApplyDeMinimis            bool      `json:"apply_de_minimis"`
}

// Outcome is the result of finalising a case.
type Outcome struct {
	Notes             []string `json:"notes"`
	Result            Result   `json:"result"`
	NetAfterCosts     float64  `json:"net_after_costs"`
	NilDistribution   bool     `json:"nil_distribution"`
	DeMinimisEligible bool     `json:"de_minimis_eligible"`
	DeMinimisApplied  bool     `json:"de_minimis_applied"`
}

// Finalise deducts costs from the net floating charge property and computes
// the prescribed part on what remains. A nil distribution is recorded when
// nothing remains. When the remainder is below the first tranche boundary and
// the office holder elects the de minimis exception (s.176A(3)), no prescribed
// part is set aside.
func Finalise(f Finalisation) Outcome {
	net := f.NetFloatingChargeProperty - f.Costs
	if math.IsNaN(net) || math.IsInf(net, 0) {
		net = 0
	}

	out := Outcome{
		NetAfterCosts: net,
		Notes:         []string{},
	}

	if net <= 0 {
		out.NilDistribution = true
		out.Result = Calculate(net, f.ChargeDate)
		out.Notes = append(out.Notes, fmt.Sprintf("Costs of %s exhaust the floating charge property. Nil distribution.",
			FormatAmount(f.Costs)))
		return out
	}

	out.DeMinimisEligible = net < TrancheBoundary
	if out.DeMinimisEligible && f.ApplyDeMinimis {
		out.DeMinimisApplied = true
		out.Result = Calculate(0, f.ChargeDate)
		out.Result.NetProperty = net
		out.Result.DeMinimisEligible = true
		out.Result.VerificationSteps = []string{
			fmt.Sprintf("Net Property: %s", FormatAmount(net)),
			fmt.Sprintf("Net Property %s < %s. De minimis exception (s.176A(3)) applied. Prescribed part waived.",
				FormatAmount(net), FormatAmount(TrancheBoundary)),
		}
		out.Notes = append(out.Notes, "Prescribed part waived under s.176A(3).")
		return out
	}

	if f.ApplyDeMinimis {
		out.Notes = append(out.Notes, fmt.Sprintf("De minimis not available: net property %s is not below %s.",
			FormatAmount(net), FormatAmount(TrancheBoundary)))
	}
	out.Result = Calculate(net, f.ChargeDate)
	return out
}
