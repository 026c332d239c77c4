package classification

import (
	"fmt"
	"sort"

	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/dustin/go-humanize"
)

// WagesThreshold is the per-employee preferential cap under Sch.6 Para.9(c).
const WagesThreshold = 800.0

// Statutory rule citations.
const (
	RuleCrownPreference = "[FA2020 s.98] Crown Preference Breach"
	RulePreferential    = "[IA1986 Sch.6] Preferential Creditor Breach"
	RuleWagesThreshold  = "[IA1986 Sch.6 Para.9(c)] Wages Threshold"
)

var defaultDetector = MustNewDetector(DefaultVocabulary())

// Analyzer runs the statutory rules over a batch of records.
type Analyzer struct {
	detector       *Detector
	wagesThreshold float64
}

// NewAnalyzer creates an analyzer. A nil detector uses the default vocabulary.
func NewAnalyzer(detector *Detector) *Analyzer {
	if detector == nil {
		detector = defaultDetector
	}
	return &Analyzer{
		detector:       detector,
		wagesThreshold: WagesThreshold,
	}
}

// AnalyzeClassifications audits records with the default vocabulary.
func AnalyzeClassifications(records []model.CreditorRecord) model.ClassificationResult {
	return NewAnalyzer(nil).Analyze(records)
}

// Analyze audits records and returns warnings sorted critical first, then by input order.
func (a *Analyzer) Analyze(records []model.CreditorRecord) model.ClassificationResult {
	result := model.ClassificationResult{Warnings: []model.ClassificationWarning{}}

	for _, r := range records {
		if !r.Tier.IsValid() {
			continue
		}

		found := a.evaluate(r)
		for _, w := range found {
			if w.Severity != model.ClassificationCritical {
				continue
			}
			switch w.Category {
			case model.CategoryCrown:
				result.CrownGapTotal += w.Amount
			case model.CategoryEmployee:
				result.WagesGapTotal += w.Amount
			}
		}
		result.Warnings = append(result.Warnings, found...)
	}

	sort.SliceStable(result.Warnings, func(i, j int) bool {
		return result.Warnings[i].Severity.Rank() < result.Warnings[j].Severity.Rank()
	})

	for _, w := range result.Warnings {
		switch w.Severity {
		case model.ClassificationCritical:
			result.Summary.CriticalCount++
		case model.ClassificationAdvisory:
			result.Summary.WarningCount++
		}
	}
	result.TotalAtRisk = result.CrownGapTotal + result.WagesGapTotal

	return result
}

// evaluate applies every rule to one record. It reads nothing but r.
func (a *Analyzer) evaluate(r model.CreditorRecord) []model.ClassificationWarning {
	var warnings []model.ClassificationWarning
	amount := r.Amount()
	formatted := humanize.Commaf(amount)

	if a.detector.IsCrownCreditor(r.Name) && r.Tier == model.TierUnsecured {
		crownType := a.detector.CrownType(r.Name)
		warnings = append(warnings, model.ClassificationWarning{
			RowNumber:     r.RowNumber,
			CreditorName:  r.Name,
			Amount:        amount,
			CurrentTier:   r.Tier,
			SuggestedTier: model.TierSecondaryPreferential,
			Severity:      model.ClassificationCritical,
			Category:      model.CategoryCrown,
			Rule:          RuleCrownPreference,
			RegulatoryBreach: fmt.Sprintf("STATUTORY BREACH: %s identified in Tier 6 (Unsecured). "+
				"Finance Act 2020 designates this as Tier 3b (Secondary Preferential).", crownType),
			ImpactDescription: fmt.Sprintf("Unsecured creditors would be overpaid by £%s. "+
				"This creates personal regulatory liability for the distributing practitioner.", formatted),
		})
	}

	if !a.detector.IsEmployeePreferential(r.Name) {
		return warnings
	}

	if r.Tier == model.TierUnsecured {
		warnings = append(warnings, model.ClassificationWarning{
			RowNumber:     r.RowNumber,
			CreditorName:  r.Name,
			Amount:        amount,
			CurrentTier:   r.Tier,
			SuggestedTier: model.TierEmployeePreferential,
			Severity:      model.ClassificationCritical,
			Category:      model.CategoryEmployee,
			Rule:          RulePreferential,
			RegulatoryBreach: "STATUTORY BREACH: Employee claim identified in Tier 6 (Unsecured). " +
				"Insolvency Act 1986 Schedule 6 designates this as Tier 3a (Preferential).",
			ImpactDescription: fmt.Sprintf("£%s should rank ahead of unsecured creditors. "+
				"Incorrect distribution creates personal liability.", formatted),
		})
	}

	// One entry per row: the threshold note only stands alone.
	if amount > a.wagesThreshold && len(warnings) == 0 &&
		r.Tier != model.TierEmployeePreferential && a.detector.IsWagesClaim(r.Name) {
		threshold := humanize.Commaf(a.wagesThreshold)
		warnings = append(warnings, model.ClassificationWarning{
			RowNumber:         r.RowNumber,
			CreditorName:      r.Name,
			Amount:            amount,
			CurrentTier:       r.Tier,
			SuggestedTier:     model.TierEmployeePreferential,
			Severity:          model.ClassificationAdvisory,
			Category:          model.CategoryEmployee,
			Rule:              RuleWagesThreshold,
			RegulatoryBreach:  fmt.Sprintf("Amount exceeds £%s preferential cap per employee under Para 9(c) Schedule 6.", threshold),
			ImpactDescription: fmt.Sprintf("Excess above £%s may need to be split between Preferential (3a) and Unsecured (6).", threshold),
		})
	}

	return warnings
}
