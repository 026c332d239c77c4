package model

// ClassificationSeverity ranks a classification finding.
type ClassificationSeverity string

// Classification severity constants.
const (
	ClassificationCritical ClassificationSeverity = "critical"
	ClassificationAdvisory ClassificationSeverity = "warning"
)

// Rank orders severities for sorting; lower ranks come first.
func (s ClassificationSeverity) Rank() int {
	switch s {
	case ClassificationCritical:
		return 0
	case ClassificationAdvisory:
		return 1
	}
	return 2
}

// RuleCategory groups classification rules by the exposure they track.
type RuleCategory string

// Rule categories.
const (
	CategoryCrown    RuleCategory = "crown"
	CategoryEmployee RuleCategory = "employee"
)

// ClassificationWarning flags a creditor that appears to sit in the wrong tier.
type ClassificationWarning struct {
	CreditorName      string                 `json:"creditor_name"`
	CurrentTier       TierCode               `json:"current_tier"`
	SuggestedTier     TierCode               `json:"suggested_tier"`
	Severity          ClassificationSeverity `json:"severity"`
	Category          RuleCategory           `json:"category"`
	Rule              string                 `json:"rule"`
	RegulatoryBreach  string                 `json:"regulatory_breach"`
	ImpactDescription string                 `json:"impact_description"`
	Amount            float64                `json:"amount"`
	RowNumber         int                    `json:"row_number"`
}

// ClassificationSummary counts warnings by severity.
type ClassificationSummary struct {
	CriticalCount int `json:"critical_count"`
	WarningCount  int `json:"warning_count"`
}

// ClassificationResult is the outcome of a classification audit.
type ClassificationResult struct {
	Warnings      []ClassificationWarning `json:"warnings"`
	Summary       ClassificationSummary   `json:"summary"`
	TotalAtRisk   float64                 `json:"total_at_risk"`
	CrownGapTotal float64                 `json:"crown_gap_total"`
	WagesGapTotal float64                 `json:"wages_gap_total"`
}
