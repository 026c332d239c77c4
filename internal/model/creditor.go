package model

import "time"

// CreditorRecord is one creditor row after sanitization.
type CreditorRecord struct {
	Name            string                  `json:"name"`
	RawAmount       string                  `json:"raw_amount"`
	RawTier         string                  `json:"raw_tier"`
	Tier            TierCode                `json:"tier"`
	SanitizedAmount SanitizedValue[float64] `json:"sanitized_amount"`
	// ClaimDate is set only when a date column was mapped.
	ClaimDate *SanitizedValue[time.Time] `json:"claim_date,omitempty"`
	RowNumber int                        `json:"row_number"`
}

// Amount returns the sanitized amount value.
func (r CreditorRecord) Amount() float64 {
	return r.SanitizedAmount.Value
}

// DuplicateKind describes how strongly a duplicate group matched.
type DuplicateKind string

// Duplicate kinds.
const (
	DuplicateExactNameAndAmount DuplicateKind = "exact_name_and_amount"
	DuplicateNameOnly           DuplicateKind = "name_only"
)

// DuplicateMember is the slice of a record that duplicate detection looks at.
type DuplicateMember struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	RowNumber int     `json:"row_number"`
}

// DuplicateGroup is a set of two or more records whose normalized names collide.
type DuplicateGroup struct {
	Kind     DuplicateKind     `json:"kind"`
	Severity Severity          `json:"severity"`
	Message  string            `json:"message"`
	Members  []DuplicateMember `json:"members"`
}

// RowIssue ties a non-informational sanitization warning to its row.
type RowIssue struct {
	CreditorName string              `json:"creditor_name"`
	Warning      SanitizationWarning `json:"warning"`
	RowNumber    int                 `json:"row_number"`
}

// IntegrityReport aggregates sanitization findings across a batch.
type IntegrityReport struct {
	DuplicateGroups []DuplicateGroup `json:"duplicate_groups"`
	AmountIssues    []RowIssue       `json:"amount_issues"`
	Summary         []string         `json:"summary"`
	TotalRows       int              `json:"total_rows"`
	ValidRows       int              `json:"valid_rows"`
	BlockingIssues  int              `json:"blocking_issues"`
	WarningIssues   int              `json:"warning_issues"`
	InfoIssues      int              `json:"info_issues"`
	CanProceed      bool             `json:"can_proceed"`
}
