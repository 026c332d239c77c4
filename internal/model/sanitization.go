package model

// Severity ranks how seriously a sanitization finding affects certification.
type Severity string

// Severity constants.
const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityBlocking Severity = "blocking"
)

// Warning codes emitted by the sanitizer.
const (
	CodeEmptyAmount        = "EMPTY_AMOUNT"
	CodeNonDeterministic   = "NON_DETERMINISTIC"
	CodeCurrencyStripped   = "CURRENCY_STRIPPED"
	CodeContraDetected     = "CONTRA_DETECTED"
	CodeParseFailed        = "PARSE_FAILED"
	CodeZeroAmount         = "ZERO_AMOUNT"
	CodeNegativeAmount     = "NEGATIVE_AMOUNT"
	CodeEmptyDate          = "EMPTY_DATE"
	CodeYearInferred       = "YEAR_INFERRED"
	CodeInvalidDate        = "INVALID_DATE"
	CodeUnrecognizedFormat = "UNRECOGNIZED_FORMAT"
)

// SanitizationWarning records one irregularity found while normalising a cell.
type SanitizationWarning struct {
	Severity   Severity `json:"severity"`
	Code       string   `json:"code"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// SanitizedValue is a typed cell value plus the audit trail of how it was obtained.
type SanitizedValue[T any] struct {
	Value          T                     `json:"value"`
	Original       string                `json:"original"`
	Warnings       []SanitizationWarning `json:"warnings"`
	IsValid        bool                  `json:"is_valid"`
	RequiresReview bool                  `json:"requires_review"`
}

// HasCode reports whether any warning carries the given code.
func (v SanitizedValue[T]) HasCode(code string) bool {
	for _, w := range v.Warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

// CountSeverity returns the number of warnings with severity s.
func (v SanitizedValue[T]) CountSeverity(s Severity) int {
	n := 0
	for _, w := range v.Warnings {
		if w.Severity == s {
			n++
		}
	}
	return n
}
