// Package sanitize normalizes raw spreadsheet cells into typed values and
// discloses every transformation it performs.
package sanitize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Veraticus/formal-bridge/internal/model"
)

// Non-deterministic values block certification even when a number is present.
var blockingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\btbc\b`),
	regexp.MustCompile(`(?i)\bapprox`),
	regexp.MustCompile(`(?i)\bestimate[ds]?\b`),
	regexp.MustCompile(`(?i)\bsee\s+note`),
	regexp.MustCompile(`(?i)\bunknown\b`),
	regexp.MustCompile(`(?i)\bpending\b`),
	regexp.MustCompile(`(?i)\btba\b`),
	regexp.MustCompile(`\?`),
}

var (
	currencySymbols = regexp.MustCompile(`[£$€¥]|(?i:\b(?:GBP|EUR|USD)\b)`)
	negativeParens  = regexp.MustCompile(`^\s*\(([^)]+)\)\s*$`)
	nonNumericChars = regexp.MustCompile(`[^\d.\-]`)
)

// Amount sanitizes a monetary cell. raw may be a string, any Go numeric type, or nil.
func Amount(raw any) model.SanitizedValue[float64] {
	if n, ok := numericValue(raw); ok {
		original := strconv.FormatFloat(n, 'f', -1, 64)
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return blocked(original, model.CodeParseFailed,
				fmt.Sprintf("Could not parse %q as a number", original),
				"Enter a valid numeric amount")
		}
		return model.SanitizedValue[float64]{
			Value:    n,
			Original: original,
			Warnings: []model.SanitizationWarning{},
			IsValid:  true,
		}
	}

	original := ""
	if raw != nil {
		original = strings.TrimSpace(fmt.Sprint(raw))
	}

	if original == "" {
		return blocked(original, model.CodeEmptyAmount, "Amount field is empty", "Enter a numeric value")
	}

	for _, p := range blockingPatterns {
		if p.MatchString(original) {
			return blocked(original, model.CodeNonDeterministic,
				fmt.Sprintf("Non-deterministic value: %q", original),
				"Replace with exact numeric amount before certification")
		}
	}

	warnings := []model.SanitizationWarning{}
	// U+2212 MINUS SIGN, as pasted from word processors.
	cleaned := strings.ReplaceAll(original, "\u2212", "-")

	if currencySymbols.MatchString(cleaned) {
		warnings = append(warnings, model.SanitizationWarning{
			Severity: model.SeverityInfo,
			Code:     model.CodeCurrencyStripped,
			Message:  "Currency symbol removed",
		})
		cleaned = currencySymbols.ReplaceAllString(cleaned, "")
	}

	// Accounting-style negatives: (5,000) -> -5,000
	if m := negativeParens.FindStringSubmatch(cleaned); m != nil {
		warnings = append(warnings, model.SanitizationWarning{
			Severity:   model.SeverityWarning,
			Code:       model.CodeContraDetected,
			Message:    "Negative/contra amount detected",
			Suggestion: "Verify this represents a contra entry or credit balance",
		})
		cleaned = "-" + m[1]
	}

	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = nonNumericChars.ReplaceAllString(cleaned, "")

	// ParseFloat rejects a minus sign anywhere but the front.
	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(value, 0) {
		return blocked(original, model.CodeParseFailed,
			fmt.Sprintf("Could not parse %q as a number", original),
			"Enter a valid numeric amount")
	}

	if value == 0 {
		// Normalise -0 so re-sanitizing the output is stable.
		value = 0
		warnings = append(warnings, model.SanitizationWarning{
			Severity:   model.SeverityWarning,
			Code:       model.CodeZeroAmount,
			Message:    "Amount is zero",
			Suggestion: "Verify this is intentional (e.g., fully paid claim)",
		})
	}
	if value < 0 {
		warnings = append(warnings, model.SanitizationWarning{
			Severity:   model.SeverityWarning,
			Code:       model.CodeNegativeAmount,
			Message:    "Negative amount - may require netting before distribution",
			Suggestion: "Review contra entries with IP before proceeding",
		})
	}

	return model.SanitizedValue[float64]{
		Value:          value,
		Original:       original,
		Warnings:       warnings,
		IsValid:        true,
		RequiresReview: hasSeverity(warnings, model.SeverityWarning),
	}
}

func numericValue(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	}
	return 0, false
}

func blocked(original, code, message, suggestion string) model.SanitizedValue[float64] {
	return model.SanitizedValue[float64]{
		Original: original,
		Warnings: []model.SanitizationWarning{{
			Severity:   model.SeverityBlocking,
			Code:       code,
			Message:    message,
			Suggestion: suggestion,
		}},
		IsValid:        false,
		RequiresReview: true,
	}
}

func hasSeverity(warnings []model.SanitizationWarning, s model.Severity) bool {
	for _, w := range warnings {
		if w.Severity == s {
			return true
		}
	}
	return false
}
