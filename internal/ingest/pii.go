package ingest

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// piiSampleRows bounds how many rows are inspected for PII values.
const piiSampleRows = 10

var piiValuePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b[A-Z]{1,2}\d{1,2}[A-Z]?\s*\d[A-Z]{2}\b`), // UK postcode
	regexp.MustCompile(`\b\d{2}[-\s]?\d{2}[-\s]?\d{2}\b`),              // sort code
	regexp.MustCompile(`\b\d{8}\b`),                                    // account number
	regexp.MustCompile(`\b(0\d{10}|\+44\s?\d{10}|\d{4}\s\d{3}\s\d{4})\b`),
	regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
	regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z0-9]{1,30}\b`), // IBAN
}

var piiColumnNames = []string{
	"address", "addr", "street", "road", "postcode", "post code", "zip",
	"sort code", "sortcode", "account number", "account no", "bank account",
	"phone", "telephone", "mobile", "fax",
	"email", "e-mail", "e mail",
	"iban", "bic", "swift",
	"national insurance", "ni number", "nino",
}

// StripResult reports what StripPII removed.
type StripResult struct {
	StrippedColumns []string `json:"stripped_columns"`
	Warnings        []string `json:"warnings"`
}

// StripPII removes columns that look like personal or banking data, judged by
// header name or by string values in the first rows. Columns listed in keep
// are never removed. The input sheet is not modified.
func StripPII(sheet Sheet, keep ...string) (Sheet, StripResult) {
	result := StripResult{StrippedColumns: []string{}, Warnings: []string{}}
	if len(sheet.Rows) == 0 {
		return Sheet{Columns: slices.Clone(sheet.Columns)}, result
	}

	for _, col := range sheet.Columns {
		if slices.Contains(keep, col) {
			continue
		}
		if isPIIColumnName(col) || sampleHasPII(sheet.Rows, col) {
			result.StrippedColumns = append(result.StrippedColumns, col)
		}
	}

	if len(result.StrippedColumns) > 0 {
		result.Warnings = append(result.Warnings, fmt.Sprintf("Stripped %d columns containing sensitive data: %s",
			len(result.StrippedColumns), strings.Join(result.StrippedColumns, ", ")))
	}

	cleaned := Sheet{
		Columns: make([]string, 0, len(sheet.Columns)-len(result.StrippedColumns)),
		Rows:    make([]Row, len(sheet.Rows)),
	}
	for _, col := range sheet.Columns {
		if !slices.Contains(result.StrippedColumns, col) {
			cleaned.Columns = append(cleaned.Columns, col)
		}
	}
	for i, row := range sheet.Rows {
		clean := make(Row, len(cleaned.Columns))
		for k, v := range row {
			if !slices.Contains(result.StrippedColumns, k) {
				clean[k] = v
			}
		}
		cleaned.Rows[i] = clean
	}

	return cleaned, result
}

func isPIIColumnName(column string) bool {
	lower := strings.ToLower(column)
	for _, name := range piiColumnNames {
		if strings.Contains(lower, name) {
			return true
		}
	}
	return false
}

func sampleHasPII(rows []Row, column string) bool {
	for _, row := range rows[:min(len(rows), piiSampleRows)] {
		s, ok := row[column].(string)
		if !ok {
			continue
		}
		for _, re := range piiValuePatterns {
			if re.MatchString(s) {
				return true
			}
		}
	}
	return false
}
