package sanitize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/formal-bridge/internal/model"
)

type dateOrder int

const (
	orderDMY dateOrder = iota
	orderYMD
	orderDayMonthNameYear
	orderMonthNameDayYear
)

type datePattern struct {
	re    *regexp.Regexp
	order dateOrder
}

// UK formats first; the first matching pattern decides the interpretation.
var datePatterns = []datePattern{
	{regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{2,4})$`), orderDMY},
	{regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{2,4})$`), orderDMY},
	{regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`), orderYMD},
	{regexp.MustCompile(`^(\d{1,2})(?:st|nd|rd|th)?\s+([A-Za-z]+)\.?\s+(\d{2,4})$`), orderDayMonthNameYear},
	{regexp.MustCompile(`^([A-Za-z]+)\.?\s+(\d{1,2})(?:st|nd|rd|th)?,?\s+(\d{2,4})$`), orderMonthNameDayYear},
}

var monthNames = map[string]time.Month{
	"jan": time.January, "january": time.January,
	"feb": time.February, "february": time.February,
	"mar": time.March, "march": time.March,
	"apr": time.April, "april": time.April,
	"may": time.May,
	"jun": time.June, "june": time.June,
	"jul": time.July, "july": time.July,
	"aug": time.August, "august": time.August,
	"sep": time.September, "sept": time.September, "september": time.September,
	"oct": time.October, "october": time.October,
	"nov": time.November, "november": time.November,
	"dec": time.December, "december": time.December,
}

// yearPivot splits two-digit years between centuries.
const yearPivot = 50

// Date normalizes a date cell. The returned time is midnight UTC on the parsed day.
func Date(raw any) model.SanitizedValue[time.Time] {
	original := ""
	if raw != nil {
		original = strings.TrimSpace(fmt.Sprint(raw))
	}

	if original == "" {
		return blockedDate(original, model.CodeEmptyDate, "Date field is empty", "")
	}

	for _, p := range datePatterns {
		m := p.re.FindStringSubmatch(original)
		if m == nil {
			continue
		}

		day, month, year, yearDigits, ok := extractParts(p.order, m)
		if !ok {
			return blockedDate(original, model.CodeInvalidDate,
				fmt.Sprintf("Invalid date: %q", original), "")
		}

		var warnings []model.SanitizationWarning
		if yearDigits == 2 {
			if year < yearPivot {
				year += 2000
			} else {
				year += 1900
			}
			warnings = append(warnings, model.SanitizationWarning{
				Severity: model.SeverityInfo,
				Code:     model.CodeYearInferred,
				Message:  fmt.Sprintf("2-digit year interpreted as %d", year),
			})
		}

		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Day() != day || date.Month() != month || date.Year() != year {
			return blockedDate(original, model.CodeInvalidDate,
				fmt.Sprintf("Invalid date: %q", original), "")
		}

		if warnings == nil {
			warnings = []model.SanitizationWarning{}
		}
		return model.SanitizedValue[time.Time]{
			Value:          date,
			Original:       original,
			Warnings:       warnings,
			IsValid:        true,
			RequiresReview: len(warnings) > 0,
		}
	}

	return blockedDate(original, model.CodeUnrecognizedFormat,
		fmt.Sprintf("Could not parse date: %q", original), "Use DD/MM/YYYY format")
}

// extractParts also reports how many digits the year was written with, so
// that only two-digit years are inferred.
func extractParts(order dateOrder, m []string) (day int, month time.Month, year, yearDigits int, ok bool) {
	var yearText string
	switch order {
	case orderDMY:
		day = atoi(m[1])
		month = time.Month(atoi(m[2]))
		yearText = m[3]
	case orderYMD:
		yearText = m[1]
		month = time.Month(atoi(m[2]))
		day = atoi(m[3])
	case orderDayMonthNameYear:
		day = atoi(m[1])
		if month, ok = lookupMonth(m[2]); !ok {
			return 0, 0, 0, 0, false
		}
		yearText = m[3]
	case orderMonthNameDayYear:
		if month, ok = lookupMonth(m[1]); !ok {
			return 0, 0, 0, 0, false
		}
		day = atoi(m[2])
		yearText = m[3]
	}
	return day, month, atoi(yearText), len(yearText), true
}

func lookupMonth(name string) (time.Month, bool) {
	lower := strings.ToLower(name)
	if m, ok := monthNames[lower]; ok {
		return m, true
	}
	if len(lower) > 3 {
		// "Janu", "Octob": accept any prefix of a full month name.
		for full, m := range monthNames {
			if len(full) > 3 && strings.HasPrefix(full, lower) {
				return m, true
			}
		}
	}
	return 0, false
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func blockedDate(original, code, message, suggestion string) model.SanitizedValue[time.Time] {
	return model.SanitizedValue[time.Time]{
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
