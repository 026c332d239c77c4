package classification

import "github.com/Veraticus/formal-bridge/internal/model"

// DefaultPatterns returns the statutory category vocabularies.
func DefaultPatterns() []Pattern {
	return []Pattern{
		// Crown preference (Finance Act 2020). Priority orders the label
		// reported when a name matches several taxes.
		{
			Name:     "vat",
			Label:    "VAT",
			Category: model.CategoryCrown,
			Regex:    `\b(vat|v\.a\.t|value\s*added\s*tax)\b`,
			Priority: 50,
		},
		{
			Name:     "paye",
			Label:    "PAYE",
			Category: model.CategoryCrown,
			Regex:    `\b(paye|pay\s*as\s*you\s*earn)\b`,
			Priority: 40,
		},
		{
			Name:     "cis",
			Label:    "CIS",
			Category: model.CategoryCrown,
			Regex:    `\b(cis|construction\s*industry\s*scheme)\b`,
			Priority: 30,
		},
		{
			Name:     "national_insurance",
			Label:    "National Insurance",
			Category: model.CategoryCrown,
			Regex:    `\b(nic|national\s*insurance|ni\s*contributions?)\b`,
			Priority: 20,
		},
		{
			Name:     "hmrc",
			Label:    "HMRC",
			Category: model.CategoryCrown,
			Regex:    `\b(hmrc|h\.m\.r\.c\.?|hm\s*revenue|inland\s*revenue)\b`,
			Priority: 10,
		},

		// Employee preferential claims (Insolvency Act 1986 Sch.6).
		{
			Name:     "wages",
			Label:    "Wages",
			Category: model.CategoryEmployee,
			Regex:    `\b(wages?|salary|salaries|arrears\s*of\s*pay|employee\s*wages?)\b`,
			Priority: 40,
			Wages:    true,
		},
		{
			Name:     "holiday_pay",
			Label:    "Holiday Pay",
			Category: model.CategoryEmployee,
			Regex:    `\b(holiday\s*pay|annual\s*leave|accrued\s*leave)\b`,
			Priority: 30,
		},
		{
			Name:     "redundancy",
			Label:    "Redundancy",
			Category: model.CategoryEmployee,
			Regex:    `\b(redundancy|notice\s*pay|lieu\s*of\s*notice)\b`,
			Priority: 20,
		},
		{
			Name:     "pension",
			Label:    "Pension",
			Category: model.CategoryEmployee,
			Regex:    `\b(pension\s*contributions?|occupational\s*pension|auto-?enrolment)\b`,
			Priority: 10,
		},
	}
}

// DefaultCompanyIndicators lists words that mark a name as a trading entity.
func DefaultCompanyIndicators() []string {
	return []string{
		"ltd", "limited", "plc", "inc", "incorporated", "llp",
		"services", "solutions", "consulting", "consultants",
		"group", "holdings", "agency", "associates", "partners",
	}
}

// DefaultFalsePositives lists names that contain category keywords by coincidence.
func DefaultFalsePositives() []string {
	return []string{
		`holiday\s*inn`,
		`wageworks`,
	}
}

// DefaultVocabulary bundles the default patterns, indicators, and exclusions.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Patterns:          DefaultPatterns(),
		CompanyIndicators: DefaultCompanyIndicators(),
		FalsePositives:    DefaultFalsePositives(),
	}
}
