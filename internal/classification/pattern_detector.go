// Package classification audits creditor tier assignments against statutory
// category vocabularies.
package classification

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/Veraticus/formal-bridge/internal/common"
	"github.com/Veraticus/formal-bridge/internal/model"
)

// Pattern is one statutory category predicate.
type Pattern struct {
	Name     string             `yaml:"name"`
	Label    string             `yaml:"label"`
	Category model.RuleCategory `yaml:"category"`
	Regex    string             `yaml:"regex"`
	Priority int                `yaml:"priority"` // Higher priority labels win when several match
	Wages    bool               `yaml:"wages"`    // Subject to the per-employee wages threshold
}

// Vocabulary is the full hand-curated rule set used by a Detector.
type Vocabulary struct {
	Patterns          []Pattern `yaml:"patterns"`
	CompanyIndicators []string  `yaml:"company_indicators"`
	FalsePositives    []string  `yaml:"false_positives"`
}

// CompiledPattern holds a compiled regex pattern with metadata.
type CompiledPattern struct {
	compiledRegex *regexp.Regexp
	Pattern
}

// Matches reports whether the pattern matches name.
func (p CompiledPattern) Matches(name string) bool {
	return p.compiledRegex.MatchString(name)
}

// Detector evaluates creditor names against a compiled vocabulary.
// It is immutable after construction and safe for concurrent use.
type Detector struct {
	companyIndicators *regexp.Regexp
	falsePositives    []*regexp.Regexp
	crown             []CompiledPattern
	employee          []CompiledPattern
}

// NewDetector compiles a vocabulary.
func NewDetector(v Vocabulary) (*Detector, error) {
	d := &Detector{}

	for _, p := range v.Patterns {
		re, err := compile(p.Regex)
		if err != nil {
			return nil, fmt.Errorf("%w: pattern %s: %v", common.ErrInvalidVocabulary, p.Name, err)
		}

		compiled := CompiledPattern{Pattern: p, compiledRegex: re}
		switch p.Category {
		case model.CategoryCrown:
			d.crown = append(d.crown, compiled)
		case model.CategoryEmployee:
			d.employee = append(d.employee, compiled)
		default:
			return nil, fmt.Errorf("%w: pattern %s has unknown category %q", common.ErrInvalidVocabulary, p.Name, p.Category)
		}
	}

	byPriority := func(patterns []CompiledPattern) {
		sort.SliceStable(patterns, func(i, j int) bool {
			return patterns[i].Priority > patterns[j].Priority
		})
	}
	byPriority(d.crown)
	byPriority(d.employee)

	if len(v.CompanyIndicators) > 0 {
		words := make([]string, len(v.CompanyIndicators))
		for i, w := range v.CompanyIndicators {
			words[i] = regexp.QuoteMeta(strings.TrimSpace(w))
		}
		re, err := compile(`\b(` + strings.Join(words, "|") + `)\b`)
		if err != nil {
			return nil, fmt.Errorf("%w: company indicators: %v", common.ErrInvalidVocabulary, err)
		}
		d.companyIndicators = re
	}

	for _, fp := range v.FalsePositives {
		re, err := compile(fp)
		if err != nil {
			return nil, fmt.Errorf("%w: false positive %q: %v", common.ErrInvalidVocabulary, fp, err)
		}
		d.falsePositives = append(d.falsePositives, re)
	}

	return d, nil
}

// MustNewDetector is like NewDetector but panics on an invalid vocabulary.
func MustNewDetector(v Vocabulary) *Detector {
	d, err := NewDetector(v)
	if err != nil {
		panic(err)
	}
	return d
}

func compile(expr string) (*regexp.Regexp, error) {
	if !strings.HasPrefix(expr, "(?i)") {
		expr = "(?i)" + expr
	}
	return regexp.Compile(expr)
}

// IsLikelyCompanyName reports whether name reads as a trading entity rather
// than a statutory debt, which suppresses every category rule.
func (d *Detector) IsLikelyCompanyName(name string) bool {
	if d.companyIndicators != nil && d.companyIndicators.MatchString(name) {
		return true
	}
	for _, fp := range d.falsePositives {
		if fp.MatchString(name) {
			return true
		}
	}
	return false
}

// IsCrownCreditor reports whether name matches a Crown preference category.
func (d *Detector) IsCrownCreditor(name string) bool {
	return !d.IsLikelyCompanyName(name) && anyMatch(d.crown, name)
}

// IsEmployeePreferential reports whether name matches an employee preferential category.
func (d *Detector) IsEmployeePreferential(name string) bool {
	return !d.IsLikelyCompanyName(name) && anyMatch(d.employee, name)
}

// IsWagesClaim reports whether name matches a pattern subject to the wages threshold.
func (d *Detector) IsWagesClaim(name string) bool {
	if d.IsLikelyCompanyName(name) {
		return false
	}
	for _, p := range d.employee {
		if p.Wages && p.Matches(name) {
			return true
		}
	}
	return false
}

// CrownType names the most specific Crown category matched by name.
func (d *Detector) CrownType(name string) string {
	for _, p := range d.crown {
		if p.Matches(name) {
			return p.Label
		}
	}
	return "Crown"
}

// GetPatternCount returns the number of loaded category patterns.
func (d *Detector) GetPatternCount() int {
	return len(d.crown) + len(d.employee)
}

func anyMatch(patterns []CompiledPattern, name string) bool {
	for _, p := range patterns {
		if p.Matches(name) {
			return true
		}
	}
	return false
}
