package classification

import (
	"fmt"
	"os"

	"github.com/Veraticus/formal-bridge/internal/common"
	"gopkg.in/yaml.v3"
)

// ParseVocabulary decodes a YAML vocabulary. Sections the document omits keep
// their defaults, so a file may override only the exclusion lists.
func ParseVocabulary(data []byte) (Vocabulary, error) {
	var v Vocabulary
	if err := yaml.Unmarshal(data, &v); err != nil {
		return Vocabulary{}, fmt.Errorf("%w: %v", common.ErrInvalidVocabulary, err)
	}

	if v.Patterns == nil {
		v.Patterns = DefaultPatterns()
	}
	if v.CompanyIndicators == nil {
		v.CompanyIndicators = DefaultCompanyIndicators()
	}
	if v.FalsePositives == nil {
		v.FalsePositives = DefaultFalsePositives()
	}

	return v, nil
}

// LoadVocabulary reads and compiles a YAML vocabulary file.
func LoadVocabulary(path string) (*Detector, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary %s: %w", path, err)
	}

	v, err := ParseVocabulary(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary %s: %w", path, err)
	}

	return NewDetector(v)
}
