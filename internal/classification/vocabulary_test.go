package classification

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Veraticus/formal-bridge/internal/common"
	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVocabulary(t *testing.T) {
	t.Run("partial override keeps defaults", func(t *testing.T) {
		v, err := ParseVocabulary([]byte(`
false_positives:
  - 'holiday\s*inn'
  - 'paye\s*point'
`))
		require.NoError(t, err)

		assert.Equal(t, DefaultPatterns(), v.Patterns)
		assert.Equal(t, DefaultCompanyIndicators(), v.CompanyIndicators)
		assert.Equal(t, []string{`holiday\s*inn`, `paye\s*point`}, v.FalsePositives)
	})

	t.Run("custom patterns", func(t *testing.T) {
		v, err := ParseVocabulary([]byte(`
patterns:
  - name: business_rates
    label: Business Rates
    category: crown
    regex: '\bbusiness\s*rates\b'
    priority: 5
company_indicators: [ltd]
`))
		require.NoError(t, err)
		require.Len(t, v.Patterns, 1)
		assert.Equal(t, model.CategoryCrown, v.Patterns[0].Category)
		assert.Equal(t, 5, v.Patterns[0].Priority)

		d, err := NewDetector(v)
		require.NoError(t, err)
		assert.True(t, d.IsCrownCreditor("Business Rates 2023"))
		assert.False(t, d.IsCrownCreditor("HMRC"))
		assert.True(t, d.IsLikelyCompanyName("Rates Ltd"))
		assert.False(t, d.IsLikelyCompanyName("Rates Services"))
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseVocabulary([]byte("patterns: [\n"))
		require.ErrorIs(t, err, common.ErrInvalidVocabulary)
	})
}

func TestLoadVocabulary(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vocabulary.yaml")
	require.NoError(t, os.WriteFile(path, []byte("company_indicators: [trust]\n"), 0o600))

	d, err := LoadVocabulary(path)
	require.NoError(t, err)
	assert.True(t, d.IsLikelyCompanyName("VAT Trust"))
	assert.True(t, d.IsCrownCreditor("VAT Ltd"), "ltd is no longer an indicator")

	_, err = LoadVocabulary(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
