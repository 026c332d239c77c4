package sanitize

import (
	"testing"

	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		raw          any
		name         string
		wantCodes    []string
		want         float64
		wantValid    bool
		wantReview   bool
		wantBlocking bool
	}{
		{
			name:      "currency and separators",
			raw:       "£10,500.50",
			want:      10500.5,
			wantValid: true,
			wantCodes: []string{model.CodeCurrencyStripped},
		},
		{
			name:      "euro symbol",
			raw:       "€5,000",
			want:      5000,
			wantValid: true,
			wantCodes: []string{model.CodeCurrencyStripped},
		},
		{
			name:      "currency code",
			raw:       "GBP 1,250",
			want:      1250,
			wantValid: true,
			wantCodes: []string{model.CodeCurrencyStripped},
		},
		{
			name:      "lower case currency code",
			raw:       "gbp 100",
			want:      100,
			wantValid: true,
			wantCodes: []string{model.CodeCurrencyStripped},
		},
		{
			name:       "unicode minus sign",
			raw:        "\u2212500",
			want:       -500,
			wantValid:  true,
			wantReview: true,
			wantCodes:  []string{model.CodeNegativeAmount},
		},
		{
			name:      "plain integer",
			raw:       12345,
			want:      12345,
			wantValid: true,
		},
		{
			name:      "plain float",
			raw:       99.95,
			want:      99.95,
			wantValid: true,
		},
		{
			name:      "numeric string",
			raw:       "1000",
			want:      1000,
			wantValid: true,
		},
		{
			name:      "very large amount",
			raw:       "999,999,999.99",
			want:      999999999.99,
			wantValid: true,
		},
		{
			name:       "accounting negative",
			raw:        "(5,000)",
			want:       -5000,
			wantValid:  true,
			wantReview: true,
			wantCodes:  []string{model.CodeContraDetected, model.CodeNegativeAmount},
		},
		{
			name:       "accounting negative with currency",
			raw:        "(£1,234)",
			want:       -1234,
			wantValid:  true,
			wantReview: true,
			wantCodes:  []string{model.CodeCurrencyStripped, model.CodeContraDetected, model.CodeNegativeAmount},
		},
		{
			name:       "leading minus",
			raw:        "-250",
			want:       -250,
			wantValid:  true,
			wantReview: true,
			wantCodes:  []string{model.CodeNegativeAmount},
		},
		{
			name:       "zero",
			raw:        "0",
			want:       0,
			wantValid:  true,
			wantReview: true,
			wantCodes:  []string{model.CodeZeroAmount},
		},
		{
			name:         "empty string",
			raw:          "",
			wantBlocking: true,
			wantReview:   true,
			wantCodes:    []string{model.CodeEmptyAmount},
		},
		{
			name:         "whitespace only",
			raw:          "   ",
			wantBlocking: true,
			wantReview:   true,
			wantCodes:    []string{model.CodeEmptyAmount},
		},
		{
			name:         "nil",
			raw:          nil,
			wantBlocking: true,
			wantReview:   true,
			wantCodes:    []string{model.CodeEmptyAmount},
		},
		{
			name:         "embedded minus",
			raw:          "12-3",
			wantBlocking: true,
			wantReview:   true,
			wantCodes:    []string{model.CodeParseFailed},
		},
		{
			name:         "two decimal points",
			raw:          "1.2.3",
			wantBlocking: true,
			wantReview:   true,
			wantCodes:    []string{model.CodeParseFailed},
		},
		{
			name:         "no digits",
			raw:          "n/a",
			wantBlocking: true,
			wantReview:   true,
			wantCodes:    []string{model.CodeParseFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Amount(tt.raw)

			assert.Equal(t, tt.wantValid, got.IsValid)
			assert.Equal(t, tt.wantReview, got.RequiresReview)
			assert.Equal(t, tt.wantBlocking, got.CountSeverity(model.SeverityBlocking) > 0)
			if tt.wantValid {
				assert.InDelta(t, tt.want, got.Value, 1e-9)
			}

			codes := make([]string, 0, len(got.Warnings))
			for _, w := range got.Warnings {
				codes = append(codes, w.Code)
			}
			if tt.wantCodes == nil {
				assert.Empty(t, codes)
			} else {
				assert.Equal(t, tt.wantCodes, codes)
			}
		})
	}
}

func TestAmount_NonDeterministic(t *testing.T) {
	inputs := []string{
		"TBC",
		"tbc amount",
		"£48,000 approx",
		"approx. 12,000",
		"approximately 9000",
		"Estimated 5000",
		"estimates",
		"See Note 4",
		"unknown",
		"pending",
		"TBA",
		"5000?",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			got := Amount(in)

			assert.False(t, got.IsValid)
			require.Len(t, got.Warnings, 1)
			assert.Equal(t, model.SeverityBlocking, got.Warnings[0].Severity)
			assert.Equal(t, model.CodeNonDeterministic, got.Warnings[0].Code)
			assert.Zero(t, got.Value, "blocked values must never be truncated to a number")
		})
	}
}

func TestAmount_Idempotent(t *testing.T) {
	inputs := []any{"£10,500.50", "(5,000)", "0", "-12.5", 42, "€1,000,000"}

	for _, in := range inputs {
		first := Amount(in)
		require.True(t, first.IsValid)

		second := Amount(first.Value)
		assert.True(t, second.IsValid)
		assert.Equal(t, first.Value, second.Value)
		assert.Empty(t, second.Warnings)
	}
}

func TestAmount_KeepsOriginal(t *testing.T) {
	got := Amount("  £1,000  ")

	assert.Equal(t, "£1,000", got.Original)
	assert.InDelta(t, 1000.0, got.Value, 1e-9)
}
