package classification

import (
	"strings"

	"github.com/Veraticus/formal-bridge/internal/model"
)

// Prefixes that spreadsheets commonly put in front of a bare tier code.
var tierPrefixes = []string{"tier", "class", "category"}

// NormalizeTier maps a free-form tier label to a statutory tier. The boolean is
// false when the label is not recognised; such records are never defaulted.
func NormalizeTier(raw string) (model.TierCode, bool) {
	t := strings.ToLower(strings.TrimSpace(raw))

	if code, ok := exactTier(t); ok {
		return code, true
	}
	for _, prefix := range tierPrefixes {
		if rest, found := strings.CutPrefix(t, prefix); found {
			if code, ok := exactTier(strings.TrimSpace(rest)); ok {
				return code, true
			}
		}
	}

	// "unsecured" contains "secured", so order matters.
	switch {
	case strings.Contains(t, "unsecured") || strings.Contains(t, "ordinary"):
		return model.TierUnsecured, true
	case strings.Contains(t, "preferential") && !strings.Contains(t, "secondary"):
		return model.TierEmployeePreferential, true
	case strings.Contains(t, "secondary") || strings.Contains(t, "crown"):
		return model.TierSecondaryPreferential, true
	case strings.Contains(t, "secured") || strings.Contains(t, "fixed"):
		return model.TierFixedCharge, true
	case strings.Contains(t, "floating"):
		return model.TierFloatingCharge, true
	}

	return model.TierUnrecognized, false
}

func exactTier(t string) (model.TierCode, bool) {
	code := model.TierCode(t)
	if code.IsValid() {
		return code, true
	}
	return model.TierUnrecognized, false
}
