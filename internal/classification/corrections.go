package classification

import "github.com/Veraticus/formal-bridge/internal/model"

// ApplyCorrections returns a copy of records with each warned row moved to its
// suggested tier. records is left untouched so both states can be compared.
// When a row carries several warnings the first one in the list wins, which
// for a sorted result is the most severe.
func ApplyCorrections(records []model.CreditorRecord, warnings []model.ClassificationWarning) []model.CreditorRecord {
	suggested := make(map[int]model.TierCode, len(warnings))
	for _, w := range warnings {
		if _, exists := suggested[w.RowNumber]; !exists {
			suggested[w.RowNumber] = w.SuggestedTier
		}
	}

	corrected := make([]model.CreditorRecord, len(records))
	for i, r := range records {
		if tier, ok := suggested[r.RowNumber]; ok {
			r.Tier = tier
		}
		corrected[i] = r
	}

	return corrected
}

// Correction describes one tier change made by ApplyCorrections.
type Correction struct {
	Name      string         `json:"name"`
	From      model.TierCode `json:"from"`
	To        model.TierCode `json:"to"`
	RowNumber int            `json:"row_number"`
}

// DiffCorrections lists the rows whose tier differs between before and after.
// Both slices must be aligned, as ApplyCorrections returns them.
func DiffCorrections(before, after []model.CreditorRecord) []Correction {
	var changes []Correction
	for i := range before {
		if i >= len(after) {
			break
		}
		if before[i].Tier != after[i].Tier {
			changes = append(changes, Correction{
				RowNumber: before[i].RowNumber,
				Name:      before[i].Name,
				From:      before[i].Tier,
				To:        after[i].Tier,
			})
		}
	}
	return changes
}
