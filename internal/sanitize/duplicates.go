package sanitize

import (
	"fmt"
	"strings"

	"github.com/Veraticus/formal-bridge/internal/model"
	"github.com/dustin/go-humanize"
)

// NormalizeName lower-cases name and drops everything but ASCII letters and digits.
func NormalizeName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// DetectDuplicates groups records whose normalized names collide.
// Groups are returned in the order their first member appears.
func DetectDuplicates(members []model.DuplicateMember) []model.DuplicateGroup {
	var keys []string
	byKey := make(map[string][]model.DuplicateMember)

	for _, m := range members {
		key := NormalizeName(m.Name)
		if _, seen := byKey[key]; !seen {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], m)
	}

	groups := []model.DuplicateGroup{}
	for _, key := range keys {
		group := byKey[key]
		if len(group) < 2 {
			continue
		}

		first := group[0]
		if sameAmount(group) {
			groups = append(groups, model.DuplicateGroup{
				Kind:     model.DuplicateExactNameAndAmount,
				Severity: model.SeverityWarning,
				Members:  group,
				Message: fmt.Sprintf("Potential duplicate: %d entries for %q with identical amounts (£%s)",
					len(group), first.Name, humanize.Commaf(first.Amount)),
			})
			continue
		}

		groups = append(groups, model.DuplicateGroup{
			Kind:     model.DuplicateNameOnly,
			Severity: model.SeverityInfo,
			Members:  group,
			Message:  fmt.Sprintf("Multiple entries for %q with different amounts", first.Name),
		})
	}

	return groups
}

// MembersOf projects records onto the fields duplicate detection compares.
func MembersOf(records []model.CreditorRecord) []model.DuplicateMember {
	members := make([]model.DuplicateMember, len(records))
	for i, r := range records {
		members[i] = model.DuplicateMember{
			RowNumber: r.RowNumber,
			Name:      r.Name,
			Amount:    r.Amount(),
		}
	}
	return members
}

func sameAmount(group []model.DuplicateMember) bool {
	for _, m := range group[1:] {
		if m.Amount != group[0].Amount {
			return false
		}
	}
	return true
}
