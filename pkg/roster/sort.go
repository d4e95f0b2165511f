package roster

import (
	"sort"
	"strings"
)

// SortKey selects the comparator for the derived view.
type SortKey string

const (
	SortByName       SortKey = "name"
	SortByAdmission  SortKey = "admission_no"
	SortByPercentage SortKey = "percentage"
)

// SortConfig pairs a sort key with a direction. Exactly one config is
// active at a time; changing it replaces the whole config.
type SortConfig struct {
	Key        SortKey
	Descending bool
}

// DefaultSort matches the store's own ordering: percentage descending.
func DefaultSort() SortConfig {
	return SortConfig{Key: SortByPercentage, Descending: true}
}

// Compare returns a negative, zero, or positive value ordering a before,
// equal to, or after b under c. String keys compare lower-cased;
// percentage compares numerically with absent values as 0. An
// unrecognized key compares by percentage with the current direction.
func (c SortConfig) Compare(a, b Student) int {
	var r int
	switch c.Key {
	case SortByName:
		r = strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	case SortByAdmission:
		r = strings.Compare(strings.ToLower(a.AdmissionNo), strings.ToLower(b.AdmissionNo))
	default:
		pa, pb := a.Percentage(), b.Percentage()
		switch {
		case pa < pb:
			r = -1
		case pa > pb:
			r = 1
		}
	}
	if c.Descending {
		r = -r
	}
	return r
}

// BuildView applies filters, then sorts by c, and returns the derived
// view. Pure and idempotent: the input slice is never modified and equal
// keys keep their input order (stable sort).
func BuildView(records []Student, filters FilterSet, c SortConfig) []Student {
	view := make([]Student, 0, len(records))
	for _, s := range records {
		if filters.Matches(s) {
			view = append(view, s)
		}
	}
	sort.SliceStable(view, func(i, j int) bool {
		return c.Compare(view[i], view[j]) < 0
	})
	return view
}
