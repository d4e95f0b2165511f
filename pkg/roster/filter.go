package roster

import "strings"

// FilterSet holds the optional leaderboard filter dimensions. A nil
// field applies no constraint on that dimension. Filtering is
// conjunctive: a record survives only if it satisfies every set
// predicate.
type FilterSet struct {
	ClassSection  *string  `yaml:"class_section,omitempty"`
	MinPercentage *float64 `yaml:"min_percentage,omitempty"`
	MaxPercentage *float64 `yaml:"max_percentage,omitempty"`
	NamePrefix    *string  `yaml:"name_prefix,omitempty"`
	NameSuffix    *string  `yaml:"name_suffix,omitempty"`
}

// Merge returns f with every set field of patch copied over it.
// Unset patch fields retain f's prior values; clearing a dimension is
// an explicit nil assignment by the owner.
func (f FilterSet) Merge(patch FilterSet) FilterSet {
	if patch.ClassSection != nil {
		f.ClassSection = patch.ClassSection
	}
	if patch.MinPercentage != nil {
		f.MinPercentage = patch.MinPercentage
	}
	if patch.MaxPercentage != nil {
		f.MaxPercentage = patch.MaxPercentage
	}
	if patch.NamePrefix != nil {
		f.NamePrefix = patch.NamePrefix
	}
	if patch.NameSuffix != nil {
		f.NameSuffix = patch.NameSuffix
	}
	return f
}

// Active reports whether any dimension is constrained.
func (f FilterSet) Active() bool {
	return f.ClassSection != nil || f.MinPercentage != nil || f.MaxPercentage != nil ||
		f.NamePrefix != nil || f.NameSuffix != nil
}

// Matches reports whether s satisfies every set predicate. Percentage
// bounds are inclusive; prefix and suffix compare case-insensitively.
func (f FilterSet) Matches(s Student) bool {
	if f.ClassSection != nil && s.ClassSection != *f.ClassSection {
		return false
	}
	p := s.Percentage()
	if f.MinPercentage != nil && p < *f.MinPercentage {
		return false
	}
	if f.MaxPercentage != nil && p > *f.MaxPercentage {
		return false
	}
	if f.NamePrefix != nil || f.NameSuffix != nil {
		upper := strings.ToUpper(s.Name)
		if f.NamePrefix != nil && !strings.HasPrefix(upper, strings.ToUpper(*f.NamePrefix)) {
			return false
		}
		if f.NameSuffix != nil && !strings.HasSuffix(upper, strings.ToUpper(*f.NameSuffix)) {
			return false
		}
	}
	return true
}
