// Package roster holds the student leaderboard domain: records, the
// filter/sort pipeline, and the rank/performance tier mappers.
// Records are pure data — the board renderer decides presentation.
package roster

// Student is a single student record as returned by the store.
// The loaded set is replaced wholesale on each reload, never mutated
// in place.
type Student struct {
	ID               int64    `json:"id"`
	AdmissionNo      string   `json:"admission_no"`
	Name             string   `json:"name"`
	ClassSection     string   `json:"class_section"`
	ClassName        string   `json:"class"`
	Section          string   `json:"section"`
	LatestPercentage *float64 `json:"latest_percentage"`
}

// Percentage returns the record's effective percentage. An absent value
// is exactly 0, so unscored students sort below any scored student under
// descending sort.
func (s Student) Percentage() float64 {
	if s.LatestPercentage == nil {
		return 0
	}
	return *s.LatestPercentage
}

// Float returns a pointer to v, for optional percentage fields.
func Float(v float64) *float64 { return &v }

// String returns a pointer to v, for optional filter fields.
func String(v string) *string { return &v }
