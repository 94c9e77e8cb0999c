// Package analytics implements the complaint analytics aggregation engine:
// filtering, distributions, area risk ranking, and map marker projection
// over an in-memory snapshot of complaint records.
package analytics

import (
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

// Filter returns the records matching every set constraint. Constraints are
// AND-combined and compared by exact string equality. Empty criteria returns
// a copy of the input. The input slice is never mutated.
func Filter(records []model.Complaint, criteria model.Criteria) []model.Complaint {
	out := make([]model.Complaint, 0, len(records))
	if criteria.IsEmpty() {
		return append(out, records...)
	}
	for _, rec := range records {
		if criteria.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}
