package analytics

import (
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

// GroupCount groups records by the key function and counts occurrences per
// group. Output order is first-seen order of each key; zero-count buckets
// never appear because only observed keys produce entries. Empty input
// yields an empty slice.
func GroupCount(records []model.Complaint, key func(model.Complaint) string) []model.DistributionEntry {
	counts := make(map[string]int, len(records))
	order := make([]string, 0, len(records))

	for _, rec := range records {
		k := key(rec)
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	entries := make([]model.DistributionEntry, 0, len(order))
	for _, k := range order {
		entries = append(entries, model.DistributionEntry{Label: k, Count: counts[k]})
	}
	return entries
}

// countCanonical counts records per canonical label and emits entries in the
// canonical order, dropping zero buckets. Records whose key falls outside
// the canonical set contribute to no bucket.
func countCanonical(records []model.Complaint, canonical []string, key func(model.Complaint) string) []model.DistributionEntry {
	counts := make(map[string]int, len(canonical))
	for _, rec := range records {
		counts[key(rec)]++
	}

	entries := make([]model.DistributionEntry, 0, len(canonical))
	for _, label := range canonical {
		if n := counts[label]; n > 0 {
			entries = append(entries, model.DistributionEntry{Label: label, Count: n})
		}
	}
	return entries
}

// StatusDistribution counts records per status in the canonical
// Pending, In Progress, Resolved order.
func StatusDistribution(records []model.Complaint) []model.DistributionEntry {
	canonical := make([]string, len(model.Statuses))
	for i, s := range model.Statuses {
		canonical[i] = string(s)
	}
	return countCanonical(records, canonical, func(c model.Complaint) string {
		return string(c.Status)
	})
}

// PriorityDistribution counts records per priority in the canonical
// High, Medium, Low order.
func PriorityDistribution(records []model.Complaint) []model.DistributionEntry {
	canonical := make([]string, len(model.Priorities))
	for i, p := range model.Priorities {
		canonical[i] = string(p)
	}
	return countCanonical(records, canonical, func(c model.Complaint) string {
		return string(c.Priority)
	})
}

// CategoryDistribution counts records per category. Categories are an open
// set discovered from the data, so output order is first-seen order.
func CategoryDistribution(records []model.Complaint) []model.DistributionEntry {
	return GroupCount(records, func(c model.Complaint) string {
		return c.Category
	})
}
