package analytics

import (
	"sort"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/config"
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

// truncationMark is appended to display labels cut at the rune budget.
const truncationMark = "…"

// RankAreas groups records by location, computes per-area totals and
// high-priority counts, classifies each area's risk tier, and returns the
// areas ranked by total volume descending, truncated to topN. Ties keep
// first-seen order, so repeated calls on the same snapshot are stable.
// Grouping and ranking always use the full location string; only
// DisplayLabel is truncated.
func RankAreas(records []model.Complaint, topN, labelBudget int, riskCfg config.RiskConfig) []model.AreaRiskEntry {
	totals := make(map[string]int)
	highs := make(map[string]int)
	order := make([]string, 0)

	for _, rec := range records {
		area := rec.Location
		if _, seen := totals[area]; !seen {
			order = append(order, area)
		}
		totals[area]++
		if rec.Priority == model.PriorityHigh {
			highs[area]++
		}
	}

	entries := make([]model.AreaRiskEntry, 0, len(order))
	for _, area := range order {
		entries = append(entries, model.AreaRiskEntry{
			Area:              area,
			DisplayLabel:      TruncateLabel(area, labelBudget),
			TotalCount:        totals[area],
			HighPriorityCount: highs[area],
			RiskTier:          Classify(totals[area], highs[area], riskCfg),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalCount > entries[j].TotalCount
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// TruncateLabel shortens a label to at most budget runes, appending a
// truncation mark. Rune-based so multi-byte labels never split mid-character.
// A non-positive budget disables truncation.
func TruncateLabel(label string, budget int) string {
	if budget <= 0 {
		return label
	}
	runes := []rune(label)
	if len(runes) <= budget {
		return label
	}
	return string(runes[:budget]) + truncationMark
}
