package analytics

import (
	"math"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/config"
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

// Engine computes the full dashboard metrics bundle from a snapshot.
// It holds only configuration; every Compute call derives everything from
// scratch, so the engine is safe to share and keeps no state between calls.
type Engine struct {
	cfg config.AnalyticsConfig
}

// New creates an Engine. Zero-valued tuning fields fall back to defaults.
func New(cfg config.AnalyticsConfig) *Engine {
	if cfg.TopAreas <= 0 {
		cfg.TopAreas = 8
	}
	if cfg.LabelBudget <= 0 {
		cfg.LabelBudget = 24
	}
	if cfg.Risk == (config.RiskConfig{}) {
		cfg.Risk = DefaultRiskConfig()
	}
	return &Engine{cfg: cfg}
}

// Compute derives the metrics bundle for one snapshot. Counts,
// distributions, the resolution rate, and markers reflect the filtered
// view; the area ranking always reflects the full snapshot, since area risk
// answers where problems concentrate overall regardless of the current
// filter. Pure and synchronous: no I/O, no retained state.
func (e *Engine) Compute(snapshot []model.Complaint, criteria model.Criteria) model.Bundle {
	view := Filter(snapshot, criteria)

	var pending, inProgress, resolved int
	for _, rec := range view {
		switch rec.Status {
		case model.StatusPending:
			pending++
		case model.StatusInProgress:
			inProgress++
		case model.StatusResolved:
			resolved++
		}
	}

	return model.Bundle{
		Total:                len(view),
		Pending:              pending,
		InProgress:           inProgress,
		Resolved:             resolved,
		ResolutionRate:       resolutionRate(resolved, len(view)),
		StatusDistribution:   StatusDistribution(view),
		PriorityDistribution: PriorityDistribution(view),
		CategoryDistribution: CategoryDistribution(view),
		TopAreas:             RankAreas(snapshot, e.cfg.TopAreas, e.cfg.LabelBudget, e.cfg.Risk),
		Markers:              Project(view),
	}
}

// resolutionRate returns resolved/total as a whole percent, rounded to
// nearest. Zero total yields zero, never a division fault.
func resolutionRate(resolved, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(resolved) / float64(total) * 100))
}
