package model

// RiskTier classifies an area's complaint concentration.
type RiskTier string

// Risk tiers, highest first.
const (
	TierHigh   RiskTier = "High"
	TierMedium RiskTier = "Medium"
	TierLow    RiskTier = "Low"
)

// DistributionEntry is one bucket of a field distribution. Buckets with a
// zero count are omitted from distributions, so Count is always >= 1.
type DistributionEntry struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// AreaRiskEntry is one ranked area in the risk table. Area is the full
// grouping key; DisplayLabel is truncated for presentation only and must
// never feed back into grouping or ranking.
type AreaRiskEntry struct {
	Area              string   `json:"area"`
	DisplayLabel      string   `json:"display_label"`
	TotalCount        int      `json:"total_count"`
	HighPriorityCount int      `json:"high_priority_count"`
	RiskTier          RiskTier `json:"risk_tier"`
}

// MapMarker is one geolocated complaint projected for the dashboard map.
type MapMarker struct {
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Label       string   `json:"label"`
	PriorityTag Priority `json:"priority_tag"`
}

// Bundle is the full set of derived metrics one dashboard render consumes.
// Counts, distributions, the resolution rate, and markers reflect the
// filtered view; TopAreas always reflects the full snapshot.
type Bundle struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`

	// ResolutionRate is resolved/total as a whole percent, 0 when Total is 0.
	ResolutionRate int `json:"resolution_rate"`

	StatusDistribution   []DistributionEntry `json:"status_distribution"`
	PriorityDistribution []DistributionEntry `json:"priority_distribution"`
	CategoryDistribution []DistributionEntry `json:"category_distribution"`

	TopAreas []AreaRiskEntry `json:"top_areas"`
	Markers  []MapMarker     `json:"markers"`
}
