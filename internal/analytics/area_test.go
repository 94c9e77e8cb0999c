package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

func areaRecords() []model.Complaint {
	return []model.Complaint{
		{Location: "Zone B", Priority: model.PriorityLow},
		{Location: "Zone A", Priority: model.PriorityHigh},
		{Location: "Zone A", Priority: model.PriorityHigh},
		{Location: "Zone C", Priority: model.PriorityMedium},
		{Location: "Zone A", Priority: model.PriorityLow},
		{Location: "Zone C", Priority: model.PriorityHigh},
	}
}

func TestRankAreas_SortedByVolumeDescending(t *testing.T) {
	got := RankAreas(areaRecords(), 8, 24, DefaultRiskConfig())

	require.Len(t, got, 3)
	assert.Equal(t, "Zone A", got[0].Area)
	assert.Equal(t, 3, got[0].TotalCount)
	assert.Equal(t, 2, got[0].HighPriorityCount)
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i].TotalCount, got[i-1].TotalCount)
	}
}

func TestRankAreas_TiesKeepFirstSeenOrder(t *testing.T) {
	got := RankAreas(areaRecords(), 8, 24, DefaultRiskConfig())

	// Zone B and Zone C tie only when counts match; here B=1, C=2.
	require.Len(t, got, 3)
	assert.Equal(t, "Zone C", got[1].Area)
	assert.Equal(t, "Zone B", got[2].Area)

	// Equal-count areas stay in discovery order.
	tied := []model.Complaint{
		{Location: "East", Priority: model.PriorityLow},
		{Location: "West", Priority: model.PriorityLow},
		{Location: "North", Priority: model.PriorityLow},
	}
	ranked := RankAreas(tied, 8, 24, DefaultRiskConfig())
	require.Len(t, ranked, 3)
	assert.Equal(t, "East", ranked[0].Area)
	assert.Equal(t, "West", ranked[1].Area)
	assert.Equal(t, "North", ranked[2].Area)
}

func TestRankAreas_StableAcrossRepeatedCalls(t *testing.T) {
	records := areaRecords()

	first := RankAreas(records, 8, 24, DefaultRiskConfig())
	second := RankAreas(records, 8, 24, DefaultRiskConfig())

	assert.Equal(t, first, second)
}

func TestRankAreas_TruncatesToTopN(t *testing.T) {
	got := RankAreas(areaRecords(), 2, 24, DefaultRiskConfig())

	require.Len(t, got, 2)
	assert.Equal(t, "Zone A", got[0].Area)
	assert.Equal(t, "Zone C", got[1].Area)
}

func TestRankAreas_EmptyInput(t *testing.T) {
	assert.Empty(t, RankAreas(nil, 8, 24, DefaultRiskConfig()))
}

func TestRankAreas_GroupingUsesFullLabel(t *testing.T) {
	long := "Ward 14, Rajiv Gandhi Nagar Extension Phase II"
	records := []model.Complaint{
		{Location: long, Priority: model.PriorityLow},
		{Location: long, Priority: model.PriorityLow},
	}

	got := RankAreas(records, 8, 10, DefaultRiskConfig())

	require.Len(t, got, 1)
	assert.Equal(t, long, got[0].Area)
	assert.Equal(t, 2, got[0].TotalCount)
	assert.NotEqual(t, long, got[0].DisplayLabel)
}

func TestRankAreas_HigherVolumeNeverLowerTier(t *testing.T) {
	records := []model.Complaint{
		{Location: "Zone A", Priority: model.PriorityHigh},
		{Location: "Zone A", Priority: model.PriorityHigh},
		{Location: "Zone B", Priority: model.PriorityLow},
	}

	got := RankAreas(records, 8, 24, DefaultRiskConfig())

	require.Len(t, got, 2)
	assert.GreaterOrEqual(t, tierRank(got[0].RiskTier), tierRank(got[1].RiskTier))
}

func TestTruncateLabel(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		budget int
		want   string
	}{
		{"under budget", "Zone A", 24, "Zone A"},
		{"exactly budget", "abcd", 4, "abcd"},
		{"over budget", "abcdef", 4, "abcd…"},
		{"multibyte runes", "अशोक नगर मुख्य मार्ग", 8, "अशोक नगर…"},
		{"no budget", "anything goes here", 0, "anything goes here"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncateLabel(tt.label, tt.budget))
		})
	}
}
