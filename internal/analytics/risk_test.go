package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/config"
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

func tierRank(t model.RiskTier) int {
	switch t {
	case model.TierLow:
		return 0
	case model.TierMedium:
		return 1
	case model.TierHigh:
		return 2
	}
	return -1
}

func TestClassify_ZeroVolumeIsLow(t *testing.T) {
	got := Classify(0, 0, DefaultRiskConfig())

	assert.Equal(t, model.TierLow, got)
}

func TestClassify_HighVolumeHighRatio(t *testing.T) {
	cfg := DefaultRiskConfig()

	got := Classify(cfg.VolumeSaturation, cfg.VolumeSaturation, cfg)

	assert.Equal(t, model.TierHigh, got)
}

func TestClassify_SmallButMostlyHighPriority(t *testing.T) {
	// A handful of complaints that are all high-priority must not rate Low.
	got := Classify(3, 3, DefaultRiskConfig())

	assert.GreaterOrEqual(t, tierRank(got), tierRank(model.TierMedium))
}

func TestClassify_MonotonicInHighPriorityCount(t *testing.T) {
	cfg := DefaultRiskConfig()

	for total := 0; total <= 30; total++ {
		prev := -1
		for high := 0; high <= total; high++ {
			rank := tierRank(Classify(total, high, cfg))
			assert.GreaterOrEqual(t, rank, prev,
				"tier dropped at total=%d high=%d", total, high)
			prev = rank
		}
	}
}

func TestClassify_MonotonicInVolumeAtFixedRatio(t *testing.T) {
	cfg := DefaultRiskConfig()

	// Fixed 50% high-priority ratio, growing volume.
	prev := -1
	for n := 1; n <= 30; n++ {
		rank := tierRank(Classify(2*n, n, cfg))
		assert.GreaterOrEqual(t, rank, prev, "tier dropped at total=%d", 2*n)
		prev = rank
	}
}

func TestRiskScore_ZeroDenominatorIsZero(t *testing.T) {
	assert.Zero(t, riskScore(0, 0, DefaultRiskConfig()))
}

func TestRiskScore_VolumeSaturates(t *testing.T) {
	cfg := DefaultRiskConfig()

	atSaturation := riskScore(cfg.VolumeSaturation, 0, cfg)
	beyond := riskScore(cfg.VolumeSaturation*10, 0, cfg)

	assert.InDelta(t, atSaturation, beyond, 1e-9)
}

func TestDefaultRiskConfig_Valid(t *testing.T) {
	require.NoError(t, ValidateRiskConfig(DefaultRiskConfig()))
}

func TestValidateRiskConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.RiskConfig)
		wantErr string
	}{
		{
			name:    "negative volume weight",
			mutate:  func(c *config.RiskConfig) { c.VolumeWeight = -1 },
			wantErr: "volume_weight",
		},
		{
			name:    "negative ratio weight",
			mutate:  func(c *config.RiskConfig) { c.RatioWeight = -1 },
			wantErr: "ratio_weight",
		},
		{
			name: "zero weight sum",
			mutate: func(c *config.RiskConfig) {
				c.VolumeWeight = 0
				c.RatioWeight = 0
			},
			wantErr: "positive",
		},
		{
			name:    "zero saturation",
			mutate:  func(c *config.RiskConfig) { c.VolumeSaturation = 0 },
			wantErr: "volume_saturation",
		},
		{
			name: "inverted thresholds",
			mutate: func(c *config.RiskConfig) {
				c.HighThreshold = 0.2
				c.MediumThreshold = 0.5
			},
			wantErr: "high_threshold",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultRiskConfig()
			tt.mutate(&cfg)

			err := ValidateRiskConfig(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
