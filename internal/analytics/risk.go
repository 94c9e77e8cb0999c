package analytics

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/config"
	"github.com/vanshikakhator/civic-pulse-72cbea05/internal/model"
)

// DefaultRiskConfig returns a config.RiskConfig with sensible defaults.
// Volume and ratio carry equal weight; volume saturates at 20 complaints.
func DefaultRiskConfig() config.RiskConfig {
	return config.RiskConfig{
		VolumeWeight:     0.5,
		RatioWeight:      0.5,
		VolumeSaturation: 20,
		HighThreshold:    0.65,
		MediumThreshold:  0.35,
	}
}

// ValidateRiskConfig checks that a RiskConfig is internally consistent.
func ValidateRiskConfig(c config.RiskConfig) error {
	var errs []string

	if c.VolumeWeight < 0 {
		errs = append(errs, "volume_weight must be >= 0")
	}
	if c.RatioWeight < 0 {
		errs = append(errs, "ratio_weight must be >= 0")
	}
	if c.VolumeWeight+c.RatioWeight <= 0 {
		errs = append(errs, "weights must sum to a positive number")
	}
	if c.VolumeSaturation <= 0 {
		errs = append(errs, "volume_saturation must be > 0")
	}
	if c.HighThreshold < c.MediumThreshold {
		errs = append(errs, fmt.Sprintf(
			"high_threshold (%v) must be >= medium_threshold (%v)",
			c.HighThreshold, c.MediumThreshold))
	}

	if len(errs) > 0 {
		return eris.New("risk config: " + strings.Join(errs, "; "))
	}
	return nil
}

// riskScore combines raw volume with the high-priority ratio into a 0.0-1.0
// score. Volume contributes linearly up to the saturation point; beyond it
// only the ratio term can move the score. Zero volume scores zero.
func riskScore(total, highPriority int, cfg config.RiskConfig) float64 {
	if total <= 0 {
		return 0
	}

	volume := float64(total) / float64(cfg.VolumeSaturation)
	if volume > 1 {
		volume = 1
	}
	ratio := float64(highPriority) / float64(total)

	return (cfg.VolumeWeight*volume + cfg.RatioWeight*ratio) /
		(cfg.VolumeWeight + cfg.RatioWeight)
}

// Classify maps an area's complaint volume and high-priority count to a
// risk tier. Rules:
//   - High: score >= high threshold
//   - Medium: score >= medium threshold
//   - Low: otherwise (including zero volume)
//
// The score is non-decreasing in both arguments, so raising either the
// volume or the high-priority count never lowers the tier.
func Classify(total, highPriority int, cfg config.RiskConfig) model.RiskTier {
	score := riskScore(total, highPriority, cfg)
	switch {
	case score >= cfg.HighThreshold:
		return model.TierHigh
	case score >= cfg.MediumThreshold:
		return model.TierMedium
	default:
		return model.TierLow
	}
}
