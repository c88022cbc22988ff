package analysis

import (
	"fmt"
	"math"
)

// weightTolerance is how far the four factor weights may drift from summing
// to exactly 1.0 before the config is rejected.
const weightTolerance = 1e-9

// Config holds every tunable of the analysis pipeline. A zero Config is not
// usable; start from DefaultConfig and override.
type Config struct {
	// Window is the rolling-average window in seasons.
	Window int

	// Factor weights for the composite risk score. Must sum to 1.0.
	DeclineWeight      float64
	UsageWeight        float64
	AgeWeight          float64
	AvailabilityWeight float64

	// AgeThreshold is the age at which the age factor starts rising;
	// AgeRiskSlope is how many risk points each year past it adds.
	AgeThreshold int
	AgeRiskSlope float64

	// InjuryLookback is how many recent seasons feed the availability
	// factor. ScheduleGames is the regular-season schedule length used to
	// derive the games-missed ratio.
	InjuryLookback int
	ScheduleGames  int
}

// DefaultConfig returns the documented default tuning.
func DefaultConfig() Config {
	return Config{
		Window:             3,
		DeclineWeight:      0.35,
		UsageWeight:        0.25,
		AgeWeight:          0.20,
		AvailabilityWeight: 0.20,
		AgeThreshold:       32,
		AgeRiskSlope:       10.0,
		InjuryLookback:     3,
		ScheduleGames:      82,
	}
}

// Validate rejects configs that would produce silently-wrong scores. It is
// called before any analysis runs, so a bad config never reaches scoring.
func (c Config) Validate() error {
	if c.Window <= 0 {
		return fmt.Errorf("invalid config: window must be positive, got %d", c.Window)
	}
	for name, w := range map[string]float64{
		"decline":      c.DeclineWeight,
		"usage":        c.UsageWeight,
		"age":          c.AgeWeight,
		"availability": c.AvailabilityWeight,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("invalid config: %s weight must be in [0,1], got %g", name, w)
		}
	}
	sum := c.DeclineWeight + c.UsageWeight + c.AgeWeight + c.AvailabilityWeight
	if math.Abs(sum-1.0) > weightTolerance {
		return fmt.Errorf("invalid config: factor weights must sum to 1.0, got %g", sum)
	}
	if c.AgeThreshold <= 0 {
		return fmt.Errorf("invalid config: age threshold must be positive, got %d", c.AgeThreshold)
	}
	if c.AgeRiskSlope < 0 {
		return fmt.Errorf("invalid config: age risk slope must be non-negative, got %g", c.AgeRiskSlope)
	}
	if c.InjuryLookback <= 0 {
		return fmt.Errorf("invalid config: injury lookback must be positive, got %d", c.InjuryLookback)
	}
	if c.ScheduleGames <= 0 {
		return fmt.Errorf("invalid config: schedule games must be positive, got %d", c.ScheduleGames)
	}
	return nil
}
