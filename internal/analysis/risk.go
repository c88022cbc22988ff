package analysis

import (
	"github.com/gshantanu15/nba-analysis/internal/models"
)

// Risk level cutoffs on the 0-100 composite scale.
const (
	levelModerateAt = 35.0
	levelHighAt     = 65.0
)

// ScoreRisk combines the scoring trend, usage trend, age, and availability
// into a single RiskProfile. Each sub-factor is normalized to [0, 100]
// before the weighted combination, so the weights in cfg are directly
// comparable to each other.
func ScoreRisk(series models.PlayerSeries, trends, usageTrends []models.TrendPoint, cfg Config) models.RiskProfile {
	latest := series[len(series)-1]

	factors := models.RiskFactors{
		PerformanceDecline: declineScore(trends),
		UsageChange:        declineScore(usageTrends),
		Age:                ageScore(latest.Age, cfg),
		Availability:       availabilityScore(series, cfg),
	}

	overall := factors.PerformanceDecline*cfg.DeclineWeight +
		factors.UsageChange*cfg.UsageWeight +
		factors.Age*cfg.AgeWeight +
		factors.Availability*cfg.AvailabilityWeight

	return models.RiskProfile{
		Overall: clampScore(overall),
		Level:   riskLevel(overall),
		Factors: factors,
	}
}

// declineScore maps the most recent cumulative decline onto [0, 100]. The
// cumulative value is in baseline-relative units, so -0.4 (a 40% slide off
// the baseline) scores 40; anything at or past a full collapse caps at 100.
func declineScore(trends []models.TrendPoint) float64 {
	if len(trends) == 0 {
		return 0
	}
	cum := trends[len(trends)-1].CumulativeDecline
	if cum >= 0 {
		return 0
	}
	return clampScore(-cum * 100)
}

// ageScore is zero up to the threshold age, then rises linearly per year.
// Monotonic in age past the threshold by construction.
func ageScore(age int, cfg Config) float64 {
	if age <= cfg.AgeThreshold {
		return 0
	}
	return clampScore(float64(age-cfg.AgeThreshold) * cfg.AgeRiskSlope)
}

// availabilityScore is the games-missed ratio over the most recent lookback
// seasons against the regular-season schedule, on [0, 100]. Seasons with
// more games than the schedule (trades, play-in edge cases) count as fully
// available rather than negative-missed.
func availabilityScore(series models.PlayerSeries, cfg Config) float64 {
	start := len(series) - cfg.InjuryLookback
	if start < 0 {
		start = 0
	}
	recent := series[start:]

	missed := 0.0
	for _, rec := range recent {
		if rec.GamesPlayed < cfg.ScheduleGames {
			missed += float64(cfg.ScheduleGames - rec.GamesPlayed)
		}
	}
	possible := float64(cfg.ScheduleGames * len(recent))
	return clampScore(missed / possible * 100)
}

func riskLevel(overall float64) string {
	switch {
	case overall >= levelHighAt:
		return "high"
	case overall >= levelModerateAt:
		return "moderate"
	default:
		return "low"
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
