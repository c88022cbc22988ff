package analysis

import (
	"github.com/gshantanu15/nba-analysis/internal/models"
)

// WeightedRollingAvg calculates a rolling average over a trailing window
// with linearly increasing weights, so the most recent season in the window
// counts most. Seasons before a full window is available use whatever prefix
// exists, with the weights re-normalized over the shortened window. The
// result always has the same length as the input.
func WeightedRollingAvg(values []float64, window int) []float64 {
	if window <= 0 {
		return make([]float64, len(values))
	}

	result := make([]float64, len(values))
	for i := 0; i < len(values); i++ {
		start := i - window + 1
		if start < 0 {
			start = 0
		}
		sum := 0.0
		weightSum := 0.0
		for j := start; j <= i; j++ {
			w := float64(j - start + 1)
			sum += values[j] * w
			weightSum += w
		}
		result[i] = sum / weightSum
	}
	return result
}

// DeclineIndicators calculates the signed, baseline-scaled change of each
// season's rolling average against the average `window` seasons prior (or
// the earliest season when fewer exist). Dividing by the baseline is the
// point: a 5-point drop off a 10-point baseline reads as twice the decline
// of a 5-point drop off a 20-point baseline. A zero baseline yields zero.
func DeclineIndicators(avgs []float64, window int) []float64 {
	result := make([]float64, len(avgs))
	for i := range avgs {
		base := i - window
		if base < 0 {
			base = 0
		}
		if avgs[base] == 0 {
			continue
		}
		result[i] = (avgs[i] - avgs[base]) / avgs[base]
	}
	return result
}

// CumulativeDecline is the running sum of negative decline indicators. Any
// season with a positive indicator resets the accumulator to zero, so old
// declines stop dominating a player who has since recovered.
func CumulativeDecline(declines []float64) []float64 {
	result := make([]float64, len(declines))
	cum := 0.0
	for i, d := range declines {
		switch {
		case d > 0:
			cum = 0
		case d < 0:
			cum += d
		}
		result[i] = cum
	}
	return result
}

// ComputeTrend runs the full trend pipeline over one per-season value stream
// (points per game, minutes per game) and returns one TrendPoint per season,
// index-aligned with the input series.
func ComputeTrend(series models.PlayerSeries, values []float64, window int) []models.TrendPoint {
	avgs := WeightedRollingAvg(values, window)
	declines := DeclineIndicators(avgs, window)
	cumulative := CumulativeDecline(declines)

	points := make([]models.TrendPoint, len(series))
	for i := range series {
		points[i] = models.TrendPoint{
			SeasonID:          series[i].SeasonID,
			WeightedAvg:       avgs[i],
			Decline:           declines[i],
			CumulativeDecline: cumulative[i],
		}
	}
	return points
}

// pointsPerGame and minutesPerGame extract the two value streams the trend
// engine runs over.
func pointsPerGame(series models.PlayerSeries) []float64 {
	values := make([]float64, len(series))
	for i, rec := range series {
		values[i] = rec.PointsPerGame
	}
	return values
}

func minutesPerGame(series models.PlayerSeries) []float64 {
	values := make([]float64, len(series))
	for i, rec := range series {
		values[i] = rec.MinutesPerGame
	}
	return values
}
