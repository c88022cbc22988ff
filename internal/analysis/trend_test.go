package analysis

import (
	"math"
	"testing"

	"github.com/gshantanu15/nba-analysis/internal/models"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

// seriesFromPPG builds a series where each season's points-per-game is the
// given value (one game, so totals equal rates).
func seriesFromPPG(ppg ...float64) models.PlayerSeries {
	series := make(models.PlayerSeries, len(ppg))
	for i, v := range ppg {
		series[i] = models.SeasonRecord{
			SeasonID:      string(rune('a' + i)),
			Age:           25 + i,
			GamesPlayed:   1,
			PointsPerGame: v,
		}
	}
	return series
}

func TestWeightedRollingAvg_FullWindow(t *testing.T) {
	// Window 3 over [10, 20, 30]: weights 1,2,3 → (10+40+90)/6 = 140/6.
	got := WeightedRollingAvg([]float64{10, 20, 30}, 3)
	want := 140.0 / 6.0
	if !almostEqual(got[2], want) {
		t.Errorf("avg[2] = %g, want %g", got[2], want)
	}
}

func TestWeightedRollingAvg_PrefixRenormalizes(t *testing.T) {
	// Before a full window exists, the shortened prefix re-normalizes its
	// weights instead of producing NaN or truncating.
	got := WeightedRollingAvg([]float64{10, 20}, 3)
	if !almostEqual(got[0], 10) {
		t.Errorf("avg[0] = %g, want 10", got[0])
	}
	want := (1*10.0 + 2*20.0) / 3.0
	if !almostEqual(got[1], want) {
		t.Errorf("avg[1] = %g, want %g", got[1], want)
	}
	for i, v := range got {
		if math.IsNaN(v) {
			t.Errorf("avg[%d] is NaN", i)
		}
	}
}

func TestWeightedRollingAvg_RecencyBias(t *testing.T) {
	// A rising series must average above its unweighted mean.
	got := WeightedRollingAvg([]float64{10, 20, 30}, 3)
	if got[2] <= 20 {
		t.Errorf("avg[2] = %g, want > 20 (recent seasons weighted more)", got[2])
	}
}

func TestComputeTrend_IndexAligned(t *testing.T) {
	for _, n := range []int{2, 5, 25} {
		ppg := make([]float64, n)
		for i := range ppg {
			ppg[i] = 15 + float64(i)
		}
		series := seriesFromPPG(ppg...)
		trends := ComputeTrend(series, pointsPerGame(series), 3)
		if len(trends) != n {
			t.Fatalf("n=%d: trends len = %d, want %d", n, len(trends), n)
		}
		for i := range trends {
			if trends[i].SeasonID != series[i].SeasonID {
				t.Errorf("n=%d: trends[%d] season %s, want %s",
					n, i, trends[i].SeasonID, series[i].SeasonID)
			}
		}
	}
}

func TestDeclineIndicators_MagnitudeScaling(t *testing.T) {
	// Identical 5-point drops: the lower-baseline player must show the
	// larger-magnitude decline.
	rolePlayer := DeclineIndicators([]float64{10, 5}, 1)
	star := DeclineIndicators([]float64{30, 25}, 1)

	if rolePlayer[1] >= 0 || star[1] >= 0 {
		t.Fatalf("declines = (%g, %g), want both negative", rolePlayer[1], star[1])
	}
	if math.Abs(rolePlayer[1]) <= math.Abs(star[1]) {
		t.Errorf("role player decline %g not larger in magnitude than star decline %g",
			rolePlayer[1], star[1])
	}
}

func TestDeclineIndicators_ZeroBaseline(t *testing.T) {
	got := DeclineIndicators([]float64{0, 12}, 1)
	if got[1] != 0 {
		t.Errorf("decline over zero baseline = %g, want 0", got[1])
	}
}

func TestComputeTrend_WorkedExample(t *testing.T) {
	// Seasons at 20.0, 18.0, 14.0 ppg with window 2: season 3's drop is
	// larger relative to its baseline, so its indicator must be negative
	// and larger in magnitude than season 2's.
	series := seriesFromPPG(20, 18, 14)
	trends := ComputeTrend(series, pointsPerGame(series), 2)

	d2, d3 := trends[1].Decline, trends[2].Decline
	if d2 >= 0 || d3 >= 0 {
		t.Fatalf("declines = (%g, %g), want both negative", d2, d3)
	}
	if math.Abs(d3) <= math.Abs(d2) {
		t.Errorf("season-3 decline %g not larger in magnitude than season-2 decline %g", d3, d2)
	}
}

func TestCumulativeDecline_AccumulatesNegativesOnly(t *testing.T) {
	got := CumulativeDecline([]float64{-0.1, -0.2, -0.05})
	want := []float64{-0.1, -0.3, -0.35}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("cum[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestCumulativeDecline_ResetsOnImprovement(t *testing.T) {
	// A positive delta resets the accumulator; declines after the reset
	// accumulate fresh.
	got := CumulativeDecline([]float64{-0.1, -0.2, 0.05, -0.1})
	want := []float64{-0.1, -0.3, 0, -0.1}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("cum[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}
