package analysis

import (
	"errors"
	"reflect"
	"testing"

	"github.com/gshantanu15/nba-analysis/internal/models"
)

func careerRows() []models.RawSeasonRow {
	return []models.RawSeasonRow{
		row("2018-19", 30, 80, 2880, 1600),
		row("2019-20", 31, 75, 2550, 1350),
		row("2020-21", 32, 70, 2240, 1120),
		row("2021-22", 33, 55, 1540, 770),
		row("2022-23", 34, 48, 1200, 576),
	}
}

func TestAnalyze_FullPipeline(t *testing.T) {
	result, err := Analyze("2544", careerRows(), DefaultConfig())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if result.PlayerID != "2544" {
		t.Errorf("PlayerID = %s, want 2544", result.PlayerID)
	}
	if len(result.Series) != 5 {
		t.Fatalf("series len = %d, want 5", len(result.Series))
	}
	if len(result.Trends) != len(result.Series) || len(result.UsageTrends) != len(result.Series) {
		t.Errorf("trend lens = (%d, %d), want both %d",
			len(result.Trends), len(result.UsageTrends), len(result.Series))
	}

	// A career sliding from 20 to 12 ppg past age 32 with shrinking minutes
	// and missed games cannot score as low risk.
	if result.Risk.Overall <= 0 {
		t.Errorf("overall risk = %g, want > 0 for a declining career", result.Risk.Overall)
	}
	if result.Risk.Factors.PerformanceDecline <= 0 {
		t.Errorf("decline factor = %g, want > 0", result.Risk.Factors.PerformanceDecline)
	}
	if result.Risk.Factors.UsageChange <= 0 {
		t.Errorf("usage factor = %g, want > 0", result.Risk.Factors.UsageChange)
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	first, err := Analyze("2544", careerRows(), DefaultConfig())
	if err != nil {
		t.Fatalf("first Analyze: %v", err)
	}
	second, err := Analyze("2544", careerRows(), DefaultConfig())
	if err != nil {
		t.Fatalf("second Analyze: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different results:\n%+v\n%+v", first, second)
	}
}

func TestAnalyze_InsufficientData(t *testing.T) {
	rows := []models.RawSeasonRow{row("2022-23", 34, 48, 1200, 576)}
	result, err := Analyze("2544", rows, DefaultConfig())
	if !errors.Is(err, ErrInsufficientData) {
		t.Errorf("err = %v, want ErrInsufficientData", err)
	}
	if result != nil {
		t.Errorf("result = %+v, want nil (no partial RiskProfile)", result)
	}
}

func TestAnalyze_RejectsBadConfigBeforeRunning(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DeclineWeight = 0.9 // weights no longer sum to 1

	result, err := Analyze("2544", careerRows(), cfg)
	if err == nil {
		t.Fatal("Analyze with bad config succeeded, want config error")
	}
	if result != nil {
		t.Errorf("result = %+v, want nil", result)
	}
}

func TestAnalyze_WarningsRideAlongOnSuccess(t *testing.T) {
	rows := append(careerRows(), row("2017-18", 29, -10, 2880, 1600))
	result, err := Analyze("2544", rows, DefaultConfig())
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(result.Warnings) != 1 {
		t.Errorf("warnings = %d, want 1", len(result.Warnings))
	}
	if len(result.Series) != 5 {
		t.Errorf("series len = %d, want 5 (bad row excluded)", len(result.Series))
	}
}
