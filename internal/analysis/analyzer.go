package analysis

import (
	"fmt"

	"github.com/gshantanu15/nba-analysis/internal/models"
)

// Analyze runs the full pipeline for one player: normalize the raw rows,
// compute scoring and usage trends, and score the longevity risk. It is a
// pure function of its inputs; identical inputs and config always produce
// identical results. The first fatal error stops the pipeline with no
// partial RiskProfile; data quality warnings ride along on success.
func Analyze(playerID string, rows []models.RawSeasonRow, cfg Config) (*models.AnalysisResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	series, warnings, err := NormalizeSeries(rows)
	if err != nil {
		return nil, fmt.Errorf("player %s: %w", playerID, err)
	}

	trends := ComputeTrend(series, pointsPerGame(series), cfg.Window)
	usageTrends := ComputeTrend(series, minutesPerGame(series), cfg.Window)
	risk := ScoreRisk(series, trends, usageTrends, cfg)

	return &models.AnalysisResult{
		PlayerID:    playerID,
		Series:      series,
		Trends:      trends,
		UsageTrends: usageTrends,
		Risk:        risk,
		Warnings:    warnings,
	}, nil
}
