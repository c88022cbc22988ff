package analysis

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gshantanu15/nba-analysis/internal/models"
)

// ErrInsufficientData means fewer than two valid seasons survived
// normalization; trend and risk computation are undefined below that.
var ErrInsufficientData = errors.New("insufficient data: need at least 2 valid seasons")

// NormalizeSeries validates raw season rows and builds the canonical
// chronologically-ordered series for one player. Bad rows are dropped and
// reported as warnings rather than failing the whole analysis; duplicate
// season labels keep the first occurrence.
func NormalizeSeries(rows []models.RawSeasonRow) (models.PlayerSeries, []models.DataQualityWarning, error) {
	var warnings []models.DataQualityWarning
	seen := make(map[string]bool, len(rows))
	series := make(models.PlayerSeries, 0, len(rows))

	for _, row := range rows {
		if reason := validateRow(row); reason != "" {
			warnings = append(warnings, models.DataQualityWarning{
				SeasonID: row.SeasonID,
				Reason:   reason,
			})
			continue
		}
		if seen[row.SeasonID] {
			warnings = append(warnings, models.DataQualityWarning{
				SeasonID: row.SeasonID,
				Reason:   "duplicate season label",
			})
			continue
		}
		seen[row.SeasonID] = true
		series = append(series, toRecord(row))
	}

	// Season labels like "2015-16" sort chronologically as strings.
	sort.Slice(series, func(i, j int) bool {
		return series[i].SeasonID < series[j].SeasonID
	})

	if len(series) < 2 {
		return nil, warnings, fmt.Errorf("%w, got %d", ErrInsufficientData, len(series))
	}
	return series, warnings, nil
}

func validateRow(row models.RawSeasonRow) string {
	switch {
	case row.SeasonID == "":
		return "missing season label"
	case row.GP < 0:
		return "negative games played"
	case row.Minutes < 0:
		return "negative minutes"
	case row.Points < 0:
		return "negative points"
	case row.PlayerAge <= 0:
		return "missing player age"
	case row.GP == 0 && row.Minutes == 0:
		// Ghost seasons (carried on a roster without playing) would read
		// as a total collapse in the decline factor.
		return "zero games and minutes"
	}
	return ""
}

func toRecord(row models.RawSeasonRow) models.SeasonRecord {
	rec := models.SeasonRecord{
		SeasonID:    row.SeasonID,
		Age:         row.PlayerAge,
		GamesPlayed: row.GP,
		Minutes:     row.Minutes,
		Points:      row.Points,
		Rebounds:    row.Rebounds,
		Assists:     row.Assists,
	}
	// Zero games played yields zero rates, not a division error.
	if row.GP > 0 {
		rec.PointsPerGame = row.Points / float64(row.GP)
		rec.MinutesPerGame = row.Minutes / float64(row.GP)
	}
	return rec
}
