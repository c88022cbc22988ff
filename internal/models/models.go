package models

// RawSeasonRow is one season line as delivered by the upstream stats source.
// Field names follow the NBA stats API column naming so the fetch payload
// unmarshals directly; validation happens later in the normalizer, not here.
type RawSeasonRow struct {
	SeasonID  string  `json:"SEASON_ID"`
	PlayerAge int     `json:"PLAYER_AGE"`
	TeamAbbr  string  `json:"TEAM_ABBREVIATION,omitempty"`
	GP        int     `json:"GP"`
	Minutes   float64 `json:"MIN"`
	Points    float64 `json:"PTS"`
	Rebounds  float64 `json:"REB,omitempty"`
	Assists   float64 `json:"AST,omitempty"`
}

// SeasonRecord is one validated player-season with derived per-game rates.
type SeasonRecord struct {
	SeasonID       string  `json:"season_id"`
	Age            int     `json:"age"`
	GamesPlayed    int     `json:"games_played"`
	Minutes        float64 `json:"minutes"`
	Points         float64 `json:"points"`
	PointsPerGame  float64 `json:"points_per_game"`
	MinutesPerGame float64 `json:"minutes_per_game"`
	Rebounds       float64 `json:"rebounds,omitempty"`
	Assists        float64 `json:"assists,omitempty"`
}

// PlayerSeries is a player's career, sorted ascending by season.
type PlayerSeries []SeasonRecord

// TrendPoint is the derived trend value for one season, index-aligned with
// the PlayerSeries it was computed from. Decline is signed: positive means
// improvement over the baseline, negative means decline, scaled by the
// baseline magnitude.
type TrendPoint struct {
	SeasonID          string  `json:"season_id"`
	WeightedAvg       float64 `json:"weighted_avg"`
	Decline           float64 `json:"decline"`
	CumulativeDecline float64 `json:"cumulative_decline"`
}

// RiskFactors holds the four normalized sub-scores, each in [0, 100].
type RiskFactors struct {
	PerformanceDecline float64 `json:"performance_decline"`
	UsageChange        float64 `json:"usage_change"`
	Age                float64 `json:"age"`
	Availability       float64 `json:"availability"`
}

// RiskProfile is the composite longevity risk output for one player.
// Overall is the weighted sum of the factors under the configured weights.
type RiskProfile struct {
	Overall float64     `json:"overall"`
	Level   string      `json:"level"` // low, moderate, high
	Factors RiskFactors `json:"factors"`
}

// DataQualityWarning records a raw row that was dropped during
// normalization. Warnings never abort an analysis.
type DataQualityWarning struct {
	SeasonID string `json:"season_id"`
	Reason   string `json:"reason"`
}

// AnalysisResult is the full bundle handed to presentation code.
type AnalysisResult struct {
	PlayerID    string               `json:"player_id"`
	Series      PlayerSeries         `json:"series"`
	Trends      []TrendPoint         `json:"trends"`
	UsageTrends []TrendPoint         `json:"usage_trends"`
	Risk        RiskProfile          `json:"risk"`
	Warnings    []DataQualityWarning `json:"warnings,omitempty"`
}

// Player is a roster entry for the dashboard dropdown.
type Player struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	HeadshotURL string `json:"headshot_url"`
}
