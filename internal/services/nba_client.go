package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gshantanu15/nba-analysis/internal/models"
)

const headshotURLFormat = "https://ak-static.cms.nba.com/wp-content/uploads/headshots/nba/latest/260x190/%s.png"

// NBAClient fetches career statistics from the NBA stats API. It is plain
// fetch glue: the analysis core never sees it, only raw rows it produced.
type NBAClient struct {
	baseURL string
	client  *resty.Client
}

// careerStatsResponse mirrors the stats API envelope: named result sets with
// a header row and positional value rows.
type careerStatsResponse struct {
	ResultSets []struct {
		Name    string              `json:"name"`
		Headers []string            `json:"headers"`
		RowSet  [][]json.RawMessage `json:"rowSet"`
	} `json:"resultSets"`
}

func NewNBAClient(baseURL string, timeout time.Duration) *NBAClient {
	client := resty.New()
	client.SetTimeout(timeout)
	// The stats endpoint rejects requests without browser-looking headers.
	client.SetHeaders(map[string]string{
		"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64)",
		"Referer":    "https://www.nba.com/",
		"Accept":     "application/json",
	})

	return &NBAClient{
		baseURL: baseURL,
		client:  client,
	}
}

// FetchCareerStats returns the regular-season totals rows for one player,
// one row per season, in whatever order the API returns them.
func (c *NBAClient) FetchCareerStats(playerID string) ([]models.RawSeasonRow, error) {
	url := fmt.Sprintf("%s/playercareerstats?PlayerID=%s&PerMode=Totals", c.baseURL, playerID)

	resp, err := c.client.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch career stats: %w", err)
	}
	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("fetch career stats: upstream returned HTTP %d", resp.StatusCode())
	}

	var payload careerStatsResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("decode career stats: %w", err)
	}

	for _, set := range payload.ResultSets {
		if set.Name != "SeasonTotalsRegularSeason" {
			continue
		}
		return decodeSeasonRows(set.Headers, set.RowSet)
	}
	return nil, fmt.Errorf("career stats response missing SeasonTotalsRegularSeason result set")
}

// decodeSeasonRows pairs the header row with each positional value row. The
// API mixes strings, ints, and floats in one row, so values are decoded
// per-column rather than into a struct.
func decodeSeasonRows(headers []string, rowSet [][]json.RawMessage) ([]models.RawSeasonRow, error) {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[h] = i
	}
	for _, required := range []string{"SEASON_ID", "PLAYER_AGE", "GP", "MIN", "PTS"} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("career stats response missing column %s", required)
		}
	}

	rows := make([]models.RawSeasonRow, 0, len(rowSet))
	for _, raw := range rowSet {
		row := models.RawSeasonRow{
			SeasonID:  cellString(raw, idx["SEASON_ID"]),
			PlayerAge: int(cellFloat(raw, idx["PLAYER_AGE"])),
			GP:        int(cellFloat(raw, idx["GP"])),
			Minutes:   cellFloat(raw, idx["MIN"]),
			Points:    cellFloat(raw, idx["PTS"]),
		}
		if i, ok := idx["TEAM_ABBREVIATION"]; ok {
			row.TeamAbbr = cellString(raw, i)
		}
		if i, ok := idx["REB"]; ok {
			row.Rebounds = cellFloat(raw, i)
		}
		if i, ok := idx["AST"]; ok {
			row.Assists = cellFloat(raw, i)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cellString(row []json.RawMessage, i int) string {
	if i >= len(row) {
		return ""
	}
	var s string
	if err := json.Unmarshal(row[i], &s); err != nil {
		return ""
	}
	return s
}

func cellFloat(row []json.RawMessage, i int) float64 {
	if i >= len(row) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(row[i], &f); err != nil {
		return 0
	}
	return f
}

// KnownPlayers is the dashboard's built-in roster with headshot URLs off the
// NBA media CDN.
func KnownPlayers() []models.Player {
	names := []struct{ id, name string }{
		{"2544", "LeBron James"},
		{"201939", "Stephen Curry"},
		{"201142", "Kevin Durant"},
		{"203507", "Giannis Antetokounmpo"},
		{"202691", "Klay Thompson"},
		{"203076", "Anthony Davis"},
		{"201566", "Russell Westbrook"},
		{"201935", "James Harden"},
		{"101108", "Chris Paul"},
		{"201942", "DeMar DeRozan"},
	}

	players := make([]models.Player, 0, len(names))
	for _, p := range names {
		players = append(players, models.Player{
			ID:          p.id,
			Name:        p.name,
			HeadshotURL: fmt.Sprintf(headshotURLFormat, p.id),
		})
	}
	return players
}
