package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"github.com/gshantanu15/nba-analysis/internal/analysis"
	"github.com/gshantanu15/nba-analysis/internal/config"
	"github.com/gshantanu15/nba-analysis/internal/models"
	"github.com/gshantanu15/nba-analysis/internal/services"
)

var (
	playerID = flag.String("player", "2544", "player id to analyze")
	file     = flag.String("file", "", "read season rows from a JSON file instead of fetching")
	out      = flag.String("out", "report.xlsx", "output workbook path")
)

func main() {
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Bad configuration: %v", err)
	}

	rows, err := loadRows(cfg)
	if err != nil {
		log.Fatalf("Failed to load season rows: %v", err)
	}

	result, err := analysis.Analyze(*playerID, rows, cfg.Analysis)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if err := writeWorkbook(result, *out); err != nil {
		log.Fatalf("Failed to write workbook: %v", err)
	}
	log.Printf("Report written to %s", *out)
}

func loadRows(cfg *config.Config) ([]models.RawSeasonRow, error) {
	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			return nil, err
		}
		var rows []models.RawSeasonRow
		if err := json.Unmarshal(data, &rows); err != nil {
			return nil, err
		}
		return rows, nil
	}

	nba := services.NewNBAClient(cfg.StatsBaseURL, cfg.StatsTimeout)
	return nba.FetchCareerStats(*playerID)
}

func writeWorkbook(result *models.AnalysisResult, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	career := "Career"
	if err := f.SetSheetName("Sheet1", career); err != nil {
		return err
	}

	headers := []string{"Season", "Age", "GP", "Minutes", "Points", "PPG", "MPG", "Weighted Avg", "Decline", "Cumulative Decline"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(career, cell, h)
	}
	for i, rec := range result.Series {
		t := result.Trends[i]
		values := []interface{}{
			rec.SeasonID, rec.Age, rec.GamesPlayed, rec.Minutes, rec.Points,
			rec.PointsPerGame, rec.MinutesPerGame,
			t.WeightedAvg, t.Decline, t.CumulativeDecline,
		}
		for j, v := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			f.SetCellValue(career, cell, v)
		}
	}

	risk := "Risk"
	if _, err := f.NewSheet(risk); err != nil {
		return err
	}
	riskRows := [][]interface{}{
		{"Player", result.PlayerID},
		{"Overall", result.Risk.Overall},
		{"Level", result.Risk.Level},
		{"Performance Decline", result.Risk.Factors.PerformanceDecline},
		{"Usage Change", result.Risk.Factors.UsageChange},
		{"Age", result.Risk.Factors.Age},
		{"Availability", result.Risk.Factors.Availability},
	}
	for i, pair := range riskRows {
		for j, v := range pair {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+1)
			f.SetCellValue(risk, cell, v)
		}
	}
	for i, w := range result.Warnings {
		f.SetCellValue(risk, fmt.Sprintf("A%d", len(riskRows)+2+i), fmt.Sprintf("dropped %s: %s", w.SeasonID, w.Reason))
	}

	return f.SaveAs(path)
}
