package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/gshantanu15/nba-analysis/internal/analysis"
	"github.com/gshantanu15/nba-analysis/internal/config"
	"github.com/gshantanu15/nba-analysis/internal/models"
	"github.com/gshantanu15/nba-analysis/internal/services"
)

var (
	playerID = flag.String("player", "2544", "player id to analyze")
	file     = flag.String("file", "", "read season rows from a JSON file instead of fetching")
	window   = flag.Int("window", 0, "rolling window override (0 = config default)")
	asJSON   = flag.Bool("json", false, "print the full result as JSON")
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

	acfg := cfg.Analysis
	if *window > 0 {
		acfg.Window = *window
	}

	rows, err := loadRows(cfg)
	if err != nil {
		log.Fatalf("Failed to load season rows: %v", err)
	}
	log.Printf("Loaded %d season rows for player %s", len(rows), *playerID)

	result, err := analysis.Analyze(*playerID, rows, acfg)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if *asJSON {
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("Failed to encode result: %v", err)
		}
		fmt.Println(string(out))
		return
	}

	printReport(result)
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

func printReport(result *models.AnalysisResult) {
	log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Printf("Career trajectory — player %s (%d seasons)", result.PlayerID, len(result.Series))
	log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	for i, rec := range result.Series {
		t := result.Trends[i]
		log.Printf("%s  age %2d  GP %2d  %5.1f ppg  avg %5.1f  decline %+.3f  cum %+.3f",
			rec.SeasonID, rec.Age, rec.GamesPlayed, rec.PointsPerGame,
			t.WeightedAvg, t.Decline, t.CumulativeDecline)
	}

	log.Printf("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Printf("Longevity risk: %.1f (%s)", result.Risk.Overall, result.Risk.Level)
	log.Printf("  performance decline  %5.1f", result.Risk.Factors.PerformanceDecline)
	log.Printf("  usage change         %5.1f", result.Risk.Factors.UsageChange)
	log.Printf("  age                  %5.1f", result.Risk.Factors.Age)
	log.Printf("  availability         %5.1f", result.Risk.Factors.Availability)

	for _, w := range result.Warnings {
		log.Printf("⚠️  dropped %s: %s", w.SeasonID, w.Reason)
	}
}
