package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gshantanu15/nba-analysis/internal/analysis"
)

type Config struct {
	Port        string
	Environment string

	// Upstream stats source
	StatsBaseURL string
	StatsTimeout time.Duration

	// Analysis tuning (overrides applied on top of analysis defaults)
	Analysis analysis.Config
}

// Load reads the environment. An unparseable numeric value is an error, not
// a silent fallback to the default — a typo in a risk weight must never
// start the server with a tuning the operator did not ask for.
func Load() (*Config, error) {
	env := &envReader{}

	a := analysis.DefaultConfig()
	a.Window = env.getInt("TREND_WINDOW", a.Window)
	a.DeclineWeight = env.getFloat("RISK_WEIGHT_DECLINE", a.DeclineWeight)
	a.UsageWeight = env.getFloat("RISK_WEIGHT_USAGE", a.UsageWeight)
	a.AgeWeight = env.getFloat("RISK_WEIGHT_AGE", a.AgeWeight)
	a.AvailabilityWeight = env.getFloat("RISK_WEIGHT_AVAILABILITY", a.AvailabilityWeight)
	a.AgeThreshold = env.getInt("RISK_AGE_THRESHOLD", a.AgeThreshold)
	a.InjuryLookback = env.getInt("RISK_INJURY_LOOKBACK", a.InjuryLookback)

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		Environment:  getEnv("ENVIRONMENT", "development"),
		StatsBaseURL: getEnv("NBA_API_BASE_URL", "https://stats.nba.com/stats"),
		StatsTimeout: time.Duration(env.getInt("NBA_API_TIMEOUT", 30)) * time.Second,
		Analysis:     a,
	}
	if env.err != nil {
		return nil, env.err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// envReader remembers the first parse failure so Load can report it after
// reading everything.
type envReader struct {
	err error
}

func (e *envReader) getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		e.fail(key, value)
		return defaultValue
	}
	return n
}

func (e *envReader) getFloat(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		e.fail(key, value)
		return defaultValue
	}
	return f
}

func (e *envReader) fail(key, value string) {
	if e.err == nil {
		e.err = fmt.Errorf("invalid config: %s=%q is not a number", key, value)
	}
}
