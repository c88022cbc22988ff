package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gshantanu15/nba-analysis/internal/analysis"
	"github.com/gshantanu15/nba-analysis/internal/models"
	"github.com/gshantanu15/nba-analysis/internal/services"
)

type APIHandler struct {
	nba        *services.NBAClient
	defaultCfg analysis.Config
}

func SetupRoutes(r *gin.RouterGroup, nba *services.NBAClient, cfg analysis.Config) *APIHandler {
	handler := &APIHandler{
		nba:        nba,
		defaultCfg: cfg,
	}

	r.GET("/players", handler.ListPlayers)
	r.POST("/analyze", handler.AnalyzePayload)
	r.GET("/players/:id/analysis", handler.AnalyzePlayer)

	return handler
}

// ListPlayers returns the built-in dashboard roster.
func (h *APIHandler) ListPlayers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"players": services.KnownPlayers()})
}

// AnalyzeRequest carries the caller's own season rows plus optional tuning
// overrides. Absent overrides fall back to the server defaults.
type AnalyzeRequest struct {
	PlayerID string                `json:"player_id" binding:"required"`
	Seasons  []models.RawSeasonRow `json:"seasons" binding:"required"`

	Window         *int     `json:"window,omitempty"`
	DeclineWeight  *float64 `json:"decline_weight,omitempty"`
	UsageWeight    *float64 `json:"usage_weight,omitempty"`
	AgeWeight      *float64 `json:"age_weight,omitempty"`
	AvailWeight    *float64 `json:"availability_weight,omitempty"`
	AgeThreshold   *int     `json:"age_threshold,omitempty"`
	InjuryLookback *int     `json:"injury_lookback,omitempty"`
}

func (req *AnalyzeRequest) config(base analysis.Config) analysis.Config {
	cfg := base
	if req.Window != nil {
		cfg.Window = *req.Window
	}
	if req.DeclineWeight != nil {
		cfg.DeclineWeight = *req.DeclineWeight
	}
	if req.UsageWeight != nil {
		cfg.UsageWeight = *req.UsageWeight
	}
	if req.AgeWeight != nil {
		cfg.AgeWeight = *req.AgeWeight
	}
	if req.AvailWeight != nil {
		cfg.AvailabilityWeight = *req.AvailWeight
	}
	if req.AgeThreshold != nil {
		cfg.AgeThreshold = *req.AgeThreshold
	}
	if req.InjuryLookback != nil {
		cfg.InjuryLookback = *req.InjuryLookback
	}
	return cfg
}

// AnalyzePayload analyzes season rows supplied in the request body.
func (h *APIHandler) AnalyzePayload(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := req.config(h.defaultCfg)
	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := analysis.Analyze(req.PlayerID, req.Seasons, cfg)
	if err != nil {
		if errors.Is(err, analysis.ErrInsufficientData) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzePlayer fetches a player's career stats upstream and analyzes them
// with the server's default config.
func (h *APIHandler) AnalyzePlayer(c *gin.Context) {
	playerID := c.Param("id")

	rows, err := h.nba.FetchCareerStats(playerID)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	result, err := analysis.Analyze(playerID, rows, h.defaultCfg)
	if err != nil {
		if errors.Is(err, analysis.ErrInsufficientData) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
