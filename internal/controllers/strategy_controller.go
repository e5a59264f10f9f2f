package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"settermind/internal/middleware"
	"settermind/internal/models"
	"settermind/internal/pipeline"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type StrategyController struct {
	DB       *gorm.DB
	Pipeline *pipeline.Pipeline
}

type StrategyRequest struct {
	Niche  string `json:"niche" binding:"required"`
	Avatar string `json:"avatar" binding:"required"`
}

// StrategyEntry is one row of the strategy listing.
type StrategyEntry struct {
	ID        string          `json:"id"`
	Niche     string          `json:"niche"`
	Avatar    string          `json:"avatar"`
	Keywords  json.RawMessage `json:"keywords"`
	Hashtags  json.RawMessage `json:"hashtags"`
	CreatedAt string          `json:"created_at"`
}

// Generate runs the strategy pipeline for the acting user.
func (sc *StrategyController) Generate(c *gin.Context) {
	var req StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de estrategia inválidos."})
		return
	}

	user := middleware.CurrentUser(c)

	result, err := sc.Pipeline.Strategy(c.Request.Context(), user.ID, req.Niche, req.Avatar)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	log.Printf("strategy for user %s stored", user.Username)
	c.JSON(http.StatusOK, result)
}

// List returns the acting user's strategies, most recent first.
func (sc *StrategyController) List(c *gin.Context) {
	user := middleware.CurrentUser(c)

	strategies, err := gorm.G[models.Strategy](sc.DB).
		Where("owner_id = ?", user.ID).
		Order("created_at DESC").
		Find(c.Request.Context())
	if err != nil {
		log.Printf("failed to list strategies: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	entries := make([]StrategyEntry, 0, len(strategies))
	for _, strategy := range strategies {
		entries = append(entries, StrategyEntry{
			ID:        strategy.ID,
			Niche:     strategy.Niche,
			Avatar:    strategy.Avatar,
			Keywords:  strategy.Keywords,
			Hashtags:  strategy.Hashtags,
			CreatedAt: strategy.CreatedAt.Format(time.RFC3339),
		})
	}

	c.JSON(http.StatusOK, gin.H{"strategies": entries})
}
