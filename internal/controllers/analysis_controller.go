package controllers

import (
	"log"
	"net/http"
	"time"

	"settermind/internal/middleware"
	"settermind/internal/models"
	"settermind/internal/pipeline"

	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
	"gorm.io/gorm"
)

type AnalysisController struct {
	DB       *gorm.DB
	Pipeline *pipeline.Pipeline
}

type AnalyzeRequest struct {
	PostURL string `json:"post_url" binding:"required"`
	Niche   string `json:"niche" binding:"required"`
	Avatar  string `json:"avatar" binding:"required"`
}

type PostDetailsRequest struct {
	PostURL string `json:"post_url" binding:"required"`
}

// HistoryEntry is one row of the analysis history listing.
type HistoryEntry struct {
	ID        string `json:"id"`
	PostURL   string `json:"post_url"`
	CreatedAt string `json:"created_at"`
	Summary   string `json:"summary"`
}

// Analyze runs the full lead-analysis pipeline for the acting user and
// returns the persisted result verbatim.
func (ac *AnalysisController) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos de análisis inválidos."})
		return
	}

	user := middleware.CurrentUser(c)

	result, err := ac.Pipeline.Analyze(c.Request.Context(), user.ID, req.PostURL, req.Niche, req.Avatar)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	log.Printf("analysis for user %s stored", user.Username)
	c.Data(http.StatusOK, "application/json; charset=utf-8", result)
}

// History lists the acting user's analyses, most recent first.
func (ac *AnalysisController) History(c *gin.Context) {
	user := middleware.CurrentUser(c)

	analyses, err := gorm.G[models.Analysis](ac.DB).
		Where("owner_id = ?", user.ID).
		Order("created_at DESC").
		Find(c.Request.Context())
	if err != nil {
		log.Printf("failed to list analyses: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	history := make([]HistoryEntry, 0, len(analyses))
	for _, analysis := range analyses {
		summary := gjson.GetBytes(analysis.ResultData, "summary").String()
		if summary == "" {
			summary = "Sin resumen."
		}
		history = append(history, HistoryEntry{
			ID:        analysis.ID,
			PostURL:   analysis.PostURL,
			CreatedAt: analysis.CreatedAt.Format(time.RFC3339),
			Summary:   summary,
		})
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// PostDetails returns the scraped post metadata plus the author profile
// classification, without persisting anything.
func (ac *AnalysisController) PostDetails(c *gin.Context) {
	var req PostDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Datos inválidos."})
		return
	}

	details, err := ac.Pipeline.PostDetails(c.Request.Context(), req.PostURL)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No se pudieron obtener los detalles del post."})
		return
	}

	c.JSON(http.StatusOK, details)
}
