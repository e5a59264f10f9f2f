package controllers

import (
	"net/http"

	"settermind/internal/pipeline"

	"github.com/gin-gonic/gin"
)

type ProspectController struct {
	Pipeline *pipeline.Pipeline
}

type ProspectRequest struct {
	Hashtag string `json:"hashtag" binding:"required"`
}

// Prospect searches candidate posts for a hashtag.
func (pc *ProspectController) Prospect(c *gin.Context) {
	var req ProspectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Hashtag inválido."})
		return
	}

	posts, err := pc.Pipeline.Prospect(c.Request.Context(), req.Hashtag)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"found_posts": posts})
}
