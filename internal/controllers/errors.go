package controllers

import (
	"errors"
	"log"
	"net/http"

	"settermind/internal/pipeline"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondPipelineError maps a pipeline failure onto its HTTP status and
// user-readable Spanish reason. Unknown errors stay generic.
func respondPipelineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, pipeline.ErrPostDetailsUnavailable):
		c.JSON(http.StatusNotFound, gin.H{"error": "No se pudieron obtener los detalles del post para el contexto."})
	case errors.Is(err, pipeline.ErrNoComments):
		c.JSON(http.StatusNotFound, gin.H{"error": "No se encontraron comentarios."})
	case errors.Is(err, pipeline.ErrAnalysisFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Análisis de IA falló."})
	case errors.Is(err, pipeline.ErrStrategyFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "La generación de estrategia falló."})
	case errors.Is(err, pipeline.ErrProspectFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "La búsqueda de prospectos falló."})
	case errors.Is(err, pipeline.ErrContractViolation):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Respuesta de IA no es JSON válido."})
	case errors.Is(err, pipeline.ErrConflict), errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, gin.H{"error": "El recurso ya existe."})
	case errors.Is(err, pipeline.ErrUpstreamUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "El proveedor externo no está disponible."})
	case errors.Is(err, pipeline.ErrEmptyResult):
		c.JSON(http.StatusNotFound, gin.H{"error": "No se encontraron resultados."})
	default:
		log.Printf("unhandled pipeline error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}
