package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"resale-predictor/internal/model"
	"resale-predictor/internal/service"
)

// HealthHandler reports whether the prediction dependencies are loaded.
type HealthHandler struct {
	predictionService *service.PredictionService
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(predictionService *service.PredictionService) *HealthHandler {
	return &HealthHandler{predictionService: predictionService}
}

// Health handles GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, model.HealthResponse{
		Status:             "healthy",
		ModelLoaded:        h.predictionService.ModelLoaded(),
		TrainingDataLoaded: h.predictionService.CatalogLoaded(),
		Timestamp:          time.Now().Format(time.RFC3339),
	})
}
