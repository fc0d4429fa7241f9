package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"resale-predictor/internal/service"
)

// PredictHandler handles price prediction requests.
type PredictHandler struct {
	predictionService *service.PredictionService
}

// NewPredictHandler creates a new prediction handler.
func NewPredictHandler(predictionService *service.PredictionService) *PredictHandler {
	return &PredictHandler{predictionService: predictionService}
}

// Predict handles POST /predict.
func (h *PredictHandler) Predict(c *gin.Context) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	response, err := h.predictionService.Predict(raw)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.Is(err, service.ErrCatalogUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Training data not available"})
		case errors.Is(err, service.ErrModelUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Model not available"})
		default:
			// Internal failures are logged with detail but never leaked.
			log.Error().Err(err).Msg("prediction failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error during prediction"})
		}
		return
	}

	c.JSON(http.StatusOK, response)
}
