package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resale-predictor/internal/catalog"
	"resale-predictor/internal/model"
)

// OptionsHandler serves the catalog enumerations the prediction form is
// built from.
type OptionsHandler struct {
	catalog *catalog.Catalog
}

// NewOptionsHandler creates a new options handler.
func NewOptionsHandler(c *catalog.Catalog) *OptionsHandler {
	return &OptionsHandler{catalog: c}
}

// Brands handles GET /api/brands.
func (h *OptionsHandler) Brands(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Training data not available"})
		return
	}
	c.JSON(http.StatusOK, model.BrandsResponse{Brands: h.catalog.Brands()})
}

// ModelsForBrand handles GET /api/models/:brand.
func (h *OptionsHandler) ModelsForBrand(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Training data not available"})
		return
	}

	brand := c.Param("brand")
	models, ok := h.catalog.ModelsFor(brand)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Brand not found"})
		return
	}
	c.JSON(http.StatusOK, model.ModelsResponse{Models: models})
}

// Options handles GET /api/options.
func (h *OptionsHandler) Options(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Training data not available"})
		return
	}

	ageMin, ageMax := h.catalog.AgeRange()
	battMin, battMax := h.catalog.BatteryRange()

	c.JSON(http.StatusOK, model.OptionsResponse{
		StorageOptions:     h.catalog.StorageOptions(),
		RAMOptions:         h.catalog.RAMOptions(),
		WarrantyStatus:     h.catalog.WarrantyStatuses(),
		ScreenConditions:   h.catalog.ScreenConditions(),
		BodyConditions:     h.catalog.BodyConditions(),
		WaterDamage:        []bool{false, true},
		BatteryHealthRange: model.NumericRange{Min: battMin, Max: battMax},
		CoreFeatureFaulty:  []bool{false, true},
		HasFullKit:         []bool{false, true},
		AgeRange:           model.NumericRange{Min: ageMin, Max: ageMax},
	})
}
