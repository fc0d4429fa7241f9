package service

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"resale-predictor/internal/catalog"
	"resale-predictor/internal/model"
	"resale-predictor/internal/regressor"
)

// PredictionService runs the full prediction pipeline: validate and
// normalize the raw payload, encode it into the model's feature order,
// invoke the regressor, and attach the confidence heuristic.
type PredictionService struct {
	catalog   *catalog.Catalog
	validator *Validator
	encoder   *Encoder
	model     regressor.Regressor
}

// NewPredictionService wires the pipeline from its loaded collaborators.
func NewPredictionService(
	c *catalog.Catalog,
	validator *Validator,
	encoder *Encoder,
	reg regressor.Regressor,
) *PredictionService {
	return &PredictionService{
		catalog:   c,
		validator: validator,
		encoder:   encoder,
		model:     reg,
	}
}

// Predict handles one raw prediction payload. Validation failures come
// back as *ValidationError; anything else is a server-side failure.
func (s *PredictionService) Predict(raw map[string]any) (*model.PredictionResponse, error) {
	if s.catalog == nil {
		return nil, ErrCatalogUnavailable
	}
	if s.model == nil {
		return nil, ErrModelUnavailable
	}

	req, err := s.validator.Normalize(raw)
	if err != nil {
		return nil, err
	}

	features, brandUnseen, err := s.encoder.Encode(req)
	if err != nil {
		return nil, fmt.Errorf("error preparing features for prediction: %w", err)
	}
	if brandUnseen {
		// Validation already established brand membership, so this means
		// the catalog and the trained encoder disagree about the brand
		// universe. The prediction still goes through with code 0.
		log.Warn().Str("brand", req.Brand).Msg("catalog brand missing from trained encoder vocabulary")
	}

	prediction, err := s.model.Predict(features)
	if err != nil {
		return nil, fmt.Errorf("model prediction failed: %w", err)
	}

	predictedPrice := math.Round(prediction*100) / 100
	if predictedPrice < 0 {
		predictedPrice = 0
	}

	return &model.PredictionResponse{
		Success:        true,
		PredictedPrice: predictedPrice,
		Confidence:     Confidence(features),
		FeaturesUsed:   model.FeaturesUsedFrom(req),
	}, nil
}

// CatalogLoaded reports whether the reference catalog is available.
func (s *PredictionService) CatalogLoaded() bool {
	return s.catalog != nil
}

// ModelLoaded reports whether the regressor artifact is available.
func (s *PredictionService) ModelLoaded() bool {
	return s.model != nil
}
