package service

import (
	"errors"

	"github.com/rs/zerolog/log"

	"resale-predictor/internal/model"
	"resale-predictor/internal/regressor"
)

// Ordinal codes for the condition labels. These are the single source of
// truth for the serving path; the training pipeline exports the same
// mapping. Unrecognized labels cannot pass validation, so the middle code
// is only a defensive default.
var (
	screenConditionCodes = map[string]float64{
		"Good":      3,
		"Scratched": 2,
		"Cracked":   1,
	}
	bodyConditionCodes = map[string]float64{
		"Good":      3,
		"Scratched": 2,
		"Damaged":   1,
	}
)

const defaultConditionCode = 2

// Warranty labels that carry their own one-hot columns. Any other status
// ("Under Warranty") encodes as (0,0).
const (
	warrantyExtended = "Extended Warranty"
	warrantyOut      = "Out of Warranty"
)

// Encoder turns normalized requests into the fixed-order feature vector
// the model was trained on.
type Encoder struct {
	brands *regressor.BrandEncoder
}

// NewEncoder creates an encoder using the trained brand encoder artifact.
func NewEncoder(brands *regressor.BrandEncoder) *Encoder {
	return &Encoder{brands: brands}
}

// Encode builds the 12-feature vector for a normalized request. The
// second return reports whether the brand fell back to code 0 because the
// training-time encoder had never seen it; validation makes that
// unreachable in practice, but the fallback is kept for compatibility
// with the trained model. A vector of the wrong length is an internal
// error, never sent onward.
func (e *Encoder) Encode(req *model.PredictionRequest) (model.FeatureVector, bool, error) {
	features := make(model.FeatureVector, 0, model.FeatureCount)

	features = append(features, req.Storage)
	features = append(features, req.RAM)
	features = append(features, float64(req.Age))
	features = append(features, ordinalCode(screenConditionCodes, req.ScreenCondition))
	features = append(features, ordinalCode(bodyConditionCodes, req.BodyCondition))
	features = append(features, boolFlag(req.WaterDamage))
	features = append(features, req.BatteryHealth)
	features = append(features, boolFlag(req.CoreFeatureFaulty))
	features = append(features, boolFlag(req.HasFullKit))

	brandCode, brandUnseen := e.encodeBrand(req.Brand)
	features = append(features, brandCode)

	features = append(features, boolFlag(req.WarrantyStatus == warrantyExtended))
	features = append(features, boolFlag(req.WarrantyStatus == warrantyOut))

	if err := features.Validate(); err != nil {
		return nil, false, err
	}
	return features, brandUnseen, nil
}

// encodeBrand looks up the training-time brand code, degrading to 0 when
// the brand is outside the encoder's vocabulary.
func (e *Encoder) encodeBrand(brand string) (code float64, unseen bool) {
	if e.brands == nil {
		log.Warn().Str("brand", brand).Msg("brand encoder not loaded, defaulting brand code to 0")
		return 0, true
	}
	c, err := e.brands.Encode(brand)
	if err != nil {
		if errors.Is(err, regressor.ErrUnseenCategory) {
			log.Warn().Str("brand", brand).Msg("brand unseen by encoder, defaulting brand code to 0")
		}
		return 0, true
	}
	return float64(c), false
}

func ordinalCode(codes map[string]float64, label string) float64 {
	if code, ok := codes[label]; ok {
		return code
	}
	return defaultConditionCode
}

func boolFlag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
