package service

import "resale-predictor/internal/model"

// Confidence bounds and base value. The score is a rule-based heuristic
// communicated to the user, not a statistical interval.
const (
	confidenceBase  = 0.80
	confidenceFloor = 0.60
	confidenceCeil  = 0.95
)

// Feature positions the heuristic reads from the encoded vector.
const (
	featureAge           = 2
	featureScreen        = 3
	featureBody          = 4
	featureBatteryHealth = 6
)

// Confidence derives a trust score in [0.60, 0.95] from the encoded
// feature vector. A malformed vector yields the base value; confidence is
// advisory and never fails a request.
//
// Ages strictly between 2 and 4 months get no age adjustment; the gap
// between the two thresholds is intentional.
func Confidence(features model.FeatureVector) float64 {
	if features.Validate() != nil {
		return confidenceBase
	}

	confidence := confidenceBase

	age := features[featureAge]
	if age <= 2 {
		confidence += 0.10
	} else if age >= 4 {
		confidence -= 0.05
	}

	screen := features[featureScreen]
	body := features[featureBody]
	if screen >= 3 && body >= 3 {
		confidence += 0.05
	} else if screen <= 1 || body <= 1 {
		confidence -= 0.10
	}

	battery := features[featureBatteryHealth]
	if battery >= 90 {
		confidence += 0.05
	} else if battery <= 80 {
		confidence -= 0.05
	}

	if confidence > confidenceCeil {
		return confidenceCeil
	}
	if confidence < confidenceFloor {
		return confidenceFloor
	}
	return confidence
}
