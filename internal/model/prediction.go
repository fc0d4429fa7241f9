package model

import "fmt"

// RequiredFields lists the 12 request fields in the order they are
// validated. The first missing field is the one reported.
var RequiredFields = []string{
	"brand", "name", "storage", "ram", "age",
	"warranty_status", "screen_condition", "body_condition",
	"water_damage", "battery_health", "core_feature_faulty", "has_full_kit",
}

// PredictionRequest is a fully validated and normalized prediction input.
type PredictionRequest struct {
	Brand             string
	Name              string
	Storage           float64
	RAM               float64
	Age               int
	WarrantyStatus    string
	ScreenCondition   string
	BodyCondition     string
	WaterDamage       bool
	BatteryHealth     float64
	CoreFeatureFaulty bool
	HasFullKit        bool
}

// FeatureCount is the number of features the regressor was trained on.
const FeatureCount = 12

// FeatureVector is the fixed-order numeric encoding of a request:
// [storage, ram, age, screen_code, body_code, water_damage,
// battery_health, core_feature_faulty, has_full_kit, brand_code,
// warranty_extended, warranty_out_of_warranty]
type FeatureVector []float64

// Validate checks the vector against the trained feature count. A length
// mismatch means the encoder and model have drifted apart and must never
// reach the regressor.
func (v FeatureVector) Validate() error {
	if len(v) != FeatureCount {
		return fmt.Errorf("expected %d features, got %d", FeatureCount, len(v))
	}
	return nil
}

// FeaturesUsed echoes the normalized input back to the client with
// display units attached.
type FeaturesUsed struct {
	Brand             string `json:"brand"`
	Name              string `json:"name"`
	Storage           string `json:"storage"`
	RAM               string `json:"ram"`
	Age               string `json:"age"`
	WarrantyStatus    string `json:"warranty_status"`
	ScreenCondition   string `json:"screen_condition"`
	BodyCondition     string `json:"body_condition"`
	WaterDamage       bool   `json:"water_damage"`
	BatteryHealth     string `json:"battery_health"`
	CoreFeatureFaulty bool   `json:"core_feature_faulty"`
	HasFullKit        bool   `json:"has_full_kit"`
}

// PredictionResponse is the success payload of POST /predict.
type PredictionResponse struct {
	Success        bool         `json:"success"`
	PredictedPrice float64      `json:"predicted_price"`
	Confidence     float64      `json:"confidence"`
	FeaturesUsed   FeaturesUsed `json:"features_used"`
}

// FeaturesUsedFrom renders the normalized request for client display.
func FeaturesUsedFrom(req *PredictionRequest) FeaturesUsed {
	return FeaturesUsed{
		Brand:             req.Brand,
		Name:              req.Name,
		Storage:           fmt.Sprintf("%g GB", req.Storage),
		RAM:               fmt.Sprintf("%g GB", req.RAM),
		Age:               fmt.Sprintf("%d months", req.Age),
		WarrantyStatus:    req.WarrantyStatus,
		ScreenCondition:   req.ScreenCondition,
		BodyCondition:     req.BodyCondition,
		WaterDamage:       req.WaterDamage,
		BatteryHealth:     fmt.Sprintf("%g%%", req.BatteryHealth),
		CoreFeatureFaulty: req.CoreFeatureFaulty,
		HasFullKit:        req.HasFullKit,
	}
}
