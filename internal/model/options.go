package model

// BrandsResponse is the payload of GET /api/brands.
type BrandsResponse struct {
	Brands []string `json:"brands"`
}

// ModelsResponse is the payload of GET /api/models/:brand.
type ModelsResponse struct {
	Models []string `json:"models"`
}

// NumericRange is an inclusive [min,max] bound reported to clients.
type NumericRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// OptionsResponse enumerates every valid form option derived from the
// reference dataset. Key names match what the frontend form expects.
type OptionsResponse struct {
	StorageOptions     []float64    `json:"storage_options"`
	RAMOptions         []float64    `json:"ram_options"`
	WarrantyStatus     []string     `json:"warranty_status"`
	ScreenConditions   []string     `json:"screen_conditions"`
	BodyConditions     []string     `json:"body_conditions"`
	WaterDamage        []bool       `json:"water_damage"`
	BatteryHealthRange NumericRange `json:"battery_health_range"`
	CoreFeatureFaulty  []bool       `json:"core_feature_faulty"`
	HasFullKit         []bool       `json:"has_full_kit"`
	AgeRange           NumericRange `json:"age_range"`
}

// HealthResponse is the payload of GET /health.
type HealthResponse struct {
	Status             string `json:"status"`
	ModelLoaded        bool   `json:"model_loaded"`
	TrainingDataLoaded bool   `json:"training_data_loaded"`
	Timestamp          string `json:"timestamp"`
}
