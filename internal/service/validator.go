package service

import (
	"fmt"
	"strconv"
	"strings"

	"resale-predictor/internal/catalog"
	"resale-predictor/internal/model"
)

// Validator checks raw prediction payloads against the reference catalog
// and produces normalized requests.
type Validator struct {
	catalog *catalog.Catalog
}

// NewValidator creates a validator bound to a loaded catalog.
func NewValidator(c *catalog.Catalog) *Validator {
	return &Validator{catalog: c}
}

// Normalize validates a raw JSON payload and returns the normalized
// request, or the first validation failure found. Checks run in a fixed
// order: presence of all 12 fields, then type coercion, then catalog
// membership and range checks.
func (v *Validator) Normalize(raw map[string]any) (*model.PredictionRequest, error) {
	for _, field := range model.RequiredFields {
		value, ok := raw[field]
		if !ok || value == nil || value == "" {
			return nil, missingField(field)
		}
	}

	brand, err := coerceString("brand", raw["brand"])
	if err != nil {
		return nil, err
	}
	name, err := coerceString("name", raw["name"])
	if err != nil {
		return nil, err
	}
	storage, err := coerceFloat("storage", raw["storage"])
	if err != nil {
		return nil, err
	}
	ram, err := coerceFloat("ram", raw["ram"])
	if err != nil {
		return nil, err
	}
	age, err := coerceInt("age", raw["age"])
	if err != nil {
		return nil, err
	}
	warrantyStatus, err := coerceString("warranty_status", raw["warranty_status"])
	if err != nil {
		return nil, err
	}
	screenCondition, err := coerceString("screen_condition", raw["screen_condition"])
	if err != nil {
		return nil, err
	}
	bodyCondition, err := coerceString("body_condition", raw["body_condition"])
	if err != nil {
		return nil, err
	}
	waterDamage, err := coerceBool("water_damage", raw["water_damage"])
	if err != nil {
		return nil, err
	}
	batteryHealth, err := coerceFloat("battery_health", raw["battery_health"])
	if err != nil {
		return nil, err
	}
	coreFeatureFaulty, err := coerceBool("core_feature_faulty", raw["core_feature_faulty"])
	if err != nil {
		return nil, err
	}
	hasFullKit, err := coerceBool("has_full_kit", raw["has_full_kit"])
	if err != nil {
		return nil, err
	}

	if v.catalog == nil {
		return nil, ErrCatalogUnavailable
	}

	if !v.catalog.HasBrand(brand) {
		return nil, invalidField("brand", fmt.Sprintf("Invalid brand: %s", brand))
	}
	if !v.catalog.HasModel(brand, name) {
		return nil, invalidField("name", fmt.Sprintf("Invalid model for brand %s: %s", brand, name))
	}
	if !v.catalog.HasStorage(storage) {
		return nil, invalidField("storage", fmt.Sprintf("Invalid storage: %g", storage))
	}
	if !v.catalog.HasRAM(ram) {
		return nil, invalidField("ram", fmt.Sprintf("Invalid RAM: %g", ram))
	}
	if ageMin, ageMax := v.catalog.AgeRange(); age < ageMin || age > ageMax {
		return nil, invalidField("age", fmt.Sprintf("Age must be between %d and %d months", ageMin, ageMax))
	}
	if !v.catalog.HasWarrantyStatus(warrantyStatus) {
		return nil, invalidField("warranty_status", fmt.Sprintf("Invalid warranty status: %s", warrantyStatus))
	}
	if !v.catalog.HasScreenCondition(screenCondition) {
		return nil, invalidField("screen_condition", fmt.Sprintf("Invalid screen condition: %s", screenCondition))
	}
	if !v.catalog.HasBodyCondition(bodyCondition) {
		return nil, invalidField("body_condition", fmt.Sprintf("Invalid body condition: %s", bodyCondition))
	}
	if battMin, battMax := v.catalog.BatteryRange(); batteryHealth < float64(battMin) || batteryHealth > float64(battMax) {
		return nil, invalidField("battery_health", fmt.Sprintf("Battery health must be between %d and %d", battMin, battMax))
	}

	return &model.PredictionRequest{
		Brand:             brand,
		Name:              name,
		Storage:           storage,
		RAM:               ram,
		Age:               age,
		WarrantyStatus:    warrantyStatus,
		ScreenCondition:   screenCondition,
		BodyCondition:     bodyCondition,
		WaterDamage:       waterDamage,
		BatteryHealth:     batteryHealth,
		CoreFeatureFaulty: coreFeatureFaulty,
		HasFullKit:        hasFullKit,
	}, nil
}

func coerceString(field string, value any) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", invalidField(field, fmt.Sprintf("Invalid value for %s: expected a string", field))
	}
	return strings.TrimSpace(s), nil
}

func coerceFloat(field string, value any) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, invalidField(field, fmt.Sprintf("Invalid number for %s: %s", field, v))
		}
		return f, nil
	default:
		return 0, invalidField(field, fmt.Sprintf("Invalid number for %s", field))
	}
}

func coerceInt(field string, value any) (int, error) {
	switch v := value.(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, invalidField(field, fmt.Sprintf("Invalid integer for %s: %s", field, v))
		}
		return n, nil
	default:
		return 0, invalidField(field, fmt.Sprintf("Invalid integer for %s", field))
	}
}

func coerceBool(field string, value any) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case string:
		b, err := strconv.ParseBool(strings.ToLower(strings.TrimSpace(v)))
		if err != nil {
			return false, invalidField(field, fmt.Sprintf("Invalid boolean for %s: %s", field, v))
		}
		return b, nil
	default:
		return false, invalidField(field, fmt.Sprintf("Invalid boolean for %s", field))
	}
}
