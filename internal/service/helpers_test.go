package service

import (
	"os"
	"path/filepath"
	"testing"

	"resale-predictor/internal/catalog"
	"resale-predictor/internal/regressor"
)

const testDatasetCSV = `brand_name,Name,storage,RAM,age,warranty_status,screen_condition,body_condition,water_damage,battery_health,core_feature_faulty,has_full_kit,resale_price
Apple,iPhone 12,128,4,12,Under Warranty,Good,Good,False,95,False,True,450.0
Apple,iPhone 13,256,6,6,Extended Warranty,Good,Scratched,False,98,False,True,620.0
Samsung,Galaxy S21,128,8,18,Out of Warranty,Scratched,Good,False,88,False,False,300.0
Samsung,Galaxy S22,256,8,1,Under Warranty,Good,Good,False,100,False,True,700.0
Xiaomi,Redmi Note 10,64,4,36,Out of Warranty,Cracked,Damaged,True,70,True,False,80.0
`

const testEncoderJSON = `{"classes": ["Apple", "Samsung", "Xiaomi"]}`

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", name, err)
	}
	return path
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Load(writeFixture(t, "resale.csv", testDatasetCSV))
	if err != nil {
		t.Fatalf("failed to load test catalog: %v", err)
	}
	return c
}

func testBrandEncoder(t *testing.T) *regressor.BrandEncoder {
	t.Helper()

	enc, err := regressor.LoadBrandEncoder(writeFixture(t, "brand_encoder.json", testEncoderJSON))
	if err != nil {
		t.Fatalf("failed to load test brand encoder: %v", err)
	}
	return enc
}

// stubRegressor answers a fixed value, or an error when Err is set.
type stubRegressor struct {
	Value float64
	Err   error
}

func (s *stubRegressor) Predict(features []float64) (float64, error) {
	if s.Err != nil {
		return 0, s.Err
	}
	return s.Value, nil
}

func validPayload() map[string]any {
	return map[string]any{
		"brand":               "Apple",
		"name":                "iPhone 12",
		"storage":             128.0,
		"ram":                 4.0,
		"age":                 12.0,
		"warranty_status":     "Under Warranty",
		"screen_condition":    "Good",
		"body_condition":      "Good",
		"water_damage":        false,
		"battery_health":      95.0,
		"core_feature_faulty": false,
		"has_full_kit":        true,
	}
}
