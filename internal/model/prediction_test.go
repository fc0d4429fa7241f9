package model

import "testing"

func TestFeatureVectorValidate(t *testing.T) {
	if err := make(FeatureVector, FeatureCount).Validate(); err != nil {
		t.Errorf("12-feature vector should be valid, got %v", err)
	}

	for _, n := range []int{0, 11, 13} {
		if err := make(FeatureVector, n).Validate(); err == nil {
			t.Errorf("expected error for vector of length %d", n)
		}
	}
}

func TestFeaturesUsedFromAttachesUnits(t *testing.T) {
	req := &PredictionRequest{
		Brand:         "Apple",
		Name:          "iPhone 12",
		Storage:       128,
		RAM:           4,
		Age:           12,
		BatteryHealth: 95.5,
	}

	used := FeaturesUsedFrom(req)
	if used.Storage != "128 GB" {
		t.Errorf("Storage = %q; want %q", used.Storage, "128 GB")
	}
	if used.RAM != "4 GB" {
		t.Errorf("RAM = %q; want %q", used.RAM, "4 GB")
	}
	if used.Age != "12 months" {
		t.Errorf("Age = %q; want %q", used.Age, "12 months")
	}
	if used.BatteryHealth != "95.5%" {
		t.Errorf("BatteryHealth = %q; want %q", used.BatteryHealth, "95.5%")
	}
}
