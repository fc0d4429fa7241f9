package regressor

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

// testForestJSON is a two-tree ensemble over 12 features: the first tree
// splits on storage (feature 0), the second always answers 200.
const testForestJSON = `{
  "n_features": 12,
  "trees": [
    {"nodes": [
      {"feature": 0, "threshold": 96, "left": 1, "right": 2},
      {"leaf": true, "value": 100},
      {"leaf": true, "value": 400}
    ]},
    {"nodes": [
      {"leaf": true, "value": 200}
    ]}
  ]
}`

func writeArtifact(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write artifact fixture: %v", err)
	}
	return path
}

func testVector(storage float64) []float64 {
	v := make([]float64, 12)
	v[0] = storage
	return v
}

func TestForestPredictAveragesTrees(t *testing.T) {
	forest, err := LoadForest(writeArtifact(t, "model.json", testForestJSON))
	if err != nil {
		t.Fatalf("LoadForest returned error: %v", err)
	}

	tests := []struct {
		name    string
		storage float64
		want    float64
	}{
		{"low storage goes left", 64, 150},
		{"boundary goes left", 96, 150},
		{"high storage goes right", 128, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := forest.Predict(testVector(tt.storage))
			if err != nil {
				t.Fatalf("Predict returned error: %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Predict = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestForestPredictIsDeterministic(t *testing.T) {
	forest, err := LoadForest(writeArtifact(t, "model.json", testForestJSON))
	if err != nil {
		t.Fatalf("LoadForest returned error: %v", err)
	}

	first, err := forest.Predict(testVector(128))
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := forest.Predict(testVector(128))
		if err != nil {
			t.Fatalf("Predict returned error: %v", err)
		}
		if again != first {
			t.Fatalf("Predict not deterministic: %v != %v", again, first)
		}
	}
}

func TestForestPredictRejectsWrongFeatureCount(t *testing.T) {
	forest, err := LoadForest(writeArtifact(t, "model.json", testForestJSON))
	if err != nil {
		t.Fatalf("LoadForest returned error: %v", err)
	}

	for _, n := range []int{0, 11, 13} {
		if _, err := forest.Predict(make([]float64, n)); err == nil {
			t.Errorf("expected error for %d features", n)
		}
	}
}

func TestLoadForestRejectsBadArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "not json"},
		{"no trees", `{"n_features": 12, "trees": []}`},
		{"bad feature count", `{"n_features": 0, "trees": [{"nodes": [{"leaf": true, "value": 1}]}]}`},
		{"empty tree", `{"n_features": 12, "trees": [{"nodes": []}]}`},
		{"split on unknown feature", `{"n_features": 12, "trees": [{"nodes": [
			{"feature": 12, "threshold": 1, "left": 1, "right": 2},
			{"leaf": true, "value": 1},
			{"leaf": true, "value": 2}
		]}]}`},
		{"child out of range", `{"n_features": 12, "trees": [{"nodes": [
			{"feature": 0, "threshold": 1, "left": 1, "right": 9},
			{"leaf": true, "value": 1}
		]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadForest(writeArtifact(t, "model.json", tt.content)); err == nil {
				t.Fatal("expected load error")
			}
		})
	}
}

func TestLoadForestMissingFile(t *testing.T) {
	if _, err := LoadForest(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}
