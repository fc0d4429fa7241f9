package regressor

import (
	"encoding/json"
	"fmt"
	"os"
)

// Regressor is the inference contract of the trained price model. The
// implementation is an artifact produced by the offline training pipeline;
// nothing in the serving path depends on how it was fit.
type Regressor interface {
	Predict(features []float64) (float64, error)
}

// treeNode is a single node of a regression tree. Leaves carry a value;
// internal nodes split on feature <= threshold.
type treeNode struct {
	Feature   int     `json:"feature"`
	Threshold float64 `json:"threshold"`
	Left      int     `json:"left"`
	Right     int     `json:"right"`
	Leaf      bool    `json:"leaf"`
	Value     float64 `json:"value"`
}

type tree struct {
	Nodes []treeNode `json:"nodes"`
}

// forestArtifact is the on-disk JSON export of the trained random forest.
type forestArtifact struct {
	FeatureCount int    `json:"n_features"`
	Trees        []tree `json:"trees"`
}

// Forest evaluates a random-forest regression ensemble. Predictions are
// the mean of the per-tree outputs, exactly as the training library does.
type Forest struct {
	featureCount int
	trees        []tree
}

// LoadForest reads a forest artifact from disk and validates its shape.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load model artifact (%s): %w", path, err)
	}

	var artifact forestArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("unable to parse model artifact: %w", err)
	}

	if artifact.FeatureCount <= 0 {
		return nil, fmt.Errorf("model artifact declares invalid feature count %d", artifact.FeatureCount)
	}
	if len(artifact.Trees) == 0 {
		return nil, fmt.Errorf("model artifact contains no trees")
	}
	for ti, tr := range artifact.Trees {
		if len(tr.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, node := range tr.Nodes {
			if node.Leaf {
				continue
			}
			if node.Feature < 0 || node.Feature >= artifact.FeatureCount {
				return nil, fmt.Errorf("tree %d node %d splits on unknown feature %d", ti, ni, node.Feature)
			}
			if node.Left < 0 || node.Left >= len(tr.Nodes) || node.Right < 0 || node.Right >= len(tr.Nodes) {
				return nil, fmt.Errorf("tree %d node %d has out-of-range children", ti, ni)
			}
		}
	}

	return &Forest{
		featureCount: artifact.FeatureCount,
		trees:        artifact.Trees,
	}, nil
}

// FeatureCount returns the number of features the model expects.
func (f *Forest) FeatureCount() int {
	return f.featureCount
}

// Predict runs the feature vector through every tree and averages the
// leaf values.
func (f *Forest) Predict(features []float64) (float64, error) {
	if len(features) != f.featureCount {
		return 0, fmt.Errorf("model expects %d features, got %d", f.featureCount, len(features))
	}

	sum := 0.0
	for i := range f.trees {
		sum += f.trees[i].evaluate(features)
	}
	return sum / float64(len(f.trees)), nil
}

func (t *tree) evaluate(features []float64) float64 {
	node := &t.Nodes[0]
	for !node.Leaf {
		if features[node.Feature] <= node.Threshold {
			node = &t.Nodes[node.Left]
		} else {
			node = &t.Nodes[node.Right]
		}
	}
	return node.Value
}
