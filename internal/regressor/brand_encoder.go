package regressor

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrUnseenCategory is returned when a brand was not part of the encoder's
// training vocabulary. Callers decide how to degrade; the encoder itself
// never guesses a code.
var ErrUnseenCategory = errors.New("category not seen during training")

// brandEncoderArtifact is the JSON export of the label encoder fitted at
// training time. Codes are positional: classes[i] encodes to i.
type brandEncoderArtifact struct {
	Classes []string `json:"classes"`
}

// BrandEncoder maps brand names to the integer codes the model was
// trained with.
type BrandEncoder struct {
	codes map[string]int
}

// LoadBrandEncoder reads the label-encoder artifact from disk.
func LoadBrandEncoder(path string) (*BrandEncoder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load brand encoder artifact (%s): %w", path, err)
	}

	var artifact brandEncoderArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("unable to parse brand encoder artifact: %w", err)
	}
	if len(artifact.Classes) == 0 {
		return nil, fmt.Errorf("brand encoder artifact contains no classes")
	}

	codes := make(map[string]int, len(artifact.Classes))
	for i, class := range artifact.Classes {
		codes[class] = i
	}
	return &BrandEncoder{codes: codes}, nil
}

// Encode returns the training-time integer code for a brand, or
// ErrUnseenCategory when the brand was not in the training vocabulary.
func (e *BrandEncoder) Encode(brand string) (int, error) {
	code, ok := e.codes[brand]
	if !ok {
		return 0, fmt.Errorf("brand %q: %w", brand, ErrUnseenCategory)
	}
	return code, nil
}
