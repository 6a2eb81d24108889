package ml

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/model"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
)

// ArtifactKindLogistic is the only artifact kind this service can serve.
const ArtifactKindLogistic = "logistic_regression"

var (
	// ErrArtifactNotFound is returned when no file exists at the model path.
	ErrArtifactNotFound = errors.New("model artifact not found")

	// ErrInvalidArtifact is returned when the artifact cannot be decoded or
	// does not match the encoder's feature contract.
	ErrInvalidArtifact = errors.New("invalid model artifact")
)

// Artifact is the serialized form of a trained classifier. It is read as YAML,
// which also accepts JSON documents.
type Artifact struct {
	Threshold    *float64  `yaml:"threshold"`
	Kind         string    `yaml:"kind"`
	Features     []string  `yaml:"features"`
	Coefficients []float64 `yaml:"coefficients"`
	Intercept    float64   `yaml:"intercept"`
}

// ParseArtifact decodes and validates an artifact document.
func ParseArtifact(data []byte) (*Artifact, error) {
	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks the artifact against the encoder's feature order.
func (a *Artifact) Validate() error {
	if a.Kind != ArtifactKindLogistic {
		return fmt.Errorf("%w: unsupported kind %q", ErrInvalidArtifact, a.Kind)
	}
	if want := model.FeatureNames(); !slices.Equal(a.Features, want) {
		return fmt.Errorf("%w: features %v do not match encoder order %v", ErrInvalidArtifact, a.Features, want)
	}
	if len(a.Coefficients) != model.FeatureCount {
		return fmt.Errorf("%w: %d coefficients, want %d", ErrInvalidArtifact, len(a.Coefficients), model.FeatureCount)
	}
	return nil
}

// Model builds the classifier described by the artifact.
func (a *Artifact) Model() (*LogisticModel, error) {
	threshold := DefaultThreshold
	if a.Threshold != nil {
		threshold = *a.Threshold
	}
	m, err := NewLogisticModel(a.Coefficients, a.Intercept, threshold)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArtifact, err)
	}
	return m, nil
}

// LoadClassifier reads the artifact at path and returns the trained classifier.
func LoadClassifier(ctx context.Context, path string) (port.Classifier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("reading model artifact: %w", err)
	}

	a, err := ParseArtifact(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return a.Model()
}
