package port

//go:generate mockgen -source=classifier.go -destination=mocks/mock_classifier.go -package=mocks

import (
	"context"
	"errors"
)

// ClassifierKind tags which classifier variant is serving predictions.
type ClassifierKind string

const (
	// ClassifierKindReal is a trained model loaded from an artifact.
	ClassifierKindReal ClassifierKind = "real"
	// ClassifierKindFallback is the deterministic stand-in used when no artifact could be loaded.
	ClassifierKindFallback ClassifierKind = "fallback"
)

// ErrClassifierShape reports classifier output that does not match the batch contract.
var ErrClassifierShape = errors.New("classifier output has unexpected shape")

// Classifier is a binary classifier over batches of feature rows.
type Classifier interface {
	// PredictProba returns one [P(class 0), P(class 1)] pair per input row.
	PredictProba(ctx context.Context, rows [][]float64) ([][]float64, error)

	// Predict returns one class label (0 or 1) per input row.
	Predict(ctx context.Context, rows [][]float64) ([]int, error)

	// Kind reports which variant this classifier is.
	Kind() ClassifierKind
}

// ClassifierSource hands out the process-wide classifier, loading it on first use.
type ClassifierSource interface {
	Classifier(ctx context.Context) Classifier
}
