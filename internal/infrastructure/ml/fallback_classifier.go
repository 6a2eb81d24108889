package ml

import (
	"context"
	"log/slog"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/model"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
)

// FallbackClassifier implements port.Classifier when no trained artifact could
// be loaded. Every row gets the neutral probability pair and class 0, so
// callers keep receiving well-formed predictions while the model is missing.
type FallbackClassifier struct {
	logger *slog.Logger
}

// NewFallbackClassifier creates a new fallback classifier.
func NewFallbackClassifier(logger *slog.Logger) *FallbackClassifier {
	return &FallbackClassifier{logger: logger}
}

// PredictProba returns [0.5, 0.5] for every row.
func (c *FallbackClassifier) PredictProba(ctx context.Context, rows [][]float64) ([][]float64, error) {
	c.logger.DebugContext(ctx, "fallback classifier prediction requested",
		slog.Int("row_count", len(rows)),
	)

	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = []float64{1 - model.NeutralProbability, model.NeutralProbability}
	}
	return out, nil
}

// Predict returns class 0 for every row.
func (c *FallbackClassifier) Predict(_ context.Context, rows [][]float64) ([]int, error) {
	out := make([]int, len(rows))
	for i := range out {
		out[i] = model.NeutralClass
	}
	return out, nil
}

// Kind reports ClassifierKindFallback.
func (c *FallbackClassifier) Kind() port.ClassifierKind {
	return port.ClassifierKindFallback
}
