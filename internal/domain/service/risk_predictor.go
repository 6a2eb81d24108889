package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/model"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
)

// Fallback reasons reported to the recorder.
const (
	FallbackReasonInvocation = "invocation_error"
	FallbackReasonShape      = "invalid_output"
)

// positiveClass is the column of PredictProba holding P(class 1).
const positiveClass = 1

// Prediction is a banded prediction result tagged with the classifier variant that produced it.
type Prediction struct {
	Classifier port.ClassifierKind
	model.PredictionResult
}

// RiskPredictor invokes the classifier on an encoded vector and bands the result.
// It always returns a complete result: a failed invocation is replaced by the
// neutral 0.5 / class 0 outcome and logged.
type RiskPredictor struct {
	source   port.ClassifierSource
	recorder port.PredictionRecorder
	logger   *slog.Logger
}

// NewRiskPredictor creates a RiskPredictor over the given classifier source.
// A nil recorder discards observability signals.
func NewRiskPredictor(source port.ClassifierSource, recorder port.PredictionRecorder, logger *slog.Logger) *RiskPredictor {
	if recorder == nil {
		recorder = port.NopRecorder{}
	}
	return &RiskPredictor{
		source:   source,
		recorder: recorder,
		logger:   logger,
	}
}

// Predict scores a single feature vector.
func (p *RiskPredictor) Predict(ctx context.Context, vector model.FeatureVector) Prediction {
	clf := p.source.Classifier(ctx)
	kind := clf.Kind()

	result, err := classify(ctx, clf, vector)
	if err != nil {
		reason := FallbackReasonInvocation
		if errors.Is(err, port.ErrClassifierShape) {
			reason = FallbackReasonShape
		}
		p.logger.ErrorContext(ctx, "classifier invocation failed, using neutral prediction",
			slog.String("classifier", string(kind)),
			slog.String("reason", reason),
			"error", err,
		)
		p.recorder.ClassifierFallback(ctx, reason)
		result = model.NeutralPredictionResult()
	}

	p.recorder.Predicted(ctx, result.Probability, result.Level.Label(), kind)

	return Prediction{
		PredictionResult: result,
		Classifier:       kind,
	}
}

// classify runs both classifier methods on a single-row batch.
func classify(ctx context.Context, clf port.Classifier, vector model.FeatureVector) (model.PredictionResult, error) {
	rows := [][]float64{vector.Slice()}

	proba, err := clf.PredictProba(ctx, rows)
	if err != nil {
		return model.PredictionResult{}, fmt.Errorf("predict proba: %w", err)
	}
	if len(proba) != 1 || len(proba[0]) <= positiveClass {
		return model.PredictionResult{}, fmt.Errorf("predict proba returned %d rows: %w", len(proba), port.ErrClassifierShape)
	}
	probability := proba[0][positiveClass]
	if math.IsNaN(probability) || math.IsInf(probability, 0) {
		return model.PredictionResult{}, fmt.Errorf("predict proba returned %v: %w", probability, port.ErrClassifierShape)
	}

	classes, err := clf.Predict(ctx, rows)
	if err != nil {
		return model.PredictionResult{}, fmt.Errorf("predict: %w", err)
	}
	if len(classes) != 1 {
		return model.PredictionResult{}, fmt.Errorf("predict returned %d labels: %w", len(classes), port.ErrClassifierShape)
	}

	return model.NewPredictionResult(probability, coerceClass(classes[0])), nil
}

// coerceClass maps any positive label to 1 and everything else to 0.
func coerceClass(label int) int {
	if label > 0 {
		return 1
	}
	return 0
}
