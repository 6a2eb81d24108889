package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
)

// MeterName is the instrumentation scope for prediction metrics.
const MeterName = "github.com/mohsinkp02/HeartCare-Risk-Prediction-System/prediction"

// PredictionMetrics implements port.PredictionRecorder with OpenTelemetry instruments.
type PredictionMetrics struct {
	predictions metric.Int64Counter
	defaulted   metric.Int64Counter
	fallbacks   metric.Int64Counter
	probability metric.Float64Histogram
}

// NewPredictionMetrics registers the prediction instruments on the meter provider.
func NewPredictionMetrics(provider metric.MeterProvider) (*PredictionMetrics, error) {
	meter := provider.Meter(MeterName)

	predictions, err := meter.Int64Counter("predictions_total",
		metric.WithDescription("Completed risk predictions by risk label and classifier variant."))
	if err != nil {
		return nil, fmt.Errorf("creating predictions counter: %w", err)
	}

	defaulted, err := meter.Int64Counter("defaulted_features_total",
		metric.WithDescription("Input fields that could not be encoded and defaulted to 0.0."))
	if err != nil {
		return nil, fmt.Errorf("creating defaulted features counter: %w", err)
	}

	fallbacks, err := meter.Int64Counter("classifier_fallbacks_total",
		metric.WithDescription("Classifier invocations replaced by the neutral prediction."))
	if err != nil {
		return nil, fmt.Errorf("creating classifier fallbacks counter: %w", err)
	}

	probability, err := meter.Float64Histogram("prediction_probability",
		metric.WithDescription("Distribution of predicted heart disease probabilities."),
		metric.WithExplicitBucketBoundaries(0.2, 0.4, 0.6, 0.8, 1.0))
	if err != nil {
		return nil, fmt.Errorf("creating probability histogram: %w", err)
	}

	return &PredictionMetrics{
		predictions: predictions,
		defaulted:   defaulted,
		fallbacks:   fallbacks,
		probability: probability,
	}, nil
}

func (m *PredictionMetrics) FeatureDefaulted(ctx context.Context, feature string) {
	m.defaulted.Add(ctx, 1, metric.WithAttributes(attribute.String("feature", feature)))
}

func (m *PredictionMetrics) ClassifierFallback(ctx context.Context, reason string) {
	m.fallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (m *PredictionMetrics) Predicted(ctx context.Context, probability float64, riskLabel string, kind port.ClassifierKind) {
	classifier := attribute.String("classifier", string(kind))
	m.predictions.Add(ctx, 1, metric.WithAttributes(attribute.String("risk_label", riskLabel), classifier))
	m.probability.Record(ctx, probability, metric.WithAttributes(classifier))
}
