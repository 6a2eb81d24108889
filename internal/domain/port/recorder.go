package port

//go:generate mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks

import "context"

// PredictionRecorder receives observability signals from the prediction pipeline.
type PredictionRecorder interface {
	// FeatureDefaulted is called when a raw field could not be encoded and fell back to 0.0.
	FeatureDefaulted(ctx context.Context, feature string)

	// ClassifierFallback is called when a classifier invocation was replaced by the neutral result.
	ClassifierFallback(ctx context.Context, reason string)

	// Predicted is called once per completed prediction.
	Predicted(ctx context.Context, probability float64, riskLabel string, kind ClassifierKind)
}

// NopRecorder discards every signal.
type NopRecorder struct{}

func (NopRecorder) FeatureDefaulted(context.Context, string)                   {}
func (NopRecorder) ClassifierFallback(context.Context, string)                 {}
func (NopRecorder) Predicted(context.Context, float64, string, ClassifierKind) {}
