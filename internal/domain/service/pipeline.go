package service

import (
	"context"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/model"
)

// Encoder defines the feature-encoding stage of the prediction pipeline.
// FeatureEncoder is the production implementation.
type Encoder interface {
	Encode(ctx context.Context, raw map[string]any) model.FeatureVector
}

// Predictor defines the classification stage of the prediction pipeline.
// RiskPredictor is the production implementation.
type Predictor interface {
	Predict(ctx context.Context, vector model.FeatureVector) Prediction
}
