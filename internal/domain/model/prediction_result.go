package model

import "github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/valueobject"

// PredictionResult is the outcome of one classifier invocation.
type PredictionResult struct {
	Level       valueobject.RiskLevel
	Probability float64
	Class       int
}

// NewPredictionResult bands the probability into a risk tier.
func NewPredictionResult(probability float64, class int) PredictionResult {
	return PredictionResult{
		Probability: probability,
		Class:       class,
		Level:       valueobject.RiskLevelFromProbability(probability),
	}
}

// Neutral outcome reported when no usable classifier output exists.
const (
	NeutralProbability = 0.5
	NeutralClass       = 0
)

// NeutralPredictionResult is the result served by the fallback classifier and
// substituted for failed classifier invocations.
func NeutralPredictionResult() PredictionResult {
	return NewPredictionResult(NeutralProbability, NeutralClass)
}
