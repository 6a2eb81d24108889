package event

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/pkg/events"
)

const (
	// EventTypeRiskPredicted is emitted for every completed prediction.
	EventTypeRiskPredicted = "heartcare.risk.predicted"

	// EventTypeHighRiskDetected is emitted when a prediction lands in the Very High tier.
	EventTypeHighRiskDetected = "heartcare.high_risk.detected"

	// AggregateType names the aggregate that emits these events.
	AggregateType = "RiskAssessment"
)

// RiskPredicted is published when a risk assessment has been produced.
// It carries the outcome only; raw survey answers never leave the service.
type RiskPredicted struct {
	events.BaseEvent `json:"-"`
	PredictedAt      time.Time `json:"predicted_at"`
	RiskLabel        string    `json:"risk_label"`
	Classifier       string    `json:"classifier"`
	Probability      float64   `json:"probability"`
	Class            int       `json:"class"`
	RiskLevel        int       `json:"risk_level"`
	PredictionID     uuid.UUID `json:"prediction_id"`
}

// NewRiskPredicted creates a RiskPredicted event with its JSON payload attached.
func NewRiskPredicted(
	predictionID uuid.UUID,
	probability float64,
	class, riskLevel int,
	riskLabel, classifier string,
	predictedAt time.Time,
) RiskPredicted {
	e := RiskPredicted{
		PredictionID: predictionID,
		Probability:  probability,
		Class:        class,
		RiskLevel:    riskLevel,
		RiskLabel:    riskLabel,
		Classifier:   classifier,
		PredictedAt:  predictedAt,
	}
	e.BaseEvent = events.NewBaseEvent(EventTypeRiskPredicted, predictionID, AggregateType, mustMarshal(e))
	return e
}

// HighRiskDetected is published alongside RiskPredicted for Very High predictions.
type HighRiskDetected struct {
	events.BaseEvent `json:"-"`
	DetectedAt       time.Time `json:"detected_at"`
	Probability      float64   `json:"probability"`
	PredictionID     uuid.UUID `json:"prediction_id"`
}

// NewHighRiskDetected creates a HighRiskDetected event with its JSON payload attached.
func NewHighRiskDetected(predictionID uuid.UUID, probability float64, detectedAt time.Time) HighRiskDetected {
	e := HighRiskDetected{
		PredictionID: predictionID,
		Probability:  probability,
		DetectedAt:   detectedAt,
	}
	e.BaseEvent = events.NewBaseEvent(EventTypeHighRiskDetected, predictionID, AggregateType, mustMarshal(e))
	return e
}

// mustMarshal encodes event bodies made only of strings, numbers, times and UUIDs,
// which cannot fail to marshal.
func mustMarshal(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
