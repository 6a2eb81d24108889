package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/event"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/valueobject"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/pkg/events"
)

// RiskAssessment is the aggregate root for a single heart disease risk prediction.
// It lives for one request and is never persisted.
type RiskAssessment struct {
	events.EventCollector
	assessedAt time.Time
	classifier string
	result     PredictionResult
	id         uuid.UUID
}

// NewRiskAssessment records a prediction outcome and emits the corresponding
// domain events. The encoded features are not retained.
func NewRiskAssessment(result PredictionResult, classifier string) *RiskAssessment {
	a := &RiskAssessment{
		id:         uuid.New(),
		result:     result,
		classifier: classifier,
		assessedAt: time.Now().UTC(),
	}

	a.Record(event.NewRiskPredicted(
		a.id,
		result.Probability,
		result.Class,
		result.Level.Level(),
		result.Level.Label(),
		classifier,
		a.assessedAt,
	))

	if result.Level.Equal(valueobject.RiskLevelVeryHigh) {
		a.Record(event.NewHighRiskDetected(a.id, result.Probability, a.assessedAt))
	}

	return a
}

// --- Accessors ---

func (a *RiskAssessment) ID() uuid.UUID                    { return a.id }
func (a *RiskAssessment) Result() PredictionResult         { return a.result }
func (a *RiskAssessment) Classifier() string               { return a.classifier }
func (a *RiskAssessment) AssessedAt() time.Time            { return a.assessedAt }
func (a *RiskAssessment) RiskLevel() valueobject.RiskLevel { return a.result.Level }

// DomainEvents returns all accumulated domain events and clears them.
func (a *RiskAssessment) DomainEvents() []events.DomainEvent {
	return a.ClearEvents()
}
