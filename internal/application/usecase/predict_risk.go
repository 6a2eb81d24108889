package usecase

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/application/dto"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/model"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/service"
)

const tracerName = "github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/application/usecase"

// PredictRisk is the use case for scoring one survey response.
type PredictRisk struct {
	encoder   service.Encoder
	predictor service.Predictor
	publisher port.EventPublisher
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewPredictRisk creates a new PredictRisk use case.
func NewPredictRisk(
	encoder service.Encoder,
	predictor service.Predictor,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *PredictRisk {
	return &PredictRisk{
		encoder:   encoder,
		predictor: predictor,
		publisher: publisher,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
	}
}

// Execute validates the request, encodes it, runs the classifier and publishes
// the resulting domain events. Only validation failures are returned as errors;
// the prediction itself always completes.
func (uc *PredictRisk) Execute(ctx context.Context, req dto.PredictionRequest) (dto.PredictionResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "PredictRisk")
	defer span.End()

	// 1. Reject requests outside the accepted schema.
	if err := req.Validate(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid request")
		return dto.PredictionResponse{}, err
	}

	// 2. Encode and classify.
	vector := uc.encoder.Encode(ctx, req.ToRawFields())
	prediction := uc.predictor.Predict(ctx, vector)

	// 3. Record the outcome on the aggregate.
	assessment := model.NewRiskAssessment(prediction.PredictionResult, string(prediction.Classifier))

	span.SetAttributes(
		attribute.String("prediction.id", assessment.ID().String()),
		attribute.String("prediction.classifier", string(prediction.Classifier)),
		attribute.String("prediction.risk_label", prediction.Level.Label()),
		attribute.Float64("prediction.probability", prediction.Probability),
	)

	// 4. Publish domain events. Delivery is best effort.
	if evts := assessment.DomainEvents(); len(evts) > 0 {
		if err := uc.publisher.Publish(ctx, evts...); err != nil {
			uc.logger.WarnContext(ctx, "failed to publish prediction events",
				slog.String("prediction_id", assessment.ID().String()),
				"error", err,
			)
		}
	}

	uc.logger.InfoContext(ctx, "risk predicted",
		slog.String("prediction_id", assessment.ID().String()),
		slog.String("risk_label", prediction.Level.Label()),
		slog.String("classifier", string(prediction.Classifier)),
	)

	return dto.FromModel(assessment), nil
}
