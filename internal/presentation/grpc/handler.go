package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/application/dto"
)

// RiskPredictor is the use case behind RiskService.Predict.
type RiskPredictor interface {
	Execute(ctx context.Context, req dto.PredictionRequest) (dto.PredictionResponse, error)
}

// Compile-time assertion that RiskServiceHandler implements RiskServiceServer.
var _ RiskServiceServer = (*RiskServiceHandler)(nil)

// RiskServiceHandler implements the gRPC RiskServiceServer interface.
type RiskServiceHandler struct {
	UnimplementedRiskServiceServer
	predictor RiskPredictor
	logger    *slog.Logger
}

// NewRiskServiceHandler creates a new gRPC handler.
func NewRiskServiceHandler(predictor RiskPredictor, logger *slog.Logger) *RiskServiceHandler {
	return &RiskServiceHandler{
		predictor: predictor,
		logger:    logger,
	}
}

// Predict handles a risk prediction request.
func (h *RiskServiceHandler) Predict(ctx context.Context, req *PredictRequest) (*PredictResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.predictor.Execute(ctx, dto.PredictionRequest(*req))
	if err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			return nil, validationStatus(verr)
		}
		h.logger.ErrorContext(ctx, "failed to predict risk", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &PredictResponse{
		PredictionID: result.PredictionID.String(),
		Classifier:   result.Classifier,
		RiskLabel:    result.RiskLabel,
		Probability:  result.Probability,
		RiskLevel:    int32(result.RiskLevel),
		Class:        int32(result.Class),
	}, nil
}

// validationStatus maps field errors onto an InvalidArgument status carrying
// BadRequest details.
func validationStatus(verr *dto.ValidationError) error {
	st := status.New(codes.InvalidArgument, verr.Error())
	br := &errdetails.BadRequest{}
	for _, f := range verr.Fields {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       f.Field,
			Description: f.Message,
		})
	}
	detailed, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}
