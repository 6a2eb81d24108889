package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/application/dto"
)

// maxRequestBytes bounds the size of a prediction request body.
const maxRequestBytes = 64 << 10

// Response headers carrying prediction metadata outside the JSON body.
const (
	HeaderPredictionID = "X-Prediction-ID"
	HeaderClassifier   = "X-Classifier"
)

// RiskPredictor is the use case behind the prediction endpoint.
type RiskPredictor interface {
	Execute(ctx context.Context, req dto.PredictionRequest) (dto.PredictionResponse, error)
}

// PredictionHandler serves the prediction endpoint.
type PredictionHandler struct {
	predictor RiskPredictor
	logger    *slog.Logger
}

// NewPredictionHandler creates a new prediction handler.
func NewPredictionHandler(predictor RiskPredictor, logger *slog.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictor: predictor,
		logger:    logger,
	}
}

// ErrorResponse is the JSON body of every error reply.
type ErrorResponse struct {
	Error   string           `json:"error"`
	Details []dto.FieldError `json:"details,omitempty"`
}

// RegisterRoutes registers the prediction endpoint under apiPrefix.
func (h *PredictionHandler) RegisterRoutes(mux *http.ServeMux, apiPrefix string) {
	mux.HandleFunc("POST "+apiPrefix+"/predict", h.Predict)
}

// Predict decodes a survey response and returns its risk assessment.
func (h *PredictionHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var req dto.PredictionRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: "malformed request body: " + err.Error()})
		return
	}

	resp, err := h.predictor.Execute(r.Context(), req)
	if err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: dto.ErrValidation.Error(), Details: verr.Fields})
			return
		}
		h.logger.ErrorContext(r.Context(), "prediction failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	w.Header().Set(HeaderPredictionID, resp.PredictionID.String())
	w.Header().Set(HeaderClassifier, resp.Classifier)
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
