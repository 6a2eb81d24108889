package ml

import (
	"context"
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
)

// DefaultThreshold is the positive-class cutoff used when an artifact omits one.
const DefaultThreshold = 0.5

// LogisticModel is a fitted binary logistic regression. It is immutable after
// construction and safe for concurrent use.
type LogisticModel struct {
	coef      *mat.VecDense
	intercept float64
	threshold float64
}

// NewLogisticModel builds a model from its fitted parameters.
func NewLogisticModel(coefficients []float64, intercept, threshold float64) (*LogisticModel, error) {
	if len(coefficients) == 0 {
		return nil, errors.New("logistic model needs at least one coefficient")
	}
	for i, c := range coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("coefficient %d is not finite", i)
		}
	}
	if math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return nil, errors.New("intercept is not finite")
	}
	if !(threshold > 0 && threshold < 1) {
		return nil, fmt.Errorf("threshold %v outside (0,1)", threshold)
	}

	coef := make([]float64, len(coefficients))
	copy(coef, coefficients)

	return &LogisticModel{
		coef:      mat.NewVecDense(len(coef), coef),
		intercept: intercept,
		threshold: threshold,
	}, nil
}

// NumFeatures returns the number of columns every input row must have.
func (m *LogisticModel) NumFeatures() int {
	return m.coef.Len()
}

// PredictProba returns [P(class 0), P(class 1)] for each row.
func (m *LogisticModel) PredictProba(_ context.Context, rows [][]float64) ([][]float64, error) {
	probs, err := m.positive(rows)
	if err != nil {
		return nil, err
	}
	out := make([][]float64, len(probs))
	for i, p := range probs {
		out[i] = []float64{1 - p, p}
	}
	return out, nil
}

// Predict returns 1 for each row whose positive probability exceeds the threshold.
func (m *LogisticModel) Predict(_ context.Context, rows [][]float64) ([]int, error) {
	probs, err := m.positive(rows)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(probs))
	for i, p := range probs {
		if p > m.threshold {
			out[i] = 1
		}
	}
	return out, nil
}

// Kind reports ClassifierKindReal.
func (m *LogisticModel) Kind() port.ClassifierKind {
	return port.ClassifierKindReal
}

// positive computes sigmoid(X·w + b) for the batch.
func (m *LogisticModel) positive(rows [][]float64) ([]float64, error) {
	if len(rows) == 0 {
		return []float64{}, nil
	}

	n := m.coef.Len()
	data := make([]float64, 0, len(rows)*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("row %d has %d features, want %d", i, len(row), n)
		}
		data = append(data, row...)
	}

	x := mat.NewDense(len(rows), n, data)
	var z mat.VecDense
	z.MulVec(x, m.coef)

	out := make([]float64, len(rows))
	for i := range out {
		out[i] = sigmoid(z.AtVec(i) + m.intercept)
	}
	return out, nil
}

// sigmoid is the logistic function, arranged so exp never overflows.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
