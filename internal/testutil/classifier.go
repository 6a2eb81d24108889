package testutil

import (
	"context"
	"sync"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
)

// StubClassifier returns canned outputs and records the rows it was given.
type StubClassifier struct {
	ProbaErr   error
	PredictErr error
	KindValue  port.ClassifierKind
	Proba      [][]float64
	Labels     []int
	mu         sync.Mutex
	rows       [][]float64
}

// NewStubClassifier returns a real-kind classifier answering probability p and the given label.
func NewStubClassifier(p float64, label int) *StubClassifier {
	return &StubClassifier{
		KindValue: port.ClassifierKindReal,
		Proba:     [][]float64{{1 - p, p}},
		Labels:    []int{label},
	}
}

func (s *StubClassifier) PredictProba(_ context.Context, rows [][]float64) ([][]float64, error) {
	s.mu.Lock()
	s.rows = append(s.rows, rows...)
	s.mu.Unlock()
	return s.Proba, s.ProbaErr
}

func (s *StubClassifier) Predict(_ context.Context, _ [][]float64) ([]int, error) {
	return s.Labels, s.PredictErr
}

func (s *StubClassifier) Kind() port.ClassifierKind {
	return s.KindValue
}

// Rows returns every row passed to PredictProba so far.
func (s *StubClassifier) Rows() [][]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([][]float64(nil), s.rows...)
}

// StaticSource always hands out the same classifier.
type StaticSource struct {
	C port.Classifier
}

func (s StaticSource) Classifier(context.Context) port.Classifier { return s.C }

// RecordingRecorder captures every signal it receives.
type RecordingRecorder struct {
	mu        sync.Mutex
	Defaulted []string
	Fallbacks []string
	Labels    []string
}

func (r *RecordingRecorder) FeatureDefaulted(_ context.Context, feature string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Defaulted = append(r.Defaulted, feature)
}

func (r *RecordingRecorder) ClassifierFallback(_ context.Context, reason string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Fallbacks = append(r.Fallbacks, reason)
}

func (r *RecordingRecorder) Predicted(_ context.Context, _ float64, riskLabel string, _ port.ClassifierKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Labels = append(r.Labels, riskLabel)
}
