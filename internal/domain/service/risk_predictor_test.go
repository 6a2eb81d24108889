package service_test

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/model"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/service"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/valueobject"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/testutil"
)

func newPredictor(clf port.Classifier) (*service.RiskPredictor, *testutil.RecordingRecorder) {
	rec := &testutil.RecordingRecorder{}
	return service.NewRiskPredictor(testutil.StaticSource{C: clf}, rec, slog.Default()), rec
}

func TestRiskPredictor_BandsClassifierOutput(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		label       int
		wantLevel   valueobject.RiskLevel
	}{
		{"very low", 0.05, 0, valueobject.RiskLevelVeryLow},
		{"low boundary", 0.4, 0, valueobject.RiskLevelLow},
		{"moderate", 0.55, 1, valueobject.RiskLevelModerate},
		{"high", 0.7, 1, valueobject.RiskLevelHigh},
		{"very high", 0.93, 1, valueobject.RiskLevelVeryHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictor, rec := newPredictor(testutil.NewStubClassifier(tt.probability, tt.label))

			got := predictor.Predict(context.Background(), model.FeatureVector{})

			assert.Equal(t, tt.probability, got.Probability)
			assert.Equal(t, tt.label, got.Class)
			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, port.ClassifierKindReal, got.Classifier)
			assert.Empty(t, rec.Fallbacks)
			assert.Equal(t, []string{tt.wantLevel.Label()}, rec.Labels)
		})
	}
}

func TestRiskPredictor_PassesSingleRowInFieldOrder(t *testing.T) {
	clf := testutil.NewStubClassifier(0.3, 0)
	predictor, _ := newPredictor(clf)

	var vec model.FeatureVector
	for i := range vec {
		vec[i] = float64(i) / 100
	}
	predictor.Predict(context.Background(), vec)

	rows := clf.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, vec.Slice(), rows[0])
}

func TestRiskPredictor_CoercesLabels(t *testing.T) {
	tests := []struct {
		label int
		want  int
	}{
		{0, 0},
		{1, 1},
		{2, 1},
		{-1, 0},
	}
	for _, tt := range tests {
		predictor, _ := newPredictor(testutil.NewStubClassifier(0.5, tt.label))
		got := predictor.Predict(context.Background(), model.FeatureVector{})
		assert.Equal(t, tt.want, got.Class, "label %d", tt.label)
	}
}

func TestRiskPredictor_NeutralOnFailure(t *testing.T) {
	tests := []struct {
		name       string
		clf        *testutil.StubClassifier
		wantReason string
	}{
		{
			name:       "probability error",
			clf:        &testutil.StubClassifier{KindValue: port.ClassifierKindReal, ProbaErr: errors.New("boom"), Labels: []int{1}},
			wantReason: service.FallbackReasonInvocation,
		},
		{
			name:       "label error",
			clf:        &testutil.StubClassifier{KindValue: port.ClassifierKindReal, Proba: [][]float64{{0.1, 0.9}}, PredictErr: errors.New("boom")},
			wantReason: service.FallbackReasonInvocation,
		},
		{
			name:       "single column probabilities",
			clf:        &testutil.StubClassifier{KindValue: port.ClassifierKindReal, Proba: [][]float64{{0.9}}, Labels: []int{1}},
			wantReason: service.FallbackReasonShape,
		},
		{
			name:       "empty probability batch",
			clf:        &testutil.StubClassifier{KindValue: port.ClassifierKindReal, Proba: [][]float64{}, Labels: []int{1}},
			wantReason: service.FallbackReasonShape,
		},
		{
			name:       "empty label batch",
			clf:        &testutil.StubClassifier{KindValue: port.ClassifierKindReal, Proba: [][]float64{{0.1, 0.9}}},
			wantReason: service.FallbackReasonShape,
		},
		{
			name:       "NaN probability",
			clf:        &testutil.StubClassifier{KindValue: port.ClassifierKindReal, Proba: [][]float64{{0, math.NaN()}}, Labels: []int{1}},
			wantReason: service.FallbackReasonShape,
		},
		{
			name:       "infinite probability",
			clf:        &testutil.StubClassifier{KindValue: port.ClassifierKindReal, Proba: [][]float64{{0, math.Inf(1)}}, Labels: []int{1}},
			wantReason: service.FallbackReasonShape,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			predictor, rec := newPredictor(tt.clf)

			got := predictor.Predict(context.Background(), model.FeatureVector{})

			assert.Equal(t, model.NeutralProbability, got.Probability)
			assert.Equal(t, model.NeutralClass, got.Class)
			assert.Equal(t, valueobject.RiskLevelModerate, got.Level)
			assert.Equal(t, []string{tt.wantReason}, rec.Fallbacks)
			assert.Equal(t, []string{"Moderate"}, rec.Labels)
		})
	}
}

func TestRiskPredictor_ReportsFallbackKind(t *testing.T) {
	clf := testutil.NewStubClassifier(model.NeutralProbability, model.NeutralClass)
	clf.KindValue = port.ClassifierKindFallback
	predictor, rec := newPredictor(clf)

	got := predictor.Predict(context.Background(), model.FeatureVector{})

	assert.Equal(t, port.ClassifierKindFallback, got.Classifier)
	assert.Equal(t, 0.5, got.Probability)
	assert.Equal(t, 0, got.Class)
	assert.Equal(t, 3, got.Level.Level())
	assert.Equal(t, "Moderate", got.Level.Label())
	assert.Empty(t, rec.Fallbacks)
}

func TestRiskPredictor_EndToEndWithFallback(t *testing.T) {
	clf := testutil.NewStubClassifier(model.NeutralProbability, model.NeutralClass)
	clf.KindValue = port.ClassifierKindFallback

	encoder := service.NewFeatureEncoder(slog.Default(), nil)
	predictor := service.NewRiskPredictor(testutil.StaticSource{C: clf}, nil, slog.Default())

	vec := encoder.Encode(context.Background(), testutil.SampleRawFields())
	got := predictor.Predict(context.Background(), vec)

	assert.Equal(t, 0.5, got.Probability)
	assert.Equal(t, 0, got.Class)
	assert.Equal(t, valueobject.RiskLevelModerate, got.Level)
}
