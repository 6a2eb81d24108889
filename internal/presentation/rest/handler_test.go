package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/application/dto"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/application/usecase"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/service"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/infrastructure/messaging"
	fixtures "github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/testutil"
)

const apiPrefix = "/api/v1"

type fakePredictor struct {
	resp dto.PredictionResponse
	err  error
}

func (f *fakePredictor) Execute(context.Context, dto.PredictionRequest) (dto.PredictionResponse, error) {
	return f.resp, f.err
}

type panickingPredictor struct{}

func (panickingPredictor) Execute(context.Context, dto.PredictionRequest) (dto.PredictionResponse, error) {
	panic("boom")
}

type fakeStatus struct {
	kind  port.ClassifierKind
	ready bool
}

func (s fakeStatus) Kind() (port.ClassifierKind, bool) { return s.kind, s.ready }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type testServer struct {
	handler  http.Handler
	registry *prometheus.Registry
	spans    *tracetest.SpanRecorder
}

func newTestServer(t *testing.T, predictor RiskPredictor, status ClassifierStatus) *testServer {
	t.Helper()
	logger := testLogger()
	reg := prometheus.NewRegistry()
	metrics, err := NewHTTPMetrics(reg)
	require.NoError(t, err)
	spans := tracetest.NewSpanRecorder()

	h := NewRouter(RouterConfig{
		TracerProvider: sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans)),
		Metrics:        metrics,
		MetricsHandler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Logger:         logger,
		APIPrefix:      apiPrefix,
		AllowedOrigins: []string{"https://app.example.com"},
	}, NewPredictionHandler(predictor, logger), NewHealthHandler(status, "log", logger))

	return &testServer{handler: h, registry: reg, spans: spans}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func stubUseCase(probability float64, label int) *usecase.PredictRisk {
	logger := testLogger()
	source := fixtures.StaticSource{C: fixtures.NewStubClassifier(probability, label)}
	return usecase.NewPredictRisk(
		service.NewFeatureEncoder(logger, nil),
		service.NewRiskPredictor(source, nil, logger),
		messaging.NewLogPublisher(logger),
		logger,
	)
}

func TestPredict_Success(t *testing.T) {
	srv := newTestServer(t, stubUseCase(0.7, 1), fakeStatus{port.ClassifierKindReal, true})

	rec := srv.do(http.MethodPost, apiPrefix+"/predict", fixtures.SampleRequestJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get(HeaderPredictionID))
	assert.Equal(t, "real", rec.Header().Get(HeaderClassifier))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body, 4)
	assert.Equal(t, 4.0, body["risk_level"])
	assert.Equal(t, "High", body["risk_label"])
	assert.Equal(t, 0.7, body["probability"])
	assert.Equal(t, 1.0, body["class"])
}

func TestPredict_FallbackClassifier(t *testing.T) {
	uc := stubUseCase(0.5, 0)
	srv := newTestServer(t, uc, fakeStatus{port.ClassifierKindFallback, true})

	rec := srv.do(http.MethodPost, apiPrefix+"/predict", fixtures.SampleRequestJSON)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"risk_level":3,"risk_label":"Moderate","probability":0.5,"class":0}`, rec.Body.String())
}

func TestPredict_Errors(t *testing.T) {
	tests := []struct {
		name       string
		predictor  RiskPredictor
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "malformed json",
			predictor:  &fakePredictor{},
			body:       `{"Age":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "malformed request body",
		},
		{
			name:       "wrong json type",
			predictor:  &fakePredictor{},
			body:       `{"Age":"thirty"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "malformed request body",
		},
		{
			name:       "oversized body",
			predictor:  &fakePredictor{},
			body:       `{"General_Health":"` + strings.Repeat("x", maxRequestBytes) + `"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "malformed request body",
		},
		{
			name:       "validation failure",
			predictor:  stubUseCase(0.7, 1),
			body:       `{}`,
			wantStatus: http.StatusUnprocessableEntity,
			wantError:  dto.ErrValidation.Error(),
		},
		{
			name:       "use case failure",
			predictor:  &fakePredictor{err: errors.New("disk on fire")},
			body:       fixtures.SampleRequestJSON,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
		{
			name:       "handler panic",
			predictor:  panickingPredictor{},
			body:       fixtures.SampleRequestJSON,
			wantStatus: http.StatusInternalServerError,
			wantError:  "internal server error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.predictor, fakeStatus{port.ClassifierKindReal, true})

			rec := srv.do(http.MethodPost, apiPrefix+"/predict", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Error, tt.wantError)
			assert.NotContains(t, body.Error, "disk on fire")
		})
	}
}

func TestPredict_ValidationDetails(t *testing.T) {
	srv := newTestServer(t, stubUseCase(0.7, 1), fakeStatus{port.ClassifierKindReal, true})

	var req map[string]any
	require.NoError(t, json.Unmarshal([]byte(fixtures.SampleRequestJSON), &req))
	req["Age"] = 150
	req["General_Health"] = "Amazing"
	body, err := json.Marshal(req)
	require.NoError(t, err)

	rec := srv.do(http.MethodPost, apiPrefix+"/predict", string(body))

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	fields := make([]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"Age", "General_Health"}, fields)
}

func TestPredict_MethodNotAllowed(t *testing.T) {
	srv := newTestServer(t, &fakePredictor{}, fakeStatus{port.ClassifierKindReal, true})

	rec := srv.do(http.MethodGet, apiPrefix+"/predict", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, &fakePredictor{}, fakeStatus{port.ClassifierKindReal, true})

	rec := srv.do(http.MethodGet, apiPrefix+"/health", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"heart-disease-prediction"}`, rec.Body.String())
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, &fakePredictor{}, fakeStatus{})

	rec := srv.do(http.MethodGet, "/healthz", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Uptime)
}

func TestReadyz(t *testing.T) {
	tests := []struct {
		name           string
		status         fakeStatus
		wantCode       int
		wantStatus     string
		wantClassifier string
	}{
		{"real classifier", fakeStatus{port.ClassifierKindReal, true}, http.StatusOK, "ready", "real"},
		{"fallback classifier", fakeStatus{port.ClassifierKindFallback, true}, http.StatusOK, "ready", "fallback"},
		{"still loading", fakeStatus{}, http.StatusServiceUnavailable, "not_ready", "loading"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, &fakePredictor{}, tt.status)

			rec := srv.do(http.MethodGet, "/readyz", "")

			require.Equal(t, tt.wantCode, rec.Code)
			var resp ReadinessResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantStatus, resp.Status)
			assert.Equal(t, tt.wantClassifier, resp.Checks["classifier"])
			assert.Equal(t, "log", resp.Checks["events"])
		})
	}
}

func TestHTTPMetrics_RecordsRequests(t *testing.T) {
	srv := newTestServer(t, stubUseCase(0.7, 1), fakeStatus{port.ClassifierKindReal, true})

	srv.do(http.MethodPost, apiPrefix+"/predict", fixtures.SampleRequestJSON)
	srv.do(http.MethodPost, apiPrefix+"/predict", `{}`)
	srv.do(http.MethodGet, "/nope", "")

	expected := `
# HELP http_requests_total HTTP requests by method, route and status code.
# TYPE http_requests_total counter
http_requests_total{method="GET",route="unmatched",status="404"} 1
http_requests_total{method="POST",route="POST /api/v1/predict",status="200"} 1
http_requests_total{method="POST",route="POST /api/v1/predict",status="422"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(srv.registry, strings.NewReader(expected), "http_requests_total"))

	rec := srv.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}

func TestNewHTTPMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewHTTPMetrics(reg)
	require.NoError(t, err)
	_, err = NewHTTPMetrics(reg)
	assert.Error(t, err)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t, &fakePredictor{}, fakeStatus{port.ClassifierKindReal, true})

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, apiPrefix+"/predict", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Content-Type")
		rec := httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)

		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
	})

	t.Run("disallowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, apiPrefix+"/health", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		rec := httptest.NewRecorder()
		srv.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestRouter_TracesRequests(t *testing.T) {
	srv := newTestServer(t, stubUseCase(0.1, 0), fakeStatus{port.ClassifierKindReal, true})

	srv.do(http.MethodPost, apiPrefix+"/predict", fixtures.SampleRequestJSON)

	ended := srv.spans.Ended()
	names := make([]string, 0, len(ended))
	for _, s := range ended {
		names = append(names, s.Name())
	}
	assert.Contains(t, names, "POST /api/v1/predict")
}
