package observability

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestInitMetricsServesOtelInstruments(t *testing.T) {
	m, err := InitMetrics(MetricsConfig{ServiceName: "heart-disease-prediction", Version: "test"})
	if err != nil {
		t.Fatalf("InitMetrics: %v", err)
	}
	defer m.Shutdown(context.Background())

	counter, err := m.Provider.Meter("test").Int64Counter("observability_test_total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}
	counter.Add(context.Background(), 3)

	rec := httptest.NewRecorder()
	m.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body, _ := io.ReadAll(rec.Body)
	if !strings.Contains(string(body), "observability_test_total") {
		t.Error("otel counter missing from /metrics output")
	}
	if !strings.Contains(string(body), "go_goroutines") {
		t.Error("go runtime collector missing from /metrics output")
	}
}

func TestInitTracerWithoutEndpointIsNoop(t *testing.T) {
	shutdown, err := InitTracer(context.Background(), TracingConfig{ServiceName: "test"})
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown: %v", err)
	}
}

func TestInitTracerWithEndpoint(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	shutdown, err := InitTracer(ctx, TracingConfig{
		ServiceName: "test",
		Endpoint:    "localhost:4317",
		Insecure:    true,
	})
	if err != nil {
		t.Fatalf("InitTracer: %v", err)
	}
	if shutdown == nil {
		t.Fatal("InitTracer returned nil shutdown")
	}
	_ = shutdown(ctx)
}
