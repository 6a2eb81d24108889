package rest

import (
	"log/slog"
	"net/http"

	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

// operationName names the server spans created for HTTP requests.
const operationName = "heartcare-api"

// RouterConfig describes the HTTP surface.
type RouterConfig struct {
	Metrics        *HTTPMetrics
	MetricsHandler http.Handler
	TracerProvider trace.TracerProvider // nil uses the global provider
	Logger         *slog.Logger
	APIPrefix      string
	AllowedOrigins []string
}

// NewRouter mounts the prediction and health endpoints plus /metrics and
// wraps them in the middleware chain.
func NewRouter(cfg RouterConfig, predictions *PredictionHandler, health *HealthHandler) http.Handler {
	mux := http.NewServeMux()
	predictions.RegisterRoutes(mux, cfg.APIPrefix)
	health.RegisterRoutes(mux, cfg.APIPrefix)
	if cfg.MetricsHandler != nil {
		mux.Handle("GET /metrics", cfg.MetricsHandler)
	}

	var handler http.Handler = mux
	handler = RecoverMiddleware(cfg.Logger)(handler)
	if cfg.Metrics != nil {
		handler = cfg.Metrics.Middleware(handler)
	}
	handler = LoggingMiddleware(cfg.Logger)(handler)

	traceOpts := []otelhttp.Option{
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	}
	if cfg.TracerProvider != nil {
		traceOpts = append(traceOpts, otelhttp.WithTracerProvider(cfg.TracerProvider))
	}
	handler = otelhttp.NewHandler(handler, operationName, traceOpts...)

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{HeaderPredictionID, HeaderClassifier},
		AllowCredentials: true,
	})
	return c.Handler(handler)
}
