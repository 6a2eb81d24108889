package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/application/usecase"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/port"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/domain/service"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/infrastructure/config"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/infrastructure/messaging"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/infrastructure/ml"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/infrastructure/telemetry"
	grpcpresentation "github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/presentation/grpc"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/internal/presentation/rest"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/pkg/kafka"
	"github.com/mohsinkp02/HeartCare-Risk-Prediction-System/pkg/observability"
)

const shutdownTimeout = 15 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		slog.Error("risk service exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := observability.InitLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.AppName,
		Version:     cfg.Version,
	})

	logger.Info("starting risk service",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"model_path", cfg.ModelPath,
	)

	shutdownTracer, err := observability.InitTracer(ctx, observability.TracingConfig{
		ServiceName: cfg.AppName,
		Version:     cfg.Version,
		Endpoint:    cfg.OTLPEndpoint,
		SampleRatio: cfg.TraceSampleRatio,
		Insecure:    true,
	})
	if err != nil {
		logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
	} else {
		defer func() {
			if err := shutdownTracer(context.WithoutCancel(ctx)); err != nil {
				logger.Warn("tracer shutdown error", "error", err)
			}
		}()
	}

	metrics, err := observability.InitMetrics(observability.MetricsConfig{
		ServiceName: cfg.AppName,
		Version:     cfg.Version,
	})
	if err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}
	defer func() {
		if err := metrics.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("metrics shutdown error", "error", err)
		}
	}()

	recorder, err := telemetry.NewPredictionMetrics(metrics.Provider)
	if err != nil {
		return fmt.Errorf("initializing prediction metrics: %w", err)
	}
	httpMetrics, err := rest.NewHTTPMetrics(metrics.Registry)
	if err != nil {
		return fmt.Errorf("initializing http metrics: %w", err)
	}

	// Load the classifier before accepting traffic so the first request
	// does not pay for it.
	provider := ml.NewProvider(cfg.ModelPath, logger)
	kind := provider.WarmUp(ctx)
	logger.Info("classifier ready", "classifier", string(kind))

	publisher, eventsSink, closePublisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer closePublisher()

	// Wire domain services and use cases.
	encoder := service.NewFeatureEncoder(logger, recorder)
	predictor := service.NewRiskPredictor(provider, recorder, logger)
	predictRisk := usecase.NewPredictRisk(encoder, predictor, publisher, logger)

	// gRPC server.
	grpcServer := grpcpresentation.NewServer(
		grpcpresentation.NewRiskServiceHandler(predictRisk, logger),
		grpcpresentation.ServerConfig{
			Address:     cfg.GRPCAddress(),
			TLSCertFile: cfg.GRPCTLSCertFile,
			TLSKeyFile:  cfg.GRPCTLSKeyFile,
			Reflection:  cfg.GRPCReflection,
		},
		logger,
	)

	// HTTP server.
	handler := rest.NewRouter(rest.RouterConfig{
		Metrics:        httpMetrics,
		MetricsHandler: metrics.Handler,
		Logger:         logger,
		APIPrefix:      cfg.APIV1Prefix,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, rest.NewPredictionHandler(predictRisk, logger), rest.NewHealthHandler(provider, eventsSink, logger))

	httpServer := &http.Server{
		Addr:         cfg.HTTPAddress(),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := grpcServer.Start(); err != nil {
			return fmt.Errorf("gRPC server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("HTTP server starting", "address", cfg.HTTPAddress())
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down risk service")

		grpcServer.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("HTTP server shutdown: %w", err)
		}
		return nil
	})

	logger.Info("risk service started",
		"grpc_address", cfg.GRPCAddress(),
		"http_address", cfg.HTTPAddress(),
		"environment", cfg.Environment,
		"classifier", string(kind),
	)

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("risk service stopped")
	return nil
}

// newPublisher selects the Kafka publisher when brokers are configured and
// the log publisher otherwise. The returned name is reported by /readyz.
func newPublisher(cfg *config.Config, logger *slog.Logger) (port.EventPublisher, string, func(), error) {
	if !cfg.KafkaEnabled() {
		logger.Info("kafka not configured, publishing events to the log")
		return messaging.NewLogPublisher(logger), "log", func() {}, nil
	}

	producer, err := kafka.NewProducer(kafka.Config{
		ClientID:      cfg.AppName,
		Brokers:       cfg.KafkaBrokers,
		TLS:           cfg.KafkaTLS,
		TLSCAFile:     cfg.KafkaTLSCAFile,
		SASLEnabled:   cfg.KafkaSASLEnabled(),
		SASLMechanism: cfg.KafkaSASLMechanism,
		SASLUsername:  cfg.KafkaSASLUsername,
		SASLPassword:  cfg.KafkaSASLPassword,
	})
	if err != nil {
		return nil, "", nil, fmt.Errorf("creating kafka producer: %w", err)
	}

	logger.Info("publishing events to kafka",
		"brokers", cfg.KafkaBrokers,
		"topic", cfg.KafkaTopic,
	)
	closeFn := func() {
		if err := producer.Close(); err != nil {
			logger.Warn("kafka producer close error", "error", err)
		}
	}
	return messaging.NewKafkaPublisher(producer, cfg.KafkaTopic, logger), "kafka", closeFn, nil
}
