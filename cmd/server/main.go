package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	httpadapter "github.com/diyakohli02/rwh-assessment-service/internal/adapter/http"
	kafkaadapter "github.com/diyakohli02/rwh-assessment-service/internal/adapter/kafka"
	"github.com/diyakohli02/rwh-assessment-service/internal/adapter/nominatim"
	"github.com/diyakohli02/rwh-assessment-service/internal/adapter/openmeteo"
	"github.com/diyakohli02/rwh-assessment-service/internal/config"
	"github.com/diyakohli02/rwh-assessment-service/internal/domain"
	"github.com/diyakohli02/rwh-assessment-service/internal/observability"
	"github.com/diyakohli02/rwh-assessment-service/internal/rainfall"
	"github.com/diyakohli02/rwh-assessment-service/internal/service"
	"github.com/diyakohli02/rwh-assessment-service/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	db, err := store.InitDB(cfg)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if err := store.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}
	dataStore := store.NewStore(db)
	defer dataStore.Close() //nolint:errcheck

	// Rainfall resolution chain: Nominatim geocoding behind an LRU cache,
	// then the Open-Meteo precipitation archive.
	geocoder := nominatim.NewCachedGeocoder(
		nominatim.NewClient(cfg.LookupTimeout, logger),
		cfg.GeocodeCacheSize,
		metrics,
	)
	archive := openmeteo.NewClient(cfg.LookupTimeout, logger)
	resolver := rainfall.NewResolver(geocoder, archive, clockwork.NewRealClock(), metrics, logger)

	engine := domain.NewEngine()

	// Event publishing is feature-flagged; a nil publisher disables it.
	var publisher service.EventPublisher
	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled {
		writer = kafkaadapter.NewWriter(cfg, logger)
		publisher = writer
		logger.Info("assessment event publishing enabled", "topic", cfg.KafkaTopic, "brokers", cfg.KafkaBrokers)
	} else {
		logger.Info("assessment event publishing disabled")
	}

	assessments := service.NewAssessmentService(dataStore, resolver, engine, publisher, metrics, logger)
	reports := service.NewReportService(dataStore, engine, clockwork.NewRealClock(), metrics, logger)

	srv := httpadapter.NewServer(cfg.HTTPAddr, assessments, reports,
		httpadapter.ReadinessFunc(dataStore.Ping), logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
