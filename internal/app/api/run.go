package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"

	merrymatchserver "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/go"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/config"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/stores"
	trackerobs "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/observability"
	trackerworkflows "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/workflows"
	trackerapp "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application"
	trackerports "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/metrics"
	platformobservability "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/observability"
	platformtemporal "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/temporal"
)

const serviceName = "merrymatch-api"

// Run boots the MerryMatch HTTP API and blocks until ctx is cancelled. On
// shutdown the registry is synced back to the record stores.
func Run(ctx context.Context, cfg config.Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Config{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		LogLevel:     cfg.LogLevel,
		OTLPEndpoint: cfg.OTel.Endpoint,
		OTLPInsecure: cfg.OTel.Insecure,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	recordStores, cleanupStores := stores.Build(ctx, cfg.Database, logger)
	defer cleanupStores()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	matchingMetrics := metrics.NewMatchingMetrics(registry)
	coreService := trackerapp.NewService(recordStores.Donations, recordStores.Wishes)
	service := trackerobs.New(
		coreService,
		trackerobs.WithLogger(logger),
		trackerobs.WithTracer(instruments.Tracer("internal.tracker.application")),
		trackerobs.WithMeter(instruments.Meter("internal.tracker.application")),
		trackerobs.WithMatchingMetrics(matchingMetrics),
	)
	if err := service.Reload(ctx); err != nil {
		logger.Warn("initial registry load failed, starting empty", slog.String("error", err.Error()))
	}

	orchestrator, closeOrchestrator := selectOrchestrator(cfg.Temporal, recordStores.Backend, service, func() (client.Client, error) {
		return platformtemporal.Dial(cfg.Temporal.Address, cfg.Temporal.Namespace, instruments.Tracer("temporal-client"), logger)
	}, matchingMetrics, logger)
	defer closeOrchestrator()

	router := NewRouter(service, orchestrator, registry)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("MerryMatch API listening", slog.String("addr", server.Addr), slog.String("store", recordStores.Backend))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("MerryMatch API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	logger.Info("shutting down MerryMatch API")
	shutdownErr := server.Shutdown(shutdownCtx)
	if err := service.Sync(shutdownCtx); err != nil {
		shutdownErr = errors.Join(shutdownErr, fmt.Errorf("sync registry on shutdown: %w", err))
	}
	return shutdownErr
}

// selectOrchestrator runs matching on a Temporal worker only when both
// processes can share records; an in-memory store is private to this process.
func selectOrchestrator(
	cfg config.TemporalConfig,
	backend string,
	service trackerports.Service,
	dial func() (client.Client, error),
	matchingMetrics *metrics.MatchingMetrics,
	logger *slog.Logger,
) (trackerports.MatchOrchestrator, func()) {
	inline := trackerworkflows.NewInlineMatchOrchestrator(service)
	noop := func() {}
	switch {
	case cfg.Disabled:
		logger.Info("Temporal disabled, running matching inline")
		return inline, noop
	case backend == stores.BackendMemory:
		logger.Warn("in-memory stores are not shared with a worker, running matching inline")
		return inline, noop
	}
	temporalClient, err := dial()
	if err != nil {
		logger.Warn("Temporal workflows unavailable, running matching inline", slog.String("error", err.Error()))
		return inline, noop
	}
	logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.Namespace))
	orchestrator := trackerworkflows.NewTemporalMatchOrchestrator(temporalClient, service, trackerworkflows.WithMatchingMetrics(matchingMetrics))
	return orchestrator, temporalClient.Close
}

// NewRouter builds the gin engine with tracing, Prometheus metrics and the
// tracker routes. A nil registry skips the metrics middleware and endpoint.
func NewRouter(service trackerports.Service, orchestrator trackerports.MatchOrchestrator, registry *prometheus.Registry) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	if registry != nil {
		router.Use(metrics.NewHTTPMetrics(registry).Middleware())
		router.GET("/metrics", metrics.Handler(registry))
	}
	return merrymatchserver.NewRouterWithGinEngine(router, merrymatchserver.ApiHandleFunctions{
		DonationAPI: merrymatchserver.NewDonationAPI(service),
		WishAPI:     merrymatchserver.NewWishAPI(service),
		MatchingAPI: merrymatchserver.NewMatchingAPI(service, orchestrator),
	})
}
