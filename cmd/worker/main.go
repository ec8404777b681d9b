package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/config"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/app/stores"
	trackerobs "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/adapters/observability"
	trackerapp "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/application"
	platformobservability "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/observability"
	platformtemporal "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/temporal"
	matchingactivities "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/temporal/activities/matching"
	matchingworkflows "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/temporal/workflows/matching"
)

func main() {
	ctx := context.Background()
	const serviceName = "merrymatch-worker"
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Config{
		ServiceName:  serviceName,
		Environment:  cfg.Environment,
		LogLevel:     cfg.LogLevel,
		OTLPEndpoint: cfg.OTel.Endpoint,
		OTLPInsecure: cfg.OTel.Insecure,
	})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
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
	if recordStores.Backend == stores.BackendMemory {
		logger.Warn("worker is using in-memory stores; matching runs will not see API writes")
	}
	service := trackerobs.New(
		trackerapp.NewService(recordStores.Donations, recordStores.Wishes),
		trackerobs.WithLogger(logger),
		trackerobs.WithTracer(instruments.Tracer("internal.tracker.application")),
		trackerobs.WithMeter(instruments.Meter("internal.tracker.application")),
	)
	activities := matchingactivities.NewActivities(service)

	temporalClient, err := platformtemporal.Dial(cfg.Temporal.Address, cfg.Temporal.Namespace, instruments.Tracer("temporal-worker"), logger)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, matchingworkflows.MatchingTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(matchingworkflows.MatchingWorkflow, workflow.RegisterOptions{Name: matchingworkflows.MatchingWorkflowName})
	w.RegisterActivityWithOptions(activities.RunMatchingPass, activity.RegisterOptions{Name: matchingactivities.RunMatchingPassActivityName})

	logger.Info("worker listening", slog.String("taskQueue", matchingworkflows.MatchingTaskQueue), slog.String("namespace", cfg.Temporal.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}
