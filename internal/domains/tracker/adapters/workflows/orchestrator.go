package workflows

import (
	"context"
	"errors"
	"fmt"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"

	trackerdomain "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/domain"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/domains/tracker/ports"
	"github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/metrics"
	matchingworkflows "github.com/CarelaBleep/Thank-You-MerryMatch-Donation-and-Wish-List-Tracker/internal/platform/temporal/workflows/matching"
)

var (
	_ ports.MatchOrchestrator = (*TemporalMatchOrchestrator)(nil)
	_ ports.MatchOrchestrator = (*InlineMatchOrchestrator)(nil)
)

// TemporalMatchOrchestrator runs matching passes on a Temporal worker.
type TemporalMatchOrchestrator struct {
	client    client.Client
	service   ports.Service
	taskQueue string
	metrics   *metrics.MatchingMetrics
}

// TemporalOption customises a TemporalMatchOrchestrator.
type TemporalOption func(*TemporalMatchOrchestrator)

// WithMatchingMetrics records passes executed by the worker in this process's metrics.
func WithMatchingMetrics(m *metrics.MatchingMetrics) TemporalOption {
	return func(o *TemporalMatchOrchestrator) {
		o.metrics = m
	}
}

// NewTemporalMatchOrchestrator wires a Temporal client into the orchestrator.
// service is reloaded after each run so the caller sees the worker's writes.
func NewTemporalMatchOrchestrator(c client.Client, service ports.Service, opts ...TemporalOption) *TemporalMatchOrchestrator {
	o := &TemporalMatchOrchestrator{client: c, service: service, taskQueue: matchingworkflows.MatchingTaskQueue}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RunMatching starts the matching workflow and blocks until it completes.
func (o *TemporalMatchOrchestrator) RunMatching(ctx context.Context) (*trackerdomain.MatchResult, error) {
	if o == nil || o.client == nil || o.service == nil {
		return nil, errors.New("temporal match orchestrator not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := fmt.Sprintf("matching-run-%s", traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		matchingworkflows.MatchingWorkflowName,
		matchingworkflows.MatchingWorkflowInput{TraceID: traceComponent},
	)
	if err != nil {
		// A retried request within the same trace joins the pass already running.
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if !errors.As(err, &alreadyStarted) {
			o.metrics.IncError()
			return nil, err
		}
		run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
	}
	var result trackerdomain.MatchResult
	if err := run.Get(ctx, &result); err != nil {
		o.metrics.IncError()
		return nil, err
	}
	o.observe(result)
	if err := o.service.Reload(ctx); err != nil {
		return &result, err
	}
	return &result, nil
}

func (o *TemporalMatchOrchestrator) observe(result trackerdomain.MatchResult) {
	moved := 0
	for _, e := range result.Events {
		moved += e.Quantity
	}
	failures := make(map[string]int)
	for _, f := range result.Failures {
		failures[string(f.Kind)]++
	}
	o.metrics.ObserveRun(len(result.Events), moved, failures)
}

// InlineMatchOrchestrator runs the pass in-process, the default without Temporal.
type InlineMatchOrchestrator struct {
	service ports.Service
}

func NewInlineMatchOrchestrator(service ports.Service) *InlineMatchOrchestrator {
	return &InlineMatchOrchestrator{service: service}
}

func (o *InlineMatchOrchestrator) RunMatching(ctx context.Context) (*trackerdomain.MatchResult, error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline match orchestrator not configured")
	}
	return o.service.RunMatching(ctx)
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
